package progress

import (
	"math"
	"testing"

	"github.com/verte-zerg/tuidial/internal/geometry"
	"github.com/verte-zerg/tuidial/internal/model"
)

const eps = 1e-9

type fakeHost struct {
	geometry.Circle
	redraws int
}

func (h *fakeHost) RequestRedraw() {
	h.redraws++
}

func newTestController(t *testing.T) (*Controller, *fakeHost) {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Dots = 8
	cfg.MovingDiff = 1000
	host := &fakeHost{Circle: geometry.NewCircleAt(model.Point{}, 100)}
	return New(cfg, host), host
}

func at(deg float64) model.Point {
	rad := geometry.DegreesToRadians(deg)
	return model.Point{X: 100 * math.Cos(rad), Y: 100 * math.Sin(rad)}
}

func TestClockwiseDragCompletes(t *testing.T) {
	c, host := newTestController(t)
	c.TouchBegin()

	snap := c.TouchMove(at(10))
	if snap.Direction != model.Clockwise || !snap.DirectionLocked {
		t.Fatalf("expected clockwise lock, got %v", snap.Direction)
	}
	if math.Abs(snap.ProgressFraction-10.0/360) > eps {
		t.Fatalf("expected fraction %f, got %f", 10.0/360, snap.ProgressFraction)
	}
	if snap.Completed {
		t.Fatalf("expected incomplete at 10°")
	}
	if host.redraws != 1 {
		t.Fatalf("expected 1 redraw on lock, got %d", host.redraws)
	}

	snap = c.TouchMove(at(355))
	if !snap.Completed {
		t.Fatalf("expected completion at 355°")
	}
	if snap.ProgressFraction < 355.0/360-eps {
		t.Fatalf("expected fraction near 1, got %f", snap.ProgressFraction)
	}
	if snap.Angle != geometry.FullTurn {
		t.Fatalf("expected angle forced to end, got %f", snap.Angle)
	}
	if snap.Highlighted != 7 {
		t.Fatalf("expected last dot highlighted, got %d", snap.Highlighted)
	}

	snap = c.TouchEnd()
	if !snap.Completed || snap.ProgressFraction != 1 {
		t.Fatalf("expected completion kept after release, got %+v", snap)
	}
	if snap.Direction != model.Undetermined || snap.Active {
		t.Fatalf("expected idle undetermined session after release, got %+v", snap)
	}
	if host.redraws != 1 {
		t.Fatalf("expected no further redraws, got %d", host.redraws)
	}
}

func TestDeadbandDelaysLock(t *testing.T) {
	c, _ := newTestController(t)
	c.TouchBegin()

	snap := c.TouchMove(at(3))
	if snap.DirectionLocked || snap.Direction != model.Undetermined {
		t.Fatalf("expected no lock inside deadband")
	}
	if snap.ProgressFraction != 0 {
		t.Fatalf("expected no progress inside deadband, got %f", snap.ProgressFraction)
	}

	snap = c.TouchMove(at(15))
	if snap.Direction != model.Clockwise {
		t.Fatalf("expected clockwise lock at 15°, got %v", snap.Direction)
	}
	if math.Abs(snap.ProgressFraction-15.0/360) > eps {
		t.Fatalf("unexpected fraction %f", snap.ProgressFraction)
	}
}

func TestLeavingAnnulusResets(t *testing.T) {
	c, _ := newTestController(t)
	c.TouchBegin()
	c.TouchMove(at(100))

	snap := c.TouchMove(model.Point{X: 200, Y: 0})
	if snap.ProgressFraction != 0 {
		t.Fatalf("expected reset fraction, got %f", snap.ProgressFraction)
	}
	if snap.Highlighted != 0 {
		t.Fatalf("expected first dot highlighted, got %d", snap.Highlighted)
	}
	if snap.Marker != geometry.PositionOnCircle(geometry.NewCircleAt(model.Point{}, 100), 0) {
		t.Fatalf("expected marker at start, got %+v", snap.Marker)
	}

	snap = c.TouchMove(model.Point{X: 10, Y: 10})
	if snap.ProgressFraction != 0 {
		t.Fatalf("expected inner circle to be rejected, got %f", snap.ProgressFraction)
	}
}

func TestMovingDiffRejectsJumps(t *testing.T) {
	c, _ := newTestController(t)
	cfg := c.Config()
	cfg.MovingDiff = 5
	c.SetConfig(cfg)

	c.TouchBegin()
	snap := c.TouchMove(at(20))
	if snap.DirectionLocked {
		t.Fatalf("expected far grab to be ignored")
	}
	if snap.ProgressFraction != 0 {
		t.Fatalf("expected no progress, got %f", snap.ProgressFraction)
	}
}

func TestDirectionLockIsSticky(t *testing.T) {
	c, host := newTestController(t)
	c.TouchBegin()
	c.TouchMove(at(20))

	snap := c.TouchMove(at(-20))
	if snap.Direction != model.Clockwise {
		t.Fatalf("expected direction to stay clockwise, got %v", snap.Direction)
	}
	if math.Abs(snap.ProgressFraction-340.0/360) > eps {
		t.Fatalf("expected fraction %f, got %f", 340.0/360, snap.ProgressFraction)
	}
	if host.redraws != 1 {
		t.Fatalf("expected single redraw, got %d", host.redraws)
	}
}

func TestClockwiseCompletionIsReversible(t *testing.T) {
	c, _ := newTestController(t)
	c.TouchBegin()
	c.TouchMove(at(30))

	if snap := c.TouchMove(at(354)); !snap.Completed {
		t.Fatalf("expected completion past 98%%")
	}
	snap := c.TouchMove(at(300))
	if snap.Completed {
		t.Fatalf("expected completion withdrawn below threshold")
	}
	if math.Abs(snap.ProgressFraction-300.0/360) > eps {
		t.Fatalf("unexpected fraction %f", snap.ProgressFraction)
	}

	snap = c.TouchEnd()
	if snap.ProgressFraction != 0 || snap.Completed {
		t.Fatalf("expected reset on incomplete release, got %+v", snap)
	}
}

func TestCounterClockwiseDrag(t *testing.T) {
	c, _ := newTestController(t)
	c.TouchBegin()

	snap := c.TouchMove(at(-20))
	if snap.Direction != model.CounterClockwise {
		t.Fatalf("expected counter-clockwise lock, got %v", snap.Direction)
	}
	if math.Abs(snap.ProgressFraction-20.0/360) > eps {
		t.Fatalf("expected fraction %f, got %f", 20.0/360, snap.ProgressFraction)
	}
	if snap.Highlighted != 0 {
		t.Fatalf("expected dot 0 highlighted, got %d", snap.Highlighted)
	}

	snap = c.TouchMove(at(-50))
	if snap.Highlighted != 7 || !snap.Pulse {
		t.Fatalf("expected dot 7 highlighted with pulse, got %d pulse=%v", snap.Highlighted, snap.Pulse)
	}

	snap = c.TouchMove(at(5))
	if !snap.Completed || snap.ProgressFraction != 1 || snap.Angle != 0 {
		t.Fatalf("expected counter-clockwise completion, got %+v", snap)
	}

	snap = c.TouchMove(at(20))
	if snap.Completed {
		t.Fatalf("expected completion withdrawn")
	}
	if math.Abs(snap.ProgressFraction-340.0/360) > eps {
		t.Fatalf("unexpected fraction %f", snap.ProgressFraction)
	}
}

func TestSingleHighlight(t *testing.T) {
	c, _ := newTestController(t)
	c.TouchBegin()
	c.TouchMove(at(20))
	snap := c.TouchMove(at(140))
	if snap.Highlighted != 3 {
		t.Fatalf("expected dot 3 highlighted, got %d", snap.Highlighted)
	}
	count := 0
	for i, d := range c.Dots() {
		if d.Highlighted {
			count++
			if i != 3 {
				t.Fatalf("unexpected highlighted dot %d", i)
			}
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one highlighted dot, got %d", count)
	}
}

func TestMoveWithoutTouchIsNoop(t *testing.T) {
	c, host := newTestController(t)
	snap := c.TouchMove(at(90))
	if snap.DirectionLocked || snap.ProgressFraction != 0 || host.redraws != 0 {
		t.Fatalf("expected idle move to be ignored, got %+v", snap)
	}
}

func TestNewSessionReinfersDirection(t *testing.T) {
	c, host := newTestController(t)
	c.TouchBegin()
	c.TouchMove(at(20))
	c.TouchEnd()

	c.TouchBegin()
	snap := c.TouchMove(at(-20))
	if snap.Direction != model.CounterClockwise {
		t.Fatalf("expected new session to lock counter-clockwise, got %v", snap.Direction)
	}
	if host.redraws != 2 {
		t.Fatalf("expected redraw per lock, got %d", host.redraws)
	}
}

func TestNilDelegateIsSafe(t *testing.T) {
	c := New(model.DefaultConfig(), nil)
	c.TouchBegin()
	snap := c.TouchMove(at(90))
	if snap.DirectionLocked || snap.Highlighted != -1 {
		t.Fatalf("expected neutral snapshot, got %+v", snap)
	}
	c.TouchEnd()
}

func TestDotsInTravelOrder(t *testing.T) {
	c, _ := newTestController(t)
	dots := c.Dots()

	cw := dotsInTravelOrder(dots, model.Clockwise)
	for i, s := range cw {
		if s.index != i {
			t.Fatalf("clockwise stop %d has index %d", i, s.index)
		}
	}

	ccw := dotsInTravelOrder(dots, model.CounterClockwise)
	want := []int{0, 7, 6, 5, 4, 3, 2, 1}
	for i, s := range ccw {
		if s.index != want[i] {
			t.Fatalf("counter-clockwise stop %d: expected %d, got %d", i, want[i], s.index)
		}
	}
	if ccw[0].angle != geometry.FullTurn {
		t.Fatalf("expected dot 0 compared as 2π, got %f", ccw[0].angle)
	}
}

func TestTouchBeginClearsCompletion(t *testing.T) {
	c, _ := newTestController(t)
	c.TouchBegin()
	c.TouchMove(at(20))
	c.TouchMove(at(356))
	if snap := c.TouchEnd(); !snap.Completed {
		t.Fatalf("expected completed drag")
	}

	snap := c.TouchBegin()
	if snap.Completed || c.Completed() {
		t.Fatalf("expected new gesture to start incomplete, got %+v", snap)
	}
	snap = c.TouchEnd()
	if snap.Completed || snap.ProgressFraction != 0 {
		t.Fatalf("expected tap without drag to reset, got %+v", snap)
	}
}

func TestStartOffsetHighlightsWrappedDots(t *testing.T) {
	c, _ := newTestController(t)
	cfg := c.Config()
	cfg.StartPosition = geometry.DegreesToRadians(60)
	c.SetConfig(cfg)

	// Dots sit at 60°, 105°, ..., 330°, then 15° for dot 7.
	if got := geometry.RadiansToDegrees(c.Dots()[7].Angle); math.Abs(got-15) > 1e-6 {
		t.Fatalf("expected dot 7 at 15°, got %f", got)
	}

	c.TouchBegin()
	snap := c.TouchMove(at(30))
	if snap.Highlighted != 7 || !snap.Pulse {
		t.Fatalf("expected wrapped dot 7 highlighted, got %d pulse=%v", snap.Highlighted, snap.Pulse)
	}
	if snap = c.TouchMove(at(70)); snap.Highlighted != 0 {
		t.Fatalf("expected dot 0 highlighted at 70°, got %d", snap.Highlighted)
	}
	if snap = c.TouchMove(at(340)); snap.Highlighted != 6 {
		t.Fatalf("expected dot 6 highlighted at 340°, got %d", snap.Highlighted)
	}
}
