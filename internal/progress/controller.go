// Package progress turns pointer drags into dial progress.
package progress

import (
	"io"
	"log/slog"
	"math"

	"github.com/verte-zerg/tuidial/internal/geometry"
	"github.com/verte-zerg/tuidial/internal/layout"
	"github.com/verte-zerg/tuidial/internal/model"
)

const (
	defaultDeadband            = 0.05 * math.Pi
	defaultCompletionThreshold = 0.02
)

type state int

const (
	stateIdle state = iota
	stateTracking
	stateTrackingLocked
)

// Controller is the touch state machine. It is not safe for concurrent use;
// hosts deliver events serially.
type Controller struct {
	cfg      model.Config
	delegate geometry.Delegate
	logger   *slog.Logger

	deadband   float64
	completion float64

	dots []model.Dot

	state       state
	position    model.Point
	direction   model.Direction
	angle       float64
	fraction    float64
	marker      model.Point
	highlighted int
	completed   bool
	pulse       bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the debug logger for state transitions.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDeadband sets the raw angle magnitude a move must exceed to lock direction.
func WithDeadband(rad float64) Option {
	return func(c *Controller) {
		if rad >= 0 {
			c.deadband = rad
		}
	}
}

// WithCompletionThreshold sets the fraction of a turn, measured from the end
// of travel, inside which a drag counts as complete.
func WithCompletionThreshold(fraction float64) Option {
	return func(c *Controller) {
		if fraction >= 0 && fraction < 1 {
			c.completion = fraction
		}
	}
}

// New returns a Controller laid out against delegate.
func New(cfg model.Config, delegate geometry.Delegate, opts ...Option) *Controller {
	c := &Controller{
		cfg:        cfg,
		delegate:   delegate,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		deadband:   defaultDeadband,
		completion: defaultCompletionThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Relayout()
	return c
}

// Relayout recomputes dot positions after the host geometry or config changed
// and returns the marker to the start.
func (c *Controller) Relayout() {
	c.dots = layout.Compute(c.cfg, c.delegate).Dots
	c.resetToStart()
}

// SetConfig swaps the configuration and relayouts.
func (c *Controller) SetConfig(cfg model.Config) {
	c.cfg = cfg
	c.Relayout()
}

// Config returns the active configuration.
func (c *Controller) Config() model.Config {
	return c.cfg
}

// Dots returns a copy of the dots with their highlight flags.
func (c *Controller) Dots() []model.Dot {
	out := make([]model.Dot, len(c.dots))
	copy(out, c.dots)
	return out
}

// Direction returns the direction locked for the current session.
func (c *Controller) Direction() model.Direction {
	return c.direction
}

// Completed reports whether the drag reached the completion threshold.
func (c *Controller) Completed() bool {
	return c.completed
}

// Snapshot returns the state the renderer draws from.
func (c *Controller) Snapshot() model.Snapshot {
	return model.Snapshot{
		ProgressFraction: c.fraction,
		Angle:            c.angle,
		Marker:           c.marker,
		Pointer:          c.position,
		Highlighted:      c.highlighted,
		Direction:        c.direction,
		DirectionLocked:  c.direction != model.Undetermined,
		Completed:        c.completed,
		Active:           c.state != stateIdle,
		Pulse:            c.pulse,
	}
}

// TouchBegin starts a gesture. The completion of any earlier gesture is
// cleared; geometry is untouched until the first move.
func (c *Controller) TouchBegin() model.Snapshot {
	c.pulse = false
	c.completed = false
	c.state = stateTracking
	c.direction = model.Undetermined
	c.logger.Debug("touch begin")
	return c.Snapshot()
}

// TouchMove feeds a pointer position of the active gesture.
func (c *Controller) TouchMove(p model.Point) model.Snapshot {
	c.pulse = false
	if c.state == stateIdle || c.delegate == nil {
		return c.Snapshot()
	}
	if !c.acceptsPosition(p) {
		c.logger.Debug("touch left zone", "x", p.X, "y", p.Y)
		c.resetToStart()
		return c.Snapshot()
	}
	c.position = p

	center := c.delegate.Center()
	raw := math.Atan2(p.Y-center.Y, p.X-center.X)

	if c.direction == model.Undetermined {
		// Deadband uses the raw atan2 angle, so it is centered on angle 0
		// rather than on StartPosition.
		if math.Abs(raw) <= c.deadband {
			return c.Snapshot()
		}
		if raw > 0 {
			c.direction = model.Clockwise
		} else {
			c.direction = model.CounterClockwise
		}
		c.state = stateTrackingLocked
		c.logger.Debug("direction locked", "direction", c.direction.String(), "raw", raw)
		c.delegate.RequestRedraw()
	}

	c.advance(geometry.NormalizeAngle(raw))
	return c.Snapshot()
}

// TouchEnd finishes the gesture. Incomplete drags snap back to the start.
func (c *Controller) TouchEnd() model.Snapshot {
	c.pulse = false
	if !c.completed {
		c.resetToStart()
	}
	c.state = stateIdle
	c.direction = model.Undetermined
	c.logger.Debug("touch end", "completed", c.completed)
	return c.Snapshot()
}

// Reset discards any progress, including a completed drag.
func (c *Controller) Reset() model.Snapshot {
	c.state = stateIdle
	c.resetToStart()
	c.direction = model.Undetermined
	c.pulse = false
	return c.Snapshot()
}

func (c *Controller) acceptsPosition(p model.Point) bool {
	center := c.delegate.Center()
	if !geometry.InAnnulus(center, c.delegate.Radius(), c.cfg.TouchPadding, p) {
		return false
	}
	return geometry.Distance(p, c.marker) <= c.cfg.MovingDiff
}

func (c *Controller) advance(angle float64) {
	c.angle = angle
	c.fraction = strokeEnd(c.direction, angle)
	c.highlight(angle)

	threshold := c.completion * geometry.FullTurn
	var crossed bool
	var terminal float64
	switch c.direction {
	case model.Clockwise:
		crossed = angle >= geometry.FullTurn-threshold
		terminal = c.cfg.EndPosition
	case model.CounterClockwise:
		crossed = angle <= threshold
		terminal = c.cfg.StartPosition
	default:
		return
	}

	if crossed {
		if !c.completed {
			c.logger.Debug("completed", "direction", c.direction.String())
		}
		c.completed = true
		c.angle = terminal
		c.fraction = 1
	} else {
		if c.completed {
			c.logger.Debug("completion withdrawn", "angle", angle)
		}
		c.completed = false
	}
	c.marker = geometry.PositionOnCircle(c.delegate, c.angle)
}

func (c *Controller) highlight(angle float64) {
	stops := dotsInTravelOrder(c.dots, c.direction)
	next := lastPassed(stops, c.direction, angle)
	if next != c.highlighted {
		c.pulse = next >= 0
	}
	c.setHighlighted(next)
}

func (c *Controller) setHighlighted(index int) {
	for i := range c.dots {
		c.dots[i].Highlighted = i == index
	}
	c.highlighted = index
}

func (c *Controller) resetToStart() {
	c.completed = false
	first := -1
	if stops := dotsInTravelOrder(c.dots, c.direction); len(stops) > 0 {
		first = stops[0].index
	}
	c.setHighlighted(first)
	c.angle = startAngle(c.cfg, c.direction)
	c.fraction = 0
	c.marker = geometry.PositionOnCircle(c.delegate, c.angle)
}

func startAngle(cfg model.Config, dir model.Direction) float64 {
	if dir == model.CounterClockwise {
		return cfg.EndPosition
	}
	return cfg.StartPosition
}

// strokeEnd is the fraction of the user stroke drawn for angle.
func strokeEnd(dir model.Direction, angle float64) float64 {
	if dir == model.CounterClockwise {
		return (geometry.FullTurn - angle) / geometry.FullTurn
	}
	return angle / geometry.FullTurn
}
