package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuidial/internal/model"
)

func TestCanvasSetMapsAspect(t *testing.T) {
	c := newCanvas(4, 3, 2)
	c.set(model.Point{X: 2.5, Y: 3.9}, cellDot, 'x')
	if got := c.at(2, 1); got.r != 'x' || got.kind != cellDot {
		t.Fatalf("expected dot at (2,1), got %+v", got)
	}
	c.set(model.Point{X: -1, Y: 0}, cellDot, 'y')
	c.set(model.Point{X: 0, Y: 6}, cellDot, 'y')
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			if c.at(col, row).r == 'y' {
				t.Fatalf("expected out-of-bounds points to be dropped")
			}
		}
	}
}

func TestCanvasKeepsHigherLayer(t *testing.T) {
	c := newCanvas(2, 1, 2)
	p := model.Point{X: 0.5, Y: 0.5}
	c.set(p, cellMarker, 'm')
	c.set(p, cellMainStroke, '.')
	if got := c.at(0, 0); got.r != 'm' {
		t.Fatalf("expected marker to stay on top, got %q", got.r)
	}
}

func TestCanvasRenderPlain(t *testing.T) {
	c := newCanvas(3, 2, 1)
	c.set(model.Point{X: 0.5, Y: 0.5}, cellDot, 'a')
	c.set(model.Point{X: 2.5, Y: 1.5}, cellMarker, 'b')
	out := c.render(map[cellKind]lipgloss.Style{})
	if out != "a  \n  b" {
		t.Fatalf("unexpected render: %q", out)
	}
}
