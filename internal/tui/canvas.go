// Package tui provides the Bubble Tea dial interface.
package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuidial/internal/model"
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellMainStroke
	cellUserStroke
	cellDot
	cellHighlightedDot
	cellPulseDot
	cellMarker
)

type cell struct {
	kind cellKind
	r    rune
}

// canvas is a grid of character cells addressed in screen points, where one
// cell spans 1 point horizontally and aspect points vertically.
type canvas struct {
	cols   int
	rows   int
	aspect float64
	cells  [][]cell
}

func newCanvas(cols, rows int, aspect float64) *canvas {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	cells := make([][]cell, rows)
	for i := range cells {
		cells[i] = make([]cell, cols)
	}
	return &canvas{cols: cols, rows: rows, aspect: aspect, cells: cells}
}

// set writes r at the cell containing p. Higher kinds win over lower ones.
func (c *canvas) set(p model.Point, kind cellKind, r rune) {
	col := int(math.Floor(p.X))
	row := int(math.Floor(p.Y / c.aspect))
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return
	}
	if c.cells[row][col].kind > kind {
		return
	}
	c.cells[row][col] = cell{kind: kind, r: r}
}

func (c *canvas) at(col, row int) cell {
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return cell{}
	}
	return c.cells[row][col]
}

// render joins the rows, styling runs of equal kind in one pass.
func (c *canvas) render(styles map[cellKind]lipgloss.Style) string {
	lines := make([]string, 0, c.rows)
	for _, row := range c.cells {
		var b strings.Builder
		var run strings.Builder
		runKind := cellEmpty
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if style, ok := styles[runKind]; ok {
				b.WriteString(style.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.kind != runKind {
				flush()
				runKind = cl.kind
			}
			if cl.kind == cellEmpty {
				run.WriteByte(' ')
				continue
			}
			run.WriteRune(cl.r)
		}
		flush()
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// glyph keeps r when the terminal draws it one cell wide.
func glyph(r, fallback rune) rune {
	if runewidth.RuneWidth(r) == 1 {
		return r
	}
	return fallback
}
