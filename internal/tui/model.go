package tui

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuidial/internal/geometry"
	"github.com/verte-zerg/tuidial/internal/layout"
	"github.com/verte-zerg/tuidial/internal/model"
	"github.com/verte-zerg/tuidial/internal/progress"
)

const (
	// Terminal cells are roughly twice as tall as they are wide.
	cellAspect    = 2.0
	pulseDuration = 180 * time.Millisecond
)

var (
	mainStrokeGlyph = glyph('·', '.')
	userStrokeGlyph = glyph('•', '*')
	bigDotGlyph     = glyph('●', 'O')
	smallDotGlyph   = glyph('◦', 'o')
	markerGlyph     = glyph('◉', '@')
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))

type pulseMsg struct {
	id int
}

// Model implements the Bubble Tea dial UI. It is also the geometry delegate
// of its progress controller: the circle is rebuilt on every resize.
type Model struct {
	geometry.Circle

	cfg    model.Config
	ctrl   *progress.Controller
	logger *slog.Logger
	keys   keyMap
	help   help.Model
	styles map[cellKind]lipgloss.Style

	width  int
	height int

	snap        model.Snapshot
	orientation model.Direction
	redraws     int

	pulsing bool
	pulseID int
}

// NewModel constructs a dial TUI model.
func NewModel(cfg model.Config, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := &Model{
		cfg:         cfg,
		logger:      logger,
		keys:        defaultKeyMap(),
		help:        help.New(),
		styles:      buildStyles(cfg.Colors),
		orientation: model.Clockwise,
	}
	m.ctrl = progress.New(cfg, m, progress.WithLogger(logger))
	m.snap = m.ctrl.Snapshot()
	return m
}

// RequestRedraw implements geometry.Delegate. The controller calls it when a
// direction lock changes which way the user stroke is drawn.
func (m *Model) RequestRedraw() {
	m.orientation = m.ctrl.Direction()
	m.redraws++
	m.logger.Debug("redraw requested", "orientation", m.orientation.String())
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.snap = m.ctrl.Reset()
			m.pulsing = false
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.relayout()
			return m, nil
		default:
			return m, nil
		}
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case pulseMsg:
		if msg.id == m.pulseID {
			m.pulsing = false
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	c := newCanvas(m.width, m.canvasRows(), cellAspect)
	m.drawDial(c)
	body := c.render(m.styles)

	footer := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.renderFooter())
	helpView := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, body, footer, helpView)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.snap = m.ctrl.TouchBegin()
		m.snap = m.ctrl.TouchMove(m.pointForCell(msg.X, msg.Y))
	case tea.MouseActionMotion:
		if !m.snap.Active || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.snap = m.ctrl.TouchMove(m.pointForCell(msg.X, msg.Y))
	case tea.MouseActionRelease:
		if !m.snap.Active {
			return nil
		}
		m.snap = m.ctrl.TouchEnd()
		return nil
	default:
		return nil
	}
	if !m.snap.Pulse {
		return nil
	}
	m.pulseID++
	m.pulsing = true
	id := m.pulseID
	return tea.Tick(pulseDuration, func(time.Time) tea.Msg {
		return pulseMsg{id: id}
	})
}

func (m *Model) relayout() {
	m.Circle = geometry.NewCircle(float64(m.width), float64(m.canvasRows())*cellAspect, m.cfg.Padding)
	m.ctrl.Relayout()
	m.snap = m.ctrl.Snapshot()
	m.logger.Debug("relayout", "width", m.width, "height", m.height, "radius", m.Radius())
}

func (m *Model) canvasRows() int {
	rows := m.height - 1 - lipgloss.Height(m.help.View(m.keys))
	if rows < 0 {
		return 0
	}
	return rows
}

// pointForCell maps a terminal cell to a point in dial space.
func (m *Model) pointForCell(col, row int) model.Point {
	screen := model.Point{X: float64(col) + 0.5, Y: (float64(row) + 0.5) * cellAspect}
	return m.toDial(screen)
}

// toScreen rotates a dial point by -90° so angle 0 sits at 12 o'clock.
func (m *Model) toScreen(p model.Point) model.Point {
	center := m.Center()
	dx, dy := p.X-center.X, p.Y-center.Y
	return model.Point{X: center.X + dy, Y: center.Y - dx}
}

// toDial is the inverse of toScreen.
func (m *Model) toDial(s model.Point) model.Point {
	center := m.Center()
	dx, dy := s.X-center.X, s.Y-center.Y
	return model.Point{X: center.X - dy, Y: center.Y + dx}
}

func (m *Model) drawDial(c *canvas) {
	if m.Radius() <= 0 {
		return
	}
	l := layout.Compute(m.cfg, m)
	for _, arc := range l.Arcs {
		m.drawSweep(c, arc.StartAngle, arc.EndAngle-arc.StartAngle, cellMainStroke, mainStrokeGlyph)
	}

	if sweep := m.snap.ProgressFraction * geometry.FullTurn; sweep > 0 {
		if m.orientation == model.CounterClockwise {
			m.drawSweep(c, m.cfg.EndPosition, -sweep, cellUserStroke, userStrokeGlyph)
		} else {
			m.drawSweep(c, m.cfg.StartPosition, sweep, cellUserStroke, userStrokeGlyph)
		}
	}

	for _, dot := range m.ctrl.Dots() {
		r := smallDotGlyph
		if dot.Big {
			r = bigDotGlyph
		}
		kind := cellDot
		if dot.Highlighted {
			kind = cellHighlightedDot
			if m.pulsing {
				kind = cellPulseDot
			}
		}
		c.set(m.toScreen(dot.Position), kind, r)
	}

	c.set(m.toScreen(m.snap.Marker), cellMarker, markerGlyph)
}

// drawSweep samples the circle every half point of arc length.
func (m *Model) drawSweep(c *canvas, from, sweep float64, kind cellKind, r rune) {
	step := geometry.AngleForArcLength(m, 0.5)
	if step <= 0 {
		return
	}
	steps := int(math.Abs(sweep) / step)
	dir := 1.0
	if sweep < 0 {
		dir = -1
	}
	for i := 0; i <= steps; i++ {
		angle := from + dir*float64(i)*step
		c.set(m.toScreen(geometry.PositionOnCircle(m, angle)), kind, r)
	}
}

func (m *Model) renderFooter() string {
	pct := int(math.Round(m.snap.ProgressFraction * 100))
	segments := []string{fmt.Sprintf("Progress %d%%", pct)}
	if m.snap.DirectionLocked {
		segments = append(segments, m.snap.Direction.String())
	}
	if m.snap.Completed {
		segments = append(segments, "Complete")
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func buildStyles(colors model.Colors) map[cellKind]lipgloss.Style {
	base := lipgloss.NewStyle().Background(lipgloss.Color(colors.Background))
	return map[cellKind]lipgloss.Style{
		cellEmpty:          base,
		cellMainStroke:     base.Foreground(lipgloss.Color(colors.MainStroke)),
		cellUserStroke:     base.Foreground(lipgloss.Color(colors.UserStroke)),
		cellDot:            base.Foreground(lipgloss.Color(colors.MainDots)),
		cellHighlightedDot: base.Foreground(lipgloss.Color(colors.UserDot)),
		cellPulseDot:       base.Foreground(lipgloss.Color(colors.UserDot)).Bold(true),
		cellMarker: lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors.UserDot)).
			Background(lipgloss.Color(colors.UserStrokeShadow)),
	}
}
