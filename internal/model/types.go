// Package model defines shared data structures.
package model

import "math"

// Config defines the dial layout and gesture tunables.
type Config struct {
	Dots                     int
	MainStrokeWidth          float64
	SpacingBetweenDotAndLine float64
	Padding                  float64
	SmallDotSize             float64
	BigDotSize               float64
	TouchPadding             float64
	MovingDiff               float64
	StartPosition            float64
	EndPosition              float64

	UserStrokeWidth     float64
	UserDotSize         float64
	UserDotShadowRadius float64
	Colors              Colors
}

// Colors holds the renderer palette. The core never reads it.
type Colors struct {
	Background       string
	MainStroke       string
	MainDots         string
	UserStroke       string
	UserStrokeShadow string
	UserDot          string
}

// DefaultConfig returns the point-based defaults.
func DefaultConfig() Config {
	return Config{
		Dots:                     8,
		MainStrokeWidth:          1,
		SpacingBetweenDotAndLine: 4,
		Padding:                  32,
		SmallDotSize:             2,
		BigDotSize:               8,
		TouchPadding:             30,
		MovingDiff:               1,
		StartPosition:            0,
		EndPosition:              2 * math.Pi,
		UserStrokeWidth:          1,
		UserDotSize:              12,
		UserDotShadowRadius:      8,
		Colors:                   defaultColors(),
	}
}

// DefaultTerminalConfig returns defaults scaled to character cells.
func DefaultTerminalConfig() Config {
	cfg := DefaultConfig()
	cfg.SpacingBetweenDotAndLine = 1
	cfg.Padding = 2
	cfg.SmallDotSize = 1
	cfg.BigDotSize = 2
	cfg.TouchPadding = 4
	cfg.MovingDiff = 12
	cfg.UserDotSize = 2
	cfg.UserDotShadowRadius = 1
	return cfg
}

func defaultColors() Colors {
	return Colors{
		Background:       "#3A3A3A",
		MainStroke:       "#8C8C8C",
		MainDots:         "#8C8C8C",
		UserStroke:       "#52C41A",
		UserStrokeShadow: "#FF4D4F",
		UserDot:          "#52C41A",
	}
}

// Span returns the configured angular range in radians.
func (c Config) Span() float64 {
	return c.EndPosition - c.StartPosition
}

// Point is a position in the host coordinate space.
type Point struct {
	X float64
	Y float64
}

// Direction is the inferred traversal direction of a drag.
type Direction int

const (
	Undetermined Direction = iota
	Clockwise
	CounterClockwise
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	default:
		return "undetermined"
	}
}

// Arc is one visible stroke segment between two dot gaps.
type Arc struct {
	StartAngle float64
	EndAngle   float64
}

// Dot is a marker placed on the circle.
type Dot struct {
	Position    Point
	Angle       float64
	Size        float64
	Big         bool
	Highlighted bool
}

// DashPattern describes the dashed main stroke in arc-length units.
// Element 0 is the leading gap before the first stroke. The remaining
// elements alternate stroke, gap; the final gap ends at the first dot.
type DashPattern []float64

// Phase returns the leading gap.
func (p DashPattern) Phase() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[0]
}

// Segments returns the alternating stroke and gap lengths after the phase.
func (p DashPattern) Segments() []float64 {
	if len(p) < 2 {
		return nil
	}
	return p[1:]
}

// Total returns the sum of every entry including the phase.
func (p DashPattern) Total() float64 {
	total := 0.0
	for _, v := range p {
		total += v
	}
	return total
}

// Layout is the computed geometry of the dial.
type Layout struct {
	Arcs []Arc
	Dots []Dot
	Dash DashPattern
}

// Empty reports whether the layout has no dots.
func (l Layout) Empty() bool {
	return len(l.Dots) == 0
}

// Snapshot is the controller state the renderer consumes after an event.
type Snapshot struct {
	ProgressFraction float64
	Angle            float64
	Marker           Point
	Pointer          Point
	Highlighted      int
	Direction        Direction
	DirectionLocked  bool
	Completed        bool
	Active           bool
	Pulse            bool
}
