// Package layout computes the arcs, dots and dash pattern of the dial.
package layout

import (
	"github.com/verte-zerg/tuidial/internal/geometry"
	"github.com/verte-zerg/tuidial/internal/model"
)

// Compute lays out cfg.Dots evenly spaced dots starting at cfg.StartPosition,
// the stroke arcs between them, and the dash pattern that draws those arcs as
// a single dashed circle. Degenerate input yields an empty layout.
func Compute(cfg model.Config, geo geometry.Delegate) model.Layout {
	n := cfg.Dots
	if n < 1 || geo == nil || geo.Radius() <= 0 || geo.Circumference() <= 0 {
		return model.Layout{}
	}

	angleFor := func(length float64) float64 {
		return geometry.AngleForArcLength(geo, length)
	}
	lengthFor := func(angle float64) float64 {
		return geometry.ArcLengthForAngle(geo, angle)
	}
	halfDotAngle := func(i int) float64 {
		return angleFor(dotSize(cfg, i%n) / 2)
	}
	paddingAngle := angleFor(cfg.SpacingBetweenDotAndLine)

	arcs := make([]model.Arc, 0, n)
	dots := make([]model.Dot, 0, n)
	dash := make(model.DashPattern, 0, 2*n+1)

	start := cfg.StartPosition
	for i := 0; i < n; i++ {
		arcAngle := angleFor(geo.Circumference() / float64(n))
		if i == 0 {
			dash = append(dash, lengthFor(halfDotAngle(i)+paddingAngle))
		}

		dots = append(dots, model.Dot{
			Position: geometry.PositionOnCircle(geo, start),
			Angle:    geometry.WrapAngle(start),
			Size:     dotSize(cfg, i),
			Big:      isBigDot(i),
		})

		enter := halfDotAngle(i) + paddingAngle
		exit := halfDotAngle(i+1) + paddingAngle
		start += enter
		arcAngle -= enter + exit

		stroke := arcAngle
		if stroke < 0 {
			stroke = 0
		}
		dash = append(dash, lengthFor(stroke))
		if i == n-1 {
			// Closing gap stops at dot 0; its other half is the phase.
			dash = append(dash, lengthFor(exit))
		} else {
			dash = append(dash, lengthFor(2*exit))
		}

		// EndAngle may pass 2π when the arc crosses angle 0.
		arcStart := geometry.WrapAngle(start)
		arcs = append(arcs, model.Arc{StartAngle: arcStart, EndAngle: arcStart + stroke})
		start += arcAngle + exit
	}

	return model.Layout{Arcs: arcs, Dots: dots, Dash: dash}
}

func isBigDot(i int) bool {
	return i%2 == 0
}

func dotSize(cfg model.Config, i int) float64 {
	if isBigDot(i) {
		return cfg.BigDotSize
	}
	return cfg.SmallDotSize
}
