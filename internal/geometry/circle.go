package geometry

import (
	"math"

	"github.com/verte-zerg/tuidial/internal/model"
)

// Delegate is the capability a rendering host supplies to the core.
type Delegate interface {
	Center() model.Point
	Radius() float64
	Circumference() float64
	AngleForArcLength(length float64) float64
	RequestRedraw()
}

// Circle derives center and radius from host bounds. Its RequestRedraw is a
// no-op; interactive hosts embed it and supply their own.
type Circle struct {
	center model.Point
	radius float64
}

// NewCircle builds the circle inscribed in width x height, shrunk by padding.
func NewCircle(width, height, padding float64) Circle {
	radius := math.Min(width, height)/2 - padding
	if radius < 0 {
		radius = 0
	}
	return Circle{
		center: model.Point{X: width / 2, Y: height / 2},
		radius: radius,
	}
}

// NewCircleAt builds a circle from an explicit center and radius.
func NewCircleAt(center model.Point, radius float64) Circle {
	if radius < 0 {
		radius = 0
	}
	return Circle{center: center, radius: radius}
}

func (c Circle) Center() model.Point { return c.center }

func (c Circle) Radius() float64 { return c.radius }

func (c Circle) Circumference() float64 { return FullTurn * c.radius }

func (Circle) RequestRedraw() {}

// AngleForArcLength converts an arc length to the angle it subtends.
func (c Circle) AngleForArcLength(length float64) float64 {
	circumference := c.Circumference()
	if circumference <= 0 {
		return 0
	}
	return (FullTurn / circumference) * length
}

// PositionOnCircle returns the point at angle on the delegate's circle.
func PositionOnCircle(d Delegate, angle float64) model.Point {
	if d == nil {
		return model.Point{}
	}
	center := d.Center()
	radius := d.Radius()
	return model.Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// AngleForArcLength is (2π / circumference) * length, or 0 without geometry.
func AngleForArcLength(d Delegate, length float64) float64 {
	if d == nil || d.Circumference() <= 0 {
		return 0
	}
	return d.AngleForArcLength(length)
}

// ArcLengthForAngle is the inverse of AngleForArcLength.
func ArcLengthForAngle(d Delegate, angle float64) float64 {
	if d == nil {
		return 0
	}
	return angle * d.Radius()
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b model.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// InCircle reports whether p lies inside the circle of the given radius.
func InCircle(center model.Point, radius float64, p model.Point) bool {
	return Distance(center, p) < radius
}

// InAnnulus reports whether p lies inside radius+pad but not inside radius-pad.
func InAnnulus(center model.Point, radius, pad float64, p model.Point) bool {
	return InCircle(center, radius+pad, p) && !InCircle(center, radius-pad, p)
}
