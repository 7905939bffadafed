// Package geometry provides circle math shared by the layout engine and the
// progress controller.
package geometry

import "math"

// FullTurn is one revolution in radians.
const FullTurn = 2 * math.Pi

// DegreesToRadians scales degrees to radians without normalizing.
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadiansToDegrees converts an atan2 result to degrees in [0, 360).
// Non-negative values pass through; negative values have 360 added.
func RadiansToDegrees(rad float64) float64 {
	deg := rad * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// NormalizeAngle maps a raw atan2 angle in (-π, π] to [0, 2π).
func NormalizeAngle(raw float64) float64 {
	return DegreesToRadians(RadiansToDegrees(raw))
}

// WrapAngle maps any angle to [0, 2π).
func WrapAngle(rad float64) float64 {
	a := math.Mod(rad, FullTurn)
	if a < 0 {
		a += FullTurn
	}
	if a >= FullTurn {
		return 0
	}
	return a
}
