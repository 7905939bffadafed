package progress

import (
	"github.com/verte-zerg/tuidial/internal/geometry"
	"github.com/verte-zerg/tuidial/internal/model"
)

type travelStop struct {
	index int
	angle float64
}

// dotsInTravelOrder lists dots in the order a drag in dir reaches them.
// Clockwise is placement order. Counter-clockwise rotates by one and reverses,
// so dot 0 comes first and is compared as 2π.
func dotsInTravelOrder(dots []model.Dot, dir model.Direction) []travelStop {
	stops := make([]travelStop, 0, len(dots))
	if len(dots) == 0 {
		return stops
	}
	if dir != model.CounterClockwise {
		for i, d := range dots {
			stops = append(stops, travelStop{index: i, angle: d.Angle})
		}
		return stops
	}
	for k := 0; k < len(dots); k++ {
		i := (len(dots) - k) % len(dots)
		angle := dots[i].Angle
		if angle == 0 {
			angle = geometry.FullTurn
		}
		stops = append(stops, travelStop{index: i, angle: angle})
	}
	return stops
}

// passed reports whether a drag in dir at angle has reached stop.
func (s travelStop) passed(dir model.Direction, angle float64) bool {
	if dir == model.CounterClockwise {
		return s.angle >= angle
	}
	return s.angle <= angle
}

// lastPassed returns the index of the most recently passed dot, or the first
// stop when none has been reached. With a start offset the travel order wraps
// past angle 0, so the nearest passed stop wins rather than the last in order.
func lastPassed(stops []travelStop, dir model.Direction, angle float64) int {
	if len(stops) == 0 {
		return -1
	}
	current := stops[0].index
	found := false
	var reached float64
	for _, s := range stops {
		if !s.passed(dir, angle) {
			continue
		}
		nearer := s.angle > reached
		if dir == model.CounterClockwise {
			nearer = s.angle < reached
		}
		if !found || nearer {
			current, reached, found = s.index, s.angle, true
		}
	}
	return current
}
