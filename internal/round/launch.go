package round

import (
	"math"
	"math/rand"
)

// AngleSource supplies a launch angle, in radians, on every reset.
type AngleSource interface {
	Angle() float64
}

// AngleFunc adapts a function to AngleSource.
type AngleFunc func() float64

// Angle calls f.
func (f AngleFunc) Angle() float64 { return f() }

// LaunchSampler picks launch angles from four 45 degree sectors, one
// either side of the horizontal toward each player.
type LaunchSampler struct {
	rng    *rand.Rand
	minDeg int
}

// NewLaunchSampler creates a seeded sampler. minDeg excludes launches
// closer than that many whole degrees to the horizontal and is clamped to
// [0, 44].
func NewLaunchSampler(seed int64, minDeg int) *LaunchSampler {
	return &LaunchSampler{
		rng:    rand.New(rand.NewSource(seed)),
		minDeg: max(0, min(minDeg, 44)),
	}
}

// Angle returns the next launch angle.
func (s *LaunchSampler) Angle() float64 {
	sector := s.rng.Intn(4)
	deg := s.minDeg + s.rng.Intn(45-s.minDeg)

	switch sector {
	case 1:
		deg = 180 - deg
	case 2:
		deg = 180 + deg
	case 3:
		deg = (360 - deg) % 360
	}
	return float64(deg) / 180 * math.Pi
}
