package session

import (
	"time"

	"localboard/internal/geom"
)

// LaserPoint is one sample of the laser pointer trail.
type LaserPoint struct {
	P  geom.Point
	At time.Time
}

// TrailPoint is a laser sample with its current opacity in [0, 1].
type TrailPoint struct {
	P       geom.Point
	Opacity float64
}

// Laser keeps a short-lived trail that fades by wall-clock time, so the fade
// speed does not depend on the frame rate.
type Laser struct {
	fade   time.Duration
	max    int
	points []LaserPoint
}

// NewLaser returns a trail that fades over fade and holds at most max samples.
func NewLaser(fade time.Duration, max int) *Laser {
	return &Laser{fade: fade, max: max}
}

// Add appends a sample, dropping the oldest once the trail is full.
func (l *Laser) Add(p geom.Point, now time.Time) {
	l.points = append(l.points, LaserPoint{P: p, At: now})
	if n := len(l.points) - l.max; n > 0 {
		l.points = append(l.points[:0], l.points[n:]...)
	}
}

// Opacity returns the opacity of a sample of the given age.
func Opacity(age, fade time.Duration) float64 {
	if fade <= 0 || age >= fade {
		return 0
	}
	if age <= 0 {
		return 1
	}
	return 1 - float64(age)/float64(fade)
}

// Trail drops fully faded samples and returns the rest with their opacity.
func (l *Laser) Trail(now time.Time) []TrailPoint {
	keep := l.points[:0]
	for _, p := range l.points {
		if Opacity(now.Sub(p.At), l.fade) > 0 {
			keep = append(keep, p)
		}
	}
	l.points = keep

	out := make([]TrailPoint, len(keep))
	for i, p := range keep {
		out[i] = TrailPoint{P: p.P, Opacity: Opacity(now.Sub(p.At), l.fade)}
	}
	return out
}

// Len returns the number of stored samples.
func (l *Laser) Len() int { return len(l.points) }
