package motion

import (
	"math"
	"time"
)

// SpringConfig parameterises a damped spring.
type SpringConfig struct {
	Stiffness float64 `json:"stiffness"`
	Damping   float64 `json:"damping"`
	Mass      float64 `json:"mass"`
	RestDelta float64 `json:"restDelta"`
	RestSpeed float64 `json:"restSpeed"`
}

// maxStep bounds one integration step; larger frames are subdivided.
const maxStep = time.Millisecond

// Spring follows a moving target with a damped harmonic oscillator, which
// smooths out jitter in a sampled signal.
type Spring struct {
	cfg SpringConfig
	x   float64
	v   float64
}

// NewSpring creates a Spring at rest at initial.
func NewSpring(cfg SpringConfig, initial float64) *Spring {
	if cfg.Mass <= 0 {
		cfg.Mass = 1
	}
	return &Spring{cfg: cfg, x: initial}
}

// Value returns the current smoothed value.
func (s *Spring) Value() float64 { return s.x }

// Step advances the spring toward target by dt and returns the new value.
func (s *Spring) Step(target float64, dt time.Duration) float64 {
	for dt > 0 {
		h := dt
		if h > maxStep {
			h = maxStep
		}
		dt -= h
		sec := h.Seconds()
		a := (-s.cfg.Stiffness*(s.x-target) - s.cfg.Damping*s.v) / s.cfg.Mass
		s.v += a * sec
		s.x += s.v * sec
	}
	if s.AtRest(target) {
		s.x, s.v = target, 0
	}
	return s.x
}

// AtRest reports whether the spring has settled on target.
func (s *Spring) AtRest(target float64) bool {
	return math.Abs(s.x-target) < s.cfg.RestDelta && math.Abs(s.v) < s.cfg.RestSpeed
}

// Velocity derives a rate of change per second from timestamped samples.
type Velocity struct {
	last    float64
	lastAt  time.Time
	current float64
	primed  bool
}

// Sample records value at time at and returns the current velocity.
// The first sample yields zero.
func (v *Velocity) Sample(value float64, at time.Time) float64 {
	if !v.primed {
		v.last, v.lastAt, v.primed = value, at, true
		return 0
	}
	dt := at.Sub(v.lastAt).Seconds()
	if dt > 0 {
		v.current = (value - v.last) / dt
		v.last, v.lastAt = value, at
	}
	return v.current
}

// Reactive turns scroll progress samples into a pair of counter-moving
// offsets: progress -> velocity -> spring -> top and bottom transforms.
type Reactive struct {
	velocity Velocity
	spring   *Spring
	top      Transform
	bottom   Transform
	lastAt   time.Time
}

// NewReactive creates a Reactive with the given spring and band transforms.
func NewReactive(cfg SpringConfig, top, bottom Transform) *Reactive {
	return &Reactive{spring: NewSpring(cfg, 0), top: top, bottom: bottom}
}

// Sample feeds one scroll progress reading and returns the band offsets.
func (r *Reactive) Sample(progress float64, at time.Time) (top, bottom Length) {
	vel := r.velocity.Sample(progress, at)
	if !r.lastAt.IsZero() {
		r.spring.Step(vel, at.Sub(r.lastAt))
	}
	r.lastAt = at
	smoothed := r.spring.Value()
	return r.top.At(smoothed), r.bottom.At(smoothed)
}
