package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Easing maps linear progress t in [0,1] to eased progress. Every easing
// returns 0 at t=0 and 1 at t=1; values in between may overshoot.
type Easing func(t float64) float64

// Linear is the identity easing.
func Linear(t float64) float64 {
	return clamp01(t)
}

// EaseOutQuad decelerates to a stop.
func EaseOutQuad(t float64) float64 {
	t = clamp01(t)
	return 1 - (1-t)*(1-t)
}

// EaseInOutQuad accelerates through the first half and decelerates through the second.
func EaseInOutQuad(t float64) float64 {
	t = clamp01(t)
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}

// EaseOutElastic overshoots and oscillates before settling, like a plucked
// string. amplitude is clamped to [1,10] and period to [0.1,2].
func EaseOutElastic(amplitude, period float64) Easing {
	a := math.Min(math.Max(amplitude, 1), 10)
	p := math.Min(math.Max(period, 0.1), 2)
	in := func(t float64) float64 {
		if t == 0 || t == 1 {
			return t
		}
		s := p / (2 * math.Pi) * math.Asin(1/a)
		return -a * math.Pow(2, 10*(t-1)) * math.Sin(((t-1)-s)*(2*math.Pi)/p)
	}
	return func(t float64) float64 {
		t = clamp01(t)
		return 1 - in(1-t)
	}
}

// springSteps is the resolution of the precomputed spring curve.
const springSteps = 120

// Spring returns a damped-spring easing simulated with harmonica. The spring
// runs for one simulated second from 0 toward 1; lower damping overshoots more.
func Spring(angularFrequency, dampingRatio float64) Easing {
	spring := harmonica.NewSpring(1.0/springSteps, angularFrequency, dampingRatio)

	curve := make([]float64, springSteps+1)
	pos, vel := 0.0, 0.0
	for i := 1; i <= springSteps; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		curve[i] = pos
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * springSteps
		i := int(x)
		frac := x - float64(i)
		return curve[i]*(1-frac) + curve[i+1]*frac
	}
}

// Spring parameters for the "spring" refresh easing: settles within the
// transition with a small overshoot.
const (
	springFrequency = 10.0
	springDamping   = 0.6
)

// EasingNamed resolves a config easing name. Unknown names fall back to
// EaseOutQuad.
func EasingNamed(name string) Easing {
	switch name {
	case "linear":
		return Linear
	case "spring":
		return Spring(springFrequency, springDamping)
	default:
		return EaseOutQuad
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
