// Package anim is a small declarative animation engine and the choreography
// that maps dashboard state changes to transitions.
//
// Requests describe keyframe tracks for every target playing a role (the
// terminal analogue of a CSS class selector). The engine is advanced by the
// caller's clock: nothing here starts goroutines or timers. Views sample
// Engine.Props on each frame and turn the values into row offsets, column
// offsets and color fades.
package anim

import "time"

// Role is a selector for a group of addressable targets.
type Role string

const (
	// RoleChartContainer addresses every chart panel, in render order.
	RoleChartContainer Role = "chart-container"
	// RoleAlert addresses the error banner while it is visible.
	RoleAlert Role = "alert"
)

// Property is an animatable visual property.
type Property string

const (
	PropOpacity    Property = "opacity"
	PropTranslateX Property = "translateX"
	PropTranslateY Property = "translateY"
)

// Keyframe is one stop on a track. The track moves from the previous value
// to Value over Duration using Easing. Duration and Easing of the first
// keyframe are ignored: its Value is the starting value.
type Keyframe struct {
	Value    float64
	Duration time.Duration
	Easing   Easing
}

// Track animates one property through its keyframes.
type Track struct {
	Property  Property
	Keyframes []Keyframe
}

// Duration is the total running time of the track.
func (t Track) Duration() time.Duration {
	var d time.Duration
	for i := 1; i < len(t.Keyframes); i++ {
		d += t.Keyframes[i].Duration
	}
	return d
}

// ValueAt samples the track elapsed time after it started. Before the start
// it holds the first value, after the end it holds the last.
func (t Track) ValueAt(elapsed time.Duration) float64 {
	if len(t.Keyframes) == 0 {
		return 0
	}
	value := t.Keyframes[0].Value
	if elapsed <= 0 {
		return value
	}

	for _, kf := range t.Keyframes[1:] {
		if elapsed < kf.Duration {
			ease := kf.Easing
			if ease == nil {
				ease = Linear
			}
			p := float64(elapsed) / float64(kf.Duration)
			return value + (kf.Value-value)*ease(p)
		}
		elapsed -= kf.Duration
		value = kf.Value
	}
	return value
}

// FromTo builds a two-keyframe track.
func FromTo(p Property, from, to float64, d time.Duration, ease Easing) Track {
	return Track{
		Property: p,
		Keyframes: []Keyframe{
			{Value: from},
			{Value: to, Duration: d, Easing: ease},
		},
	}
}

// Request asks the engine to animate every target playing Selector.
// Target i (in registration order) starts after Delay + i*Stagger.
type Request struct {
	Selector Role
	Tracks   []Track
	Delay    time.Duration
	Stagger  time.Duration
}

// Duration is how long the request runs for n targets, delays included.
func (r Request) Duration(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	var longest time.Duration
	for _, t := range r.Tracks {
		longest = max(longest, t.Duration())
	}
	return r.Delay + time.Duration(n-1)*r.Stagger + longest
}
