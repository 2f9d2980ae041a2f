package anim

import (
	"github.com/rileyhilliard/crmdash/internal/config"
	"github.com/rileyhilliard/crmdash/internal/logger"
	"github.com/rileyhilliard/crmdash/internal/state"
)

// Animator accepts fire-and-forget animation requests. *Engine implements it.
type Animator interface {
	Animate(Request) string
}

// Choreographer turns store events into transitions: a staggered chart
// entrance after new data and a shake plus fade when an error appears.
type Choreographer struct {
	animator Animator
	cfg      config.AnimationConfig
	log      logger.Logger
}

// NewChoreographer creates a choreographer that sends requests to a.
func NewChoreographer(a Animator, cfg config.AnimationConfig, l logger.Logger) *Choreographer {
	if l == nil {
		l = logger.Noop()
	}
	return &Choreographer{animator: a, cfg: cfg, log: l}
}

// Notify implements state.Observer.
func (c *Choreographer) Notify(ev state.Event) {
	if !c.cfg.Enabled {
		return
	}

	switch ev.Kind {
	case state.EventDataChanged:
		id := c.animator.Animate(c.RefreshRequest())
		c.log.Debug("refresh transition %q for revision %d", id, ev.Seq)
	case state.EventErrorChanged:
		if ev.Message == "" {
			return
		}
		id := c.animator.Animate(c.AlertRequest())
		c.log.Debug("alert transition %q for revision %d", id, ev.Seq)
	}
}

// RefreshRequest fades each chart container in while it slides up into
// place, one after another.
func (c *Choreographer) RefreshRequest() Request {
	r := c.cfg.Refresh
	ease := EasingNamed(r.Easing)
	return Request{
		Selector: RoleChartContainer,
		Tracks: []Track{
			FromTo(PropOpacity, 0, 1, r.Duration, ease),
			FromTo(PropTranslateY, r.Offset, 0, r.Duration, ease),
		},
		Stagger: r.Stagger,
	}
}

// AlertRequest shakes the alert left and right while it fades in with an
// elastic settle.
func (c *Choreographer) AlertRequest() Request {
	a := c.cfg.Alert
	shake := Track{Property: PropTranslateX, Keyframes: []Keyframe{{Value: 0}}}
	for _, v := range []float64{-a.Distance, a.Distance, -a.Distance, a.Distance, 0} {
		shake.Keyframes = append(shake.Keyframes, Keyframe{Value: v, Duration: a.Step, Easing: EaseInOutQuad})
	}

	return Request{
		Selector: RoleAlert,
		Tracks: []Track{
			shake,
			FromTo(PropOpacity, 0, 1, a.Fade, EaseOutElastic(a.Amplitude, a.Period)),
		},
	}
}
