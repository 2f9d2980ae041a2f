package anim

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rileyhilliard/crmdash/internal/logger"
)

// Props are the visual properties of a target at a point in time.
type Props struct {
	Opacity float64
	OffsetX float64
	OffsetY float64
}

// RestProps is the appearance of a target that was never animated.
func RestProps() Props {
	return Props{Opacity: 1}
}

func (p *Props) set(prop Property, v float64) {
	switch prop {
	case PropOpacity:
		p.Opacity = v
	case PropTranslateX:
		p.OffsetX = v
	case PropTranslateY:
		p.OffsetY = v
	}
}

// timeline is one track playing on one target.
type timeline struct {
	request string
	start   time.Time
	track   Track
}

func (tl timeline) end() time.Time {
	return tl.start.Add(tl.track.Duration())
}

// Engine plays requests against registered targets. It is driven from a
// single goroutine and is not safe for concurrent use.
type Engine struct {
	now       func() time.Time
	log       logger.Logger
	targets   map[Role][]string
	timelines map[string]map[Property]timeline
	rest      map[string]Props
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithClock sets the time source used to stamp new requests.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// WithEngineLogger sets the engine logger.
func WithEngineLogger(l logger.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// NewEngine creates an engine with no targets.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		now:       time.Now,
		log:       logger.Noop(),
		targets:   make(map[Role][]string),
		timelines: make(map[string]map[Property]timeline),
		rest:      make(map[string]Props),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetTargets replaces the targets playing role, in order. Targets that no
// longer play any role lose their animation state.
func (e *Engine) SetTargets(role Role, ids ...string) {
	old := e.targets[role]
	if len(ids) == 0 {
		delete(e.targets, role)
	} else {
		e.targets[role] = slices.Clone(ids)
	}

	for _, id := range old {
		if !e.registered(id) {
			delete(e.timelines, id)
			delete(e.rest, id)
		}
	}
}

// Targets returns the ids registered for role.
func (e *Engine) Targets(role Role) []string {
	return slices.Clone(e.targets[role])
}

func (e *Engine) registered(id string) bool {
	for _, ids := range e.targets {
		if slices.Contains(ids, id) {
			return true
		}
	}
	return false
}

// Animate starts req against the targets currently playing req.Selector and
// returns a request id. With no matching targets it does nothing and returns
// "". A track replaces any running track for the same target and property.
func (e *Engine) Animate(req Request) string {
	ids := e.targets[req.Selector]
	if len(ids) == 0 {
		e.log.Debug("animate %s: no targets", req.Selector)
		return ""
	}

	id := uuid.NewString()
	now := e.now()
	for i, target := range ids {
		start := now.Add(req.Delay + time.Duration(i)*req.Stagger)
		running := e.timelines[target]
		if running == nil {
			running = make(map[Property]timeline)
			e.timelines[target] = running
		}
		for _, track := range req.Tracks {
			running[track.Property] = timeline{request: id, start: start, track: track}
		}
	}

	e.log.Debug("animate %s: request %s on %d targets", req.Selector, id, len(ids))
	return id
}

// Props samples target id at now. Targets without animations report their
// resting props.
func (e *Engine) Props(id string, now time.Time) Props {
	p, ok := e.rest[id]
	if !ok {
		p = RestProps()
	}
	for prop, tl := range e.timelines[id] {
		p.set(prop, tl.track.ValueAt(now.Sub(tl.start)))
	}
	return p
}

// Active reports whether any timeline is still running (or waiting on its
// delay) at now.
func (e *Engine) Active(now time.Time) bool {
	for _, running := range e.timelines {
		for _, tl := range running {
			if now.Before(tl.end()) {
				return true
			}
		}
	}
	return false
}

// Running returns the ids of requests with a timeline still playing at now.
func (e *Engine) Running(now time.Time) []string {
	var ids []string
	for _, running := range e.timelines {
		for _, tl := range running {
			if now.Before(tl.end()) && !slices.Contains(ids, tl.request) {
				ids = append(ids, tl.request)
			}
		}
	}
	slices.Sort(ids)
	return ids
}

// Prune drops timelines that finished by now, keeping their final values as
// the target's resting props.
func (e *Engine) Prune(now time.Time) {
	for id, running := range e.timelines {
		for prop, tl := range running {
			if now.Before(tl.end()) {
				continue
			}
			p, ok := e.rest[id]
			if !ok {
				p = RestProps()
			}
			p.set(prop, tl.track.ValueAt(tl.track.Duration()))
			e.rest[id] = p
			delete(running, prop)
		}
		if len(running) == 0 {
			delete(e.timelines, id)
		}
	}
}
