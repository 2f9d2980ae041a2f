// Package state holds the dashboard's committed snapshot and error slot and
// publishes change events to observers.
//
// A Store is driven from a single goroutine (the Bubble Tea update loop) and
// is not safe for concurrent use. Each change swaps in a freshly built
// snapshot, so observers never see a half-updated one.
package state

import (
	"github.com/rileyhilliard/crmdash/internal/crm"
	"github.com/rileyhilliard/crmdash/internal/logger"
)

// RefreshFailedMessage is the user-facing text shown when a refresh fails.
const RefreshFailedMessage = "Failed to generate CRM data. Please try again."

// Store is the dashboard state.
type Store struct {
	sampler   crm.Sampler
	snapshot  *crm.Snapshot
	alert     Alert
	observers []Observer
	seq       uint64
	log       logger.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithInitial replaces the placeholder snapshot the store starts with.
func WithInitial(snap *crm.Snapshot) Option {
	return func(s *Store) {
		if snap != nil {
			s.snapshot = snap
		}
	}
}

// NewStore creates a store holding the placeholder snapshot and no error.
func NewStore(sampler crm.Sampler, opts ...Option) *Store {
	s := &Store{
		sampler:  sampler,
		snapshot: crm.Placeholder(),
		log:      logger.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers an observer. Observers are notified in subscription order.
func (s *Store) Subscribe(o Observer) {
	s.observers = append(s.observers, o)
}

// Snapshot returns the committed snapshot. Callers must not modify it.
func (s *Store) Snapshot() *crm.Snapshot {
	return s.snapshot
}

// Alert returns the live error message, if any.
func (s *Store) Alert() (string, bool) {
	return s.alert.Message()
}

// AlertSeq counts how many times the alert has been raised.
func (s *Store) AlertSeq() uint64 {
	return s.alert.Seq()
}

// Refresh asks the sampler for a new snapshot.
//
// On success the snapshot is replaced, the alert stays cleared and
// EventDataChanged is published. On failure the previous snapshot is kept,
// the alert is set to RefreshFailedMessage and EventErrorChanged is
// published. Exactly one event fires per call. The returned error is the
// GenerationFailure, for logging; the alert already carries it to the user.
func (s *Store) Refresh() error {
	s.alert.Clear()

	snap, err := s.sampler.Generate()
	if err == nil && snap == nil {
		err = crm.GenerationFailure(nil)
	}
	if err != nil {
		s.alert.Set(RefreshFailedMessage)
		s.log.Warn("refresh failed, keeping previous snapshot: %v", err)
		s.publish(EventErrorChanged)
		return err
	}

	s.snapshot = snap
	s.log.Debug("refresh committed snapshot (customers=%d deals=%d)", snap.TotalCustomers, snap.ActiveDeals)
	s.publish(EventDataChanged)
	return nil
}

// SetField applies a manual edit. See crm.Snapshot.With for the rules; a
// violation returns an errors.ErrField error and leaves the store untouched.
// The live alert is not affected.
func (s *Store) SetField(f crm.Field, index *int, values ...float64) error {
	next, err := s.snapshot.With(f, index, values...)
	if err != nil {
		return err
	}
	s.snapshot = next
	if index != nil {
		s.log.Debug("edited %s[%d]", f, *index)
	} else {
		s.log.Debug("edited %s", f)
	}
	s.publish(EventFieldEdited)
	return nil
}

func (s *Store) publish(kind EventKind) {
	s.seq++
	msg, _ := s.alert.Message()
	ev := Event{
		Kind:     kind,
		Snapshot: s.snapshot,
		Message:  msg,
		Seq:      s.seq,
	}
	for _, o := range s.observers {
		o.Notify(ev)
	}
}
