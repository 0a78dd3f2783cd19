// Package timesheet is the data store and slot-assignment engine: the client
// and activity collections with their invariants, the per-slot toggle
// primitive, day freezing, and the derived half-hour merge view.
//
// All operations are synchronous. Each one re-reads the collections it needs
// from the backing key-value store and writes whole collections back, so a
// change signal from another consumer only requires re-reading.
package timesheet

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/valery-blanc/timesheet-pal/internal/kv"
)

// Storage keys, one JSON array per collection plus small preference records.
const (
	keyClients     = "ts-clients"
	keyActivities  = "ts-activities"
	keyEntries     = "ts-entries"
	keyFrozen      = "ts-frozen"
	keyWorkHours   = "ts-work-hours"
	keyViewDate    = "ts-current-view-date"
	keySelClient   = "ts-selected-client"
	keySelActivity = "ts-selected-activity"
)

// Validation and lookup errors returned by repository operations. Refusals
// that are part of normal flow (delete while referenced, toggle on a frozen
// day) are reported as boolean returns instead.
var (
	ErrEmptyName       = errors.New("name must not be empty")
	ErrDuplicateName   = errors.New("a client with that name already exists")
	ErrBadShortCode    = errors.New("short code must be 1-3 characters")
	ErrNotFound        = errors.New("not found")
	ErrIncompleteOrder = errors.New("reorder requires the full set of activity ids")
	ErrBadWorkHours    = errors.New("work hours must satisfy 0 <= start <= end <= 23")
)

// Store is the entity repository. It owns no state of its own: every
// operation loads fresh collections from the key-value store and saves the
// whole collection back on mutation.
type Store struct {
	kv  kv.Store
	now func() time.Time
}

// New creates a Store over the given key-value backend.
func New(s kv.Store) *Store {
	return NewWithClock(s, time.Now)
}

// NewWithClock creates a Store with an injected clock, for deterministic
// timestamps in tests.
func NewWithClock(s kv.Store, now func() time.Time) *Store {
	return &Store{kv: s, now: now}
}

// nowMillis returns the current time as Unix milliseconds, the timestamp
// format of the stored records.
func (s *Store) nowMillis() int64 {
	return s.now().UnixMilli()
}

// load decodes the collection at key into out. An absent key or a value that
// fails to decode leaves out at its zero value: a corrupted collection
// degrades to an empty one rather than an error.
func (s *Store) load(key string, out any) error {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil
	}
	return nil
}

func (s *Store) loadClients() ([]Client, error) {
	var clients []Client
	err := s.load(keyClients, &clients)
	return clients, err
}

func (s *Store) saveClients(clients []Client) error {
	return s.kv.Set(keyClients, clients)
}

func (s *Store) loadActivities() ([]Activity, error) {
	var activities []Activity
	err := s.load(keyActivities, &activities)
	return activities, err
}

func (s *Store) saveActivities(activities []Activity) error {
	return s.kv.Set(keyActivities, activities)
}

func (s *Store) loadEntries() ([]TimeEntry, error) {
	var entries []TimeEntry
	err := s.load(keyEntries, &entries)
	return entries, err
}

func (s *Store) saveEntries(entries []TimeEntry) error {
	return s.kv.Set(keyEntries, entries)
}

func (s *Store) loadFrozen() ([]FrozenDay, error) {
	var frozen []FrozenDay
	err := s.load(keyFrozen, &frozen)
	return frozen, err
}

func (s *Store) saveFrozen(frozen []FrozenDay) error {
	return s.kv.Set(keyFrozen, frozen)
}

// Entries returns every stored time entry, in storage order.
func (s *Store) Entries() ([]TimeEntry, error) {
	return s.loadEntries()
}

// FrozenDays returns every frozen-day record, in storage order.
func (s *Store) FrozenDays() ([]FrozenDay, error) {
	return s.loadFrozen()
}

// Watch exposes the change signal for the named collection so callers can
// re-read after writes from another consumer. Keys match the storage keys;
// WatchEntries etc. cover the common cases.
func (s *Store) WatchEntries() <-chan struct{} { return s.kv.Watch(keyEntries) }
func (s *Store) WatchClients() <-chan struct{} { return s.kv.Watch(keyClients) }
func (s *Store) WatchFrozen() <-chan struct{}  { return s.kv.Watch(keyFrozen) }
