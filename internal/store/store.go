package store

import (
	"sync"

	"github.com/kgrieve/rosterdeck/internal/roster"
)

// Snapshot is an immutable view of the roster at a point in time. Users is a
// defensive copy; mutating it never affects the store.
//
// Version changes on every state change, selection included; it drives
// provider republication. CollectionVersion changes only when the collection
// itself does, so projections keyed on it stay memoized across selection
// moves.
type Snapshot struct {
	Users             roster.Collection
	Selected          *roster.User
	Version           uint64
	CollectionVersion uint64
}

// Store owns the canonical user collection. It assigns ids, tracks the
// current selection, and bumps a version counter whenever either changes so
// downstream consumers can republish or memoize cheaply.
type Store struct {
	mu         sync.RWMutex
	users      roster.Collection
	selected   int64 // 0 = nothing selected
	nextID     int64
	version    uint64
	collectVer uint64
}

// New creates a store seeded with the given collection. Assigned ids start
// above the largest seeded id and are never reused.
func New(seed roster.Collection) *Store {
	return &Store{
		users:  seed.Clone(),
		nextID: seed.MaxID() + 1,
	}
}

// Add assigns a fresh id to the user, appends it, and returns the created
// entry. Any id on the input is ignored. Add never fails.
func (s *Store) Add(u roster.User) roster.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = s.nextID
	s.nextID++
	s.users = s.users.Add(u)
	s.version++
	s.collectVer++
	return u.Clone()
}

// Remove drops the user with the given id. Absent ids are a silent no-op and
// leave the version untouched. Removing the selected user clears the
// selection.
func (s *Store) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users.Find(id); !ok {
		return
	}
	s.users = s.users.Remove(id)
	if s.selected == id {
		s.selected = 0
	}
	s.version++
	s.collectVer++
}

// Update merges the patch into the user with the given id. Absent ids are a
// silent no-op.
func (s *Store) Update(id int64, p roster.Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users.Find(id); !ok {
		return
	}
	s.users = s.users.Update(id, p)
	s.version++
	s.collectVer++
}

// Select marks the user with the given id as current. Zero clears the
// selection; an absent id is ignored.
func (s *Store) Select(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != 0 {
		if _, ok := s.users.Find(id); !ok {
			return
		}
	}
	if s.selected == id {
		return
	}
	s.selected = id
	s.version++
}

// Version returns the current change counter without copying the collection.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Users:             s.users.Clone(),
		Version:           s.version,
		CollectionVersion: s.collectVer,
	}
	if s.selected != 0 {
		if u, ok := s.users.Find(s.selected); ok {
			sel := u.Clone()
			snap.Selected = &sel
		}
	}
	return snap
}
