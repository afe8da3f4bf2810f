package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Notification kinds
const (
	KindSuccess = "success"
	KindError   = "error"
	KindInfo    = "info"
	KindWarning = "warning"
)

// DefaultTTL is applied when a notification is added without an explicit
// duration.
const DefaultTTL = 5 * time.Second

// ValidKind reports whether k is one of the known notification kinds.
func ValidKind(k string) bool {
	switch k {
	case KindSuccess, KindError, KindInfo, KindWarning:
		return true
	}
	return false
}

// Notification is a transient user-facing message. DurationMS of 0 means the
// notification persists until removed explicitly.
type Notification struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Message    string    `json:"message"`
	DurationMS int64     `json:"duration"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Listener receives a snapshot of the active set after every change.
type Listener func([]Notification)

// Store holds the active notifications in insertion order and expires each
// one on its own timer. All state lives behind the store's lock and reads
// return copies, so callers never observe partial updates. Construct isolated
// instances per test; there is no package-level store.
type Store struct {
	mu      sync.Mutex
	items   []Notification
	timers  map[string]*time.Timer
	subs    map[int]Listener
	nextSub int
}

func NewStore() *Store {
	return &Store{
		timers: make(map[string]*time.Timer),
		subs:   make(map[int]Listener),
	}
}

// Add appends a notification that expires after DefaultTTL.
func (s *Store) Add(kind, message string) Notification {
	return s.AddWithTTL(kind, message, DefaultTTL)
}

// AddWithTTL appends a notification expiring after ttl. A ttl of 0 makes it
// sticky: it stays until Remove is called.
func (s *Store) AddWithTTL(kind, message string, ttl time.Duration) Notification {
	n := Notification{
		ID:         uuid.NewString(),
		Kind:       kind,
		Message:    message,
		DurationMS: ttl.Milliseconds(),
		CreatedAt:  time.Now().UTC(),
	}

	s.mu.Lock()
	s.items = append(s.items, n)
	if ttl != 0 {
		// Each notification gets its own timer; Remove is idempotent so a
		// timer firing after a manual removal is a harmless no-op.
		s.timers[n.ID] = time.AfterFunc(ttl, func() { s.Remove(n.ID) })
	}
	snapshot := s.snapshotLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	publish(listeners, snapshot)
	return n
}

// Remove deletes a notification by id and cancels its pending timer. Removing
// an unknown or already-removed id is a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}

	idx := -1
	for i := range s.items {
		if s.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return
	}

	next := make([]Notification, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)
	s.items = next

	snapshot := s.snapshotLocked()
	listeners := s.listenersLocked()
	s.mu.Unlock()

	publish(listeners, snapshot)
}

// List returns a copy of the active set in insertion order.
func (s *Store) List() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers a change listener and returns its unsubscribe func.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Close cancels every pending expiry timer. The store remains usable; this
// exists so tests and shutdown paths don't leak timers.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

func (s *Store) snapshotLocked() []Notification {
	out := make([]Notification, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) listenersLocked() []Listener {
	out := make([]Listener, 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func publish(listeners []Listener, snapshot []Notification) {
	for _, fn := range listeners {
		fn(snapshot)
	}
}
