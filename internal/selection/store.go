package selection

import "sync"

// State is a snapshot of the details-panel selection. The store keeps only
// the project id; the panel fetches the full record through the catalog, so a
// stale detail response can be detected by comparing its id against Selected.
type State struct {
	Open      bool   `json:"open"`
	ProjectID string `json:"projectId,omitempty"`
}

// Listener receives the new state after every change.
type Listener func(State)

// Store holds the single details-panel selection. Opening while already open
// replaces the selection; there is no history.
type Store struct {
	mu      sync.Mutex
	state   State
	subs    map[int]Listener
	nextSub int
}

func NewStore() *Store {
	return &Store{subs: make(map[int]Listener)}
}

// Open makes the panel visible and selects the given project id.
func (s *Store) Open(projectID string) {
	s.set(State{Open: true, ProjectID: projectID})
}

// Close hides the panel and clears the selection.
func (s *Store) Close() {
	s.set(State{})
}

// Toggle flips visibility without touching the stored id.
func (s *Store) Toggle() {
	s.mu.Lock()
	next := s.state
	next.Open = !next.Open
	s.state = next
	listeners := s.listenersLocked()
	s.mu.Unlock()

	publish(listeners, next)
}

// Selected returns the current state.
func (s *Store) Selected() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
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

func (s *Store) set(next State) {
	s.mu.Lock()
	s.state = next
	listeners := s.listenersLocked()
	s.mu.Unlock()

	publish(listeners, next)
}

func (s *Store) listenersLocked() []Listener {
	out := make([]Listener, 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func publish(listeners []Listener, state State) {
	for _, fn := range listeners {
		fn(state)
	}
}
