package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddAssignsUniqueIDs(t *testing.T) {
	s := NewStore()
	defer s.Close()

	a := s.AddWithTTL(KindInfo, "first", 0)
	b := s.AddWithTTL(KindInfo, "second", 0)

	assert.NotEmpty(t, a.ID)
	assert.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestStore_InsertionOrderPreserved(t *testing.T) {
	s := NewStore()
	defer s.Close()

	s.AddWithTTL(KindInfo, "one", 0)
	s.AddWithTTL(KindSuccess, "two", 0)
	s.AddWithTTL(KindWarning, "three", 0)

	items := s.List()
	require.Len(t, items, 3)
	assert.Equal(t, "one", items[0].Message)
	assert.Equal(t, "two", items[1].Message)
	assert.Equal(t, "three", items[2].Message)
}

func TestStore_ExpiresAfterTTL(t *testing.T) {
	s := NewStore()
	defer s.Close()

	s.AddWithTTL(KindInfo, "short-lived", 30*time.Millisecond)
	require.Len(t, s.List(), 1)

	assert.Eventually(t, func() bool {
		return len(s.List()) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestStore_ZeroTTLIsSticky(t *testing.T) {
	s := NewStore()
	defer s.Close()

	n := s.AddWithTTL(KindError, "sticky", 0)

	time.Sleep(80 * time.Millisecond)
	require.Len(t, s.List(), 1)

	s.Remove(n.ID)
	assert.Empty(t, s.List())
}

func TestStore_DefaultTTLRecorded(t *testing.T) {
	s := NewStore()
	defer s.Close()

	n := s.Add(KindSuccess, "default")
	assert.Equal(t, DefaultTTL.Milliseconds(), n.DurationMS)
	assert.Len(t, s.List(), 1)
}

func TestStore_RemoveIsIdempotent(t *testing.T) {
	s := NewStore()
	defer s.Close()

	n := s.AddWithTTL(KindInfo, "once", 0)

	s.Remove(n.ID)
	assert.Empty(t, s.List())

	// Second removal and unknown ids are no-ops.
	s.Remove(n.ID)
	s.Remove("no-such-id")
	assert.Empty(t, s.List())
}

func TestStore_ManualRemoveCancelsTimer(t *testing.T) {
	s := NewStore()
	defer s.Close()

	doomed := s.AddWithTTL(KindInfo, "doomed", 40*time.Millisecond)
	survivor := s.AddWithTTL(KindInfo, "survivor", 0)

	s.Remove(doomed.ID)

	// Let the cancelled timer's deadline pass; the survivor must be intact.
	time.Sleep(100 * time.Millisecond)
	items := s.List()
	require.Len(t, items, 1)
	assert.Equal(t, survivor.ID, items[0].ID)
}

func TestStore_IndependentTimers(t *testing.T) {
	s := NewStore()
	defer s.Close()

	s.AddWithTTL(KindInfo, "fast", 30*time.Millisecond)
	slow := s.AddWithTTL(KindInfo, "slow", 10*time.Second)

	assert.Eventually(t, func() bool {
		items := s.List()
		return len(items) == 1 && items[0].ID == slow.ID
	}, time.Second, 10*time.Millisecond)
}

func TestStore_ListReturnsSnapshot(t *testing.T) {
	s := NewStore()
	defer s.Close()

	s.AddWithTTL(KindInfo, "original", 0)

	items := s.List()
	items[0].Message = "mutated"

	assert.Equal(t, "original", s.List()[0].Message)
}

func TestStore_Subscribe(t *testing.T) {
	s := NewStore()
	defer s.Close()

	var mu sync.Mutex
	var last []Notification
	unsubscribe := s.Subscribe(func(items []Notification) {
		mu.Lock()
		last = items
		mu.Unlock()
	})

	n := s.AddWithTTL(KindInfo, "hello", 0)
	mu.Lock()
	require.Len(t, last, 1)
	assert.Equal(t, n.ID, last[0].ID)
	mu.Unlock()

	s.Remove(n.ID)
	mu.Lock()
	assert.Empty(t, last)
	mu.Unlock()

	unsubscribe()
	s.AddWithTTL(KindInfo, "after unsubscribe", 0)
	mu.Lock()
	assert.Empty(t, last)
	mu.Unlock()
}

func TestStore_ConcurrentAddRemove(t *testing.T) {
	s := NewStore()
	defer s.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := s.AddWithTTL(KindInfo, "spam", 20*time.Millisecond)
			s.Remove(n.ID)
		}()
	}
	wg.Wait()

	assert.Empty(t, s.List())
}
