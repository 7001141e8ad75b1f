package state

import (
	"fmt"
	"sync"
	"time"
)

// Snapshot is the liveness view at a point in time.
type Snapshot struct {
	Online    bool
	Checked   bool
	CheckedAt time.Time
	LastError error
}

// Status returns the indicator label for the header and the status command.
func (s Snapshot) Status() string {
	switch {
	case !s.Checked:
		return "checking"
	case s.Online:
		return "online"
	default:
		return "offline"
	}
}

// Store coordinates concurrent access to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Record stores a probe outcome. err is kept for display only; a nil err with
// online false means the backend answered with a failure.
func (s *Store) Record(online bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot = Snapshot{
		Online:    online,
		Checked:   true,
		CheckedAt: time.Now(),
		LastError: err,
	}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
