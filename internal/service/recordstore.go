package service

import (
	"sync"

	"github.com/tmurov/reqdesk/models"
)

// RecordStore holds the last-known full set of records. The snapshot is
// replaced wholesale by the sync orchestrator and patched in place by the
// transition workflow; every read hands out a copy so callers never observe a
// concurrent replace.
type RecordStore struct {
	mu       sync.RWMutex
	snapshot models.Snapshot
}

// NewRecordStore returns a store with an empty snapshot.
func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// Snapshot returns a copy of the current snapshot.
func (s *RecordStore) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(models.Snapshot, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// Replace swaps in a new snapshot wholesale.
func (s *RecordStore) Replace(next models.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = next
}

// Get returns the record with the given identifier.
func (s *RecordStore) Get(recordID string) (models.Requisition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.Find(recordID)
}

// SetStatus updates the status of one record in place and reports whether
// the record exists.
func (s *RecordStore) SetStatus(recordID string, status models.Status) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snapshot {
		if s.snapshot[i].ID == recordID {
			s.snapshot[i].Status = status
			return true
		}
	}
	return false
}

// Len returns the number of records in the current snapshot.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.snapshot)
}
