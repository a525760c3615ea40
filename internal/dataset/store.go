package dataset

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"gofit/adapters/tabular"
	"gofit/internal/errors"
)

// Entry is an uploaded table held in memory between the upload request and
// the test run. Nothing survives a restart; there is deliberately no
// persistence layer behind this.
type Entry struct {
	ID         string
	Filename   string
	Table      *tabular.Table
	UploadedAt time.Time
}

// Store is an in-memory registry of uploaded datasets keyed by ID.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*Entry
	limit   int
}

// NewStore creates a store that holds at most limit datasets; when the cap
// is reached the oldest upload is evicted.
func NewStore(limit int) *Store {
	return &Store{
		entries: make(map[string]*Entry),
		limit:   limit,
	}
}

// Put registers an uploaded table and returns its generated ID.
func (s *Store) Put(filename string, table *tabular.Table) *Entry {
	entry := &Entry{
		ID:         uuid.NewString(),
		Filename:   filename,
		Table:      table,
		UploadedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) >= s.limit {
		s.evictOldestLocked()
	}
	s.entries[entry.ID] = entry
	return entry
}

// Get returns the dataset with the given ID.
func (s *Store) Get(id string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, errors.NotFound("dataset")
	}
	return entry, nil
}

// Len returns the number of datasets currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *Store) evictOldestLocked() {
	var oldestID string
	var oldestAt time.Time
	for id, entry := range s.entries {
		if oldestID == "" || entry.UploadedAt.Before(oldestAt) {
			oldestID = id
			oldestAt = entry.UploadedAt
		}
	}
	if oldestID != "" {
		delete(s.entries, oldestID)
	}
}
