package export

import (
	"context"
	"errors"
	"sync"

	"github.com/luminar-edu/studyplan/internal/schedule"
)

// ErrNotFound is returned when no schedule matches the requested id, or
// nothing has been generated yet.
var ErrNotFound = errors.New("schedule not found")

// Store keeps recently generated schedules addressable for the download
// endpoints. This is an ephemeral download buffer, not persistence:
// implementations may drop entries at any time.
type Store interface {
	// Put stores a result under id and marks it as the latest.
	Put(ctx context.Context, id string, res schedule.Result) error
	// Get returns the result stored under id.
	Get(ctx context.Context, id string) (schedule.Result, error)
	// Last returns the most recently stored result.
	Last(ctx context.Context) (schedule.Result, error)
}

// MemoryStore is the in-process Store used when no cache URL is
// configured.
type MemoryStore struct {
	mu      sync.RWMutex
	results map[string]schedule.Result
	lastID  string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{results: make(map[string]schedule.Result)}
}

func (s *MemoryStore) Put(_ context.Context, id string, res schedule.Result) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[id] = res
	s.lastID = id
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (schedule.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.results[id]
	if !ok {
		return schedule.Result{}, ErrNotFound
	}
	return res, nil
}

func (s *MemoryStore) Last(_ context.Context) (schedule.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastID == "" {
		return schedule.Result{}, ErrNotFound
	}
	return s.results[s.lastID], nil
}
