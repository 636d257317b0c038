package export

import (
	"errors"
	"os"
	"testing"

	"github.com/luminar-edu/studyplan/internal/platform/cache"
)

func TestMemoryStore_Empty(t *testing.T) {
	s := NewMemoryStore()

	if _, err := s.Last(t.Context()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Last() on empty store error = %v, want ErrNotFound", err)
	}
	if _, err := s.Get(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() for unknown id error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_PutGetLast(t *testing.T) {
	s := NewMemoryStore()

	first := sampleResult()
	if err := s.Put(t.Context(), "id-1", first); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	second := sampleResult()
	second.StudentName = "Second Student"
	if err := s.Put(t.Context(), "id-2", second); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get(t.Context(), "id-1")
	if err != nil {
		t.Fatalf("Get(id-1) error = %v", err)
	}
	if got.StudentName != "Amaka Obi" {
		t.Errorf("Get(id-1).StudentName = %q, want Amaka Obi", got.StudentName)
	}

	last, err := s.Last(t.Context())
	if err != nil {
		t.Fatalf("Last() error = %v", err)
	}
	if last.StudentName != "Second Student" {
		t.Errorf("Last().StudentName = %q, want the most recent put", last.StudentName)
	}
}

// Redis round-trip needs a live instance; set STUDY_TEST_CACHE_URL to run.
func TestRedisStore_RoundTrip(t *testing.T) {
	url := os.Getenv("STUDY_TEST_CACHE_URL")
	if url == "" {
		t.Skip("STUDY_TEST_CACHE_URL not set")
	}

	c, err := cache.New(t.Context(), url)
	if err != nil {
		t.Fatalf("cache.New() error = %v", err)
	}
	defer c.Close()

	s := NewRedisStore(c)
	res := sampleResult()
	if err := s.Put(t.Context(), "test-id", res); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Get(t.Context(), "test-id")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.StudentName != res.StudentName || got.TotalWeeklyHours != res.TotalWeeklyHours {
		t.Errorf("Get() = %+v, want %+v", got, res)
	}

	last, err := s.Last(t.Context())
	if err != nil {
		t.Fatalf("Last() error = %v", err)
	}
	if last.StudentName != res.StudentName {
		t.Errorf("Last().StudentName = %q, want %q", last.StudentName, res.StudentName)
	}

	if _, err := s.Get(t.Context(), "no-such-id"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(no-such-id) error = %v, want ErrNotFound", err)
	}
}
