package jobs

import (
	"errors"
	"testing"

	"github.com/brandpulse/brandpulse/internal/core/domain"
	coreerrors "github.com/brandpulse/brandpulse/internal/core/errors"
)

func TestStore_EnqueueAndGet(t *testing.T) {
	s := NewStore(2)

	job, err := s.Enqueue("nike", 100, []domain.Platform{domain.PlatformReddit})
	if err != nil {
		t.Fatalf("Enqueue() error = %v", err)
	}

	if job.Status != StatusQueued {
		t.Errorf("Status = %q, want %q", job.Status, StatusQueued)
	}

	got, err := s.Get(job.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if got.Brand != "nike" || got.Limit != 100 {
		t.Errorf("Get() = %+v", got)
	}
}

func TestStore_GetUnknown(t *testing.T) {
	s := NewStore(2)

	if _, err := s.Get("nope"); !errors.Is(err, coreerrors.ErrJobNotFound) {
		t.Errorf("error = %v, want ErrJobNotFound", err)
	}
}

func TestStore_NoSources(t *testing.T) {
	s := NewStore(2)

	if _, err := s.Enqueue("nike", 100, nil); !errors.Is(err, coreerrors.ErrNoSources) {
		t.Errorf("error = %v, want ErrNoSources", err)
	}
}

func TestStore_QueueFull(t *testing.T) {
	s := NewStore(1)

	if _, err := s.Enqueue("nike", 100, []domain.Platform{domain.PlatformReddit}); err != nil {
		t.Fatalf("first Enqueue() error = %v", err)
	}

	if _, err := s.Enqueue("nike", 100, []domain.Platform{domain.PlatformReddit}); !errors.Is(err, coreerrors.ErrQueueFull) {
		t.Errorf("error = %v, want ErrQueueFull", err)
	}
}

func TestStore_NextDrainsInOrder(t *testing.T) {
	s := NewStore(4)

	a, _ := s.Enqueue("nike", 10, []domain.Platform{domain.PlatformReddit})
	b, _ := s.Enqueue("adidas", 10, []domain.Platform{domain.PlatformTwitter})

	first, ok := s.next()
	if !ok || first.ID != a.ID {
		t.Errorf("first next() = %v, %v", first, ok)
	}

	second, ok := s.next()
	if !ok || second.ID != b.ID {
		t.Errorf("second next() = %v, %v", second, ok)
	}

	if _, ok := s.next(); ok {
		t.Error("next() on empty queue should report no work")
	}
}
