package background

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRegisterRejectsInvalidJob(t *testing.T) {
	s := NewScheduler()

	cases := []Job{
		{Name: "", Run: func(ctx context.Context) error { return nil }, Interval: time.Second},
		{Name: "no-runner", Run: nil, Interval: time.Second},
		{Name: "no-interval", Run: func(ctx context.Context) error { return nil }, Interval: 0},
	}
	for _, job := range cases {
		if err := s.Register(job); !errors.Is(err, ErrInvalidJob) {
			t.Fatalf("expected ErrInvalidJob for %q, got %v", job.Name, err)
		}
	}
}

func TestRegisterAfterStartFails(t *testing.T) {
	s := NewScheduler()
	s.Start(context.Background())
	defer s.Shutdown(context.Background())

	err := s.Register(Job{
		Name:     "late",
		Run:      func(ctx context.Context) error { return nil },
		Interval: time.Second,
	})
	if !errors.Is(err, ErrSchedulerStarted) {
		t.Fatalf("expected ErrSchedulerStarted, got %v", err)
	}
}

func TestJobRunsImmediatelyOnStart(t *testing.T) {
	s := NewScheduler()

	ran := make(chan struct{}, 1)
	err := s.Register(Job{
		Name: "immediate",
		Run: func(ctx context.Context) error {
			select {
			case ran <- struct{}{}:
			default:
			}
			return nil
		},
		Interval: time.Hour,
	})
	if err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	s.Start(context.Background())
	defer s.Shutdown(context.Background())

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected job to run once at startup")
	}
}

func TestShutdownStopsJobs(t *testing.T) {
	s := NewScheduler()

	if err := s.Register(Job{
		Name:     "ticker",
		Run:      func(ctx context.Context) error { return nil },
		Interval: 10 * time.Millisecond,
	}); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}

	s.Start(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("expected clean shutdown, got %v", err)
	}
}

func TestShutdownWithoutStartIsNoop(t *testing.T) {
	s := NewScheduler()
	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
}

func TestJobCount(t *testing.T) {
	s := NewScheduler()
	if s.JobCount() != 0 {
		t.Fatalf("expected empty scheduler")
	}
	if err := s.Register(Job{
		Name:     "one",
		Run:      func(ctx context.Context) error { return nil },
		Interval: time.Second,
	}); err != nil {
		t.Fatalf("unexpected register error: %v", err)
	}
	if s.JobCount() != 1 {
		t.Fatalf("expected 1 registered job, got %d", s.JobCount())
	}
}
