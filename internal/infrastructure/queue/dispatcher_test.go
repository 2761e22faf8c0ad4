package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/orderhub/order-api/internal/core/ports"
)

type recordingService struct {
	mu     sync.Mutex
	events []ports.StatusEventInput
	done   chan struct{}
	expect int
}

func newRecordingService(expect int) *recordingService {
	return &recordingService{done: make(chan struct{}), expect: expect}
}

func (s *recordingService) Process(_ context.Context, event ports.StatusEventInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.expect {
		close(s.done)
	}
	return nil
}

func (s *recordingService) wait(t *testing.T) []ports.StatusEventInput {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for events, got %d of %d", len(s.events), s.expect)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ports.StatusEventInput, len(s.events))
	copy(out, s.events)
	return out
}

func TestDispatcher_ProcessesAllEvents(t *testing.T) {
	svc := newRecordingService(3)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.EnqueueBatch([]ports.StatusEventInput{
		{OrderID: 1, Status: "paid"},
		{OrderID: 2, Status: "paid"},
		{OrderID: 3, Status: "shipped"},
	})

	if got := svc.wait(t); len(got) != 3 {
		t.Fatalf("expected 3 processed events, got %d", len(got))
	}
}

func TestDispatcher_SameOrderKeepsArrivalOrder(t *testing.T) {
	svc := newRecordingService(3)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// All three target the same order, so they land on the same worker and
	// must be processed in arrival order.
	d.Enqueue(ports.StatusEventInput{OrderID: 5, Status: "pending"})
	d.Enqueue(ports.StatusEventInput{OrderID: 5, Status: "paid"})
	d.Enqueue(ports.StatusEventInput{OrderID: 5, Status: "shipped"})

	got := svc.wait(t)
	want := []string{"pending", "paid", "shipped"}
	for i, status := range want {
		if got[i].Status != status {
			t.Fatalf("event %d: expected %q, got %q", i, status, got[i].Status)
		}
	}
}

func TestDispatcher_DefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, newRecordingService(0), zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}
