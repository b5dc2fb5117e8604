package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/dreamladder/backoffice/internal/core/ports"
)

type captureNotifier struct {
	mu       sync.Mutex
	received []ports.EnquiryNotification
	done     chan struct{}
	want     int
}

func (n *captureNotifier) Notify(_ context.Context, note ports.EnquiryNotification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.received = append(n.received, note)
	if len(n.received) == n.want {
		close(n.done)
	}
	return nil
}

func TestDispatcher_DeliversAllNotifications(t *testing.T) {
	notifier := &captureNotifier{done: make(chan struct{}), want: 5}
	d := NewDispatcher(3, notifier, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	ids := []string{"a1", "b2", "c3", "d4", "e5"}
	for _, id := range ids {
		d.Enqueue(ports.EnquiryNotification{EnquiryID: id, ReferenceNumber: "REF", Type: "general"})
	}

	select {
	case <-notifier.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out; delivered %d of %d", len(notifier.received), notifier.want)
	}

	seen := map[string]bool{}
	notifier.mu.Lock()
	for _, n := range notifier.received {
		seen[n.EnquiryID] = true
	}
	notifier.mu.Unlock()
	for _, id := range ids {
		if !seen[id] {
			t.Errorf("notification for %q not delivered", id)
		}
	}
}

func TestDispatcher_ShardIsStable(t *testing.T) {
	d := NewDispatcher(4, &captureNotifier{done: make(chan struct{}), want: 0}, zerolog.Nop())

	first := d.shardIndex("enquiry-123")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("enquiry-123"); got != first {
			t.Fatalf("shard index changed: %d != %d", got, first)
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index out of range: %d", first)
	}
}
