package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/dreamladder/backoffice/internal/api/metrics"
	"github.com/dreamladder/backoffice/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

var _ ports.EnquiryQueue = (*Dispatcher)(nil)

// Dispatcher routes enquiry notifications to a fixed set of workers using
// consistent hashing on the enquiry ID, so retries for the same enquiry never
// interleave.
type Dispatcher struct {
	workers  []chan ports.EnquiryNotification
	notifier ports.Notifier
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.EnquiryNotification, numWorkers),
		notifier: notifier,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.EnquiryNotification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a notification to the worker responsible for its enquiry.
// Non-blocking up to channelBuffer capacity; the HTTP handler never waits on
// notification delivery.
func (d *Dispatcher) Enqueue(n ports.EnquiryNotification) {
	idx := d.shardIndex(n.EnquiryID)
	d.workers[idx] <- n
	metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps an enquiry ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(enquiryID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(enquiryID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.EnquiryNotification) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			metrics.NotificationsQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.notifier.Notify(ctx, n); err != nil {
				d.log.Error().Err(err).
					Str("enquiry_id", n.EnquiryID).
					Int("worker_id", id).
					Msg("enquiry notification failed")
			}
		}
	}
}
