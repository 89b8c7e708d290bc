package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/photosbyzee/studio-portal/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes page views to a fixed set of workers using consistent
// hashing on the visitor key, so the dedup check and insert for one visitor
// never race each other.
type Dispatcher struct {
	workers []chan ports.PageViewInput
	service ports.PageViewService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.PageViewService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.PageViewInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.PageViewInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a view to the worker responsible for its visitor. Recording
// happens off the request path; when the worker's buffer is full the view is
// dropped rather than stalling the handler.
func (d *Dispatcher) Enqueue(view ports.PageViewInput) {
	ch := d.workers[d.shardIndex(view.VisitorKey)]
	select {
	case ch <- view:
	default:
		d.log.Warn().Str("path", view.Path).Msg("page view dropped, worker buffer full")
	}
}

// shardIndex maps a visitor key deterministically to a worker index.
func (d *Dispatcher) shardIndex(visitorKey string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(visitorKey))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.PageViewInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case view, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, view); err != nil {
				d.log.Error().Err(err).
					Str("path", view.Path).
					Int("worker_id", id).
					Msg("page view processing failed")
			}
		}
	}
}
