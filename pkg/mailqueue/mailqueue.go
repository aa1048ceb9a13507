// Package mailqueue paces outbound email so a burst of proximity alerts does
// not trip the mail provider's rate limits.
package mailqueue

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/parkwatch/parkwatch/pkg/logger"
)

// Payload is a single outbound email.
type Payload struct {
	To      string
	Subject string
	Body    string
}

// Sender delivers one email. Implementations may block on network I/O.
type Sender interface {
	Send(p Payload) error
}

// Options tune the drain loop. Zero values pick the defaults below.
type Options struct {
	BatchSize     int           // messages sent concurrently per batch (default 2)
	BatchInterval time.Duration // minimum spacing between batch starts (default 1s)
	SendTimeout   time.Duration // per-message delivery bound (default 15s)
}

// Queue is an in-process email queue. Enqueue is fire-and-forget; a single
// drain goroutine sends batches, paced by a rate limiter. Enqueue during an
// active drain is safe and the running loop picks the new items up.
type Queue struct {
	sender      Sender
	logger      *logger.Logger
	batchSize   int
	sendTimeout time.Duration
	limiter     *rate.Limiter

	mu       sync.Mutex
	items    []Payload
	draining bool
}

func New(sender Sender, log *logger.Logger, opts Options) *Queue {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 2
	}
	if opts.BatchInterval <= 0 {
		opts.BatchInterval = time.Second
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = 15 * time.Second
	}
	return &Queue{
		sender:      sender,
		logger:      log,
		batchSize:   opts.BatchSize,
		sendTimeout: opts.SendTimeout,
		limiter:     rate.NewLimiter(rate.Every(opts.BatchInterval), 1),
	}
}

// Enqueue appends p and starts the drain loop if one is not already running.
func (q *Queue) Enqueue(p Payload) {
	q.mu.Lock()
	q.items = append(q.items, p)
	start := !q.draining
	if start {
		q.draining = true
	}
	q.mu.Unlock()

	if start {
		go q.drain()
	}
}

// Pending returns the number of queued, not yet sent messages.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *Queue) drain() {
	for {
		if err := q.limiter.Wait(context.Background()); err != nil {
			return
		}

		q.mu.Lock()
		n := q.batchSize
		if n > len(q.items) {
			n = len(q.items)
		}
		batch := make([]Payload, n)
		copy(batch, q.items[:n])
		q.items = q.items[n:]
		q.mu.Unlock()

		var wg sync.WaitGroup
		for _, p := range batch {
			wg.Add(1)
			go func(p Payload) {
				defer wg.Done()
				q.send(p)
			}(p)
		}
		wg.Wait()

		q.mu.Lock()
		if len(q.items) == 0 {
			q.draining = false
			q.mu.Unlock()
			return
		}
		q.mu.Unlock()
	}
}

// send delivers one message, bounded by the send timeout. A failure is
// logged and never stops the batch or the loop.
func (q *Queue) send(p Payload) {
	ctx, cancel := context.WithTimeout(context.Background(), q.sendTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- q.sender.Send(p)
	}()

	select {
	case err := <-done:
		if err != nil {
			q.logger.Errorf("failed to send email to %s: %v", p.To, err)
		}
	case <-ctx.Done():
		q.logger.Errorf("email send to %s timed out after %s", p.To, q.sendTimeout)
	}
}
