package control

import (
	"context"
	"runtime"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Priority tells the host how urgently control should come back.
type Priority int

const (
	// Immediate asks for control back as soon as other work had a chance to run.
	Immediate Priority = iota
	// Paced asks for control back after roughly the given delay.
	Paced
)

// String returns "immediate" or "paced".
func (p Priority) String() string {
	if p == Immediate {
		return "immediate"
	}

	return "paced"
}

// Scheduler is the host side of the per-step yield. Yield returns once
// control may come back to the run, or with ctx.Err() when ctx is done
// first. Implementations may wait longer than delay.
type Scheduler interface {
	Yield(ctx context.Context, p Priority, delay time.Duration) error
}

// PacedScheduler spaces paced yields at least delay apart with a
// token-bucket limiter of burst 1. The bucket starts empty, so the first
// paced yield already waits one delay. A change of delay (a new speed)
// takes effect on the next call.
//
// A PacedScheduler is safe for concurrent use, but two runs sharing one
// would share one budget; give every run its own.
type PacedScheduler struct {
	mu    sync.Mutex
	lim   *rate.Limiter
	every time.Duration
}

// NewPacedScheduler returns a scheduler paced for DefaultSpeed with its
// only token already spent.
func NewPacedScheduler() *PacedScheduler {
	every := StepDelay(DefaultSpeed)
	lim := rate.NewLimiter(rate.Every(every), 1)
	lim.Allow()

	return &PacedScheduler{lim: lim, every: every}
}

// Yield implements Scheduler.
func (p *PacedScheduler) Yield(ctx context.Context, pr Priority, delay time.Duration) error {
	if pr == Immediate || delay <= 0 {
		runtime.Gosched()

		return ctx.Err()
	}

	p.mu.Lock()
	if delay != p.every {
		p.every = delay
		p.lim.SetLimit(rate.Every(delay))
	}
	r := p.lim.Reserve()
	p.mu.Unlock()

	wait := r.Delay()
	if wait <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		r.Cancel()

		return ctx.Err()
	}
}

// ImmediateScheduler never sleeps: every yield is a runtime.Gosched.
// Tests and benchmarks use it to run at full speed with the same
// interleaving points as a paced run.
type ImmediateScheduler struct{}

// Yield implements Scheduler.
func (ImmediateScheduler) Yield(ctx context.Context, _ Priority, _ time.Duration) error {
	runtime.Gosched()

	return ctx.Err()
}
