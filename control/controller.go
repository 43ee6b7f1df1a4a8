package control

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"
)

// Sentinel errors.
var (
	// ErrNotIdle is returned by Begin when the run was already started.
	ErrNotIdle = errors.New("control: run is not idle")

	// ErrStopped is returned by Begin, Checkpoint, and Yield once the run
	// was stopped, reset, or its context ended. Engines turn it into a
	// partial result with State Stopped; it never reaches callers of the
	// catalog.
	ErrStopped = errors.New("control: run stopped")
)

// Pacing constants. The per-step delay is max(MinStepDelay, BaseStepDelay×speed).
const (
	BaseStepDelay = 20 * time.Millisecond
	MinStepDelay  = 2 * time.Millisecond
	DefaultSpeed  = 0.5
)

// StepDelay returns the paced delay for a speed multiplier.
func StepDelay(speed float64) time.Duration {
	d := time.Duration(float64(BaseStepDelay) * speed)
	if d < MinStepDelay {
		return MinStepDelay
	}

	return d
}

// validSpeed reports whether s lies in (0, 1].
func validSpeed(s float64) bool { return s > 0 && s <= 1 && !math.IsNaN(s) }

// Option configures a Controller.
type Option func(*Controller)

// WithScheduler sets the Scheduler used by Yield. Panics on nil.
func WithScheduler(s Scheduler) Option {
	if s == nil {
		panic("control: WithScheduler(nil)")
	}

	return func(c *Controller) { c.sched = s }
}

// WithSpeed sets the initial speed multiplier. Panics outside (0, 1].
func WithSpeed(speed float64) Option {
	if !validSpeed(speed) {
		panic(fmt.Sprintf("control: WithSpeed(%g) outside (0,1]", speed))
	}

	return func(c *Controller) { c.speed = speed }
}

// Controller is the per-run state machine. All methods are safe for
// concurrent use: the run goroutine drives the Run returned by Begin while
// any other goroutine may Pause, Resume, Stop, Reset, or SetSpeed.
type Controller struct {
	mu    sync.Mutex
	state State
	speed float64
	sched Scheduler

	// epoch counts Begin calls. A Run only acts while its epoch is current,
	// so a run superseded by Reset and a new Begin can never step again.
	epoch uint64

	// wake is closed whenever a paused run may continue (Resume, Stop,
	// Reset, Finish). Pause installs a fresh channel.
	wake chan struct{}

	// halt is cancelled by Stop and Reset so an in-flight Yield returns.
	halt       context.Context
	cancelHalt context.CancelFunc
}

// Run is one execution started by Controller.Begin. Its methods report
// ErrStopped (or false) once the controller was reset, even if a later
// Begin made the controller Running again.
type Run struct {
	c     *Controller
	epoch uint64
}

// New returns an idle Controller with DefaultSpeed and its own
// PacedScheduler unless options say otherwise.
func New(opts ...Option) *Controller {
	c := &Controller{speed: DefaultSpeed}
	for _, opt := range opts {
		opt(c)
	}
	if c.sched == nil {
		c.sched = NewPacedScheduler()
	}
	c.halt, c.cancelHalt = context.WithCancel(context.Background())

	return c
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Speed returns the current speed multiplier.
func (c *Controller) Speed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.speed
}

// SetSpeed changes the speed multiplier; the next Yield uses it. Values
// outside (0, 1] are ignored.
func (c *Controller) SetSpeed(speed float64) {
	if !validSpeed(speed) {
		return
	}
	c.mu.Lock()
	c.speed = speed
	c.mu.Unlock()
}

// Begin moves Idle → Running and returns the Run that owns this
// execution. It returns ErrStopped if the run was stopped before it began,
// and ErrNotIdle from any other state.
func (c *Controller) Begin() (*Run, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case Idle:
		c.state = Running
		c.epoch++

		return &Run{c: c, epoch: c.epoch}, nil
	case Stopped:
		return nil, ErrStopped
	default:
		return nil, fmt.Errorf("Begin: state %v: %w", c.state, ErrNotIdle)
	}
}

// Pause moves Running → Paused. The run blocks at its next Checkpoint.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Running {
		return
	}
	c.state = Paused
	c.wake = make(chan struct{})
}

// Resume moves Paused → Running and wakes the blocked Checkpoint.
func (c *Controller) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Paused {
		return
	}
	c.state = Running
	c.release()
}

// Stop moves Idle, Running, or Paused to Stopped. It takes effect at the
// run's next step boundary and cuts any in-flight Yield short.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Terminal() {
		return
	}
	c.state = Stopped
	c.release()
	c.cancelHalt()
}

// Reset forces any state back to Idle. A run still executing ends at its
// next step boundary as if stopped, and stays ended after a new Begin.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.release()
	c.cancelHalt()
	c.state = Idle
	c.epoch++
	c.halt, c.cancelHalt = context.WithCancel(context.Background())
}

// release closes the pause channel if one is open. Callers hold mu.
func (c *Controller) release() {
	if c.wake != nil {
		close(c.wake)
		c.wake = nil
	}
}

// Controller returns the controller r was started on.
func (r *Run) Controller() *Controller { return r.c }

// current reports whether r is still the controller's active execution.
// Callers hold mu.
func (r *Run) current() bool { return r.epoch == r.c.epoch }

// stop stops the controller only while r is still current.
func (r *Run) stop() {
	c := r.c
	c.mu.Lock()
	defer c.mu.Unlock()

	if !r.current() || c.state.Terminal() {
		return
	}
	c.state = Stopped
	c.release()
	c.cancelHalt()
}

// Finish moves Running or Paused → Completed once the algorithm has no
// steps left. It reports whether the transition happened; a run that was
// reset in the meantime cannot finish.
func (r *Run) Finish() bool {
	c := r.c
	c.mu.Lock()
	defer c.mu.Unlock()

	if !r.current() || !c.state.Live() {
		return false
	}
	c.state = Completed
	c.release()

	return true
}

// Checkpoint is the step-boundary gate. It returns nil when the run may
// perform its next step, blocks while paused, and returns ErrStopped once
// the run is no longer live or was superseded by Reset. A done ctx stops
// the run.
func (r *Run) Checkpoint(ctx context.Context) error {
	c := r.c
	for {
		c.mu.Lock()
		state, wake, current := c.state, c.wake, r.current()
		c.mu.Unlock()

		if !current {
			return ErrStopped
		}
		switch state {
		case Running:
			if ctx.Err() != nil {
				r.stop()

				return ErrStopped
			}

			return nil
		case Paused:
			select {
			case <-wake:
				// Re-read the state: Resume, Stop, Reset, or Finish.
			case <-ctx.Done():
				r.stop()

				return ErrStopped
			}
		default:
			return ErrStopped
		}
	}
}

// Yield hands control to the scheduler for the current step delay. It
// returns ErrStopped if the run was stopped, reset, or its ctx ended
// before or during the wait.
func (r *Run) Yield(ctx context.Context) error {
	c := r.c
	c.mu.Lock()
	if !r.current() || !c.state.Live() {
		c.mu.Unlock()

		return ErrStopped
	}
	delay := StepDelay(c.speed)
	halt, sched := c.halt, c.sched
	c.mu.Unlock()

	yctx, cancel := context.WithCancel(ctx)
	defer cancel()
	unhook := context.AfterFunc(halt, cancel)
	defer unhook()

	err := sched.Yield(yctx, Paced, delay)
	switch {
	case ctx.Err() != nil:
		r.stop()

		return ErrStopped
	case halt.Err() != nil:
		return ErrStopped
	case err != nil:
		return fmt.Errorf("Yield: %w", err)
	}

	return nil
}
