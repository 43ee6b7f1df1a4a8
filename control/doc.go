// Package control implements the cooperative execution controller that
// every MST run checks in with between steps.
//
// State machine (one Controller per run):
//
//	Idle ──Begin──▶ Running ──Pause──▶ Paused
//	                  │  ◀──Resume──────┘
//	                  ├──Finish──▶ Completed
//	                  └──Stop────▶ Stopped   (also from Idle and Paused)
//	any ──Reset──▶ Idle
//
// Completed and Stopped are terminal; only Reset leaves them. Calls that do
// not apply to the current state (Resume on a stopped run, Pause while
// idle, a second Stop) are no-ops.
//
// Begin hands the run goroutine a *Run, which it drives with two calls per
// step and closes with Finish:
//
//	r, err := c.Begin()
//	...
//	if err := r.Checkpoint(ctx); err != nil { // ErrStopped
//		return partial
//	}
//	... one unit of work ...
//	if err := r.Yield(ctx); err != nil {
//		return partial
//	}
//
// Reset ends the current Run for good: after a fresh Begin the old Run
// still reports ErrStopped, so two executions never share a controller.
//
// Checkpoint blocks while the run is paused and wakes on Resume, Stop, or
// ctx cancellation; there is no polling. Yield hands control to a
// Scheduler for max(2ms, 20ms×speed); a Stop or a cancelled ctx cuts the
// wait short. Cancelling ctx is treated exactly like Stop.
//
// Each Controller gets its own Scheduler, so pausing or slowing one run
// never changes the pacing of another.
package control
