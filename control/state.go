package control

import "fmt"

// State is the lifecycle position of one run.
type State int

const (
	// Idle is the initial state; Begin starts the run.
	Idle State = iota
	// Running means steps execute and yield between each other.
	Running
	// Paused means the next Checkpoint blocks until Resume or Stop.
	Paused
	// Completed means the algorithm finished every step.
	Completed
	// Stopped means the run was cancelled; its result is partial.
	Stopped
)

var stateNames = [...]string{
	Idle:      "idle",
	Running:   "running",
	Paused:    "paused",
	Completed: "completed",
	Stopped:   "stopped",
}

// String returns the lower-case name of s.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}

	return stateNames[s]
}

// Terminal reports whether s is Completed or Stopped.
func (s State) Terminal() bool { return s == Completed || s == Stopped }

// Live reports whether a run in state s is still executing steps.
func (s State) Live() bool { return s == Running || s == Paused }
