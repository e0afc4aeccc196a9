package domain

import "time"

// OutcomeStatus says how a supervised worker ended
type OutcomeStatus string

const (
	Completed OutcomeStatus = "completed"
	TimedOut  OutcomeStatus = "timed_out"
)

// Outcome is the result of running a worker under a deadline
type Outcome struct {
	Status   OutcomeStatus
	Elapsed  time.Duration
	Output   string
	ExitCode int
	Killed   bool // The worker ignored the cancel signal and had to be killed
}
