package execution

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync/atomic"
	"syscall"
	"time"

	"go.uber.org/zap"

	"checker/internal/config"
	"checker/internal/domain"
)

// minWaitDelay bounds the wait for a worker after it was signalled when no grace period is set
const minWaitDelay = 50 * time.Millisecond

// Supervisor runs one worker process under a deadline.
// When the deadline passes the worker receives SIGTERM; if it is still
// running Grace later it is killed. A non-positive Grace kills it at the
// deadline. The worker is always reaped.
type Supervisor struct {
	Deadline time.Duration
	Grace    time.Duration
	Env      []string // Added to the inherited environment
	logger   *zap.Logger
}

// NewSupervisor creates a Supervisor using the configured deadline and grace period
func NewSupervisor(cfg *config.Config, logger *zap.Logger) *Supervisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Supervisor{
		Deadline: cfg.Deadline,
		Grace:    cfg.Grace,
		logger:   logger,
	}
}

// Run starts name with args and waits for it to finish or for the deadline.
// A worker that exits non-zero within the deadline yields a Completed outcome
// and an error.
func (s *Supervisor) Run(ctx context.Context, name string, args ...string) (domain.Outcome, error) {
	runCtx, cancel := context.WithTimeout(ctx, s.Deadline)
	defer cancel()

	var output bytes.Buffer
	var terminated atomic.Bool
	cmd := exec.CommandContext(runCtx, name, args...)
	cmd.Env = append(os.Environ(), s.Env...)
	cmd.Stdout = &output
	cmd.Stderr = &output
	cmd.Cancel = func() error {
		sig := os.Signal(syscall.SIGTERM)
		if s.Grace <= 0 {
			sig = os.Kill
		}
		s.logger.Debug("deadline passed, terminating worker",
			zap.Int("pid", cmd.Process.Pid),
			zap.Stringer("signal", sig))
		err := cmd.Process.Signal(sig)
		if err == nil {
			terminated.Store(true)
		}
		return err
	}
	// A zero WaitDelay would never escalate to a kill
	cmd.WaitDelay = max(s.Grace, minWaitDelay)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return domain.Outcome{}, fmt.Errorf("start worker: %w", err)
	}
	s.logger.Debug("worker started",
		zap.Int("pid", cmd.Process.Pid),
		zap.Duration("deadline", s.Deadline),
		zap.Duration("grace", s.Grace))

	waitErr := cmd.Wait()

	outcome := domain.Outcome{
		Status:   domain.Completed,
		Elapsed:  time.Since(start),
		Output:   output.String(),
		ExitCode: -1,
		Killed:   killed(cmd.ProcessState),
	}
	if cmd.ProcessState != nil {
		outcome.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err := ctx.Err(); err != nil {
		return outcome, err
	}
	if terminated.Load() {
		outcome.Status = domain.TimedOut
		s.logger.Info("worker exceeded its deadline",
			zap.Duration("elapsed", outcome.Elapsed),
			zap.Bool("killed", outcome.Killed))
		return outcome, nil
	}
	if waitErr != nil {
		return outcome, fmt.Errorf("worker failed: %w", waitErr)
	}
	return outcome, nil
}

func killed(state *os.ProcessState) bool {
	if state == nil {
		return false
	}
	ws, ok := state.Sys().(syscall.WaitStatus)
	return ok && ws.Signaled() && ws.Signal() == syscall.SIGKILL
}

// Work is the worker side of the demonstration: it sleeps for d unless ctx
// is cancelled first, then reports what it was passed.
func Work(ctx context.Context, d time.Duration, w io.Writer) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		fmt.Fprintf(w, "Worker was passed %s\n", d)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
