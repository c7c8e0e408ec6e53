package launcher

import (
	"fmt"
	"os/exec"
	"sync"
	"time"

	"gunmenu/internal/feedback"
	"gunmenu/internal/logging"

	"go.uber.org/atomic"
)

// RunCommand starts the external launcher as
// `<Command> 0 _SYS_ <system> <rom>` and does not wait for it.
type RunCommand struct {
	Command string

	wg      sync.WaitGroup
	running atomic.Int32
}

func NewRunCommand(command string) *RunCommand {
	return &RunCommand{Command: command}
}

func (r *RunCommand) Launch(system, romPath string) feedback.LaunchResult {
	logger := logging.GetLogger()

	if err := Preflight(romPath); err != nil {
		return feedback.LaunchResult{Err: err}
	}

	cmd := exec.Command(r.Command, "0", "_SYS_", system, romPath)
	if err := cmd.Start(); err != nil {
		return feedback.LaunchResult{Err: fmt.Errorf("starting %s: %w", r.Command, err)}
	}

	pid := cmd.Process.Pid
	r.running.Inc()
	r.wg.Add(1)

	go func() {
		defer r.wg.Done()
		defer r.running.Dec()

		err := cmd.Wait()
		if err != nil {
			logger.Warn("Launcher exited with error", "system", system, "rom", romPath, "pid", pid, "error", err)
			return
		}
		logger.Debug("Launcher exited", "system", system, "rom", romPath, "pid", pid)
	}()

	return feedback.LaunchResult{PID: pid}
}

func (r *RunCommand) Running() int {
	return int(r.running.Load())
}

// Wait blocks until every started launcher has exited or timeout passes.
// It reports whether all of them exited.
func (r *RunCommand) Wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
