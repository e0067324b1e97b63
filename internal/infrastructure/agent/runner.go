package agent

import (
	"context"
	"os/exec"
	"syscall"
	"time"

	"github.com/devtunnel/devtunnel-go-client/internal/domain/model"
	"github.com/devtunnel/devtunnel-go-client/internal/domain/port"
	"github.com/devtunnel/devtunnel-go-client/internal/infrastructure/logger"
)

// killGracePeriod is how long the agent gets to exit after SIGTERM before
// it is killed.
const killGracePeriod = 5 * time.Second

// Runner launches and supervises the external tunnel agent process.
// The child is bound to the context passed to Start: cancellation sends
// SIGTERM and escalates to SIGKILL after killGracePeriod.
type Runner struct {
	binary string
	logger port.Logger
}

// NewRunner creates a Runner for the given agent executable
func NewRunner(binary string, log port.Logger) *Runner {
	return &Runner{
		binary: binary,
		logger: log,
	}
}

// buildArgs constructs the agent command line for a session. The host
// header is passed as a single --flag=value token so the value is never
// split or re-escaped.
func buildArgs(session *model.Session) []string {
	return []string{
		"expose-http",
		session.TargetURL,
		"--log", "stdout",
		"--host-header=" + session.HostHeader,
	}
}

// Start launches the agent for session. The returned handle's Done channel
// closes exactly when the process has exited. A start failure is returned
// immediately as *model.LaunchError.
func (r *Runner) Start(ctx context.Context, session *model.Session) (port.AgentHandle, error) {
	cmd := exec.CommandContext(ctx, r.binary, buildArgs(session)...)

	// SIGTERM first so the agent can tear down its session; CommandContext
	// falls back to SIGKILL after WaitDelay.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = killGracePeriod

	stdout := logger.NewLineWriter(func(line string) {
		r.logger.Debug("agent: %s", line)
	})
	stderr := logger.NewLineWriter(func(line string) {
		r.logger.Error("agent: %s", line)
	})
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	r.logger.Debug("Launching tunnel agent: %s %v", r.binary, cmd.Args[1:])
	if err := cmd.Start(); err != nil {
		return nil, &model.LaunchError{Binary: r.binary, Err: err}
	}

	h := &handle{done: make(chan struct{})}
	go func() {
		h.err = cmd.Wait()
		stdout.Close()
		stderr.Close()
		close(h.done)
	}()
	return h, nil
}

// handle implements port.AgentHandle over one child process
type handle struct {
	done chan struct{}
	err  error
}

// Done returns a channel that is closed when the process has exited
func (h *handle) Done() <-chan struct{} {
	return h.done
}

// Err returns the process exit error. Only defined after Done fires.
func (h *handle) Err() error {
	return h.err
}

// Ensure Runner implements port.AgentRunner
var _ port.AgentRunner = (*Runner)(nil)
