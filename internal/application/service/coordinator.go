package service

import (
	"context"
	"errors"
	"sync"

	"github.com/devtunnel/devtunnel-go-client/internal/domain/model"
	"github.com/devtunnel/devtunnel-go-client/internal/domain/port"
	domain "github.com/devtunnel/devtunnel-go-client/internal/domain/service"
)

// State is the coordinator's lifecycle phase
type State string

const (
	StateWaitingForHostStart State = "waiting_for_host_start"
	StateResolvingAddresses  State = "resolving_addresses"
	StateTunnelStarting      State = "tunnel_starting"
	StateReady               State = "ready"
	StateStopping            State = "stopping"
	StateStopped             State = "stopped"
)

// Coordinator drives one tunnel lifecycle: wait for the host server, pick
// its addresses, supervise the agent process and discover the public URL.
// It is one-shot: an agent crash ends the run, nothing is restarted.
type Coordinator struct {
	host   port.HostApplication
	runner port.AgentRunner
	poller *Poller
	logger port.Logger

	ready *model.ReadySignal

	mu        sync.Mutex
	state     State
	publicURL string
	session   *model.Session
}

// NewCoordinator creates a new Coordinator instance
func NewCoordinator(host port.HostApplication, runner port.AgentRunner, poller *Poller, logger port.Logger) *Coordinator {
	return &Coordinator{
		host:   host,
		runner: runner,
		poller: poller,
		logger: logger,
		ready:  model.NewReadySignal(),
		state:  StateWaitingForHostStart,
	}
}

// Ready returns a channel that is closed once the public URL is resolved
func (c *Coordinator) Ready() <-chan struct{} {
	return c.ready.Done()
}

// State returns the current lifecycle phase
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// PublicURL returns the resolved public URL, empty until Ready
func (c *Coordinator) PublicURL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.publicURL
}

// Session returns the current agent session, nil before the agent starts
func (c *Coordinator) Session() *model.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

func (c *Coordinator) setState(state State) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
	c.logger.Debug("Tunnel lifecycle: %s", state)
}

// Run executes the lifecycle until ctx is cancelled or a feature-level
// failure occurs. The agent process never outlives Run: every return path
// first cancels and awaits the child. Errors are *model.SelectionError,
// *model.LaunchError, *model.NotReadyError or the context error.
func (c *Coordinator) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
		c.setState(StateStopped)
		return ctx.Err()
	case <-c.host.Started():
	}

	c.setState(StateResolvingAddresses)
	pair, err := domain.SelectAddresses(c.host.Addresses())
	if err != nil {
		c.setState(StateStopped)
		return err
	}
	c.logger.Debug("Host server addresses: http=%s https=%s", pair.HTTP, pair.HTTPS)

	session := model.NewSession(pair.HTTPS, domain.DeriveHostHeader(pair.HTTPS))
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()

	// The child gets its own context so that a failed startup sequence
	// below can terminate it without cancelling the caller's ctx.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	c.setState(StateTunnelStarting)
	handle, err := c.runner.Start(runCtx, session)
	if err != nil {
		c.setState(StateStopped)
		return err
	}

	publicURL, err := c.poller.ResolvePublicURL(ctx)
	if err != nil {
		c.setState(StateStopping)
		cancel()
		<-handle.Done()
		c.setState(StateStopped)
		return err
	}

	session.SetPublicURL(publicURL)
	c.mu.Lock()
	c.publicURL = publicURL
	c.mu.Unlock()
	c.setState(StateReady)
	c.ready.Fire()
	c.logger.Info("Tunnel ready: %s -> %s (session %s)", publicURL, session.TargetURL, session.ID)

	select {
	case <-ctx.Done():
		c.setState(StateStopping)
		<-handle.Done()
	case <-handle.Done():
		if err := handle.Err(); err != nil {
			c.logger.Error("Tunnel agent exited unexpectedly: %v", err)
		} else {
			c.logger.Warn("Tunnel agent exited")
		}
	}

	session.Deactivate()
	c.setState(StateStopped)
	return nil
}

// RunBackground runs the lifecycle on its own goroutine for embedding in a
// host application. Failures are reported through the logger only, so the
// host's startup and shutdown never see an error from the tunnel feature.
func (c *Coordinator) RunBackground(ctx context.Context) {
	go func() {
		if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			c.logger.Error("Tunnel unavailable: %v", err)
		}
	}()
}
