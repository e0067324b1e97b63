package host

import (
	"context"
	"net"
	"net/url"
	"time"

	"github.com/devtunnel/devtunnel-go-client/internal/domain/model"
	"github.com/devtunnel/devtunnel-go-client/internal/domain/port"
)

const dialTimeout = 1 * time.Second

// ProbedHost adapts an already-running local server to the host
// application contract. It is configured with the server's addresses and
// fires the started signal once the server accepts a TCP connection.
type ProbedHost struct {
	addresses []string
	interval  time.Duration
	timeout   time.Duration
	ready     *model.ReadySignal
	failed    *model.ReadySignal
	logger    port.Logger
}

// NewProbedHost creates a host adapter for the given bound addresses
func NewProbedHost(addresses []string, interval, timeout time.Duration, log port.Logger) *ProbedHost {
	return &ProbedHost{
		addresses: addresses,
		interval:  interval,
		timeout:   timeout,
		ready:     model.NewReadySignal(),
		failed:    model.NewReadySignal(),
		logger:    log,
	}
}

// Start begins probing on its own goroutine. The signal fires at most
// once; if the server never answers within the timeout it stays unfired.
func (h *ProbedHost) Start(ctx context.Context) {
	go h.probe(ctx)
}

// Started returns the one-shot readiness channel
func (h *ProbedHost) Started() <-chan struct{} {
	return h.ready.Done()
}

// Failed returns a channel that is closed if the server never answers
// within the probe timeout. Exactly one of Started and Failed fires.
func (h *ProbedHost) Failed() <-chan struct{} {
	return h.failed.Done()
}

// Addresses returns the configured server addresses
func (h *ProbedHost) Addresses() []string {
	return h.addresses
}

func (h *ProbedHost) probe(ctx context.Context) {
	deadline := time.Now().Add(h.timeout)
	for {
		for _, addr := range h.addresses {
			hostPort, err := hostPortOf(addr)
			if err != nil {
				h.logger.Debug("Skipping unparsable address %q: %v", addr, err)
				continue
			}
			conn, err := net.DialTimeout("tcp", hostPort, dialTimeout)
			if err != nil {
				continue
			}
			conn.Close()
			h.logger.Debug("Local server accepting connections on %s", hostPort)
			h.ready.Fire()
			return
		}

		if time.Now().After(deadline) {
			h.logger.Warn("Local server did not come up within %s", h.timeout)
			h.failed.Fire()
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(h.interval):
		}
	}
}

// hostPortOf extracts a dialable host:port from a URL, filling in the
// scheme's default port when the URL does not carry one.
func hostPortOf(addr string) (string, error) {
	u, err := url.Parse(addr)
	if err != nil {
		return "", err
	}
	port := u.Port()
	if port == "" {
		if u.Scheme == "https" {
			port = "443"
		} else {
			port = "80"
		}
	}
	return net.JoinHostPort(u.Hostname(), port), nil
}

// Ensure ProbedHost implements port.HostApplication
var _ port.HostApplication = (*ProbedHost)(nil)
