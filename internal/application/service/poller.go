package service

import (
	"context"

	"github.com/devtunnel/devtunnel-go-client/internal/domain/model"
	"github.com/devtunnel/devtunnel-go-client/internal/domain/port"
)

// Poller discovers the agent's public https URL through its local control API
type Poller struct {
	client port.StatusClient
	policy RetryPolicy
	logger port.Logger
}

// NewPoller creates a new Poller instance
func NewPoller(client port.StatusClient, policy RetryPolicy, logger port.Logger) *Poller {
	return &Poller{
		client: client,
		policy: policy,
		logger: logger,
	}
}

// ResolvePublicURL queries the control API under the retry policy and
// returns the public URL of the first https tunnel the agent reports.
// Transport and parse failures on an attempt mean "not ready yet" and are
// only logged at debug level; exhausting the budget is *model.NotReadyError.
func (p *Poller) ResolvePublicURL(ctx context.Context) (string, error) {
	var publicURL string
	attempts, ok := p.policy.Run(ctx, func(ctx context.Context) bool {
		resp, err := p.client.Tunnels(ctx)
		if err != nil {
			p.logger.Debug("Tunnel status not ready: %v", err)
			return false
		}
		url, found := resp.FirstHTTPS()
		if !found {
			p.logger.Debug("Agent reports %d tunnels, none https yet", len(resp.Tunnels))
			return false
		}
		publicURL = url
		return true
	})
	if !ok {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "", &model.NotReadyError{Attempts: attempts}
	}
	return publicURL, nil
}
