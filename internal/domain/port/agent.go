package port

import (
	"context"

	"github.com/devtunnel/devtunnel-go-client/internal/domain/model"
)

// AgentHandle tracks one in-flight tunnel agent process
type AgentHandle interface {
	// Done returns a channel that is closed when the process has exited
	Done() <-chan struct{}

	// Err returns the process exit error. Only defined after Done fires.
	Err() error
}

// AgentRunner launches the external tunnel agent
type AgentRunner interface {
	// Start launches the agent for the given session. The child is bound
	// to ctx: cancellation terminates it. A start failure is returned
	// immediately as *model.LaunchError.
	Start(ctx context.Context, session *model.Session) (AgentHandle, error)
}

// StatusClient reads the agent's local control API
type StatusClient interface {
	// Tunnels fetches and parses the agent's current tunnel list
	Tunnels(ctx context.Context) (*model.TunnelsResponse, error)
}
