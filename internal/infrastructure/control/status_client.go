package control

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/devtunnel/devtunnel-go-client/internal/domain/model"
	"github.com/devtunnel/devtunnel-go-client/internal/domain/port"
)

// StatusClient reads the tunnel agent's local JSON status API
type StatusClient struct {
	apiURL     string
	httpClient *http.Client
}

// NewStatusClient creates a client for the agent control endpoint.
// apiURL is the full tunnel list URL, e.g. http://127.0.0.1:4040/api/tunnels.
func NewStatusClient(apiURL string) *StatusClient {
	return &StatusClient{
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: 2 * time.Second,
		},
	}
}

// Tunnels fetches and parses the agent's current tunnel list
func (c *StatusClient) Tunnels(ctx context.Context) (*model.TunnelsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build status request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach agent control API: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("agent control API returned status %d", resp.StatusCode)
	}

	var tunnels model.TunnelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return nil, fmt.Errorf("failed to parse agent status response: %v", err)
	}

	return &tunnels, nil
}

// Ensure StatusClient implements port.StatusClient
var _ port.StatusClient = (*StatusClient)(nil)
