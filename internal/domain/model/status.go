package model

import "strings"

// AgentTunnel is one tunnel entry in the agent's status response
type AgentTunnel struct {
	Name      string `json:"name"`
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
	Config    struct {
		Addr string `json:"addr"`
	} `json:"config"`
}

// TunnelsResponse is the agent's answer to GET /api/tunnels
type TunnelsResponse struct {
	Tunnels []AgentTunnel `json:"tunnels"`
	URI     string        `json:"uri"`
}

// FirstHTTPS returns the public URL of the first tunnel entry served over
// https, in response order. Returns false when no entry qualifies.
func (r *TunnelsResponse) FirstHTTPS() (string, bool) {
	for _, t := range r.Tunnels {
		if strings.HasPrefix(t.PublicURL, "https://") {
			return t.PublicURL, true
		}
	}
	return "", false
}
