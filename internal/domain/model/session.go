package model

import "github.com/google/uuid"

// Session represents one supervised invocation of the tunnel agent.
type Session struct {
	// ID identifies this invocation in logs
	ID string

	// TargetURL is the local address the agent forwards traffic to
	TargetURL string

	// HostHeader is the Host header override handed to the agent,
	// derived from TargetURL
	HostHeader string

	// PublicURL is the externally reachable address, set once resolved
	PublicURL string

	// Active reports whether the public URL has been resolved
	Active bool
}

// NewSession creates a session for the given target with a fresh ID.
// hostHeader must already be derived from the target URL.
func NewSession(targetURL string, hostHeader string) *Session {
	return &Session{
		ID:         uuid.NewString(),
		TargetURL:  targetURL,
		HostHeader: hostHeader,
		Active:     false,
	}
}

// SetPublicURL records the resolved public URL and marks the session active
func (s *Session) SetPublicURL(url string) {
	s.PublicURL = url
	s.Active = true
}

// Deactivate marks the session as no longer forwarding
func (s *Session) Deactivate() {
	s.Active = false
}
