package model

import "fmt"

// SelectionError reports that the host server's address set did not contain
// exactly one address for a required scheme.
type SelectionError struct {
	// Scheme is the URL prefix that failed selection ("http://" or "https://")
	Scheme string
	// Matches is how many addresses carried the scheme
	Matches int
}

func (e *SelectionError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("no address with scheme %s among host server addresses", e.Scheme)
	}
	return fmt.Sprintf("%d addresses with scheme %s among host server addresses, want exactly 1", e.Matches, e.Scheme)
}

// LaunchError reports that the tunnel agent process could not be started.
type LaunchError struct {
	// Binary is the agent executable that failed to launch
	Binary string
	// Err is the underlying start failure
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch tunnel agent %q: %v", e.Binary, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// NotReadyError reports that the retry budget was exhausted before the agent
// published an https tunnel.
type NotReadyError struct {
	// Attempts is how many status queries were made
	Attempts int
}

func (e *NotReadyError) Error() string {
	return fmt.Sprintf("no public https tunnel after %d attempts", e.Attempts)
}
