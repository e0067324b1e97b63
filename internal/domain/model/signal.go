package model

import "sync"

// ReadySignal is a single-fire event. Fire closes the underlying channel
// exactly once; later calls are no-ops. Waiters observe it through Done.
type ReadySignal struct {
	once sync.Once
	ch   chan struct{}
}

// NewReadySignal creates an unfired ReadySignal
func NewReadySignal() *ReadySignal {
	return &ReadySignal{ch: make(chan struct{})}
}

// Fire marks the signal as fired. Safe to call more than once.
func (s *ReadySignal) Fire() {
	s.once.Do(func() {
		close(s.ch)
	})
}

// Done returns a channel that is closed once the signal has fired
func (s *ReadySignal) Done() <-chan struct{} {
	return s.ch
}

// Fired reports whether the signal has fired without blocking
func (s *ReadySignal) Fired() bool {
	select {
	case <-s.ch:
		return true
	default:
		return false
	}
}
