package model

import (
	"testing"
	"time"
)

func TestReadySignalFiresOnce(t *testing.T) {
	s := NewReadySignal()
	if s.Fired() {
		t.Fatal("new signal reports fired")
	}

	s.Fire()
	// Duplicate fires are no-ops, not panics
	s.Fire()

	if !s.Fired() {
		t.Error("signal does not report fired")
	}
	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Error("Done channel not closed after Fire")
	}
}

func TestReadySignalWakesWaiter(t *testing.T) {
	s := NewReadySignal()
	woke := make(chan struct{})
	go func() {
		<-s.Done()
		close(woke)
	}()

	s.Fire()
	select {
	case <-woke:
	case <-time.After(time.Second):
		t.Error("waiter not woken by Fire")
	}
}
