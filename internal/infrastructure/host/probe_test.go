package host

import (
	"context"
	"fmt"
	"io"
	"net"
	"testing"
	"time"

	"github.com/devtunnel/devtunnel-go-client/internal/infrastructure/logger"
)

func testLogger() *logger.Logger {
	return logger.NewLogger(io.Discard, "error")
}

func TestProbedHostFiresWhenServerAnswers(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer listener.Close()
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	addr := fmt.Sprintf("http://%s", listener.Addr())
	h := NewProbedHost([]string{addr, "https://localhost:5001"}, 10*time.Millisecond, 5*time.Second, testLogger())
	h.Start(context.Background())

	select {
	case <-h.Started():
	case <-time.After(5 * time.Second):
		t.Fatal("started signal never fired")
	}

	got := h.Addresses()
	if len(got) != 2 || got[0] != addr {
		t.Errorf("Addresses = %q", got)
	}
}

func TestProbedHostStaysQuietWhenServerIsDown(t *testing.T) {
	// Reserve a port and close it so nothing is listening there
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := fmt.Sprintf("http://%s", listener.Addr())
	listener.Close()

	h := NewProbedHost([]string{addr}, 10*time.Millisecond, 100*time.Millisecond, testLogger())
	h.Start(context.Background())

	select {
	case <-h.Started():
		t.Fatal("started signal fired with no server listening")
	case <-h.Failed():
	case <-time.After(5 * time.Second):
		t.Fatal("failed signal never fired after probe timeout")
	}
	select {
	case <-h.Started():
		t.Fatal("started signal fired after the probe gave up")
	default:
	}
}

func TestProbedHostStopsOnCancellation(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := fmt.Sprintf("http://%s", listener.Addr())
	listener.Close()

	ctx, cancel := context.WithCancel(context.Background())
	h := NewProbedHost([]string{addr}, 10*time.Millisecond, time.Hour, testLogger())
	h.Start(ctx)
	cancel()

	select {
	case <-h.Started():
		t.Fatal("started signal fired after cancellation")
	case <-h.Failed():
		t.Fatal("cancellation was reported as a probe timeout")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHostPortOf(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost:5000", "localhost:5000"},
		{"https://localhost:5001/", "localhost:5001"},
		{"http://localhost", "localhost:80"},
		{"https://localhost", "localhost:443"},
	}
	for _, tt := range tests {
		got, err := hostPortOf(tt.in)
		if err != nil {
			t.Errorf("hostPortOf(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("hostPortOf(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
