package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/devtunnel/devtunnel-go-client/internal/domain/model"
	"github.com/devtunnel/devtunnel-go-client/internal/domain/port"
)

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Debug(format string, args ...interface{}) {}
func (nopLogger) Info(format string, args ...interface{})  {}
func (nopLogger) Warn(format string, args ...interface{})  {}
func (nopLogger) Error(format string, args ...interface{}) {}
func (nopLogger) SetLevel(level string)                    {}
func (nopLogger) Close() error                             { return nil }

// recordingLogger keeps error lines for assertions
type recordingLogger struct {
	nopLogger
	mu     sync.Mutex
	errors []string
}

func (l *recordingLogger) Error(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) errorLines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.errors...)
}

// fakeHost implements port.HostApplication with a manually fired signal
type fakeHost struct {
	ready *model.ReadySignal
	addrs []string
}

func newFakeHost(addrs ...string) *fakeHost {
	return &fakeHost{ready: model.NewReadySignal(), addrs: addrs}
}

func (h *fakeHost) Started() <-chan struct{} { return h.ready.Done() }
func (h *fakeHost) Addresses() []string      { return h.addrs }

// fakeHandle closes its done channel when the start context is cancelled,
// imitating a child process bound to the context
type fakeHandle struct {
	once sync.Once
	done chan struct{}
	err  error
}

func (h *fakeHandle) Done() <-chan struct{} { return h.done }
func (h *fakeHandle) Err() error            { return h.err }

func (h *fakeHandle) exit(err error) {
	h.once.Do(func() {
		h.err = err
		close(h.done)
	})
}

type fakeRunner struct {
	mu        sync.Mutex
	session   *model.Session
	handle    *fakeHandle
	launchErr error
}

func (r *fakeRunner) Start(ctx context.Context, session *model.Session) (port.AgentHandle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.launchErr != nil {
		return nil, r.launchErr
	}
	r.session = session
	h := &fakeHandle{done: make(chan struct{})}
	r.handle = h
	go func() {
		<-ctx.Done()
		h.exit(nil)
	}()
	return h, nil
}

func (r *fakeRunner) startedSession() *model.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session
}

func (r *fakeRunner) childDone() <-chan struct{} {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.handle == nil {
		return nil
	}
	return r.handle.done
}

// fakeStatusClient answers each call through the respond function
type fakeStatusClient struct {
	mu      sync.Mutex
	calls   int
	respond func(call int) (*model.TunnelsResponse, error)
}

func (c *fakeStatusClient) Tunnels(ctx context.Context) (*model.TunnelsResponse, error) {
	c.mu.Lock()
	c.calls++
	call := c.calls
	c.mu.Unlock()
	return c.respond(call)
}

func (c *fakeStatusClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func httpsResponse(url string) *model.TunnelsResponse {
	return &model.TunnelsResponse{
		Tunnels: []model.AgentTunnel{{PublicURL: url}},
	}
}
