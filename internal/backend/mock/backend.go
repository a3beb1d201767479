package mock

import (
	"context"
	"sync"

	"github.com/asimihsan/request_gateway/pkg/gate"
)

// Backend implements gate.Backend with controllable payloads and an
// invocation counter for call-count assertions.
type Backend struct {
	Payload string
	Err     error

	mu      sync.Mutex
	calls   int
	fetched []string
}

var _ gate.Backend = (*Backend)(nil)

// New creates a mock backend returning the given payload.
func New(payload string) *Backend {
	return &Backend{Payload: payload}
}

// WithError configures the backend to fail every fetch with err.
func (b *Backend) WithError(err error) *Backend {
	b.Err = err
	return b
}

// Fetch implements gate.Backend.
func (b *Backend) Fetch(ctx context.Context, identifier string) (string, error) {
	b.mu.Lock()
	b.calls++
	b.fetched = append(b.fetched, identifier)
	b.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if b.Err != nil {
		return "", b.Err
	}
	return b.Payload, nil
}

// Calls returns how many times Fetch was invoked.
func (b *Backend) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

// Fetched returns the identifiers passed to Fetch, in invocation order.
func (b *Backend) Fetched() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.fetched))
	copy(out, b.fetched)
	return out
}
