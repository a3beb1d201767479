package gate

import "context"

// Backend performs the real fetch for a request that policy allowed through.
// The Gatekeeper treats it as an opaque capability: it knows nothing about
// the backend's latency, retries, or resource use.
type Backend interface {
	// Fetch retrieves the payload for the identifier. Implementations must
	// honor ctx cancellation and return errors wrapping ErrBackendUnavailable
	// or ErrBackendTimeout for infrastructure failures.
	Fetch(ctx context.Context, identifier string) (string, error)
}
