package gate

import "context"

// PolicyBundle holds rule source and metadata.
type PolicyBundle interface {
	ID() string   // e.g., SHA or version of the bundle content
	Data() []byte // The rule source
}

// PolicyProvider retrieves PolicyBundles.
type PolicyProvider interface {
	// GetPolicyBundle fetches the current rule bundle (e.g., from a file).
	// Implementations handle caching. Should return ErrPolicyLoad on failure.
	GetPolicyBundle(ctx context.Context) (PolicyBundle, error)
}
