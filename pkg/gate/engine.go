package gate

import "context"

// PolicyEngine evaluates pattern rules for identifiers that are not in the
// exact-match PolicySet. Implementations are compiled from a PolicyBundle.
type PolicyEngine interface {
	// Evaluate runs the rules against the input.
	// Returns the Decision on success.
	// Must return ErrPolicyEvaluation if the evaluation itself fails (distinct from a deny decision).
	Evaluate(ctx context.Context, input map[string]any) (Decision, error)
}
