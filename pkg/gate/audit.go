package gate

import "context"

// AuditLogger persists evaluation outcomes and error information.
type AuditLogger interface {
	// LogResult records the outcome of a successful evaluation.
	// identifier: the normalized request identifier.
	// result: the Result returned by Evaluate (carries the eval duration).
	// policyID: identifier of the active rule bundle, "" if none.
	LogResult(ctx context.Context, identifier string, result Result, policyID string) error

	// LogSystemError records failures occurring outside a successful evaluation.
	// systemError: the specific error (e.g., ErrBackendUnavailable, ErrPolicyEvaluation).
	// identifier, policyID: context for the attempt, if available.
	LogSystemError(ctx context.Context, systemError error, identifier, policyID string) error
}
