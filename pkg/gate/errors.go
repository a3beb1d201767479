package gate

import "errors"

// Standard error types for gateway operations
var (
	ErrInvalidRequest     = errors.New("gate: invalid request identifier")
	ErrBackendUnavailable = errors.New("gate: backend unavailable")
	ErrBackendTimeout     = errors.New("gate: backend timed out")
	ErrPolicyEvaluation   = errors.New("gate: policy evaluation failed")
	ErrPolicyLoad         = errors.New("gate: policy bundle could not be loaded")
	ErrConfigLoad         = errors.New("gate: configuration could not be loaded")
)

// IsWrappingError checks if err is wrapping the target error using errors.Is.
// This is a helper for testing error wrapping.
func IsWrappingError(err, target error) bool {
	return errors.Is(err, target)
}
