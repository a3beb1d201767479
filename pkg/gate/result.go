package gate

import "time"

// Kind discriminates the two outcomes of a successful evaluation.
type Kind string

const (
	KindBlocked   Kind = "blocked"
	KindDelivered Kind = "delivered"
)

// Result represents the outcome of a successful evaluation: either the
// request was refused by policy or the backend payload was delivered.
// A blocked Result is a normal outcome, not an error.
type Result struct {
	Kind    Kind
	Reason  string // populated when Kind == KindBlocked
	Payload string // populated when Kind == KindDelivered

	// EvalDuration is the wall time the evaluation took, for audit.
	EvalDuration time.Duration
}

// Blocked constructs a blocked Result with the given reason.
func Blocked(reason string) Result {
	return Result{Kind: KindBlocked, Reason: reason}
}

// Delivered constructs a delivered Result wrapping the backend payload.
func Delivered(payload string) Result {
	return Result{Kind: KindDelivered, Payload: payload}
}
