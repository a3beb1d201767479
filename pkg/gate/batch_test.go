package gate

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestEvaluateAll(t *testing.T) {
	t.Run("mixed batch", func(t *testing.T) {
		backend := &countingBackend{payload: "payload"}
		keeper := New(NewPolicySet("blockedsite.com", "example.com"), backend)

		identifiers := []string{"google.com", "blockedsite.com", "stackoverflow.com", "example.com"}
		results, err := keeper.EvaluateAll(context.Background(), identifiers, BatchOpts{})
		if err != nil {
			t.Fatalf("Expected no error but got: %v", err)
		}

		if len(results) != len(identifiers) {
			t.Fatalf("Expected %d results, got %d", len(identifiers), len(results))
		}
		if results["google.com"].Kind != KindDelivered {
			t.Errorf("Expected google.com delivered, got: %v", results["google.com"].Kind)
		}
		if results["blockedsite.com"].Kind != KindBlocked {
			t.Errorf("Expected blockedsite.com blocked, got: %v", results["blockedsite.com"].Kind)
		}
		if results["stackoverflow.com"].Kind != KindDelivered {
			t.Errorf("Expected stackoverflow.com delivered, got: %v", results["stackoverflow.com"].Kind)
		}
		if results["example.com"].Kind != KindBlocked {
			t.Errorf("Expected example.com blocked, got: %v", results["example.com"].Kind)
		}
		if backend.callCount() != 2 {
			t.Errorf("Expected exactly two backend calls, got: %d", backend.callCount())
		}
	})

	t.Run("first error wins", func(t *testing.T) {
		backendErr := fmt.Errorf("%w: boom", ErrBackendUnavailable)
		backend := &countingBackend{err: backendErr}
		keeper := New(NewPolicySet("blockedsite.com"), backend)

		results, err := keeper.EvaluateAll(context.Background(), []string{"google.com", "blockedsite.com"}, BatchOpts{})
		if !errors.Is(err, ErrBackendUnavailable) {
			t.Fatalf("Expected ErrBackendUnavailable, got: %v", err)
		}
		if results != nil {
			t.Errorf("Expected no partial results on error, got: %v", results)
		}
	})

	t.Run("per-request timeout is applied", func(t *testing.T) {
		backend := &slowBackend{delay: 50 * time.Millisecond}
		keeper := New(NewPolicySet(), backend)

		_, err := keeper.EvaluateAll(context.Background(), []string{"google.com"}, BatchOpts{
			PerRequestTimeout: 5 * time.Millisecond,
		})
		if !errors.Is(err, ErrBackendTimeout) {
			t.Fatalf("Expected ErrBackendTimeout, got: %v", err)
		}
	})
}

// slowBackend honors ctx cancellation after a fixed delay.
type slowBackend struct {
	delay time.Duration
}

func (b *slowBackend) Fetch(ctx context.Context, identifier string) (string, error) {
	select {
	case <-time.After(b.delay):
		return "slow payload", nil
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", ErrBackendTimeout, ctx.Err())
	}
}
