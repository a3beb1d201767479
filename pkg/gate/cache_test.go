package gate

import (
	"context"
	"testing"
	"time"
)

func TestResultCache(t *testing.T) {
	t.Run("repeated fetches are served from cache", func(t *testing.T) {
		backend := &countingBackend{payload: "payload"}
		keeper := New(NewPolicySet(), backend).WithResultCache(time.Minute)

		for i := 0; i < 3; i++ {
			result, err := keeper.Evaluate(context.Background(), "google.com")
			if err != nil {
				t.Fatalf("Iteration %d: unexpected error: %v", i, err)
			}
			if result.Kind != KindDelivered || result.Payload != "payload" {
				t.Fatalf("Iteration %d: unexpected result: %+v", i, result)
			}
		}
		if backend.callCount() != 1 {
			t.Errorf("Expected exactly one backend call, got: %d", backend.callCount())
		}
	})

	t.Run("update policy invalidates the cached entry", func(t *testing.T) {
		backend := &countingBackend{payload: "payload"}
		keeper := New(NewPolicySet(), backend).WithResultCache(time.Minute)

		if _, err := keeper.Evaluate(context.Background(), "google.com"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		keeper.UpdatePolicy("google.com", PolicyAdd)
		result, err := keeper.Evaluate(context.Background(), "google.com")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if result.Kind != KindBlocked {
			t.Errorf("Expected blocked after PolicyAdd, got: %v", result.Kind)
		}

		keeper.UpdatePolicy("google.com", PolicyRemove)
		result, err = keeper.Evaluate(context.Background(), "google.com")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if result.Kind != KindDelivered {
			t.Errorf("Expected delivered after PolicyRemove, got: %v", result.Kind)
		}
		if backend.callCount() != 2 {
			t.Errorf("Expected a fresh fetch after invalidation, got %d calls", backend.callCount())
		}
	})

	t.Run("expired entries are refetched", func(t *testing.T) {
		backend := &countingBackend{payload: "payload"}
		keeper := New(NewPolicySet(), backend).WithResultCache(time.Millisecond)

		if _, err := keeper.Evaluate(context.Background(), "google.com"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		time.Sleep(5 * time.Millisecond)
		if _, err := keeper.Evaluate(context.Background(), "google.com"); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if backend.callCount() != 2 {
			t.Errorf("Expected refetch after TTL expiry, got %d calls", backend.callCount())
		}
	})
}
