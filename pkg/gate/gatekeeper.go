package gate

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// PolicyAction selects the mutation applied by UpdatePolicy.
type PolicyAction string

const (
	PolicyAdd    PolicyAction = "add"
	PolicyRemove PolicyAction = "remove"
)

// Gatekeeper mediates access to a Backend: it applies the deny policy to each
// incoming request and either short-circuits with a blocked Result or
// delegates the fetch. Safe for concurrent use; PolicySet is the only shared
// mutable state.
type Gatekeeper struct {
	policy  *PolicySet
	backend Backend

	engine   PolicyEngine // optional pattern rules, consulted after the set
	policyID string       // rule bundle ID for audit, "" if no engine
	audit    AuditLogger  // optional
	cache    *resultCache // optional
}

// New creates a Gatekeeper over the given policy set and backend.
func New(policy *PolicySet, backend Backend) *Gatekeeper {
	return &Gatekeeper{
		policy:  policy,
		backend: backend,
	}
}

// WithEngine attaches a compiled rule engine for pattern-based denial.
// policyID identifies the rule bundle the engine was compiled from.
func (g *Gatekeeper) WithEngine(engine PolicyEngine, policyID string) *Gatekeeper {
	g.engine = engine
	g.policyID = policyID
	return g
}

// WithAudit attaches an audit logger. Audit failures never fail an
// evaluation.
func (g *Gatekeeper) WithAudit(audit AuditLogger) *Gatekeeper {
	g.audit = audit
	return g
}

// WithResultCache enables caching of delivered payloads for the given TTL.
func (g *Gatekeeper) WithResultCache(ttl time.Duration) *Gatekeeper {
	g.cache = newResultCache(ttl)
	return g
}

// Evaluate decides the fate of a single request. A denied identifier never
// reaches the Backend, under any ordering of concurrent policy updates.
// Policy denial is a normal Result, not an error; backend failures propagate
// wrapping their sentinel cause and are never converted into a blocked
// Result.
func (g *Gatekeeper) Evaluate(ctx context.Context, identifier string) (Result, error) {
	startTime := time.Now()

	norm := Normalize(identifier)
	if norm == "" {
		return Result{}, fmt.Errorf("%w: empty identifier", ErrInvalidRequest)
	}

	if g.policy.Contains(norm) {
		return g.finish(ctx, norm, Blocked("policy"), startTime), nil
	}

	if g.engine != nil {
		decision, err := g.engine.Evaluate(ctx, map[string]any{"identifier": norm})
		if err != nil {
			g.logSystemError(ctx, err, norm)
			return Result{}, err
		}
		if !decision.Allow {
			reason := strings.Join(decision.DenyReasons, "; ")
			if reason == "" {
				reason = "rules"
			}
			return g.finish(ctx, norm, Blocked(reason), startTime), nil
		}
	}

	if g.cache != nil {
		if payload, ok := g.cache.get(norm); ok {
			return g.finish(ctx, norm, Delivered(payload), startTime), nil
		}
	}

	payload, err := g.backend.Fetch(ctx, norm)
	if err != nil {
		g.logSystemError(ctx, err, norm)
		return Result{}, fmt.Errorf("fetching %q: %w", norm, err)
	}

	if g.cache != nil {
		g.cache.put(norm, payload)
	}
	return g.finish(ctx, norm, Delivered(payload), startTime), nil
}

// UpdatePolicy mutates the policy set. The mutation is visible to every
// evaluation that starts after it completes; evaluations already in flight
// may observe either state. The result cache entry for the identifier is
// dropped either way.
func (g *Gatekeeper) UpdatePolicy(identifier string, action PolicyAction) {
	switch action {
	case PolicyAdd:
		g.policy.Add(identifier)
	case PolicyRemove:
		g.policy.Remove(identifier)
	}

	if g.cache != nil {
		g.cache.invalidate(Normalize(identifier))
	}
}

func (g *Gatekeeper) finish(ctx context.Context, identifier string, result Result, startTime time.Time) Result {
	result.EvalDuration = time.Since(startTime)
	if g.audit != nil {
		// Audit is best-effort: an audit failure must not fail the call.
		_ = g.audit.LogResult(ctx, identifier, result, g.policyID)
	}
	return result
}

func (g *Gatekeeper) logSystemError(ctx context.Context, systemError error, identifier string) {
	if g.audit == nil {
		return
	}
	_ = g.audit.LogSystemError(ctx, systemError, identifier, g.policyID)
}
