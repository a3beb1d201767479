package opa

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/v1/rego"

	"github.com/asimihsan/request_gateway/pkg/gate"
)

// Engine implements gate.PolicyEngine using OPA. The rule bundle is compiled
// once at construction; Evaluate only runs the prepared query.
type Engine struct {
	query     rego.PreparedEvalQuery
	policySHA string
}

var _ gate.PolicyEngine = (*Engine)(nil)

// NewEngine compiles the bundle's rego source into a prepared query for
// "data.gate.response".
func NewEngine(policy gate.PolicyBundle) (*Engine, error) {
	query, err := rego.New(
		rego.Query("data.gate.response"),
		rego.Module("rules.rego", string(policy.Data())),
	).PrepareForEval(context.Background())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gate.ErrPolicyLoad, err)
	}

	return &Engine{
		query:     query,
		policySHA: policy.ID(),
	}, nil
}

// PolicySHA returns the ID of the bundle the engine was compiled from.
func (e *Engine) PolicySHA() string {
	return e.policySHA
}

// Evaluate implements gate.PolicyEngine. The rules are expected to produce a
// response document of the form {"allow": bool, "deny_reasons": [...]}.
func (e *Engine) Evaluate(ctx context.Context, input map[string]any) (gate.Decision, error) {
	resultSet, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return gate.Decision{}, fmt.Errorf("%w: %v", gate.ErrPolicyEvaluation, err)
	}
	if len(resultSet) == 0 || len(resultSet[0].Expressions) == 0 {
		return gate.Decision{}, fmt.Errorf("%w: no results from rule evaluation", gate.ErrPolicyEvaluation)
	}

	response, ok := resultSet[0].Expressions[0].Value.(map[string]interface{})
	if !ok {
		return gate.Decision{}, fmt.Errorf("%w: unexpected response format", gate.ErrPolicyEvaluation)
	}

	// Default deny if the response does not carry an explicit allow.
	decision := gate.Decision{Allow: false}
	if allow, ok := response["allow"].(bool); ok {
		decision.Allow = allow
	}

	if !decision.Allow {
		if reasons, ok := response["deny_reasons"].([]interface{}); ok {
			for _, r := range reasons {
				if reason, ok := r.(string); ok {
					decision.DenyReasons = append(decision.DenyReasons, reason)
				}
			}
		}
	}

	return decision, nil
}
