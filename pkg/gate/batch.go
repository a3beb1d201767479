package gate

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// BatchOpts lets the caller tune latency guarantees for batch evaluation.
type BatchOpts struct {
	PerRequestTimeout time.Duration // enforced with ctx.WithTimeout; zero => none
}

// EvaluateAll evaluates every identifier concurrently and returns the results
// keyed by the identifier as given. No ordering is guaranteed between the
// evaluations. On any evaluation error the first error observed wins and no
// partial results are returned.
func (g *Gatekeeper) EvaluateAll(ctx context.Context, identifiers []string, opts BatchOpts) (map[string]Result, error) {
	eg, gctx := errgroup.WithContext(ctx)

	type result struct {
		identifier string
		res        Result
		err        error
	}
	results := make(chan result, len(identifiers))

	for _, identifier := range identifiers {
		identifier := identifier
		eg.Go(func() error {
			rctx := gctx
			if opts.PerRequestTimeout > 0 {
				var cancel context.CancelFunc
				rctx, cancel = context.WithTimeout(gctx, opts.PerRequestTimeout)
				defer cancel()
			}

			res, err := g.Evaluate(rctx, identifier)
			if err != nil {
				results <- result{identifier: identifier, err: fmt.Errorf("evaluating %q: %w", identifier, err)}
				return nil // errors are collected via the channel
			}

			results <- result{identifier: identifier, res: res}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	close(results)

	out := make(map[string]Result, len(identifiers))
	var firstErr error

	for r := range results {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		out[r.identifier] = r.res
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}
