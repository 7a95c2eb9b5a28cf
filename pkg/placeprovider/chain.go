package placeprovider

import (
	"context"

	"trip-planner/internal/model"
)

// Chain queries providers stage by stage. A stage that answers with results
// ends the search. A stage that answers empty moves on to the next stage.
// Within a stage, a provider is only tried when the one before it failed.
type Chain struct {
	stages [][]Provider
}

// NewChain builds a Chain, skipping empty stages and nil providers.
func NewChain(stages ...[]Provider) *Chain {
	c := &Chain{}
	for _, stage := range stages {
		var kept []Provider
		for _, p := range stage {
			if p != nil {
				kept = append(kept, p)
			}
		}
		if len(kept) > 0 {
			c.stages = append(c.stages, kept)
		}
	}
	return c
}

func (c *Chain) Name() string { return "chain" }

// Len returns the number of configured providers.
func (c *Chain) Len() int {
	n := 0
	for _, stage := range c.stages {
		n += len(stage)
	}
	return n
}

// Search returns the first non-empty answer. An empty result is returned only
// when the last stage tried answered; when that stage failed completely its
// last provider error is returned instead.
func (c *Chain) Search(ctx context.Context, q Query) ([]model.PlaceCandidate, error) {
	var (
		lastErr  error
		answered bool
	)

	for _, stage := range c.stages {
		answered = false
		for _, p := range stage {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			candidates, err := p.Search(ctx, q)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return nil, ctxErr
				}
				lastErr = err
				continue
			}

			answered = true
			if len(candidates) > 0 {
				return candidates, nil
			}
			break
		}
	}

	if !answered && lastErr != nil {
		return nil, lastErr
	}
	return []model.PlaceCandidate{}, nil
}
