// Package partition implements LLM-driven recursive categorization: sample a
// collection, ask an oracle to propose a fixed number of categories, assign
// every item in batches, and subdivide any category whose population exceeds
// its per-category budget until all leaves fit.
package partition

import (
	"context"
	"encoding/json"
	"fmt"

	"taxa/internal/models"
)

// Oracle is the generative-text backend the pipeline calls. The reply must be
// valid JSON; retry policy lives behind this interface (see internal/oracle).
type Oracle interface {
	Call(ctx context.Context, systemPrompt, userPrompt string) (json.RawMessage, error)
}

// Config holds the knobs for one categorization run. It is a value type:
// recursive subdivisions derive a child Config overriding ItemCount and
// CategoryCount, never mutating the parent's.
type Config struct {
	ItemCount          int    // size of the universe being partitioned; defaulted to len(items) by Run
	CategoryCount      int    // target number of categories for the universe
	SampleSize         int    // max items shown to the oracle when proposing categories
	StepCategoryAmount int    // categories proposed per recursion level
	BatchSize          int    // items per assignment oracle call
	MaxDepth           int    // recursion ceiling
	UnassignedLabel    string // sink category name for unmatched/omitted items; empty drops them with a warning
}

func (c Config) Validate() error {
	if c.ItemCount <= 0 {
		return fmt.Errorf("%w: item count must be positive", models.ErrValidation)
	}
	if c.CategoryCount <= 0 {
		return fmt.Errorf("%w: category count must be positive", models.ErrValidation)
	}
	if c.CategoryCount > c.ItemCount {
		return fmt.Errorf("%w: category count (%d) must not exceed item count (%d)", models.ErrValidation, c.CategoryCount, c.ItemCount)
	}
	if c.SampleSize <= 0 {
		return fmt.Errorf("%w: sample size must be positive", models.ErrValidation)
	}
	if c.StepCategoryAmount <= 0 {
		return fmt.Errorf("%w: step category amount must be positive", models.ErrValidation)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be positive", models.ErrValidation)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("%w: max depth must be positive", models.ErrValidation)
	}
	return nil
}

// ItemsPerCategory is the per-category item budget at this config's level.
func (c Config) ItemsPerCategory() int {
	return ceilDiv(c.ItemCount, c.CategoryCount)
}

// derive returns the child config for subdividing a category of the given
// size under this config's per-category budget.
func (c Config) derive(categorySize int) Config {
	child := c
	child.ItemCount = categorySize
	child.CategoryCount = ceilDiv(categorySize, c.ItemsPerCategory())
	return child
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Run is the programmatic entry point: it validates the configuration,
// defaults ItemCount to the collection size, and partitions the items into
// leaf categories using default prompts and sampling.
func Run(ctx context.Context, oracle Oracle, items []string, cfg Config) ([]*models.Category, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no items to categorize", models.ErrValidation)
	}
	if cfg.ItemCount == 0 {
		cfg.ItemCount = len(items)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	proposer := NewProposer(oracle, nil, "")
	assigner := NewAssigner(oracle, cfg.UnassignedLabel, "")
	return NewPartitioner(proposer, assigner).Partition(ctx, items, cfg, 0)
}
