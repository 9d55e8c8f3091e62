package partition

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"taxa/internal/models"
)

// Partitioner orchestrates propose/assign and recursively subdivides any
// category whose population exceeds the per-category budget.
type Partitioner struct {
	proposer *Proposer
	assigner *Assigner
}

func NewPartitioner(proposer *Proposer, assigner *Assigner) *Partitioner {
	return &Partitioner{proposer: proposer, assigner: assigner}
}

// Partition returns the leaf categories for items under cfg, depth-first and
// strictly sequential. Leaf names encode ancestry ("parent > child"); parent
// categories that get subdivided are never emitted themselves.
func (p *Partitioner) Partition(ctx context.Context, items []string, cfg Config, depth int) ([]*models.Category, error) {
	if depth >= cfg.MaxDepth {
		return nil, fmt.Errorf("%w: depth %d with %d items still over budget", models.ErrMaxDepthExceeded, depth, len(items))
	}

	log.Debugf("Partitioning %d items at depth %d (budget %d per category)", len(items), depth, cfg.ItemsPerCategory())

	categories, err := p.proposer.Propose(ctx, items, cfg)
	if err != nil {
		return nil, err
	}

	unassigned, err := p.assigner.Assign(ctx, items, categories, cfg)
	if err != nil {
		return nil, err
	}

	itemsPerCategory := cfg.ItemsPerCategory()
	leaves := make([]*models.Category, 0, len(categories))
	for _, category := range categories {
		if len(category.Items) == 0 {
			log.Debugf("Category %q received no items; skipping", category.Name)
			continue
		}
		if len(category.Items) <= itemsPerCategory {
			leaves = append(leaves, category)
			continue
		}

		// The subdivision must shrink the problem, otherwise a degenerate
		// oracle (everything into one bucket) would recurse forever.
		if len(category.Items) >= len(items) {
			return nil, fmt.Errorf("%w: category %q holds all %d items at depth %d", models.ErrNoProgress, category.Name, len(items), depth)
		}

		subLeaves, err := p.Partition(ctx, category.Items, cfg.derive(len(category.Items)), depth+1)
		if err != nil {
			return nil, err
		}
		for _, sub := range subLeaves {
			sub.Name = category.Name + " > " + sub.Name
			sub.Description = category.Description + " - " + sub.Description
			leaves = append(leaves, sub)
		}
	}

	// The sink is emitted as-is: re-partitioning items the oracle already
	// failed to place tends to loop rather than converge.
	if unassigned != nil && len(unassigned.Items) > 0 {
		leaves = append(leaves, unassigned)
	}

	return leaves, nil
}
