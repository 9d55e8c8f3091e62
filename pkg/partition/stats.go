package partition

import (
	"taxa/internal/models"
)

// Stats summarizes the item distribution across leaf categories.
type Stats struct {
	Leaves int
	Items  int
	Min    int
	Max    int
	Mean   float64
}

// ComputeStats reports min/max/mean item counts across the leaves.
func ComputeStats(leaves []*models.Category) Stats {
	stats := Stats{}
	if len(leaves) == 0 {
		return stats
	}

	stats.Leaves = len(leaves)
	stats.Min = len(leaves[0].Items)
	for _, leaf := range leaves {
		n := len(leaf.Items)
		stats.Items += n
		if n < stats.Min {
			stats.Min = n
		}
		if n > stats.Max {
			stats.Max = n
		}
	}
	stats.Mean = float64(stats.Items) / float64(stats.Leaves)
	return stats
}
