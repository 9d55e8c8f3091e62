package partition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taxa/internal/models"
)

func leafWithItems(name string, n int) *models.Category {
	c := models.NewCategory(name, name+" description")
	for i := 0; i < n; i++ {
		c.Items = append(c.Items, "x")
	}
	return c
}

func TestComputeStats(t *testing.T) {
	leaves := []*models.Category{
		leafWithItems("A", 4),
		leafWithItems("B", 6),
		leafWithItems("C", 2),
	}

	stats := ComputeStats(leaves)

	assert.Equal(t, 3, stats.Leaves)
	assert.Equal(t, 12, stats.Items)
	assert.Equal(t, 2, stats.Min)
	assert.Equal(t, 6, stats.Max)
	assert.InDelta(t, 4.0, stats.Mean, 1e-9)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)
	assert.Zero(t, stats.Leaves)
	assert.Zero(t, stats.Items)
	assert.Zero(t, stats.Min)
	assert.Zero(t, stats.Max)
	assert.Zero(t, stats.Mean)
}
