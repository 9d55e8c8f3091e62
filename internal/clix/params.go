package clix

import (
	"github.com/spf13/pflag"

	"taxa/pkg/partition"
)

// ApplyPartitionOverrides layers any explicitly set partition flags over the
// config-derived base. Flags left at zero keep the base value.
func ApplyPartitionOverrides(flags *pflag.FlagSet, base partition.Config) (partition.Config, error) {
	cfg := base

	if n, _ := flags.GetInt("category-count"); n > 0 {
		cfg.CategoryCount = n
	}
	if n, _ := flags.GetInt("sample-size"); n > 0 {
		cfg.SampleSize = n
	}
	if n, _ := flags.GetInt("step-category-amount"); n > 0 {
		cfg.StepCategoryAmount = n
	}
	if n, _ := flags.GetInt("batch-size"); n > 0 {
		cfg.BatchSize = n
	}
	if n, _ := flags.GetInt("max-depth"); n > 0 {
		cfg.MaxDepth = n
	}
	if drop, _ := flags.GetBool("drop-unassigned"); drop {
		cfg.UnassignedLabel = ""
	}

	return cfg, nil
}

// RegisterPartitionFlags declares the override flags on a command's flag set.
func RegisterPartitionFlags(flags *pflag.FlagSet) {
	flags.Int("category-count", 0, "Target number of categories for the whole collection (0 = config default)")
	flags.Int("sample-size", 0, "Max items sampled for category proposal (0 = config default)")
	flags.Int("step-category-amount", 0, "Categories proposed per recursion level (0 = config default)")
	flags.Int("batch-size", 0, "Items per assignment call (0 = config default)")
	flags.Int("max-depth", 0, "Maximum subdivision depth (0 = config default)")
	flags.Bool("drop-unassigned", false, "Drop unmatched items instead of collecting them in the unassigned category")
}
