package partition

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"taxa/internal/models"
)

// Assigner partitions a full item list into a fixed category set via
// sequential batched oracle calls.
type Assigner struct {
	oracle          Oracle
	unassignedLabel string
	template        string
}

// NewAssigner creates an assigner. An empty unassignedLabel restores the
// warn-and-drop behavior for unmatched or omitted items; otherwise they are
// routed into a sink category with that name. An empty template selects
// DefaultAssignPrompt.
func NewAssigner(oracle Oracle, unassignedLabel, template string) *Assigner {
	if template == "" {
		template = DefaultAssignPrompt
	}
	return &Assigner{oracle: oracle, unassignedLabel: unassignedLabel, template: template}
}

type assignment struct {
	Item         string `json:"item"`
	CategoryName string `json:"categoryName"`
}

// Assign populates the categories' item lists from items. Lookup is by exact
// category name, resolved once into the stable category set for this call.
// The returned category is the unassigned sink (nil when unused or disabled);
// it is not part of the input set.
func (a *Assigner) Assign(ctx context.Context, items []string, categories []*models.Category, cfg Config) (*models.Category, error) {
	systemPrompt := buildAssignPrompt(a.template, categories)

	index := make(map[string]*models.Category, len(categories))
	for _, c := range categories {
		if _, dup := index[c.Name]; dup {
			log.Warnf("Duplicate category name %q; assignments resolve to the first occurrence", c.Name)
			continue
		}
		index[c.Name] = c
	}

	// Multiset of items still awaiting an assignment. Guards against the
	// backend assigning an item twice or inventing items.
	pending := make(map[string]int, len(items))
	for _, it := range items {
		pending[it]++
	}

	var unassigned *models.Category
	sink := func() *models.Category {
		if unassigned == nil {
			unassigned = models.NewCategory(a.unassignedLabel, "Items the oracle could not place in any proposed category")
		}
		return unassigned
	}

	for start := 0; start < len(items); start += cfg.BatchSize {
		end := start + cfg.BatchSize
		if end > len(items) {
			end = len(items)
		}

		userPrompt, err := json.Marshal(items[start:end])
		if err != nil {
			return nil, fmt.Errorf("failed to serialize assignment batch: %w", err)
		}

		raw, err := a.oracle.Call(ctx, systemPrompt, string(userPrompt))
		if err != nil {
			return nil, err
		}

		var parsed struct {
			Assignments *[]assignment `json:"assignments"`
		}
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrSchemaMismatch, err)
		}
		if parsed.Assignments == nil {
			return nil, fmt.Errorf("%w: missing \"assignments\" field in assignment reply", models.ErrSchemaMismatch)
		}

		for _, as := range *parsed.Assignments {
			if pending[as.Item] == 0 {
				log.Warnf("Oracle assigned unknown or already-assigned item %q; ignoring", as.Item)
				continue
			}
			cat, ok := index[as.CategoryName]
			if !ok {
				log.Warnf("Oracle assigned item %q to unlisted category %q", as.Item, as.CategoryName)
				if a.unassignedLabel == "" {
					pending[as.Item]-- // dropped
					continue
				}
				cat = sink()
			}
			cat.Items = append(cat.Items, as.Item)
			pending[as.Item]--
		}
	}

	// Sweep items the backend omitted from every reply, preserving input order.
	omitted := 0
	for _, it := range items {
		if pending[it] == 0 {
			continue
		}
		pending[it]--
		omitted++
		if a.unassignedLabel == "" {
			log.Warnf("Oracle omitted item %q from its assignments; dropping", it)
			continue
		}
		sink().Items = append(sink().Items, it)
	}
	if omitted > 0 && a.unassignedLabel != "" {
		log.Warnf("%d items were unmatched or omitted; routed to %q", omitted, a.unassignedLabel)
	}

	return unassigned, nil
}
