package partition

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"taxa/internal/models"
)

// Proposer asks the oracle for a fixed number of category definitions based
// on a sample of the collection.
type Proposer struct {
	oracle   Oracle
	rng      *rand.Rand
	template string
}

// NewProposer creates a proposer. A nil rng gets a time-seeded source; an
// empty template selects DefaultProposePrompt. Tests inject a fixed-seed rng
// for reproducible sampling.
func NewProposer(oracle Oracle, rng *rand.Rand, template string) *Proposer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if template == "" {
		template = DefaultProposePrompt
	}
	return &Proposer{oracle: oracle, rng: rng, template: template}
}

type proposedCategory struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Propose returns cfg.StepCategoryAmount empty categories described by the
// oracle. A reply missing the "categories" field is a schema mismatch, never
// coerced to an empty set.
func (p *Proposer) Propose(ctx context.Context, items []string, cfg Config) ([]*models.Category, error) {
	sample := p.sample(items, cfg.SampleSize)

	userPrompt, err := json.Marshal(sample)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize item sample: %w", err)
	}

	raw, err := p.oracle.Call(ctx, buildProposePrompt(p.template, cfg), string(userPrompt))
	if err != nil {
		return nil, err
	}

	// Pointer field distinguishes a missing key from an empty array.
	var parsed struct {
		Categories *[]proposedCategory `json:"categories"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrSchemaMismatch, err)
	}
	if parsed.Categories == nil {
		return nil, fmt.Errorf("%w: missing \"categories\" field in proposal reply", models.ErrSchemaMismatch)
	}
	if len(*parsed.Categories) == 0 {
		return nil, fmt.Errorf("%w: oracle proposed zero categories", models.ErrSchemaMismatch)
	}
	if len(*parsed.Categories) != cfg.StepCategoryAmount {
		log.Warnf("Oracle proposed %d categories, expected %d", len(*parsed.Categories), cfg.StepCategoryAmount)
	}

	categories := make([]*models.Category, 0, len(*parsed.Categories))
	for _, pc := range *parsed.Categories {
		if pc.Name == "" {
			log.Warnf("Oracle proposed a category with an empty name; skipping")
			continue
		}
		categories = append(categories, models.NewCategory(pc.Name, pc.Description))
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no usable categories in proposal reply", models.ErrSchemaMismatch)
	}
	return categories, nil
}

// sample returns all items when the collection fits within sampleSize, else a
// uniform random sample without replacement.
func (p *Proposer) sample(items []string, sampleSize int) []string {
	if len(items) <= sampleSize {
		out := make([]string, len(items))
		copy(out, items)
		return out
	}
	out := make([]string, 0, sampleSize)
	for _, idx := range p.rng.Perm(len(items))[:sampleSize] {
		out = append(out, items[idx])
	}
	return out
}
