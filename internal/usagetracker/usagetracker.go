package usagetracker

import (
	"context"
	"sync"
)

// UsageEvent represents a single oracle call and its token consumption.
type UsageEvent struct {
	Operation    string // e.g. "propose", "assign"
	Provider     string
	Model        string
	InputTokens  int
	OutputTokens int
}

// Totals aggregates every recorded event.
type Totals struct {
	Calls        int
	InputTokens  int
	OutputTokens int
}

// UsageTracker provides methods to record and report oracle usage.
type UsageTracker interface {
	RecordUsage(ctx context.Context, event UsageEvent) error
	Totals(ctx context.Context) (Totals, error)
}

// New returns an in-memory tracker.
func New() UsageTracker {
	return &memoryTracker{}
}

type memoryTracker struct {
	mu     sync.Mutex
	totals Totals
}

func (t *memoryTracker) RecordUsage(ctx context.Context, event UsageEvent) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.totals.Calls++
	t.totals.InputTokens += event.InputTokens
	t.totals.OutputTokens += event.OutputTokens
	return nil
}

func (t *memoryTracker) Totals(ctx context.Context) (Totals, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totals, nil
}
