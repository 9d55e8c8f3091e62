package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"taxa/internal/config"
	"taxa/internal/models"
	"taxa/internal/oracle"
	"taxa/internal/usagetracker"
	"taxa/pkg/partition"
)

// App wires configuration, the oracle provider stack and the partition
// pipeline. Built once per invocation and stored in the command context.
type App struct {
	Config   *config.Config
	Tracker  usagetracker.UsageTracker
	Provider oracle.Provider
	Oracle   *oracle.Client

	proposeTemplate string
	assignTemplate  string
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &App{Config: cfg, Tracker: usagetracker.New()}

	if err := app.initProvider(ctx); err != nil {
		return nil, err
	}
	app.Oracle = oracle.NewClient(
		app.Provider,
		cfg.Oracle.MaxRetries,
		time.Duration(cfg.Oracle.BackoffSeconds)*time.Second,
	)
	if err := app.loadPromptTemplates(); err != nil {
		return nil, err
	}

	return app, nil
}

func (a *App) initProvider(ctx context.Context) error {
	cfg := a.Config.Oracle
	switch cfg.Provider {
	case "openai":
		provider, err := oracle.NewOpenAIProvider(cfg.OpenaiApiKey, cfg.Model, cfg.Temperature, a.Tracker)
		if err != nil {
			return fmt.Errorf("failed to initialize OpenAI provider: %w", err)
		}
		a.Provider = provider
	case "gemini":
		provider, err := oracle.NewGeminiProvider(ctx, cfg.GoogleApiKey, cfg.Model, cfg.Temperature, a.Tracker)
		if err != nil {
			return fmt.Errorf("failed to initialize Gemini provider: %w", err)
		}
		a.Provider = provider
	default:
		return fmt.Errorf("unknown oracle provider: %q", cfg.Provider)
	}
	return nil
}

func (a *App) loadPromptTemplates() error {
	proposeTemplate, err := config.LoadPromptContent(a.Config.Prompts.ProposeTemplate)
	if err != nil {
		return fmt.Errorf("failed to load propose prompt template: %w", err)
	}
	assignTemplate, err := config.LoadPromptContent(a.Config.Prompts.AssignTemplate)
	if err != nil {
		return fmt.Errorf("failed to load assign prompt template: %w", err)
	}
	a.proposeTemplate = proposeTemplate
	a.assignTemplate = assignTemplate
	return nil
}

// PartitionConfig returns the config-file defaults as a partition.Config,
// ready for per-command flag overrides.
func (a *App) PartitionConfig() partition.Config {
	p := a.Config.Partition
	return partition.Config{
		CategoryCount:      p.CategoryCount,
		SampleSize:         p.SampleSize,
		StepCategoryAmount: p.StepCategoryAmount,
		BatchSize:          p.BatchSize,
		MaxDepth:           p.MaxDepth,
		UnassignedLabel:    p.UnassignedLabel,
	}
}

// RunCategorization partitions items into leaf categories. ItemCount defaults
// to the collection size; the config is validated before any oracle call.
func (a *App) RunCategorization(ctx context.Context, items []string, cfg partition.Config) ([]*models.Category, error) {
	if cfg.ItemCount == 0 {
		cfg.ItemCount = len(items)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	proposer := partition.NewProposer(a.Oracle, nil, a.proposeTemplate)
	assigner := partition.NewAssigner(a.Oracle, cfg.UnassignedLabel, a.assignTemplate)
	return partition.NewPartitioner(proposer, assigner).Partition(ctx, items, cfg, 0)
}

// Close releases provider resources (the Gemini client holds a connection).
func (a *App) Close() error {
	if closer, ok := a.Provider.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
