package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"taxa/internal/app"
	"taxa/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "taxa",
	Short: "Taxa CLI App",
	Long: `Taxa organizes large item collections into a small number of human-readable
categories by asking a generative model to propose categories and assign items,
recursively subdividing any category that grows past its budget.`,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is given, print help.
		cmd.Help()
	},
	// PersistentPreRunE runs before any subcommand's RunE
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		appInstance, err := app.NewApp(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		ctx := context.WithValue(cmd.Context(), appKey, appInstance)
		cmd.SetContext(ctx)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return nil // nothing was initialized
		}
		return appInstance.Close()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Define a custom type for the context key to avoid collisions.
type contextKey string

const appKey contextKey = "app"

// GetAppFromContext retrieves the app instance stored by PersistentPreRunE.
func GetAppFromContext(ctx context.Context) (*app.App, error) {
	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("application instance not found in context")
	}
	return appInstance, nil
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check oracle configuration and other diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}

		fmt.Printf("Oracle provider: %s (%s) %s\n",
			appInstance.Provider.Name(),
			appInstance.Provider.ModelName(),
			color.GreenString("OK"))

		p := appInstance.PartitionConfig()
		fmt.Printf("Partition defaults: category-count=%d sample-size=%d step-category-amount=%d batch-size=%d max-depth=%d\n",
			p.CategoryCount, p.SampleSize, p.StepCategoryAmount, p.BatchSize, p.MaxDepth)
		if p.UnassignedLabel != "" {
			fmt.Printf("Unmatched items are collected in %q\n", p.UnassignedLabel)
		} else {
			fmt.Println(color.YellowString("Unmatched items are dropped (no unassigned label configured)"))
		}
		return nil
	},
}
