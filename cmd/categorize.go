package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"taxa/internal/clix"
	"taxa/internal/dataset"
	"taxa/internal/itemsource"
	"taxa/internal/models"
	"taxa/pkg/partition"
)

var categorizeUseSample bool

// categorizeCmd runs the full pipeline and prints the resulting leaf
// categories plus distribution statistics.
var categorizeCmd = &cobra.Command{
	Use:   "categorize [items]",
	Short: "Partition an item collection into human-readable categories",
	Long: `Partitions an item collection into leaf categories via the configured oracle.

The items argument is a path to a text file (one item per line), "-" for stdin,
or an inline comma-separated list. With --sample the built-in demo dataset is
used instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		appInstance, err := GetAppFromContext(ctx)
		if err != nil {
			return fmt.Errorf("failed to get app instance: %w", err)
		}

		var items []string
		switch {
		case categorizeUseSample:
			items = dataset.GroceryItems
		case len(args) == 1:
			items, err = itemsource.New().Process(ctx, args[0])
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("provide an items argument or use --sample")
		}

		cfg, err := clix.ApplyPartitionOverrides(cmd.Flags(), appInstance.PartitionConfig())
		if err != nil {
			return err
		}

		leaves, err := appInstance.RunCategorization(ctx, items, cfg)
		if err != nil {
			return fmt.Errorf("categorization failed: %w", err)
		}

		out, err := json.MarshalIndent(leaves, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render result: %w", err)
		}
		fmt.Println(string(out))

		printSummary(leaves, len(items))

		if totals, err := appInstance.Tracker.Totals(ctx); err == nil && totals.Calls > 0 {
			fmt.Printf("Oracle usage: %d calls, %d input tokens, %d output tokens\n",
				totals.Calls, totals.InputTokens, totals.OutputTokens)
		}

		return nil
	},
}

func printSummary(leaves []*models.Category, inputCount int) {
	stats := partition.ComputeStats(leaves)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Leaves", "Items", "Min", "Max", "Mean"})
	table.SetBorder(true)
	table.Append([]string{
		strconv.Itoa(stats.Leaves),
		strconv.Itoa(stats.Items),
		strconv.Itoa(stats.Min),
		strconv.Itoa(stats.Max),
		fmt.Sprintf("%.2f", stats.Mean),
	})
	table.Render()

	if stats.Items == inputCount {
		fmt.Printf("%s all %d items categorized\n", color.GreenString("OK"), inputCount)
	} else {
		fmt.Printf("%s %d of %d items categorized (%d lost)\n",
			color.YellowString("WARN"), stats.Items, inputCount, inputCount-stats.Items)
	}
}

func init() {
	rootCmd.AddCommand(categorizeCmd)
	categorizeCmd.Flags().BoolVar(&categorizeUseSample, "sample", false, "Categorize the built-in demo dataset")
	clix.RegisterPartitionFlags(categorizeCmd.Flags())
}
