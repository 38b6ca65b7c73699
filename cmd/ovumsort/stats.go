package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ovumlab/ovumsort/internal/cli"
	"github.com/ovumlab/ovumsort/internal/stats"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show gender distribution statistics",
		Long: `Show the gender distribution across recorded analyses.

Only determinate predictions count: records marked "Uncertain" are excluded
from both the counts and the percentages.

Examples:
  ovumsort stats               # All batches
  ovumsort stats --batch B-12  # One batch`,
		RunE: runStats,
	}

	cmd.Flags().StringP("batch", "b", stats.FilterAll, "limit statistics to one batch number")
	_ = viper.BindPFlag("stats.batch", cmd.Flags().Lookup("batch"))

	return cmd
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	batchFilter := viper.GetString("stats.batch")

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("Failed to close store", "error", closeErr)
		}
	}()

	records, err := store.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load records: %w", err)
	}

	summary := stats.Summarize(records, batchFilter)

	title := "Gender distribution (all batches)"
	if batchFilter != "" && batchFilter != stats.FilterAll {
		title = fmt.Sprintf("Gender distribution (batch %s)", batchFilter)
	}
	fmt.Println(cli.TitleStyle.Render(title))

	if summary.Total == 0 {
		fmt.Println(cli.SubtleStyle.Render("No determinate predictions recorded yet."))
		return nil
	}

	fmt.Printf("  Male:   %s  (%.1f%%)\n", cli.BoldStyle.Render(fmt.Sprintf("%d", summary.MaleCount)), summary.MalePct)
	fmt.Printf("  Female: %s  (%.1f%%)\n", cli.BoldStyle.Render(fmt.Sprintf("%d", summary.FemaleCount)), summary.FemalePct)
	fmt.Printf("  Total:  %d\n", summary.Total)

	if batches := stats.Batches(records); len(batches) > 1 {
		fmt.Println()
		fmt.Println(cli.SubtleStyle.Render("Batches: " + strings.Join(batches, ", ")))
	}

	return nil
}
