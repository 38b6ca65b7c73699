package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ovumlab/ovumsort/internal/cli"
	"github.com/ovumlab/ovumsort/internal/report"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export recorded analyses as a CSV report",
		Long: `Export every recorded analysis as a CSV report.

The report is a snapshot of the record store in chronological order with the
columns Timestamp, Batch Number, Analysis Type, Predicted Gender, Confidence
and AI Reasoning. The default filename carries today's date.`,
		RunE: runExport,
	}

	cmd.Flags().StringP("output", "o", "", "output file (default: ovumsort_report_<date>.csv)")

	return cmd
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if output == "" {
		output = report.Filename(time.Now())
	}

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

	if len(records) == 0 {
		fmt.Println(cli.SubtleStyle.Render("No analyses recorded yet; nothing to export."))
		return nil
	}

	if err := os.WriteFile(output, report.Render(records), 0600); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Exported %d record(s) to %s", len(records), output)))
	return nil
}
