package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ovumlab/ovumsort/internal/cli"
)

func recordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "List recorded analyses",
		RunE:  runRecordsList,
	}

	cmd.AddCommand(recordsClearCmd())

	return cmd
}

func runRecordsList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

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
		fmt.Println(cli.SubtleStyle.Render("No analyses recorded yet."))
		return nil
	}

	fmt.Println(cli.TableHeaderStyle.Render(fmt.Sprintf("%-20s  %-12s  %-10s  %-9s  %-6s", "Timestamp", "Batch", "Type", "Gender", "Conf.")))
	for _, r := range records {
		gender := cli.GenderStyle(r.Gender).Render(fmt.Sprintf("%-9s", r.Gender))
		fmt.Printf("%-20s  %-12s  %-10s  %s  %-6s\n",
			r.Timestamp.Format(time.DateTime),
			r.BatchNumber,
			r.AnalysisType,
			gender,
			r.Confidence)
	}
	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d record(s)", len(records))))

	return nil
}

func recordsClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded analyses",
		Long: `Delete every recorded analysis and start a fresh session.

This is the only way records are ever removed; individual records are
immutable once stored.`,
		RunE: runRecordsClear,
	}

	cmd.Flags().Bool("force", false, "skip the confirmation prompt")

	return cmd
}

func runRecordsClear(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
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

	count, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count == 0 {
		fmt.Println(cli.SubtleStyle.Render("Nothing to clear."))
		return nil
	}

	if !force {
		fmt.Printf("Delete all %d record(s)? [y/N] ", count)
		var answer string
		_, _ = fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println(cli.SubtleStyle.Render("Aborted."))
			return nil
		}
	}

	if err := store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}

	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ Cleared %d record(s)", count)))
	return nil
}
