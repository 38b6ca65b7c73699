package main

import (
	"fmt"
	"time"

	"github.com/ovumlab/ovumsort/internal/cli"
	"github.com/ovumlab/ovumsort/internal/engine"
)

// printBatchSummary renders the per-item results and tallies of a completed
// batch. Display shows every successful prediction, including uncertain
// measurement results that were not stored.
func printBatchSummary(batchNumber string, summary *engine.BatchSummary) {
	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Batch %s", batchNumber)))

	for _, record := range summary.Succeeded {
		gender := cli.GenderStyle(record.Gender).Render(string(record.Gender))
		fmt.Printf("  %s (%s confidence)\n", gender, record.Confidence)
		fmt.Printf("    %s\n", cli.SubtleStyle.Render(record.Reasoning))
	}

	fmt.Println()
	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("✓ %d succeeded", len(summary.Succeeded))))
	if summary.FailedCount > 0 {
		fmt.Println(cli.ErrorStyle.Render(fmt.Sprintf("✗ %d failed", summary.FailedCount)))
	}
	if skipped := len(summary.Succeeded) - summary.StoredCount; skipped > 0 {
		fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("– %d uncertain result(s) shown but not recorded", skipped)))
	}
	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d record(s) stored in %s", summary.StoredCount, summary.Duration.Round(time.Millisecond))))
}
