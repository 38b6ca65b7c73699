package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ovumlab/ovumsort/internal/engine"
	"github.com/ovumlab/ovumsort/internal/model"
)

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Predict gender from egg measurements",
		Long: `Predict embryo gender from physical egg measurements.

Each --row takes "long-axis-mm,short-axis-mm,weight-g". All rows must parse
as positive numbers with short axis smaller than long axis; one bad row
rejects the entire submission before any prediction is requested.

The reasoning for each result is prefixed with the computed shape index
(short/long * 100). Results the service marks "Uncertain" are shown but not
recorded: measurement-only evidence is too weak to count them as outcomes.

Examples:
  ovumsort calculate --batch B-12 --row 58.2,43.1,61.0 --row 55.4,42.8,58.3`,
		RunE: runCalculate,
	}

	cmd.Flags().StringP("batch", "b", "", "batch number shared by all records from this submission")
	cmd.Flags().StringArrayP("row", "r", nil, "measurement row: long-axis-mm,short-axis-mm,weight-g (repeatable)")
	_ = cmd.MarkFlagRequired("batch")
	_ = cmd.MarkFlagRequired("row")

	_ = viper.BindPFlag("calculate.batch", cmd.Flags().Lookup("batch"))

	return cmd
}

func runCalculate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	batchNumber := viper.GetString("calculate.batch")

	rows, err := cmd.Flags().GetStringArray("row")
	if err != nil {
		return err
	}

	inputs, err := parseMeasurementRows(rows)
	if err != nil {
		return fmt.Errorf("batch submission rejected: %w", err)
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

	client, err := createPredictionClient()
	if err != nil {
		return err
	}

	coordinator := engine.NewWithConfig(store, client, engine.Config{ShowProgress: true})

	summary, err := coordinator.RunBatch(ctx, batchNumber, model.TypeCalculator, inputs)
	if err != nil {
		return fmt.Errorf("batch submission rejected: %w", err)
	}

	printBatchSummary(batchNumber, summary)
	return nil
}

// parseMeasurementRows parses every row, collecting an error per malformed
// row so the user sees everything wrong with the submission at once.
func parseMeasurementRows(rows []string) ([]engine.Input, error) {
	inputs := make([]engine.Input, 0, len(rows))
	var errs []error

	for i, row := range rows {
		id := fmt.Sprintf("row %d", i+1)

		parts := strings.Split(row, ",")
		if len(parts) != 3 {
			errs = append(errs, fmt.Errorf("%s: expected long,short,weight but got %q", id, row))
			continue
		}

		values := make([]float64, 3)
		ok := true
		for j, part := range parts {
			v, parseErr := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if parseErr != nil {
				errs = append(errs, fmt.Errorf("%s: %q is not a number", id, strings.TrimSpace(part)))
				ok = false
				break
			}
			values[j] = v
		}
		if !ok {
			continue
		}

		inputs = append(inputs, engine.Input{Measurement: &model.MeasurementInput{
			ID:          id,
			LongAxisMm:  values[0],
			ShortAxisMm: values[1],
			WeightG:     values[2],
		}})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return inputs, nil
}
