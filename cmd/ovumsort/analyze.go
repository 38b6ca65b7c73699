package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ovumlab/ovumsort/internal/engine"
	"github.com/ovumlab/ovumsort/internal/imaging"
	"github.com/ovumlab/ovumsort/internal/model"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [image files...]",
		Short: "Analyze a batch of egg images",
		Long: `Analyze one or more egg images with the AI reasoning service.

Every image in the batch gets its own prediction call; a failing image is
counted and skipped while the rest of the batch completes. Malformed input,
by contrast, rejects the whole submission before anything is sent.

Examples:
  ovumsort analyze --batch B-12 eggs/*.jpg
  ovumsort analyze --batch B-12 --source live frames/*.jpg`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringP("batch", "b", "", "batch number shared by all records from this submission")
	cmd.Flags().String("source", "file", "image source (file, live) - live tags records as camera captures")
	_ = cmd.MarkFlagRequired("batch")

	_ = viper.BindPFlag("analyze.batch", cmd.Flags().Lookup("batch"))
	_ = viper.BindPFlag("analyze.source", cmd.Flags().Lookup("source"))

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	batchNumber := viper.GetString("analyze.batch")

	analysisType := model.TypeImage
	switch viper.GetString("analyze.source") {
	case "file":
	case "live":
		analysisType = model.TypeLiveCamera
	default:
		return fmt.Errorf("invalid source %q (use file or live)", viper.GetString("analyze.source"))
	}

	// Read and prepare every image before anything is dispatched: an
	// unreadable file rejects the whole submission.
	inputs := make([]engine.Input, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		img, err := imaging.Prepare(filepath.Base(path), data)
		if err != nil {
			return err
		}
		inputs = append(inputs, engine.Input{Image: &img})
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

	summary, err := coordinator.RunBatch(ctx, batchNumber, analysisType, inputs)
	if err != nil {
		return fmt.Errorf("batch submission rejected: %w", err)
	}

	printBatchSummary(batchNumber, summary)
	return nil
}
