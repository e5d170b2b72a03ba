package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourusername/sample-products/config"
	"github.com/yourusername/sample-products/internal/domain/entity"
	"github.com/yourusername/sample-products/internal/domain/repository"
	"github.com/yourusername/sample-products/internal/infrastructure/excel"
	"github.com/yourusername/sample-products/internal/infrastructure/storage"
	"github.com/yourusername/sample-products/internal/usecase"
)

type application struct {
	cfg     *config.Config
	samples usecase.SampleUseCase
}

// boot loads config and wires the use case.
func boot() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var runRepo repository.GenerationRepository
	if cfg.HistoryInMemory() {
		runRepo = storage.NewMemoryGenerationRepository()
	} else {
		runRepo, err = storage.NewSQLiteGenerationRepository(cfg.HistoryDBPath)
		if err != nil {
			return nil, err
		}
	}

	samples := usecase.NewSampleUseCase(
		excel.NewWriter(),
		excel.NewReader(),
		runRepo,
		cfg.OutputDir,
		cfg.OutputFile,
	)
	return &application{cfg: cfg, samples: samples}, nil
}

// samplegen describe [files...]
var describeCmd = &cobra.Command{
	Use:   "describe [files...]",
	Short: "Read workbooks back and print sheets, columns and first rows",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}
		if len(args) == 0 {
			args = []string{filepath.Join(app.cfg.OutputDir, app.cfg.OutputFile)}
		}
		printSummaries(cmd.OutOrStdout(), app.samples.Describe(cmd.Context(), args...))
		return nil
	},
}

// samplegen history
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent generations",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := boot()
		if err != nil {
			return err
		}
		runs, err := app.samples.History(cmd.Context(), app.cfg.HistoryLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No generations recorded yet.")
			return nil
		}
		for _, run := range runs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %d rows  %s\n",
				run.CreatedAt.Format("2006-01-02 15:04:05"), run.ID, run.Rows, run.Path)
		}
		return nil
	},
}

func printSummaries(w io.Writer, summaries []entity.WorkbookSummary) {
	for _, s := range summaries {
		if s.Err != nil {
			fmt.Fprintf(w, "❌ %s - Error: %v\n\n", s.Path, s.Err)
			continue
		}
		fmt.Fprintf(w, "✅ %s\n", s.Path)
		fmt.Fprintf(w, "   Sheets: %s\n", strings.Join(s.Sheets, ", "))
		fmt.Fprintf(w, "   Rows: %d\n", s.RowCount)
		fmt.Fprintf(w, "   Columns: %s\n", strings.Join(s.Columns, ", "))
		if len(s.FirstRows) > 0 {
			fmt.Fprintf(w, "   First %d items:\n", len(s.FirstRows))
			for i, row := range s.FirstRows {
				fmt.Fprintf(w, "   %d. %s\n", i+1, strings.Join(row, " | "))
			}
		}
		fmt.Fprintln(w)
	}
}
