package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SFA16SCM21C/Finagent/internal/config"
	"github.com/SFA16SCM21C/Finagent/internal/engine"
	"github.com/SFA16SCM21C/Finagent/internal/model"
	"github.com/SFA16SCM21C/Finagent/internal/ofx"
)

func importOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import bank statement exports in OFX or QFX (Quicken) format and run
them through the pipeline.

Examples:
  # Import a single file
  finagent import-ofx ~/Downloads/statement_jan.qfx

  # Import everything in a directory
  finagent import-ofx ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")

	return cmd
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	slog.Info("Importing OFX files",
		"file_count", len(allFiles),
		"dry_run", dryRun)

	parser := ofx.NewParser()
	ctx := cmd.Context()

	var raws []model.RawTransaction
	for _, filePath := range allFiles {
		f, err := os.Open(filePath)
		if err != nil {
			slog.Error("Failed to open file", "file", filePath, "error", err)
			continue
		}

		fileRaws, err := parser.ParseFile(ctx, f)
		_ = f.Close()
		if err != nil {
			slog.Error("Failed to parse OFX file", "file", filePath, "error", err)
			continue
		}

		slog.Info("Processed file",
			"file", filepath.Base(filePath),
			"transactions_found", len(fileRaws))
		raws = append(raws, fileRaws...)
	}

	if len(raws) == 0 {
		slog.Warn("No transactions found in any file")
		return nil
	}

	if dryRun {
		slog.Info("Dry run complete - no data saved", "total_count", len(raws))
		return nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	pipeline := engine.New(store, config.PipelineConfig())
	summary, err := pipeline.Run(ctx, raws)
	if err != nil {
		return err
	}

	slog.Info("Import complete",
		"normalized", summary.Normalized,
		"skipped", len(summary.Skipped),
		"months", len(summary.Months))

	return nil
}
