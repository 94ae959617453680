package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/micetf/classifieur-numerique/internal/cli"
	"github.com/micetf/classifieur-numerique/internal/common"
	"github.com/micetf/classifieur-numerique/internal/document"
	"github.com/micetf/classifieur-numerique/internal/engine"
)

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Suggest folders for every document in a directory",
		Long: `Classify every supported document (.txt, .md, .csv, .html, .pdf) found in a
directory and print the best folder for each one with a summary.

Nothing is moved and nothing is written to the history.`,
		Args: cobra.ExactArgs(1),
		RunE: runBatch,
	}

	cmd.Flags().Bool("ai", false, "Ask the configured language model first")
	cmd.Flags().BoolP("recursive", "r", false, "Include subdirectories")
	cmd.Flags().IntP("workers", "w", 2, "Number of documents classified in parallel")

	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	aiFlag, _ := cmd.Flags().GetBool("ai")
	recursive, _ := cmd.Flags().GetBool("recursive")
	workers, _ := cmd.Flags().GetInt("workers")
	out := cmd.OutOrStdout()

	a, err := newApp()
	if err != nil {
		return err
	}

	files, err := collectFiles(args[0], recursive)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		_, _ = fmt.Fprintln(out, cli.FormatInfo("Aucun document pris en charge dans ce dossier."))
		return nil
	}

	items := make([]engine.BatchItem, 0, len(files))
	for _, path := range files {
		doc, err := a.extractor.Extract(path)
		if err != nil {
			slog.Warn("Skipping unreadable document", "path", path, "error", err)
			continue
		}
		items = append(items, engine.BatchItem{Name: doc.Name, Content: doc.Text()})
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := handler.HandleInterrupts(cmd.Context(), true)

	tree, err := a.tree(ctx)
	if err != nil {
		return err
	}

	reporter := cli.NewBatchReporter(cmd.ErrOrStderr(), len(items))
	results, summary := a.engine.ClassifyBatch(ctx, items, tree, engine.BatchOptions{
		OnResult:        reporter.Observe,
		APIKey:          a.cfg.LLM.APIKey,
		ParallelWorkers: workers,
		UseAlternate:    a.useAI(aiFlag),
	})
	processed := reporter.Processed()
	reporter.Finish()

	if handler.WasInterrupted() {
		slog.Info("Batch interrupted", "processed", processed, "total", len(items))
	}

	return cli.RenderBatch(out, results, summary)
}

// collectFiles lists the supported documents under dir in lexical order.
func collectFiles(dir string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("dossier introuvable : %s", dir), err)
	}
	if !info.IsDir() {
		return nil, common.NewUserError(fmt.Sprintf("%s n'est pas un dossier", dir), nil)
	}

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && !recursive {
				return filepath.SkipDir
			}
			return nil
		}
		if document.Supported(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	sort.Strings(files)
	return files, nil
}
