package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/micetf/classifieur-numerique/internal/engine"
)

// BatchReporter advances a progress bar as batch results arrive.
// Observe is safe to call from the engine's worker goroutines.
type BatchReporter struct {
	writer io.Writer
	bar    *progressbar.ProgressBar
}

// NewBatchReporter creates a reporter for total documents.
func NewBatchReporter(writer io.Writer, total int) *BatchReporter {
	if writer == nil {
		writer = os.Stderr
	}

	r := &BatchReporter{writer: writer}
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Classement des documents...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
	return r
}

// Observe records one finished document.
func (r *BatchReporter) Observe(result engine.BatchResult) {
	r.bar.Describe(fmt.Sprintf("[cyan]%s[reset]", result.Name))
	if err := r.bar.Add(1); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

// Finish completes the bar even when the batch stopped early.
func (r *BatchReporter) Finish() {
	if err := r.bar.Finish(); err != nil {
		slog.Warn("Failed to finish progress bar", "error", err)
	}
}

// Processed returns how many documents were observed.
func (r *BatchReporter) Processed() int {
	return int(r.bar.State().CurrentNum)
}
