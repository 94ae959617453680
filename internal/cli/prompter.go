package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/micetf/classifieur-numerique/internal/common"
	"github.com/micetf/classifieur-numerique/internal/model"
	"github.com/micetf/classifieur-numerique/internal/service"
)

// ErrSkipped is returned when the user declines every suggestion.
var ErrSkipped = errors.New("suggestion skipped")

var _ service.SuggestionPicker = (*Prompter)(nil)

// Prompter asks the user to choose among suggestions.
type Prompter struct {
	reader *NonBlockingReader
	writer io.Writer
}

// NewPrompter creates a prompter with the given reader and writer.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Prompter{
		reader: NewNonBlockingReader(reader),
		writer: writer,
	}
}

// PickSuggestion renders the suggestions and returns the chosen one.
func (p *Prompter) PickSuggestion(ctx context.Context, result model.Result) (model.Match, error) {
	if len(result.Suggestions) == 0 {
		return model.Match{}, common.ErrNoSuggestion
	}

	if err := RenderResult(p.writer, result); err != nil {
		return model.Match{}, fmt.Errorf("failed to write suggestions: %w", err)
	}

	valid := make([]string, 0, len(result.Suggestions)+1)
	for i := range result.Suggestions {
		valid = append(valid, strconv.Itoa(i+1))
	}
	valid = append(valid, "s")

	prompt := fmt.Sprintf("Choix [1-%d, s pour ignorer]", len(result.Suggestions))
	choice, err := p.promptChoice(ctx, prompt, valid)
	if err != nil {
		return model.Match{}, err
	}
	if choice == "s" {
		return model.Match{}, ErrSkipped
	}

	n, _ := strconv.Atoi(choice)
	return result.Suggestions[n-1], nil
}

// PromptName asks for the destination file name. An empty answer keeps
// defaultName.
func (p *Prompter) PromptName(ctx context.Context, defaultName string) (string, error) {
	if _, err := fmt.Fprintf(p.writer, "%s", FormatPrompt(fmt.Sprintf("Nom du fichier [%s]", defaultName))); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	name, err := p.reader.ReadLine(ctx)
	if err != nil {
		return "", p.inputError(err)
	}
	if name == "" {
		return defaultName, nil
	}
	return name, nil
}

// Confirm asks a yes/no question; anything but an explicit yes is a no.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	if _, err := fmt.Fprintf(p.writer, "%s", FormatPrompt(question+" [o/N]")); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	answer, err := p.reader.ReadLine(ctx)
	if err != nil {
		return false, p.inputError(err)
	}

	switch strings.ToLower(answer) {
	case "o", "oui", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func (p *Prompter) promptChoice(ctx context.Context, prompt string, validChoices []string) (string, error) {
	for {
		if _, err := fmt.Fprintf(p.writer, "%s", FormatPrompt(prompt)); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}

		input, err := p.reader.ReadLine(ctx)
		if err != nil {
			return "", p.inputError(err)
		}

		choice := strings.ToLower(input)
		for _, valid := range validChoices {
			if choice == valid {
				return choice, nil
			}
		}

		if _, err := fmt.Fprintln(p.writer, FormatError("Choix invalide, réessayez.")); err != nil {
			slog.Warn("Failed to write error message", "error", err)
		}
	}
}

func (p *Prompter) inputError(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("input terminated: %w", err)
	}
	return err
}
