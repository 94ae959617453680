package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/micetf/classifieur-numerique/internal/cli"
	"github.com/micetf/classifieur-numerique/internal/command"
	"github.com/micetf/classifieur-numerique/internal/common"
	"github.com/micetf/classifieur-numerique/internal/model"
	"github.com/micetf/classifieur-numerique/internal/pattern"
	"github.com/micetf/classifieur-numerique/internal/service"
)

// Source names used when the document is described instead of uploaded.
const (
	descriptionFileName   = "document_description.txt"
	descriptionSourceName = "Description textuelle"
)

// input is the content to classify and where it came from.
type input struct {
	content    string
	fileName   string
	sourceName string
	sourceType model.SourceType
}

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Suggest a folder for one document",
		Long: `Classify a document (.txt, .md, .csv, .html, .pdf) or a text description,
choose one of the suggested folders and print the command that files it.

Examples:
  classifieur classify seance-thymio.pdf
  classifieur classify --text "Séquence Scratch Junior en GS"
  classifieur classify cours.md --pick 1 --name cours-robotique.md
  classifieur classify cours.md --ai --type perso`,
		Args: cobra.MaximumNArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().StringP("text", "t", "", "Describe the document instead of reading a file")
	cmd.Flags().Bool("ai", false, "Ask the configured language model first")
	cmd.Flags().IntP("pick", "p", 0, "Suggestion number to use without prompting (0 = ask)")
	cmd.Flags().StringP("name", "n", "", "Destination file name (default: DATE_name_v1.ext)")
	cmd.Flags().Bool("no-save", false, "Do not record the operation in the history")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	text, _ := cmd.Flags().GetString("text")
	aiFlag, _ := cmd.Flags().GetBool("ai")
	pick, _ := cmd.Flags().GetInt("pick")
	name, _ := cmd.Flags().GetString("name")
	noSave, _ := cmd.Flags().GetBool("no-save")

	a, err := newApp()
	if err != nil {
		return err
	}

	in, err := readInput(a, args, text)
	if err != nil {
		return err
	}

	if issues := pattern.DetectRGPD(in.content); len(issues) > 0 {
		if err := cli.RenderRGPD(out, issues); err != nil {
			return err
		}
	}

	tree, err := a.tree(ctx)
	if err != nil {
		return err
	}

	result := a.engine.ClassifyContent(ctx, in.content, tree, a.useAI(aiFlag), a.cfg.LLM.APIKey)
	slog.Debug("Classification finished",
		"source", in.sourceName,
		"suggestions", len(result.Suggestions),
		"ai", result.AIGenerated)

	prompter := cli.NewPrompter(cmd.InOrStdin(), out)

	var picker service.SuggestionPicker = prompter
	if pick > 0 {
		if err := cli.RenderResult(out, result); err != nil {
			return err
		}
		picker = fixedPicker(pick)
	}

	match, err := picker.PickSuggestion(ctx, result)
	if err != nil {
		if errors.Is(err, cli.ErrSkipped) {
			_, _ = fmt.Fprintln(out, cli.FormatInfo("Aucun dossier choisi."))
			return nil
		}
		if errors.Is(err, common.ErrNoSuggestion) {
			return common.NewUserError("aucun dossier ne correspond à ce document", err)
		}
		return err
	}

	now := time.Now()
	if name == "" {
		defaultName := command.DatedName(in.fileName, now)
		if pick > 0 {
			name = defaultName
		} else if name, err = prompter.PromptName(ctx, defaultName); err != nil {
			return err
		}
	}

	generated := command.GenerateAndValidate(match.Path, in.fileName, name, now)
	if err := cli.RenderCommand(out, generated); err != nil {
		return err
	}
	if !generated.Validation.Valid {
		return common.NewUserError("commande refusée", common.ErrUnsafeCommand)
	}

	if noSave {
		return nil
	}
	return recordHistory(ctx, a, &model.HistoryEntry{
		Date:             now,
		SourceType:       in.sourceType,
		SourceName:       in.sourceName,
		TargetPath:       match.Path,
		TargetName:       name,
		Command:          generated.Command,
		ArborescenceType: string(a.cfg.Hierarchy.Type),
		AIAssisted:       match.AIGenerated && result.AIGenerated,
	})
}

// readInput returns the file content when a path is given, the --text
// description otherwise, or standard input when the path is "-".
func readInput(a *app, args []string, text string) (input, error) {
	switch {
	case len(args) == 1 && args[0] == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return input{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		return descriptionInput(string(data))
	case len(args) == 1:
		doc, err := a.extractor.Extract(args[0])
		if err != nil {
			return input{}, common.NewUserError(fmt.Sprintf("impossible de lire %s", args[0]), err)
		}
		return input{
			content:    doc.Text(),
			fileName:   doc.Name,
			sourceName: doc.Name,
			sourceType: model.SourceFile,
		}, nil
	default:
		return descriptionInput(text)
	}
}

func descriptionInput(text string) (input, error) {
	if strings.TrimSpace(text) == "" {
		return input{}, common.NewUserError("indiquez un fichier ou une description (--text)", common.ErrMissingConfig)
	}
	return input{
		content:    text,
		fileName:   descriptionFileName,
		sourceName: descriptionSourceName,
		sourceType: model.SourceDescription,
	}, nil
}

// fixedPicker selects a suggestion by its 1-based number.
type fixedPicker int

func (n fixedPicker) PickSuggestion(_ context.Context, result model.Result) (model.Match, error) {
	if len(result.Suggestions) == 0 {
		return model.Match{}, common.ErrNoSuggestion
	}
	i := int(n)
	if i < 1 || i > len(result.Suggestions) {
		return model.Match{}, common.NewUserError(
			fmt.Sprintf("--pick doit être compris entre 1 et %d", len(result.Suggestions)), nil)
	}
	return result.Suggestions[i-1], nil
}

func recordHistory(ctx context.Context, a *app, entry *model.HistoryEntry) error {
	store, err := openStore(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("Failed to close database", "error", closeErr)
		}
	}()

	id, err := store.SaveHistory(ctx, entry)
	if err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	slog.Debug("History entry saved", "id", id)
	return nil
}
