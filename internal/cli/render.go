package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/micetf/classifieur-numerique/internal/command"
	"github.com/micetf/classifieur-numerique/internal/engine"
	"github.com/micetf/classifieur-numerique/internal/model"
)

// RenderResult prints the numbered suggestions of a classification.
func RenderResult(w io.Writer, result model.Result) error {
	if len(result.Suggestions) == 0 {
		_, err := fmt.Fprintln(w, FormatWarning("Aucune suggestion trouvée pour ce document."))
		return err
	}

	var b strings.Builder
	for i, m := range result.Suggestions {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "[%d] %s  %s %s", i+1, FormatConfidence(m.Confidence), FolderIcon, BoldStyle.Render(m.Path))
		if m.AIGenerated {
			b.WriteString(" " + RobotIcon)
		}
		b.WriteString("\n")
		if m.Explanation != "" {
			b.WriteString("    " + SubtleStyle.Render(m.Explanation) + "\n")
		}
		if m.CRCNDomain != nil {
			fmt.Fprintf(&b, "    %s\n", InfoStyle.Render(fmt.Sprintf("CRCN %s · %s", m.CRCNDomain.ID, m.CRCNDomain.Name)))
		}
	}

	title := "Suggestions de classement"
	if result.AIGenerated {
		title += " (IA)"
	}
	if extra := len(result.AllMatches) - len(result.Suggestions); extra > 0 {
		fmt.Fprintf(&b, "\n%s", SubtleStyle.Render(fmt.Sprintf("%d autre(s) dossier(s) possible(s)", extra)))
	}

	_, err := fmt.Fprintln(w, RenderBox(title, strings.TrimRight(b.String(), "\n")))
	return err
}

// RenderCommand prints a generated command and its validation outcome.
func RenderCommand(w io.Writer, generated command.Generated) error {
	if _, err := fmt.Fprintln(w, generated.Command); err != nil {
		return fmt.Errorf("failed to write command: %w", err)
	}

	if generated.Validation.Valid {
		_, err := fmt.Fprintln(w, FormatSuccess("Commande vérifiée"))
		return err
	}

	if _, err := fmt.Fprintln(w, FormatError("Commande refusée :")); err != nil {
		return err
	}
	for _, e := range generated.Validation.Errors {
		if _, err := fmt.Fprintf(w, "  • %s\n", e); err != nil {
			return err
		}
	}
	return nil
}

// RenderHistory prints history entries, one block per entry.
func RenderHistory(w io.Writer, entries []model.HistoryEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, FormatInfo("Historique vide."))
		return err
	}

	for _, e := range entries {
		marker := ""
		if e.AIAssisted {
			marker = " " + RobotIcon
		}
		if _, err := fmt.Fprintf(w, "%s  %s  %s → %s/%s%s\n",
			SubtleStyle.Render(e.ID),
			e.Date.Local().Format("2006-01-02 15:04"),
			e.SourceName,
			e.TargetPath,
			e.TargetName,
			marker,
		); err != nil {
			return fmt.Errorf("failed to write history entry: %w", err)
		}
	}
	return nil
}

// RenderRGPD prints the personal-data terms found in a document.
func RenderRGPD(w io.Writer, issues []string) error {
	if len(issues) == 0 {
		_, err := fmt.Fprintln(w, FormatSuccess("Aucune donnée personnelle détectée."))
		return err
	}

	content := "Termes détectés :\n"
	for _, issue := range issues {
		content += "  • " + issue + "\n"
	}
	content += "\nVérifiez le document avant de le partager."

	_, err := fmt.Fprintln(w, RenderBox(ShieldIcon+" Vigilance RGPD", content))
	return err
}

// RenderPaths prints one folder path per line.
func RenderPaths(w io.Writer, paths []string) error {
	for _, p := range paths {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}
	return nil
}

// RenderBatch prints the top suggestion of every document and the summary.
func RenderBatch(w io.Writer, results []engine.BatchResult, summary engine.BatchSummary) error {
	for _, r := range results {
		top := r.Result.Top()
		var line string
		if top == nil {
			line = fmt.Sprintf("%s  %s", WarningStyle.Render("  -  "), r.Name)
		} else {
			line = fmt.Sprintf("%s  %s → %s", FormatConfidence(top.Confidence), r.Name, top.Path)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write batch result: %w", err)
		}
	}

	var classifiedPct float64
	if summary.Total > 0 {
		classifiedPct = float64(summary.Classified) / float64(summary.Total) * 100
	}

	stats := fmt.Sprintf("%s Statistiques :\n", ChartIcon) +
		fmt.Sprintf("  • Documents : %d\n", summary.Total) +
		fmt.Sprintf("  • Classés : %d (%.1f%%)\n", summary.Classified, classifiedPct) +
		fmt.Sprintf("  • Sans suggestion : %d\n", summary.Unclassified) +
		fmt.Sprintf("  • Suggestions IA : %d", summary.AIGenerated)

	_, err := fmt.Fprintln(w, RenderBox("Classement terminé", stats))
	return err
}
