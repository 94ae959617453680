package main

import (
	"github.com/spf13/cobra"

	"github.com/micetf/classifieur-numerique/internal/cli"
	"github.com/micetf/classifieur-numerique/internal/document"
	"github.com/micetf/classifieur-numerique/internal/pattern"
)

func rgpdCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rgpd [file]",
		Short: "Look for personal data in a document",
		Example: `  classifieur rgpd liste-classe.csv
  classifieur rgpd --text "Nom et prénom de l'élève"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _ := cmd.Flags().GetString("text")

			// No hierarchy or model is needed here.
			a := &app{extractor: document.NewExtractor(document.DefaultMaxSize)}
			in, err := readInput(a, args, text)
			if err != nil {
				return err
			}

			return cli.RenderRGPD(cmd.OutOrStdout(), pattern.DetectRGPD(in.content))
		},
	}

	cmd.Flags().StringP("text", "t", "", "Text to scan instead of a file")
	return cmd
}
