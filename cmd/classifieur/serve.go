package main

import (
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/micetf/classifieur-numerique/internal/mcp"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the classifier as MCP tools over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout exposing the
classify_document, list_paths, generate_command and detect_rgpd tools.

Logs go to stderr so they never mix with the protocol stream.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			s, err := mcpserver.NewServer(a.engine, a.loader, a.extractor, mcpserver.Options{
				Version:     version,
				DefaultType: a.cfg.Hierarchy.Type,
				APIKey:      a.cfg.LLM.APIKey,
				UseAI:       a.cfg.Classification.UseAI,
			})
			if err != nil {
				return err
			}

			return s.Run(cmd.Context(), os.Stdin, os.Stdout)
		},
	}
}
