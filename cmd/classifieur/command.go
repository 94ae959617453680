package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/micetf/classifieur-numerique/internal/cli"
	"github.com/micetf/classifieur-numerique/internal/command"
	"github.com/micetf/classifieur-numerique/internal/common"
	"github.com/micetf/classifieur-numerique/internal/hierarchy"
)

func commandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "command <path> <source> [target]",
		Short: "Generate the command that files a document in a folder",
		Long: `Generate and check the mkdir/mv commands for a destination folder.
The target name defaults to DATE_name_v1.ext. A warning is printed when the
folder is not part of the selected hierarchy.`,
		Example: `  classifieur command "Applications/Robotique" thymio.pdf
  classifieur command "Applications/Robotique" thymio.pdf seance-1.pdf`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			target := ""
			if len(args) == 3 {
				target = args[2]
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			tree, err := a.tree(cmd.Context())
			if err != nil {
				return err
			}
			if warning := unknownFolder(tree, args[0], a.cfg.Hierarchy.Type); warning != "" {
				if _, err := fmt.Fprintln(out, cli.FormatWarning(warning)); err != nil {
					return err
				}
			}

			generated := command.GenerateAndValidate(args[0], args[1], target, time.Now())
			if err := cli.RenderCommand(out, generated); err != nil {
				return err
			}
			if !generated.Validation.Valid {
				return common.NewUserError("commande refusée", common.ErrUnsafeCommand)
			}
			return nil
		},
	}
}

// unknownFolder returns a warning when path is not a folder of tree.
func unknownFolder(tree *hierarchy.Branch, path string, kind hierarchy.Type) string {
	path = strings.Trim(strings.TrimSpace(path), "/")
	if hierarchy.Contains(tree, path) {
		return ""
	}
	return fmt.Sprintf("Le dossier %q n'existe pas dans l'arborescence %s, il sera créé.", path, kind)
}
