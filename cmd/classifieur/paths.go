package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/micetf/classifieur-numerique/internal/cli"
	"github.com/micetf/classifieur-numerique/internal/common"
	"github.com/micetf/classifieur-numerique/internal/hierarchy"
)

func pathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List the folders of the selected hierarchy",
		Example: `  classifieur paths
  classifieur paths --type perso --search robot
  classifieur paths --under "Applications"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			search, _ := cmd.Flags().GetString("search")
			under, _ := cmd.Flags().GetString("under")
			out := cmd.OutOrStdout()

			a, err := newApp()
			if err != nil {
				return err
			}

			tree, err := a.tree(cmd.Context())
			if err != nil {
				return err
			}

			paths, err := listPaths(tree, under)
			if err != nil {
				return err
			}
			if search != "" {
				paths = hierarchy.Search(paths, search)
			}
			if len(paths) == 0 {
				_, err := fmt.Fprintln(out, cli.FormatInfo("Aucun dossier ne correspond."))
				return err
			}
			return cli.RenderPaths(out, paths)
		},
	}

	cmd.Flags().StringP("search", "s", "", "Only show paths containing this text")
	cmd.Flags().String("under", "", "Only show the folders below this path")
	return cmd
}

// listPaths flattens tree, or only the part below under when it is set.
func listPaths(tree *hierarchy.Branch, under string) ([]string, error) {
	under = strings.Trim(under, "/")
	if under == "" {
		return hierarchy.FlattenToPaths(tree), nil
	}

	sub, ok := hierarchy.SubTree(tree, under)
	if !ok {
		return nil, common.NewUserError(fmt.Sprintf("dossier inconnu : %s", under), common.ErrNotFound)
	}

	rel := hierarchy.FlattenToPaths(sub)
	paths := make([]string, 0, len(rel))
	for _, p := range rel {
		paths = append(paths, under+"/"+p)
	}
	return paths, nil
}
