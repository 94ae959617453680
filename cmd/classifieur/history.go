package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/micetf/classifieur-numerique/internal/cli"
	"github.com/micetf/classifieur-numerique/internal/common"
	"github.com/micetf/classifieur-numerique/internal/service"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the documents already filed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd, func(store service.HistoryStore) error {
				entries, err := store.ListHistory(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to list history: %w", err)
				}
				return cli.RenderHistory(cmd.OutOrStdout(), entries)
			})
		},
	}

	cmd.AddCommand(historySearchCmd())
	cmd.AddCommand(historyDeleteCmd())
	cmd.AddCommand(historyClearCmd())
	return cmd
}

func historySearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search the history by source name or destination",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(store service.HistoryStore) error {
				entries, err := store.SearchHistory(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("failed to search history: %w", err)
				}
				return cli.RenderHistory(cmd.OutOrStdout(), entries)
			})
		},
	}
}

func historyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove one history entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, func(store service.HistoryStore) error {
				if err := store.DeleteHistory(cmd.Context(), args[0]); err != nil {
					if errors.Is(err, common.ErrNotFound) {
						return common.NewUserError(fmt.Sprintf("entrée %s introuvable", args[0]), err)
					}
					return fmt.Errorf("failed to delete history entry: %w", err)
				}
				_, err := fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Entrée supprimée."))
				return err
			})
		},
	}
}

func historyClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every history entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			out := cmd.OutOrStdout()

			if !yes {
				prompter := cli.NewPrompter(cmd.InOrStdin(), out)
				ok, err := prompter.Confirm(cmd.Context(), "Effacer tout l'historique ?")
				if err != nil {
					return err
				}
				if !ok {
					_, err := fmt.Fprintln(out, cli.FormatInfo("Historique conservé."))
					return err
				}
			}

			return withStore(cmd, func(store service.HistoryStore) error {
				n, err := store.ClearHistory(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to clear history: %w", err)
				}
				_, err = fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("%d entrée(s) supprimée(s).", n)))
				return err
			})
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	return cmd
}

// withStore opens the history database for the duration of fn.
func withStore(cmd *cobra.Command, fn func(service.HistoryStore) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("Failed to close database", "error", closeErr)
		}
	}()

	return fn(store)
}
