package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"record-importer/core/reconcile"
	postModels "record-importer/feature/posts/models"
	"record-importer/feature/records"
	userModels "record-importer/feature/users/models"

	"github.com/spf13/cobra"
)

var listLimit int

// listCmd is the parent command for listing stored records.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print stored records as JSON",
	Long:  `Prints every stored record of a kind in table order. A database error prints an empty list.`,
}

var listUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List stored users",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		svc, err := rt.users("")
		if err != nil {
			return err
		}
		return printList[userModels.User](cmd.Context(), cmd.OutOrStdout(), svc, listLimit)
	},
}

var listPostsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List stored posts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		svc, err := rt.posts("")
		if err != nil {
			return err
		}
		return printList[postModels.Post](cmd.Context(), cmd.OutOrStdout(), svc, listLimit)
	},
}

func init() {
	listCmd.AddCommand(listUsersCmd, listPostsCmd)
	listCmd.PersistentFlags().IntVar(&listLimit, "limit", 0, "Print at most N records (0 prints all)")
	RootCmd.AddCommand(listCmd)
}

func printList[E reconcile.Entity](ctx context.Context, out io.Writer, svc records.Service[E], limit int) error {
	items := svc.List(ctx)
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}
