package cmd

import (
	"context"
	"fmt"
	"io"

	"record-importer/core/reconcile"
	postModels "record-importer/feature/posts/models"
	"record-importer/feature/records"
	userModels "record-importer/feature/users/models"

	"github.com/spf13/cobra"
)

// removeCmd is the parent command for deleting stored records.
var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete a stored record by id",
}

var removeUserCmd = &cobra.Command{
	Use:   "users [id]",
	Short: "Delete a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := reconcile.ParseID(args[0])
		if err != nil {
			return err
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		svc, err := rt.users("")
		if err != nil {
			return err
		}
		return runRemove[userModels.User](cmd.Context(), cmd.OutOrStdout(), svc, id)
	},
}

var removePostCmd = &cobra.Command{
	Use:   "posts [id]",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := reconcile.ParseID(args[0])
		if err != nil {
			return err
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		svc, err := rt.posts("")
		if err != nil {
			return err
		}
		return runRemove[postModels.Post](cmd.Context(), cmd.OutOrStdout(), svc, id)
	},
}

func init() {
	removeCmd.AddCommand(removeUserCmd, removePostCmd)
	RootCmd.AddCommand(removeCmd)
}

func runRemove[E reconcile.Entity](ctx context.Context, out io.Writer, svc records.Service[E], id int) error {
	deleted, err := svc.Remove(ctx, id)
	if err != nil {
		return fmt.Errorf("%s remove failed: %w", svc.Name(), err)
	}
	if deleted {
		fmt.Fprintf(out, "Deleted %s %d\n", svc.Name(), id)
	} else {
		fmt.Fprintf(out, "No %s with id %d\n", svc.Name(), id)
	}
	return nil
}
