package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runCmd drives a full import followed by a read back of both tables.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Import users and posts, then report what is stored",
	Long: `Runs the whole batch: imports users, imports posts, then lists both tables
and prints a summary. The run stops at the first failed import.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		out := cmd.OutOrStdout()
		ctx := cmd.Context()

		if err := importAll(ctx, out, rt); err != nil {
			return err
		}

		userSvc, err := rt.users("")
		if err != nil {
			return err
		}
		postSvc, err := rt.posts("")
		if err != nil {
			return err
		}

		storedUsers := userSvc.List(ctx)
		storedPosts := postSvc.List(ctx)
		executionTime := time.Since(startTime)

		fmt.Fprintln(out, "\n=== Import Summary ===")
		fmt.Fprintf(out, "Users stored: %d\n", len(storedUsers))
		fmt.Fprintf(out, "Posts stored: %d\n", len(storedPosts))
		fmt.Fprintf(out, "Execution Time: %s\n", executionTime.String())

		rt.logger.Info("Batch run completed",
			zap.Int("users", len(storedUsers)),
			zap.Int("posts", len(storedPosts)),
			zap.Duration("execution_time", executionTime),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(runCmd)
}
