package cmd

import (
	"errors"

	"record-importer/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the database schema and the snapshot bucket",
	Long: `Checks that the user and post tables have every mapped column and, when
archiving is enabled, that the snapshot bucket exists.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer rt.Close()

		svc := integrity.NewService(rt.store, rt.archiver, rt.logger)
		logg := rt.logger
		failed := false

		logg.Info("Checking database schema...", zap.String("driver", rt.cfg.Database.Driver))
		report, err := svc.CheckSchema(ctx)
		if err != nil {
			return err
		}
		if report.Matched {
			logg.Info("Schema matches the entity models.")
		} else {
			failed = true
			for table, tbl := range report.Tables {
				if tbl.Status != "ok" {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tbl.MissingColumns))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}

		snaps, err := svc.CheckSnapshots(ctx)
		switch {
		case errors.Is(err, integrity.ErrArchivingDisabled):
			logg.Info("Snapshot archiving disabled, skipping bucket check.")
		case err != nil:
			return err
		case !snaps.Exists && fixFlag:
			logg.Info("Creating missing snapshot bucket...", zap.String("bucket", snaps.Bucket))
			if err := svc.FixSnapshots(ctx); err != nil {
				return err
			}
		case !snaps.Exists:
			failed = true
			logg.Warn("Snapshot bucket missing", zap.String("bucket", snaps.Bucket))
			logg.Info("Run with --fix to create the bucket.")
		default:
			for resource, name := range snaps.Latest {
				logg.Info("Latest snapshot", zap.String("resource", resource), zap.String("object", name))
			}
		}

		if failed {
			return errors.New("integrity check failed")
		}
		return nil
	},
}

func init() {
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the snapshot bucket when missing")
	RootCmd.AddCommand(integrityCmd)
}
