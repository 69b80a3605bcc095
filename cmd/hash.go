package cmd

import (
	"errors"
	"fmt"

	"record-importer/feature/hashing"

	"github.com/spf13/cobra"
)

var errDigestMismatch = errors.New("digest does not match")

// hashCmd prints the SHA-256 digest of its argument.
var hashCmd = &cobra.Command{
	Use:   "hash [text]",
	Short: "Print the SHA-256 hex digest of a text",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), hashing.Hash(args[0]))
	},
}

// verifyCmd checks a text against a digest and fails on mismatch.
var verifyCmd = &cobra.Command{
	Use:   "verify [text] [digest]",
	Short: "Check that a digest is the SHA-256 of a text",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !hashing.Verify(args[0], args[1]) {
			return errDigestMismatch
		}
		fmt.Fprintln(cmd.OutOrStdout(), "OK")
		return nil
	},
}

func init() {
	RootCmd.AddCommand(hashCmd, verifyCmd)
}
