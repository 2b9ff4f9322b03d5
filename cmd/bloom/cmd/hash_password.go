package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mayobojhosue-coder/app-bloom/internal/auth"
)

func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash for admin.password_hash",
		Args:  cobra.ExactArgs(1),
		// Runs before any config exists, so it skips loading one.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
