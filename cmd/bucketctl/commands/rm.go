package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/bucketctl/cmd/bucketctl/handlers"
)

// Rm returns the command that deletes an object.
func Rm() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "rm <key>",
		Short: "Delete an object from the configured bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Remove(cmd.Context(), configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: bucketctl.yaml)")

	return cmd
}
