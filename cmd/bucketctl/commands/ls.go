package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/bucketctl/cmd/bucketctl/handlers"
)

// Ls returns the command that lists objects in the configured bucket.
func Ls() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "ls [prefix]",
		Short: "List objects in the configured bucket",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := ""
			if len(args) > 0 {
				prefix = args[0]
			}
			return handlers.List(cmd.Context(), configPath, prefix)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: bucketctl.yaml)")

	return cmd
}
