package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/bucketctl/cmd/bucketctl/handlers"
)

// Buckets returns the command that lists buckets owned by the caller.
func Buckets() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "buckets",
		Short: "List buckets owned by the configured credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Buckets(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: bucketctl.yaml)")

	return cmd
}
