package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/bucketctl/cmd/bucketctl/handlers"
)

// Destroy returns the command that deletes the configured bucket.
func Destroy() *cobra.Command {
	var configPath string
	var purge bool

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Delete the configured bucket",
		Long: `Destroy deletes the configured bucket.

The backend rejects deletion of non-empty buckets; pass --purge to
delete every object first. Purging is not reversible.

Examples:
  bucketctl destroy
  bucketctl destroy --purge`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), configPath, purge)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: bucketctl.yaml)")
	cmd.Flags().BoolVar(&purge, "purge", false, "Delete all objects before deleting the bucket")

	return cmd
}
