package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/bucketctl/cmd/bucketctl/handlers"
)

// Check returns the command that verifies bucket accessibility.
func Check() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that the configured bucket exists and is accessible",
		Long: `Check issues a HeadBucket request with the configured credentials.

Exits 0 when the bucket exists and is accessible, non-zero otherwise.

Examples:
  bucketctl check
  bucketctl check -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Check(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: bucketctl.yaml)")

	return cmd
}
