package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/bucketctl/cmd/bucketctl/handlers"
)

// Create returns the command that provisions the configured bucket.
//
// Optional flags:
//
//	--config, -c: Path to configuration YAML file (default: auto-detect bucketctl.yaml)
//	--ignore-existing: Treat an already-owned bucket as success
//
// Environment variables:
//
//	S3_ENDPOINT, S3_ACCESS_KEY_ID, S3_SECRET_ACCESS_KEY, S3_BUCKET_NAME
func Create() *cobra.Command {
	var configPath string
	var ignoreExisting bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create the configured bucket",
		Long: `Create the configured bucket on the S3-compatible backend.

Configuration comes from environment variables (S3_ENDPOINT,
S3_ACCESS_KEY_ID, S3_SECRET_ACCESS_KEY, S3_BUCKET_NAME), overriding an
optional bucketctl.yaml. Exactly one creation request is issued; a
backend conflict for an existing bucket propagates unless
--ignore-existing is set.

Examples:
  # Create the bucket named by S3_BUCKET_NAME
  bucketctl create

  # Create using a specific config file
  bucketctl create -c production.yaml

  # Idempotent provisioning for deployment scripts
  bucketctl create --ignore-existing`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Create(cmd.Context(), configPath, ignoreExisting)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: bucketctl.yaml)")
	cmd.Flags().BoolVar(&ignoreExisting, "ignore-existing", false, "Treat an already-owned bucket as success")

	return cmd
}
