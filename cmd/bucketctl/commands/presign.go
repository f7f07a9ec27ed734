package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/imamik/bucketctl/cmd/bucketctl/handlers"
)

// Presign returns the command that generates time-limited object URLs.
func Presign() *cobra.Command {
	var configPath string
	var expires time.Duration

	cmd := &cobra.Command{
		Use:   "presign <key>",
		Short: "Generate a time-limited read URL for an object",
		Long: `Presign generates a URL granting read access to an object without
exposing credentials. Signing happens locally; anyone holding the URL
can read the object until it expires.

Examples:
  bucketctl presign archive/report.pdf
  bucketctl presign archive/report.pdf --expires 15m`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Presign(cmd.Context(), configPath, args[0], expires)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: bucketctl.yaml)")
	cmd.Flags().DurationVar(&expires, "expires", time.Hour, "URL validity duration")

	return cmd
}
