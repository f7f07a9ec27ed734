package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/bucketctl/cmd/bucketctl/handlers"
)

// Get returns the command that downloads an object.
func Get() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "get <key> [dest]",
		Short: "Download an object from the configured bucket",
		Long: `Get downloads an object.

Without a destination (or with "-") the contents are written to stdout.

Examples:
  bucketctl get archive/report.pdf report.pdf
  bucketctl get config.json -`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := ""
			if len(args) > 1 {
				dest = args[1]
			}
			return handlers.Get(cmd.Context(), configPath, args[0], dest)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: bucketctl.yaml)")

	return cmd
}
