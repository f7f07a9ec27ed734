package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/bucketctl/cmd/bucketctl/handlers"
)

// Init returns the command that runs the configuration wizard.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file interactively",
		Long: `Init walks through endpoint, credentials, and bucket settings and
writes them to a configuration file.

Environment variables still override the file at runtime, so the file
can be committed without credentials and completed from the
environment.

Examples:
  bucketctl init
  bucketctl init -o production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "bucketctl.yaml", "Path for the generated configuration file")

	return cmd
}
