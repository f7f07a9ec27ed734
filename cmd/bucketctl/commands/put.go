package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/bucketctl/cmd/bucketctl/handlers"
)

// Put returns the command that uploads a local file.
func Put() *cobra.Command {
	var configPath string
	var contentType string
	var unique bool

	cmd := &cobra.Command{
		Use:   "put <file> [key]",
		Short: "Upload a file to the configured bucket",
		Long: `Put uploads a local file.

The object key defaults to the file's base name. With --unique a dated,
collision-free key is generated instead (uploads/YYYY/MM/DD/<uuid>).
The content type is inferred from the file extension unless
--content-type is given. The resulting s3:// URL is printed to stdout.

Examples:
  bucketctl put report.pdf
  bucketctl put report.pdf archive/2024/report.pdf
  bucketctl put photo.png --unique`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := ""
			if len(args) > 1 {
				key = args[1]
			}
			return handlers.Put(cmd.Context(), configPath, args[0], key, contentType, unique)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: bucketctl.yaml)")
	cmd.Flags().StringVar(&contentType, "content-type", "", "MIME type (default: inferred from extension)")
	cmd.Flags().BoolVar(&unique, "unique", false, "Generate a dated collision-free object key")

	return cmd
}
