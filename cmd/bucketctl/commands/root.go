// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing and flag binding. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the bucketctl CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bucketctl",
		Short: "Provision and manage buckets on S3-compatible object storage",
	}

	// Bucket lifecycle
	cmd.AddCommand(Init())
	cmd.AddCommand(Create())
	cmd.AddCommand(Check())
	cmd.AddCommand(Destroy())
	cmd.AddCommand(Buckets())

	// Object operations
	cmd.AddCommand(Ls())
	cmd.AddCommand(Put())
	cmd.AddCommand(Get())
	cmd.AddCommand(Rm())
	cmd.AddCommand(Presign())

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
