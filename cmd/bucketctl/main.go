// Package main is the entry point for the bucketctl CLI.
//
// bucketctl provisions and manages buckets on S3-compatible object
// storage backends (AWS S3, MinIO, Hetzner Object Storage, LocalStack).
// It is configuration-driven: endpoint, credentials, and bucket name
// come from environment variables or an optional bucketctl.yaml.
//
// Commands: init, create, check, destroy, buckets, ls, put, get, rm,
// presign.
//
// For detailed usage information, run:
//
//	bucketctl --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/bucketctl/cmd/bucketctl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
