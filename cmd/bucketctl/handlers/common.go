// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework: their
// dependencies are package-level factory variables replaced in tests.
package handlers

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/imamik/bucketctl/internal/config"
	"github.com/imamik/bucketctl/internal/logging"
	"github.com/imamik/bucketctl/internal/platform/s3"
	"github.com/imamik/bucketctl/internal/ui"
)

// ObjectStore is the storage surface handlers operate on - matches
// s3.Client.
type ObjectStore interface {
	CreateBucket(ctx context.Context, bucketName string) error
	EnsureBucket(ctx context.Context, bucketName string) error
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	DeleteBucket(ctx context.Context, bucketName string) error
	EmptyBucket(ctx context.Context, bucketName string) (int, error)
	ListBuckets(ctx context.Context) ([]string, error)
	PutObject(ctx context.Context, bucketName, key string, body io.Reader, contentType, originalName string) error
	GetObject(ctx context.Context, bucketName, key string) ([]byte, error)
	DeleteObject(ctx context.Context, bucketName, key string) error
	ListObjects(ctx context.Context, bucketName, prefix string) ([]s3.ObjectInfo, error)
	PresignGet(ctx context.Context, bucketName, key string, expires time.Duration) (string, error)
}

// Factory function variables - can be replaced in tests for dependency
// injection.
var (
	// loadConfig assembles the configuration for a command.
	loadConfig = config.Load

	// newObjectStore creates the storage client.
	newObjectStore = func(ctx context.Context, cfg *config.Config) (ObjectStore, error) {
		return s3.NewClient(ctx, cfg, logging.New(cfg.LogLevel))
	}

	// newPrinter creates the status-line printer.
	newPrinter = ui.NewPrinter

	// stdout is the destination for machine-readable command results.
	stdout io.Writer = os.Stdout

	// writeFile writes data to a file.
	writeFile = os.WriteFile
)
