package handlers

import (
	"context"
	"fmt"
)

// Check verifies that the configured bucket exists and is accessible
// with the configured credentials. Returns an error (and therefore a
// non-zero exit) when it is not.
func Check(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	store, err := newObjectStore(ctx, cfg)
	if err != nil {
		return err
	}

	printer := newPrinter()

	exists, err := store.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return err
	}
	if !exists {
		printer.Failf("bucket %s not found", cfg.BucketName)
		return fmt.Errorf("bucket %s not found", cfg.BucketName)
	}

	printer.Successf("bucket %s exists and is accessible", cfg.BucketName)
	if cfg.Endpoint != "" {
		printer.Detailf("endpoint: %s", cfg.Endpoint)
	}
	return nil
}
