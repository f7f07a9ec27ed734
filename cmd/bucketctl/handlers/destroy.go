package handlers

import (
	"context"
)

// Destroy deletes the configured bucket. With purge, every object is
// deleted first; without it the backend rejects non-empty buckets.
func Destroy(ctx context.Context, configPath string, purge bool) error {
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

	if purge {
		deleted, err := store.EmptyBucket(ctx, cfg.BucketName)
		if err != nil {
			return err
		}
		if deleted > 0 {
			printer.Detailf("deleted %d objects", deleted)
		}
	}

	if err := store.DeleteBucket(ctx, cfg.BucketName); err != nil {
		return err
	}

	printer.Successf("bucket %s destroyed", cfg.BucketName)
	return nil
}
