package handlers

import (
	"context"
	"fmt"
	"time"
)

// Presign prints a time-limited read URL for an object. The URL is
// signed locally; possession of the URL grants access until it expires.
func Presign(ctx context.Context, configPath, key string, expires time.Duration) error {
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

	url, err := store.PresignGet(ctx, cfg.BucketName, key, expires)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, url)
	return nil
}
