package handlers

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/imamik/bucketctl/internal/util/objectkey"
)

// uniqueKeyPrefix is the key namespace for --unique uploads.
const uniqueKeyPrefix = "uploads"

// Buckets lists the bucket names owned by the configured credentials.
// It does not require a configured bucket name.
func Buckets(ctx context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	store, err := newObjectStore(ctx, cfg)
	if err != nil {
		return err
	}

	names, err := store.ListBuckets(ctx)
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Fprintln(stdout, name)
	}
	return nil
}

// List prints the keys and sizes of objects in the configured bucket,
// optionally filtered by prefix.
func List(ctx context.Context, configPath, prefix string) error {
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

	objects, err := store.ListObjects(ctx, cfg.BucketName, prefix)
	if err != nil {
		return err
	}

	for _, obj := range objects {
		fmt.Fprintf(stdout, "%12d  %s\n", obj.Size, obj.Key)
	}
	return nil
}

// Put uploads a local file. An empty key defaults to the file's base
// name; unique generates a dated collision-free key instead. An empty
// contentType is inferred from the file extension.
func Put(ctx context.Context, configPath, file, key, contentType string, unique bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	base := filepath.Base(file)
	switch {
	case unique:
		key = objectkey.Unique(uniqueKeyPrefix, base)
	case key == "":
		key = base
	}

	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(file))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
	}

	f, err := os.Open(file) // #nosec G304 -- path is user-supplied by design
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", file, err)
	}
	defer f.Close()

	store, err := newObjectStore(ctx, cfg)
	if err != nil {
		return err
	}

	if err := store.PutObject(ctx, cfg.BucketName, key, f, contentType, base); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "s3://%s/%s\n", cfg.BucketName, key)
	return nil
}

// Get downloads an object. An empty or "-" destination writes the
// contents to stdout; anything else writes a file.
func Get(ctx context.Context, configPath, key, dest string) error {
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

	data, err := store.GetObject(ctx, cfg.BucketName, key)
	if err != nil {
		return err
	}

	if dest == "" || dest == "-" {
		_, err := stdout.Write(data)
		return err
	}

	if err := writeFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return nil
}

// Remove deletes a single object from the configured bucket.
func Remove(ctx context.Context, configPath, key string) error {
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

	return store.DeleteObject(ctx, cfg.BucketName, key)
}
