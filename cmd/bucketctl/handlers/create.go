package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/bucketctl/internal/platform/s3"
)

// Create provisions the configured bucket with a single creation call.
//
// This is the one handler that performs no configuration validation:
// absent endpoint and credentials fall through to the SDK's resolution
// chains, and an absent bucket name is coerced to the literal text
// "None" - both behaviors carried over from the provisioning script
// this command replaced, which existing deployments rely on. The
// coercion is applied independently at the creation call and at print
// time, and the confirmation line format is part of the contract.
//
// Errors from client construction or the creation call are returned
// untranslated; main turns them into a non-zero exit. There is no
// retry and no local recovery.
func Create(ctx context.Context, configPath string, ignoreExisting bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	store, err := newObjectStore(ctx, cfg)
	if err != nil {
		return err
	}

	if err := store.CreateBucket(ctx, cfg.BucketNameOrNone()); err != nil {
		if !(ignoreExisting && s3.IsBucketAlreadyOwned(err)) {
			return err
		}
	}

	fmt.Fprintf(stdout, "Bucket %s created successfully\n", cfg.BucketNameOrNone())
	return nil
}
