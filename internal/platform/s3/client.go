package s3

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"

	"github.com/imamik/bucketctl/internal/config"
)

// Client wraps the AWS S3 client for S3-compatible backends.
type Client struct {
	api     *s3.Client
	presign *s3.PresignClient
	log     zerolog.Logger
}

// NewClient creates a client bound to the configured endpoint and
// credentials.
//
// When both credential halves are configured they are used as static
// credentials; otherwise the SDK's ambient chain (env, shared config,
// instance metadata) applies. Likewise an empty endpoint leaves the
// SDK's default AWS endpoint resolution in place. No retry or timeout
// tuning is applied; SDK defaults govern.
func NewClient(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.HasStaticCredentials() {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	api := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})

	return &Client{
		api:     api,
		presign: s3.NewPresignClient(api),
		log:     log,
	}, nil
}

// CreateBucket issues a single bucket-creation request. Backend
// conflicts (bucket already exists) are returned as-is; callers that
// want idempotent semantics use EnsureBucket or check the error with
// IsBucketAlreadyOwned.
func (c *Client) CreateBucket(ctx context.Context, bucketName string) error {
	c.log.Debug().Str("bucket", bucketName).Msg("creating bucket")

	_, err := c.api.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", bucketName, err)
	}
	return nil
}

// EnsureBucket creates the bucket if it does not already exist. A
// bucket that exists and is owned by the caller is treated as success.
func (c *Client) EnsureBucket(ctx context.Context, bucketName string) error {
	err := c.CreateBucket(ctx, bucketName)
	if err != nil && IsBucketAlreadyOwned(err) {
		c.log.Debug().Str("bucket", bucketName).Msg("bucket already exists")
		return nil
	}
	return err
}

// BucketExists checks whether a bucket exists and is accessible.
func (c *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	_, err := c.api.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check bucket %s: %w", bucketName, err)
	}
	return true, nil
}

// DeleteBucket deletes a bucket. The bucket must be empty.
func (c *Client) DeleteBucket(ctx context.Context, bucketName string) error {
	c.log.Debug().Str("bucket", bucketName).Msg("deleting bucket")

	_, err := c.api.DeleteBucket(ctx, &s3.DeleteBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		return fmt.Errorf("failed to delete bucket %s: %w", bucketName, err)
	}
	return nil
}

// EmptyBucket deletes every object in the bucket, page by page.
// Returns the number of objects deleted.
func (c *Client) EmptyBucket(ctx context.Context, bucketName string) (int, error) {
	paginator := s3.NewListObjectsV2Paginator(c.api, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucketName),
	})

	deleted := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return deleted, fmt.Errorf("failed to list objects in bucket %s: %w", bucketName, err)
		}

		for _, obj := range page.Contents {
			if obj.Key == nil {
				continue
			}
			if err := c.DeleteObject(ctx, bucketName, *obj.Key); err != nil {
				return deleted, err
			}
			deleted++
		}
	}

	c.log.Debug().Str("bucket", bucketName).Int("objects", deleted).Msg("emptied bucket")
	return deleted, nil
}

// ListBuckets returns the names of all buckets owned by the caller.
func (c *Client) ListBuckets(ctx context.Context) ([]string, error) {
	result, err := c.api.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list buckets: %w", err)
	}

	var names []string
	for _, bucket := range result.Buckets {
		if bucket.Name != nil {
			names = append(names, *bucket.Name)
		}
	}
	return names, nil
}
