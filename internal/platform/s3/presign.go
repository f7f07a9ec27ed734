package s3

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DefaultPresignExpiry is used when the caller passes a non-positive
// expiry duration.
const DefaultPresignExpiry = 1 * time.Hour

// PresignGet generates a time-limited URL granting read access to an
// object without exposing credentials. Signing happens locally; no
// request is made to the backend.
func (c *Client) PresignGet(ctx context.Context, bucketName, key string, expires time.Duration) (string, error) {
	if expires <= 0 {
		expires = DefaultPresignExpiry
	}

	req, err := c.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("failed to presign object %s in bucket %s: %w", key, bucketName, err)
	}

	c.log.Debug().Str("key", key).Dur("expires", expires).Msg("generated presigned URL")
	return req.URL, nil
}
