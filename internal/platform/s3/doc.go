// Package s3 provides the client for S3-compatible object storage.
//
// It wraps aws-sdk-go-v2 with bucket provisioning, object transfer, and
// presigned-URL operations against AWS S3 or any compatible backend
// (MinIO, Hetzner Object Storage, LocalStack). Endpoint, credentials,
// and addressing style come from the bucketctl configuration; anything
// left unset falls through to the SDK's own resolution chain.
package s3
