// Package config defines the configuration model for bucketctl.
//
// Configuration is assembled from three layers, lowest precedence first:
// built-in defaults, an optional bucketctl.yaml file, and the process
// environment (S3_ENDPOINT, S3_ACCESS_KEY_ID, S3_SECRET_ACCESS_KEY,
// S3_BUCKET_NAME, S3_REGION, S3_FORCE_PATH_STYLE, LOG_LEVEL). A .env
// file in the working directory is folded into the environment before
// it is read.
package config
