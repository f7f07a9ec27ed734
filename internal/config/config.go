package config

// Environment variable names read by Load. They intentionally match the
// variables the storage backend deployment scripts already export.
const (
	EnvEndpoint        = "S3_ENDPOINT"
	EnvAccessKeyID     = "S3_ACCESS_KEY_ID"
	EnvSecretAccessKey = "S3_SECRET_ACCESS_KEY"
	EnvBucketName      = "S3_BUCKET_NAME"
	EnvRegion          = "S3_REGION"
	EnvForcePathStyle  = "S3_FORCE_PATH_STYLE"
	EnvLogLevel        = "LOG_LEVEL"
)

// MissingBucketName is the placeholder used when no bucket name is
// configured anywhere. The seed provisioning script formatted the absent
// value as the literal text "None" in both the creation request and the
// confirmation message, and that behavior is load-bearing for existing
// deployments.
const MissingBucketName = "None"

// Config holds the connection settings for an S3-compatible backend.
type Config struct {
	// Endpoint is the backend API address. Empty means the SDK's
	// default endpoint resolution (i.e. AWS).
	Endpoint string `yaml:"endpoint,omitempty"`

	// Region used for request signing. Defaults to us-east-1, which
	// most S3-compatible services accept for any location.
	Region string `yaml:"region,omitempty"`

	// AccessKeyID and SecretAccessKey are static credentials. When
	// either is empty the SDK's ambient credential chain is used.
	AccessKeyID     string `yaml:"access_key_id,omitempty"`
	SecretAccessKey string `yaml:"secret_access_key,omitempty"`

	// BucketName is the bucket operated on.
	BucketName string `yaml:"bucket,omitempty"`

	// ForcePathStyle addresses buckets as /bucket/key instead of
	// bucket.host/key. Required by MinIO and LocalStack.
	ForcePathStyle bool `yaml:"force_path_style,omitempty"`

	// LogLevel controls diagnostic output on stderr.
	LogLevel string `yaml:"log_level,omitempty"`
}

// BucketNameOrNone returns the configured bucket name, or the literal
// placeholder text when none is configured. Callers that want a hard
// failure instead should use Validate.
func (c *Config) BucketNameOrNone() string {
	if c.BucketName == "" {
		return MissingBucketName
	}
	return c.BucketName
}

// HasStaticCredentials reports whether both credential halves are set.
func (c *Config) HasStaticCredentials() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}
