package config

import (
	"fmt"
	"net"
	"net/url"
	"strings"
)

// Validate checks that the configuration is complete enough for
// operations that target a specific bucket. The bare `create` command
// skips this on purpose; everything else calls it before dialing.
func (c *Config) Validate() error {
	if c.BucketName == "" {
		return fmt.Errorf("%s is required", EnvBucketName)
	}
	if err := ValidateBucketName(c.BucketName); err != nil {
		return fmt.Errorf("bucket name validation failed: %w", err)
	}

	// Static credentials only work as a pair. One half set and the
	// other empty is almost always a misconfigured environment, not an
	// intentional fall-through to the ambient chain.
	if (c.AccessKeyID == "") != (c.SecretAccessKey == "") {
		return fmt.Errorf("%s and %s must be set together", EnvAccessKeyID, EnvSecretAccessKey)
	}

	if c.Endpoint != "" {
		if err := validateEndpoint(c.Endpoint); err != nil {
			return fmt.Errorf("endpoint validation failed: %w", err)
		}
	}

	return nil
}

// ValidateBucketName checks a name against the S3 bucket naming rules:
// 3-63 characters, lowercase letters, digits, hyphens and dots, starting
// and ending alphanumeric, no adjacent dots, not formatted like an IPv4
// address.
func ValidateBucketName(name string) error {
	if len(name) < 3 || len(name) > 63 {
		return fmt.Errorf("bucket name must be 3-63 characters, got %d", len(name))
	}

	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '-' || r == '.':
			if i == 0 || i == len(name)-1 {
				return fmt.Errorf("bucket name must start and end with a letter or digit")
			}
		default:
			return fmt.Errorf("bucket name contains invalid character %q", r)
		}
	}

	if strings.Contains(name, "..") {
		return fmt.Errorf("bucket name must not contain adjacent periods")
	}
	if net.ParseIP(name) != nil {
		return fmt.Errorf("bucket name must not be formatted like an IP address")
	}

	return nil
}

// validateEndpoint checks that the endpoint is an absolute http(s) URL.
func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint is missing a host")
	}
	return nil
}
