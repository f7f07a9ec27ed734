package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFilename is the default configuration filename.
const DefaultConfigFilename = "bucketctl.yaml"

// Load assembles the configuration for a command invocation.
//
// If path is empty, FindConfigFile is consulted; a missing config file
// is not an error because every setting can come from the environment.
// Environment variables override file values. No presence validation is
// performed here: commands that require a bucket name or credentials
// call Validate themselves, and `create` deliberately runs unvalidated.
func Load(path string) (*Config, error) {
	// Fold .env into the environment first. Absence is fine.
	_ = godotenv.Load()

	cfg := &Config{}

	if path == "" {
		if found, err := FindConfigFile(); err == nil {
			path = found
		}
	}

	if path != "" {
		loaded, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	return cfg, nil
}

// LoadFile reads and parses a configuration file. Unlike Load it fails
// when the file does not exist.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user-supplied by design
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &cfg, nil
}

// applyEnv overlays environment variables onto the config. A variable
// set to the empty string counts as unset, matching the behavior of the
// deployment scripts this tool replaced.
func (c *Config) applyEnv() {
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv(EnvAccessKeyID); v != "" {
		c.AccessKeyID = v
	}
	if v := os.Getenv(EnvSecretAccessKey); v != "" {
		c.SecretAccessKey = v
	}
	if v := os.Getenv(EnvBucketName); v != "" {
		c.BucketName = v
	}
	if v := os.Getenv(EnvRegion); v != "" {
		c.Region = v
	}
	if v := os.Getenv(EnvForcePathStyle); v != "" {
		c.ForcePathStyle = v == "true" || v == "1"
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
}

// applyDefaults fills settings that must never be empty.
func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = "us-east-1"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// FindConfigFile searches for bucketctl.yaml starting in the current
// directory and walking up toward the filesystem root.
func FindConfigFile() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	dir := cwd
	for {
		path := filepath.Join(dir, DefaultConfigFilename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("config file %s not found", DefaultConfigFilename)
}

// Save writes a configuration to a file as YAML.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
