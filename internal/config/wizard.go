package config

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
)

// WizardResult holds the user's choices from the wizard.
type WizardResult struct {
	Endpoint       string
	Region         string
	AccessKeyID    string
	SecretKey      string
	BucketName     string
	ForcePathStyle bool
}

// RunWizard runs the interactive configuration wizard.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		Region: "us-east-1",
	}

	form := huh.NewForm(
		// Backend location
		huh.NewGroup(
			huh.NewInput().
				Title("Endpoint").
				Description("Backend API URL. Leave empty for AWS S3.").
				Placeholder("https://minio.example.com:9000").
				Value(&result.Endpoint).
				Validate(validateWizardEndpoint),

			huh.NewInput().
				Title("Region").
				Description("Signing region. Most S3-compatible services accept us-east-1.").
				Value(&result.Region),
		),

		// Credentials
		huh.NewGroup(
			huh.NewInput().
				Title("Access key ID").
				Description("Leave empty to use the ambient AWS credential chain.").
				Value(&result.AccessKeyID),

			huh.NewInput().
				Title("Secret access key").
				EchoMode(huh.EchoModePassword).
				Value(&result.SecretKey),
		),

		// Bucket
		huh.NewGroup(
			huh.NewInput().
				Title("Bucket name").
				Description("3-63 characters, lowercase letters, digits, hyphens, dots").
				Placeholder("my-bucket").
				Value(&result.BucketName).
				Validate(ValidateBucketName),
		),

		// Addressing style
		huh.NewGroup(
			huh.NewConfirm().
				Title("Use path-style addressing?").
				Description("Required for MinIO and LocalStack; AWS prefers virtual-hosted style.").
				Value(&result.ForcePathStyle),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, fmt.Errorf("wizard canceled: %w", err)
	}

	return result, nil
}

// ToConfig converts the wizard result to a Config.
func (r *WizardResult) ToConfig() *Config {
	cfg := &Config{
		Endpoint:        r.Endpoint,
		Region:          r.Region,
		AccessKeyID:     r.AccessKeyID,
		SecretAccessKey: r.SecretKey,
		BucketName:      r.BucketName,
		ForcePathStyle:  r.ForcePathStyle,
	}
	cfg.applyDefaults()
	return cfg
}

// validateWizardEndpoint wraps validateEndpoint but allows the empty
// value, which means "use AWS".
func validateWizardEndpoint(endpoint string) error {
	if endpoint == "" {
		return nil
	}
	return validateEndpoint(endpoint)
}
