package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/bucketctl/internal/config"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive configuration wizard.
	runWizard = config.RunWizard

	// writeConfig writes the config to a file.
	writeConfig = config.Save
)

// Init runs the configuration wizard and writes the result to a file.
func Init(ctx context.Context, outputPath string) error {
	printer := newPrinter()

	if fileExists(outputPath) {
		printer.Warnf("%s already exists and will be overwritten", outputPath)
	}

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := result.ToConfig()

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printer.Successf("configuration saved to %s", outputPath)
	printer.Detailf("bucket: %s", cfg.BucketName)
	if cfg.Endpoint != "" {
		printer.Detailf("endpoint: %s", cfg.Endpoint)
	} else {
		printer.Detailf("endpoint: AWS S3 (%s)", cfg.Region)
	}
	if cfg.ForcePathStyle {
		printer.Detailf("addressing: path-style")
	}
	printer.Detailf("next: bucketctl create -c %s", outputPath)
	return nil
}
