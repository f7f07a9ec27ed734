package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/bucketctl/internal/config"
)

func TestInit(t *testing.T) {
	deps := withTestDeps(t, &config.Config{}, &mockStore{})

	origExists := fileExists
	origWizard := runWizard
	origWrite := writeConfig
	defer func() {
		fileExists = origExists
		runWizard = origWizard
		writeConfig = origWrite
	}()

	fileExists = func(_ string) bool { return false }
	runWizard = func(_ context.Context) (*config.WizardResult, error) {
		return &config.WizardResult{
			Endpoint:   "https://minio.local:9000",
			BucketName: "uploads",
		}, nil
	}

	var wrote *config.Config
	var wrotePath string
	writeConfig = func(cfg *config.Config, path string) error {
		wrote = cfg
		wrotePath = path
		return nil
	}

	err := Init(context.Background(), "bucketctl.yaml")

	require.NoError(t, err)
	require.NotNil(t, wrote)
	assert.Equal(t, "bucketctl.yaml", wrotePath)
	assert.Equal(t, "uploads", wrote.BucketName)
	assert.Contains(t, deps.status.String(), "[OK] configuration saved to bucketctl.yaml")
}

func TestInit_WarnsOnOverwrite(t *testing.T) {
	deps := withTestDeps(t, &config.Config{}, &mockStore{})

	origExists := fileExists
	origWizard := runWizard
	origWrite := writeConfig
	defer func() {
		fileExists = origExists
		runWizard = origWizard
		writeConfig = origWrite
	}()

	fileExists = func(_ string) bool { return true }
	runWizard = func(_ context.Context) (*config.WizardResult, error) {
		return &config.WizardResult{BucketName: "uploads"}, nil
	}
	writeConfig = func(_ *config.Config, _ string) error { return nil }

	err := Init(context.Background(), "bucketctl.yaml")

	require.NoError(t, err)
	assert.Contains(t, deps.status.String(), "already exists and will be overwritten")
}

func TestInit_WizardErrorPropagates(t *testing.T) {
	withTestDeps(t, &config.Config{}, &mockStore{})

	origExists := fileExists
	origWizard := runWizard
	defer func() {
		fileExists = origExists
		runWizard = origWizard
	}()

	fileExists = func(_ string) bool { return false }
	runWizard = func(_ context.Context) (*config.WizardResult, error) {
		return nil, errors.New("user aborted")
	}

	err := Init(context.Background(), "bucketctl.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "wizard canceled")
}
