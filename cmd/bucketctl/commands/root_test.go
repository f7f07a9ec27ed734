package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	cmd := Root()

	require.NotNil(t, cmd)
	assert.Equal(t, "bucketctl", cmd.Use)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	for _, want := range []string{
		"init", "create", "check", "destroy", "buckets",
		"ls", "put", "get", "rm", "presign",
		"version", "completion",
	} {
		assert.Contains(t, names, want)
	}
}
