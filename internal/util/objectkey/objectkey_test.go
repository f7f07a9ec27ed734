package objectkey

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnique(t *testing.T) {
	orig := now
	defer func() { now = orig }()
	now = func() time.Time {
		return time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC)
	}

	key := Unique("uploads", "receipt.png")

	pattern := regexp.MustCompile(`^uploads/2024/03/09/[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}\.png$`)
	assert.Regexp(t, pattern, key)
}

func TestUnique_NoExtension(t *testing.T) {
	key := Unique("uploads", "README")
	assert.NotContains(t, key, ".")
}

func TestUnique_DistinctKeys(t *testing.T) {
	a := Unique("uploads", "same.txt")
	b := Unique("uploads", "same.txt")
	assert.NotEqual(t, a, b)
}
