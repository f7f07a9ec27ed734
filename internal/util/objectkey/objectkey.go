// Package objectkey generates collision-free object keys for uploads.
package objectkey

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// now is swapped in tests.
var now = time.Now

// Unique returns a key of the form <prefix>/YYYY/MM/DD/<uuid><ext>,
// preserving the original file extension. The date segment keeps
// listings browsable and the uuid avoids overwrites when the same
// filename is uploaded twice.
func Unique(prefix, filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("%s/%s/%s%s",
		prefix,
		now().UTC().Format("2006/01/02"),
		uuid.New().String(),
		ext)
}
