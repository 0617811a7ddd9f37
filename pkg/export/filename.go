package export

import (
	"fmt"
	"strings"
	"time"
)

// Filename builds the deterministic download name {resource}-export-{date}.{ext}.
func Filename(resource, ext string, at time.Time) string {
	ext = strings.TrimPrefix(ext, ".")
	return fmt.Sprintf("%s-export-%s.%s", resource, at.Format("2006-01-02"), ext)
}
