package export

import (
	"fmt"
	"time"
)

// Filename returns collage_YYYYMMDD_HHMMSS.jpg for t in its own location.
func Filename(t time.Time) string {
	return fmt.Sprintf("collage_%04d%02d%02d_%02d%02d%02d.jpg",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second())
}
