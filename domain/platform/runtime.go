// Package platform provides the concrete runtime capabilities the export
// pipeline delivers through: mobile detection, an optional share command,
// the downloads directory and a browser window for the fallback page.
package platform

import (
	"runtime"

	"github.com/soocke/collage-go/domain/export"
)

// Runtime implements export.Runtime for the current process.
type Runtime struct {
	mobile bool
	sharer export.Sharer
}

var _ export.Runtime = (*Runtime)(nil)

// NewRuntime detects the runtime. forceMobile treats a desktop build as a
// mobile one (handy for trying the share flow); sharer may be nil.
func NewRuntime(forceMobile bool, sharer export.Sharer) *Runtime {
	return &Runtime{mobile: forceMobile || IsMobileOS(runtime.GOOS), sharer: sharer}
}

// IsMobileOS reports whether goos is a phone/tablet platform.
func IsMobileOS(goos string) bool {
	return goos == "android" || goos == "ios"
}

// Mobile reports whether the runtime identifies as a mobile platform.
func (r *Runtime) Mobile() bool { return r != nil && r.mobile }

// Sharer returns the share capability or nil.
func (r *Runtime) Sharer() export.Sharer {
	if r == nil || r.sharer == nil {
		return nil
	}
	return r.sharer
}
