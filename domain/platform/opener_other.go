//go:build !windows

package platform

import (
	"context"
	"os/exec"
	"runtime"
)

// openInBrowser launches the desktop URL handler for path.
func openInBrowser(ctx context.Context, path string) error {
	name := "xdg-open"
	if runtime.GOOS == "darwin" {
		name = "open"
	}
	return exec.CommandContext(ctx, name, path).Run()
}
