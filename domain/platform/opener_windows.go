//go:build windows

package platform

import (
	"context"

	"golang.org/x/sys/windows"
)

// openInBrowser hands path to the shell, which opens the default browser.
func openInBrowser(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	verb, err := windows.UTF16PtrFromString("open")
	if err != nil {
		return err
	}
	file, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	return windows.ShellExecute(0, verb, file, nil, nil, windows.SW_SHOWNORMAL)
}
