package platform

import (
	"context"
	"fmt"
	"os"

	"github.com/soocke/collage-go/domain/export"
)

// BrowserOpener shows the fallback page in the system browser. The page is
// written to a file in Dir (the OS temp dir when empty) and handed to the
// platform's URL launcher.
type BrowserOpener struct {
	Dir string
	// Launch opens path in a new browser window; defaults to openInBrowser.
	Launch func(ctx context.Context, path string) error
}

var _ export.Opener = (*BrowserOpener)(nil)

// NewBrowserOpener returns an opener using the OS temp dir.
func NewBrowserOpener() *BrowserOpener {
	return &BrowserOpener{Launch: openInBrowser}
}

// Open writes page and opens it. Any failure to show the window is
// reported as export.ErrPopupBlocked.
func (o *BrowserOpener) Open(ctx context.Context, name string, page []byte) error {
	f, err := os.CreateTemp(o.Dir, "collage-*.html")
	if err != nil {
		return fmt.Errorf("%w: %w", export.ErrPopupBlocked, err)
	}
	path := f.Name()
	if _, err := f.Write(page); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("%w: %w", export.ErrPopupBlocked, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("%w: %w", export.ErrPopupBlocked, err)
	}
	launch := o.Launch
	if launch == nil {
		launch = openInBrowser
	}
	if err := launch(ctx, path); err != nil {
		os.Remove(path)
		return fmt.Errorf("%w: open %s: %w", export.ErrPopupBlocked, name, err)
	}
	return nil
}
