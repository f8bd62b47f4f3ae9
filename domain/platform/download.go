package platform

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"

	"github.com/soocke/collage-go/domain/export"
)

// DirDownloader writes exported files into a directory.
type DirDownloader struct {
	Dir string
}

var _ export.Downloader = (*DirDownloader)(nil)

// NewDirDownloader returns a downloader for dir, resolved with
// ResolveDownloadDir.
func NewDirDownloader(dir string) *DirDownloader {
	return &DirDownloader{Dir: ResolveDownloadDir(dir)}
}

// ResolveDownloadDir returns dir with a leading ~ expanded, or the user's
// download directory when dir is empty.
func ResolveDownloadDir(dir string) string {
	dir = strings.TrimSpace(dir)
	if expanded, err := homedir.Expand(dir); err == nil {
		dir = expanded
	}
	if dir != "" {
		return filepath.Clean(dir)
	}
	if xdg.UserDirs.Download != "" {
		return xdg.UserDirs.Download
	}
	if home, err := homedir.Dir(); err == nil {
		return home
	}
	return os.TempDir()
}

// Download writes f into the directory. The bytes go to a temporary file
// first and are renamed into place, so a failed export never leaves a
// truncated collage behind. Existing files are not overwritten.
func (d *DirDownloader) Download(ctx context.Context, f export.File) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(d.Dir, ".collage-*.part")
	if err != nil {
		return "", err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(f.Data); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}
	dst := uniquePath(filepath.Join(d.Dir, filepath.Base(f.Name)))
	if err := os.Rename(tmpName, dst); err != nil {
		return "", err
	}
	return dst, nil
}

// uniquePath appends " (n)" before the extension until path is unused.
func uniquePath(path string) string {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
