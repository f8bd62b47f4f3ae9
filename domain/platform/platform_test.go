package platform

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soocke/collage-go/domain/export"
)

func TestIsMobileOS(t *testing.T) {
	for goos, want := range map[string]bool{
		"android": true,
		"ios":     true,
		"linux":   false,
		"windows": false,
		"darwin":  false,
	} {
		assert.Equal(t, want, IsMobileOS(goos), goos)
	}
}

func TestRuntimeSharerNilInterface(t *testing.T) {
	rt := NewRuntime(true, nil)
	assert.True(t, rt.Mobile())
	// A typed nil must not leak out as a non-nil interface.
	assert.Nil(t, rt.Sharer())
	assert.Nil(t, NewCommandSharer(nil, nil))
	assert.Nil(t, NewCommandSharer([]string{""}, nil))
}

func TestResolveDownloadDir(t *testing.T) {
	assert.Equal(t, "/tmp/out", ResolveDownloadDir(" /tmp/out "))
	assert.NotEmpty(t, ResolveDownloadDir(""))
	if home, err := os.UserHomeDir(); err == nil {
		assert.Equal(t, filepath.Join(home, "Pictures"), ResolveDownloadDir("~/Pictures"))
	}
}

func TestDownloadWritesUniqueFiles(t *testing.T) {
	dir := t.TempDir()
	d := NewDirDownloader(dir)
	f := export.File{Name: "collage_20240305_070809.jpg", MIME: "image/jpeg", Data: []byte("jpeg")}

	first, err := d.Download(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, f.Name), first)

	second, err := d.Download(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "collage_20240305_070809 (1).jpg"), second)

	data, err := os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, f.Data, data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files left behind")
}

func TestDownloadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewDirDownloader(t.TempDir()).Download(ctx, export.File{Name: "x.jpg"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBrowserOpener(t *testing.T) {
	dir := t.TempDir()
	var opened string
	o := &BrowserOpener{Dir: dir, Launch: func(_ context.Context, path string) error {
		opened = path
		return nil
	}}
	require.NoError(t, o.Open(context.Background(), "c.jpg", []byte("<html></html>")))
	data, err := os.ReadFile(opened)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))
}

func TestBrowserOpenerBlocked(t *testing.T) {
	dir := t.TempDir()
	o := &BrowserOpener{Dir: dir, Launch: func(context.Context, string) error {
		return errors.New("no browser")
	}}
	err := o.Open(context.Background(), "c.jpg", []byte("page"))
	assert.ErrorIs(t, err, export.ErrPopupBlocked)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestCommandSharerCanShare(t *testing.T) {
	s := &CommandSharer{Command: []string{"true"}, Accept: []string{"image/jpeg"}}
	assert.True(t, s.CanShare(export.File{MIME: "image/jpeg", Data: []byte{1}}))
	assert.False(t, s.CanShare(export.File{MIME: "image/png", Data: []byte{1}}))
	assert.False(t, s.CanShare(export.File{MIME: "image/jpeg"}))
}

func TestCommandSharerExitCodes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	data := export.ShareData{
		Files: []export.File{{Name: "c.jpg", MIME: "image/jpeg", Data: []byte("jpeg")}},
		Title: "t",
		Text:  "x",
	}
	share := func(script string) error {
		s := &CommandSharer{Command: []string{"sh", "-c", script, "sh"}, Accept: []string{"image/jpeg"}}
		return s.Share(context.Background(), data)
	}

	assert.NoError(t, share(`test -f "$1" && test "$COLLAGE_SHARE_TITLE" = t`))
	assert.ErrorIs(t, share("exit 130"), export.ErrShareCancelled)

	err := share("exit 2")
	require.Error(t, err)
	assert.False(t, errors.Is(err, export.ErrShareCancelled))
}

func TestNewPipeline(t *testing.T) {
	dir := t.TempDir()
	p := NewPipeline(Options{OutputDir: dir, ShareTitle: "Mine"}, nil)
	require.NotNil(t, p.Runtime)
	assert.Nil(t, p.Runtime.Sharer())
	assert.Equal(t, "Mine", p.ShareTitle)
	assert.Equal(t, export.DefaultShareText, p.ShareText)

	dl, ok := p.Downloader.(*DirDownloader)
	require.True(t, ok)
	assert.Equal(t, dir, dl.Dir)

	Configure(p, Options{OutputDir: dir, ShareCommand: []string{"true"}, ForceMobile: true}, nil)
	assert.True(t, p.Runtime.Mobile())
	assert.NotNil(t, p.Runtime.Sharer())
	assert.Equal(t, "Mine", p.ShareTitle, "empty options keep the previous title")
}
