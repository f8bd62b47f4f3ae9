package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/soocke/collage-go/domain/export"
)

// cancelledExitCode is what a share helper returns when the user closed
// its dialog (the shell convention for SIGINT).
const cancelledExitCode = 130

// CommandSharer hands files to an external share helper such as a
// phone-link or send-to tool. The helper receives the file paths as extra
// arguments and the title/text in COLLAGE_SHARE_TITLE and COLLAGE_SHARE_TEXT.
type CommandSharer struct {
	Command []string
	// Accept lists the MIME types the helper can take.
	Accept []string
	Logger *slog.Logger
}

var _ export.Sharer = (*CommandSharer)(nil)

// NewCommandSharer returns nil when command is empty, so callers can pass
// the result straight into NewRuntime.
func NewCommandSharer(command []string, logger *slog.Logger) export.Sharer {
	if len(command) == 0 || command[0] == "" {
		return nil
	}
	return &CommandSharer{Command: command, Accept: []string{"image/jpeg"}, Logger: logger}
}

// CanShare reports whether the helper accepts the file type.
func (s *CommandSharer) CanShare(f export.File) bool {
	if s == nil || len(f.Data) == 0 {
		return false
	}
	for _, m := range s.Accept {
		if m == f.MIME {
			return true
		}
	}
	return false
}

// Share runs the helper and waits for it. A helper exiting with 130 or a
// cancelled ctx reports export.ErrShareCancelled.
func (s *CommandSharer) Share(ctx context.Context, data export.ShareData) error {
	if len(data.Files) == 0 {
		return errors.New("share: no files")
	}
	dir, err := os.MkdirTemp("", "collage-share-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	args := append([]string{}, s.Command[1:]...)
	for _, f := range data.Files {
		p := filepath.Join(dir, filepath.Base(f.Name))
		if err := os.WriteFile(p, f.Data, 0o644); err != nil {
			return err
		}
		args = append(args, p)
	}

	cmd := exec.CommandContext(ctx, s.Command[0], args...)
	cmd.Env = append(os.Environ(),
		"COLLAGE_SHARE_TITLE="+data.Title,
		"COLLAGE_SHARE_TEXT="+data.Text,
	)
	out, err := cmd.CombinedOutput()
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %w", export.ErrShareCancelled, ctx.Err())
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == cancelledExitCode {
		return export.ErrShareCancelled
	}
	if err != nil {
		if s.Logger != nil {
			s.Logger.Warn("share helper failed", "command", s.Command[0], "output", string(out), "error", err)
		}
		return err
	}
	return nil
}
