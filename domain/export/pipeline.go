// Package export turns a rendered collage into a delivered JPEG file.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

// Quality is the fixed JPEG quality (0.95).
const Quality = 95

// Default share sheet texts.
const (
	DefaultShareTitle = "Photo collage"
	DefaultShareText  = "Save the collage to your photos"
)

// Source is a rendered surface that can be encoded.
type Source interface {
	Width() int
	Height() int
	EncodeJPEG(w io.Writer, quality int) error
}

// Result describes a finished export.
type Result struct {
	Strategy Strategy
	Filename string
	Size     int
	// Location is where a download was written, empty for other strategies.
	Location string
	// Cancelled is set when the user dismissed the share sheet.
	Cancelled bool
}

// Pipeline encodes a surface and delivers it with the strategy chosen for
// the runtime. The zero value downloads nothing and reports ErrExportFailed;
// use NewPipeline or fill the collaborators in.
type Pipeline struct {
	Runtime    Runtime
	Downloader Downloader
	Opener     Opener
	Select     Selector
	Now        func() time.Time
	ShareTitle string
	ShareText  string
	Logger     *slog.Logger
}

// NewPipeline returns a pipeline with the default selector and clock.
func NewPipeline(rt Runtime, dl Downloader, op Opener, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		Runtime:    rt,
		Downloader: dl,
		Opener:     op,
		Select:     SelectStrategy,
		Now:        time.Now,
		ShareTitle: DefaultShareTitle,
		ShareText:  DefaultShareText,
		Logger:     logger,
	}
}

// Export encodes src and delivers it. A surface that was never rendered
// yields ErrNoContent with no side effects. A cancelled share sheet is not
// an error. ErrPopupBlocked is returned as is; every other failure,
// including a panic in a collaborator, is wrapped in ErrExportFailed.
func (p *Pipeline) Export(ctx context.Context, src Source) (res Result, err error) {
	if src == nil || src.Width() == 0 || src.Height() == 0 {
		return Result{}, ErrNoContent
	}
	defer func() {
		if r := recover(); r != nil {
			p.log().Error("export panic", "error", r, "stack", string(debug.Stack()))
			res = Result{Filename: res.Filename}
			err = fmt.Errorf("%w: panic: %v", ErrExportFailed, r)
		}
	}()

	res, err = p.export(ctx, src)
	if err != nil && !errors.Is(err, ErrPopupBlocked) && !errors.Is(err, ErrExportFailed) {
		err = fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	if err != nil {
		p.log().Error("export failed", "filename", res.Filename, "strategy", res.Strategy.String(), "error", err)
	}
	return res, err
}

func (p *Pipeline) export(ctx context.Context, src Source) (Result, error) {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	res := Result{Filename: Filename(now())}

	f, err := encode(src, res.Filename)
	if err != nil {
		return res, err
	}
	res.Size = len(f.Data)

	sel := p.Select
	if sel == nil {
		sel = SelectStrategy
	}
	res.Strategy = sel(p.Runtime, f)
	p.log().Info("export",
		"filename", f.Name,
		"mime", f.MIME,
		"size", humanize.Bytes(uint64(len(f.Data))),
		"strategy", res.Strategy.String(),
	)

	switch res.Strategy {
	case StrategyShare:
		err := p.share(ctx, f)
		if err == nil {
			return res, nil
		}
		if errors.Is(err, ErrShareCancelled) || errors.Is(err, context.Canceled) {
			p.log().Info("share cancelled", "filename", f.Name)
			res.Cancelled = true
			return res, nil
		}
		p.log().Warn("share failed, using fallback page", "error", fmt.Errorf("%w: %w", ErrShareFailed, err))
		res.Strategy = StrategyFallback
		return res, p.fallback(ctx, f)
	case StrategyFallback:
		return res, p.fallback(ctx, f)
	default:
		res.Strategy = StrategyDownload
		loc, err := p.download(ctx, f)
		res.Location = loc
		return res, err
	}
}

// encode renders src to JPEG and names the file.
func encode(src Source, name string) (File, error) {
	var buf bytes.Buffer
	if err := src.EncodeJPEG(&buf, Quality); err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrEncodeFailed, err)
	}
	if buf.Len() == 0 {
		return File{}, ErrEncodeFailed
	}
	data := buf.Bytes()
	return File{Name: name, MIME: mimetype.Detect(data).String(), Data: data}, nil
}

func (p *Pipeline) share(ctx context.Context, f File) error {
	var sh Sharer
	if p.Runtime != nil {
		sh = p.Runtime.Sharer()
	}
	if sh == nil {
		return errors.New("no share capability")
	}
	title, text := p.ShareTitle, p.ShareText
	if title == "" {
		title = DefaultShareTitle
	}
	if text == "" {
		text = DefaultShareText
	}
	return sh.Share(ctx, ShareData{Files: []File{f}, Title: title, Text: text})
}

func (p *Pipeline) download(ctx context.Context, f File) (string, error) {
	if p.Downloader == nil {
		return "", errors.New("no downloader configured")
	}
	loc, err := p.Downloader.Download(ctx, f)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", f.Name, err)
	}
	p.log().Info("downloaded", "filename", f.Name, "location", loc)
	return loc, nil
}

func (p *Pipeline) fallback(ctx context.Context, f File) error {
	page, err := FallbackPage(f)
	if err != nil {
		return err
	}
	if p.Opener == nil {
		return ErrPopupBlocked
	}
	if err := p.Opener.Open(ctx, f.Name, page); err != nil {
		if errors.Is(err, ErrPopupBlocked) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrPopupBlocked, err)
	}
	return nil
}

func (p *Pipeline) log() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.New(slog.DiscardHandler)
}
