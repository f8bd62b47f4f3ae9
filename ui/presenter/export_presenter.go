package presenter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/soocke/collage-go/domain/export"
)

// User facing notices for export failures.
const (
	NoticeNoContent    = "Nothing to export yet. Add a photo first."
	NoticePopupBlocked = "Allow pop-ups for this app to save the image."
	NoticeExportFailed = "Download failed, please try again."
)

// exportTimeout bounds a single export, share dialogs included.
const exportTimeout = 5 * time.Minute

// Exporter narrows the export pipeline.
type Exporter interface {
	Export(ctx context.Context, src export.Source) (export.Result, error)
}

// ExportView shows blocking notices and the status line.
type ExportView interface {
	Notify(msg string)
	SetStatus(text string)
}

// ExportPresenter runs an export of the surface and reports the outcome.
type ExportPresenter struct {
	exporter Exporter
	source   export.Source
	view     ExportView
	logger   *slog.Logger
}

func NewExportPresenter(exporter Exporter, source export.Source, view ExportView, logger *slog.Logger) *ExportPresenter {
	return &ExportPresenter{exporter: exporter, source: source, view: view, logger: logger}
}

// Export delivers the current surface. Slots and surface are left as they
// are whatever the outcome.
func (p *ExportPresenter) Export(ctx context.Context) {
	if p == nil || p.exporter == nil || p.view == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, exportTimeout)
	defer cancel()

	res, err := p.exporter.Export(ctx, p.source)
	if err != nil {
		p.view.Notify(Notice(err))
		return
	}
	if res.Cancelled {
		if p.logger != nil {
			p.logger.Info("share dismissed", "filename", res.Filename)
		}
		return
	}
	p.view.SetStatus(statusFor(res))
}

// Notice maps an export error to the message shown to the user.
func Notice(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, export.ErrNoContent):
		return NoticeNoContent
	case errors.Is(err, export.ErrPopupBlocked):
		return NoticePopupBlocked
	default:
		return NoticeExportFailed
	}
}

func statusFor(res export.Result) string {
	switch res.Strategy {
	case export.StrategyShare:
		return fmt.Sprintf("Shared %s", res.Filename)
	case export.StrategyFallback:
		return fmt.Sprintf("Opened %s in the browser", res.Filename)
	default:
		if res.Location != "" {
			return fmt.Sprintf("Saved %s", res.Location)
		}
		return fmt.Sprintf("Saved %s", res.Filename)
	}
}
