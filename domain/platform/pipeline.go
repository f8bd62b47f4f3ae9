package platform

import (
	"log/slog"

	"github.com/soocke/collage-go/domain/export"
)

// Options selects the capabilities an export pipeline delivers through.
type Options struct {
	OutputDir    string
	ShareCommand []string
	ShareTitle   string
	ShareText    string
	ForceMobile  bool
}

// NewPipeline returns an export pipeline for the current process.
func NewPipeline(opts Options, logger *slog.Logger) *export.Pipeline {
	p := export.NewPipeline(nil, nil, NewBrowserOpener(), logger)
	Configure(p, opts, logger)
	return p
}

// Configure points p at the runtime, share helper and download directory
// described by opts. Used again when the settings change.
func Configure(p *export.Pipeline, opts Options, logger *slog.Logger) {
	if p == nil {
		return
	}
	p.Runtime = NewRuntime(opts.ForceMobile, NewCommandSharer(opts.ShareCommand, logger))
	p.Downloader = NewDirDownloader(opts.OutputDir)
	if opts.ShareTitle != "" {
		p.ShareTitle = opts.ShareTitle
	}
	if opts.ShareText != "" {
		p.ShareText = opts.ShareText
	}
}
