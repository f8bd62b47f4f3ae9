// Package headless renders and exports a collage without a window.
package headless

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/soocke/collage-go/capture"
	"github.com/soocke/collage-go/domain/bitmap"
	"github.com/soocke/collage-go/domain/export"
	"github.com/soocke/collage-go/domain/render"
	"github.com/soocke/collage-go/ui/model"
)

// ScreenSource is the input name that grabs the screen instead of reading
// a file.
const ScreenSource = "screen"

// ErrNoInput is returned when neither input is given.
var ErrNoInput = errors.New("headless: no input photos")

// Job describes one render. Empty inputs leave their slot empty.
type Job struct {
	First  string
	Second string
}

// Runner loads the inputs, renders them and exports the surface.
type Runner struct {
	Renderer *render.Renderer
	Exporter interface {
		Export(ctx context.Context, src export.Source) (export.Result, error)
	}
	Logger *slog.Logger

	// Open and Grab produce bitmaps; tests replace them.
	Open func(path string) (*bitmap.Bitmap, error)
	Grab func() (*bitmap.Bitmap, error)
}

// Run decodes both inputs concurrently, fills the slots in A, B order and
// exports the rendered surface.
func (r *Runner) Run(ctx context.Context, job Job) (export.Result, error) {
	if job.First == "" && job.Second == "" {
		return export.Result{}, ErrNoInput
	}
	var bms [2]*bitmap.Bitmap
	g, gctx := errgroup.WithContext(ctx)
	for i, in := range []string{job.First, job.Second} {
		if in == "" {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bm, err := r.load(in)
			if err != nil {
				return err
			}
			bms[i] = bm
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return export.Result{}, err
	}

	surface := &render.Surface{}
	defer surface.Clear()
	slots := model.NewSlotModel()
	var renderErr error
	slots.OnChange(func(model.Slot) {
		a, b := slots.Both()
		renderErr = r.Renderer.Render(surface, a, b)
	})
	slots.Set(model.SlotA, bms[0])
	slots.Set(model.SlotB, bms[1])
	if renderErr != nil {
		return export.Result{}, renderErr
	}
	if r.Logger != nil {
		r.Logger.Debug("rendered", "width", surface.Width(), "height", surface.Height())
	}
	return r.Exporter.Export(ctx, surface)
}

func (r *Runner) load(in string) (*bitmap.Bitmap, error) {
	if in == ScreenSource {
		grab := r.Grab
		if grab == nil {
			grab = capture.Grab
		}
		return grab()
	}
	open := r.Open
	if open == nil {
		open = bitmap.Open
	}
	return open(in)
}
