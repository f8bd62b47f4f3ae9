package presenter

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"github.com/soocke/collage-go/capture"
	"github.com/soocke/collage-go/domain/bitmap"
	"github.com/soocke/collage-go/domain/render"
	"github.com/soocke/collage-go/ui/images"
	"github.com/soocke/collage-go/ui/model"
)

// Display sizes for the slot thumbnails and the collage preview.
const (
	ThumbSize     = 96
	PreviewWidth  = 300
	PreviewHeight = 600
)

// Renderer narrows the render pass to what the presenter calls.
type Renderer interface {
	Render(s *render.Surface, a, b *bitmap.Bitmap) error
}

// CollageView shows slot thumbnails, the rendered collage and a status line.
type CollageView interface {
	SetSlotImage(slot model.Slot, img image.Image)
	SetPreview(img image.Image)
	SetStatus(text string)
}

// CollagePresenter fills the slots from files or the screen and redraws the
// surface after every slot change.
type CollagePresenter struct {
	slots    *model.SlotModel
	renderer Renderer
	surface  *render.Surface
	view     CollageView
	logger   *slog.Logger

	// Decode and Grab produce slot bitmaps; tests replace them.
	Decode func(path string) (*bitmap.Bitmap, error)
	Grab   func() (*bitmap.Bitmap, error)
}

// NewCollagePresenter subscribes to slots and returns the presenter.
func NewCollagePresenter(slots *model.SlotModel, renderer Renderer, surface *render.Surface, view CollageView, logger *slog.Logger) *CollagePresenter {
	p := &CollagePresenter{
		slots:    slots,
		renderer: renderer,
		surface:  surface,
		view:     view,
		logger:   logger,
		Decode:   bitmap.Open,
		Grab:     capture.Grab,
	}
	slots.OnChange(p.onSlotChange)
	return p
}

// Upload decodes path into slot. Files that are not images are ignored;
// other failures leave the slot untouched and show a status line.
func (p *CollagePresenter) Upload(slot model.Slot, path string) {
	if p == nil || p.slots == nil || path == "" {
		return
	}
	bm, err := p.Decode(path)
	if err != nil {
		if errors.Is(err, bitmap.ErrNotImage) {
			p.warn("upload ignored: not an image", slot, err, "path", path)
			return
		}
		p.warn("upload failed", slot, err, "path", path)
		p.status(fmt.Sprintf("Could not open %s", filepath.Base(path)))
		return
	}
	p.slots.Set(slot, bm)
}

// Capture grabs the screen into slot.
func (p *CollagePresenter) Capture(slot model.Slot) {
	if p == nil || p.slots == nil || p.Grab == nil {
		return
	}
	bm, err := p.Grab()
	if err != nil {
		p.warn("screen capture failed", slot, err)
		p.status("Screen capture failed")
		return
	}
	p.slots.Set(slot, bm)
}

// Reset empties both slots.
func (p *CollagePresenter) Reset() {
	if p == nil || p.slots == nil {
		return
	}
	p.slots.Reset()
}

func (p *CollagePresenter) onSlotChange(changed model.Slot) {
	a, b := p.slots.Both()
	if a == nil && b == nil {
		p.surface.Clear()
		if p.view != nil {
			p.view.SetSlotImage(model.SlotA, nil)
			p.view.SetSlotImage(model.SlotB, nil)
			p.view.SetPreview(nil)
			p.view.SetStatus("")
		}
		return
	}
	if p.view != nil {
		p.view.SetSlotImage(changed, thumb(p.slots.Get(changed)))
	}
	if err := p.renderer.Render(p.surface, a, b); err != nil {
		if p.logger != nil {
			p.logger.Error("render failed", "slot", changed.String(), "error", err)
		}
		p.status("Could not draw the collage")
		return
	}
	if p.view != nil {
		p.view.SetPreview(images.ScaleToFit(p.surface.Image(), PreviewWidth, PreviewHeight))
		p.view.SetStatus("")
	}
}

func (p *CollagePresenter) status(text string) {
	if p.view != nil {
		p.view.SetStatus(text)
	}
}

func (p *CollagePresenter) warn(msg string, slot model.Slot, err error, attrs ...any) {
	if p.logger == nil {
		return
	}
	p.logger.Warn(msg, append([]any{"slot", slot.String(), "error", err}, attrs...)...)
}

func thumb(bm *bitmap.Bitmap) image.Image {
	if bm == nil {
		return nil
	}
	return images.Thumbnail(bm.Image, ThumbSize, ThumbSize)
}
