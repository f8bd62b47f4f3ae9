package view

import (
	"image"

	"github.com/soocke/collage-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// photoLabel is a label showing one image. It keeps the Tk photo it last
// set so the previous one can be deleted before replacing it.
type photoLabel struct {
	label       *LabelWidget
	photo       *Img
	placeholder image.Image
}

// newPhotoLabel creates the label with a w x h placeholder in fill color.
// The caller grids the returned label.
func newPhotoLabel(w, h int, fill string) *photoLabel {
	ph := images.Placeholder(w, h, fill)
	photo := NewPhoto(Data(images.EncodePNG(ph)))
	lbl := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	return &photoLabel{label: lbl, photo: photo, placeholder: ph}
}

// Set shows img; nil restores the placeholder.
func (v *photoLabel) Set(img image.Image) {
	if v == nil || v.label == nil {
		return
	}
	if img == nil {
		img = v.placeholder
	}
	pngBytes := images.EncodePNG(img)
	if len(pngBytes) == 0 {
		return
	}
	if v.photo != nil {
		v.photo.Delete()
	}
	v.photo = NewPhoto(Data(pngBytes))
	v.label.Configure(Image(v.photo))
}
