package view

import (
	"image"

	"github.com/soocke/collage-go/ui/model"
	"github.com/soocke/collage-go/ui/presenter"
	"github.com/soocke/collage-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// imageFileTypes are offered by the upload dialog.
var imageFileTypes = []FileType{
	{TypeName: "Images", Extensions: []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}},
	{TypeName: "All files", Extensions: []string{"*"}},
}

// slotPanel groups the thumbnail and source buttons of one slot.
type slotPanel struct {
	slot  model.Slot
	thumb *photoLabel
}

// newSlotPanel builds the panel at (row, col). onUpload receives the picked
// path; a dismissed dialog calls nothing.
func newSlotPanel(slot model.Slot, title string, row, col int, onUpload func(model.Slot, string), onCapture func(model.Slot)) *slotPanel {
	p := &slotPanel{slot: slot}
	frame := Frame(Borderwidth(1), Relief("groove"))
	Grid(frame, Row(row), Column(col), Sticky("nwe"), Padx("1m"), Pady("1m"))

	Grid(TLabel(Txt(title), Style(theme.StyleTitleLabel)), In(frame), Row(0), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"))

	p.thumb = newPhotoLabel(presenter.ThumbSize, presenter.ThumbSize, theme.CurrentPalette().Border)
	Grid(p.thumb.label, In(frame), Row(1), Column(0), Columnspan(2), Padx("0.4m"), Pady("0.4m"))

	upload := TButton(Txt("Upload photo"), Style(theme.StyleSlotButton), Command(func() {
		files := GetOpenFile(Title("Choose a photo"), Filetypes(imageFileTypes))
		if len(files) == 0 || files[0] == "" || onUpload == nil {
			return
		}
		onUpload(slot, files[0])
	}))
	Grid(upload, In(frame), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	grab := TButton(Txt("Capture screen"), Style(theme.StyleSlotButton), Command(func() {
		if onCapture != nil {
			onCapture(slot)
		}
	}))
	Grid(grab, In(frame), Row(2), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	return p
}

// SetImage shows a thumbnail; nil shows the empty placeholder.
func (p *slotPanel) SetImage(img image.Image) {
	if p == nil {
		return
	}
	p.thumb.Set(img)
}
