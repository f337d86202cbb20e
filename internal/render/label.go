package render

import (
	"fmt"
	"image"
	"image/draw"

	"disco-grid/internal/grid"
	"disco-grid/pkg/colorutil"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const labelMargin = 4

// labelLayer shows a coordinate in the top-right corner of the canvas.
type labelLayer struct {
	img    *image.RGBA
	face   font.Face
	text   string
	bounds image.Rectangle // Area painted for text, erased before redraw
}

func newLabelLayer(bounds image.Rectangle) *labelLayer {
	return &labelLayer{
		img:  image.NewRGBA(bounds),
		face: basicfont.Face7x13,
	}
}

// LabelFor returns the label text for a tile, or "" if it has no coordinate.
func LabelFor(t *grid.Tile) string {
	if t == nil {
		return ""
	}
	coord, ok := t.Coord()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%d, %d)", coord.X, coord.Y)
}

// update redraws the label for the highlighted tile. It returns true if the
// layer changed.
func (l *labelLayer) update(hovered *grid.Tile) bool {
	text := LabelFor(hovered)
	if text == l.text {
		return false
	}

	if !l.bounds.Empty() {
		draw.Draw(l.img, l.bounds, image.Transparent, image.Point{}, draw.Src)
	}
	l.text = text
	l.bounds = image.Rectangle{}
	if text == "" {
		return true
	}

	width := font.MeasureString(l.face, text).Ceil()
	metrics := l.face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()

	canvas := l.img.Bounds()
	box := image.Rect(canvas.Max.X-width-2*labelMargin, canvas.Min.Y,
		canvas.Max.X, canvas.Min.Y+height+2*labelMargin).Intersect(canvas)

	draw.Draw(l.img, box, &image.Uniform{C: colorutil.White}, image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  l.img,
		Src:  &image.Uniform{C: colorutil.Black},
		Face: l.face,
		Dot:  fixed.P(box.Min.X+labelMargin, box.Min.Y+labelMargin+metrics.Ascent.Ceil()),
	}
	d.DrawString(text)
	l.bounds = box
	return true
}
