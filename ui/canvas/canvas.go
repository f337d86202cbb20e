// Package canvas provides the grid canvas widget.
package canvas

import (
	"image"

	"disco-grid/internal/app"
	"disco-grid/pkg/geometry"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// GridCanvas shows a session's canvas zoom-fitted into the widget and
// forwards pointer events to the session.
type GridCanvas struct {
	widget.BaseWidget

	state  *app.State
	raster *fynecanvas.Raster
}

var (
	_ desktop.Hoverable  = (*GridCanvas)(nil)
	_ desktop.Mouseable  = (*GridCanvas)(nil)
	_ desktop.Cursorable = (*GridCanvas)(nil)
)

// NewGridCanvas creates a canvas widget for state.
func NewGridCanvas(state *app.State) *GridCanvas {
	gc := &GridCanvas{state: state}

	gc.raster = fynecanvas.NewRaster(gc.draw)
	gc.raster.ScaleMode = fynecanvas.ImageScalePixels

	state.On(app.EventRedraw, func(interface{}) {
		gc.Refresh()
	})

	gc.ExtendBaseWidget(gc)
	return gc
}

// controlSize returns the widget size in the units pointer events use.
func (gc *GridCanvas) controlSize() geometry.Size {
	size := gc.Size()
	return geometry.NewSize(float64(size.Width), float64(size.Height))
}

func toPoint(pos fyne.Position) geometry.Point2D {
	return geometry.NewPoint2D(float64(pos.X), float64(pos.Y))
}

// MouseIn implements desktop.Hoverable.
func (gc *GridCanvas) MouseIn(ev *desktop.MouseEvent) {
	gc.state.PointerMoved(toPoint(ev.Position), gc.controlSize())
}

// MouseMoved implements desktop.Hoverable.
func (gc *GridCanvas) MouseMoved(ev *desktop.MouseEvent) {
	gc.state.PointerMoved(toPoint(ev.Position), gc.controlSize())
}

// MouseOut implements desktop.Hoverable.
func (gc *GridCanvas) MouseOut() {
	gc.state.PointerLeft()
}

// MouseDown implements desktop.Mouseable.
func (gc *GridCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	gc.state.PointerPressed(toPoint(ev.Position), gc.controlSize())
}

// MouseUp implements desktop.Mouseable.
func (gc *GridCanvas) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	gc.state.PointerReleased(toPoint(ev.Position), gc.controlSize())
}

// Cursor implements desktop.Cursorable. The pointer cursor shows over tiles.
func (gc *GridCanvas) Cursor() desktop.Cursor {
	if gc.state.Hovered() != nil {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

// MinSize returns the smallest usable widget size.
func (gc *GridCanvas) MinSize() fyne.Size {
	return fyne.NewSize(200, 200)
}

// Refresh redraws the raster.
func (gc *GridCanvas) Refresh() {
	gc.raster.Refresh()
}

// draw is the raster drawing function. w and h are in device pixels; the
// aspect ratio matches the widget size so the fit is the same one pointer
// events are projected through.
func (gc *GridCanvas) draw(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	letterbox(output, gc.state.Image(), app.LetterboxColor)
	return output
}

// CreateRenderer implements fyne.Widget.
func (gc *GridCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(gc.raster)
}
