package canvas

import (
	"image"
	"image/color"
	"testing"

	"disco-grid/internal/app"
	"disco-grid/pkg/colorutil"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCanvas(t *testing.T, size fyne.Size) (*app.State, *GridCanvas) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	state, err := app.NewState(app.DefaultConfig(), nil)
	require.NoError(t, err)
	gc := NewGridCanvas(state)
	gc.Resize(size)
	return state, gc
}

func mouseAt(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     button,
	}
}

func TestPointerEventsDriveState(t *testing.T) {
	state, gc := newTestCanvas(t, fyne.NewSize(450, 450))

	assert.Equal(t, desktop.DefaultCursor, gc.Cursor())

	gc.MouseIn(mouseAt(46, 46, 0))
	tile := state.Hovered()
	require.NotNil(t, tile)
	assert.Same(t, state.Grid().Cell(1, 1), tile)
	assert.Equal(t, desktop.PointerCursor, gc.Cursor())

	gc.MouseDown(mouseAt(46, 46, desktop.MouseButtonPrimary))
	gc.MouseUp(mouseAt(46, 46, desktop.MouseButtonPrimary))
	assert.Equal(t, 1, tile.ColorIndex())

	gc.MouseDown(mouseAt(46, 46, desktop.MouseButtonSecondary))
	gc.MouseUp(mouseAt(46, 46, desktop.MouseButtonSecondary))
	assert.Equal(t, 1, tile.ColorIndex(), "secondary button ignored")

	gc.MouseOut()
	assert.Nil(t, state.Hovered())
	assert.Equal(t, desktop.DefaultCursor, gc.Cursor())
}

func TestPointerProjectedThroughLetterbox(t *testing.T) {
	state, gc := newTestCanvas(t, fyne.NewSize(900, 450))

	gc.MouseMoved(mouseAt(100, 100, 0))
	assert.Nil(t, state.Hovered(), "left bar")

	gc.MouseMoved(mouseAt(225+46, 46, 0))
	assert.Same(t, state.Grid().Cell(1, 1), state.Hovered())
}

func TestDrawLetterboxesCanvas(t *testing.T) {
	_, gc := newTestCanvas(t, fyne.NewSize(900, 450))

	gc.MouseUp(mouseAt(225+60, 60, desktop.MouseButtonPrimary))
	gc.MouseMoved(mouseAt(800, 400, 0))

	out := gc.draw(900, 450).(*image.RGBA)
	assert.Equal(t, image.Rect(0, 0, 900, 450), out.Bounds())
	assert.Equal(t, color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}, out.RGBAAt(100, 200))
	assert.Equal(t, colorutil.Red, out.RGBAAt(225+60, 60))
	assert.Equal(t, colorutil.White, out.RGBAAt(225+300, 300))
}

func TestLetterboxBlit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	dst := image.NewRGBA(image.Rect(0, 0, 40, 20))
	bg := color.RGBA{R: 1, G: 2, B: 3, A: 255}

	letterbox(dst, src, bg)
	assert.Equal(t, bg, dst.RGBAAt(5, 10), "left bar")
	assert.Equal(t, bg, dst.RGBAAt(34, 10), "right bar")
	assert.Equal(t, colorutil.White, dst.RGBAAt(10, 0))
	assert.Equal(t, colorutil.White, dst.RGBAAt(29, 19))
}
