package grid

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := NewRectangular(image.Pt(450, 450), Dimensions{Cols: 10, Rows: 10})
	require.NoError(t, err)
	for i := range g.Tiles() {
		g.Tile(i).TakeDirty()
	}
	return g
}

func countHighlighted(g *Grid) int {
	n := 0
	for _, tile := range g.Tiles() {
		if tile.Highlighted() {
			n++
		}
	}
	return n
}

func countDirty(g *Grid) int {
	n := 0
	for _, tile := range g.Tiles() {
		if tile.Dirty() {
			n++
		}
	}
	return n
}

func TestHoverHighlightsAtMostOne(t *testing.T) {
	g := newTestGrid(t)
	in := NewInteraction(g, DragOff)

	path := []image.Point{
		{10, 10}, {12, 11}, {50, 10}, {449, 449}, {460, 20}, {-5, -5}, {200, 200}, {201, 201},
	}
	for _, p := range path {
		in.Hover(p)
		assert.LessOrEqual(t, countHighlighted(g), 1, "after %v", p)
	}

	assert.Same(t, g.TileAt(image.Pt(201, 201)), in.Current())
	assert.True(t, in.Current().Highlighted())
}

func TestHoverMarksOnlyChangedTilesDirty(t *testing.T) {
	g := newTestGrid(t)
	in := NewInteraction(g, DragOff)

	in.Hover(image.Pt(10, 10))
	assert.Equal(t, 1, countDirty(g))
	g.TileAt(image.Pt(10, 10)).TakeDirty()

	in.Hover(image.Pt(20, 20))
	assert.Equal(t, 0, countDirty(g), "moving within a tile changes nothing")

	in.Hover(image.Pt(60, 20))
	assert.Equal(t, 2, countDirty(g), "one leave and one enter")
}

func TestHoverOutsideClears(t *testing.T) {
	g := newTestGrid(t)
	in := NewInteraction(g, DragOff)

	in.Hover(image.Pt(10, 10))
	assert.Nil(t, in.Hover(image.Pt(-1, 300)))
	assert.Equal(t, 0, countHighlighted(g))

	in.Hover(image.Pt(10, 10))
	in.Leave()
	assert.Nil(t, in.Current())
	assert.Equal(t, 0, countHighlighted(g))
}

func TestClickAdvancesOnRelease(t *testing.T) {
	g := newTestGrid(t)
	in := NewInteraction(g, DragOff)
	tile := g.TileAt(image.Pt(46, 46))

	in.Move(image.Pt(46, 46))
	in.Press(image.Pt(46, 46))
	assert.Equal(t, 0, tile.ColorIndex(), "press alone does not advance")

	in.Release(image.Pt(46, 46))
	assert.Equal(t, 1, tile.ColorIndex())
	assert.True(t, tile.Highlighted(), "click is independent of highlight")

	for i := 0; i < 5; i++ {
		in.Press(image.Pt(46, 46))
		in.Release(image.Pt(46, 46))
	}
	assert.Equal(t, 0, tile.ColorIndex(), "six clicks return to the initial color")
}

func TestClickOutsideIgnored(t *testing.T) {
	g := newTestGrid(t)
	in := NewInteraction(g, DragOff)

	in.Press(image.Pt(500, 500))
	in.Release(image.Pt(500, 500))
	assert.Equal(t, 0, countDirty(g))
}

func TestDragOffDoesNotPaint(t *testing.T) {
	g := newTestGrid(t)
	in := NewInteraction(g, DragOff)

	in.Press(image.Pt(10, 10))
	in.Move(image.Pt(60, 10))
	in.Move(image.Pt(110, 10))
	assert.Equal(t, 0, g.TileAt(image.Pt(60, 10)).ColorIndex())
}

func TestWaitForExit(t *testing.T) {
	g := newTestGrid(t)
	in := NewInteraction(g, DragPaint)
	a := g.TileAt(image.Pt(10, 10))
	b := g.TileAt(image.Pt(60, 10))

	in.Move(image.Pt(60, 60))
	in.Press(image.Pt(60, 60))
	assert.True(t, in.Pressed())
	in.Move(image.Pt(10, 10))
	assert.Equal(t, 1, a.ColorIndex(), "entering A advances once")

	for _, p := range []image.Point{{11, 11}, {20, 30}, {44, 44}, {5, 5}} {
		in.Move(p)
	}
	assert.Equal(t, 1, a.ColorIndex(), "moving within A does not advance")

	in.Move(image.Pt(60, 10))
	assert.Equal(t, 1, b.ColorIndex())

	in.Move(image.Pt(10, 10))
	assert.Equal(t, 2, a.ColorIndex(), "re-entering A advances again")

	in.Release(image.Pt(10, 10))
	assert.Equal(t, 2, a.ColorIndex(), "release does not advance in paint mode")

	in.Move(image.Pt(60, 10))
	assert.Equal(t, 1, b.ColorIndex(), "no painting once released")
}

func TestDragPaintPressAdvances(t *testing.T) {
	g := newTestGrid(t)
	in := NewInteraction(g, DragPaint)
	tile := g.TileAt(image.Pt(100, 100))

	in.Move(image.Pt(100, 100))
	in.Press(image.Pt(100, 100))
	assert.Equal(t, 1, tile.ColorIndex())

	in.Move(image.Pt(101, 101))
	assert.Equal(t, 1, tile.ColorIndex())
}

func TestAdvancePolicy(t *testing.T) {
	g := newTestGrid(t)
	in := NewInteraction(g, DragOff)
	p := image.Pt(46, 46)

	in.Hover(p)
	assert.Nil(t, in.Advance(p, AdvanceWaitForExit), "highlighted tile is skipped")
	assert.NotNil(t, in.Advance(p, AdvanceAlways))
	assert.Nil(t, in.Advance(image.Pt(-1, -1), AdvanceAlways))
	assert.Equal(t, "wait-for-exit", AdvanceWaitForExit.String())
}
