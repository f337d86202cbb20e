// Package render draws a tile grid into bitmap layers.
//
// Three layers are kept: a static grid-lines layer drawn once, a fill layer
// that only repaints tiles whose dirty flag is set, and a label layer that
// shows the hovered tile's coordinate. Image composites them.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"io"
	"log"
	"time"

	"disco-grid/internal/grid"
	"disco-grid/pkg/colorutil"
)

// Options controls renderer appearance.
type Options struct {
	Background color.RGBA // Area not covered by tiles
	LineColor  color.RGBA // Grid outline
	Labels     bool       // Draw the hovered tile's coordinate
	Logger     *log.Logger
}

// DefaultOptions returns the standard appearance.
func DefaultOptions() Options {
	return Options{
		Background: colorutil.White,
		LineColor:  colorutil.Black,
	}
}

// Stats reports what one Render call did.
type Stats struct {
	Repainted int
	Label     bool // Label layer changed
	Elapsed   time.Duration
}

// Renderer owns the bitmap layers for a grid.
type Renderer struct {
	grid   *grid.Grid
	opts   Options
	logger *log.Logger

	lines *image.RGBA
	fill  *image.RGBA
	label *labelLayer

	output *image.RGBA
	stale  bool // output needs recompositing
}

// New creates a renderer for g and draws the static grid-lines layer.
func New(g *grid.Grid, opts Options) *Renderer {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	bounds := g.Canvas()
	r := &Renderer{
		grid:   g,
		opts:   opts,
		logger: logger,
		lines:  image.NewRGBA(bounds),
		fill:   image.NewRGBA(bounds),
		label:  newLabelLayer(bounds),
		stale:  true,
	}

	draw.Draw(r.fill, bounds, &image.Uniform{C: opts.Background}, image.Point{}, draw.Src)
	r.drawGrid()
	return r
}

// drawGrid outlines every tile on the lines layer.
func (r *Renderer) drawGrid() {
	for _, t := range r.grid.Tiles() {
		strokeRect(r.lines, t.Bounds, r.opts.LineColor)
	}
}

// Render repaints every dirty tile on the fill layer and refreshes the label.
func (r *Renderer) Render() Stats {
	start := time.Now()
	var stats Stats

	var next *image.RGBA
	tiles := r.grid.Tiles()
	for i := range tiles {
		t := &tiles[i]
		if !t.TakeDirty() {
			continue
		}
		if next == nil {
			next = cloneRGBA(r.fill)
		}
		paintTile(next, t)
		stats.Repainted++
	}
	if next != nil {
		r.fill = next
		r.stale = true
	}

	if r.opts.Labels {
		stats.Label = r.label.update(r.grid.Highlighted())
		if stats.Label {
			r.stale = true
		}
	}

	stats.Elapsed = time.Since(start)
	if stats.Repainted > 0 || stats.Label {
		r.logger.Printf("render: %d tiles repainted in %s", stats.Repainted, stats.Elapsed)
	}
	return stats
}

// paintTile fills a tile with its color, darkened if highlighted.
func paintTile(dst *image.RGBA, t *grid.Tile) {
	c := t.Color()
	if t.Highlighted() {
		c = colorutil.Over(c, colorutil.Highlight)
	}
	draw.Draw(dst, t.Bounds, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// Image returns the composited canvas. The returned image is not modified
// by later Render calls.
func (r *Renderer) Image() *image.RGBA {
	if !r.stale && r.output != nil {
		return r.output
	}
	out := cloneRGBA(r.fill)
	draw.Draw(out, out.Bounds(), r.lines, out.Bounds().Min, draw.Over)
	if r.opts.Labels {
		draw.Draw(out, out.Bounds(), r.label.img, out.Bounds().Min, draw.Over)
	}
	r.output = out
	r.stale = false
	return out
}

// Lines returns the grid-lines layer.
func (r *Renderer) Lines() *image.RGBA {
	return r.lines
}

// LabelBounds returns the area of the current label, or an empty rectangle.
func (r *Renderer) LabelBounds() image.Rectangle {
	return r.label.bounds
}

// LabelText returns the current label text.
func (r *Renderer) LabelText() string {
	return r.label.text
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}

// strokeRect draws a 1px outline along the inside edge of r.
func strokeRect(dst *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	x2, y2 := r.Max.X-1, r.Max.Y-1
	for x := r.Min.X; x <= x2; x++ {
		dst.SetRGBA(x, r.Min.Y, c)
		dst.SetRGBA(x, y2, c)
	}
	for y := r.Min.Y; y <= y2; y++ {
		dst.SetRGBA(r.Min.X, y, c)
		dst.SetRGBA(x2, y, c)
	}
}
