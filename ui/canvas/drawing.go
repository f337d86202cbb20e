// Package canvas provides drawing primitives for the grid canvas.
package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"disco-grid/pkg/geometry"

	xdraw "golang.org/x/image/draw"
)

// letterbox draws src into dst scaled with zoom-fit semantics and fills the
// bars with bg. The forward transform is the same one Fit.Project inverts.
func letterbox(dst *image.RGBA, src image.Image, bg color.Color) {
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)
	if src == nil {
		return
	}

	fit := geometry.NewFit(geometry.SizeOf(src.Bounds()), geometry.SizeOf(dst.Bounds()))
	if !fit.Valid() {
		return
	}
	xdraw.NearestNeighbor.Transform(dst, fit.Aff3(), src, src.Bounds(), xdraw.Over, nil)
}
