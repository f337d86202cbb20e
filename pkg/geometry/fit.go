package geometry

import (
	"image"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/mat"
)

// Outside is returned by Project when the fit is degenerate. It lies
// outside every canvas.
var Outside = image.Point{X: -1, Y: -1}

// Fit describes a canvas shown inside a control with "zoom" semantics:
// scaled to fit, aspect preserved, centered, with letterbox bars on the
// axis that has slack.
type Fit struct {
	Canvas  Size
	Control Size
}

// NewFit creates a new Fit.
func NewFit(canvas, control Size) Fit {
	return Fit{Canvas: canvas, Control: control}
}

// Valid reports whether both sizes are non-empty.
func (f Fit) Valid() bool {
	return !f.Canvas.Empty() && !f.Control.Empty()
}

// Wide reports whether the canvas is relatively wider than the control, in
// which case it is scaled to the control width with bars above and below.
func (f Fit) Wide() bool {
	canvasAspect := float32(f.Canvas.Width) / float32(f.Canvas.Height)
	controlAspect := float32(f.Control.Width) / float32(f.Control.Height)
	return canvasAspect > controlAspect
}

// scaleOffset returns the canvas-to-control scale and the letterbox offset.
// Only one of offX, offY is non-zero.
func (f Fit) scaleOffset() (scale, offX, offY float32) {
	cw, ch := float32(f.Canvas.Width), float32(f.Canvas.Height)
	vw, vh := float32(f.Control.Width), float32(f.Control.Height)
	if f.Wide() {
		scale = vw / cw
		offY = (vh - scale*ch) / 2
		return scale, 0, offY
	}
	scale = vh / ch
	offX = (vw - scale*cw) / 2
	return scale, offX, 0
}

// Project maps a point in control space back to canvas pixel space. The
// result is truncated toward zero and may lie outside the canvas when the
// point falls in a letterbox bar.
func (f Fit) Project(p Point2D) image.Point {
	if !f.Valid() {
		return Outside
	}
	cw, ch := float32(f.Canvas.Width), float32(f.Canvas.Height)
	vw, vh := float32(f.Control.Width), float32(f.Control.Height)
	x, y := float32(p.X), float32(p.Y)

	if f.Wide() {
		x *= cw / vw
		scale := vw / cw
		displayHeight := scale * ch
		y -= (vh - displayHeight) / 2
		y /= scale
	} else {
		y *= ch / vh
		scale := vh / ch
		displayWidth := scale * cw
		x -= (vw - displayWidth) / 2
		x /= scale
	}
	return image.Point{X: int(x), Y: int(y)}
}

// Forward returns the canvas-to-control transform that the display applies.
func (f Fit) Forward() AffineTransform {
	if !f.Valid() {
		return Identity()
	}
	scale, offX, offY := f.scaleOffset()
	return AffineTransform{
		A: float64(scale), TX: float64(offX),
		D: float64(scale), TY: float64(offY),
	}
}

// Viewport returns the rectangle of the control covered by the canvas.
func (f Fit) Viewport() image.Rectangle {
	if !f.Valid() {
		return image.Rectangle{}
	}
	t := f.Forward()
	tl := t.Apply(Point2D{})
	br := t.Apply(Point2D{X: f.Canvas.Width, Y: f.Canvas.Height})
	return image.Rect(int(tl.X), int(tl.Y), int(br.X+0.5), int(br.Y+0.5))
}

// Matrix returns the forward transform as a 3x3 homogeneous matrix.
func (f Fit) Matrix() *mat.Dense {
	return f.Forward().Matrix()
}

// Aff3 returns the forward transform in the form used by x/image/draw.
func (f Fit) Aff3() f64.Aff3 {
	return AffineFromMatrix(f.Matrix()).Aff3()
}

// Hit reports whether a control-space point lies over the displayed canvas
// rather than in a letterbox bar.
func (f Fit) Hit(p Point2D) bool {
	return image.Pt(int(p.X), int(p.Y)).In(f.Viewport())
}

// AffineTransform represents a 2x3 affine transformation matrix.
// [a b tx]
// [c d ty]
type AffineTransform struct {
	A, B, TX float64
	C, D, TY float64
}

// Identity returns the identity transform.
func Identity() AffineTransform {
	return AffineTransform{A: 1, D: 1}
}

// Apply applies the transform to a point.
func (t AffineTransform) Apply(p Point2D) Point2D {
	return Point2D{
		X: t.A*p.X + t.B*p.Y + t.TX,
		Y: t.C*p.X + t.D*p.Y + t.TY,
	}
}

// Matrix returns the transform as a 3x3 homogeneous matrix.
func (t AffineTransform) Matrix() *mat.Dense {
	return mat.NewDense(3, 3, []float64{
		t.A, t.B, t.TX,
		t.C, t.D, t.TY,
		0, 0, 1,
	})
}

// Aff3 returns the transform as an f64.Aff3.
func (t AffineTransform) Aff3() f64.Aff3 {
	return f64.Aff3{t.A, t.B, t.TX, t.C, t.D, t.TY}
}

// Inverse returns the inverse transform, if it exists.
func (t AffineTransform) Inverse() (AffineTransform, bool) {
	var inv mat.Dense
	if err := inv.Inverse(t.Matrix()); err != nil {
		return AffineTransform{}, false
	}
	return AffineFromMatrix(&inv), true
}

// AffineFromMatrix reads the top two rows of a 3x3 homogeneous matrix.
func AffineFromMatrix(m mat.Matrix) AffineTransform {
	return AffineTransform{
		A: m.At(0, 0), B: m.At(0, 1), TX: m.At(0, 2),
		C: m.At(1, 0), D: m.At(1, 1), TY: m.At(1, 2),
	}
}
