// Package geometry provides basic geometric types used throughout the application.
package geometry

import "image"

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// FromPoint converts an integer image point to Point2D.
func FromPoint(p image.Point) Point2D {
	return Point2D{X: float64(p.X), Y: float64(p.Y)}
}

// Size is a width/height pair in floating-point units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewSize creates a new Size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// SizeOf returns the size of an integer rectangle.
func SizeOf(r image.Rectangle) Size {
	return Size{Width: float64(r.Dx()), Height: float64(r.Dy())}
}

// Empty reports whether either dimension is zero or negative.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Corners returns the four inclusive pixel corners of r, top-left first
// and clockwise. The bottom-right corner is Max-1 on both axes.
func Corners(r image.Rectangle) [4]image.Point {
	x2, y2 := r.Max.X-1, r.Max.Y-1
	return [4]image.Point{
		{X: r.Min.X, Y: r.Min.Y},
		{X: x2, Y: r.Min.Y},
		{X: x2, Y: y2},
		{X: r.Min.X, Y: y2},
	}
}

// Circle is a circle in canvas pixel space.
type Circle struct {
	Center Point2D
	Radius float64
}

// InscribedCircle returns the largest circle centered in r.
func InscribedCircle(r image.Rectangle) Circle {
	short := r.Dx()
	if r.Dy() < short {
		short = r.Dy()
	}
	return Circle{
		Center: Point2D{X: float64(r.Min.X + r.Dx()/2), Y: float64(r.Min.Y + r.Dy()/2)},
		Radius: float64(short) / 2,
	}
}

// Contains returns true if p lies inside or on the circle. Squared distances
// are compared so integer points on the boundary are exact.
func (c Circle) Contains(p Point2D) bool {
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// ContainsRect returns true if all four inclusive pixel corners of r lie in the circle.
func (c Circle) ContainsRect(r image.Rectangle) bool {
	for _, corner := range Corners(r) {
		if !c.Contains(FromPoint(corner)) {
			return false
		}
	}
	return true
}
