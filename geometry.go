package main

import (
	"image"
	"math"
)

// Rectangle is an axis-aligned rectangle used for layout, in screen pixels.
// Min is inclusive, Max is exclusive, like image.Rectangle.
type Rectangle struct {
	Min image.Point
	Max image.Point
}

func NewRectangleI(x, y, width, height int) Rectangle {
	return Rectangle{image.Pt(x, y), image.Pt(x+width, y+height)}
}

func (r Rectangle) Width() int {
	return r.Max.X - r.Min.X
}

func (r Rectangle) Height() int {
	return r.Max.Y - r.Min.Y
}

func (r Rectangle) ContainsPt(pt image.Point) bool {
	return pt.X >= r.Min.X && pt.X < r.Max.X && pt.Y >= r.Min.Y && pt.Y < r.Max.Y
}

func (r Rectangle) ImageRect() image.Rectangle {
	return image.Rectangle{Min: r.Min, Max: r.Max}
}

// Bounds is the extent of the canvas the simulation is aware of. The top-left
// corner is always (0, 0).
type Bounds struct {
	Width  float64
	Height float64
}

func (b Bounds) Center() Vec {
	return Vec{b.Width / 2, b.Height / 2}
}

// Outside reports if pt lies more than margin away from the canvas on any
// side. A point exactly margin away is still inside.
func (b Bounds) Outside(pt Vec, margin float64) bool {
	return pt.X < -margin ||
		pt.Y < -margin ||
		pt.X > b.Width+margin ||
		pt.Y > b.Height+margin
}

func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// Remap linearly maps x from [inLo, inHi] to [outLo, outHi]. x is not clamped.
func Remap(x, inLo, inHi, outLo, outHi float64) float64 {
	return outLo + (x-inLo)*(outHi-outLo)/(inHi-inLo)
}

func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
