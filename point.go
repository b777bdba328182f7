package main

import "math"

// Vec is a point or a vector in canvas pixels. Unlike the layout code, the
// simulation needs sub-pixel positions, so everything here is float64.
type Vec struct {
	X float64
	Y float64
}

func (p *Vec) Add(other Vec) {
	p.X = p.X + other.X
	p.Y = p.Y + other.Y
}

func (p Vec) Plus(other Vec) Vec {
	return Vec{p.X + other.X, p.Y + other.Y}
}

func (p Vec) Times(multiply float64) Vec {
	return Vec{p.X * multiply, p.Y * multiply}
}

func (p Vec) Len() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Rotated returns p rotated around the origin by angle radians.
func (p Vec) Rotated(angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

// FromAngle returns the unit vector pointing at angle radians.
func FromAngle(angle float64) Vec {
	sin, cos := math.Sincos(angle)
	return Vec{cos, sin}
}
