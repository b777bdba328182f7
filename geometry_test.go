package main

import (
	"github.com/stretchr/testify/assert"
	"image"
	"math"
	"testing"
)

func TestBounds_Outside(t *testing.T) {
	b := Bounds{Width: 300, Height: 200}
	assert.False(t, b.Outside(Vec{0, 0}, 0))
	assert.False(t, b.Outside(Vec{300, 200}, 0))
	assert.True(t, b.Outside(Vec{300.01, 200}, 0))
	assert.False(t, b.Outside(Vec{-100, 300}, 100))
	assert.True(t, b.Outside(Vec{-100.01, 0}, 100))
	assert.True(t, b.Outside(Vec{0, 300.01}, 100))
}

func TestRemap(t *testing.T) {
	assert.Equal(t, -45.0, Remap(0, 0, 400, -45, 45))
	assert.Equal(t, 45.0, Remap(400, 0, 400, -45, 45))
	assert.Equal(t, 0.0, Remap(200, 0, 400, -45, 45))
	// Not clamped.
	assert.Equal(t, 90.0, Remap(600, 0, 400, -45, 45))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 255))
	assert.Equal(t, 255.0, Clamp(300, 0, 255))
	assert.Equal(t, 17.5, Clamp(17.5, 0, 255))
}

func TestVec_Rotated(t *testing.T) {
	v := Vec{10, 0}.Rotated(math.Pi / 2)
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, 10, v.Y, 1e-9)

	v = Vec{3, 4}.Rotated(Radians(37))
	assert.InDelta(t, 5, v.Len(), 1e-9)
}

func TestRectangle_ContainsPt(t *testing.T) {
	r := NewRectangleI(10, 20, 30, 40)
	assert.Equal(t, 30, r.Width())
	assert.Equal(t, 40, r.Height())
	assert.True(t, r.ContainsPt(image.Pt(10, 20)))
	assert.True(t, r.ContainsPt(image.Pt(39, 59)))
	assert.False(t, r.ContainsPt(image.Pt(40, 59)))
	assert.False(t, r.ContainsPt(image.Pt(39, 60)))
}
