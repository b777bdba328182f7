package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"image"
	"image/color"
)

// DrawSpriteCentered draws img so that its center lands on center, scaled to
// targetWidth x targetHeight and rotated by angle radians around its center.
// center is in the coordinate system of screen, where the top-left pixel of
// screen is (0, 0).
// alpha is in [0, 255]. tint multiplies the colors of img.
func DrawSpriteCentered(screen *ebiten.Image, img *ebiten.Image,
	center Vec, targetWidth float64, targetHeight float64, angle float64,
	alpha float64, tint color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterLinear

	imgSize := img.Bounds().Size()
	op.GeoM.Translate(-float64(imgSize.X)/2, -float64(imgSize.Y)/2)
	op.GeoM.Scale(targetWidth/float64(imgSize.X), targetHeight/float64(imgSize.Y))
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(
		float64(screen.Bounds().Min.X)+center.X,
		float64(screen.Bounds().Min.Y)+center.Y)

	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	op.ColorScale.ScaleAlpha(float32(Clamp(alpha, 0, 255) / 255))
	screen.DrawImage(img, op)
}

// DrawCircle draws a filled circle. center is relative to the top-left pixel
// of screen, like for DrawSpriteCentered.
func DrawCircle(screen *ebiten.Image, center Vec, diameter float64, c color.Color) {
	vector.DrawFilledCircle(screen,
		float32(float64(screen.Bounds().Min.X)+center.X),
		float32(float64(screen.Bounds().Min.Y)+center.Y),
		float32(diameter/2),
		c,
		true)
}

// FillRect fills r, given relative to the top-left pixel of screen. Unlike
// screen.Fill, it blends with what is already there.
func FillRect(screen *ebiten.Image, r Rectangle, c color.Color) {
	vector.DrawFilledRect(screen,
		float32(screen.Bounds().Min.X+r.Min.X),
		float32(screen.Bounds().Min.Y+r.Min.Y),
		float32(r.Width()),
		float32(r.Height()),
		c,
		false)
}

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func SubImage(screen *ebiten.Image, r image.Rectangle) *ebiten.Image {
	// Ebitengine keeps the coordinates of the parent image in sub-images:
	// img2 = img1.SubImage(pt1, pt2) means img2.At(pt1) is the top-left
	// pixel of img2, not img2.At(0, 0). I think in local coordinates, so
	// everything here translates by Bounds().Min.
	minPt := screen.Bounds().Min
	r.Min = r.Min.Add(minPt)
	r.Max = r.Max.Add(minPt)
	return screen.SubImage(r).(*ebiten.Image)
}

// WithAlpha returns c with its opacity set to alpha, in [0, 255].
func WithAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(Clamp(alpha, 0, 255))
	return c
}
