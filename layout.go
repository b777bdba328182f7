package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"image"
)

// Visual areas
// ------------
//
// - The canvas: the square the World is aware of. Its size follows the
// window, it is always CanvasFraction of the shorter side.
// - The playback area: a strip at the bottom of the screen with the playback
// controls. It only exists in Playback mode.
// - The screen: the whole window. Whatever is not canvas is filled with the
// margin color.

const DebugHeight = 60

// The areas below are relative to the playback area.
var debugPlayButton = NewRectangleI(0, 0, DebugHeight, DebugHeight)

const debugPlayBarMargin = 10

func (g *Gui) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	defer g.HandlePanic()

	// I receive the application window's actual width and height, via
	// outsideWidth, outsideHeight. I have to return the size I want, in pixels,
	// for the bitmap that will be drawn in the window.
	//
	// Unlike a game with a fixed play area, the sketch is supposed to take
	// the same share of the window no matter how large the window is. So I
	// just use the window's size for the screen and compute the canvas inside
	// of it. The World gets the new canvas size with the next input, and
	// handles resizing on its own.
	screenWidth = outsideWidth
	screenHeight = outsideHeight

	debugHeight := 0
	if g.state == Playback {
		debugHeight = DebugHeight
	}
	availableHeight := screenHeight - debugHeight

	side := int(float64(min(screenWidth, availableHeight)) * g.CanvasFraction)
	side = max(side, 1)
	g.canvasArea = NewRectangleI(
		(screenWidth-side)/2,
		(availableHeight-side)/2,
		side,
		side)

	g.playbackArea = NewRectangleI(0, availableHeight, screenWidth, debugHeight)
	g.buttonPlaybackPlay = debugPlayButton
	g.buttonPlaybackBar = NewRectangleI(
		DebugHeight+debugPlayBarMargin,
		0,
		screenWidth-DebugHeight-2*debugPlayBarMargin,
		DebugHeight)
	return
}

func (g *Gui) UpdateWindowSize() {
	width, height := ebiten.ScreenSizeInFullscreen()
	size := min(width, height) * 8 / 10
	ebiten.SetWindowSize(size, size)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Shake")
}

// CanvasScale is how many screen pixels a World pixel takes. It is 1 while
// playing, but a recording can be played back in a window of another size.
func (g *Gui) CanvasScale() float64 {
	if g.world.Bounds.Width <= 0 {
		return 1
	}
	return float64(g.canvasArea.Width()) / g.world.Bounds.Width
}

func (g *Gui) ScreenToCanvas(pt image.Point) Vec {
	return Vec{
		float64(pt.X - g.canvasArea.Min.X),
		float64(pt.Y - g.canvasArea.Min.Y),
	}
}

func (g *Gui) CanvasToScreen(pt Vec) Vec {
	scale := g.CanvasScale()
	return Vec{
		pt.X*scale + float64(g.canvasArea.Min.X),
		pt.Y*scale + float64(g.canvasArea.Min.Y),
	}
}

func (g *Gui) ScreenToPlayback(pt image.Point) image.Point {
	return pt.Sub(g.playbackArea.Min)
}
