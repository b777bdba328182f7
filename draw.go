package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"image/color"
	"math"
)

var overlayColor = color.NRGBA{R: 0, G: 0, B: 0, A: 140}
var overlayTextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var diagnosticsColor = color.NRGBA{R: 0, G: 100, B: 0, A: 255}
var playbackBackgroundColor = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
var playbackBarColor = color.NRGBA{R: 150, G: 150, B: 150, A: 255}
var playbackCursorColor = color.NRGBA{R: 251, G: 150, B: 32, A: 255}
var virtualPointerColor = color.NRGBA{R: 255, G: 0, B: 0, A: 200}

func (g *Gui) Draw(screen *ebiten.Image) {
	defer g.HandlePanic()

	screen.Fill(g.marginColor)

	canvas := SubImage(screen, g.canvasArea.ImageRect())
	canvas.Fill(g.backgroundColor)

	switch g.world.Variant {
	case BurstVariant:
		g.DrawDoge(canvas)
	case SwarmVariant:
		g.DrawSwarm(canvas)
	default:
		panic("unhandled default case")
	}

	if g.motion.OverlayVisible() {
		g.DrawMotionOverlay(canvas)
	}

	if g.ShowDiagnostics {
		g.DrawText(canvas, fmt.Sprintf("entities: %d  TPS: %.0f",
			g.world.EntityCount(), ebiten.ActualTPS()),
			false, false, diagnosticsColor)
	}

	if g.state == Playback {
		g.DrawPlaybackControls(SubImage(screen, g.playbackArea.ImageRect()))
		DrawCircle(screen, g.CanvasToScreen(g.virtualPointer), 12,
			virtualPointerColor)
	}
}

// DrawDoge draws the tilted image and, on top of it, the burst. The burst
// starts from the center of the image and tilts along with it.
func (g *Gui) DrawDoge(canvas *ebiten.Image) {
	side := float64(canvas.Bounds().Dx())
	center := Bounds{Width: side, Height: side}.Center()
	angle := Radians(g.world.Tilt)

	// The larger side of the image takes ImageScale of the canvas.
	imgSize := g.imgDoge.Bounds().Size()
	fit := side * g.ImageScale / float64(max(imgSize.X, imgSize.Y))
	DrawSpriteCentered(canvas, g.imgDoge, center,
		float64(imgSize.X)*fit, float64(imgSize.Y)*fit, angle, 255, nil)

	b := &g.world.Burst
	if !b.Active {
		return
	}
	scale := g.CanvasScale()
	for _, p := range b.Particles.All() {
		r, gr, bl := p.Color.RGB255()
		c := WithAlpha(color.NRGBA{R: r, G: gr, B: bl}, b.Alpha)
		pos := center.Plus(p.Pos.Rotated(angle).Times(scale))
		DrawCircle(canvas, pos, p.DrawSize()*scale, c)
	}
}

func (g *Gui) DrawSwarm(canvas *ebiten.Image) {
	scale := g.CanvasScale()
	now := g.world.LastNowMs
	for _, s := range g.world.Swarm.Sprites.All() {
		img := g.animSpider.ImgAt(s.Age(now))
		size := s.Size * scale
		DrawSpriteCentered(canvas, img, s.Pos.Times(scale), size, size,
			s.Rotation, s.Alpha, g.spriteTint)
	}
}

// DrawMotionOverlay darkens the canvas and asks the user to tap. The tap
// itself is handled by the platform code, it has to happen inside the
// browser's event handler.
func (g *Gui) DrawMotionOverlay(canvas *ebiten.Image) {
	FillRect(canvas, NewRectangleI(0, 0, canvas.Bounds().Dx(),
		canvas.Bounds().Dy()), overlayColor)
	g.DrawText(canvas, g.motion.Label(), true, true, overlayTextColor)
}

func (g *Gui) DrawPlaybackControls(area *ebiten.Image) {
	area.Fill(playbackBackgroundColor)

	// Play/pause button.
	label := "||"
	if g.playbackPaused {
		label = ">"
	}
	g.DrawText(SubImage(area, g.buttonPlaybackPlay.ImageRect()), label, true,
		true, color.Black)

	// Play bar.
	bar := g.buttonPlaybackBar
	FillRect(area, bar, playbackBarColor)

	// Playback bar cursor.
	nFrames := max(int64(len(g.playthrough.History)), 1)
	factor := float64(g.frameIdx) / float64(nFrames)
	cursorX := bar.Min.X + int(math.Round(factor*float64(bar.Width())))
	FillRect(area, NewRectangleI(cursorX-3, bar.Min.Y, 6, bar.Height()),
		playbackCursorColor)
}

func (g *Gui) DrawText(screen *ebiten.Image, message string, centerX bool, centerY bool, color color.Color) {
	// Remember that there is an origin point for the text.
	// That origin point is kind of the lower-left corner of the bounds of the
	// text. Kind of. Read the BoundString docs to understand.
	// This means that if you do text.Draw at (x, y), most of the text will
	// appear above y, and a little bit under y. If you want all the pixels in
	// your text to be above y, you should do text.Draw at
	// (x, y - text.BoundString().Max.Y).
	textSize := text.BoundString(g.defaultFont, message)
	var offsetX int
	if centerX {
		offsetX = (screen.Bounds().Dx() - textSize.Dx()) / 2
	} else {
		offsetX = 0
	}

	var offsetY int
	if centerY {
		offsetY = (screen.Bounds().Dy() - textSize.Dy()) / 2
	} else {
		offsetY = 0
	}

	textX := screen.Bounds().Min.X + offsetX
	textY := screen.Bounds().Max.Y - offsetY - textSize.Max.Y
	text.Draw(screen, message, g.defaultFont, textX, textY, color)
}
