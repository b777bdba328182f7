package main

import (
	"fmt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"image"
	"log"
	"slices"
	"time"
)

// RecordEveryNFrames limits how often the recording is written to disk when
// nothing happens. Frames with an event are always written right away.
const RecordEveryNFrames = 60

func (g *Gui) Update() error {
	defer g.HandlePanic()

	g.pressedKeys = inpututil.AppendPressedKeys(g.pressedKeys[:0])
	g.justPressedKeys = inpututil.AppendJustPressedKeys(g.justPressedKeys[:0])
	g.justPressedTouches = inpututil.AppendJustPressedTouchIDs(g.justPressedTouches[:0])

	if g.devModeEnabled && (g.folderWatcher1.FolderContentsChanged() ||
		g.folderWatcher2.FolderContentsChanged()) {
		g.LoadGuiData()
	}

	switch g.state {
	case PlayScreen:
		g.UpdatePlay()
	case Playback:
		g.UpdatePlayback()
	default:
		panic("unhandled default case")
	}

	return nil
}

// CollectInput gathers everything that happened since the last frame into a
// PlayerInput.
func (g *Gui) CollectInput() (input PlayerInput) {
	input.NowMs = time.Since(g.startTime).Milliseconds()
	input.CanvasSize = float64(g.canvasArea.Width())

	x, y := ebiten.CursorPosition()
	cursor := image.Pt(x, y)
	input.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	g.pointer.Cursor(cursor, g.ScreenToCanvas(cursor), input.JustPressed)

	// Only the first new touch counts. Two fingers landing in the same frame
	// are one tap as far as the sketch is concerned.
	if len(g.justPressedTouches) > 0 {
		tx, ty := ebiten.TouchPosition(g.justPressedTouches[0])
		input.TouchStarted = true
		input.TouchPos = g.ScreenToCanvas(image.Pt(tx, ty))
		g.pointer.Touch(input.TouchPos)
	}
	input.Pointer = g.pointer.Pos
	input.PointerMoved = g.pointer.Moved

	// Sensor readings only count once the user allowed them. Before that, the
	// pointer drives the tilt.
	shaken := g.sensors.TakeShake()
	if g.motion.Granted() {
		input.Shaken = shaken
		input.Orientation = g.sensors.Orientation()
	}
	// Desktops don't shake, S does it for them.
	if g.JustPressed(ebiten.KeyS) {
		input.Shaken = true
	}
	return
}

func (g *Gui) UpdatePlay() {
	input := g.CollectInput()
	// IMPORTANT: save the input before stepping the World. If a bug in the
	// World causes it to crash, we want to save the input that caused the
	// bug before the program crashes.
	g.Record(input)

	g.virtualPointer = input.Pointer
	g.world.Step(input)
	g.frameIdx++
}

// Record saves the input in the playthrough and writes the playthrough to
// disk if recording is on. Platforms that can't write files don't keep a
// history at all, nothing would ever read it.
func (g *Gui) Record(input PlayerInput) {
	if !g.keepHistory {
		return
	}
	g.playthrough.History = append(g.playthrough.History, input)
	if g.RecordToFile && (input.EventOccurred() || g.frameIdx%RecordEveryNFrames == 0) {
		WriteFile(g.RecordingFile, g.playthrough.Serialize())
	}
}

// PointerTracker remembers where the user last pointed, with the mouse or
// with a finger. Touches don't move the mouse cursor, so the cursor only
// counts when it actually moved or was clicked.
type PointerTracker struct {
	lastCursor image.Point
	Pos        Vec
	Moved      bool
}

// Cursor takes the cursor position in screen pixels and the same position on
// the canvas.
func (p *PointerTracker) Cursor(cursor image.Point, pos Vec, pressed bool) {
	if cursor == p.lastCursor && !pressed {
		return
	}
	p.lastCursor = cursor
	p.Pos = pos
	p.Moved = true
}

func (p *PointerTracker) Touch(pos Vec) {
	p.Pos = pos
	p.Moved = true
}

func (g *Gui) Pressed(key ebiten.Key) bool {
	return slices.Contains(g.pressedKeys, key)
}

func (g *Gui) JustPressed(key ebiten.Key) bool {
	return slices.Contains(g.justPressedKeys, key)
}

func (g *Gui) JustClicked(button Rectangle) bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return button.ContainsPt(g.ScreenToPlayback(image.Pt(x, y)))
}

func (g *Gui) LeftClickPressedOn(button Rectangle) bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return button.ContainsPt(g.ScreenToPlayback(image.Pt(x, y)))
}

func (g *Gui) UpdatePlayback() {
	nFrames := int64(len(g.playthrough.History))
	if nFrames == 0 {
		return
	}

	userRequestedPlaybackPause := g.JustPressed(ebiten.KeySpace) ||
		g.JustClicked(g.buttonPlaybackPlay)
	if userRequestedPlaybackPause {
		g.playbackPaused = !g.playbackPaused
	}

	// Choose target frame.
	targetFrameIdx := g.frameIdx

	// Compute the target frame index based on where on the play bar the user
	// clicked.
	if g.LeftClickPressedOn(g.buttonPlaybackBar) {
		x, _ := ebiten.CursorPosition()
		dx := int64(g.ScreenToPlayback(image.Pt(x, 0)).X - g.buttonPlaybackBar.Min.X)
		targetFrameIdx = dx * nFrames / int64(g.buttonPlaybackBar.Width())
	}

	if g.Pressed(ebiten.KeyLeft) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx -= g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyRight) && g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipShiftArrow
	}

	if g.Pressed(ebiten.KeyLeft) && !g.Pressed(ebiten.KeyShift) {
		if g.playbackPaused {
			targetFrameIdx -= g.FrameSkipArrow
		} else {
			targetFrameIdx -= g.FrameSkipArrow * 2
		}
	}

	if g.Pressed(ebiten.KeyRight) && !g.Pressed(ebiten.KeyShift) {
		targetFrameIdx += g.FrameSkipArrow
	}

	if g.JustPressed(ebiten.KeyH) {
		log.Printf("regression id: %s", RegressionId(&g.playthrough))
	}

	// frameIdx == nFrames means the whole playthrough was played.
	targetFrameIdx = max(0, min(targetFrameIdx, nFrames))

	if targetFrameIdx != g.frameIdx {
		// Rewind. The World only moves forward, so going back means replaying
		// everything from the start.
		g.world = NewWorldFromPlaythrough(&g.playthrough)
		for i := int64(0); i < targetFrameIdx; i++ {
			g.world.Step(g.playthrough.History[i])
		}
		g.frameIdx = targetFrameIdx
	}

	if !g.playbackPaused && g.frameIdx < nFrames {
		input := g.playthrough.History[g.frameIdx]
		g.virtualPointer = input.Pointer
		g.world.Step(input)
		g.frameIdx++
	}
}

// HandlePanic saves what the user did before re-panicking, so the crash can
// be replayed. It must be deferred directly by the functions ebiten calls.
func (g *Gui) HandlePanic() {
	r := recover()
	if r == nil {
		return
	}
	if g.state == PlayScreen && len(g.playthrough.History) > 0 {
		name := fmt.Sprintf("crash-%s.shake", g.playthrough.Id)
		// Don't let a failure to write hide the original panic.
		CheckCrashes = false
		WriteFile(name, g.playthrough.Serialize())
		log.Printf("crashed, playthrough saved to %s", name)
	}
	panic(r)
}
