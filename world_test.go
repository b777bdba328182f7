package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"slices"
	"testing"
)

func clonePlaythrough(p *Playthrough) *Playthrough {
	clone := *p
	clone.History = slices.Clone(p.History)
	return &clone
}

// RandomPlaythrough builds a session where the user taps, touches and shakes
// at random moments, with a frame every 16 ms.
func RandomPlaythrough(variant Variant, seed int64, nFrames int) Playthrough {
	p := NewPlaythrough(variant, seed)
	r := NewRand(seed + 1)
	b := Bounds{Width: 600, Height: 600}
	for i := range nFrames {
		var in PlayerInput
		in.NowMs = int64(i) * 16
		in.CanvasSize = b.Width
		in.Pointer = RPos(b, &r)
		in.PointerMoved = i > 10
		in.JustPressed = r.RInt(0, 30) == 0
		in.TouchStarted = r.RInt(0, 60) == 0
		in.TouchPos = RPos(b, &r)
		in.Shaken = r.RInt(0, 40) == 0
		if i > nFrames/2 {
			in.Orientation = Orientation{Valid: true, Angle: r.RFloat(-90, 90)}
		}
		p.History = append(p.History, in)
	}
	return p
}

func TestWorld_BurstOnTap(t *testing.T) {
	w := NewWorld(0, BurstVariant)
	w.Step(PlayerInput{NowMs: 0, CanvasSize: 500})
	assert.False(t, w.Burst.Active)
	assert.Equal(t, 0, w.EntityCount())

	w.Step(PlayerInput{NowMs: 16, CanvasSize: 500, JustPressed: true})
	assert.True(t, w.Burst.Active)
	assert.Equal(t, ParticleCount, w.EntityCount())

	w.Step(PlayerInput{NowMs: 16 + BurstDuration, CanvasSize: 500})
	assert.True(t, w.Burst.Active)

	w.Step(PlayerInput{NowMs: 16 + BurstDuration + 1, CanvasSize: 500})
	assert.False(t, w.Burst.Active)
	assert.Equal(t, 0, w.EntityCount())
}

func TestWorld_BurstOnTouchAndShake(t *testing.T) {
	for _, in := range []PlayerInput{
		{NowMs: 100, CanvasSize: 500, TouchStarted: true, TouchPos: Vec{1, 1}},
		{NowMs: 100, CanvasSize: 500, Shaken: true},
	} {
		w := NewWorld(0, BurstVariant)
		w.Step(in)
		assert.True(t, w.Burst.Active)
		assert.Equal(t, int64(100), w.Burst.StartedAt)
	}
}

func TestWorld_SwarmPopulatesOnFirstStep(t *testing.T) {
	w := NewWorld(4, SwarmVariant)
	w.Step(PlayerInput{NowMs: 0, CanvasSize: 500})
	assert.Equal(t, InitialSprites, w.EntityCount())

	w.Step(PlayerInput{NowMs: 16, CanvasSize: 500})
	assert.Equal(t, InitialSprites, w.EntityCount())
}

func TestWorld_SwarmSpawnsAtTouch(t *testing.T) {
	w := NewWorld(4, SwarmVariant)
	w.Step(PlayerInput{NowMs: 0, CanvasSize: 500})
	touch := Vec{400, 50}
	w.Step(PlayerInput{NowMs: 16, CanvasSize: 500, TouchStarted: true, TouchPos: touch})

	spawned := w.Swarm.Sprites.All()[InitialSprites:]
	require.NotEmpty(t, spawned)
	for _, sp := range spawned {
		// Jitter plus one frame of movement.
		assert.InDelta(t, touch.X, sp.Pos.X, SpawnJitter+2*SpriteMaxSpeed)
		assert.InDelta(t, touch.Y, sp.Pos.Y, SpawnJitter+2*SpriteMaxSpeed)
	}
}

func TestWorld_SwarmNeverExceedsCapacity(t *testing.T) {
	p := RandomPlaythrough(SwarmVariant, 11, 3000)
	w := NewWorldFromPlaythrough(&p)
	for i := range p.History {
		p.History[i].JustPressed = true
		w.Step(p.History[i])
		require.LessOrEqual(t, w.EntityCount(), MaxSprites)
	}
}

func TestWorld_StepWithoutEventsIsNoOp(t *testing.T) {
	w := NewWorld(1, BurstVariant)
	w.Step(PlayerInput{NowMs: 0, CanvasSize: 500})
	before := w.StateBytes()
	for i := range int64(100) {
		w.Step(PlayerInput{NowMs: i * 16, CanvasSize: 500})
	}
	assert.Equal(t, before, w.StateBytes())
}

func TestWorld_TiltFollowsPointer(t *testing.T) {
	w := NewWorld(1, BurstVariant)
	w.Step(PlayerInput{CanvasSize: 400})
	assert.Equal(t, 0.0, w.Tilt)

	w.Step(PlayerInput{CanvasSize: 400, Pointer: Vec{400, 0}, PointerMoved: true})
	assert.InDelta(t, 45, w.Tilt, 1e-9)

	// The last known pointer position is kept.
	w.Step(PlayerInput{CanvasSize: 400})
	assert.InDelta(t, 45, w.Tilt, 1e-9)

	w.Step(PlayerInput{CanvasSize: 400, Orientation: Orientation{Valid: true, Angle: -12}})
	assert.Equal(t, -12.0, w.Tilt)
}

func TestWorld_TouchTiltSurvivesQuietFrames(t *testing.T) {
	// A phone: touches never move the mouse cursor, it stays at (0, 0) on
	// the screen, which is left of the canvas.
	var g Gui
	g.CanvasFraction = 0.8
	g.Layout(400, 800)
	require.Equal(t, 40, g.canvasArea.Min.X)
	cursor := image.Pt(0, 0)

	w := NewWorld(1, BurstVariant)
	step := func(touch *Vec) {
		in := PlayerInput{CanvasSize: float64(g.canvasArea.Width())}
		g.pointer.Cursor(cursor, g.ScreenToCanvas(cursor), false)
		if touch != nil {
			in.TouchStarted = true
			in.TouchPos = *touch
			g.pointer.Touch(*touch)
		}
		in.Pointer = g.pointer.Pos
		in.PointerMoved = g.pointer.Moved
		w.Step(in)
	}

	step(nil)
	assert.Equal(t, 0.0, w.Tilt)

	touch := Vec{240, 100}
	step(&touch)
	touchTilt := Remap(240, 0, 320, -MaxPointerTilt, MaxPointerTilt)
	assert.InDelta(t, touchTilt, w.Tilt, 1e-9)

	for range 10 {
		step(nil)
		assert.InDelta(t, touchTilt, w.Tilt, 1e-9)
	}
}

func TestPointerTracker_CursorOnlyCountsWhenItMoves(t *testing.T) {
	var p PointerTracker
	p.Cursor(image.Pt(0, 0), Vec{-40, 0}, false)
	assert.False(t, p.Moved)

	p.Touch(Vec{100, 50})
	p.Cursor(image.Pt(0, 0), Vec{-40, 0}, false)
	assert.Equal(t, Vec{100, 50}, p.Pos)

	p.Cursor(image.Pt(60, 10), Vec{20, 10}, false)
	assert.Equal(t, Vec{20, 10}, p.Pos)

	// A click counts even if the cursor stayed in place.
	p.Touch(Vec{5, 5})
	p.Cursor(image.Pt(60, 10), Vec{20, 10}, true)
	assert.Equal(t, Vec{20, 10}, p.Pos)
	assert.True(t, p.Moved)
}

func TestGui_RecordKeepsHistoryOnlyWhenItCanBeWritten(t *testing.T) {
	var g Gui
	g.playthrough = NewPlaythrough(SwarmVariant, 0)
	for i := range int64(100) {
		g.Record(PlayerInput{NowMs: i * 16})
	}
	assert.Empty(t, g.playthrough.History)

	g.keepHistory = true
	for i := range int64(100) {
		g.Record(PlayerInput{NowMs: i * 16})
	}
	assert.Len(t, g.playthrough.History, 100)
}

func TestWorld_FrameDelta(t *testing.T) {
	w := NewWorld(0, BurstVariant)
	w.Step(PlayerInput{NowMs: 0, CanvasSize: 500})
	assert.Equal(t, 1.0, w.FrameDelta(1000))

	w.FrameRateIndependent = true
	assert.InDelta(t, 2, w.FrameDelta(33), 0.05)
	assert.Equal(t, MaxFrameDelta, w.FrameDelta(100000))
	assert.Equal(t, 0.0, w.FrameDelta(-5))
}

func TestWorld_SamePlaythroughSameRegressionId(t *testing.T) {
	for _, variant := range []Variant{BurstVariant, SwarmVariant} {
		p := RandomPlaythrough(variant, 7, 2000)
		id1 := RegressionId(&p)
		id2 := RegressionId(clonePlaythrough(&p))
		assert.Equal(t, id1, id2)

		other := RandomPlaythrough(variant, 8, 2000)
		assert.NotEqual(t, id1, RegressionId(&other))
	}
}

func TestPlaythrough_SerializeDeserialize(t *testing.T) {
	p := RandomPlaythrough(SwarmVariant, 3, 500)
	p.FrameRateIndependent = true

	p2 := DeserializePlaythrough(p.Serialize())
	assert.Equal(t, p, p2)
	assert.Equal(t, RegressionId(&p), RegressionId(&p2))
}

func TestParseVariant(t *testing.T) {
	for s, expected := range map[string]Variant{
		"burst":   BurstVariant,
		"doge":    BurstVariant,
		"Swarm":   SwarmVariant,
		"spiders": SwarmVariant,
	} {
		v, err := ParseVariant(s)
		require.NoError(t, err)
		assert.Equal(t, expected, v)
	}
	_, err := ParseVariant("bats")
	assert.Error(t, err)
}

func BenchmarkRegressionId(b *testing.B) {
	p := RandomPlaythrough(SwarmVariant, 1, 3000)
	for b.Loop() {
		RegressionId(&p)
	}
}
