package main

import (
	"fmt"
	"strings"
)

// SimulationVersion identifies the behavior of World. If the same Playthrough
// would produce a different sequence of World states, SimulationVersion must
// change.
const SimulationVersion = 1

// FrameMs is the duration of one frame at the cadence the World was tuned for.
// Velocities are expressed in pixels per frame of this duration.
const FrameMs = 1000.0 / 60.0

// MaxFrameDelta stops a long pause (a hidden browser tab, a breakpoint) from
// turning into one giant step.
const MaxFrameDelta = 4.0

type Variant int64

const (
	BurstVariant Variant = iota
	SwarmVariant
)

func (v Variant) String() string {
	switch v {
	case BurstVariant:
		return "burst"
	case SwarmVariant:
		return "swarm"
	default:
		return fmt.Sprintf("Variant(%d)", int64(v))
	}
}

func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "burst", "doge":
		return BurstVariant, nil
	case "swarm", "spiders":
		return SwarmVariant, nil
	default:
		return BurstVariant, fmt.Errorf("invalid variant: %q", s)
	}
}

// PlayerInput is everything that reaches the World from the outside during a
// frame. It has a fixed size so that a Playthrough can store it as raw bytes.
type PlayerInput struct {
	NowMs        int64
	CanvasSize   float64
	Pointer      Vec
	PointerMoved bool
	JustPressed  bool
	TouchStarted bool
	TouchPos     Vec
	Shaken       bool
	Orientation  Orientation
}

func (p *PlayerInput) EventOccurred() bool {
	return p.JustPressed || p.TouchStarted || p.Shaken
}

// World is the whole state of the sketch. Nothing outside of it influences
// what happens except the PlayerInput given to Step, so a World can be
// replayed exactly from its seed and the list of inputs.
type World struct {
	Variant              Variant
	Bounds               Bounds
	Rand                 Rand
	Burst                Burst
	Swarm                Swarm
	Tilt                 float64 // degrees
	Pointer              Vec
	PointerMoved         bool
	FrameRateIndependent bool
	Started              bool
	LastNowMs            int64
}

func NewWorld(seed int64, variant Variant) (w World) {
	w.Variant = variant
	w.Rand = NewRand(seed)
	w.Burst = NewBurst()
	w.Swarm = NewSwarm()
	return
}

// FrameDelta is how many frames passed since the last Step. Unless the World
// is frame rate independent, each Step is exactly one frame, no matter how
// much time actually passed.
func (w *World) FrameDelta(now int64) float64 {
	if !w.FrameRateIndependent || !w.Started {
		return 1
	}
	return Clamp(float64(now-w.LastNowMs)/FrameMs, 0, MaxFrameDelta)
}

func (w *World) Step(input PlayerInput) {
	now := input.NowMs
	if input.CanvasSize > 0 {
		w.Bounds = Bounds{Width: input.CanvasSize, Height: input.CanvasSize}
	}
	dt := w.FrameDelta(now)

	if input.PointerMoved {
		w.Pointer = input.Pointer
		w.PointerMoved = true
	}
	w.Tilt = TiltAngle(input.Orientation, w.Pointer, w.PointerMoved, w.Bounds.Width)

	if !w.Started {
		w.Started = true
		if w.Variant == SwarmVariant {
			w.Swarm.Populate(now, w.Bounds, InitialSprites, &w.Rand)
		}
	}

	switch w.Variant {
	case BurstVariant:
		if input.EventOccurred() {
			w.Burst.Trigger(now, &w.Rand)
		}
		w.Burst.Step(now, dt)
	case SwarmVariant:
		if input.JustPressed {
			w.Swarm.SpawnAt(now, input.Pointer, &w.Rand)
		}
		if input.TouchStarted {
			w.Swarm.SpawnAt(now, input.TouchPos, &w.Rand)
		}
		if input.Shaken {
			w.Swarm.Shake(now, w.Bounds, &w.Rand)
		}
		w.Swarm.Step(now, dt, w.Bounds, &w.Rand)
	default:
		panic(fmt.Errorf("unhandled variant: %v", w.Variant))
	}

	w.LastNowMs = now
}

// EntityCount is the number of entities currently alive, for the diagnostics
// display.
func (w *World) EntityCount() int {
	if w.Variant == SwarmVariant {
		return w.Swarm.Sprites.Count()
	}
	return w.Burst.Particles.Count()
}
