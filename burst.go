package main

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"math"
)

const BurstDuration = 600 // milliseconds
const ParticleCount = 24
const ParticleMinSpeed = 4.0
const ParticleMaxSpeed = 9.0
const ParticleMinSize = 12.0
const ParticleMaxSize = 26.0
const ParticleDamping = 0.95
const ParticleShrink = 0.98

// ParticleMinDrawSize keeps shrunken particles visible.
const ParticleMinDrawSize = 2.0

var BurstPalette = []colorful.Color{
	colorful.MustParseHex("#ffc40c"),
	colorful.MustParseHex("#ff6f00"),
	colorful.MustParseHex("#cc33ff"),
	colorful.MustParseHex("#3399ff"),
}

// Particle is one dot of a burst. Its position is relative to the center of
// the canvas, where every burst starts.
type Particle struct {
	Pos   Vec
	Vel   Vec
	Size  float64
	Color colorful.Color
}

func (p *Particle) DrawSize() float64 {
	return math.Max(ParticleMinDrawSize, p.Size)
}

// Burst is a short-lived explosion of particles. It is all or nothing: every
// particle is created at the same time, they all fade together and they are all
// removed together once BurstDuration has passed.
type Burst struct {
	Particles Pool[*Particle]
	Active    bool
	StartedAt int64
	// Alpha is shared by all particles. It depends only on how much time
	// passed since the burst started.
	Alpha float64
}

func NewBurst() Burst {
	return Burst{Particles: NewPool[*Particle](0)}
}

// Trigger starts a new burst. Any burst that is still running is thrown away,
// bursts don't accumulate.
func (b *Burst) Trigger(now int64, r *Rand) {
	b.Active = true
	b.StartedAt = now
	b.Alpha = 255
	b.Particles.Clear()

	for range ParticleCount {
		speed := r.RFloat(ParticleMinSpeed, ParticleMaxSpeed)
		b.Particles.Add(&Particle{
			Vel:   r.RUnit().Times(speed),
			Size:  r.RFloat(ParticleMinSize, ParticleMaxSize),
			Color: RElem(r, BurstPalette),
		})
	}
}

// Step moves the burst forward by dt frames and ends it if it has run for
// longer than BurstDuration.
func (b *Burst) Step(now int64, dt float64) {
	if !b.Active {
		return
	}

	elapsed := now - b.StartedAt
	if elapsed > BurstDuration {
		b.Active = false
		b.Alpha = 0
		b.Particles.Clear()
		return
	}
	b.Alpha = LinearFade(float64(elapsed), BurstDuration)

	damping := math.Pow(ParticleDamping, dt)
	shrink := math.Pow(ParticleShrink, dt)
	for _, p := range b.Particles.All() {
		p.Pos.Add(p.Vel.Times(dt))
		p.Vel = p.Vel.Times(damping)
		p.Size *= shrink
	}
}

// LinearFade returns the opacity, in [0, 255], of something that fades out
// linearly over duration, elapsed time units after the fade started.
func LinearFade(elapsed, duration float64) float64 {
	alpha, _ := gween.New(255, 0, float32(duration), ease.Linear).
		Set(float32(elapsed))
	return Clamp(float64(alpha), 0, 255)
}
