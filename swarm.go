package main

import (
	"math"
)

const MaxSprites = 30
const InitialSprites = 8

// SpriteMargin is how far outside the canvas a sprite may wander before it is
// removed.
const SpriteMargin = 100

// ShakeCooldown is the minimum time, in milliseconds, between two shakes that
// have an effect. The motion sensor reports a burst of shakes for a single
// physical shake and without this the swarm fills up instantly.
const ShakeCooldown = 300

const SpawnJitter = 30.0
const SpawnMinCount = 1
const SpawnMaxCount = 3
const SpriteMinLifespan = 5000 // milliseconds
const SpriteMaxLifespan = 10000
const SpriteFadeStart = 0.8 // fraction of the lifespan
const SpriteMinSize = 40.0
const SpriteMaxSize = 64.0
const SpriteMaxSpeed = 2.0
const SpriteMaxRotationSpeed = 0.05
const WiggleMinSpeed = 0.05
const WiggleMaxSpeed = 0.15
const WiggleMinAmplitude = 0.5
const WiggleMaxAmplitude = 1.5
const WiggleScale = 0.05
const BounceNoise = 0.5
const ScatterSpeed = 4.0
const ScatterRotationSpeed = 0.1

// Sprite is one spider. Its position is in canvas coordinates, (0, 0) being
// the top-left corner of the canvas.
type Sprite struct {
	Pos             Vec
	Vel             Vec
	Size            float64
	Rotation        float64 // radians
	RotationSpeed   float64
	WiggleOffset    float64
	WiggleSpeed     float64
	WiggleAmplitude float64
	BirthTime       int64
	LifespanMs      int64
	Alpha           float64
}

func NewSprite(now int64, pos Vec, r *Rand) *Sprite {
	return &Sprite{
		Pos:             pos,
		Vel:             r.RJitter(SpriteMaxSpeed),
		Size:            r.RFloat(SpriteMinSize, SpriteMaxSize),
		Rotation:        r.RFloat(0, 2*math.Pi),
		RotationSpeed:   r.RFloat(-SpriteMaxRotationSpeed, SpriteMaxRotationSpeed),
		WiggleOffset:    r.RFloat(0, 2*math.Pi),
		WiggleSpeed:     r.RFloat(WiggleMinSpeed, WiggleMaxSpeed),
		WiggleAmplitude: r.RFloat(WiggleMinAmplitude, WiggleMaxAmplitude),
		BirthTime:       now,
		LifespanMs:      r.RInt(SpriteMinLifespan, SpriteMaxLifespan-1),
		Alpha:           255,
	}
}

func (s *Sprite) Age(now int64) int64 {
	return now - s.BirthTime
}

// AlphaAt is 255 for the first 80% of the sprite's life and then goes down
// linearly to 0, reached exactly when the sprite expires.
func (s *Sprite) AlphaAt(now int64) float64 {
	fadeStart := float64(s.LifespanMs) * SpriteFadeStart
	age := float64(s.Age(now))
	if age < fadeStart {
		return 255
	}
	return LinearFade(age-fadeStart, float64(s.LifespanMs)-fadeStart)
}

// Step moves the sprite forward by dt frames.
// When the sprite touches an edge of the canvas, the velocity on that axis is
// reversed with a bit of noise. The position is not pulled back inside, so
// a sprite can stick out of the canvas for a frame before it comes back.
func (s *Sprite) Step(now int64, dt float64, b Bounds, r *Rand) {
	s.Pos.Add(s.Vel.Times(dt))
	s.Rotation += s.RotationSpeed * dt

	wiggle := math.Sin(s.WiggleOffset) * s.WiggleAmplitude * WiggleScale * dt
	s.Vel.Add(Vec{wiggle, wiggle})
	s.WiggleOffset += s.WiggleSpeed * dt

	if s.Pos.X < 0 || s.Pos.X > b.Width {
		s.Vel.X = -s.Vel.X + r.RFloat(-BounceNoise, BounceNoise)
	}
	if s.Pos.Y < 0 || s.Pos.Y > b.Height {
		s.Vel.Y = -s.Vel.Y + r.RFloat(-BounceNoise, BounceNoise)
	}

	s.Alpha = s.AlphaAt(now)
}

func (s *Sprite) Expired(now int64, b Bounds) bool {
	return s.Age(now) >= s.LifespanMs || b.Outside(s.Pos, SpriteMargin)
}

// Swarm is the population of spiders. It never holds more than MaxSprites.
type Swarm struct {
	Sprites Pool[*Sprite]
	// LastShakeAt is only meaningful if Shaken is true.
	Shaken      bool
	LastShakeAt int64
}

func NewSwarm() Swarm {
	return Swarm{Sprites: NewPool[*Sprite](MaxSprites)}
}

// SpawnAt adds between 1 and 3 sprites around target. Sprites that don't fit
// in the swarm are dropped. Returns how many sprites were added.
func (s *Swarm) SpawnAt(now int64, target Vec, r *Rand) (added int) {
	n := r.RInt(SpawnMinCount, SpawnMaxCount)
	for range n {
		pos := target.Plus(r.RJitter(SpawnJitter))
		if s.Sprites.Add(NewSprite(now, pos, r)) {
			added++
		}
	}
	return
}

// Populate adds n sprites at random places on the canvas.
func (s *Swarm) Populate(now int64, b Bounds, n int, r *Rand) (added int) {
	for range n {
		if s.Sprites.Add(NewSprite(now, RPos(b, r), r)) {
			added++
		}
	}
	return
}

// Shake scatters the sprites that are alive and spawns a few new ones at a
// random place. Shakes that come less than ShakeCooldown after the last
// accepted shake are ignored completely. Returns true if the shake was
// accepted.
func (s *Swarm) Shake(now int64, b Bounds, r *Rand) bool {
	if s.Shaken && now-s.LastShakeAt < ShakeCooldown {
		return false
	}
	s.Shaken = true
	s.LastShakeAt = now

	for _, sp := range s.Sprites.All() {
		sp.Vel.Add(r.RJitter(ScatterSpeed))
		sp.RotationSpeed += r.RFloat(-ScatterRotationSpeed, ScatterRotationSpeed)
	}
	s.SpawnAt(now, RPos(b, r), r)
	return true
}

// Step moves every sprite and then removes the ones that are too old or
// too far away from the canvas.
func (s *Swarm) Step(now int64, dt float64, b Bounds, r *Rand) {
	for _, sp := range s.Sprites.All() {
		sp.Step(now, dt, b, r)
	}
	s.Sprites.RemoveWhere(func(sp *Sprite) bool {
		return sp.Expired(now, b)
	})
}

// RPos returns a random position on the canvas.
func RPos(b Bounds, r *Rand) Vec {
	return Vec{r.RFloat(0, b.Width), r.RFloat(0, b.Height)}
}
