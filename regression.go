package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

// StateBytes is an array of bytes that represent the current state of the
// World, as perceived by the outside. If two Worlds have the same StateBytes()
// they are considered "the same", even though they may be implemented
// differently.
//
// What the outside perceives is what gets drawn: the tilt, the particles and
// the sprites with everything that affects how they look. The random
// generator and the bookkeeping fields are left out on purpose. If they drift
// but nothing visible changes, the World is still "the same".
func (w *World) StateBytes() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, w.Bounds)
	Serialize(buf, w.Tilt)

	Serialize(buf, w.Burst.Active)
	Serialize(buf, w.Burst.Alpha)
	Serialize(buf, int64(w.Burst.Particles.Count()))
	for _, p := range w.Burst.Particles.All() {
		Serialize(buf, p.Pos)
		Serialize(buf, p.Size)
		Serialize(buf, p.Color)
	}

	Serialize(buf, int64(w.Swarm.Sprites.Count()))
	for _, s := range w.Swarm.Sprites.All() {
		Serialize(buf, s.Pos)
		Serialize(buf, s.Size)
		Serialize(buf, s.Rotation)
		Serialize(buf, s.Alpha)
	}
	return buf.Bytes()
}

// RegressionId returns a string which uniquely identifies the playthrough.
// It is a hash of all the states of the World. It is meant to check that a
// refactoring of the World didn't change what the user sees:
// - Compute the RegressionId for a playthrough.
// - Refactor the implementation of the World.
// - Compute the RegressionId for the same playthrough.
// - If the RegressionId changed, the refactoring changed the behavior.
func RegressionId(p *Playthrough) string {
	hash := sha256.New()

	w := NewWorldFromPlaythrough(p)
	hash.Write(w.StateBytes())

	for i := range p.History {
		w.Step(p.History[i])
		hash.Write(w.StateBytes())
	}

	return hex.EncodeToString(hash.Sum(nil))
}
