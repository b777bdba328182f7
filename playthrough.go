package main

import (
	"bytes"
	"fmt"
	"github.com/google/uuid"
)

// InputVersion is the version of the byte representation of the Playthrough
// structure. If the Playthrough structure changes such that serializing it
// produces a different array of bytes, then InputVersion must change as well.
// An executable can replay any playthrough with the same InputVersion and
// SimulationVersion as the ones in the executable.
const InputVersion = 1

// Playthrough represents all the input sent to a World during a session.
// Given this input and a compatible simulation, the same session plays out
// again, frame by frame.
type Playthrough struct {
	InputVersion         int64
	SimulationVersion    int64
	ReleaseVersion       int64
	Variant              Variant
	FrameRateIndependent bool
	Id                   uuid.UUID
	Seed                 int64
	History              []PlayerInput
}

func NewPlaythrough(variant Variant, seed int64) (p Playthrough) {
	p.InputVersion = InputVersion
	p.SimulationVersion = SimulationVersion
	p.ReleaseVersion = ReleaseVersion
	p.Variant = variant
	p.Id = uuid.New()
	p.Seed = seed
	return
}

func NewWorldFromPlaythrough(p *Playthrough) World {
	w := NewWorld(p.Seed, p.Variant)
	w.FrameRateIndependent = p.FrameRateIndependent
	return w
}

func (p *Playthrough) Serialize() []byte {
	buf := new(bytes.Buffer)
	Serialize(buf, p.InputVersion)
	Serialize(buf, p.SimulationVersion)
	Serialize(buf, p.ReleaseVersion)
	Serialize(buf, p.Variant)
	Serialize(buf, p.FrameRateIndependent)
	Serialize(buf, p.Id)
	Serialize(buf, p.Seed)
	SerializeSlice(buf, p.History)
	return Zip(buf.Bytes())
}

func DeserializePlaythrough(data []byte) (p Playthrough) {
	buf := bytes.NewBuffer(Unzip(data))
	Deserialize(buf, &p.InputVersion)
	if p.InputVersion != InputVersion {
		Check(fmt.Errorf("can't deserialize this playthrough - we are at "+
			"InputVersion %d and playthrough was generated with InputVersion "+
			"%d",
			InputVersion, p.InputVersion))
	}
	Deserialize(buf, &p.SimulationVersion)
	Deserialize(buf, &p.ReleaseVersion)
	Deserialize(buf, &p.Variant)
	Deserialize(buf, &p.FrameRateIndependent)
	Deserialize(buf, &p.Id)
	Deserialize(buf, &p.Seed)
	DeserializeSlice(buf, &p.History)
	return
}
