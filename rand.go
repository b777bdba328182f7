package main

import (
	"math"
	"math/rand/v2"
)

// Rand is the only source of randomness for the World. It holds its state by
// value, so copying a Rand makes an identical generator. This is what lets a
// Playthrough be replayed: same seed, same inputs, same World.
type Rand struct {
	pcg rand.PCG
}

func NewRand(seed int64) (r Rand) {
	r.pcg.Seed(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
	return
}

// RInt returns a random integer in [min, max]. Both ends are included.
func (r *Rand) RInt(min, max int64) int64 {
	if max <= min {
		return min
	}
	return min + int64(r.pcg.Uint64()%uint64(max-min+1))
}

// RFloat returns a random float in [min, max).
func (r *Rand) RFloat(min, max float64) float64 {
	f := float64(r.pcg.Uint64()>>11) / (1 << 53)
	return min + f*(max-min)
}

// RUnit returns a random vector of length 1, uniformly distributed around the
// circle.
func (r *Rand) RUnit() Vec {
	return FromAngle(r.RFloat(0, 2*math.Pi))
}

// RJitter returns a vector with each component in [-amount, amount).
func (r *Rand) RJitter(amount float64) Vec {
	return Vec{r.RFloat(-amount, amount), r.RFloat(-amount, amount)}
}

func RElem[T any](r *Rand, s []T) T {
	return s[r.RInt(0, int64(len(s))-1)]
}
