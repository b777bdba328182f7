package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestRand_SameSeedSameRandomNumbers(t *testing.T) {
	r1 := NewRand(13)
	v1 := [10]int64{}
	for i := range v1 {
		v1[i] = r1.RInt(0, 1000000)
	}

	r2 := NewRand(13)
	v2 := [10]int64{}
	for i := range v2 {
		v2[i] = r2.RInt(0, 1000000)
	}

	assert.Equal(t, v1, v2)
}

func TestRand_DifferentSeedsDifferentRandomNumbers(t *testing.T) {
	r1 := NewRand(13)
	v1 := [10]int64{}
	for i := range v1 {
		v1[i] = r1.RInt(0, 1000000)
	}

	r2 := NewRand(14)
	v2 := [10]int64{}
	for i := range v2 {
		v2[i] = r2.RInt(0, 1000000)
	}

	assert.NotEqual(t, v1, v2)
}

func TestRand_CopyMakesIdenticalGenerators(t *testing.T) {
	r1 := NewRand(13)
	for range 10 {
		r1.RFloat(0, 1)
	}

	r2 := r1

	v1 := [10]float64{}
	v2 := [10]float64{}
	for i := range v1 {
		v1[i] = r1.RFloat(0, 1000)
		v2[i] = r2.RFloat(0, 1000)
	}

	assert.Equal(t, v1, v2)
}

func TestRand_Ranges(t *testing.T) {
	r := NewRand(0)
	seen := map[int64]bool{}
	for range 10000 {
		i := r.RInt(1, 3)
		require.GreaterOrEqual(t, i, int64(1))
		require.LessOrEqual(t, i, int64(3))
		seen[i] = true

		f := r.RFloat(4, 9)
		require.GreaterOrEqual(t, f, 4.0)
		require.Less(t, f, 9.0)

		u := r.RUnit()
		require.InDelta(t, 1.0, u.Len(), 1e-9)
	}
	// Both ends of RInt must be reachable.
	assert.Len(t, seen, 3)
}
