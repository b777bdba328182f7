package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"slices"
	"testing"
)

func TestPool_NeverExceedsCapacity(t *testing.T) {
	p := NewPool[int](30)
	for i := range 1000 {
		added := p.Add(i)
		require.Equal(t, i < 30, added)
		require.LessOrEqual(t, p.Count(), 30)
	}
	assert.Equal(t, 30, p.Count())
}

func TestPool_AddWhenFullIsNoOp(t *testing.T) {
	p := NewPool[*Sprite](3)
	r := NewRand(0)
	for range 3 {
		p.Add(NewSprite(0, Vec{}, &r))
	}
	before := slices.Clone(p.All())

	assert.False(t, p.Add(NewSprite(0, Vec{}, &r)))
	assert.Equal(t, before, p.All())
	// The oldest entity was not evicted either.
	assert.Same(t, before[0], p.All()[0])
}

func TestPool_UnboundedWithZeroCapacity(t *testing.T) {
	p := NewPool[int](0)
	for i := range 1000 {
		require.True(t, p.Add(i))
	}
	assert.Equal(t, 1000, p.Count())
}

func TestPool_RemoveWhereKeepsOrder(t *testing.T) {
	p := NewPool[int](0)
	for i := range 10 {
		p.Add(i)
	}

	removed := p.RemoveWhere(func(i int) bool { return i%2 == 0 })
	assert.Equal(t, 5, removed)
	assert.Equal(t, []int{1, 3, 5, 7, 9}, p.All())

	removed = p.RemoveWhere(func(i int) bool { return false })
	assert.Equal(t, 0, removed)
	assert.Equal(t, []int{1, 3, 5, 7, 9}, p.All())
}

func TestPool_RemoveWhereFreesSpace(t *testing.T) {
	p := NewPool[int](2)
	p.Add(1)
	p.Add(2)
	assert.False(t, p.Add(3))

	p.RemoveWhere(func(i int) bool { return i == 1 })
	assert.True(t, p.Add(3))
	assert.Equal(t, []int{2, 3}, p.All())
}

func TestPool_Clear(t *testing.T) {
	p := NewPool[int](5)
	for i := range 5 {
		p.Add(i)
	}
	p.Clear()
	assert.Equal(t, 0, p.Count())
	assert.Empty(t, p.All())
	assert.True(t, p.Add(7))
}
