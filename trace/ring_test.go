package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(i int) Record {
	return Record{Iteration: i, Velocity: float64(i), ErrorPct: float64(i) / 10}
}

func TestNewRingRoundsCapacity(t *testing.T) {
	assert.Equal(t, 8, NewRing(0).Cap())
	assert.Equal(t, 8, NewRing(5).Cap())
	assert.Equal(t, 8, NewRing(8).Cap())
	assert.Equal(t, 16, NewRing(9).Cap())
	assert.Equal(t, 64, NewRing(64).Cap())
}

func TestPushPop(t *testing.T) {
	r := NewRing(8)
	_, ok := r.PopFront()
	assert.False(t, ok)

	for i := 1; i <= 5; i++ {
		r.PushBack(rec(i))
	}
	assert.Equal(t, 5, r.Len())

	got, ok := r.PopFront()
	require.True(t, ok)
	assert.Equal(t, rec(1), got)
	assert.Equal(t, 4, r.Len())

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, rec(5), last)
}

func TestEvictsOldestWhenFull(t *testing.T) {
	r := NewRing(8)
	for i := 1; i <= 20; i++ {
		r.PushBack(rec(i))
	}
	assert.Equal(t, 8, r.Len())

	records := r.Records()
	require.Len(t, records, 8)
	for i, got := range records {
		assert.Equal(t, rec(13+i), got)
	}

	oldest, ok := r.At(0)
	require.True(t, ok)
	assert.Equal(t, rec(13), oldest)
	_, ok = r.At(8)
	assert.False(t, ok)
}

func TestTraverseStopsEarly(t *testing.T) {
	r := NewRing(8)
	for i := 1; i <= 6; i++ {
		r.PushBack(rec(i))
	}
	visited := 0
	r.Traverse(func(i int, _ Record) bool {
		visited++
		return i < 2
	})
	assert.Equal(t, 3, visited)
}
