//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

func TestProbeMissOnEmptyTable(t *testing.T) {
	table := NewTable(1)
	_, ok := table.Probe(Key(12345), 0)
	assert.False(t, ok)
}

func TestPutThenProbeRoundTrip(t *testing.T) {
	table := NewTable(1)
	key := Key(0xdeadbeef)
	m := NewMove(MakeSquare(FileE, Rank2), MakeSquare(FileE, Rank4), FlagPawnTwoForward)
	table.Put(key, m, 15, 120, 6, BoundExact, 2)

	res, ok := table.Probe(key, 2)
	assert.True(t, ok)
	assert.Equal(t, m, res.Move)
	assert.EqualValues(t, 120, res.Value)
	assert.Equal(t, 6, res.Depth)
	assert.Equal(t, BoundExact, res.Bound)
}

func TestPutDoesNotOverwriteDeeperSameGenerationEntry(t *testing.T) {
	table := NewTable(1)
	key := Key(777)
	deep := NewMove(MakeSquare(FileD, Rank2), MakeSquare(FileD, Rank4), FlagPawnTwoForward)
	shallow := NewMove(MakeSquare(FileC, Rank2), MakeSquare(FileC, Rank4), FlagPawnTwoForward)

	table.Put(key, deep, 0, 50, 10, BoundExact, 0)
	table.Put(key, shallow, 0, -50, 3, BoundUpper, 0)

	res, ok := table.Probe(key, 0)
	assert.True(t, ok)
	assert.Equal(t, deep, res.Move, "a shallower non-exact result must not replace a deeper same-generation entry")
}

func TestNewGenerationAllowsReplacingStaleEntry(t *testing.T) {
	table := NewTable(1)
	key := Key(777)
	old := NewMove(MakeSquare(FileD, Rank2), MakeSquare(FileD, Rank4), FlagPawnTwoForward)
	fresh := NewMove(MakeSquare(FileC, Rank2), MakeSquare(FileC, Rank4), FlagPawnTwoForward)

	table.Put(key, old, 0, 50, 10, BoundExact, 0)
	table.NewGeneration()
	table.Put(key, fresh, 0, -50, 3, BoundUpper, 0)

	res, ok := table.Probe(key, 0)
	assert.True(t, ok)
	assert.Equal(t, fresh, res.Move, "an entry from a previous generation is replaceable even at lower depth")
}

func TestMateDistanceAdjustedAcrossPly(t *testing.T) {
	table := NewTable(1)
	key := Key(99)
	mateValue := ValueMate - 3
	table.Put(key, MoveNone, 0, mateValue, 4, BoundExact, 5)

	res, ok := table.Probe(key, 2)
	assert.True(t, ok)
	assert.Equal(t, mateValue+3, res.Value,
		"a mate score round-tripped through storage at ply 5 and retrieved at ply 2 "+
			"shifts by the ply difference between store and probe")

	sameply, ok := table.Probe(key, 5)
	assert.True(t, ok)
	assert.Equal(t, mateValue, sameply.Value, "retrieving at the same ply it was stored at must be lossless")
}

func TestClearRemovesAllEntries(t *testing.T) {
	table := NewTable(1)
	key := Key(55)
	table.Put(key, MoveNone, 0, 10, 2, BoundExact, 0)
	table.Clear()
	_, ok := table.Probe(key, 0)
	assert.False(t, ok)
}

func TestResizeRoundsDownToPowerOfTwo(t *testing.T) {
	table := NewTable(1)
	n := table.Len()
	assert.Equal(t, n&(n-1), 0, "capacity must be a power of two")
	assert.Greater(t, n, 0)
}
