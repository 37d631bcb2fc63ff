//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSquareBb(t *testing.T) {
	assert.Equal(t, Bitboard(1), SquareBb(0))
	assert.Equal(t, Bitboard(1)<<63, SquareBb(63))
	assert.Equal(t, BbZero, SquareBb(SquareNone))
}

func TestFileAndRankBb(t *testing.T) {
	assert.Equal(t, 8, FileBb(FileA).PopCount())
	assert.Equal(t, 8, RankBb(Rank1).PopCount())
	assert.True(t, FileBb(FileA).Has(MakeSquare(FileA, Rank4)))
	assert.False(t, FileBb(FileA).Has(MakeSquare(FileB, Rank4)))
}

func TestPopCountAndPopLsb(t *testing.T) {
	bb := SquareBb(3) | SquareBb(10) | SquareBb(40)
	assert.Equal(t, 3, bb.PopCount())

	s, rest := bb.PopLsb()
	assert.EqualValues(t, 3, s)
	assert.Equal(t, 2, rest.PopCount())
	assert.False(t, rest.Has(3))
}

func TestLsbMsbOfEmpty(t *testing.T) {
	assert.Equal(t, SquareNone, BbZero.Lsb())
	assert.Equal(t, SquareNone, BbZero.Msb())
}

func TestShiftNorthSouth(t *testing.T) {
	bb := SquareBb(MakeSquare(FileD, Rank4))
	assert.True(t, bb.ShiftNorth().Has(MakeSquare(FileD, Rank5)))
	assert.True(t, bb.ShiftSouth().Has(MakeSquare(FileD, Rank3)))
}

func TestShiftEastWestDoesNotWrap(t *testing.T) {
	onH := SquareBb(MakeSquare(FileH, Rank4))
	assert.Equal(t, BbZero, onH.ShiftEast())

	onA := SquareBb(MakeSquare(FileA, Rank4))
	assert.Equal(t, BbZero, onA.ShiftWest())
}
