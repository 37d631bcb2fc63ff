//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

func newTestTables(t *testing.T) *Tables {
	t.Helper()
	return New()
}

func TestKnightAttacksCorner(t *testing.T) {
	tb := newTestTables(t)
	attacks := tb.KnightAttacks[MakeSquare(FileA, Rank1)]
	assert.Equal(t, 2, attacks.PopCount())
	assert.True(t, attacks.Has(MakeSquare(FileB, Rank3)))
	assert.True(t, attacks.Has(MakeSquare(FileC, Rank2)))
}

func TestKingAttacksCenter(t *testing.T) {
	tb := newTestTables(t)
	attacks := tb.KingAttacks[MakeSquare(FileD, Rank4)]
	assert.Equal(t, 8, attacks.PopCount())
}

func TestPawnAttacksDirection(t *testing.T) {
	tb := newTestTables(t)
	white := tb.PawnAttacks[White][MakeSquare(FileD, Rank4)]
	assert.True(t, white.Has(MakeSquare(FileC, Rank5)))
	assert.True(t, white.Has(MakeSquare(FileE, Rank5)))

	black := tb.PawnAttacks[Black][MakeSquare(FileD, Rank4)]
	assert.True(t, black.Has(MakeSquare(FileC, Rank3)))
	assert.True(t, black.Has(MakeSquare(FileE, Rank3)))
}

func TestRookMagicAttacksOpenBoard(t *testing.T) {
	tb := newTestTables(t)
	attacks := tb.GetAttacks(Rook, MakeSquare(FileA, Rank1), BbZero)
	assert.Equal(t, 14, attacks.PopCount())
}

func TestBishopMagicAttacksBlockedByOccupancy(t *testing.T) {
	tb := newTestTables(t)
	occ := SquareBb(MakeSquare(FileC, Rank3))
	attacks := tb.GetAttacks(Bishop, MakeSquare(FileA, Rank1), occ)
	assert.True(t, attacks.Has(MakeSquare(FileB, Rank2)))
	assert.True(t, attacks.Has(MakeSquare(FileC, Rank3)))
	assert.False(t, attacks.Has(MakeSquare(FileD, Rank4)))
}

func TestQueenAttacksCombineRookAndBishop(t *testing.T) {
	tb := newTestTables(t)
	rookPart := tb.GetAttacks(Rook, MakeSquare(FileD, Rank4), BbZero)
	bishopPart := tb.GetAttacks(Bishop, MakeSquare(FileD, Rank4), BbZero)
	queen := tb.GetAttacks(Queen, MakeSquare(FileD, Rank4), BbZero)
	assert.Equal(t, rookPart|bishopPart, queen)
}

func TestGetAttacksPanicsOnPawn(t *testing.T) {
	tb := newTestTables(t)
	assert.Panics(t, func() {
		tb.GetAttacks(Pawn, MakeSquare(FileD, Rank4), BbZero)
	})
}

func TestAlignMaskCollinear(t *testing.T) {
	tb := newTestTables(t)
	a := MakeSquare(FileA, Rank1)
	b := MakeSquare(FileH, Rank8)
	mask := tb.AlignMask[a][b]
	assert.True(t, mask.Has(MakeSquare(FileD, Rank4)))
	assert.False(t, mask.Has(MakeSquare(FileA, Rank2)))
}

func TestAlignMaskNonCollinearIsEmpty(t *testing.T) {
	tb := newTestTables(t)
	a := MakeSquare(FileA, Rank1)
	b := MakeSquare(FileB, Rank3)
	assert.Equal(t, BbZero, tb.AlignMask[a][b])
}
