//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rice-Rocket/chess-engine-sub000/internal/attacks"
	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	return NewStartingBoard(attacks.New(), NewZobrist())
}

func TestStartingPositionSetup(t *testing.T) {
	b := newTestBoard(t)
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, CastlingAll, b.CastlingRights())
	assert.Equal(t, SquareNone, b.EpSquare())
	assert.Equal(t, 16, b.ColorBb(White).PopCount())
	assert.Equal(t, 16, b.ColorBb(Black).PopCount())
	assert.Equal(t, MakeSquare(FileE, Rank1), b.KingSquare(White))
	assert.False(t, b.InCheck())
}

func TestZobristKeyMatchesRecomputeFromScratch(t *testing.T) {
	b := newTestBoard(t)
	m := NewMove(MakeSquare(FileE, Rank2), MakeSquare(FileE, Rank4), FlagPawnTwoForward)
	b.DoMove(m, false)
	assert.Equal(t, b.RecomputeKey(), b.Key())
}

func TestDoUndoMoveRestoresState(t *testing.T) {
	b := newTestBoard(t)
	before := b.Key()
	beforeSquares := b.square

	m := NewMove(MakeSquare(FileG, Rank1), MakeSquare(FileF, Rank3), FlagNormal)
	b.DoMove(m, true)
	assert.NotEqual(t, before, b.Key())

	b.UndoMove(m)
	assert.Equal(t, before, b.Key())
	assert.Equal(t, beforeSquares, b.square)
	assert.Equal(t, White, b.SideToMove())
}

func TestEnPassantCaptureRemovesPawn(t *testing.T) {
	b := newTestBoard(t)
	b.DoMove(NewMove(MakeSquare(FileE, Rank2), MakeSquare(FileE, Rank4), FlagPawnTwoForward), false)
	b.DoMove(NewMove(MakeSquare(FileA, Rank7), MakeSquare(FileA, Rank6), FlagNormal), false)
	b.DoMove(NewMove(MakeSquare(FileE, Rank4), MakeSquare(FileE, Rank5), FlagNormal), false)
	b.DoMove(NewMove(MakeSquare(FileD, Rank7), MakeSquare(FileD, Rank5), FlagPawnTwoForward), false)

	assert.Equal(t, MakeSquare(FileD, Rank6), b.EpSquare())

	epMove := NewMove(MakeSquare(FileE, Rank5), MakeSquare(FileD, Rank6), FlagEnPassant)
	b.DoMove(epMove, true)

	assert.Equal(t, PieceNone, b.PieceAt(MakeSquare(FileD, Rank5)))
	assert.Equal(t, MakePiece(White, Pawn), b.PieceAt(MakeSquare(FileD, Rank6)))

	b.UndoMove(epMove)
	assert.Equal(t, MakePiece(Black, Pawn), b.PieceAt(MakeSquare(FileD, Rank5)))
	assert.Equal(t, PieceNone, b.PieceAt(MakeSquare(FileD, Rank6)))
}

func TestKingMoveClearsBothCastlingRights(t *testing.T) {
	b := newTestBoard(t)
	// Clearing the squares between king and both rooks isn't needed for this
	// check, only the rights bookkeeping on a direct king move matters.
	b.removePieceAt(MakeSquare(FileF, Rank1))
	b.removePieceAt(MakeSquare(FileG, Rank1))
	m := NewMove(MakeSquare(FileE, Rank1), MakeSquare(FileG, Rank1), FlagCastling)
	b.DoMove(m, true)
	assert.False(t, b.CastlingRights().Has(WhiteKingside))
	assert.False(t, b.CastlingRights().Has(WhiteQueenside))
	assert.True(t, b.CastlingRights().Has(BlackKingside))
}

func TestRookCaptureOnCornerClearsOnlyThatSideRights(t *testing.T) {
	b := newTestBoard(t)
	b.removePieceAt(MakeSquare(FileG, Rank1))
	b.removePieceAt(MakeSquare(FileF, Rank1))
	b.removePieceAt(MakeSquare(FileG, Rank2))
	b.putPieceAt(MakeSquare(FileG, Rank2), MakePiece(Black, Bishop))
	b.sideToMove = Black

	capture := NewMove(MakeSquare(FileG, Rank2), MakeSquare(FileH, Rank1), FlagNormal)
	b.DoMove(capture, true)
	assert.False(t, b.CastlingRights().Has(WhiteKingside))
	assert.True(t, b.CastlingRights().Has(WhiteQueenside))
}

func TestHasInsufficientMaterial(t *testing.T) {
	var squares [64]Piece
	squares[MakeSquare(FileE, Rank1)] = MakePiece(White, King)
	squares[MakeSquare(FileE, Rank8)] = MakePiece(Black, King)
	squares[MakeSquare(FileC, Rank1)] = MakePiece(White, Bishop)
	b := NewBoard(attacks.New(), NewZobrist(), squares, White, CastlingNone, 0, 0)
	assert.True(t, b.HasInsufficientMaterial())

	squares[MakeSquare(FileA, Rank1)] = MakePiece(White, Rook)
	b2 := NewBoard(attacks.New(), NewZobrist(), squares, White, CastlingNone, 0, 0)
	assert.False(t, b2.HasInsufficientMaterial())
}

func TestUndoMoveWithEmptyHistoryPanics(t *testing.T) {
	b := newTestBoard(t)
	assert.Panics(t, func() {
		b.UndoMove(NewMove(0, 1, FlagNormal))
	})
}
