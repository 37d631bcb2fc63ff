//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rice-Rocket/chess-engine-sub000/internal/attacks"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/fen"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/position"
	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

func newTestGenerator(t *testing.T) (*Generator, *attacks.Tables, *position.Zobrist) {
	t.Helper()
	tb := attacks.New()
	z := position.NewZobrist()
	return New(tb), tb, z
}

func perft(g *Generator, b *position.Board, depth int) uint64 {
	list := g.Generate(b, All).Slice()
	if depth == 1 {
		return uint64(len(list))
	}
	var nodes uint64
	for _, m := range list {
		b.DoMove(m, true)
		nodes += perft(g, b, depth-1)
		b.UndoMove(m)
	}
	return nodes
}

func TestStartposLegalMoveCount(t *testing.T) {
	g, tb, z := newTestGenerator(t)
	b := position.NewStartingBoard(tb, z)
	list := g.Generate(b, All).Slice()
	assert.Len(t, list, 20)
}

func TestPerftStartposShallow(t *testing.T) {
	g, tb, z := newTestGenerator(t)
	b := position.NewStartingBoard(tb, z)

	assert.EqualValues(t, 20, perft(g, b, 1))
	assert.EqualValues(t, 400, perft(g, b, 2))
	assert.EqualValues(t, 8902, perft(g, b, 3))
	assert.EqualValues(t, 197281, perft(g, b, 4))
}

func TestPerftKiwipeteShallow(t *testing.T) {
	g, tb, z := newTestGenerator(t)
	b, err := fen.Parse(tb, z, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq -")
	require.NoError(t, err)

	assert.EqualValues(t, 48, perft(g, b, 1))
	assert.EqualValues(t, 2039, perft(g, b, 2))
}

func TestMateInOneFound(t *testing.T) {
	g, tb, z := newTestGenerator(t)
	b := position.NewStartingBoard(tb, z)

	b.DoMove(NewMove(MakeSquare(FileG, Rank2), MakeSquare(FileG, Rank4), FlagPawnTwoForward), true)
	b.DoMove(NewMove(MakeSquare(FileE, Rank7), MakeSquare(FileE, Rank5), FlagPawnTwoForward), true)
	b.DoMove(NewMove(MakeSquare(FileF, Rank2), MakeSquare(FileF, Rank3), FlagNormal), true)

	list := g.Generate(b, All).Slice()
	var found bool
	for _, m := range list {
		if m.From() == MakeSquare(FileD, Rank8) && m.To() == MakeSquare(FileH, Rank4) {
			found = true
		}
	}
	assert.True(t, found, "d8h4 must be a legal move in this position")

	b.DoMove(NewMove(MakeSquare(FileD, Rank8), MakeSquare(FileH, Rank4), FlagNormal), true)
	assert.Empty(t, g.Generate(b, All).Slice(), "white has no legal replies to d8h4#")
	assert.True(t, b.InCheck())
}

func TestDoUndoSequenceRestoresStartpos(t *testing.T) {
	g, tb, z := newTestGenerator(t)
	b := position.NewStartingBoard(tb, z)
	before := b.Key()

	var played []Move
	for i := 0; i < 4; i++ {
		list := g.Generate(b, All).Slice()
		require.NotEmpty(t, list)
		m := list[0]
		b.DoMove(m, true)
		played = append(played, m)
	}
	for i := len(played) - 1; i >= 0; i-- {
		b.UndoMove(played[i])
	}

	assert.Equal(t, before, b.Key())
	assert.Equal(t, before, b.RecomputeKey())
}
