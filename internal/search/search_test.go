//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rice-Rocket/chess-engine-sub000/internal/attacks"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/eval"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/fen"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/movegen"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/position"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/tt"
	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

func newTestSearcher(t *testing.T) (*Searcher, *attacks.Tables, *position.Zobrist) {
	t.Helper()
	tb := attacks.New()
	gen := movegen.New(tb)
	ev := eval.New(tb)
	table := tt.NewTable(1)
	return New(gen, ev, table), tb, position.NewZobrist()
}

func TestFixedDepthSearchFindsMateInOne(t *testing.T) {
	s, tb, z := newTestSearcher(t)
	b := position.NewStartingBoard(tb, z)

	b.DoMove(NewMove(MakeSquare(FileG, Rank2), MakeSquare(FileG, Rank4), FlagPawnTwoForward), true)
	b.DoMove(NewMove(MakeSquare(FileE, Rank7), MakeSquare(FileE, Rank5), FlagPawnTwoForward), true)
	b.DoMove(NewMove(MakeSquare(FileF, Rank2), MakeSquare(FileF, Rank3), FlagNormal), true)

	limits := NewLimits()
	limits.Depth = 3
	move, value, stats := s.Run(b, limits)

	assert.Equal(t, MakeSquare(FileD, Rank8), move.From())
	assert.Equal(t, MakeSquare(FileH, Rank4), move.To())
	assert.True(t, IsMateScore(value))
	assert.Greater(t, stats.Nodes, uint64(0))
}

func TestSearchPicksHangingQueen(t *testing.T) {
	s, tb, z := newTestSearcher(t)
	b, err := fen.Parse(tb, z, "4k3/8/8/3q4/4P3/8/8/4K3 w - -")
	require.NoError(t, err)

	limits := NewLimits()
	limits.Depth = 4
	move, _, _ := s.Run(b, limits)

	assert.Equal(t, MakeSquare(FileE, Rank4), move.From())
	assert.Equal(t, MakeSquare(FileD, Rank5), move.To())
}

func TestNodeLimitHaltsSearchEarly(t *testing.T) {
	s, tb, z := newTestSearcher(t)
	b := position.NewStartingBoard(tb, z)

	limits := NewLimits()
	limits.Depth = 20
	limits.Nodes = 100
	move, _, stats := s.Run(b, limits)

	assert.NotEqual(t, MoveNone, move, "a node-limited search still returns the best move found so far")
	assert.Less(t, stats.Nodes, uint64(100_000), "a 100-node budget must not run anywhere near a full depth-20 search")
}
