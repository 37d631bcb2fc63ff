//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package ordering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rice-Rocket/chess-engine-sub000/internal/attacks"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/fen"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/position"
	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

func TestTTMoveSortsFirst(t *testing.T) {
	tb := attacks.New()
	b, err := fen.Parse(tb, position.NewZobrist(), "4k3/8/8/3p4/4P3/8/8/4K3 w - -")
	require.NoError(t, err)

	quiet := NewMove(MakeSquare(FileE, Rank1), MakeSquare(FileD, Rank1), FlagNormal)
	capture := NewMove(MakeSquare(FileE, Rank4), MakeSquare(FileD, Rank5), FlagNormal)
	moves := []Move{quiet, capture}

	o := New()
	o.Order(b, moves, quiet, 0)
	assert.Equal(t, quiet, moves[0], "the transposition-table move always sorts first, even over a capture")
}

func TestWinningCaptureOutranksQuietMove(t *testing.T) {
	tb := attacks.New()
	b, err := fen.Parse(tb, position.NewZobrist(), "4k3/8/8/3p4/4P3/8/8/4K3 w - -")
	require.NoError(t, err)

	quiet := NewMove(MakeSquare(FileE, Rank1), MakeSquare(FileD, Rank1), FlagNormal)
	capture := NewMove(MakeSquare(FileE, Rank4), MakeSquare(FileD, Rank5), FlagNormal)
	moves := []Move{quiet, capture}

	o := New()
	o.Order(b, moves, MoveNone, 0)
	assert.Equal(t, capture, moves[0])
}

func TestKillerMoveOutranksOrdinaryQuietMove(t *testing.T) {
	tb := attacks.New()
	b, err := fen.Parse(tb, position.NewZobrist(), "4k3/8/8/8/8/8/8/R3K3 w Q -")
	require.NoError(t, err)

	killer := NewMove(MakeSquare(FileE, Rank1), MakeSquare(FileD, Rank1), FlagNormal)
	other := NewMove(MakeSquare(FileE, Rank1), MakeSquare(FileF, Rank1), FlagNormal)
	moves := []Move{other, killer}

	o := New()
	o.RecordKiller(3, killer)
	o.Order(b, moves, MoveNone, 3)
	assert.Equal(t, killer, moves[0])
}

func TestHistoryScoreBreaksQuietTiesAndHalvesOnOverflow(t *testing.T) {
	o := New()
	m := NewMove(MakeSquare(FileA, Rank2), MakeSquare(FileA, Rank3), FlagNormal)
	o.RecordHistory(White, m, 1000)
	assert.Equal(t, int32(1_000_000), o.history[White][m.From()][m.To()])

	o.RecordHistory(White, m, 1000)
	assert.Equal(t, int32(1_000_000), o.history[White][m.From()][m.To()],
		"exceeding 1,000,000 must halve every history entry rather than grow without bound")
}

func TestClearResetsKillersAndHistory(t *testing.T) {
	o := New()
	m := NewMove(MakeSquare(FileA, Rank2), MakeSquare(FileA, Rank3), FlagNormal)
	o.RecordKiller(0, m)
	o.RecordHistory(White, m, 4)

	o.Clear()
	_, ok := o.killers[0].matches(m)
	assert.False(t, ok)
	assert.Equal(t, int32(0), o.history[White][m.From()][m.To()])
}
