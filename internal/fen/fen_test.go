//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package fen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rice-Rocket/chess-engine-sub000/internal/attacks"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/position"
)

func TestParseWriteRoundTripsStartingPosition(t *testing.T) {
	tb := attacks.New()
	b, err := Parse(tb, position.NewZobrist(), StartFen)
	require.NoError(t, err)
	assert.Equal(t, StartFen, Write(b))
}

func TestParseWriteRoundTripsArbitraryPosition(t *testing.T) {
	tb := attacks.New()
	in := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPB1PPP/R3K2R w KQkq - 0 1"
	b, err := Parse(tb, position.NewZobrist(), in)
	require.NoError(t, err)
	assert.Equal(t, in, Write(b))
}

func TestParseRejectsTooFewFields(t *testing.T) {
	tb := attacks.New()
	_, err := Parse(tb, position.NewZobrist(), "not a fen string")
	assert.Error(t, err)
}

func TestParseRejectsWrongRankCount(t *testing.T) {
	tb := attacks.New()
	_, err := Parse(tb, position.NewZobrist(), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1")
	assert.Error(t, err)
}

func TestParseRejectsInvalidCastlingLetter(t *testing.T) {
	tb := attacks.New()
	_, err := Parse(tb, position.NewZobrist(), StartFen[:len(StartFen)-len("KQkq - 0 1")]+"KQkx - 0 1")
	assert.Error(t, err)
}

func TestParseRejectsMissingKing(t *testing.T) {
	tb := attacks.New()
	_, err := Parse(tb, position.NewZobrist(), "rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1BNR w - - 0 1")
	assert.Error(t, err)
}

func TestParseRejectsExtraKing(t *testing.T) {
	tb := attacks.New()
	_, err := Parse(tb, position.NewZobrist(), "rnbqkknr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1")
	assert.Error(t, err)
}

func TestParseRejectsPawnOnBackRank(t *testing.T) {
	tb := attacks.New()
	_, err := Parse(tb, position.NewZobrist(), "rnbqkbnP/pppppppp/8/8/8/8/PPPPPPP1/RNBQKBNR w KQkq - 0 1")
	assert.Error(t, err)
}

func TestParseRejectsTooManyPawns(t *testing.T) {
	tb := attacks.New()
	_, err := Parse(tb, position.NewZobrist(), "rnbqkbnr/pppppppp/8/8/8/P7/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	assert.Error(t, err)
}

func TestParseAcceptsDashForEnPassantAndHalfmoveClock(t *testing.T) {
	tb := attacks.New()
	b, err := Parse(tb, position.NewZobrist(), "4k3/8/8/8/8/8/8/4K3 w - -")
	require.NoError(t, err)
	assert.Equal(t, 0, b.FiftyMoveCount())
}
