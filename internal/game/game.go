//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Package game is the engine façade: it owns the shared precomputed tables,
// the move generator, the evaluator, the transposition table, and the
// search, and exposes the handful of operations an outer caller (a UCI
// loop, a perft harness, a test) actually needs: load a position, apply a
// move, ask for the best move, and classify the terminal state of the
// game. Structured as a reusable type instead of package-level globals.
package game

import (
	"fmt"

	"github.com/Rice-Rocket/chess-engine-sub000/internal/attacks"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/eval"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/fen"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/logx"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/movegen"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/position"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/search"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/tt"
	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

var log = logx.Get("game")

// Status classifies the terminal state of a game.
type Status uint8

const (
	InProgress Status = iota
	Checkmate
	Stalemate
	DrawFiftyMove
	DrawThreefold
	DrawInsufficientMaterial
)

func (st Status) String() string {
	switch st {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case DrawFiftyMove:
		return "draw (fifty-move rule)"
	case DrawThreefold:
		return "draw (threefold repetition)"
	case DrawInsufficientMaterial:
		return "draw (insufficient material)"
	default:
		return "in progress"
	}
}

// Game bundles one board with the engine components needed to search and
// play it. Not safe for concurrent use by multiple goroutines.
type Game struct {
	tables  *attacks.Tables
	zobrist *position.Zobrist
	gen     *movegen.Generator
	eval    *eval.Evaluator
	table   *tt.Table
	searchr *search.Searcher

	board *position.Board
}

// defaultTableSizeMB is the transposition table size a freshly constructed
// Game allocates.
const defaultTableSizeMB = 64

// New builds a Game at the standard starting position, constructing fresh
// precomputed tables. Building the tables is the expensive, one-time setup
// step (magic bitboard search); share a Game (or at least its tables)
// across many searches rather than rebuilding per move.
func New() *Game {
	tables := attacks.New()
	zobrist := position.NewZobrist()
	g := &Game{
		tables:  tables,
		zobrist: zobrist,
		gen:     movegen.New(tables),
		eval:    eval.New(tables),
		table:   tt.NewTable(defaultTableSizeMB),
		board:   position.NewStartingBoard(tables, zobrist),
	}
	g.searchr = search.New(g.gen, g.eval, g.table)
	return g
}

// LoadFen replaces the current position with the one described by fenStr.
func (g *Game) LoadFen(fenStr string) error {
	b, err := fen.Parse(g.tables, g.zobrist, fenStr)
	if err != nil {
		log.Warningf("rejected fen %q: %v", fenStr, err)
		return fmt.Errorf("game: %w", err)
	}
	g.board = b
	log.Debugf("position loaded: %s", fenStr)
	return nil
}

// Fen renders the current position.
func (g *Game) Fen() string {
	return fen.Write(g.board)
}

// Board exposes the underlying board for read-only inspection (move
// generation, perft, tests); callers must not call DoMove/UndoMove
// directly on it outside of search, or Game's repetition/move-log
// bookkeeping will desync.
func (g *Game) Board() *position.Board {
	return g.board
}

// LegalMoves returns every legal move in the current position.
func (g *Game) LegalMoves() []Move {
	list := g.gen.Generate(g.board, movegen.All)
	return append([]Move(nil), list.Slice()...)
}

// MakeMove applies m to the current position, validating that it is one of
// the legal moves first, rejecting illegal moves rather than trusting the caller.
func (g *Game) MakeMove(m Move) error {
	for _, legal := range g.LegalMoves() {
		if legal == m {
			g.board.DoMove(m, false)
			return nil
		}
	}
	log.Warningf("rejected illegal move %s in position %s", m.StringUci(), g.Fen())
	return fmt.Errorf("game: illegal move %s in position %s", m.StringUci(), g.Fen())
}

// Status classifies the current position: checkmate and stalemate take
// priority over the draw rules, which are otherwise checked in the order
// fifty-move, threefold, insufficient material.
func (g *Game) Status() Status {
	if len(g.LegalMoves()) == 0 {
		if g.board.InCheck() {
			return Checkmate
		}
		return Stalemate
	}
	if g.board.FiftyMoveCount() >= 100 {
		return DrawFiftyMove
	}
	if g.board.CountRepetitions() >= 3 {
		return DrawThreefold
	}
	if g.board.HasInsufficientMaterial() {
		return DrawInsufficientMaterial
	}
	return InProgress
}

// BestMove runs a search under the given limits and returns the move it
// would play, the score from the side-to-move's point of view, and the
// run's statistics.
func (g *Game) BestMove(limits search.Limits) (Move, Value, search.Statistics) {
	return g.searchr.Run(g.board, limits)
}

// Stop requests an in-progress BestMove call to return early.
func (g *Game) Stop() {
	g.searchr.Stop()
}

// Evaluate returns the static evaluation of the current position, from the
// side-to-move's point of view, without searching.
func (g *Game) Evaluate() Value {
	return g.eval.Evaluate(g.board)
}

// Perft counts leaf nodes of the legal move tree to the given depth,
// bulk-counting at depth 1 (the generator's output at the last ply is
// exact and doesn't need to be played and unplayed to be counted). This is
// the canonical move-generator correctness check.
func (g *Game) Perft(depth int) uint64 {
	return g.perft(g.board, depth)
}

func (g *Game) perft(b *position.Board, depth int) uint64 {
	list := g.gen.Generate(b, movegen.All)
	moves := list.Slice()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.DoMove(m, true)
		nodes += g.perft(b, depth-1)
		b.UndoMove(m)
	}
	return nodes
}
