//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Package search implements iterative-deepening negamax with alpha-beta
// pruning, principal-variation search, and a capture-only quiescence
// search.
package search

import (
	"sync/atomic"
	"time"

	"github.com/Rice-Rocket/chess-engine-sub000/internal/logx"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/movegen"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/ordering"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/position"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/tt"
	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

var log = logx.Get("search")

// Evaluator is the subset of eval.Evaluator that search depends on, kept as
// an interface so search tests can supply a stub evaluation without
// constructing precomputed attack tables.
type Evaluator interface {
	Evaluate(b *position.Board) Value
}

// Searcher runs iterative-deepening searches over a single board. It is
// not safe for concurrent Run calls: it owns one principal-variation
// buffer and one node counter.
type Searcher struct {
	gen   *movegen.Generator
	eval  Evaluator
	table *tt.Table
	order *ordering.Orderer

	nodes    uint64
	stopping int32
	deadline time.Time
	hasLimit bool
	limits   Limits

	pv    [maxPly + 1][maxPly + 1]Move
	pvLen [maxPly + 1]int
}

// New builds a Searcher over shared move-generation, evaluation, and
// transposition-table components.
func New(gen *movegen.Generator, ev Evaluator, table *tt.Table) *Searcher {
	return &Searcher{
		gen:   gen,
		eval:  ev,
		table: table,
		order: ordering.New(),
	}
}

// Run performs iterative deepening up to limits.Depth (or until the time
// budget computed from limits runs out) and returns the best move found
// and its score from the side-to-move's point of view, along with run
// statistics.
func (s *Searcher) Run(b *position.Board, limits Limits) (Move, Value, Statistics) {
	s.nodes = 0
	atomic.StoreInt32(&s.stopping, 0)
	s.limits = limits
	s.order.Clear()
	s.table.NewGeneration()

	start := time.Now()
	s.deadline, s.hasLimit = computeDeadline(limits, b.SideToMove(), start)

	maxDepth := limits.Depth
	if maxDepth <= 0 || maxDepth > maxPly {
		maxDepth = maxPly
	}

	log.Debugf("search starting: depth=%d nodes=%d movetime=%s", limits.Depth, limits.Nodes, limits.MoveTime)

	var bestMove Move
	var bestValue Value
	completedDepth := 0

	for depth := 1; depth <= maxDepth; depth++ {
		value := s.negamax(b, depth, 0, -ValueInf, ValueInf, true)
		if s.stopped() && depth > 1 {
			break
		}
		bestValue = value
		completedDepth = depth
		if s.pvLen[0] > 0 {
			bestMove = s.pv[0][0]
		}
		log.Debugf("depth %d complete: value=%d nodes=%d move=%s", depth, value, s.nodes, bestMove.StringUci())
		if limits.Nodes > 0 && s.nodes >= limits.Nodes {
			break
		}
		if IsMateScore(value) {
			break
		}
	}

	stats := Statistics{
		Nodes:        s.nodes,
		Depth:        completedDepth,
		Elapsed:      time.Since(start),
		BestValue:    bestValue,
		PrincipalVar: append([]Move(nil), s.pv[0][:s.pvLen[0]]...),
	}
	log.Infof("search finished after %s: depth=%d nodes=%d bestmove=%s score=%d",
		stats.Elapsed, completedDepth, stats.Nodes, bestMove.StringUci(), bestValue)
	return bestMove, bestValue, stats
}

// Stop requests the in-progress Run to return as soon as the current node
// finishes, without waiting for the deadline.
func (s *Searcher) Stop() {
	atomic.StoreInt32(&s.stopping, 1)
}

func (s *Searcher) stopped() bool {
	if atomic.LoadInt32(&s.stopping) != 0 {
		return true
	}
	if s.limits.Nodes > 0 && s.nodes >= s.limits.Nodes {
		return true
	}
	if s.hasLimit && s.nodes&1023 == 0 && time.Now().After(s.deadline) {
		return true
	}
	return false
}

// computeDeadline picks a wall-clock cutoff from whichever time-control
// fields are set; MoveTime takes priority, then a fraction of the
// remaining clock, else no deadline (depth/node limited only).
func computeDeadline(l Limits, stm Color, start time.Time) (time.Time, bool) {
	if l.MoveTime > 0 {
		return start.Add(l.MoveTime), true
	}
	remaining := l.WhiteTime
	inc := l.WhiteInc
	if stm == Black {
		remaining = l.BlackTime
		inc = l.BlackInc
	}
	if remaining <= 0 {
		return time.Time{}, false
	}
	movesToGo := l.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 30
	}
	budget := remaining/time.Duration(movesToGo) + inc/2
	if budget > remaining-50*time.Millisecond {
		budget = remaining - 50*time.Millisecond
	}
	if budget < 0 {
		budget = 0
	}
	return start.Add(budget), true
}

func (s *Searcher) savePV(ply int, m Move) {
	s.pv[ply][0] = m
	copy(s.pv[ply][1:], s.pv[ply+1][:s.pvLen[ply+1]])
	s.pvLen[ply] = s.pvLen[ply+1] + 1
}
