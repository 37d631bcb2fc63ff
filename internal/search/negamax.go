//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// The recursive search, split out of search.go: negamax with alpha-beta
// pruning, null-move and late-move reductions, and a capture-only
// quiescence search at the leaves.

package search

import (
	"github.com/Rice-Rocket/chess-engine-sub000/internal/movegen"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/position"
	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

// negamax searches position b to depth plies (0 means "drop into
// quiescence"), returning a score from the side-to-move's point of view.
// ply is the distance from the root, used for mate scoring and killer
// lookups.
func (s *Searcher) negamax(b *position.Board, depth, ply int, alpha, beta Value, isPV bool) Value {
	s.pvLen[ply] = 0
	s.nodes++

	if s.stopped() {
		return ValueNA
	}

	if ply > 0 && isDraw(b) {
		return ValueDraw
	}

	// Mate distance pruning: a shorter mate already found anywhere above
	// this node makes searching for a longer one here pointless.
	if alpha < -ValueMate+Value(ply) {
		alpha = -ValueMate + Value(ply)
	}
	if beta > ValueMate-Value(ply)-1 {
		beta = ValueMate - Value(ply) - 1
	}
	if alpha >= beta {
		return alpha
	}

	if depth <= 0 || ply >= maxPly {
		return s.quiescence(b, ply, alpha, beta)
	}

	key := b.Key()
	var ttMove Move
	if res, ok := s.table.Probe(key, ply); ok {
		ttMove = res.Move
		if !isPV && res.Depth >= depth {
			switch res.Bound {
			case BoundExact:
				return res.Value
			case BoundLower:
				if res.Value > alpha {
					alpha = res.Value
				}
			case BoundUpper:
				if res.Value < beta {
					beta = res.Value
				}
			}
			if alpha >= beta {
				return res.Value
			}
		}
	}

	inCheck := b.InCheck()

	// Null-move pruning: if passing the turn still doesn't let the
	// opponent catch up to beta, this node is almost certainly too good to
	// need a full search. Skipped in check, in the endgame (zugzwang
	// risk), and near the leaves.
	if !isPV && !inCheck && depth >= 3 && ply > 0 && hasNonPawnMaterial(b, b.SideToMove()) {
		prev := b.DoNullMove()
		v := -s.negamax(b, depth-1-nullMoveReduction, ply+1, -beta, -beta+1, false)
		b.UndoNullMove(prev)
		if s.stopped() {
			return ValueNA
		}
		if v >= beta {
			return beta
		}
	}

	moves := s.gen.Generate(b, movegen.All)
	list := moves.Slice()
	if len(list) == 0 {
		if inCheck {
			return -ValueMate + Value(ply)
		}
		return ValueDraw
	}

	// This node's own key joins the repetition window for the rest of this
	// call, so a repetition that only exists inside the search tree (never
	// echoing the played game) is visible to isDraw in a descendant call.
	if ply > 0 {
		b.PushRepetition()
		defer b.PopRepetition()
	}

	s.order.Order(b, list, ttMove, ply)

	bestValue := -ValueInf
	bestMove := MoveNone
	origAlpha := alpha
	quietsSearched := 0

	// Futility pruning: at shallow depth and away from mate scores, a quiet
	// move that can't possibly close the gap to alpha even after its static
	// eval plus a depth-scaled margin isn't worth searching.
	futile := false
	if !isPV && !inCheck && depth <= len(futilityMargin)-1 && alpha > -ValueMate+Value(maxPly) {
		if s.eval.Evaluate(b)+futility(depth) <= alpha {
			futile = true
		}
	}

	for i, m := range list {
		isQuiet := b.PieceAt(m.To()) == PieceNone && m.Flag() != FlagEnPassant && !m.IsPromotion()

		if isQuiet {
			quietsSearched++
			if !isPV && !inCheck && depth <= 3 && quietsSearched > lmpMovesSearched(depth) {
				continue
			}
			if futile && i > 0 {
				continue
			}
		}

		b.DoMove(m, true)

		var value Value
		if i == 0 {
			value = -s.negamax(b, depth-1, ply+1, -beta, -alpha, isPV)
		} else {
			reduction := 0
			if isQuiet && depth >= 3 && !inCheck && i >= 3 {
				reduction = lmrReduction(depth, i)
			}
			value = -s.negamax(b, depth-1-reduction, ply+1, -alpha-1, -alpha, false)
			if value > alpha && (reduction > 0 || value < beta) {
				value = -s.negamax(b, depth-1, ply+1, -beta, -alpha, isPV)
			}
		}

		b.UndoMove(m)

		if s.stopped() {
			return ValueNA
		}

		if value > bestValue {
			bestValue = value
			bestMove = m
			if value > alpha {
				alpha = value
				s.savePV(ply, m)
			}
		}

		if alpha >= beta {
			if isQuiet {
				s.order.RecordKiller(ply, m)
				s.order.RecordHistory(b.SideToMove(), m, depth)
			}
			break
		}
	}

	bound := BoundExact
	switch {
	case bestValue <= origAlpha:
		bound = BoundUpper
	case bestValue >= beta:
		bound = BoundLower
	}
	s.table.Put(key, bestMove, s.eval.Evaluate(b), bestValue, depth, bound, ply)

	return bestValue
}

// quiescence extends the search along captures only, until the position is
// "quiet" (no more captures, or none worth taking), avoiding the horizon
// effect where search stops mid-exchange.
func (s *Searcher) quiescence(b *position.Board, ply int, alpha, beta Value) Value {
	s.nodes++
	if s.stopped() {
		return ValueNA
	}

	standPat := s.eval.Evaluate(b)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}
	if ply >= maxPly {
		return alpha
	}

	moves := s.gen.Generate(b, movegen.CapturesOnly)
	list := moves.Slice()
	s.order.Order(b, list, MoveNone, ply)

	for _, m := range list {
		b.DoMove(m, true)
		value := -s.quiescence(b, ply+1, -beta, -alpha)
		b.UndoMove(m)

		if s.stopped() {
			return ValueNA
		}
		if value > alpha {
			alpha = value
		}
		if alpha >= beta {
			return beta
		}
	}

	return alpha
}

// isDraw checks the fifty-move counter, repetitions against both the played
// game and the ancestors already pushed onto the repetition window by this
// search line (see the PushRepetition/PopRepetition pair in negamax), and
// material draws.
func isDraw(b *position.Board) bool {
	if b.FiftyMoveCount() >= 100 {
		return true
	}
	if b.CountRepetitions() >= 1 {
		return true
	}
	return b.HasInsufficientMaterial()
}

func hasNonPawnMaterial(b *position.Board, c Color) bool {
	return b.PieceBb(c, Knight)|b.PieceBb(c, Bishop)|b.PieceBb(c, Rook)|b.PieceBb(c, Queen) != 0
}
