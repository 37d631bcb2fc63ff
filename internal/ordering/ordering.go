//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Package ordering scores and sorts a generated move list so that search
// explores the moves most likely to be best (or to cause a beta cutoff)
// first: transposition-table move, then winning captures, promotions,
// killer moves, losing captures, and finally quiet moves ranked by
// history score.
package ordering

import (
	"github.com/Rice-Rocket/chess-engine-sub000/internal/eval"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/position"
	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

// Bias constants place each move category into its own disjoint score
// band so that, e.g., the worst winning capture always outranks the best
// quiet move.
const (
	ttMoveBias         int32 = 100_000_000
	winningCaptureBias int32 = 8_000_000
	promotionBias      int32 = 6_000_000
	killerBias         int32 = 4_000_000
	losingCaptureBias  int32 = 2_000_000
	quietBias          int32 = 0
)

const maxKillerPly = 128

// KillerSet holds the (up to) two quiet moves that caused a beta cutoff at
// one search ply, tried early at that same ply in sibling nodes.
type KillerSet struct {
	moves [2]Move
}

// Add records m as the newest killer at this ply, keeping the previous
// newest as the second slot unless m is already present.
func (k *KillerSet) Add(m Move) {
	if k.moves[0] == m {
		return
	}
	k.moves[1] = k.moves[0]
	k.moves[0] = m
}

func (k *KillerSet) matches(m Move) (int32, bool) {
	switch m {
	case k.moves[0]:
		return 1, true
	case k.moves[1]:
		return 0, true
	default:
		return 0, false
	}
}

// Orderer owns the killer table and the quiet-move history table across an
// entire iterative-deepening search; both are cleared between searches but
// carried across depth iterations.
type Orderer struct {
	killers [maxKillerPly]KillerSet
	history [2][64][64]int32
}

// New builds an empty Orderer.
func New() *Orderer {
	return &Orderer{}
}

// Clear resets killers and history for a fresh search.
func (o *Orderer) Clear() {
	o.killers = [maxKillerPly]KillerSet{}
	o.history = [2][64][64]int32{}
}

// RecordKiller registers a quiet move that caused a beta cutoff at ply.
func (o *Orderer) RecordKiller(ply int, m Move) {
	if ply < 0 || ply >= maxKillerPly {
		return
	}
	o.killers[ply].Add(m)
}

// RecordHistory bumps the history score of a quiet move that caused a beta
// cutoff, weighted by remaining depth so moves found deep in the tree earn
// a bigger bump.
func (o *Orderer) RecordHistory(c Color, m Move, depth int) {
	bonus := int32(depth * depth)
	o.history[c][m.From()][m.To()] += bonus
	if o.history[c][m.From()][m.To()] > 1_000_000 {
		for f := Square(0); f < 64; f++ {
			for t := Square(0); t < 64; t++ {
				o.history[c][f][t] /= 2
			}
		}
	}
}

// Order sorts moves in place (descending score) using the board state,
// the current ply's killer moves, and the transposition table's best move
// for this position, if any.
func (o *Orderer) Order(b *position.Board, moves []Move, ttMove Move, ply int) {
	scores := make([]int32, len(moves))
	for i, m := range moves {
		scores[i] = o.score(b, m, ttMove, ply)
	}
	// Insertion sort: move lists are short (<=218, typically <40), and this
	// keeps the hot path allocation-free besides the scores slice above.
	for i := 1; i < len(moves); i++ {
		mv, sc := moves[i], scores[i]
		j := i - 1
		for j >= 0 && scores[j] < sc {
			moves[j+1] = moves[j]
			scores[j+1] = scores[j]
			j--
		}
		moves[j+1] = mv
		scores[j+1] = sc
	}
}

func (o *Orderer) score(b *position.Board, m Move, ttMove Move, ply int) int32 {
	if m == ttMove {
		return ttMoveBias
	}

	moving := b.PieceAt(m.From()).Type()
	captured := b.PieceAt(m.To()).Type()
	isCapture := captured != NoPieceType || m.Flag() == FlagEnPassant
	if m.Flag() == FlagEnPassant {
		captured = Pawn
	}

	if m.IsPromotion() {
		promo := PieceValueMg(m.PromotionType())
		if isCapture {
			promo += PieceValueMg(captured)
		}
		return promotionBias + int32(promo)
	}

	us, them := b.SideToMove(), b.SideToMove().Other()
	if isCapture {
		diff := int32(PieceValueMg(captured) - PieceValueMg(moving))
		if diff >= 0 || !b.IsAttacked(m.To(), them) {
			return winningCaptureBias + diff
		}
		return losingCaptureBias + diff
	}

	if ply >= 0 && ply < maxKillerPly {
		if rank, ok := o.killers[ply].matches(m); ok {
			return killerBias + rank
		}
	}

	s := quietBias + o.history[us][m.From()][m.To()]
	s += int32(eval.PSQT(moving, us, m.To(), true) - eval.PSQT(moving, us, m.From(), true))
	if b.Tables().PawnAttacks[us][m.To()]&b.PieceBb(them, Pawn) != 0 {
		s -= 50
	} else if b.IsAttacked(m.To(), them) {
		s -= 25
	}
	return s
}
