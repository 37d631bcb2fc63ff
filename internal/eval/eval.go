//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Package eval implements the static position evaluator: material,
// piece-square, mobility, pawn structure, passed pawns, king safety,
// threats, space, and imbalance terms, each computed separately for the
// middlegame and endgame and blended by a tapered game-phase factor, plus
// a fixed tempo bonus. PSQT data lives in tables.go.
package eval

import (
	"github.com/Rice-Rocket/chess-engine-sub000/internal/attacks"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/position"
	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

// phaseEg/phaseMg bound the non-pawn material total (in middlegame piece
// values) between an all-endgame and an all-middlegame position; the taper
// factor is where the current position's non-pawn material falls between
// them.
const (
	phaseEg Value = 3915
	phaseMg Value = 15258

	phaseScale Value = 256
)

// tempoBonus rewards the side to move; added after the blended score has
// been flipped into the mover's own perspective, so it is always a reward
// for whoever is to move, never a penalty.
const tempoBonus Value = 28

// Evaluator computes a static score for a position. It is stateless and
// holds only the shared precomputed attack tables, so a single instance is
// safe to reuse (and to call concurrently) across searches.
type Evaluator struct {
	tables *attacks.Tables
}

// New builds an Evaluator over the shared precomputed tables.
func New(tables *attacks.Tables) *Evaluator {
	return &Evaluator{tables: tables}
}

// score accumulates a middlegame/endgame pair of centipawn-scale terms for
// one side; the evaluator computes one per color and takes the difference.
type score struct {
	mg, eg Value
}

func (s score) add(o score) score { return score{s.mg + o.mg, s.eg + o.eg} }
func (s score) sub(o score) score { return score{s.mg - o.mg, s.eg - o.eg} }

// Evaluate returns the static score of b from the side-to-move's point of
// view: positive favors the side to move. It has no side effects and
// performs no allocation beyond the bounded per-call locals below.
func (e *Evaluator) Evaluate(b *position.Board) Value {
	white := e.sideScore(b, White)
	black := e.sideScore(b, Black)
	total := white.sub(black)

	sf := e.scaleFactor(b, total.eg)
	eg := total.eg * sf / 64

	factor := e.taperFactor(b)
	v := (total.mg*factor + eg*(phaseScale-factor)) / phaseScale

	// Coarse quantization: search doesn't need centipawn-level precision and
	// this keeps near-equal positions from being ordered on noise.
	v = (v / 16) * 16

	if b.SideToMove() == Black {
		v = -v
	}
	v += tempoBonus

	fifty := Value(b.FiftyMoveCount())
	if fifty > 100 {
		fifty = 100
	}
	v = v * (100 - fifty) / 100

	return v
}

// taperFactor returns a 0..phaseScale value: phaseScale when non-pawn
// material is at or above phaseMg (full middlegame), 0 at or below phaseEg
// (bare-bones endgame), linear in between.
func (e *Evaluator) taperFactor(b *position.Board) Value {
	npm := e.nonPawnMaterial(b, White) + e.nonPawnMaterial(b, Black)
	if npm > phaseMg {
		npm = phaseMg
	}
	if npm < phaseEg {
		npm = phaseEg
	}
	return (npm - phaseEg) * phaseScale / (phaseMg - phaseEg)
}

func (e *Evaluator) nonPawnMaterial(b *position.Board, c Color) Value {
	var v Value
	for pt := Knight; pt <= Queen; pt++ {
		v += Value(b.PieceBb(c, pt).PopCount()) * PieceValueMg(pt)
	}
	return v
}

// scaleFactor returns a 0..64 factor the endgame term is scaled by before
// blending, to account for material configurations that are drawish beyond
// what their raw point value suggests: the stronger side (the one ahead in
// eg) down to bare material with only a small edge, opposite-colored
// bishops, a single queen left on the board, or a rook ending whose pawn
// counts differ by at most two, with all pawns on one wing and kings close
// together.
func (e *Evaluator) scaleFactor(b *position.Board, eg Value) Value {
	strong, weak := White, Black
	if eg <= 0 {
		strong, weak = Black, White
	}

	strongPawns := b.PieceBb(strong, Pawn).PopCount()
	strongNpm := e.nonPawnMaterial(b, strong)
	weakNpm := e.nonPawnMaterial(b, weak)
	bishopMg := PieceValueMg(Bishop)
	rookMg := PieceValueMg(Rook)

	switch {
	case strongPawns == 0 && strongNpm-weakNpm <= bishopMg:
		if strongNpm < rookMg {
			return 0
		}
		if weakNpm <= bishopMg {
			return 4
		}
		return 14
	case oppositeBishops(b):
		if strongNpm == bishopMg && weakNpm == bishopMg {
			return 22 + 4*Value(e.candidatePassedCount(b, strong))
		}
		return 22 + 3*Value(pieceCount(b, strong))
	case strongNpm == rookMg && weakNpm == rookMg &&
		absInt(strongPawns-b.PieceBb(weak, Pawn).PopCount()) <= 2 &&
		!pawnsOnBothFlanks(b) && e.kingsClose(b):
		return 36
	}

	if wq, bq := b.PieceBb(White, Queen).PopCount(), b.PieceBb(Black, Queen).PopCount(); wq+bq == 1 {
		minorless := White
		if wq == 1 {
			minorless = Black
		}
		minors := b.PieceBb(minorless, Knight).PopCount() + b.PieceBb(minorless, Bishop).PopCount()
		return 37 + 3*Value(minors)
	}

	sf := Value(64)
	if limit := 36 + 7*Value(strongPawns); sf > limit {
		sf = limit
	}
	return sf
}

// oppositeBishops reports whether each side has exactly one bishop and they
// stand on opposite-colored squares.
func oppositeBishops(b *position.Board) bool {
	wb := b.PieceBb(White, Bishop)
	bb := b.PieceBb(Black, Bishop)
	if wb.PopCount() != 1 || bb.PopCount() != 1 {
		return false
	}
	return wb.Lsb().IsLight() != bb.Lsb().IsLight()
}

// pieceCount is the total number of pieces of any type, including the king
// and pawns, color c still has on the board.
func pieceCount(b *position.Board, c Color) int {
	return b.ColorBb(c).PopCount()
}

// candidatePassedCount approximates the original engine's candidate-passer
// detection (which also credits pawns that become passed after a likely
// trade) with the simpler passed-pawn test this evaluator already uses
// elsewhere.
func (e *Evaluator) candidatePassedCount(b *position.Board, c Color) int {
	enemyPawns := b.PieceBb(c.Other(), Pawn)
	n := 0
	pawns := b.PieceBb(c, Pawn)
	for pawns != 0 {
		var sq Square
		sq, pawns = pawns.PopLsb()
		if e.tables.PassedPawnMask[c][sq]&enemyPawns == 0 {
			n++
		}
	}
	return n
}

// pawnsOnBothFlanks reports whether pawns of either color exist on both the
// queenside (files a-d) and kingside (files e-h).
func pawnsOnBothFlanks(b *position.Board) bool {
	pawns := b.PieceBb(White, Pawn) | b.PieceBb(Black, Pawn)
	queenside := FileBb(0) | FileBb(1) | FileBb(2) | FileBb(3)
	kingside := FileBb(4) | FileBb(5) | FileBb(6) | FileBb(7)
	return pawns&queenside != 0 && pawns&kingside != 0
}

// kingsClose reports whether the two kings stand within a Chebyshev
// distance of 2, a rough proxy for "close enough to interfere with a pawn
// break" in the rook-endgame scale-factor special case.
func (e *Evaluator) kingsClose(b *position.Board) bool {
	return e.tables.ChebyshevDist[b.KingSquare(White)][b.KingSquare(Black)] <= 2
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sideScore sums every evaluation term for color c alone; the caller takes
// the White-minus-Black difference for every term except tempo, which is
// applied once at the end relative to the side to move.
func (e *Evaluator) sideScore(b *position.Board, c Color) score {
	s := score{}
	s = s.add(e.material(b, c))
	s = s.add(e.psqtScore(b, c))
	s = s.add(e.imbalance(b, c))
	s = s.add(e.mobilityScore(b, c))
	s = s.add(e.pawnStructure(b, c))
	s = s.add(e.passedPawns(b, c))
	s = s.add(e.kingSafety(b, c))
	s = s.add(e.threats(b, c))
	sp := e.space(b, c)
	s = s.add(score{sp, 0})
	return s
}

func (e *Evaluator) material(b *position.Board, c Color) score {
	var s score
	for pt := Pawn; pt < PieceTypeLength; pt++ {
		n := Value(b.PieceBb(c, pt).PopCount())
		s.mg += n * PieceValueMg(pt)
		s.eg += n * PieceValueEg(pt)
	}
	return s
}

func (e *Evaluator) psqtScore(b *position.Board, c Color) score {
	var s score
	for pt := King; pt < PieceTypeLength; pt++ {
		bb := b.PieceBb(c, pt)
		for bb != 0 {
			var sq Square
			sq, bb = bb.PopLsb()
			s.mg += PSQT(pt, c, sq, true)
			s.eg += PSQT(pt, c, sq, false)
		}
	}
	return s
}

// imbalanceSlots packs color c's piece counts into the 6-slot layout the
// quadratic imbalance tables are indexed by: slot 0 is a pseudo-count (1 if
// c has the bishop pair, else 0), slots 1-5 are pawn/knight/bishop/rook/
// queen counts.
func imbalanceSlots(b *position.Board, c Color) [6]int {
	var s [6]int
	if b.PieceBb(c, Bishop).PopCount() >= 2 {
		s[0] = 1
	}
	s[1] = b.PieceBb(c, Pawn).PopCount()
	s[2] = b.PieceBb(c, Knight).PopCount()
	s[3] = b.PieceBb(c, Bishop).PopCount()
	s[4] = b.PieceBb(c, Rook).PopCount()
	s[5] = b.PieceBb(c, Queen).PopCount()
	return s
}

// imbalance scores color c's piece combination against its own and the
// opponent's piece counts via a triangular quadratic form: each of c's
// piece types (plus the bishop-pair pseudo-slot) contributes its count
// times a per-pair coefficient against every piece type at or below it in
// the slot order, once for c's own counts and once for the opponent's.
func (e *Evaluator) imbalance(b *position.Board, c Color) score {
	own := imbalanceSlots(b, c)
	opp := imbalanceSlots(b, c.Other())

	var total int
	for pt1 := 0; pt1 < 6; pt1++ {
		count := own[pt1]
		if count == 0 {
			continue
		}
		var v int
		for pt2 := 0; pt2 <= pt1; pt2++ {
			v += quadraticOurs[pt1][pt2]*own[pt2] + quadraticTheirs[pt1][pt2]*opp[pt2]
		}
		total += count * v
	}
	v := Value(total / 16)
	return score{mg: v, eg: v}
}
