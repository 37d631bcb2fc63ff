//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Secondary evaluation terms: mobility, pawn structure, passed pawns, king
// safety, threats, and space. Split out of eval.go purely for readability;
// all are called once per side from Evaluator.sideScore.

package eval

import (
	"github.com/Rice-Rocket/chess-engine-sub000/internal/position"
	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

// mobilityScore counts, for each minor/major piece, the squares it attacks
// that aren't occupied by a friendly piece or guarded by an enemy pawn, and
// looks up a per-piece-type bonus curve for that count.
func (e *Evaluator) mobilityScore(b *position.Board, c Color) score {
	them := c.Other()
	friendly := b.ColorBb(c)
	occ := b.AllPieces()
	enemyPawnAttacks := e.pawnAttackSet(b, them)

	var s score
	for _, pt := range [...]PieceType{Knight, Bishop, Rook, Queen} {
		bb := b.PieceBb(c, pt)
		for bb != 0 {
			var sq Square
			sq, bb = bb.PopLsb()
			attacks := e.tables.GetAttacks(pt, sq, occ) &^ friendly &^ enemyPawnAttacks
			n := attacks.PopCount()
			s.mg += mobilityBonus(pt, n, true)
			s.eg += mobilityBonus(pt, n, false)
		}
	}
	return s
}

// pawnAttackSet returns every square attacked by at least one pawn of
// color c.
func (e *Evaluator) pawnAttackSet(b *position.Board, c Color) Bitboard {
	var attacks Bitboard
	pawns := b.PieceBb(c, Pawn)
	for pawns != 0 {
		var sq Square
		sq, pawns = pawns.PopLsb()
		attacks |= e.tables.PawnAttacks[c][sq]
	}
	return attacks
}

// pawnStructure penalizes doubled and isolated pawns; both are cheap,
// purely-structural terms independent of game phase weighting beyond their
// own mg/eg split.
func (e *Evaluator) pawnStructure(b *position.Board, c Color) score {
	const (
		doubledMg  Value = -11
		doubledEg  Value = -26
		isolatedMg Value = -5
		isolatedEg Value = -15
	)

	var s score
	pawns := b.PieceBb(c, Pawn)
	for f := File(0); f < 8; f++ {
		onFile := pawns & FileBb(f)
		n := onFile.PopCount()
		if n >= 2 {
			s.mg += doubledMg * Value(n-1)
			s.eg += doubledEg * Value(n-1)
		}
		if n == 0 {
			continue
		}
		var neighbors Bitboard
		if f > 0 {
			neighbors |= FileBb(f - 1)
		}
		if f < 7 {
			neighbors |= FileBb(f + 1)
		}
		if pawns&neighbors == 0 {
			s.mg += isolatedMg * Value(n)
			s.eg += isolatedEg * Value(n)
		}
	}
	return s
}

// passedPawns finds every pawn with no enemy pawn on its own file or an
// adjacent file ahead of it, and scores it by rank, discounted if the
// stop square in front is occupied.
func (e *Evaluator) passedPawns(b *position.Board, c Color) score {
	them := c.Other()
	enemyPawns := b.PieceBb(them, Pawn)
	occ := b.AllPieces()

	var s score
	pawns := b.PieceBb(c, Pawn)
	for pawns != 0 {
		var sq Square
		sq, pawns = pawns.PopLsb()
		if e.tables.PassedPawnMask[c][sq]&enemyPawns != 0 {
			continue
		}
		rank := int(sq.Rank())
		if c == Black {
			rank = 7 - rank
		}
		mg, eg := passedRankBonusMg[rank], passedRankBonusEg[rank]

		stop := sq + Square(stopOffset(c))
		if stop >= 0 && stop < 64 && occ.Has(stop) {
			mg /= 2
			eg /= 2
		}
		s.mg += mg
		s.eg += eg
	}
	return s
}

func stopOffset(c Color) Direction {
	if c == White {
		return North
	}
	return South
}

// kingSafety scores the attacker pressure on the squares immediately
// surrounding the king, weighted by attacker type and roughly squared so
// the penalty grows non-linearly with attacker count, plus a pawn-shelter
// strength term. Middlegame only; king safety fades out in the endgame,
// folded into the taper via a zero endgame term.
func (e *Evaluator) kingSafety(b *position.Board, c Color) score {
	them := c.Other()
	ring := e.tables.KingRing[b.KingSquare(c)]
	occ := b.AllPieces()

	danger := 0
	for _, pt := range [...]PieceType{Knight, Bishop, Rook, Queen} {
		bb := b.PieceBb(them, pt)
		for bb != 0 {
			var sq Square
			sq, bb = bb.PopLsb()
			attacked := e.tables.GetAttacks(pt, sq, occ) & ring
			if n := attacked.PopCount(); n > 0 {
				danger += kingDangerWeight[pt] * n
			}
		}
	}
	penalty := Value(danger * danger / 2048)
	shelter := kingShelterStrength(b, c, b.KingSquare(c))
	return score{mg: shelter - penalty, eg: 0}
}

// kingShelterStrength scores how much cover c's own pawns give c's king: it
// looks at the king's own file and its two neighbors, finds the nearest
// shelter pawn (the least advanced one) on each, and looks up a
// per-file/per-rank weakness weight by that pawn's relative rank (an absent
// or far-advanced pawn scores low, a pawn just in front of a back-rank king
// scores high).
func kingShelterStrength(b *position.Board, c Color, kingSq Square) Value {
	kx := int(kingSq.File())
	if kx < 1 {
		kx = 1
	}
	if kx > 6 {
		kx = 6
	}
	ownPawns := b.PieceBb(c, Pawn)

	v := Value(5)
	for file := kx - 1; file <= kx+1; file++ {
		onFile := ownPawns & FileBb(File(file))
		rank := 0
		for onFile != 0 {
			var sq Square
			sq, onFile = onFile.PopLsb()
			r := int(sq.Rank())
			if c == Black {
				r = 7 - r
			}
			if rank == 0 || r < rank {
				rank = r
			}
		}
		f := file
		if f > 7-f {
			f = 7 - f
		}
		v += kingWeakness[f][rank]
	}
	return v
}

// threats scores hanging enemy pieces: pieces attacked by us and not
// defended by any of their own pawns, weighted by the hanging piece's
// value.
func (e *Evaluator) threats(b *position.Board, c Color) score {
	them := c.Other()
	ourAttacks := e.allAttacks(b, c)
	theirPawnDefense := e.pawnAttackSet(b, them)

	var s score
	for pt := Knight; pt <= Queen; pt++ {
		hanging := b.PieceBb(them, pt) & ourAttacks &^ theirPawnDefense
		n := Value(hanging.PopCount())
		if n == 0 {
			continue
		}
		s.mg += n * PieceValueMg(pt) / 8
		s.eg += n * PieceValueEg(pt) / 8
	}
	return s
}

func (e *Evaluator) allAttacks(b *position.Board, c Color) Bitboard {
	occ := b.AllPieces()
	var a Bitboard
	a |= e.pawnAttackSet(b, c)
	for _, pt := range [...]PieceType{Knight, Bishop, Rook, Queen, King} {
		bb := b.PieceBb(c, pt)
		for bb != 0 {
			var sq Square
			sq, bb = bb.PopLsb()
			a |= e.tables.GetAttacks(pt, sq, occ)
		}
	}
	return a
}

// space rewards controlling safe squares in the center files and in the
// three ranks in front of a side's own camp, scaled by the number of minor
// and major pieces still on the board (space matters less once pieces are
// traded off). Middlegame-only, per classical convention.
func (e *Evaluator) space(b *position.Board, c Color) Value {
	spaceFiles := FileBb(2) | FileBb(3) | FileBb(4) | FileBb(5) // c,d,e,f

	var zone Bitboard
	if c == White {
		zone = spaceFiles & (RankBb(1) | RankBb(2) | RankBb(3))
	} else {
		zone = spaceFiles & (RankBb(4) | RankBb(5) | RankBb(6))
	}

	enemyPawnAttacks := e.pawnAttackSet(b, c.Other())
	safe := zone &^ enemyPawnAttacks &^ b.PieceBb(c, Pawn)

	pieceCount := 0
	for pt := Knight; pt <= Queen; pt++ {
		pieceCount += b.PieceBb(c, pt).PopCount()
	}

	return Value(safe.PopCount()*pieceCount) / 2
}
