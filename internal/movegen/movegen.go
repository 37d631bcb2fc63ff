//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Package movegen implements a fully-legal move generator: rather than the
// slower make/unmake-then-check-for-check approach, it precomputes an
// attack map and pin/check-ray sets once per call and uses them to filter
// candidate moves directly, so illegal moves are never generated in the
// first place. See DESIGN.md.
package movegen

import (
	"github.com/Rice-Rocket/chess-engine-sub000/internal/attacks"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/position"
	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

// Mode selects which subset of legal moves to produce.
type Mode uint8

const (
	// All generates every legal move.
	All Mode = iota
	// CapturesOnly restricts sliding/knight/king targets to enemy
	// occupied squares and skips quiet castling and quiet pawn pushes,
	// for use by quiescence search.
	CapturesOnly
)

// maxLegalMoves bounds the inline move buffer; no reachable chess position
// has more than 218 legal moves.
const maxLegalMoves = 218

// MoveList is a bounded inline move buffer: hot-path generation must not
// allocate per node.
type MoveList struct {
	moves [maxLegalMoves]Move
	n     int
}

func (l *MoveList) add(m Move) {
	l.moves[l.n] = m
	l.n++
}

// Slice returns the generated moves. The backing array is owned by the
// MoveList value; callers that need the moves to outlive it should copy.
func (l *MoveList) Slice() []Move { return l.moves[:l.n] }

func (l *MoveList) Len() int { return l.n }

// Generator produces legal moves against a Tables instance. Stateless and
// safe to share; all per-call data lives on the stack of Generate.
type Generator struct {
	tables *attacks.Tables
}

// New builds a Generator bound to a precomputed Tables instance.
func New(tables *attacks.Tables) *Generator {
	return &Generator{tables: tables}
}

// attackData is the pin/check analysis computed once per Generate call.
type attackData struct {
	enemyAttacks  Bitboard
	checkRayMask  Bitboard
	pinned        Bitboard
	checkersCount int
}

// Generate returns every legal move for the side to move in mode.
func (g *Generator) Generate(b *position.Board, mode Mode) MoveList {
	var list MoveList

	us := b.SideToMove()
	them := us.Other()
	kingSq := b.KingSquare(us)
	occ := b.AllPieces()
	friendlyOcc := b.ColorBb(us)
	enemyOcc := b.ColorBb(them)

	data := g.computeAttackData(b, kingSq, occ, us, them)

	g.genKingMoves(b, &list, mode, kingSq, data, friendlyOcc, us)

	if data.checkersCount >= 2 {
		return list
	}

	g.genSlidingMoves(b, &list, mode, occ, friendlyOcc, enemyOcc, kingSq, data, us)
	g.genKnightMoves(b, &list, mode, friendlyOcc, enemyOcc, data, us)
	g.genPawnMoves(b, &list, mode, occ, enemyOcc, kingSq, data, us)

	return list
}

// computeAttackData builds the enemy attack map and the pin/check-ray sets
// by walking the 8 ray directions from the king.
func (g *Generator) computeAttackData(b *position.Board, kingSq Square, occ Bitboard, us, them Color) attackData {
	t := g.tables
	var data attackData

	// Step 1: enemy attack map. Sliders see through the friendly king so
	// squares "behind" it remain unsafe for the king to step onto.
	occNoKing := occ.PopSquare(kingSq)
	enemyOrtho := b.EnemyOrthogonalSliders()
	enemyDiag := b.EnemyDiagonalSliders()
	for bb := enemyOrtho; bb != 0; {
		var sq Square
		sq, bb = bb.PopLsb()
		data.enemyAttacks |= t.GetAttacks(Rook, sq, occNoKing)
	}
	for bb := enemyDiag; bb != 0; {
		var sq Square
		sq, bb = bb.PopLsb()
		data.enemyAttacks |= t.GetAttacks(Bishop, sq, occNoKing)
	}
	for bb := b.PieceBb(them, Knight); bb != 0; {
		var sq Square
		sq, bb = bb.PopLsb()
		data.enemyAttacks |= t.KnightAttacks[sq]
	}
	data.enemyAttacks |= t.KingAttacks[b.KingSquare(them)]
	data.enemyAttacks |= pawnAttackSet(b.PieceBb(them, Pawn), them)

	// Steps 2-3: ray walk for checks/pins, then knight/pawn checks.
	for di := 0; di < 8; di++ {
		if di < 4 && enemyOrtho == 0 {
			continue
		}
		if di >= 4 && enemyDiag == 0 {
			continue
		}
		ray := t.Rays[kingSq][di]
		blockers := ray & occ
		if blockers == 0 {
			continue
		}
		positive := rayIsPositive(di)
		first := nearestInRay(blockers, positive)
		firstPiece := b.PieceAt(first)

		if firstPiece.Color() == us {
			beyond := t.Rays[first][di] & occ
			if beyond == 0 {
				continue
			}
			second := nearestInRay(beyond, positive)
			secondPiece := b.PieceAt(second)
			if secondPiece.Color() == them && slidesAlong(secondPiece, di) {
				data.pinned = data.pinned.PushSquare(first)
			}
			continue
		}

		// firstPiece belongs to them (or is empty, impossible since
		// blockers bit is set only where a piece exists).
		if slidesAlong(firstPiece, di) {
			data.checkRayMask |= ray &^ (t.Rays[first][di])
			data.checkersCount++
		}
	}

	if knightCheckers := t.KnightAttacks[kingSq] & b.PieceBb(them, Knight); knightCheckers != 0 {
		data.checkRayMask |= knightCheckers
		data.checkersCount++
	}
	if pawnCheckers := t.PawnAttacks[us][kingSq] & b.PieceBb(them, Pawn); pawnCheckers != 0 {
		data.checkRayMask |= pawnCheckers
		data.checkersCount++
	}

	if data.checkersCount == 0 {
		data.checkRayMask = BbAll
	}
	return data
}

// rayIsPositive reports whether RayDirections[di] has a positive square-
// index delta, i.e. walking the ray increases the square index.
func rayIsPositive(di int) bool {
	switch RayDirections[di] {
	case North, East, NorthEast, NorthWest:
		return true
	default:
		return false
	}
}

func nearestInRay(ray Bitboard, positive bool) Square {
	if positive {
		return ray.Lsb()
	}
	return ray.Msb()
}

// slidesAlong reports whether p's piece type attacks along ray direction
// index di (orthogonal for di<4, diagonal for di>=4).
func slidesAlong(p Piece, di int) bool {
	if di < 4 {
		return p.IsOrthogonalSlider()
	}
	return p.IsDiagonalSlider()
}

// pawnAttackSet computes the set of squares attacked by every pawn in
// pawns, for the given pawn color, using direct (not reverse) attack
// shifts; used to build the enemy attack map.
func pawnAttackSet(pawns Bitboard, color Color) Bitboard {
	if color == White {
		return ((pawns &^ FileABb) << 7) | ((pawns &^ FileHBb) << 9)
	}
	return ((pawns &^ FileABb) >> 9) | ((pawns &^ FileHBb) >> 7)
}

func (g *Generator) genKingMoves(b *position.Board, list *MoveList, mode Mode, kingSq Square, data attackData, friendlyOcc Bitboard, us Color) {
	t := g.tables
	targets := t.KingAttacks[kingSq] &^ friendlyOcc &^ data.enemyAttacks
	enemyOcc := b.ColorBb(us.Other())
	for bb := targets; bb != 0; {
		var to Square
		to, bb = bb.PopLsb()
		if mode == CapturesOnly && !enemyOcc.Has(to) {
			continue
		}
		list.add(NewMove(kingSq, to, FlagNormal))
	}

	if mode == CapturesOnly || data.checkersCount > 0 {
		return
	}

	rights := b.CastlingRights()
	occ := b.AllPieces()
	rank := kingSq.Rank()

	kingsideRight, queensideRight := WhiteKingside, WhiteQueenside
	if us == Black {
		kingsideRight, queensideRight = BlackKingside, BlackQueenside
	}

	if rights.Has(kingsideRight) {
		f, gSq := MakeSquare(FileF, rank), MakeSquare(FileG, rank)
		if !occ.Has(f) && !occ.Has(gSq) && !data.enemyAttacks.Has(f) && !data.enemyAttacks.Has(gSq) {
			list.add(NewMove(kingSq, gSq, FlagCastling))
		}
	}
	if rights.Has(queensideRight) {
		b1, c, d := MakeSquare(FileB, rank), MakeSquare(FileC, rank), MakeSquare(FileD, rank)
		if !occ.Has(b1) && !occ.Has(c) && !occ.Has(d) && !data.enemyAttacks.Has(c) && !data.enemyAttacks.Has(d) {
			list.add(NewMove(kingSq, c, FlagCastling))
		}
	}
}

func (g *Generator) genSlidingMoves(b *position.Board, list *MoveList, mode Mode, occ, friendlyOcc, enemyOcc Bitboard, kingSq Square, data attackData, us Color) {
	t := g.tables
	for _, pt := range [3]PieceType{Bishop, Rook, Queen} {
		pieces := b.PieceBb(us, pt)
		if data.checkersCount > 0 {
			pieces &^= data.pinned
		}
		for bb := pieces; bb != 0; {
			var sq Square
			sq, bb = bb.PopLsb()
			targets := t.GetAttacks(pt, sq, occ) &^ friendlyOcc
			targets &= data.checkRayMask
			if data.pinned.Has(sq) {
				targets &= t.AlignMask[sq][kingSq]
			}
			if mode == CapturesOnly {
				targets &= enemyOcc
			}
			for tb := targets; tb != 0; {
				var to Square
				to, tb = tb.PopLsb()
				list.add(NewMove(sq, to, FlagNormal))
			}
		}
	}
}

func (g *Generator) genKnightMoves(b *position.Board, list *MoveList, mode Mode, friendlyOcc, enemyOcc Bitboard, data attackData, us Color) {
	t := g.tables
	knights := b.PieceBb(us, Knight) &^ data.pinned
	for bb := knights; bb != 0; {
		var sq Square
		sq, bb = bb.PopLsb()
		targets := t.KnightAttacks[sq] &^ friendlyOcc & data.checkRayMask
		if mode == CapturesOnly {
			targets &= enemyOcc
		}
		for tb := targets; tb != 0; {
			var to Square
			to, tb = tb.PopLsb()
			list.add(NewMove(sq, to, FlagNormal))
		}
	}
}

func (g *Generator) genPawnMoves(b *position.Board, list *MoveList, mode Mode, occ, enemyOcc Bitboard, kingSq Square, data attackData, us Color) {
	t := g.tables
	them := us.Other()
	pawns := b.PieceBb(us, Pawn)
	empty := ^occ

	forward := North
	startRank := Rank2
	promoRank := Rank8
	if us == Black {
		forward = South
		startRank = Rank7
		promoRank = Rank1
	}

	addPawnMove := func(from, to Square) bool {
		if !data.checkRayMask.Has(to) {
			return false
		}
		if data.pinned.Has(from) && !t.AlignMask[from][kingSq].Has(to) {
			return false
		}
		return true
	}

	if mode != CapturesOnly {
		singleTargets := shiftDir(pawns, forward) & empty
		for bb := singleTargets; bb != 0; {
			var to Square
			to, bb = bb.PopLsb()
			from := to - Square(forward)
			if !addPawnMove(from, to) {
				continue
			}
			g.addPawnMoveOrPromotions(list, from, to, to.Rank() == promoRank, false)
		}

		startPawns := pawns & RankBb(startRank)
		singleFromStart := shiftDir(startPawns, forward) & empty
		doubleTargets := shiftDir(singleFromStart, forward) & empty
		for bb := doubleTargets; bb != 0; {
			var to Square
			to, bb = bb.PopLsb()
			from := to - Square(2*forward)
			if !addPawnMove(from, to) {
				continue
			}
			list.add(NewMove(from, to, FlagPawnTwoForward))
		}
	}

	var capDirA, capDirB Direction
	if us == White {
		capDirA, capDirB = NorthWest, NorthEast
	} else {
		capDirA, capDirB = SouthWest, SouthEast
	}
	for _, d := range [2]Direction{capDirA, capDirB} {
		var shifted Bitboard
		if d == NorthWest || d == SouthWest {
			shifted = shiftDir(pawns&^FileABb, d)
		} else {
			shifted = shiftDir(pawns&^FileHBb, d)
		}
		targets := shifted & enemyOcc
		for bb := targets; bb != 0; {
			var to Square
			to, bb = bb.PopLsb()
			from := to - Square(d)
			if !addPawnMove(from, to) {
				continue
			}
			g.addPawnMoveOrPromotions(list, from, to, to.Rank() == promoRank, true)
		}
	}

	g.genEnPassant(b, list, kingSq, data, us, them)
}

func (g *Generator) addPawnMoveOrPromotions(list *MoveList, from, to Square, promotes, _capture bool) {
	if !promotes {
		list.add(NewMove(from, to, FlagNormal))
		return
	}
	list.add(NewMove(from, to, FlagPromoQueen))
	list.add(NewMove(from, to, FlagPromoRook))
	list.add(NewMove(from, to, FlagPromoBishop))
	list.add(NewMove(from, to, FlagPromoKnight))
}

// genEnPassant handles en passant captures, including the pin-by-discovery
// case where removing both pawns from the fifth/fourth rank exposes the
// king to a rook or queen along that rank.
func (g *Generator) genEnPassant(b *position.Board, list *MoveList, kingSq Square, data attackData, us, them Color) {
	epTarget := b.EpSquare()
	if epTarget == SquareNone {
		return
	}
	t := g.tables
	candidates := t.PawnAttacks[them][epTarget] & b.PieceBb(us, Pawn)
	for bb := candidates; bb != 0; {
		var from Square
		from, bb = bb.PopLsb()
		capSq := MakeSquare(epTarget.File(), from.Rank())

		if !data.checkRayMask.Has(epTarget) && !data.checkRayMask.Has(capSq) {
			continue
		}
		if data.pinned.Has(from) && !t.AlignMask[from][kingSq].Has(epTarget) {
			continue
		}
		if g.epDiscoversCheck(b, from, capSq, epTarget, kingSq) {
			continue
		}
		list.add(NewMove(from, epTarget, FlagEnPassant))
	}
}

func (g *Generator) epDiscoversCheck(b *position.Board, from, capSq, epTarget, kingSq Square) bool {
	occ := b.AllPieces().PopSquare(from).PopSquare(capSq).PushSquare(epTarget)
	return g.tables.GetAttacks(Rook, kingSq, occ)&b.EnemyOrthogonalSliders() != 0
}

// shiftDir shifts every bit of bb one step in direction d. Only the four
// pawn-move directions are used by this package, so diagonal shifts must be
// pre-masked by the caller to avoid file wraparound (as genPawnMoves does).
func shiftDir(bb Bitboard, d Direction) Bitboard {
	if d >= 0 {
		return bb << uint(d)
	}
	return bb >> uint(-d)
}
