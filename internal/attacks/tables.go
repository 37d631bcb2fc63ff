//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Package attacks builds the startup-time precomputed tables this engine
// needs: knight/king/pawn attack masks, ray masks, align masks, king-ring
// masks, passed-pawn masks, distance tables, and the magic-bitboard
// sliding-attack lookup for rooks and bishops. Everything here is built
// once by New() and is immutable afterwards: a value constructed once and
// shared by reference, never a mutated package-level global.
package attacks

import (
	"golang.org/x/sync/errgroup"

	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

// Tables is the immutable bundle of precomputed attack/geometry data. Build
// once with New() and share by pointer.
type Tables struct {
	KnightAttacks [64]Bitboard
	KingAttacks   [64]Bitboard
	PawnAttacks   [2][64]Bitboard // attacker-from sets, indexed by defending color's own pawn color

	// Rays[s][d] is every square strictly between s and the edge along
	// direction d (index into RayDirections), not including s itself.
	Rays [64][8]Bitboard
	// NumToEdge[s][d] is the count of squares from s to the edge along d.
	NumToEdge [64][8]int

	// AlignMask[a][b] is the full line through a and b (both directions)
	// if collinear (same rank, file, or diagonal), else empty.
	AlignMask [64][64]Bitboard

	KingRing [64]Bitboard

	// PassedPawnMask[c][s] is the three-file forward cone ahead of a pawn
	// of color c on square s, used to test passed-pawn candidacy.
	PassedPawnMask [2][64]Bitboard
	ForwardFiles   [2][64]Bitboard
	PawnAttackSpan [2][64]Bitboard
	ForwardRanks   [2][8]Bitboard

	ManhattanDist  [64][64]int
	ChebyshevDist  [64][64]int
	CenterDistance [64]int

	rookMagics   [64]magic
	bishopMagics [64]magic
}

// New builds every precomputed table once. Magic-bitboard search for rooks
// and bishops is independent per piece type, so the two searches run
// concurrently via errgroup, the one legitimately parallel ambient task in
// an otherwise single-threaded engine.
func New() *Tables {
	t := &Tables{}

	t.initLeaperAttacks()
	t.initRaysAndAlign()
	t.initKingRing()
	t.initPawnStructureMasks()
	t.initDistances()

	var g errgroup.Group
	g.Go(func() error {
		t.rookMagics = initMagics(rookDirections)
		return nil
	})
	g.Go(func() error {
		t.bishopMagics = initMagics(bishopDirections)
		return nil
	})
	_ = g.Wait()

	return t
}

func (t *Tables) initLeaperAttacks() {
	knightDeltas := []Direction{17, 15, 10, 6, -6, -10, -15, -17}
	kingDeltas := []Direction{1, -1, 8, -8, 9, 7, -7, -9}

	for s := Square(0); s < 64; s++ {
		for _, d := range knightDeltas {
			if to := knightStep(s, d); to != SquareNone {
				t.KnightAttacks[s] = t.KnightAttacks[s].PushSquare(to)
			}
		}
		for _, d := range kingDeltas {
			if to := s.To(d); to != SquareNone {
				t.KingAttacks[s] = t.KingAttacks[s].PushSquare(to)
			}
		}
		if to := s.To(NorthWest); to != SquareNone {
			t.PawnAttacks[White][s] = t.PawnAttacks[White][s].PushSquare(to)
		}
		if to := s.To(NorthEast); to != SquareNone {
			t.PawnAttacks[White][s] = t.PawnAttacks[White][s].PushSquare(to)
		}
		if to := s.To(SouthWest); to != SquareNone {
			t.PawnAttacks[Black][s] = t.PawnAttacks[Black][s].PushSquare(to)
		}
		if to := s.To(SouthEast); to != SquareNone {
			t.PawnAttacks[Black][s] = t.PawnAttacks[Black][s].PushSquare(to)
		}
	}
}

// knightStep validates a knight hop the same way Square.To validates ray
// steps: reject wraparound by bounding the file delta.
func knightStep(s Square, d Direction) Square {
	to := s + Square(d)
	if to < 0 || to > 63 {
		return SquareNone
	}
	df := int(to.File()) - int(s.File())
	if df < 0 {
		df = -df
	}
	dr := int(to.Rank()) - int(s.Rank())
	if dr < 0 {
		dr = -dr
	}
	if (df == 1 && dr == 2) || (df == 2 && dr == 1) {
		return to
	}
	return SquareNone
}

func (t *Tables) initRaysAndAlign() {
	for s := Square(0); s < 64; s++ {
		for di, d := range RayDirections {
			cur := s
			for {
				next := cur.To(d)
				if next == SquareNone {
					break
				}
				cur = next
				t.Rays[s][di] = t.Rays[s][di].PushSquare(cur)
				t.NumToEdge[s][di]++
			}
		}
	}
	for a := Square(0); a < 64; a++ {
		for b := Square(0); b < 64; b++ {
			if a == b {
				continue
			}
			for di, d := range RayDirections {
				if t.Rays[a][di].Has(b) {
					opp := oppositeDirIndex(di)
					line := SquareBb(a).PushSquare(b) | t.Rays[a][di] | t.Rays[b][opp]
					t.AlignMask[a][b] = line
					break
				}
			}
		}
	}
}

// oppositeDirIndex maps a RayDirections index to the index of its opposite
// direction, used to extend an align mask back through 'a' from 'b'.
func oppositeDirIndex(di int) int {
	// RayDirections order: N, S, W, E, NW, SE, NE, SW
	opp := [8]int{1, 0, 3, 2, 5, 4, 7, 6}
	return opp[di]
}

func (t *Tables) initKingRing() {
	for s := Square(0); s < 64; s++ {
		ring := t.KingAttacks[s].PushSquare(s)
		t.KingRing[s] = ring
	}
}

func (t *Tables) initPawnStructureMasks() {
	for s := Square(0); s < 64; s++ {
		f, r := s.File(), int(s.Rank())

		// forward files: own file plus adjacent files.
		var files Bitboard
		for _, ff := range []int{int(f) - 1, int(f), int(f) + 1} {
			if ff >= 0 && ff <= 7 {
				files |= FileBb(File(ff))
			}
		}
		t.ForwardFiles[White][s] = files & aboveRank(r)
		t.ForwardFiles[Black][s] = files & belowRank(r)
		t.PassedPawnMask[White][s] = t.ForwardFiles[White][s]
		t.PassedPawnMask[Black][s] = t.ForwardFiles[Black][s]

		t.PawnAttackSpan[White][s] = adjacentFiles(f) & aboveRank(r)
		t.PawnAttackSpan[Black][s] = adjacentFiles(f) & belowRank(r)
	}
	for r := 0; r < 8; r++ {
		t.ForwardRanks[White][r] = aboveRank(r)
		t.ForwardRanks[Black][r] = belowRank(r)
	}
}

func adjacentFiles(f File) Bitboard {
	b := FileBb(f)
	if f > 0 {
		b |= FileBb(f - 1)
	}
	if f < 7 {
		b |= FileBb(f + 1)
	}
	return b
}

func aboveRank(r int) Bitboard {
	var b Bitboard
	for rr := r + 1; rr <= 7; rr++ {
		b |= RankBb(Rank(rr))
	}
	return b
}

func belowRank(r int) Bitboard {
	var b Bitboard
	for rr := r - 1; rr >= 0; rr-- {
		b |= RankBb(Rank(rr))
	}
	return b
}

func (t *Tables) initDistances() {
	for a := Square(0); a < 64; a++ {
		for b := Square(0); b < 64; b++ {
			t.ManhattanDist[a][b] = ManhattanDistance(a, b)
			t.ChebyshevDist[a][b] = ChebyshevDistance(a, b)
		}
		t.CenterDistance[a] = centerManhattan(a)
	}
}

func centerManhattan(s Square) int {
	f, r := int(s.File()), int(s.Rank())
	df := f - 3
	if f >= 4 {
		df = f - 4
	}
	if df < 0 {
		df = -df
	}
	dr := r - 3
	if r >= 4 {
		dr = r - 4
	}
	if dr < 0 {
		dr = -dr
	}
	return df + dr
}

// GetAttacks returns the attack set of a piece of type pt standing on sq
// given the current occupancy. Pawns are not supported here (direction
// depends on color; use PawnAttacks directly) and panic.
func (t *Tables) GetAttacks(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return t.KnightAttacks[sq]
	case King:
		return t.KingAttacks[sq]
	case Bishop:
		return t.bishopMagics[sq].attacks(occupied)
	case Rook:
		return t.rookMagics[sq].attacks(occupied)
	case Queen:
		return t.bishopMagics[sq].attacks(occupied) | t.rookMagics[sq].attacks(occupied)
	default:
		panic("attacks: GetAttacks does not support pawns or NoPieceType")
	}
}
