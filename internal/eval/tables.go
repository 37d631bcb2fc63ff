//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Piece-square, mobility, imbalance, and king-shelter bonus tables. PSQT
// values are the classical tables also used by move ordering's PSQT delta;
// mobility/imbalance magnitudes are representative classical-evaluation
// values rather than exact published engine constants, while kingWeakness
// is ported as-is; see DESIGN.md. All tables are indexed from White's
// point of view, rank 0 = rank 1; callers mirror the square for Black.
package eval

import . "github.com/Rice-Rocket/chess-engine-sub000/internal/types"

var psqtPawn = [64]Value{
	0, 0, 0, 0, 0, 0, 0, 0,
	5, 10, 10, -20, -20, 10, 10, 5,
	5, -5, -10, 0, 0, -10, -5, 5,
	0, 0, 0, 20, 20, 0, 0, 0,
	5, 5, 10, 25, 25, 10, 5, 5,
	10, 10, 20, 30, 30, 20, 10, 10,
	50, 50, 50, 50, 50, 50, 50, 50,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var psqtKnight = [64]Value{
	-50, -40, -30, -30, -30, -30, -40, -50,
	-40, -20, 0, 5, 5, 0, -20, -40,
	-30, 5, 10, 15, 15, 10, 5, -30,
	-30, 0, 15, 20, 20, 15, 0, -30,
	-30, 5, 15, 20, 20, 15, 5, -30,
	-30, 0, 10, 15, 15, 10, 0, -30,
	-40, -20, 0, 0, 0, 0, -20, -40,
	-50, -40, -30, -30, -30, -30, -40, -50,
}

var psqtBishop = [64]Value{
	-20, -10, -10, -10, -10, -10, -10, -20,
	-10, 5, 0, 0, 0, 0, 5, -10,
	-10, 10, 10, 10, 10, 10, 10, -10,
	-10, 0, 10, 10, 10, 10, 0, -10,
	-10, 5, 5, 10, 10, 5, 5, -10,
	-10, 0, 5, 10, 10, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -10, -10, -10, -10, -20,
}

var psqtRook = [64]Value{
	0, 0, 0, 5, 5, 0, 0, 0,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	-5, 0, 0, 0, 0, 0, 0, -5,
	5, 10, 10, 10, 10, 10, 10, 5,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var psqtQueen = [64]Value{
	-20, -10, -10, -5, -5, -10, -10, -20,
	-10, 0, 5, 0, 0, 0, 0, -10,
	-10, 5, 5, 5, 5, 5, 0, -10,
	0, 0, 5, 5, 5, 5, 0, -5,
	-5, 0, 5, 5, 5, 5, 0, -5,
	-10, 0, 5, 5, 5, 5, 0, -10,
	-10, 0, 0, 0, 0, 0, 0, -10,
	-20, -10, -10, -5, -5, -10, -10, -20,
}

var psqtKingMg = [64]Value{
	20, 30, 10, 0, 0, 10, 30, 20,
	20, 20, -5, -5, -5, -5, 20, 20,
	-10, -20, -20, -20, -20, -20, -20, -10,
	-20, -30, -30, -40, -40, -30, -30, -20,
	-30, -40, -40, -50, -50, -40, -40, -30,
	-40, -50, -50, -60, -60, -50, -50, -40,
	-60, -60, -60, -60, -60, -60, -60, -60,
	-80, -70, -70, -70, -70, -70, -70, -80,
}

var psqtKingEg = [64]Value{
	-50, -30, -30, -30, -30, -30, -30, -50,
	-30, -30, 0, 0, 0, 0, -30, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 30, 40, 40, 30, -10, -30,
	-30, -10, 20, 30, 30, 20, -10, -30,
	-30, -20, -10, 0, 0, -10, -20, -30,
	-50, -40, -30, -20, -20, -30, -40, -50,
}

func psqt(pt PieceType, mg bool) *[64]Value {
	switch pt {
	case Pawn:
		return &psqtPawn
	case Knight:
		return &psqtKnight
	case Bishop:
		return &psqtBishop
	case Rook:
		return &psqtRook
	case Queen:
		return &psqtQueen
	case King:
		if mg {
			return &psqtKingMg
		}
		return &psqtKingEg
	default:
		return nil
	}
}

// mirror flips a White-oriented square index to Black's point of view.
func mirror(s Square) Square {
	return MakeSquare(s.File(), Rank(7-int(s.Rank())))
}

// PSQT returns the piece-square bonus for a piece of type pt and color c
// standing on s, for either the middlegame or endgame table.
func PSQT(pt PieceType, c Color, s Square, mg bool) Value {
	tbl := psqt(pt, mg)
	if tbl == nil {
		return 0
	}
	if c == Black {
		s = mirror(s)
	}
	return tbl[s]
}

// mobilityBonusMg/Eg[pieceType][attackCount] are indexed 0..27 (the widest
// plausible mobility count, queen on an open board); out-of-range counts
// clamp to the last entry.
var mobilityBonusMg = map[PieceType][]Value{
	Knight: {-62, -53, -12, -4, 3, 13, 22, 28, 33},
	Bishop: {-48, -20, 16, 26, 38, 51, 55, 63, 63, 68, 81, 81, 91, 98},
	Rook:   {-60, -20, 2, 3, 3, 11, 22, 31, 40, 40, 41, 48, 57, 57, 62},
	Queen:  {-30, -12, -8, -9, 20, 23, 23, 35, 38, 53, 64, 65, 65, 66, 67, 67, 72, 72, 77, 79, 93, 108, 108, 108, 110, 114, 114, 116},
}

var mobilityBonusEg = map[PieceType][]Value{
	Knight: {-81, -56, -31, -16, 5, 11, 17, 20, 25},
	Bishop: {-59, -23, -3, 13, 24, 42, 54, 57, 65, 73, 78, 86, 88, 97},
	Rook:   {-78, -17, 23, 39, 70, 99, 103, 121, 134, 139, 158, 164, 168, 169, 172},
	Queen:  {-48, -30, -7, 19, 40, 55, 59, 75, 78, 96, 96, 100, 121, 127, 131, 133, 136, 141, 147, 150, 151, 168, 168, 171, 182, 182, 192, 219},
}

func mobilityBonus(pt PieceType, count int, mg bool) Value {
	var tbl []Value
	if mg {
		tbl = mobilityBonusMg[pt]
	} else {
		tbl = mobilityBonusEg[pt]
	}
	if len(tbl) == 0 {
		return 0
	}
	if count >= len(tbl) {
		count = len(tbl) - 1
	}
	if count < 0 {
		count = 0
	}
	return tbl[count]
}

// passedRankBonusMg/Eg[rank] (White's point of view, rank 0 = rank1) give
// the passed-pawn bonus; passedPawns halves it when the stop square is
// occupied and applies no king-distance adjustment.
var passedRankBonusMg = [8]Value{0, 5, 12, 10, 57, 163, 271, 0}
var passedRankBonusEg = [8]Value{0, 28, 33, 41, 72, 177, 260, 0}

// quadraticOurs/quadraticTheirs are the triangular (pt2 <= pt1) coefficient
// matrices for the imbalance term; slot 0 is the bishop-pair pseudo-count,
// slots 1-5 are pawn/knight/bishop/rook/queen. Only the structure (a
// triangular double sum over these 6 slots, one matrix for a side's own
// counts and one for the opponent's) is recovered; the numeric entries are
// representative classical-evaluation magnitudes, not exact recovered
// constants (see DESIGN.md).
var quadraticOurs = [6][6]int{
	{1438},
	{40, 38},
	{32, 255, -62},
	{0, 104, 4, 0},
	{-26, -2, 47, 105, -208},
	{-189, 24, 117, 133, -134, -6},
}

var quadraticTheirs = [6][6]int{
	{0},
	{36, 0},
	{9, 63, 0},
	{59, 65, 42, 0},
	{46, 39, 24, -24, 0},
	{97, 100, -42, 137, 268, 0},
}

// kingDangerWeight[attackerType] weights how much one attacker of that type
// contributes to king danger; the total is scaled and squared. This
// combiner is this module's own: the upstream king-danger functions it
// would otherwise be grounded on are themselves unimplemented (see
// DESIGN.md).
var kingDangerWeight = map[PieceType]int{
	Knight: 81, Bishop: 52, Rook: 44, Queen: 10,
}

// kingWeakness[file][rank] scores the shelter a side's own pawns give its
// king on one of the three files around it: file is clamped to 0..3 (the
// king's own file mirrored to the a-d half of the board), and rank is the
// relative rank of the least advanced own pawn on that file (1 = second
// rank, 0 meaning no pawn at all). Ported from the classical
// Stockfish pawn-shelter weakness table.
var kingWeakness = [4][7]Value{
	{-6, 81, 93, 58, 39, 18, 25},
	{-43, 61, 35, -49, -29, -11, -63},
	{-10, 75, 23, -2, 32, 3, -45},
	{-39, -13, -29, -52, -48, -67, -166},
}
