//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Precomputed pruning/reduction parameters: a late-move-reduction table
// indexed by (depth, moves searched), a late-move-pruning move-count cutoff
// indexed by depth, and flat futility margins indexed by depth left.

package search

import (
	"math"

	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

const maxPly = 128

var lmrTable [32][64]int

func init() {
	for d := 0; d < 32; d++ {
		for m := 0; m < 64; m++ {
			switch {
			case d <= 2:
				lmrTable[d][m] = 0
			case m <= 3:
				lmrTable[d][m] = 0
			default:
				lmrTable[d][m] = int(math.Round(math.Log(float64(d)) * math.Log(float64(m)) * 0.4))
			}
		}
	}
}

// lmrReduction returns how many plies to shave off depth for a quiet move
// at index movesSearched in the ordered list; it is zero at depth 2 or
// below and for the first four moves (index 0..3).
func lmrReduction(depth, movesSearched int) int {
	if depth >= 32 {
		depth = 31
	}
	if movesSearched >= 64 {
		movesSearched = 63
	}
	return lmrTable[depth][movesSearched]
}

var lmpTable [16]int

func init() {
	for d := 1; d < 16; d++ {
		lmpTable[d] = 3 + int(math.Pow(float64(d)+0.5, 1.8))
	}
}

// lmpMovesSearched returns how many quiet moves to try at a near-leaf node
// before skipping the rest (late move pruning).
func lmpMovesSearched(depth int) int {
	if depth >= 16 {
		depth = 15
	}
	return lmpTable[depth]
}

// futilityMargin[depthLeft] bounds how far a static eval can trail alpha
// and still be worth searching quiet moves at all, at shallow depth.
var futilityMargin = [5]Value{0, 150, 260, 410, 600}

func futility(depth int) Value {
	if depth < 0 {
		depth = 0
	}
	if depth >= len(futilityMargin) {
		return futilityMargin[len(futilityMargin)-1]
	}
	return futilityMargin[depth]
}

const nullMoveReduction = 3
