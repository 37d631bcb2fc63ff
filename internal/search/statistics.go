//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Minimal run statistics: the counters this engine's callers actually
// consume (node count, depth reached, elapsed time, and the best line
// found).

package search

import (
	"time"

	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

// Statistics reports what the last Run call did.
type Statistics struct {
	Nodes        uint64
	Depth        int
	Elapsed      time.Duration
	BestValue    Value
	PrincipalVar []Move
}
