//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Limits is one struct holding every way a search can be told to stop,
// filled in by whichever caller knows the game's time control.

package search

import "time"

// Limits controls how long and how deep a search runs. The zero value
// means "search until Stop is called"; callers normally set at least one
// bound.
type Limits struct {
	Infinite bool
	Depth    int
	Nodes    uint64
	MoveTime time.Duration

	WhiteTime time.Duration
	BlackTime time.Duration
	WhiteInc  time.Duration
	BlackInc  time.Duration
	MovesToGo int
}

// NewLimits returns an empty Limits.
func NewLimits() Limits {
	return Limits{}
}
