//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Entry is a 24-byte record storing the full 64-bit key for
// collision detection, the best move, a static eval and a search value,
// and a single bit-packed word carrying depth, bound type, and generation
// age.

package tt

import . "github.com/Rice-Rocket/chess-engine-sub000/internal/types"

const (
	depthMask = 0x00FF
	boundMask = 0x0300
	boundShift = 8
	ageMask    = 0xFC00
	ageShift   = 10
)

// entry is one transposition-table slot. Zero value is "empty".
type entry struct {
	key   Key
	move  Move
	eval  Value
	value Value
	meta  uint16
}

func packMeta(depth int, bound Bound, age uint8) uint16 {
	return uint16(depth)&depthMask | (uint16(bound)<<boundShift)&boundMask | (uint16(age)<<ageShift)&ageMask
}

func (e entry) depth() int    { return int(e.meta & depthMask) }
func (e entry) bound() Bound  { return Bound((e.meta & boundMask) >> boundShift) }
func (e entry) age() uint8    { return uint8((e.meta & ageMask) >> ageShift) }
func (e entry) isEmpty() bool { return e.key == 0 && e.meta == 0 }
