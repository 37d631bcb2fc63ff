//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Package tt implements a fixed-size transposition table indexed directly
// by the low bits of the zobrist key (capacity is always a power of two).
// Mate scores are stored as a distance from the storing node rather than
// from the root, and converted back to root-relative on retrieval, so that
// a mate found via one path is still valid when transposed into at a
// different search ply.
package tt

import (
	"sync"
	"sync/atomic"

	"github.com/Rice-Rocket/chess-engine-sub000/internal/logx"
	. "github.com/Rice-Rocket/chess-engine-sub000/internal/types"
)

var log = logx.Get("tt")

const entrySize = 24 // bytes: key(8) + move(2) + eval(4) + value(4) + meta(2), padded to 8-byte alignment

// Table is a fixed-capacity hash table of search results. A single
// RWMutex guards the whole table: Put takes the write lock and Probe the
// read lock, so concurrent Probe and Put calls are safe.
type Table struct {
	mu       sync.RWMutex
	entries  []entry
	mask     uint64
	age      uint32
	hitCount int64
	probes   int64
}

// NewTable builds a table sized to roughly sizeMB megabytes, rounded down
// to the nearest power-of-two entry count.
func NewTable(sizeMB int) *Table {
	t := &Table{}
	t.Resize(sizeMB)
	return t
}

// Resize reallocates the table, discarding all entries.
func (t *Table) Resize(sizeMB int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if sizeMB < 1 {
		sizeMB = 1
	}
	want := uint64(sizeMB) * 1024 * 1024 / entrySize
	capacity := uint64(1)
	for capacity*2 <= want {
		capacity *= 2
	}
	if capacity == 0 {
		capacity = 1
	}
	t.entries = make([]entry, capacity)
	t.mask = capacity - 1
	t.age = 0
	atomic.StoreInt64(&t.hitCount, 0)
	atomic.StoreInt64(&t.probes, 0)
	log.Infof("transposition table resized: %d entries (%d MB requested)", capacity, sizeMB)
}

// Clear zeroes every entry without reallocating.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.entries {
		t.entries[i] = entry{}
	}
	t.age = 0
}

func (t *Table) index(key Key) uint64 {
	return uint64(key) & t.mask
}

// Result is what Probe returns on a hit.
type Result struct {
	Move  Move
	Eval  Value
	Value Value
	Depth int
	Bound Bound
}

// Probe looks up key. ply is the current search ply from the root, used to
// translate a stored node-relative mate distance back into one relative to
// the root.
func (t *Table) Probe(key Key, ply int) (Result, bool) {
	t.mu.RLock()
	e := t.entries[t.index(key)]
	t.mu.RUnlock()

	atomic.AddInt64(&t.probes, 1)
	if e.key != key || e.isEmpty() {
		return Result{}, false
	}
	atomic.AddInt64(&t.hitCount, 1)
	return Result{
		Move:  e.move,
		Eval:  e.eval,
		Value: fromStorage(e.value, ply),
		Depth: e.depth(),
		Bound: e.bound(),
	}, true
}

// Put stores a result, replacing the existing occupant of the slot unless
// it holds the same key from the current generation searched strictly
// deeper and the new result is not an exact bound. A different key or an
// older generation is always replaced.
func (t *Table) Put(key Key, move Move, eval, value Value, depth int, bound Bound, ply int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := t.index(key)
	old := t.entries[idx]
	sameGen := !old.isEmpty() && old.key == key && old.age() == uint8(t.age)
	if sameGen && old.depth() > depth && bound != BoundExact {
		return
	}
	if move == MoveNone && old.key == key {
		move = old.move
	}

	t.entries[idx] = entry{
		key:   key,
		move:  move,
		eval:  eval,
		value: toStorage(value, ply),
		meta:  packMeta(depth, bound, uint8(t.age)),
	}
}

// NewGeneration bumps the age counter; older entries become preferentially
// replaceable without being explicitly cleared.
func (t *Table) NewGeneration() {
	t.mu.Lock()
	t.age++
	t.mu.Unlock()
}

// Hashfull reports table occupancy in permille, sampled from the first
// 1000 slots.
func (t *Table) Hashfull() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := len(t.entries)
	if n > 1000 {
		n = 1000
	}
	used := 0
	for i := 0; i < n; i++ {
		if !t.entries[i].isEmpty() {
			used++
		}
	}
	if n == 0 {
		return 0
	}
	return used * 1000 / n
}

// Len returns the entry capacity.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// toStorage converts a root-relative mate value found at the current search
// ply into one relative to this node, so it remains meaningful after being
// retrieved at a different ply via transposition.
func toStorage(v Value, ply int) Value {
	if v >= ValueMate-1000 {
		return v + Value(ply)
	}
	if v <= -ValueMate+1000 {
		return v - Value(ply)
	}
	return v
}

// fromStorage reverses toStorage.
func fromStorage(v Value, ply int) Value {
	if v >= ValueMate-1000 {
		return v - Value(ply)
	}
	if v <= -ValueMate+1000 {
		return v + Value(ply)
	}
	return v
}
