//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Memory/GC reporting, locale-formatted via golang.org/x/text/message.

package engutil

import (
	"runtime"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// MemStat reports current allocation and GC counters.
func MemStat() string {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	return printer.Sprintf("alloc=%d totalAlloc=%d heapAlloc=%d heapObjects=%d numGC=%d",
		mem.Alloc, mem.TotalAlloc, mem.HeapAlloc, mem.HeapObjects, mem.NumGC)
}

// GcWithStats forces a garbage collection and reports before/after memory
// stats plus how long collection took.
func GcWithStats() string {
	var b strings.Builder
	b.WriteString("before: ")
	b.WriteString(MemStat())
	start := time.Now()
	runtime.GC()
	elapsed := time.Since(start)
	b.WriteString(printer.Sprintf(" gc=%dms after: ", elapsed.Milliseconds()))
	b.WriteString(MemStat())
	return b.String()
}
