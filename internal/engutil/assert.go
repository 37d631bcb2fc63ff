//go:build !debug

//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Assert is a no-op in release builds. Build with -tags debug to get the
// checked variant in assert_debug.go.

package engutil

// Debug reports whether build-tag debug assertions are compiled in.
const Debug = false

// Assert does nothing in this build; the debug build's Assert panics with
// msg if test is false. This no-op build still evaluates test and the
// format arguments at the call site, so callers
// that can't afford that cost should guard with `if engutil.Debug { ... }`
// as well.
func Assert(test bool, msg string, a ...interface{}) {}
