//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// perftbench is a small command-line harness for the two things this
// module's components most need to be checked against by hand: a perft
// node count at a given depth and FEN, and an iterative-deepening search
// to a given depth or move time. There is deliberately no UCI loop,
// opening book, or EPD test suite runner here.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Rice-Rocket/chess-engine-sub000/internal/engutil"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/fen"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/game"
	"github.com/Rice-Rocket/chess-engine-sub000/internal/search"
)

var out = message.NewPrinter(language.English)

func main() {
	fenStr := flag.String("fen", fen.StartFen, "position to search or run perft on")
	perftDepth := flag.Int("perft", 0, "run perft to this depth and exit")
	searchDepth := flag.Int("depth", 0, "search to this fixed depth")
	moveTime := flag.Duration("movetime", 0, "search for this long instead of a fixed depth")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the run to ./cpu.pprof")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	g := game.New()
	if err := g.LoadFen(*fenStr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	switch {
	case *perftDepth > 0:
		runPerft(g, *perftDepth)
	default:
		runSearch(g, *searchDepth, *moveTime)
	}
}

func runPerft(g *game.Game, depth int) {
	start := time.Now()
	nodes := g.Perft(depth)
	elapsed := time.Since(start)
	nps := uint64(float64(nodes) / elapsed.Seconds())
	out.Printf("perft(%d) = %d nodes in %s (%d nps)\n", depth, nodes, elapsed, nps)
	out.Println(engutil.MemStat())
}

func runSearch(g *game.Game, depth int, moveTime time.Duration) {
	limits := search.NewLimits()
	limits.Depth = depth
	limits.MoveTime = moveTime
	if depth == 0 && moveTime == 0 {
		limits.Depth = 6
	}

	move, value, stats := g.BestMove(limits)
	out.Printf("bestmove %s  score %d  depth %d  nodes %d  time %s\n",
		move.StringUci(), value, stats.Depth, stats.Nodes, stats.Elapsed)
}
