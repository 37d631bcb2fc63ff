//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Package config holds the engine's tunable settings, read from a TOML
// file with BurntSushi/toml and falling back silently to defaults if the
// file is missing. Sections map to this engine's own components (search
// limits and table size live here; the evaluator currently has nothing a
// user would tune).
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Rice-Rocket/chess-engine-sub000/internal/engutil"
)

// SearchConfig holds defaults used when a caller doesn't specify an
// explicit search.Limits (e.g. an interactive "go" command with no time
// control given).
type SearchConfig struct {
	DefaultDepth    int
	TableSizeMB     int
	UseNullMove     bool
	UseLateMoveRed  bool
	UseLateMovePrun bool
}

// LogConfig controls default logger verbosity.
type LogConfig struct {
	Level string
}

// Settings is the loaded configuration; Setup populates it from file or
// leaves the package defaults below in place.
type Settings struct {
	Log    LogConfig
	Search SearchConfig
}

// Default returns the built-in configuration used when no config.toml is
// present or it can't be parsed.
func Default() Settings {
	return Settings{
		Log: LogConfig{Level: "info"},
		Search: SearchConfig{
			DefaultDepth:    6,
			TableSizeMB:     64,
			UseNullMove:     true,
			UseLateMoveRed:  true,
			UseLateMovePrun: true,
		},
	}
}

// Load reads path (resolved via engutil.ResolveFile) as TOML into a copy of
// Default(), returning the defaults unchanged (and no error) if the file
// can't be found; a missing config file is not fatal. A file that exists
// but can't be parsed yields the defaults plus a wrapped parse error.
func Load(path string) (Settings, error) {
	s := Default()
	resolved, err := engutil.ResolveFile(path)
	if err != nil {
		return s, nil
	}
	if _, err := toml.DecodeFile(resolved, &s); err != nil {
		return s, fmt.Errorf("config: parsing %s: %w", resolved, err)
	}
	return s, nil
}

// String renders every Search setting via reflection, for operator visibility
// (e.g. printed once at startup).
func (s Settings) String() string {
	var b strings.Builder
	b.WriteString("Search:\n")
	v := reflect.ValueOf(s.Search)
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		fmt.Fprintf(&b, "  %-16s %v\n", t.Field(i).Name, v.Field(i).Interface())
	}
	return b.String()
}
