//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Package engutil collects small cross-cutting helpers: locating a config
// file that may be relative to the working directory, the executable, or
// the user's home directory, and reporting memory/GC stats.
package engutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ResolveFile finds file, trying it as given, then relative to the working
// directory, the running executable, and the user's home directory in
// that order, and returns its absolute path.
func ResolveFile(file string) (string, error) {
	file = filepath.Clean(file)

	if filepath.IsAbs(file) {
		if fileExists(file) {
			return file, nil
		}
		return file, notFoundErr(file)
	}

	if dir, err := os.Getwd(); err == nil {
		if candidate := filepath.Join(dir, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	if exe, err := os.Executable(); err == nil {
		if candidate := filepath.Join(filepath.Dir(exe), file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		if candidate := filepath.Join(home, file); fileExists(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	return file, notFoundErr(file)
}

func notFoundErr(file string) error {
	return errors.New(fmt.Sprintf("engutil: file could not be found: %s", file))
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil || info == nil {
		return false
	}
	return info.Mode().IsRegular()
}
