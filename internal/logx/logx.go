//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Package logx wraps github.com/op/go-logging: one stderr backend, one
// timestamped format string, module-named loggers.
package logx

import (
	"os"

	logging "github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
)

var configured = false

// Get returns a logger for the given module name, configuring the shared
// stderr backend on first use.
func Get(name string) *logging.Logger {
	log := logging.MustGetLogger(name)
	if !configured {
		backend := logging.NewLogBackend(os.Stderr, "", 0)
		formatted := logging.NewBackendFormatter(backend, format)
		leveled := logging.AddModuleLevel(formatted)
		leveled.SetLevel(logging.INFO, "")
		logging.SetBackend(leveled)
		configured = true
	}
	return log
}

// SetLevel adjusts the verbosity of every logger sharing the backend.
func SetLevel(level logging.Level) {
	logging.SetLevel(level, "")
}
