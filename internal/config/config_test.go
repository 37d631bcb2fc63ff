//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFallsBackToDefaultsWhenFileMissing(t *testing.T) {
	s, err := Load("nonexistent-config-file.toml")
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestLoadOverridesFieldsFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := "[Log]\nLevel = \"debug\"\n\n[Search]\nDefaultDepth = 10\nTableSizeMB = 64\nUseNullMove = true\nUseLateMoveRed = true\nUseLateMovePrun = true\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", s.Log.Level)
	assert.Equal(t, 10, s.Search.DefaultDepth)
}

func TestLoadReturnsErrorOnMalformedToml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("this is not valid = = toml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestStringIncludesEveryFieldName(t *testing.T) {
	out := Default().String()
	assert.Contains(t, out, "DefaultDepth")
	assert.Contains(t, out, "TableSizeMB")
}
