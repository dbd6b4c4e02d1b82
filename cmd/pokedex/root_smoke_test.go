package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTUIBadConfigReturnsError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".pokedex"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pokedex", "config"), []byte("limit: [oops\n"), 0600))

	err := runTUI()
	assert.Error(t, err)
}

func TestMainHelpFlagDoesNotExit(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"pokedex", "--help"}
	defer func() { os.Args = oldArgs }()

	// main() should return normally for help (no os.Exit).
	main()
}
