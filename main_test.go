package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadParams(t *testing.T) {
	var params commandParams
	require.True(t, params.Read([]string{"simple-test-runner", "-data", "extra.yaml", "-debug", "-no-color"}))
	assert.Equal(t, commandParams{dataFile: "extra.yaml", debug: true, noColor: true}, params)

	var defaults commandParams
	require.True(t, defaults.Read([]string{"simple-test-runner"}))
	assert.Equal(t, commandParams{}, defaults)

	var bad commandParams
	assert.False(t, bad.Read([]string{"simple-test-runner", "-no-such-flag"}))
	assert.False(t, bad.Read([]string{"simple-test-runner", "stray"}))
}

func TestRunRejectsDataForUnknownMethod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yaml")
	require.NoError(t, os.WriteFile(path, []byte("methods:\n  NoSuchMethod:\n    - [1]\n"), 0600))

	err := run(commandParams{dataFile: path, noColor: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown method "NoSuchMethod"`)
}

func TestRunRejectsMissingDataFile(t *testing.T) {
	err := run(commandParams{dataFile: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.Error(t, err)
}
