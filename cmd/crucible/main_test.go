package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_NoConfig(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	originalWd, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	defer func() {
		_ = os.Chdir(originalWd)
	}()

	os.Args = []string{"crucible", "version"}

	// Initialization fails because no crucible.yaml exists.
	exitCode := run()
	assert.Equal(t, 1, exitCode)
}
