package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunSafelyRecoversPanic(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	exitCode := runSafely(nil, func(_ []string) int {
		panic("boom")
	}, &errOut)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, errOut.String(), "panic recovered: boom")
}

func TestRunSafelyPassesThroughExitCode(t *testing.T) {
	t.Parallel()

	var errOut bytes.Buffer

	exitCode := runSafely(nil, func(_ []string) int {
		return 0
	}, &errOut)

	assert.Equal(t, 0, exitCode)
	assert.Empty(t, errOut.String())
}

func TestRunWithArgsUnknownCommand(t *testing.T) {
	t.Parallel()

	exitCode := runWithArgs([]string{"bogus"})

	assert.Equal(t, 1, exitCode)
}

func TestRunWithArgsHelp(t *testing.T) {
	t.Parallel()

	exitCode := runWithArgs([]string{"--help"})

	assert.Equal(t, 0, exitCode)
}
