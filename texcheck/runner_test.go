package texcheck_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vroland/mediawiki-parser-utils/texcheck"
)

// writeFakeChecker writes an executable shell script that mimics the
// checker's stdout contract.
func writeFakeChecker(t *testing.T, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "texvccheck")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755)
	require.NoError(t, err)
	return path
}

func TestExecRunner_PassesSourceAsArgument(t *testing.T) {
	path := writeFakeChecker(t, `printf '+%s' "$1"`)
	runner := texcheck.NewExecRunner(nil)

	output, err := runner.Run(context.Background(), path, "x^2")
	require.NoError(t, err)
	assert.Equal(t, []byte("+x^2"), output)
}

func TestExecRunner_IgnoresExitStatus(t *testing.T) {
	path := writeFakeChecker(t, `printf 'S'; exit 1`)
	runner := texcheck.NewExecRunner(nil)

	output, err := runner.Run(context.Background(), path, "bad")
	require.NoError(t, err)
	assert.Equal(t, []byte("S"), output)
}

func TestExecRunner_LaunchFailure(t *testing.T) {
	runner := texcheck.NewExecRunner(nil)

	_, err := runner.Run(context.Background(), filepath.Join(t.TempDir(), "missing"), "x")
	require.ErrorContains(t, err, "failed to launch formula checker")
}
