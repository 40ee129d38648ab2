package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vroland/mediawiki-parser-utils/cmd/mwutil/commands"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cli := commands.New()
	cli.SetArgs(args)
	cli.SetOutput(&out, &errOut)
	if stdin != "" {
		cli.SetInput(strings.NewReader(stdin))
	}

	err := cli.Execute(context.Background())
	return out.String(), errOut.String(), err
}

func TestTarget(t *testing.T) {
	out, _, err := runCLI(t, "", "target", "Grenzwert (Folge)", "Analysis/Folgen")

	require.NoError(t, err)
	assert.Equal(t, "Grenzwert_@LBR@Folge@RBR@\nAnalysis@SLASH@Folgen\n", out)
}

func TestTarget_Safe(t *testing.T) {
	long := strings.Repeat("Grenzwert ", 50)

	out, _, err := runCLI(t, "", "target", "--safe", long)

	require.NoError(t, err)
	line := strings.TrimSuffix(out, "\n")
	assert.LessOrEqual(t, len(line), 200)
}

func TestText_Stdin(t *testing.T) {
	doc := `
type: document
content:
  - type: paragraph
    content:
      - type: text
        text: Hallo Welt
`

	out, _, err := runCLI(t, doc, "text", "-")

	require.NoError(t, err)
	assert.Equal(t, "Hallo Welt\n", out)
}

func TestText_MissingFile(t *testing.T) {
	_, _, err := runCLI(t, "", "text", filepath.Join(t.TempDir(), "missing.yaml"))

	require.ErrorContains(t, err, "failed to open tree file")
}

func TestCheck(t *testing.T) {
	script := `#!/bin/sh
case "$1" in
  "1+1") printf '+OK' ;;
  "bad") printf 'S' ;;
  *) printf 'X' ;;
esac
`
	path := filepath.Join(t.TempDir(), "texvccheck")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))

	t.Run("valid formula", func(t *testing.T) {
		out, _, err := runCLI(t, "", "check", "--checker", path, "1+1")
		require.NoError(t, err)
		assert.Contains(t, out, "1+1")
	})

	t.Run("invalid formula fails the command", func(t *testing.T) {
		out, _, err := runCLI(t, "", "check", "--checker", path, "1+1", "bad")
		require.ErrorContains(t, err, "formulas failed validation")
		assert.Contains(t, out, "syntax error")
	})

	t.Run("missing checker configuration", func(t *testing.T) {
		t.Setenv("TEXVCCHECK", "")
		_, _, err := runCLI(t, "", "check", "x")
		require.ErrorContains(t, err, "no checker binary configured")
	})
}

func TestVersion(t *testing.T) {
	out, _, err := runCLI(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, out, "mwutil version")
}
