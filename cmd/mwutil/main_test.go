package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Version(t *testing.T) {
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"version"}, &out, &errOut)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "mwutil version")
}

func TestRun_UnknownCommand(t *testing.T) {
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"bogus"}, &out, &errOut)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "Error:")
}
