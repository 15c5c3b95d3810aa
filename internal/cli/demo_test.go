package cli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo_PlainFrame(t *testing.T) {
	out, err := runCLI(t, "", nil, "demo", "--plain", "--items", "50", "--height", "8", "--columns", "2")
	require.NoError(t, err)

	assert.NotContains(t, out, "\x1b[")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, 8 list rows and the help line.
	require.Len(t, lines, 10)
	assert.Contains(t, lines[0], "50 items")
	assert.Contains(t, lines[0], "showing 1–4")
}

func TestDemo_InvalidFlags(t *testing.T) {
	_, err := runCLI(t, "", nil, "demo", "--plain", "--item-height", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item_height")

	_, err = runCLI(t, "", nil, "demo", "extra")
	require.Error(t, err)
}
