package grid

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteGrid(t *testing.T) {
	var out bytes.Buffer
	Cmd.SetOut(&out)

	Cmd.SetArgs([]string{"-r", "US", "-y", "2025", "-m", "7"})
	require.NoError(t, Cmd.Execute())
	assert.Contains(t, out.String(), "July 2025")
	assert.Contains(t, out.String(), "  4* ")
	assert.Contains(t, out.String(), " 4  Independence Day")
	assert.NotContains(t, out.String(), "August")

	out.Reset()
	Cmd.SetArgs([]string{"-r", "US", "-y", "2025", "-m", "0"})
	require.NoError(t, Cmd.Execute())
	assert.Equal(t, 12, strings.Count(out.String(), " 2025\n"))

	Cmd.SetArgs([]string{"-y", "2025", "-m", "13"})
	assert.Error(t, Cmd.Execute())
}
