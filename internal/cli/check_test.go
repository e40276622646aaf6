package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand_Pass(t *testing.T) {
	file := writeFile(t, t.TempDir(), "point.json", `{"x": 1, "y": 2}`)

	out, err := execute(t, "check", "point", file)

	require.NoError(t, err)
	assert.Equal(t, "✓ "+file+": point\n", out)
}

func TestCheckCommand_Rejected(t *testing.T) {
	file := writeFile(t, t.TempDir(), "point.yaml", "x: a\ny: 2\n")

	out, err := execute(t, "check", "point", file)

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, "✗ "+file+": .x: number expected, got string\n", out)
}

func TestCheckCommand_RejectedJSON(t *testing.T) {
	file := writeFile(t, t.TempDir(), "point.cue", "x: 1\ny: \"b\"\n")

	out, err := execute(t, "--format", "json", "check", "point", file)

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeRejected, resp.Error.Code)
	assert.Equal(t, ".y: number expected, got string", resp.Error.Message)
	assert.Equal(t, map[string]any{"path": ".y", "reason": "number expected, got string"}, resp.Error.Details)
}

func TestCheckCommand_PassJSON(t *testing.T) {
	file := writeFile(t, t.TempDir(), "n.json", `42`)

	out, err := execute(t, "--format", "json", "check", "integer", file)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, map[string]any{"check": "integer", "file": file, "pass": true}, resp.Data)
}

func TestCheckCommand_Stdin(t *testing.T) {
	out, err := executeWithInput(t, []byte("x: 1\ny: 2\n"), "check", "point", "-", "--input-format", "yaml")

	require.NoError(t, err)
	assert.Equal(t, "✓ -: point\n", out)
}

func TestCheckCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.json", `{}`)
	broken := writeFile(t, dir, "broken.json", `{"x":`)
	unknownExt := writeFile(t, dir, "value.txt", `1`)

	tests := []struct {
		name string
		args []string
		code string
	}{
		{"unknown check", []string{"check", "nope", good}, ErrCodeUnknownCheck},
		{"missing file", []string{"check", "table", dir + "/missing.json"}, ErrCodeDocument},
		{"syntax error", []string{"check", "table", broken}, ErrCodeDocument},
		{"unknown extension", []string{"check", "table", unknownExt}, ErrCodeDocument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)

			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.True(t, strings.HasPrefix(out, "Error ["+tt.code+"]: "), out)
		})
	}
}

func TestCheckCommand_MissingArgs(t *testing.T) {
	_, err := execute(t, "check", "point")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg")
}
