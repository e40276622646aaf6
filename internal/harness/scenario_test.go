package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "players.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "players", s.Name)
	assert.Equal(t, "player", s.Check)
	assert.Equal(t, filepath.Join("testdata", "scenarios"), s.BaseDir)
	require.Len(t, s.Cases, 7)

	assert.True(t, s.Cases[0].HasValue())
	assert.Nil(t, s.Cases[0].Path)

	require.NotNil(t, s.Cases[1].Path)
	assert.Equal(t, ".level", *s.Cases[1].Path)
	assert.Equal(t, "number expected", s.Cases[1].Reason)

	require.NotNil(t, s.Cases[4].Path)
	assert.Equal(t, "", *s.Cases[4].Path, "explicit empty path means root")

	assert.False(t, s.Cases[5].HasValue())
	assert.Equal(t, "fixtures/player.json", s.Cases[5].File)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join("testdata", "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read scenario file")
}

func TestParseScenario_NullIsAValue(t *testing.T) {
	s, err := ParseScenario([]byte(`
name: nulls
description: explicit null
check: nil
cases:
  - name: null value
    value: null
    expect: pass
  - name: tilde
    value: ~
    expect: pass
`))
	require.NoError(t, err)

	for _, c := range s.Cases {
		assert.True(t, c.HasValue(), c.Name)
		v, err := caseValue("", &c)
		require.NoError(t, err)
		assert.Nil(t, v)
	}
}

func TestParseScenario_Invalid(t *testing.T) {
	header := "name: s\ndescription: d\ncheck: number\n"

	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing name",
			yaml: "description: d\ncheck: number\ncases:\n  - {name: a, value: 1, expect: pass}\n",
			want: "name is required",
		},
		{
			name: "missing description",
			yaml: "name: s\ncheck: number\ncases:\n  - {name: a, value: 1, expect: pass}\n",
			want: "description is required",
		},
		{
			name: "missing check",
			yaml: "name: s\ndescription: d\ncases:\n  - {name: a, value: 1, expect: pass}\n",
			want: "check is required",
		},
		{
			name: "no cases",
			yaml: header,
			want: "cases list is required",
		},
		{
			name: "unnamed case",
			yaml: header + "cases:\n  - {value: 1, expect: pass}\n",
			want: "cases[0]: name is required",
		},
		{
			name: "duplicate case",
			yaml: header + "cases:\n  - {name: a, value: 1, expect: pass}\n  - {name: a, value: 2, expect: pass}\n",
			want: `cases[1]: duplicate case name "a"`,
		},
		{
			name: "neither value nor file",
			yaml: header + "cases:\n  - {name: a, expect: pass}\n",
			want: "exactly one of value or file",
		},
		{
			name: "both value and file",
			yaml: header + "cases:\n  - {name: a, value: 1, file: x.json, expect: pass}\n",
			want: "exactly one of value or file",
		},
		{
			name: "missing expect",
			yaml: header + "cases:\n  - {name: a, value: 1}\n",
			want: "expect is required",
		},
		{
			name: "bad expect",
			yaml: header + "cases:\n  - {name: a, value: 1, expect: maybe}\n",
			want: `expect must be "pass" or "fail", got "maybe"`,
		},
		{
			name: "reason on pass",
			yaml: header + "cases:\n  - {name: a, value: 1, expect: pass, reason: x}\n",
			want: "path and reason only apply to expect: fail",
		},
		{
			name: "unknown field",
			yaml: header + "cases:\n  - {name: a, value: 1, expct: pass}\n",
			want: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
