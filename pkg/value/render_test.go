package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/tcheck/pkg/host"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"nil", nil, "nil"},
		{"int", 3, "3"},
		{"float", 1.5, "1.5"},
		{"whole float", 2.0, "2"},
		{"nan", math.NaN(), "NaN"},
		{"inf", math.Inf(-1), "-inf"},
		{"string", "a<b", `"a<b"`},
		{"bool", false, "false"},
		{"slice", []any{1, "a"}, `[1,"a"]`},
		{"map sorted", map[string]any{"b": 2, "a": 1}, `{"a":1,"b":2}`},
		{"buffer", []byte("abc"), "buffer(3 bytes)"},
		{"vector", host.Vector3{X: 1, Y: 2, Z: 3}, "Vector3(1, 2, 3)"},
		{"opaque", host.Opaque{Type: "Color3"}, "Color3"},
		{"function", func() {}, "function"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.v))
		})
	}
}

func TestRenderNormalizesStrings(t *testing.T) {
	// e + combining acute accent renders like the precomposed form.
	assert.Equal(t, Render("\u00e9"), Render("e\u0301"))
}

func TestRenderCyclicTableTerminates(t *testing.T) {
	m := map[string]any{}
	m["self"] = m
	assert.Contains(t, Render(m), "{...}")
}
