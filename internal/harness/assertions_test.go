package harness

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tcheck/pkg/check"
)

func strPtr(s string) *string { return &s }

func TestEvaluateCase(t *testing.T) {
	failure := &check.Failure{Path: check.Path{"tags", 1}, Reason: "string expected, got number"}

	tests := []struct {
		name string
		c    Case
		err  error
		want []string
	}{
		{
			name: "pass expected and got",
			c:    Case{Name: "a", Expect: ExpectPass},
		},
		{
			name: "fail expected and got",
			c:    Case{Name: "a", Expect: ExpectFail, Path: strPtr(".tags[1]"), Reason: "string expected"},
			err:  failure,
		},
		{
			name: "fail expected, got pass",
			c:    Case{Name: "a", Expect: ExpectFail},
			want: []string{`case "a": expected failure, got pass`},
		},
		{
			name: "pass expected, got fail",
			c:    Case{Name: "a", Expect: ExpectPass},
			err:  failure,
			want: []string{`case "a": expected pass, got failure: .tags[1]: string expected, got number`},
		},
		{
			name: "wrong path and reason",
			c:    Case{Name: "a", Expect: ExpectFail, Path: strPtr(""), Reason: "boolean"},
			err:  failure,
			want: []string{
				`case "a": expected failure at root, got failure at .tags[1]`,
				`case "a": expected failure mentioning "boolean", got ".tags[1]: string expected, got number"`,
			},
		},
		{
			name: "reason matches path prefix",
			c:    Case{Name: "a", Expect: ExpectFail, Reason: ".tags[1]:"},
			err:  failure,
		},
		{
			name: "plain error",
			c:    Case{Name: "a", Expect: ExpectFail, Reason: "boom"},
			err:  errors.New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := EvaluateCase(&tt.c, tt.err)
			var got []string
			for _, e := range errs {
				var ae *AssertionError
				require.ErrorAs(t, e, &ae)
				got = append(got, e.Error())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResult_Report(t *testing.T) {
	r := NewResult("s", "number")
	r.Cases = append(r.Cases,
		CaseResult{Name: "one", Expect: ExpectPass, Outcome: OutcomePass, OK: true},
		CaseResult{Name: "two", Expect: ExpectPass, Outcome: OutcomeFail, Report: "number expected, got string"},
	)
	r.AddError(`case "two": expected pass, got failure: number expected, got string`)

	assert.False(t, r.Pass)
	assert.Equal(t, "scenario: s\n"+
		"check: number\n"+
		"ok one: pass\n"+
		"MISMATCH two: fail: number expected, got string\n"+
		`error: case "two": expected pass, got failure: number expected, got string`+"\n"+
		"total: 1 ok, 1 mismatched\n", r.Report())
}
