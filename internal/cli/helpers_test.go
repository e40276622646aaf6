package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/tcheck/internal/catalog"
	"github.com/roach88/tcheck/pkg/check"
)

// testCatalog is the default catalogue plus the composites used by
// testdata scenarios.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat := catalog.Default()
	require.NoError(t, cat.Register("point", check.Interface(check.Fields{
		"x": check.Number,
		"y": check.Number,
	})))
	return cat
}

// execute runs the root command and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, nil, args...)
}

func executeWithInput(t *testing.T, stdin []byte, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommandWithCatalog(testCatalog(t))
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	if stdin != nil {
		cmd.SetIn(bytes.NewReader(stdin))
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
