package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/gramod/pkg/errors"
)

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, *bytes.Buffer, error) {
	t.Helper()
	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&logs)
	err := root.ExecuteContext(context.Background())
	return out.String(), &logs, err
}

func TestComputeArgument(t *testing.T) {
	out, _, err := execute(t, "", "compute", "1000")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "G mod 1000 = 387", lines[len(lines)-1])
	assert.True(t, strings.HasPrefix(lines[0], "3^n mod 1000 = "), lines[0])
}

func TestComputeRootDefault(t *testing.T) {
	out, _, err := execute(t, "", "2018")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "G mod 2018 = 1557\n"), out)
}

func TestComputeTrace(t *testing.T) {
	out, _, err := execute(t, "", "compute", "108")
	require.NoError(t, err)
	assert.Equal(t, `3^n mod 108 = [1, 3, 9, 27, 81] => 27
Rotation is
3^n mod 108 = [81, 27] (cycle length = 2)
3^3^n mod 108 = [27] (cycle length = 1)
G mod 108 = 27
`, out)
}

func TestComputeNoSteps(t *testing.T) {
	out, _, err := execute(t, "", "compute", "--steps=false", "127")
	require.NoError(t, err)
	assert.Equal(t, "G mod 127 = 119\n", out)
}

func TestComputePrompt(t *testing.T) {
	out, _, err := execute(t, "109\n", "compute", "--steps=false")
	require.NoError(t, err)
	assert.Equal(t, "I will calculate G mod N.\nN = G mod 109 = 1\n", out)
}

func TestComputeInvalid(t *testing.T) {
	for _, arg := range []string{"1", "0", "abc", "1.5", "99999999999999999999999"} {
		t.Run(arg, func(t *testing.T) {
			out, _, err := execute(t, "", "compute", arg)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidModulus), "got %v", err)
			assert.NotContains(t, out, "G mod")
		})
	}
}

func TestComputeInvalidPrompt(t *testing.T) {
	_, _, err := execute(t, "ten\n", "compute")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidModulus), "got %v", err)
}

func TestComputeTooManyArgs(t *testing.T) {
	_, _, err := execute(t, "", "compute", "10", "20")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	out, logs, err := execute(t, "", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "G mod 1,000 = 387")
	assert.Contains(t, out, "G mod 2,018 = 1,557")
	assert.Contains(t, out, "5 cases passed")
	assert.Contains(t, logs.String(), "Self-check passed")
}

func TestGraphStdout(t *testing.T) {
	out, _, err := execute(t, "", "graph", "108")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "digraph G {"), out)
	assert.Contains(t, out, "subgraph cluster_1")
}

func TestGraphDOTFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.dot")
	_, logs, err := execute(t, "", "graph", "127", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "subgraph cluster_2")
	assert.Contains(t, logs.String(), "Rendered G mod 127")
}

func TestGraphBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.png")
	_, _, err := execute(t, "", "graph", "127", "-o", path)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat), "got %v", err)
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gramod.toml")
	require.NoError(t, os.WriteFile(path, []byte("max_modulus = 200\n"), 0o644))

	out, logs, err := execute(t, "", "--config", path, "graph", "100000")
	require.NoError(t, err)
	assert.Contains(t, out, "mod 200")
	assert.Contains(t, logs.String(), "N clamped to 200")
}

func TestConfigFlagInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gramod.toml")
	require.NoError(t, os.WriteFile(path, []byte("colour = \"red\"\n"), 0o644))

	_, _, err := execute(t, "", "--config", path, "check")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "got %v", err)
}

func TestCompletion(t *testing.T) {
	out, _, err := execute(t, "", "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "gramod")
}

func TestDisplayAddr(t *testing.T) {
	assert.Equal(t, "localhost:8080", displayAddr(":8080"))
	assert.Equal(t, "127.0.0.1:9000", displayAddr("127.0.0.1:9000"))
}
