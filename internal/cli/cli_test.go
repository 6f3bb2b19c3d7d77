package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dives = `MeanDepth MedianDepth SDDepth IQRDepth MeanTemp MedianTemp SDTemp IQRTemp Type
0 0 0 0 10 5 1 2 S
0 0 0 0 0 5 1 2 S
0 0 0 0 0 50 10 20 T
`

func writeData(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dives.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func Test_Evaluate(t *testing.T) {
	out, err := run(t, "evaluate", writeData(t, dives), "-k", "1", "--no-color")
	require.NoError(t, err)
	assert.Equal(t, "Value of k: 1\nNumber correct: 2/3\nPercentage correct: 66.66667%\n", out)
}

func Test_Evaluate_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	out, err := run(t, "evaluate", writeData(t, dives), "-k", "1")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
	assert.Equal(t, "Value of k: 1\nNumber correct: 2/3\nPercentage correct: 66.66667%\n", out)
}

func Test_Evaluate_Heatmap(t *testing.T) {
	heatmap := filepath.Join(t.TempDir(), "confusion.png")
	out, err := run(t, "evaluate", writeData(t, dives), "-k", "2", "--no-color", "--confusion", "--heatmap", heatmap)
	require.NoError(t, err)
	assert.Contains(t, out, "actual\\predicted")
	assert.Contains(t, out, "Confusion heat map saved to: "+heatmap)
	assert.FileExists(t, heatmap)
}

func Test_Evaluate_InvalidK(t *testing.T) {
	_, err := run(t, "evaluate", writeData(t, dives), "-k", "0")
	assert.EqualError(t, err, "invalid k 0: k must be at least 1")

	_, err = run(t, "evaluate", writeData(t, dives), "-k", "three")
	assert.ErrorContains(t, err, "invalid argument \"three\"")
}

func Test_Evaluate_InvalidFile(t *testing.T) {
	_, err := run(t, "evaluate", writeData(t, "0 0 0 0 0 5 1 2 S\n"), "-k", "1")
	assert.ErrorContains(t, err, "invalid file:")

	_, err = run(t, "evaluate", writeData(t, "MeanDepth\n0 0 0 0 0 five 1 2 S\n"), "-k", "1")
	assert.ErrorContains(t, err, ":2: field MedianTemp:")

	_, err = run(t, "evaluate", "-k", "1")
	assert.EqualError(t, err, "no data file: pass it as an argument or set data in the config")
}

func Test_Evaluate_Config(t *testing.T) {
	data := writeData(t, dives)
	configPath := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("data: "+data+"\nk: 2\nreport:\n  color: false\n"), 0o644))

	out, err := run(t, "evaluate", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Value of k: 2\n")

	// Flags win over the file.
	out, err = run(t, "evaluate", "--config", configPath, "-k", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Value of k: 1\n")
}

func Test_Sweep(t *testing.T) {
	plotPath := filepath.Join(t.TempDir(), "sweep.png")
	out, err := run(t, "sweep", writeData(t, dives), "--from", "1", "--to", "3", "--plot", plotPath)
	require.NoError(t, err)
	assert.Contains(t, out, "   1        2/3 66.66667%\n")
	assert.Contains(t, out, "Accuracy chart saved to: "+plotPath)
	assert.FileExists(t, plotPath)

	_, err = run(t, "sweep", writeData(t, dives), "--from", "4", "--to", "2")
	assert.EqualError(t, err, "invalid k range 4..2: range must start at 1 or above and must not be empty")
}

func Test_Classify(t *testing.T) {
	out, err := run(t, "classify", writeData(t, dives), "-k", "1", "--features", "0 0 0 0 0 48 9 19")
	require.NoError(t, err)
	assert.Contains(t, out, "Predicted label: T\n")
	assert.Contains(t, out, "0 Record: 2, Label: T, Distance: 2.6458\n")

	_, err = run(t, "classify", writeData(t, dives), "--features", "1 2 3")
	assert.EqualError(t, err, `invalid features "1 2 3": expected 8 numbers, got 3`)
}

func Test_Version(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "diveknn (devel)\n", out)
}
