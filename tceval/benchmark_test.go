package tceval

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBenchmark(t *testing.T, task, name string, corrupt, correct []string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), task, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	writeFile := func(file string, lines []string) {
		data := ""
		for _, l := range lines {
			data += l + "\n"
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(data), 0o644))
	}
	writeFile("corrupt.txt", corrupt)
	writeFile("correct.txt", correct)
	return dir
}

func TestLoadBenchmark(t *testing.T) {
	dir := writeBenchmark(t, "wsc", "arxiv",
		[]string{"hel lo", "worldpeace"},
		[]string{"hello", "world peace"},
	)

	b, err := LoadBenchmark(dir)
	require.NoError(t, err)
	assert.Equal(t, "arxiv", b.Name)
	assert.Equal(t, TaskWhitespace, b.Task)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []string{"hel lo", "worldpeace"}, b.Corrupt)
}

func TestLoadBenchmarkUnknownTask(t *testing.T) {
	dir := writeBenchmark(t, "gec", "bea", []string{"a"}, []string{"a"})
	_, err := LoadBenchmark(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown benchmark task")
}

func TestLoadBenchmarkLineCountMismatch(t *testing.T) {
	dir := writeBenchmark(t, "sec", "bea322", []string{"a", "b"}, []string{"a"})
	var serr *ShapeError
	_, err := LoadBenchmark(dir)
	require.ErrorAs(t, err, &serr)
}

func TestLoadBenchmarkMissingFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "wsc", "empty")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	_, err := LoadBenchmark(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadPredictions(t *testing.T) {
	dir := writeBenchmark(t, "seds", "neuspell", []string{"x", "y"}, []string{"0", "1"})
	b, err := LoadBenchmark(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "model.txt")
	require.NoError(t, os.WriteFile(path, []byte("0\n0\n"), 0o644))
	preds, err := b.LoadPredictions(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "0"}, preds)

	require.NoError(t, os.WriteFile(path, []byte("0\n"), 0o644))
	var serr *ShapeError
	_, err = b.LoadPredictions(path)
	require.ErrorAs(t, err, &serr)
}

func TestParseTask(t *testing.T) {
	for _, s := range []string{"wsc", "sec", "sedw", "seds"} {
		task, err := ParseTask(s)
		require.NoError(t, err)
		assert.Equal(t, Task(s), task)
		assert.NotEqual(t, s, task.Description())
	}
	_, err := ParseTask("nope")
	require.Error(t, err)
}

func TestParseLabels(t *testing.T) {
	labels, err := ParseLabels("0 1 1 0")
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true, false}, labels)

	labels, err = ParseLabels("")
	require.NoError(t, err)
	assert.Empty(t, labels)

	_, err = ParseLabels("0 2")
	require.Error(t, err)
}
