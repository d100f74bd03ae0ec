package dict

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDict(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPlainWords(t *testing.T) {
	d, err := Load(writeDict(t, "This\nis\n\na\ntest\n"))
	require.NoError(t, err)

	assert.Equal(t, 4, d.Len())
	assert.True(t, d.Contains("this"), "words are lowercased on load")
	assert.True(t, d.Contains("test"))
	assert.False(t, d.Contains("missing"))
	assert.Zero(t, d.Freq("test"))
}

func TestLoadFrequencies(t *testing.T) {
	d, err := Load(writeDict(t, "the\t23135851162\nof\t13151942776\nthe\t5\n"))
	require.NoError(t, err)

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, int64(23135851162), d.Freq("the"), "duplicates keep the larger frequency")
	assert.Equal(t, int64(13151942776), d.Freq("of"))
}

func TestLoadBadFrequency(t *testing.T) {
	_, err := Load(writeDict(t, "word\tnotanumber\n"))
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWordsSorted(t *testing.T) {
	d := New("zebra", "apple", "mango")
	assert.Equal(t, []string{"apple", "mango", "zebra"}, d.Words())
}
