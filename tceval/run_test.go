package tceval

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texteval/tceval/internal/baseline"
	"github.com/texteval/tceval/internal/dict"
)

func TestRunCorrectorPreservesOrder(t *testing.T) {
	c := baseline.NewCloseToDictionary(dict.New("this", "is", "a", "test"), 1)
	lines := []string{"a tset", "this si", "is fine", "a tset", "tihs is"}

	out, err := RunCorrector(context.Background(), c, lines, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a test", "this is", "is fine", "a test", "this is"}, out)
}

func TestRunDetector(t *testing.T) {
	d := baseline.NewOutOfDictionary(dict.New("ok"), true)
	out, err := RunDetector(context.Background(), d, []string{"ok bad", "ok ok"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"0 1", "0 0"}, out)
}

func TestRunCorrectorPropagatesError(t *testing.T) {
	_, err := RunCorrector(context.Background(), failing{}, []string{"x", "y"}, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errBoom) || strings.Contains(err.Error(), "boom"))
}

var errBoom = errors.New("boom")

type failing struct{}

func (failing) Name() string { return "failing" }
func (failing) Correct(context.Context, string) (string, error) {
	return "", errBoom
}
