package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhitespaceOpsIdentity(t *testing.T) {
	for _, s := range []string{
		"",
		"word",
		"two words",
		"  padded  with   runs \t and tabs ",
		"über häßlich",
	} {
		ops, err := WhitespaceOps(s, s)
		require.NoError(t, err, "input %q", s)
		assert.Empty(t, ops, "input %q", s)
	}
}

func TestWhitespaceOps(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want []Op
	}{
		{
			name: "single insert",
			a:    "helloworld",
			b:    "hello world",
			want: []Op{{Kind: InsertSpace, Anchor: 5}},
		},
		{
			name: "single delete",
			a:    "hel lo",
			b:    "hello",
			want: []Op{{Kind: DeleteSpace, Anchor: 3}},
		},
		{
			name: "moved space is one delete and one insert",
			a:    "Th isis a tset.",
			b:    "This is a tset.",
			want: []Op{
				{Kind: DeleteSpace, Anchor: 2},
				{Kind: InsertSpace, Anchor: 4},
			},
		},
		{
			name: "leading and trailing whitespace is normalized away",
			a:    "  a b  ",
			b:    "a b",
			want: nil,
		},
		{
			name: "whitespace runs count once",
			a:    "a   b",
			b:    "a b",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WhitespaceOps(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, NewSet(tt.want...), got)
		})
	}
}

func TestWhitespaceOpsContentMismatch(t *testing.T) {
	_, err := WhitespaceOps("hello world", "help world")
	require.ErrorIs(t, err, ErrContentMismatch)

	_, err = WhitespaceOps("abc", "abcd")
	require.ErrorIs(t, err, ErrContentMismatch)
}

func TestApplyRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"helloworld", "hello world"},
		{"Th isis a tset.", "This is a tset."},
		{"a b c d", "abcd"},
		{"  spaced  out  ", "spacedout"},
		{"same text", "same text"},
		{"", ""},
	}
	for _, p := range pairs {
		ops, err := WhitespaceOps(p[0], p[1])
		require.NoError(t, err)
		assert.Equal(t, Normalize(p[1]), Apply(p[0], ops), "apply(%q, ops(%q))", p[0], p[1])
	}
}

func TestTokenOps(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want []Op
	}{
		{
			name: "identity",
			a:    "this is a test",
			b:    "this is a test",
			want: nil,
		},
		{
			name: "both empty",
			a:    "",
			b:    "",
			want: nil,
		},
		{
			name: "two substitutions keep their anchors",
			a:    "ths is a tst",
			b:    "this is a test",
			want: []Op{
				{Kind: SubstituteToken, Anchor: 0, Repl: "this"},
				{Kind: SubstituteToken, Anchor: 3, Repl: "test"},
			},
		},
		{
			name: "substitution changing length does not shift later anchors",
			a:    "a verry long sentense here",
			b:    "a very long sentence here",
			want: []Op{
				{Kind: SubstituteToken, Anchor: 1, Repl: "very"},
				{Kind: SubstituteToken, Anchor: 3, Repl: "sentence"},
			},
		},
		{
			name: "split word folds into one op",
			a:    "nowhere fast",
			b:    "no where fast",
			want: []Op{
				{Kind: SubstituteToken, Anchor: 0, Repl: "no where"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, NewSet(tt.want...), TokenOps(tt.a, tt.b))
		})
	}
}

func TestTokenOpsDeterministicAcrossCandidates(t *testing.T) {
	// two candidates that made the same correction must yield the same op
	corrupt := "teh cat sat"
	gt := TokenOps(corrupt, "the cat sat")
	pred := TokenOps(corrupt, "the cat sat")
	assert.Equal(t, gt, pred)
	assert.Equal(t, len(gt), gt.Intersection(pred))
}

func TestSetIntersection(t *testing.T) {
	a := NewSet(
		Op{Kind: InsertSpace, Anchor: 1},
		Op{Kind: DeleteSpace, Anchor: 4},
		Op{Kind: SubstituteToken, Anchor: 0, Repl: "x"},
	)
	b := NewSet(
		Op{Kind: InsertSpace, Anchor: 1},
		Op{Kind: SubstituteToken, Anchor: 0, Repl: "y"}, // different replacement, different op
	)
	assert.Equal(t, 1, a.Intersection(b))
	assert.Equal(t, 1, b.Intersection(a))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a b c", Normalize("  a \t b   c "))
	assert.Equal(t, "", Normalize("   "))
}
