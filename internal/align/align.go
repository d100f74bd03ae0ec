// Package align derives canonical, position-addressed edit-operation sets
// between two strings that carry the same content up to whitespace and
// token substitutions. Operation sets are the unit of comparison between
// groundtruth and predicted corrections.
package align

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/texteval/tceval/internal/edit"
)

// ErrContentMismatch reports that two strings disagree outside of
// whitespace and cannot be aligned. It signals a malformed prediction,
// not an internal bug.
var ErrContentMismatch = errors.New("align: non-whitespace content differs")

// Kind classifies a single edit operation.
type Kind uint8

const (
	// InsertSpace adds whitespace at a gap of the de-spaced reference.
	InsertSpace Kind = iota
	// DeleteSpace removes whitespace at a gap of the de-spaced reference.
	DeleteSpace
	// SubstituteToken replaces the token at a token index of the reference.
	SubstituteToken
)

func (k Kind) String() string {
	switch k {
	case InsertSpace:
		return "insert"
	case DeleteSpace:
		return "delete"
	case SubstituteToken:
		return "substitute"
	default:
		return "unknown"
	}
}

// Op is one localized edit. Anchor addresses a gap in the de-spaced
// reference for whitespace ops, and a token index for substitutions.
// Repl is the replacement text of a substitution and is part of the op's
// identity: two substitutions at the same anchor with different
// replacements are different operations.
type Op struct {
	Kind   Kind
	Anchor int
	Repl   string
}

func (o Op) String() string {
	if o.Kind == SubstituteToken {
		return fmt.Sprintf("%s@%d->%q", o.Kind, o.Anchor, o.Repl)
	}
	return fmt.Sprintf("%s@%d", o.Kind, o.Anchor)
}

// Set is an unordered, deduplicated collection of ops.
type Set map[Op]struct{}

// NewSet builds a Set from ops.
func NewSet(ops ...Op) Set {
	s := make(Set, len(ops))
	for _, op := range ops {
		s[op] = struct{}{}
	}
	return s
}

// Intersection returns the number of ops present in both sets.
func (s Set) Intersection(o Set) int {
	if len(o) < len(s) {
		s, o = o, s
	}
	n := 0
	for op := range s {
		if _, ok := o[op]; ok {
			n++
		}
	}
	return n
}

// Normalize collapses all whitespace runs to single spaces and strips
// leading/trailing whitespace. Two corrections are the "same string" when
// their normalized forms are equal.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// boundaries strips whitespace from s and records, per remaining rune,
// whether whitespace preceded it. gaps[0] is always false since leading
// whitespace is normalized away.
func boundaries(s string) ([]rune, []bool) {
	s = strings.TrimSpace(s)
	chars := make([]rune, 0, len(s))
	gaps := make([]bool, 0, len(s))
	pending := false
	for _, r := range s {
		if unicode.IsSpace(r) {
			pending = true
			continue
		}
		gaps = append(gaps, pending)
		chars = append(chars, r)
		pending = false
	}
	return chars, gaps
}

// WhitespaceOps returns the minimal op set transforming a into b, where a
// and b must contain the same non-whitespace runes in the same order.
// Anchors are gap indices in the de-spaced reference, so the same
// operation is comparable across candidates of different literal length.
func WhitespaceOps(a, b string) (Set, error) {
	ca, ga := boundaries(a)
	cb, gb := boundaries(b)
	if string(ca) != string(cb) {
		return nil, fmt.Errorf("%w: %q vs %q", ErrContentMismatch, string(ca), string(cb))
	}

	ops := make(Set)
	for i := 1; i < len(ga); i++ {
		switch {
		case !ga[i] && gb[i]:
			ops[Op{Kind: InsertSpace, Anchor: i}] = struct{}{}
		case ga[i] && !gb[i]:
			ops[Op{Kind: DeleteSpace, Anchor: i}] = struct{}{}
		}
	}
	return ops, nil
}

// Apply replays a whitespace op set on a and returns the resulting
// normalized string. Applying WhitespaceOps(a, b) to a reproduces
// Normalize(b); op order does not matter.
func Apply(a string, ops Set) string {
	chars, gaps := boundaries(a)
	for op := range ops {
		if op.Anchor <= 0 || op.Anchor >= len(gaps) {
			continue
		}
		switch op.Kind {
		case InsertSpace:
			gaps[op.Anchor] = true
		case DeleteSpace:
			gaps[op.Anchor] = false
		}
	}
	var b strings.Builder
	b.Grow(len(chars) * 2)
	for i, r := range chars {
		if i > 0 && gaps[i] {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TokenOps aligns the whitespace-split tokens of a and b and returns one
// substitute-token op per reference token whose aligned replacement
// differs from it. Alignment runs over tokens, not characters, with
// edit-distance costs, so a substitution that changes a token's length
// cannot shift every later anchor. Tokens of b that align to no reference
// token are folded into the replacement of the preceding reference token,
// so word splits and merges come out as a single deterministic op.
func TokenOps(a, b string) Set {
	ta := strings.Fields(a)
	tb := strings.Fields(b)
	n, m := len(ta), len(tb)

	ops := make(Set)
	if n == 0 {
		if m > 0 {
			ops[Op{Kind: SubstituteToken, Anchor: 0, Repl: strings.Join(tb, " ")}] = struct{}{}
		}
		return ops
	}

	subCost := func(i, j int) int {
		if ta[i] == tb[j] {
			return 0
		}
		return edit.Levenshtein(ta[i], tb[j])
	}
	// Gap costs carry a +1 so that replacing one token stays cheaper than
	// deleting it and inserting a similar-sized one.
	delCost := func(i int) int { return len([]rune(ta[i])) + 1 }
	insCost := func(j int) int { return len([]rune(tb[j])) + 1 }

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = dp[i-1][0] + delCost(i-1)
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = dp[0][j-1] + insCost(j-1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			dp[i][j] = min(
				dp[i-1][j-1]+subCost(i-1, j-1),
				dp[i-1][j]+delCost(i-1),
				dp[i][j-1]+insCost(j-1),
			)
		}
	}

	// Backtrace with a fixed preference (diagonal, up, left) so that ties
	// resolve identically for every candidate aligned to the same reference.
	groups := make([][]string, n)
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && dp[i][j] == dp[i-1][j-1]+subCost(i-1, j-1):
			groups[i-1] = append([]string{tb[j-1]}, groups[i-1]...)
			i--
			j--
		case i > 0 && dp[i][j] == dp[i-1][j]+delCost(i-1):
			i--
		default:
			anchor := i - 1
			if anchor < 0 {
				anchor = 0
			}
			groups[anchor] = append([]string{tb[j-1]}, groups[anchor]...)
			j--
		}
	}

	for idx, tok := range ta {
		repl := strings.Join(groups[idx], " ")
		if repl != tok {
			ops[Op{Kind: SubstituteToken, Anchor: idx, Repl: repl}] = struct{}{}
		}
	}
	return ops
}
