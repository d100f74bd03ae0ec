package baseline

import (
	"context"
	"strings"

	"github.com/texteval/tceval/internal/dict"
	"github.com/texteval/tceval/internal/edit"
)

// CloseToDictionary replaces every unknown token with the nearest
// dictionary word within a bounded Damerau-Levenshtein radius. Known
// tokens are never touched, even when a closer neighbor exists; unknown
// tokens with no neighbor inside the radius stay unchanged.
type CloseToDictionary struct {
	dict   *dict.Dict
	radius int
}

// NewCloseToDictionary builds the baseline. radius <= 0 selects
// DefaultMaxEditRadius.
func NewCloseToDictionary(d *dict.Dict, radius int) *CloseToDictionary {
	if radius <= 0 {
		radius = DefaultMaxEditRadius
	}
	return &CloseToDictionary{dict: d, radius: radius}
}

func (c *CloseToDictionary) Name() string { return "close_to_dictionary" }

func (c *CloseToDictionary) Correct(ctx context.Context, line string) (string, error) {
	toks := strings.Fields(line)
	for i, tok := range toks {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		lt := strings.ToLower(tok)
		if c.dict.Contains(lt) {
			continue
		}
		if best := c.nearest(lt); best != "" {
			toks[i] = best
		}
	}
	return strings.Join(toks, " "), nil
}

// nearest scans the dictionary in lexicographic order, so on equal
// distance the lexicographically smaller candidate wins and the result is
// deterministic across runs.
func (c *CloseToDictionary) nearest(w string) string {
	best := ""
	bestDist := c.radius + 1
	for _, cand := range c.dict.Words() {
		if d := edit.Bounded(w, cand, c.radius); d < bestDist {
			best, bestDist = cand, d
			if d == 1 {
				// nothing beats distance 1 for an unknown token
				break
			}
		}
	}
	return best
}
