package baseline

import (
	"context"
	"strings"

	"github.com/texteval/tceval/internal/dict"
	"github.com/texteval/tceval/internal/edit"
)

// Norvig corrects unknown tokens by generating every string within two
// edit operations over a fixed alphabet and picking the known candidate
// with the highest dictionary frequency. Ties fall back to lexicographic
// order so the output is a total function of the input and dictionary.
type Norvig struct {
	dict *dict.Dict
}

// NewNorvig builds the baseline around a frequency-annotated dictionary.
func NewNorvig(d *dict.Dict) *Norvig {
	return &Norvig{dict: d}
}

func (n *Norvig) Name() string { return "norvig" }

func (n *Norvig) Correct(ctx context.Context, line string) (string, error) {
	toks := strings.Fields(line)
	for i, tok := range toks {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		lt := strings.ToLower(tok)
		if n.dict.Contains(lt) {
			continue
		}
		if best := n.best(lt); best != "" {
			toks[i] = best
		}
	}
	return strings.Join(toks, " "), nil
}

func (n *Norvig) best(w string) string {
	best := ""
	var bestFreq int64 = -1
	seen := make(map[string]struct{})
	consider := func(cand string) {
		if _, dup := seen[cand]; dup {
			return
		}
		seen[cand] = struct{}{}
		if !n.dict.Contains(cand) {
			return
		}
		f := n.dict.Freq(cand)
		if f > bestFreq || (f == bestFreq && cand < best) {
			best, bestFreq = cand, f
		}
	}
	for _, e := range edit.Edits1(w) {
		consider(e)
	}
	edit.Edits2(w, consider)
	return best
}
