package baseline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/texteval/tceval/internal/dict"
)

// Detector maps one benchmark line to a detection label line:
// space-separated "0"/"1" per word, or a single "0"/"1" per sequence.
type Detector interface {
	Name() string
	Detect(ctx context.Context, line string) (string, error)
}

// ErrTokenCount reports that a corrector changed the number of tokens,
// so word labels cannot be derived position by position.
var ErrTokenCount = errors.New("baseline: corrected token count differs from input")

// DeriveWordDetector turns any corrector into a word-level detector: a
// word is labeled "1" exactly when correction changed it.
func DeriveWordDetector(c Corrector) Detector {
	return &derived{c: c, word: true}
}

// DeriveSequenceDetector turns any corrector into a sequence-level
// detector: the line is labeled "1" when correction changed any word.
func DeriveSequenceDetector(c Corrector) Detector {
	return &derived{c: c}
}

type derived struct {
	c    Corrector
	word bool
}

func (d *derived) Name() string { return d.c.Name() }

func (d *derived) Detect(ctx context.Context, line string) (string, error) {
	out, err := d.c.Correct(ctx, line)
	if err != nil {
		return "", err
	}
	in := strings.Fields(line)
	got := strings.Fields(out)
	if len(in) != len(got) {
		return "", fmt.Errorf("%w: %d vs %d", ErrTokenCount, len(in), len(got))
	}

	changed := false
	labels := make([]string, len(in))
	for i := range in {
		if in[i] != got[i] {
			labels[i] = "1"
			changed = true
		} else {
			labels[i] = "0"
		}
	}
	if d.word {
		return strings.Join(labels, " "), nil
	}
	if changed {
		return "1", nil
	}
	return "0", nil
}

// OutOfDictionary labels words by dictionary membership instead of
// running a correction: a token absent from the dictionary is an error.
type OutOfDictionary struct {
	dict *dict.Dict
	word bool
}

// NewOutOfDictionary builds the membership detector. word selects
// word-level labels; otherwise one label per sequence.
func NewOutOfDictionary(d *dict.Dict, word bool) *OutOfDictionary {
	return &OutOfDictionary{dict: d, word: word}
}

func (o *OutOfDictionary) Name() string { return "out_of_dictionary" }

func (o *OutOfDictionary) Detect(_ context.Context, line string) (string, error) {
	toks := strings.Fields(line)
	any := false
	labels := make([]string, len(toks))
	for i, tok := range toks {
		if o.dict.Contains(strings.ToLower(tok)) {
			labels[i] = "0"
		} else {
			labels[i] = "1"
			any = true
		}
	}
	if o.word {
		return strings.Join(labels, " "), nil
	}
	if any {
		return "1", nil
	}
	return "0", nil
}
