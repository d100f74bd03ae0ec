// Package dict loads immutable reference word lists, optionally annotated
// with frequencies, for the dictionary-based baselines.
package dict

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Dict is a read-only word list. It is safe to share across goroutines.
type Dict struct {
	freq  map[string]int64
	words []string // sorted ascending
}

// New creates a Dict from the given words with zero frequencies.
func New(words ...string) *Dict {
	d := &Dict{freq: make(map[string]int64, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := d.freq[w]; !ok {
			d.words = append(d.words, w)
		}
		d.freq[w] = 0
	}
	sort.Strings(d.words)
	return d
}

// Load reads a dictionary file with one entry per line, either a bare
// word or "word<TAB>frequency". Words are lowercased; blank lines are
// skipped. Duplicate words keep the larger frequency.
func Load(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dict: open %s: %w", path, err)
	}
	defer f.Close()

	d := &Dict{freq: make(map[string]int64)}
	s := bufio.NewScanner(f)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		word := strings.ToLower(parts[0])
		var count int64
		if len(parts) > 1 {
			n, perr := strconv.ParseInt(parts[1], 10, 64)
			if perr != nil {
				// some corpora ship scientific-notation counts
				fv, ferr := strconv.ParseFloat(parts[1], 64)
				if ferr != nil {
					return nil, fmt.Errorf("dict: %s:%d: bad frequency %q", path, lineNo, parts[1])
				}
				n = int64(fv)
			}
			count = n
		}
		if old, ok := d.freq[word]; !ok {
			d.words = append(d.words, word)
			d.freq[word] = count
		} else if count > old {
			d.freq[word] = count
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("dict: read %s: %w", path, err)
	}
	sort.Strings(d.words)
	return d, nil
}

// Contains reports whether w is a known word.
func (d *Dict) Contains(w string) bool {
	_, ok := d.freq[w]
	return ok
}

// Freq returns the frequency of w, or 0 if unknown or unannotated.
func (d *Dict) Freq(w string) int64 {
	return d.freq[w]
}

// Words returns all entries in ascending lexicographic order. The slice
// is shared; callers must not modify it.
func (d *Dict) Words() []string {
	return d.words
}

// Len returns the number of distinct entries.
func (d *Dict) Len() int {
	return len(d.words)
}
