// Package edit provides rune-aware edit distances and Norvig-style
// candidate generation for the dictionary baselines.
package edit

// Levenshtein returns the edit distance between two strings (rune-aware).
// Uses the standard DP approach with a single rolling row to keep allocations minimal.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)

	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// row[j] = distance(ra[:i], rb[:j])
	row := make([]int, lb+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= la; i++ {
		prev := i
		for j := 1; j <= lb; j++ {
			cost := row[j-1]
			if ra[i-1] != rb[j-1] {
				cost++ // substitute
				if row[j]+1 < cost {
					cost = row[j] + 1 // delete
				}
				if prev+1 < cost {
					cost = prev + 1 // insert
				}
			}
			row[j-1] = prev
			prev = cost
		}
		row[lb] = prev
	}
	return row[lb]
}

// Bounded returns the Damerau-Levenshtein distance between a and b
// (insert, delete, substitute and adjacent transposition, unit cost each),
// cut off at radius: whenever the true distance exceeds radius the result
// is radius+1. The cutoff lets dictionary scans skip hopeless candidates
// after a length check and an early row minimum.
func Bounded(a, b string, radius int) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)

	diff := la - lb
	if diff < 0 {
		diff = -diff
	}
	if diff > radius {
		return radius + 1
	}
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// Three rolling rows: transposition needs the row before the previous one.
	prev2 := make([]int, lb+1)
	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= lb; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			d := min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
			if i > 1 && j > 1 && ra[i-1] == rb[j-2] && ra[i-2] == rb[j-1] {
				if t := prev2[j-2] + 1; t < d {
					d = t
				}
			}
			curr[j] = d
			if d < rowMin {
				rowMin = d
			}
		}
		if rowMin > radius {
			return radius + 1
		}
		prev2, prev, curr = prev, curr, prev2
	}

	d := prev[lb]
	if d > radius {
		return radius + 1
	}
	return d
}

// Alphabet is the character set used for candidate generation.
const Alphabet = "abcdefghijklmnopqrstuvwxyz'"

// Edits1 returns every string reachable from word by one deletion,
// adjacent transposition, substitution or insertion over Alphabet.
// The result may contain duplicates; callers dedupe against a dictionary.
func Edits1(word string) []string {
	r := []rune(word)
	n := len(r)
	// n deletes + (n-1) transposes + n*|A| replaces + (n+1)*|A| inserts
	out := make([]string, 0, 2*n+(2*n+1)*len(Alphabet))

	for i := 0; i <= n; i++ {
		left, right := r[:i], r[i:]
		if len(right) > 0 {
			out = append(out, string(left)+string(right[1:]))
		}
		if len(right) > 1 {
			out = append(out, string(left)+string(right[1])+string(right[0])+string(right[2:]))
		}
		for _, c := range Alphabet {
			if len(right) > 0 {
				out = append(out, string(left)+string(c)+string(right[1:]))
			}
			out = append(out, string(left)+string(c)+string(right))
		}
	}
	return out
}

// Edits2 calls fn for every string reachable from word by exactly two
// edits. A callback avoids materialising the ~|A|²·n² candidates at once.
func Edits2(word string, fn func(string)) {
	for _, e1 := range Edits1(word) {
		for _, e2 := range Edits1(e1) {
			fn(e2)
		}
	}
}
