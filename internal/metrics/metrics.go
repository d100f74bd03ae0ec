// Package metrics implements the confusion-count reductions behind the
// benchmark scores: precision/recall/F1, accuracies and normalized edit
// distance.
package metrics

import "github.com/texteval/tceval/internal/edit"

// Confusion accumulates true/false positive/negative counts. The zero
// value is ready to use; it is reset simply by starting from a fresh value.
type Confusion struct {
	TP, FP, FN, TN int
}

// Add merges o into c. Addition is associative and commutative, so
// per-sample counts may be reduced in any order.
func (c *Confusion) Add(o Confusion) {
	c.TP += o.TP
	c.FP += o.FP
	c.FN += o.FN
	c.TN += o.TN
}

// Precision returns TP/(TP+FP), or 0 when the denominator is zero.
func (c Confusion) Precision() float64 {
	if c.TP+c.FP == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FP)
}

// Recall returns TP/(TP+FN), or 0 when the denominator is zero.
func (c Confusion) Recall() float64 {
	if c.TP+c.FN == 0 {
		return 0
	}
	return float64(c.TP) / float64(c.TP+c.FN)
}

// F1 returns the harmonic mean of precision and recall, or 0 when both
// are zero.
func (c Confusion) F1() float64 {
	return FScore(c.Precision(), c.Recall())
}

// FScore is the harmonic mean of precision and recall, defined as 0 when
// both are 0.
func FScore(precision, recall float64) float64 {
	if precision == 0 && recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}

// Accuracy returns matches/total, or 0 for an empty population.
func Accuracy(matches, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(matches) / float64(total)
}

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// NormalizedEditDistance returns Levenshtein(a, b) divided by the longer
// rune length, or 0 when both strings are empty.
func NormalizedEditDistance(a, b string) float64 {
	la := len([]rune(a))
	lb := len([]rune(b))
	longer := la
	if lb > longer {
		longer = lb
	}
	if longer == 0 {
		return 0
	}
	return float64(edit.Levenshtein(a, b)) / float64(longer)
}
