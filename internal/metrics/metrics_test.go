package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfusionRates(t *testing.T) {
	c := Confusion{TP: 3, FP: 1, FN: 2}
	assert.InDelta(t, 0.75, c.Precision(), 1e-9)
	assert.InDelta(t, 0.6, c.Recall(), 1e-9)
	assert.InDelta(t, 2.0/3.0, c.F1(), 1e-9)
}

func TestConfusionZeroDenominators(t *testing.T) {
	assert.Zero(t, Confusion{}.Precision())
	assert.Zero(t, Confusion{}.Recall())
	assert.Zero(t, Confusion{}.F1())

	// predictions but no groundtruth positives
	c := Confusion{FP: 4}
	assert.Zero(t, c.Precision())
	assert.Zero(t, c.F1())

	// groundtruth positives but no predictions
	c = Confusion{FN: 4}
	assert.Zero(t, c.Recall())
	assert.Zero(t, c.F1())
}

func TestConfusionAddCommutes(t *testing.T) {
	a := Confusion{TP: 1, FP: 2, FN: 3, TN: 4}
	b := Confusion{TP: 5, FN: 1}

	x := a
	x.Add(b)
	y := b
	y.Add(a)
	assert.Equal(t, x, y)
	assert.Equal(t, Confusion{TP: 6, FP: 2, FN: 4, TN: 4}, x)
}

func TestAccuracy(t *testing.T) {
	assert.InDelta(t, 0.75, Accuracy(3, 4), 1e-9)
	assert.Zero(t, Accuracy(0, 0))
}

func TestMean(t *testing.T) {
	assert.InDelta(t, 0.5, Mean([]float64{0, 1}), 1e-9)
	assert.Zero(t, Mean(nil))
}

func TestNormalizedEditDistance(t *testing.T) {
	assert.Zero(t, NormalizedEditDistance("same", "same"))
	assert.Zero(t, NormalizedEditDistance("", ""))
	assert.InDelta(t, 1.0, NormalizedEditDistance("", "abc"), 1e-9)
	assert.InDelta(t, 0.25, NormalizedEditDistance("test", "tent"), 1e-9)
	// normalized by the longer side
	assert.InDelta(t, 0.5, NormalizedEditDistance("ab", "abcd"), 1e-9)
}
