package tceval

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/texteval/tceval/internal/align"
	"github.com/texteval/tceval/internal/metrics"
)

// Options tunes a single evaluation run.
type Options struct {
	// FailFast aborts on the first alignment error instead of collecting
	// every offending sample before reporting.
	FailFast bool
	// Lowercase lowercases every prediction before spelling evaluation.
	// Only respected for TaskSpelling.
	Lowercase bool
	// LowercaseLines lowercases individual predictions; when set its
	// length must equal the benchmark's sample count. Only respected for
	// TaskSpelling.
	LowercaseLines []bool
	// Workers bounds the parallel sample map. Zero means GOMAXPROCS.
	Workers int
}

func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Metric is one named result. LargerBetter steers sorting when several
// prediction files are ranked by the same metric.
type Metric struct {
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	LargerBetter bool    `json:"largerBetter"`
}

// Report is the ordered metric set of one (benchmark, prediction) pair.
type Report struct {
	Task    Task     `json:"task"`
	Metrics []Metric `json:"metrics"`
}

// Get looks a metric up by name.
func (r *Report) Get(name string) (float64, bool) {
	for _, m := range r.Metrics {
		if m.Name == name {
			return m.Value, true
		}
	}
	return 0, false
}

// Evaluate reduces one prediction set against the benchmark into its
// task's metrics. Samples are evaluated in parallel; the reduction is a
// plain sum of confusion counts plus averages, so sample order never
// changes a result.
func Evaluate(ctx context.Context, b *Benchmark, predictions []string, opts Options) (*Report, error) {
	if len(predictions) != b.Len() {
		return nil, &ShapeError{What: "prediction lines", Want: b.Len(), Got: len(predictions)}
	}

	if b.Task == TaskSpelling && (opts.Lowercase || opts.LowercaseLines != nil) {
		if opts.LowercaseLines != nil && len(opts.LowercaseLines) != b.Len() {
			return nil, &ShapeError{What: "lowercase flags", Want: b.Len(), Got: len(opts.LowercaseLines)}
		}
		lowered := make([]string, len(predictions))
		for i, p := range predictions {
			if opts.Lowercase || (opts.LowercaseLines != nil && opts.LowercaseLines[i]) {
				lowered[i] = strings.ToLower(p)
			} else {
				lowered[i] = p
			}
		}
		predictions = lowered
	}

	switch b.Task {
	case TaskWhitespace, TaskSpelling:
		return evalCorrection(ctx, b, predictions, opts)
	case TaskWordDetection:
		return evalWordDetection(b, predictions)
	case TaskSeqDetection:
		return evalSeqDetection(b, predictions)
	default:
		return nil, fmt.Errorf("tceval: unknown benchmark task %q", b.Task)
	}
}

type sampleScore struct {
	conf  metrics.Confusion
	f1    float64
	exact bool
	ned   float64
	err   error
}

func evalCorrection(ctx context.Context, b *Benchmark, predictions []string, opts Options) (*Report, error) {
	spelling := b.Task == TaskSpelling
	scores := make([]sampleScore, b.Len())

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for i := range b.Corrupt {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := &scores[i]
			var gtOps, prOps align.Set
			if spelling {
				gtOps = align.TokenOps(b.Corrupt[i], b.Groundtruth[i])
				prOps = align.TokenOps(b.Corrupt[i], predictions[i])
			} else {
				var err error
				gtOps, err = align.WhitespaceOps(b.Corrupt[i], b.Groundtruth[i])
				if err == nil {
					prOps, err = align.WhitespaceOps(b.Corrupt[i], predictions[i])
				}
				if err != nil {
					s.err = &AlignmentError{Sample: i, Err: err}
					if opts.FailFast {
						return s.err
					}
					return nil
				}
			}

			tp := gtOps.Intersection(prOps)
			s.conf = metrics.Confusion{TP: tp, FP: len(prOps) - tp, FN: len(gtOps) - tp}
			if len(gtOps) == 0 && len(prOps) == 0 {
				// nothing to correct and nothing predicted: perfect by
				// vacuous truth
				s.f1 = 1
			} else {
				s.f1 = s.conf.F1()
			}
			s.exact = align.Normalize(predictions[i]) == align.Normalize(b.Groundtruth[i])
			if spelling {
				s.ned = metrics.NormalizedEditDistance(predictions[i], b.Groundtruth[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var alignErrs []error
	for i := range scores {
		if scores[i].err != nil {
			alignErrs = append(alignErrs, scores[i].err)
		}
	}
	if len(alignErrs) > 0 {
		return nil, errors.Join(alignErrs...)
	}

	var micro metrics.Confusion
	perSample := make([]float64, b.Len())
	exact := 0
	neds := make([]float64, 0, b.Len())
	for i := range scores {
		micro.Add(scores[i].conf)
		perSample[i] = scores[i].f1
		if scores[i].exact {
			exact++
		}
		neds = append(neds, scores[i].ned)
	}

	r := &Report{Task: b.Task}
	if spelling {
		r.Metrics = append(r.Metrics, Metric{Name: "MNED", Value: metrics.Mean(neds)})
	} else {
		r.Metrics = append(r.Metrics, Metric{
			Name: "Sequence accuracy", Value: metrics.Accuracy(exact, b.Len()), LargerBetter: true,
		})
	}
	r.Metrics = append(r.Metrics,
		Metric{Name: "Micro F1", Value: micro.F1(), LargerBetter: true},
		Metric{Name: "Sequence-averaged F1", Value: metrics.Mean(perSample), LargerBetter: true},
	)
	return r, nil
}

func evalWordDetection(b *Benchmark, predictions []string) (*Report, error) {
	var conf metrics.Confusion
	matches, total := 0, 0
	for i := range b.Corrupt {
		gt, pred, err := sampleLabels(b, predictions, i)
		if err != nil {
			return nil, err
		}
		words := len(strings.Fields(b.Corrupt[i]))
		if len(gt) != words {
			return nil, &ShapeError{
				What: fmt.Sprintf("groundtruth labels of sample %d", i), Want: words, Got: len(gt),
			}
		}
		for j := range gt {
			conf.Add(binaryCount(gt[j], pred[j]))
			if gt[j] == pred[j] {
				matches++
			}
			total++
		}
	}

	return &Report{Task: b.Task, Metrics: []Metric{
		{Name: "F1", Value: conf.F1(), LargerBetter: true},
		{Name: "Word accuracy", Value: metrics.Accuracy(matches, total), LargerBetter: true},
	}}, nil
}

func evalSeqDetection(b *Benchmark, predictions []string) (*Report, error) {
	var conf metrics.Confusion
	matches := 0
	for i := range b.Corrupt {
		gt, pred, err := sampleLabels(b, predictions, i)
		if err != nil {
			return nil, err
		}
		if len(gt) != 1 || len(pred) != 1 {
			return nil, &ShapeError{
				What: fmt.Sprintf("sequence labels of sample %d", i), Want: 1, Got: max(len(gt), len(pred)),
			}
		}
		conf.Add(binaryCount(gt[0], pred[0]))
		if gt[0] == pred[0] {
			matches++
		}
	}

	return &Report{Task: b.Task, Metrics: []Metric{
		{Name: "F1", Value: conf.F1(), LargerBetter: true},
		{Name: "Sequence accuracy", Value: metrics.Accuracy(matches, b.Len()), LargerBetter: true},
	}}, nil
}

// sampleLabels parses the groundtruth and prediction label lines of
// sample i and checks they agree in length.
func sampleLabels(b *Benchmark, predictions []string, i int) ([]bool, []bool, error) {
	gt, err := ParseLabels(b.Groundtruth[i])
	if err != nil {
		return nil, nil, fmt.Errorf("groundtruth sample %d: %w", i, err)
	}
	pred, err := ParseLabels(predictions[i])
	if err != nil {
		return nil, nil, fmt.Errorf("prediction sample %d: %w", i, err)
	}
	if len(gt) != len(pred) {
		return nil, nil, &ShapeError{
			What: fmt.Sprintf("prediction labels of sample %d", i), Want: len(gt), Got: len(pred),
		}
	}
	return gt, pred, nil
}

// binaryCount classifies one (groundtruth, prediction) label pair, with
// label 1 as the positive class.
func binaryCount(gt, pred bool) metrics.Confusion {
	switch {
	case gt && pred:
		return metrics.Confusion{TP: 1}
	case !gt && pred:
		return metrics.Confusion{FP: 1}
	case gt && !pred:
		return metrics.Confusion{FN: 1}
	default:
		return metrics.Confusion{TN: 1}
	}
}
