package tceval

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/texteval/tceval/internal/baseline"
)

// RunCorrector maps a correction baseline over lines in parallel,
// preserving order. Baselines share their dictionary read-only, so the
// per-line calls are independent.
func RunCorrector(ctx context.Context, c baseline.Corrector, lines []string, workers int) ([]string, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]string, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, line := range lines {
		g.Go(func() error {
			corrected, err := c.Correct(ctx, line)
			if err != nil {
				return err
			}
			out[i] = corrected
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// RunDetector maps a detection baseline over lines in parallel,
// preserving order.
func RunDetector(ctx context.Context, d baseline.Detector, lines []string, workers int) ([]string, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]string, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, line := range lines {
		g.Go(func() error {
			labels, err := d.Detect(ctx, line)
			if err != nil {
				return err
			}
			out[i] = labels
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
