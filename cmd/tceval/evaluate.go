package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/texteval/tceval/tceval"
)

type evaluateFlags struct {
	files         []string
	dir           string
	sortBy        string
	lowercase     bool
	lowercaseFile string
	jsonOut       bool
	workers       int
	failFast      bool
}

func newEvaluateCmd() *cobra.Command {
	var flags evaluateFlags

	cmd := &cobra.Command{
		Use:   "evaluate <benchmark-dir>",
		Short: "Score prediction files against a benchmark",
		Long: "Score prediction files against a benchmark directory laid out as\n" +
			"<task>/<name>/{corrupt.txt,correct.txt}. Without -f or -d, every file\n" +
			"in <benchmark-dir>/predictions is evaluated.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringSliceVarP(&flags.files, "files", "f", nil, "prediction files to evaluate")
	cmd.Flags().StringVarP(&flags.dir, "dir", "d", "", "directory of prediction files")
	cmd.MarkFlagsMutuallyExclusive("files", "dir")
	cmd.Flags().StringVar(&flags.sortBy, "sort", "", "sort results by the given metric name")
	cmd.Flags().BoolVar(&flags.lowercase, "lowercase", false, "lowercase predictions before spelling evaluation")
	cmd.Flags().StringVar(&flags.lowercaseFile, "lowercase-file", "", "per-line 0/1 file selecting predictions to lowercase")
	cmd.Flags().BoolVar(&flags.jsonOut, "json", false, "emit the reports as JSON instead of a table")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "parallel workers per evaluation (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&flags.failFast, "fail-fast", false, "abort on the first malformed sample instead of collecting all")

	return cmd
}

type evaluation struct {
	Name   string         `json:"name"`
	Report *tceval.Report `json:"report"`
}

func runEvaluate(cmd *cobra.Command, dir string, flags evaluateFlags) error {
	bench, err := tceval.LoadBenchmark(dir)
	if err != nil {
		return err
	}
	slog.Debug("loaded benchmark", "name", bench.Name, "task", bench.Task, "samples", bench.Len())

	files, err := predictionFiles(dir, flags)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no prediction files to evaluate")
	}

	opts := tceval.Options{
		FailFast:  flags.failFast,
		Lowercase: flags.lowercase,
		Workers:   flags.workers,
	}
	if flags.lowercaseFile != "" {
		lines, err := tceval.ReadLines(flags.lowercaseFile)
		if err != nil {
			return err
		}
		opts.LowercaseLines = make([]bool, len(lines))
		for i, l := range lines {
			opts.LowercaseLines[i] = strings.TrimSpace(l) == "1"
		}
	}

	evals := make([]evaluation, 0, len(files))
	for _, f := range files {
		preds, err := bench.LoadPredictions(f)
		if err != nil {
			return err
		}
		report, err := tceval.Evaluate(cmd.Context(), bench, preds, opts)
		if err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
		name := strings.TrimSuffix(filepath.Base(f), filepath.Ext(f))
		evals = append(evals, evaluation{Name: name, Report: report})
	}

	if flags.sortBy != "" {
		if err := sortEvaluations(evals, flags.sortBy); err != nil {
			return err
		}
	}

	if flags.jsonOut {
		return writeJSON(os.Stdout, evals)
	}
	fmt.Println(renderTable(bench, evals))
	return nil
}

// predictionFiles resolves the prediction set: explicit files, a
// directory, or the benchmark's predictions/ subdirectory.
func predictionFiles(benchmarkDir string, flags evaluateFlags) ([]string, error) {
	if len(flags.files) > 0 {
		return flags.files, nil
	}
	dir := flags.dir
	if dir == "" {
		dir = filepath.Join(benchmarkDir, "predictions")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list predictions in %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	return files, nil
}

func sortEvaluations(evals []evaluation, metric string) error {
	larger := false
	found := false
	for _, m := range evals[0].Report.Metrics {
		if m.Name == metric {
			larger = m.LargerBetter
			found = true
			break
		}
	}
	if !found {
		names := make([]string, 0, len(evals[0].Report.Metrics))
		for _, m := range evals[0].Report.Metrics {
			names = append(names, m.Name)
		}
		return fmt.Errorf("unknown sort metric %q, available: %s", metric, strings.Join(names, ", "))
	}
	sort.SliceStable(evals, func(i, j int) bool {
		vi, _ := evals[i].Report.Get(metric)
		vj, _ := evals[j].Report.Get(metric)
		if larger {
			return vi > vj
		}
		return vi < vj
	})
	return nil
}
