package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/texteval/tceval/internal/baseline"
	"github.com/texteval/tceval/internal/dict"
	"github.com/texteval/tceval/tceval"
)

func newDetectCmd() *cobra.Command {
	var flags baselineFlags
	var level string

	cmd := &cobra.Command{
		Use:   "detect <baseline> <benchmark-dir>",
		Short: "Run a detection baseline over a benchmark's corrupt.txt",
		Long: "Derive error-detection labels from a correction baseline, or label by\n" +
			"dictionary membership with the out_of_dictionary baseline. Word-level\n" +
			"output is one 0/1 per word, sequence-level a single 0/1 per line.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bench, err := tceval.LoadBenchmark(args[1])
			if err != nil {
				return err
			}

			word, err := detectionLevel(level, bench.Task)
			if err != nil {
				return err
			}
			cfg, err := flags.config(bench.Task)
			if err != nil {
				return err
			}

			var d baseline.Detector
			if args[0] == "out_of_dictionary" {
				if cfg.Dictionary == "" {
					return fmt.Errorf("%w: out_of_dictionary requires a dictionary path", baseline.ErrConfig)
				}
				dc, err := dict.Load(cfg.Dictionary)
				if err != nil {
					return err
				}
				d = baseline.NewOutOfDictionary(dc, word)
			} else {
				// detection derives from a correction run, so the inner
				// baseline must correct, not emit labels
				cfg.Task = string(tceval.TaskSpelling)
				c, err := baseline.New(args[0], cfg)
				if err != nil {
					return err
				}
				if word {
					d = baseline.DeriveWordDetector(c)
				} else {
					d = baseline.DeriveSequenceDetector(c)
				}
			}

			out, err := tceval.RunDetector(cmd.Context(), d, bench.Corrupt, flags.workers)
			if err != nil {
				return err
			}
			return writeLines(flags.output, out)
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&level, "level", "", "label granularity: word or seq (default from the benchmark task)")
	return cmd
}

func detectionLevel(level string, task tceval.Task) (word bool, err error) {
	switch level {
	case "word":
		return true, nil
	case "seq":
		return false, nil
	case "":
		switch task {
		case tceval.TaskWordDetection:
			return true, nil
		case tceval.TaskSeqDetection:
			return false, nil
		default:
			return false, fmt.Errorf("benchmark task %q is not a detection task, pass --level", task)
		}
	default:
		return false, fmt.Errorf("unknown level %q, want word or seq", level)
	}
}
