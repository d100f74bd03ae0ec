// Command tceval evaluates text-correction benchmarks and runs the
// bundled baselines.
//
// Usage:
//
//	tceval evaluate benchmarks/wsc/arxiv -f preds/model.txt --sort "Micro F1"
//	tceval correct close_to_dictionary benchmarks/sec/bea322 --dict words.txt
//	tceval detect out_of_dictionary benchmarks/sedw/neuspell --dict words.txt
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

func main() {
	root := &cobra.Command{
		Use:           "tceval",
		Short:         "Evaluate text correction models against benchmarks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newEvaluateCmd())
	root.AddCommand(newCorrectCmd())
	root.AddCommand(newDetectCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tceval:", err)
		os.Exit(1)
	}
}
