package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/texteval/tceval/internal/baseline"
	"github.com/texteval/tceval/tceval"
)

type baselineFlags struct {
	configPath string
	dictionary string
	radius     int
	model      string
	baseURL    string
	output     string
	workers    int
}

func (f *baselineFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML baseline config file")
	cmd.Flags().StringVar(&f.dictionary, "dict", "", "dictionary file (one word or word<TAB>frequency per line)")
	cmd.Flags().IntVar(&f.radius, "radius", 0, "max edit radius for fuzzy dictionary search (0 = default)")
	cmd.Flags().StringVar(&f.model, "model", "", "chat model for the openai baseline")
	cmd.Flags().StringVar(&f.baseURL, "base-url", "", "OpenAI-compatible base URL")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write predictions to file instead of stdout")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "parallel workers (0 = GOMAXPROCS)")
}

// config builds the baseline config: YAML file first, flags on top,
// API key from the environment.
func (f *baselineFlags) config(task tceval.Task) (baseline.Config, error) {
	var cfg baseline.Config
	if f.configPath != "" {
		data, err := os.ReadFile(f.configPath)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", f.configPath, err)
		}
	}
	cfg.Task = string(task)
	if f.dictionary != "" {
		cfg.Dictionary = f.dictionary
	}
	if f.radius != 0 {
		cfg.MaxEditRadius = f.radius
	}
	if f.model != "" {
		cfg.Model = f.model
	}
	if f.baseURL != "" {
		cfg.BaseURL = f.baseURL
	}
	cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	return cfg, nil
}

func newCorrectCmd() *cobra.Command {
	var flags baselineFlags

	cmd := &cobra.Command{
		Use:   "correct <baseline> <benchmark-dir>",
		Short: "Run a correction baseline over a benchmark's corrupt.txt",
		Long: "Run a correction baseline (dummy, close_to_dictionary, norvig, openai)\n" +
			"over the benchmark inputs and print one prediction per line.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			bench, err := tceval.LoadBenchmark(args[1])
			if err != nil {
				return err
			}
			cfg, err := flags.config(bench.Task)
			if err != nil {
				return err
			}
			c, err := baseline.New(args[0], cfg)
			if err != nil {
				return err
			}
			out, err := tceval.RunCorrector(cmd.Context(), c, bench.Corrupt, flags.workers)
			if err != nil {
				return err
			}
			return writeLines(flags.output, out)
		},
	}
	flags.register(cmd)
	return cmd
}

// writeLines prints lines to stdout, or to path when set (creating parent
// directories, so "predictions/model.txt" works out of the box).
func writeLines(path string, lines []string) error {
	data := strings.Join(lines, "\n") + "\n"
	if path == "" {
		_, err := os.Stdout.WriteString(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(data), 0o644)
}
