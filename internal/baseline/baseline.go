// Package baseline provides the reference correction and detection
// strategies whose outputs feed the evaluator. Every strategy maps one
// benchmark line to one output line and never mutates its dictionary.
package baseline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/texteval/tceval/internal/dict"
)

// Corrector maps one benchmark line to its corrected form.
type Corrector interface {
	Name() string
	Correct(ctx context.Context, line string) (string, error)
}

// ErrConfig reports a missing or invalid baseline option. It is raised
// before any sample is processed.
var ErrConfig = errors.New("baseline: invalid configuration")

// DefaultMaxEditRadius bounds the fuzzy dictionary search unless
// configured otherwise.
const DefaultMaxEditRadius = 2

// Config carries the per-baseline options. Unused fields are ignored by
// strategies that do not need them.
type Config struct {
	// Task is the benchmark task id: wsc, sec, sedw or seds.
	Task string `yaml:"task"`
	// Dictionary is the word-list path, required by dictionary-based
	// strategies.
	Dictionary string `yaml:"dictionary"`
	// MaxEditRadius bounds the fuzzy search of close_to_dictionary.
	// Zero means DefaultMaxEditRadius.
	MaxEditRadius int `yaml:"max_edit_radius"`

	// OpenAI options.
	APIKey  string `yaml:"-"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// New builds the named correction strategy. Dictionary files are loaded
// once here and shared read-only afterwards.
func New(name string, cfg Config) (Corrector, error) {
	switch name {
	case "dummy":
		return Dummy{Task: cfg.Task}, nil
	case "close_to_dictionary":
		d, err := loadDict(name, cfg)
		if err != nil {
			return nil, err
		}
		return NewCloseToDictionary(d, cfg.MaxEditRadius), nil
	case "norvig":
		d, err := loadDict(name, cfg)
		if err != nil {
			return nil, err
		}
		return NewNorvig(d), nil
	case "openai":
		return NewOpenAI(cfg)
	default:
		return nil, fmt.Errorf("%w: unknown baseline %q", ErrConfig, name)
	}
}

func loadDict(name string, cfg Config) (*dict.Dict, error) {
	if cfg.Dictionary == "" {
		return nil, fmt.Errorf("%w: baseline %q requires a dictionary path", ErrConfig, name)
	}
	return dict.Load(cfg.Dictionary)
}

// Dummy returns its input unchanged for correction tasks, and the
// all-negative label line for detection tasks.
type Dummy struct {
	// Task selects the output shape: sedw yields one "0" per word,
	// seds a single "0", anything else echoes the line.
	Task string
}

func (d Dummy) Name() string { return "dummy" }

func (d Dummy) Correct(_ context.Context, line string) (string, error) {
	switch d.Task {
	case "sedw":
		labels := make([]string, len(strings.Fields(line)))
		for i := range labels {
			labels[i] = "0"
		}
		return strings.Join(labels, " "), nil
	case "seds":
		return "0", nil
	default:
		return line, nil
	}
}
