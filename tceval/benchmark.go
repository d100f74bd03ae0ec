// Package tceval evaluates text-correction and error-detection outputs
// against groundtruth benchmarks, producing alignment-based
// precision/recall/F1 and accuracy metrics.
package tceval

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Task identifies a benchmark task type. The id doubles as the parent
// directory name in the on-disk benchmark layout.
type Task string

const (
	// TaskWhitespace is whitespace correction ("wsc").
	TaskWhitespace Task = "wsc"
	// TaskSpelling is spelling error correction ("sec").
	TaskSpelling Task = "sec"
	// TaskWordDetection is word-level spelling error detection ("sedw").
	TaskWordDetection Task = "sedw"
	// TaskSeqDetection is sequence-level spelling error detection ("seds").
	TaskSeqDetection Task = "seds"
)

// ParseTask maps a directory name to its Task.
func ParseTask(s string) (Task, error) {
	switch Task(s) {
	case TaskWhitespace, TaskSpelling, TaskWordDetection, TaskSeqDetection:
		return Task(s), nil
	default:
		return "", fmt.Errorf("tceval: unknown benchmark task %q", s)
	}
}

// Description returns the human-readable task name.
func (t Task) Description() string {
	switch t {
	case TaskWhitespace:
		return "Whitespace correction"
	case TaskSpelling:
		return "Spelling error correction"
	case TaskWordDetection:
		return "Word-level spelling error detection"
	case TaskSeqDetection:
		return "Sequence-level spelling error detection"
	default:
		return string(t)
	}
}

// Benchmark is an ordered sequence of samples belonging to one task.
// Corrupt and Groundtruth are parallel: line i of each is one sample.
type Benchmark struct {
	Name        string
	Task        Task
	Corrupt     []string
	Groundtruth []string
}

// Len returns the number of samples.
func (b *Benchmark) Len() int { return len(b.Corrupt) }

// LoadBenchmark reads corrupt.txt and correct.txt from dir. The task is
// inferred from the name of dir's parent directory, following the layout
// <task>/<benchmark>/{corrupt.txt,correct.txt}.
func LoadBenchmark(dir string) (*Benchmark, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("tceval: resolve %s: %w", dir, err)
	}
	abs = filepath.Clean(abs)
	task, err := ParseTask(filepath.Base(filepath.Dir(abs)))
	if err != nil {
		return nil, fmt.Errorf("%w (the benchmark's parent directory names the task)", err)
	}

	corrupt, err := ReadLines(filepath.Join(abs, "corrupt.txt"))
	if err != nil {
		return nil, err
	}
	groundtruth, err := ReadLines(filepath.Join(abs, "correct.txt"))
	if err != nil {
		return nil, err
	}
	if len(corrupt) != len(groundtruth) {
		return nil, &ShapeError{What: "groundtruth lines", Want: len(corrupt), Got: len(groundtruth)}
	}

	return &Benchmark{
		Name:        filepath.Base(abs),
		Task:        task,
		Corrupt:     corrupt,
		Groundtruth: groundtruth,
	}, nil
}

// LoadPredictions reads a prediction file and checks its line count
// against the benchmark.
func (b *Benchmark) LoadPredictions(path string) ([]string, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	if len(lines) != b.Len() {
		return nil, &ShapeError{What: fmt.Sprintf("prediction lines in %s", path), Want: b.Len(), Got: len(lines)}
	}
	return lines, nil
}

// ReadLines reads a text file into one string per line, without trailing
// newlines.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tceval: open %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("tceval: read %s: %w", path, err)
	}
	return lines, nil
}

// ParseLabels parses a whitespace-separated "0"/"1" label line.
func ParseLabels(line string) ([]bool, error) {
	fields := strings.Fields(line)
	labels := make([]bool, len(fields))
	for i, f := range fields {
		switch f {
		case "0":
		case "1":
			labels[i] = true
		default:
			return nil, fmt.Errorf("tceval: bad label %q, want 0 or 1", f)
		}
	}
	return labels, nil
}
