package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/texteval/tceval/tceval"
)

// renderTable formats one row per prediction file. Percent metrics are
// scaled to 0-100; MNED stays a raw distance.
func renderTable(bench *tceval.Benchmark, evals []evaluation) string {
	headers := []string{fmt.Sprintf("%s: %s", bench.Task.Description(), bench.Name)}
	for _, m := range evals[0].Report.Metrics {
		headers = append(headers, m.Name)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if col > 0 {
				s = s.Align(lipgloss.Right)
			}
			return s
		})

	for _, e := range evals {
		row := []string{e.Name}
		for _, m := range e.Report.Metrics {
			row = append(row, formatMetric(m))
		}
		t.Row(row...)
	}
	return t.Render()
}

func formatMetric(m tceval.Metric) string {
	if m.Name == "MNED" {
		return fmt.Sprintf("%.4f", m.Value)
	}
	return fmt.Sprintf("%.2f", m.Value*100)
}

// writeJSON encodes v without HTML escaping, so corrected text with <, >
// or & survives round trips.
func writeJSON(w io.Writer, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}
