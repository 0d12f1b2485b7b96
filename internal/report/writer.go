// Package report renders evaluation results as a delimited table and a
// plain-text metrics summary.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"ontoquiz/internal/domain"
)

// Header columns of the evaluation table report.
var header = []string{"Domain", "Generated Learning Material", "Accuracy Score (%)", "MCQs", "Description"}

// WriteTable writes the evaluation rows as CSV to w, one record per domain
// with the score rendered as a percentage.
func WriteTable(w io.Writer, rows []domain.ScoredRow) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.Domain,
			row.Material,
			fmt.Sprintf("%.2f%%", row.Score*100),
			row.MCQBlock,
			row.Verdict,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write report row for domain %s: %w", row.Domain, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteTableFile writes the evaluation table to a CSV file at path.
func WriteTableFile(path string, rows []domain.ScoredRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file %s: %w", path, err)
	}
	defer f.Close()

	return WriteTable(f, rows)
}

// PrintSummary writes per-domain score lines and the aggregate metric
// percentages to w.
func PrintSummary(w io.Writer, result *domain.EvaluationResult) {
	for _, row := range result.Rows {
		fmt.Fprintf(w, "Domain: %s\n", row.Domain)
		fmt.Fprintf(w, "Accuracy: %.2f%%\n", row.Score*100)
		if row.MCQBlock != "" {
			fmt.Fprintf(w, "MCQs:\n%s\n", row.MCQBlock)
		}
		fmt.Fprintln(w, "----------------------------------------")
	}

	fmt.Fprintln(w, "Overall Metrics:")
	fmt.Fprintf(w, "Accuracy: %.2f%%\n", result.Metrics.Accuracy*100)
	fmt.Fprintf(w, "Precision: %.2f%%\n", result.Metrics.Precision*100)
	fmt.Fprintf(w, "Recall: %.2f%%\n", result.Metrics.Recall*100)
	fmt.Fprintf(w, "F1-Score: %.2f%%\n", result.Metrics.F1*100)
}
