package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"ontoquiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTable(t *testing.T) {
	rows := []domain.ScoredRow{
		{
			Domain:   "Lists",
			Material: "Mutable ordered collections.",
			Score:    1.0,
			MCQBlock: "Q: q1\n - a\n - b\n - c\n - d\nAnswer: a\n",
			Verdict:  domain.VerdictExcellent,
		},
		{
			Domain:   "Quantum",
			Material: domain.NoMaterialSentinel,
			Score:    0.0,
			Verdict:  domain.VerdictModerate,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, rows))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Domain", "Generated Learning Material", "Accuracy Score (%)", "MCQs", "Description"}, records[0])
	assert.Equal(t, "Lists", records[1][0])
	assert.Equal(t, "100.00%", records[1][2])
	assert.Contains(t, records[1][3], "Q: q1")
	assert.Equal(t, "0.00%", records[2][2])
	assert.Equal(t, domain.VerdictModerate, records[2][4])
}

func TestPrintSummary(t *testing.T) {
	result := &domain.EvaluationResult{
		Rows: []domain.ScoredRow{
			{Domain: "Lists", Score: 1.0, MCQBlock: "Q: q1\nAnswer: a\n"},
			{Domain: "Quantum", Score: 0.0},
		},
		Metrics: domain.Metrics{Accuracy: 0.5, Precision: 1.0, Recall: 0.5, F1: 2.0 / 3.0},
	}

	var buf bytes.Buffer
	PrintSummary(&buf, result)
	out := buf.String()

	assert.Contains(t, out, "Domain: Lists")
	assert.Contains(t, out, "Accuracy: 100.00%")
	assert.Contains(t, out, "MCQs:\nQ: q1")
	assert.Contains(t, out, "Overall Metrics:")
	assert.Contains(t, out, "Accuracy: 50.00%")
	assert.Contains(t, out, "Precision: 100.00%")
	assert.Contains(t, out, "F1-Score: 66.67%")
	// The moderate row has no questions, so no MCQ section for it.
	assert.NotContains(t, out, "Domain: Quantum\nMCQs")
}
