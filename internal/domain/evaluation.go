package domain

import "time"

// NoMaterialSentinel is substituted for the reference text of a domain the
// ontology does not describe. Missing material is never an error.
const NoMaterialSentinel = "No materials available for this topic."

// Verdict texts derived from a row's similarity score. The cutoffs are
// strict (0.9 and 0.7) and are independent of the classification threshold.
const (
	VerdictExcellent = "Excellent alignment with reference material."
	VerdictGood      = "Good alignment but could improve in specific areas."
	VerdictModerate  = "Moderate alignment, requires improvements in content generation."
)

// ScoredRow is one domain's entry in the evaluation table.
type ScoredRow struct {
	Domain    string
	Material  string
	Score     float64
	MCQBlock  string
	Verdict   string
}

// Metrics holds binary-classification metrics derived from thresholding the
// similarity scores. Every reference material is treated as ground-truth
// correct, so precision is 1.0 whenever any row is predicted positive and
// recall collapses to the predicted-positive rate. That is how the scoring
// scheme is defined; it is preserved as-is for report compatibility.
type Metrics struct {
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}

// EvaluationResult is one complete evaluation run over a set of domains.
type EvaluationResult struct {
	ID        string
	Threshold float64
	Rows      []ScoredRow
	Metrics   Metrics
	CreatedAt time.Time
}

// EvaluationRepository persists evaluation runs.
type EvaluationRepository interface {
	SaveResult(result *EvaluationResult) error
	GetResultByID(id string) (*EvaluationResult, error)
	ListRecentResults(limit int) ([]*EvaluationResult, error)
}
