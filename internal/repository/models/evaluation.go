package models

import "time"

// EvaluationRun is the persistence model for one evaluation run.
type EvaluationRun struct {
	ID        string    `db:"id"`
	Threshold float64   `db:"threshold"`
	Accuracy  float64   `db:"accuracy"`
	Precision float64   `db:"precision"`
	Recall    float64   `db:"recall"`
	F1        float64   `db:"f1"`
	CreatedAt time.Time `db:"created_at"`
}

// EvaluationRow is the persistence model for one scored domain in a run.
type EvaluationRow struct {
	ID         string  `db:"id"`
	RunID      string  `db:"run_id"`
	Position   int     `db:"position"`
	DomainName string  `db:"domain_name"`
	Material   string  `db:"material"`
	Score      float64 `db:"score"`
	MCQBlock   string  `db:"mcq_block"`
	Verdict    string  `db:"verdict"`
}
