package repository

import (
	"database/sql"
	"fmt"

	"ontoquiz/internal/domain"
	"ontoquiz/internal/repository/models"
	"ontoquiz/internal/util"

	"github.com/jmoiron/sqlx"
)

// EvaluationDatabaseAdapter implements domain.EvaluationRepository using sqlx.DB
type EvaluationDatabaseAdapter struct {
	db *sqlx.DB
}

// NewEvaluationDatabaseAdapter creates a new instance of EvaluationDatabaseAdapter
func NewEvaluationDatabaseAdapter(db *sqlx.DB) domain.EvaluationRepository {
	return &EvaluationDatabaseAdapter{db: db}
}

// SaveResult persists an evaluation run and its rows. The run's ID is
// generated when empty.
func (a *EvaluationDatabaseAdapter) SaveResult(result *domain.EvaluationResult) error {
	if result.ID == "" {
		result.ID = util.NewULID()
	}

	tx, err := a.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO evaluation_runs
		(id, threshold, accuracy, precision_score, recall, f1, created_at)
		VALUES (:1, :2, :3, :4, :5, :6, :7)`,
		result.ID,
		result.Threshold,
		result.Metrics.Accuracy,
		result.Metrics.Precision,
		result.Metrics.Recall,
		result.Metrics.F1,
		result.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert evaluation run: %w", err)
	}

	for i, row := range result.Rows {
		_, err = tx.Exec(`INSERT INTO evaluation_rows
			(id, run_id, position, domain_name, material, score, mcq_block, verdict)
			VALUES (:1, :2, :3, :4, :5, :6, :7, :8)`,
			util.NewULID(),
			result.ID,
			i,
			row.Domain,
			row.Material,
			row.Score,
			row.MCQBlock,
			row.Verdict,
		)
		if err != nil {
			return fmt.Errorf("failed to insert evaluation row for domain %s: %w", row.Domain, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit evaluation result: %w", err)
	}
	return nil
}

// GetResultByID loads an evaluation run with its rows in position order.
func (a *EvaluationDatabaseAdapter) GetResultByID(id string) (*domain.EvaluationResult, error) {
	var run models.EvaluationRun
	query := `SELECT
		id "id",
		threshold "threshold",
		accuracy "accuracy",
		precision_score "precision",
		recall "recall",
		f1 "f1",
		created_at "created_at"
	FROM evaluation_runs
	WHERE id = :1`

	err := a.db.Get(&run, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get evaluation run: %w", err)
	}

	var rows []models.EvaluationRow
	rowQuery := `SELECT
		id "id",
		run_id "run_id",
		position "position",
		domain_name "domain_name",
		material "material",
		score "score",
		mcq_block "mcq_block",
		verdict "verdict"
	FROM evaluation_rows
	WHERE run_id = :1
	ORDER BY position`

	if err := a.db.Select(&rows, rowQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get evaluation rows: %w", err)
	}

	return toDomainResult(&run, rows), nil
}

// ListRecentResults returns the most recent runs, newest first, without rows.
func (a *EvaluationDatabaseAdapter) ListRecentResults(limit int) ([]*domain.EvaluationResult, error) {
	var runs []models.EvaluationRun
	query := `SELECT
		id "id",
		threshold "threshold",
		accuracy "accuracy",
		precision_score "precision",
		recall "recall",
		f1 "f1",
		created_at "created_at"
	FROM evaluation_runs
	ORDER BY created_at DESC
	FETCH FIRST :1 ROWS ONLY`

	if err := a.db.Select(&runs, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list evaluation runs: %w", err)
	}

	results := make([]*domain.EvaluationResult, 0, len(runs))
	for i := range runs {
		results = append(results, toDomainResult(&runs[i], nil))
	}
	return results, nil
}

func toDomainResult(run *models.EvaluationRun, rows []models.EvaluationRow) *domain.EvaluationResult {
	result := &domain.EvaluationResult{
		ID:        run.ID,
		Threshold: run.Threshold,
		Metrics: domain.Metrics{
			Accuracy:  run.Accuracy,
			Precision: run.Precision,
			Recall:    run.Recall,
			F1:        run.F1,
		},
		CreatedAt: run.CreatedAt,
	}
	for _, row := range rows {
		result.Rows = append(result.Rows, domain.ScoredRow{
			Domain:   row.DomainName,
			Material: row.Material,
			Score:    row.Score,
			MCQBlock: row.MCQBlock,
			Verdict:  row.Verdict,
		})
	}
	return result
}
