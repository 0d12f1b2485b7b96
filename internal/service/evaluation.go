package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ontoquiz/internal/domain"
	"ontoquiz/internal/similarity"
	"ontoquiz/internal/util"
)

// DefaultThreshold is the classification cutoff applied when a caller does
// not supply one. It happens to equal the Excellent-verdict cutoff but the
// two are independent parameters.
const DefaultThreshold = 0.9

// EvaluationService scores learning materials against the ontology's
// reference descriptions and aggregates the results into an evaluation
// table with classification metrics.
type EvaluationService interface {
	// ReferenceText returns the raw reference text for a domain, or ""
	// when the ontology does not describe it.
	ReferenceText(domain string) string

	// Material returns the learning material for a domain, substituting
	// the no-material sentinel for unknown domains.
	Material(domain string) string

	// Evaluate scores candidate text against the domain's reference text.
	Evaluate(ctx context.Context, candidate, domain string) float64

	// BuildTable produces one scored row per domain, in input order, and
	// the classification metrics derived from thresholding the scores.
	BuildTable(ctx context.Context, domains []string, bank domain.QuestionBank, threshold float64) ([]domain.ScoredRow, domain.Metrics)

	// BuildResult runs BuildTable and wraps the output into a persistable
	// evaluation run with a fresh ID and timestamp.
	BuildResult(ctx context.Context, domains []string, bank domain.QuestionBank, threshold float64) *domain.EvaluationResult
}

// evaluationService implements EvaluationService. The materials map and the
// scorer backend are fixed at construction; every method is a pure read of
// that state and its arguments, so the service is safe for concurrent use.
type evaluationService struct {
	materials map[string]string
	scorer    similarity.Scorer
}

// NewEvaluationService creates a new evaluationService over the given
// reference-text lookup and scorer.
func NewEvaluationService(materials map[string]string, scorer similarity.Scorer) EvaluationService {
	return &evaluationService{
		materials: materials,
		scorer:    scorer,
	}
}

func (s *evaluationService) ReferenceText(domainName string) string {
	return s.materials[domainName]
}

func (s *evaluationService) Material(domainName string) string {
	if material, ok := s.materials[domainName]; ok {
		return material
	}
	return domain.NoMaterialSentinel
}

func (s *evaluationService) Evaluate(ctx context.Context, candidate, domainName string) float64 {
	// A missing domain scores against the empty string, not an error.
	return s.scorer.Score(ctx, candidate, s.materials[domainName])
}

func (s *evaluationService) BuildTable(ctx context.Context, domains []string, bank domain.QuestionBank, threshold float64) ([]domain.ScoredRow, domain.Metrics) {
	rows := make([]domain.ScoredRow, 0, len(domains))
	yTrue := make([]int, 0, len(domains))
	yPred := make([]int, 0, len(domains))

	for _, name := range domains {
		material := s.Material(name)
		score := s.Evaluate(ctx, material, name)

		// Reference materials are considered correct, so the true
		// label is fixed at 1 for every domain.
		yTrue = append(yTrue, 1)
		if score >= threshold {
			yPred = append(yPred, 1)
		} else {
			yPred = append(yPred, 0)
		}

		rows = append(rows, domain.ScoredRow{
			Domain:   name,
			Material: material,
			Score:    score,
			MCQBlock: FormatQuestions(bank.ForDomain(name)),
			Verdict:  verdictFor(score),
		})
	}

	return rows, computeMetrics(yTrue, yPred)
}

func (s *evaluationService) BuildResult(ctx context.Context, domains []string, bank domain.QuestionBank, threshold float64) *domain.EvaluationResult {
	rows, metrics := s.BuildTable(ctx, domains, bank, threshold)
	return &domain.EvaluationResult{
		ID:        util.NewULID(),
		Threshold: threshold,
		Rows:      rows,
		Metrics:   metrics,
		CreatedAt: time.Now(),
	}
}

// verdictFor maps a similarity score to its qualitative verdict. The
// cutoffs are strict: a score of exactly 0.9 is Good, exactly 0.7 is
// Moderate.
func verdictFor(score float64) string {
	switch {
	case score > 0.9:
		return domain.VerdictExcellent
	case score > 0.7:
		return domain.VerdictGood
	default:
		return domain.VerdictModerate
	}
}

// FormatQuestions renders a question list into the evaluation table's MCQ
// block: a "Q:" line, one " - " line per option, an "Answer:" line and a
// blank separator per question. An empty list yields an empty block.
func FormatQuestions(questions []domain.Question) string {
	if len(questions) == 0 {
		return ""
	}

	var lines []string
	for _, q := range questions {
		lines = append(lines, fmt.Sprintf("Q: %s", q.Text))
		for _, opt := range q.Options {
			lines = append(lines, fmt.Sprintf(" - %s", opt))
		}
		lines = append(lines, fmt.Sprintf("Answer: %s", q.Answer))
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// computeMetrics derives binary-classification metrics from label pairs.
// Denominators of zero resolve to 0.0 instead of an error; an empty input
// yields all-zero metrics.
func computeMetrics(yTrue, yPred []int) domain.Metrics {
	if len(yTrue) == 0 {
		return domain.Metrics{}
	}

	var tp, fp, fn, tn int
	for i := range yTrue {
		switch {
		case yTrue[i] == 1 && yPred[i] == 1:
			tp++
		case yTrue[i] == 0 && yPred[i] == 1:
			fp++
		case yTrue[i] == 1 && yPred[i] == 0:
			fn++
		default:
			tn++
		}
	}

	m := domain.Metrics{
		Accuracy: float64(tp+tn) / float64(tp+fp+fn+tn),
	}
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}
