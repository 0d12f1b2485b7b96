package service

import (
	"context"
	"testing"

	"ontoquiz/internal/domain"
	"ontoquiz/internal/similarity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBank() domain.QuestionBank {
	bank := make(domain.QuestionBank)
	for _, q := range []domain.Question{
		{Text: "list q1", Difficulty: domain.DifficultyBeginner},
		{Text: "list q2", Difficulty: domain.DifficultyBeginner},
		{Text: "list q3", Difficulty: domain.DifficultyIntermediate},
	} {
		q.Domain = "Lists"
		q.Options = [4]string{"a", "b", "c", "d"}
		q.Answer = "a"
		bank.Add(q)
	}
	bank.Add(domain.Question{
		Domain: "Loops", Text: "loop q1",
		Options: [4]string{"a", "b", "c", "d"}, Answer: "b",
		Difficulty: domain.DifficultyAdvanced,
	})
	return bank
}

func newTestQuizService() QuizService {
	evaluation := NewEvaluationService(testMaterials, similarity.LexicalScorer{})
	return NewQuizService(newTestBank(), evaluation)
}

func TestQuizService_Domains(t *testing.T) {
	svc := newTestQuizService()
	assert.Equal(t, []string{"Lists", "Loops"}, svc.Domains())
}

func TestQuizService_Difficulties(t *testing.T) {
	svc := newTestQuizService()
	assert.Equal(t, []string{"Any", "Beginner", "Intermediate", "Advanced"}, svc.Difficulties())
}

func TestQuizService_SampleQuestions(t *testing.T) {
	svc := newTestQuizService()

	t.Run("samples without replacement", func(t *testing.T) {
		sampled := svc.SampleQuestions("Lists", domain.DifficultyAny, 2)
		require.Len(t, sampled, 2)
		assert.NotEqual(t, sampled[0].Text, sampled[1].Text)
	})

	t.Run("caps at available questions", func(t *testing.T) {
		sampled := svc.SampleQuestions("Lists", domain.DifficultyAny, 10)
		assert.Len(t, sampled, 3)
	})

	t.Run("filters by difficulty", func(t *testing.T) {
		sampled := svc.SampleQuestions("Lists", domain.DifficultyIntermediate, 5)
		require.Len(t, sampled, 1)
		assert.Equal(t, "list q3", sampled[0].Text)
	})

	t.Run("unknown domain yields empty result", func(t *testing.T) {
		assert.Empty(t, svc.SampleQuestions("Quantum", domain.DifficultyAny, 5))
	})

	t.Run("difficulty with no questions yields empty result", func(t *testing.T) {
		assert.Empty(t, svc.SampleQuestions("Loops", domain.DifficultyBeginner, 5))
	})

	t.Run("non-positive count defaults", func(t *testing.T) {
		sampled := svc.SampleQuestions("Lists", domain.DifficultyAny, 0)
		assert.Len(t, sampled, 3)
	})
}

func TestQuizService_QuizView(t *testing.T) {
	ctx := context.Background()
	svc := newTestQuizService()

	t.Run("includes similarity percentage", func(t *testing.T) {
		view := svc.QuizView(ctx, "Lists", domain.DifficultyAny, 2)
		require.NotNil(t, view)
		assert.Equal(t, "Lists", view.Domain)
		assert.Len(t, view.Questions, 2)
		// Reference material scored against itself.
		assert.Equal(t, "100.00", view.Similarity)
	})

	t.Run("zero similarity when no questions match", func(t *testing.T) {
		view := svc.QuizView(ctx, "Loops", domain.DifficultyBeginner, 5)
		assert.Empty(t, view.Questions)
		assert.Equal(t, "0.00", view.Similarity)
	})

	t.Run("unknown domain", func(t *testing.T) {
		view := svc.QuizView(ctx, "Quantum", domain.DifficultyAny, 5)
		assert.Empty(t, view.Questions)
		assert.Equal(t, "0.00", view.Similarity)
	})
}
