package service

import (
	"context"
	"fmt"
	"math/rand"

	"ontoquiz/internal/domain"
	"ontoquiz/internal/dto"
)

// DefaultQuestionCount is used when a quiz request does not say how many
// questions to sample.
const DefaultQuestionCount = 5

// QuizService serves quiz content: domain listings and sampled question
// sets with the domain's material-similarity percentage.
type QuizService interface {
	Domains() []string
	Difficulties() []string
	SampleQuestions(domainName, difficulty string, n int) []domain.Question
	QuizView(ctx context.Context, domainName, difficulty string, n int) *dto.QuizViewResponse
}

type quizService struct {
	bank       domain.QuestionBank
	evaluation EvaluationService
}

// NewQuizService creates a new quizService over the loaded question bank.
func NewQuizService(bank domain.QuestionBank, evaluation EvaluationService) QuizService {
	return &quizService{
		bank:       bank,
		evaluation: evaluation,
	}
}

func (s *quizService) Domains() []string {
	return s.bank.Domains()
}

func (s *quizService) Difficulties() []string {
	return domain.Difficulties()
}

// SampleQuestions filters the domain's questions by difficulty (unless
// "Any") and returns a random sample without replacement. An unknown
// domain yields an empty result, never an error.
func (s *quizService) SampleQuestions(domainName, difficulty string, n int) []domain.Question {
	questions := s.filterQuestions(domainName, difficulty)
	if n <= 0 {
		n = DefaultQuestionCount
	}
	if n > len(questions) {
		n = len(questions)
	}

	perm := rand.Perm(len(questions))
	sampled := make([]domain.Question, 0, n)
	for _, idx := range perm[:n] {
		sampled = append(sampled, questions[idx])
	}
	return sampled
}

func (s *quizService) QuizView(ctx context.Context, domainName, difficulty string, n int) *dto.QuizViewResponse {
	sampled := s.SampleQuestions(domainName, difficulty, n)

	// Similarity is only meaningful when the selected difficulty has
	// questions at all.
	sim := 0.0
	if len(s.filterQuestions(domainName, difficulty)) > 0 {
		sim = s.evaluation.Evaluate(ctx, s.evaluation.ReferenceText(domainName), domainName) * 100
	}

	questions := make([]dto.QuestionResponse, 0, len(sampled))
	for _, q := range sampled {
		questions = append(questions, dto.QuestionResponse{
			Question:   q.Text,
			Options:    q.Options[:],
			Answer:     q.Answer,
			Difficulty: q.Difficulty,
		})
	}

	return &dto.QuizViewResponse{
		Domain:     domainName,
		Difficulty: difficulty,
		Questions:  questions,
		Similarity: fmt.Sprintf("%.2f", sim),
	}
}

func (s *quizService) filterQuestions(domainName, difficulty string) []domain.Question {
	questions := s.bank.ForDomain(domainName)
	if difficulty == "" || difficulty == domain.DifficultyAny {
		return questions
	}
	filtered := make([]domain.Question, 0, len(questions))
	for _, q := range questions {
		if q.Difficulty == difficulty {
			filtered = append(filtered, q)
		}
	}
	return filtered
}
