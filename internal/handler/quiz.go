package handler

import (
	"ontoquiz/internal/dto"
	"ontoquiz/internal/logger"
	"ontoquiz/internal/service"
	"ontoquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validator,
	}
}

// GetDomains handles GET /api/domains. It returns the selectable topic
// domains and difficulty levels.
func (h *QuizHandler) GetDomains(c *fiber.Ctx) error {
	return c.JSON(dto.DomainsResponse{
		Domains:      h.service.Domains(),
		Difficulties: h.service.Difficulties(),
	})
}

// GetQuiz handles POST /api/quiz. It returns a sampled question set for
// the requested domain and difficulty plus the material similarity
// percentage.
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	var req dto.QuizRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse quiz request", zap.Error(err))
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if errs := h.validator.ValidateQuizRequest(req.Domain, req.Difficulty, req.Num); len(errs) > 0 {
		return errs
	}

	if req.Num <= 0 {
		req.Num = service.DefaultQuestionCount
	}

	view := h.service.QuizView(c.Context(), req.Domain, req.Difficulty, req.Num)
	return c.JSON(view)
}
