package handler

import (
	"fmt"
	"strconv"

	"ontoquiz/internal/domain"
	"ontoquiz/internal/dto"
	"ontoquiz/internal/service"
	"ontoquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// EvaluationHandler handles evaluation report HTTP requests
type EvaluationHandler struct {
	service   service.EvaluationService
	bank      domain.QuestionBank
	validator *validation.Validator
}

// NewEvaluationHandler creates a new EvaluationHandler instance
func NewEvaluationHandler(service service.EvaluationService, bank domain.QuestionBank, validator *validation.Validator) *EvaluationHandler {
	return &EvaluationHandler{
		service:   service,
		bank:      bank,
		validator: validator,
	}
}

// GetEvaluation handles GET /api/evaluation. It scores every domain in the
// question bank and returns the full evaluation table with aggregate
// metrics. An optional "threshold" query parameter overrides the
// classification cutoff.
func (h *EvaluationHandler) GetEvaluation(c *fiber.Ctx) error {
	threshold := service.DefaultThreshold
	if raw := c.Query("threshold"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.ValidationErrors{domain.NewInvalidFormatError("threshold", raw)}
		}
		if errs := h.validator.ValidateThreshold(parsed); len(errs) > 0 {
			return errs
		}
		threshold = parsed
	}

	rows, metrics := h.service.BuildTable(c.Context(), h.bank.Domains(), h.bank, threshold)

	rowResponses := make([]dto.EvaluationRowResponse, 0, len(rows))
	for _, row := range rows {
		rowResponses = append(rowResponses, dto.EvaluationRowResponse{
			Domain:      row.Domain,
			Material:    row.Material,
			Score:       fmt.Sprintf("%.2f%%", row.Score*100),
			MCQs:        row.MCQBlock,
			Description: row.Verdict,
		})
	}

	return c.JSON(dto.EvaluationResponse{
		Threshold: threshold,
		Rows:      rowResponses,
		Metrics: dto.MetricsResponse{
			Accuracy:  fmt.Sprintf("%.2f%%", metrics.Accuracy*100),
			Precision: fmt.Sprintf("%.2f%%", metrics.Precision*100),
			Recall:    fmt.Sprintf("%.2f%%", metrics.Recall*100),
			F1:        fmt.Sprintf("%.2f%%", metrics.F1*100),
		},
	})
}
