package validation

import (
	"strings"

	"ontoquiz/internal/domain"
)

// MaxQuestionCount bounds how many questions one quiz view may request.
const MaxQuestionCount = 50

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateQuizRequest validates the quiz view request. Num is validated
// only when supplied (> 0); callers default it otherwise.
func (v *Validator) ValidateQuizRequest(domainName, difficulty string, num int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(domainName) == "" {
		errors = append(errors, domain.NewMissingFieldError("domain"))
	}

	if difficulty != "" && !isValidDifficulty(difficulty) {
		errors = append(errors, domain.NewInvalidFormatError("difficulty", difficulty))
	}

	if num < 0 || num > MaxQuestionCount {
		errors = append(errors, domain.NewOutOfRangeError("num", num, 0, MaxQuestionCount))
	}

	return errors
}

// ValidateThreshold checks an evaluation threshold override.
func (v *Validator) ValidateThreshold(threshold float64) domain.ValidationErrors {
	if threshold < 0 || threshold > 1 {
		return domain.ValidationErrors{
			domain.NewInvalidFormatError("threshold", threshold),
		}
	}
	return nil
}

func isValidDifficulty(difficulty string) bool {
	for _, d := range domain.Difficulties() {
		if d == difficulty {
			return true
		}
	}
	return false
}
