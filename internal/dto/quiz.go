package dto

// DomainsResponse lists the selectable topic domains and difficulty levels.
type DomainsResponse struct {
	Domains      []string `json:"domains"`
	Difficulties []string `json:"difficulties"`
}

// QuizRequest is the request body for building a quiz view.
type QuizRequest struct {
	Domain     string `json:"domain"`
	Difficulty string `json:"difficulty"`
	Num        int    `json:"num"`
}

// QuestionResponse is a single multiple-choice question in a quiz view.
type QuestionResponse struct {
	Question   string   `json:"question"`
	Options    []string `json:"options"`
	Answer     string   `json:"answer"`
	Difficulty string   `json:"difficulty"`
}

// QuizViewResponse is the rendered quiz for one domain: sampled questions
// plus the similarity percentage of the domain's learning material.
type QuizViewResponse struct {
	Domain     string             `json:"domain"`
	Difficulty string             `json:"difficulty"`
	Questions  []QuestionResponse `json:"questions"`
	Similarity string             `json:"similarity"`
}

// EvaluationRowResponse is one domain's entry in the evaluation report.
type EvaluationRowResponse struct {
	Domain      string `json:"domain"`
	Material    string `json:"material"`
	Score       string `json:"score"`
	MCQs        string `json:"mcqs"`
	Description string `json:"description"`
}

// MetricsResponse carries the aggregate classification metrics as
// percentages.
type MetricsResponse struct {
	Accuracy  string `json:"accuracy"`
	Precision string `json:"precision"`
	Recall    string `json:"recall"`
	F1        string `json:"f1"`
}

// EvaluationResponse is the full evaluation table plus aggregate metrics.
type EvaluationResponse struct {
	Threshold float64                 `json:"threshold"`
	Rows      []EvaluationRowResponse `json:"rows"`
	Metrics   MetricsResponse         `json:"metrics"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
