package domain

import "sort"

// Difficulty levels used throughout the question bank and the ontology.
const (
	DifficultyAny          = "Any"
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Difficulties lists the selectable difficulty levels, "Any" first.
func Difficulties() []string {
	return []string{DifficultyAny, DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}
}

// Question is a single multiple-choice question belonging to a topic domain.
type Question struct {
	Domain     string
	Text       string
	Options    [4]string
	Answer     string
	Difficulty string
}

// QuestionBank groups questions by topic domain, preserving source order
// within each domain.
type QuestionBank map[string][]Question

// Domains returns the sorted set of domain names present in the bank.
func (b QuestionBank) Domains() []string {
	domains := make([]string, 0, len(b))
	for name := range b {
		domains = append(domains, name)
	}
	sort.Strings(domains)
	return domains
}

// ForDomain returns the questions for the given domain.
// An unknown domain yields an empty slice, never an error.
func (b QuestionBank) ForDomain(name string) []Question {
	return b[name]
}

// Add appends a question to its domain's sequence.
func (b QuestionBank) Add(q Question) {
	b[q.Domain] = append(b[q.Domain], q)
}
