package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"ontoquiz/internal/domain"
)

// Required header columns of the MCQ dataset. Difficulty is optional and
// defaults to Beginner.
var requiredColumns = []string{"Domain", "Question", "A", "B", "C", "D", "Answer"}

// LoadQuestionBank reads the MCQ CSV file at path and groups its rows by
// domain, preserving source order. A missing required column is a hard
// failure at load time.
func LoadQuestionBank(path string) (domain.QuestionBank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.NewBankLoadError(fmt.Sprintf("failed to open question bank file: %s", path), err)
	}
	defer f.Close()

	return ReadQuestionBank(f)
}

// ReadQuestionBank parses the MCQ dataset from r.
func ReadQuestionBank(r io.Reader) (domain.QuestionBank, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, domain.NewBankLoadError("failed to read question bank header", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, domain.NewMissingFieldError(name)
		}
	}
	difficultyIdx, hasDifficulty := columns["Difficulty"]

	bank := make(domain.QuestionBank)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, domain.NewBankLoadError(fmt.Sprintf("failed to read question bank row %d", line), err)
		}

		field := func(name string) string {
			idx := columns[name]
			if idx >= len(record) {
				return ""
			}
			return record[idx]
		}

		q := domain.Question{
			Domain:     field("Domain"),
			Text:       field("Question"),
			Options:    [4]string{field("A"), field("B"), field("C"), field("D")},
			Answer:     field("Answer"),
			Difficulty: domain.DifficultyBeginner,
		}
		if hasDifficulty && difficultyIdx < len(record) && record[difficultyIdx] != "" {
			q.Difficulty = record[difficultyIdx]
		}
		bank.Add(q)
	}

	return bank, nil
}
