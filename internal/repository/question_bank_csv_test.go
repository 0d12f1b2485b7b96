package repository

import (
	"strings"
	"testing"

	"ontoquiz/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Domain,Question,A,B,C,D,Answer,Difficulty
Lists,Which method appends an element?,append(),add(),push(),insert(),append(),Beginner
Lists,Which syntax creates an empty list?,[],{},(),set(),[],Beginner
Functions,Which keyword defines a function?,def,func,fn,lambda,def,Intermediate
`

func TestReadQuestionBank(t *testing.T) {
	t.Run("groups by domain preserving order", func(t *testing.T) {
		bank, err := ReadQuestionBank(strings.NewReader(sampleCSV))
		require.NoError(t, err)

		assert.Equal(t, []string{"Functions", "Lists"}, bank.Domains())

		lists := bank.ForDomain("Lists")
		require.Len(t, lists, 2)
		assert.Equal(t, "Which method appends an element?", lists[0].Text)
		assert.Equal(t, "Which syntax creates an empty list?", lists[1].Text)
		assert.Equal(t, [4]string{"append()", "add()", "push()", "insert()"}, lists[0].Options)
		assert.Equal(t, "append()", lists[0].Answer)
	})

	t.Run("unknown domain yields empty slice", func(t *testing.T) {
		bank, err := ReadQuestionBank(strings.NewReader(sampleCSV))
		require.NoError(t, err)
		assert.Empty(t, bank.ForDomain("Decorators"))
	})

	t.Run("difficulty defaults to Beginner when column absent", func(t *testing.T) {
		csv := "Domain,Question,A,B,C,D,Answer\nLoops,How do loops work?,a,b,c,d,a\n"
		bank, err := ReadQuestionBank(strings.NewReader(csv))
		require.NoError(t, err)
		assert.Equal(t, domain.DifficultyBeginner, bank.ForDomain("Loops")[0].Difficulty)
	})

	t.Run("difficulty defaults to Beginner when cell empty", func(t *testing.T) {
		csv := "Domain,Question,A,B,C,D,Answer,Difficulty\nLoops,How do loops work?,a,b,c,d,a,\n"
		bank, err := ReadQuestionBank(strings.NewReader(csv))
		require.NoError(t, err)
		assert.Equal(t, domain.DifficultyBeginner, bank.ForDomain("Loops")[0].Difficulty)
	})

	t.Run("missing required column fails fast", func(t *testing.T) {
		csv := "Domain,Question,A,B,C,D\nLoops,q,a,b,c,d\n"
		_, err := ReadQuestionBank(strings.NewReader(csv))
		require.Error(t, err)

		var vErr domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Answer", vErr.Field)
	})
}

func TestLoadQuestionBank_MissingFile(t *testing.T) {
	_, err := LoadQuestionBank("does-not-exist.csv")
	require.Error(t, err)

	var dErr *domain.DomainError
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, domain.CodeBankLoadError, dErr.Code)
}
