package service

import (
	"testing"

	"github.com/lshigami/okataduke/config"
	"github.com/lshigami/okataduke/internal/model"
	"github.com/lshigami/okataduke/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBank(t *testing.T) repository.QuestionBankRepository {
	t.Helper()
	repo, err := repository.NewQuestionBankRepository(&config.Config{})
	require.NoError(t, err)
	return repo
}

// pick selects, for each position, the option at the given index (-1 leaves it unanswered).
func pick(t *testing.T, bank repository.QuestionBankRepository, indexes ...int) model.Response {
	t.Helper()
	resp := model.Response{}
	for i, idx := range indexes {
		if idx < 0 {
			continue
		}
		q, ok := bank.Question(i + 1)
		require.True(t, ok)
		resp[i+1] = q.Options[idx].Label
	}
	return resp
}

func TestTallyAllFirstOptions(t *testing.T) {
	bank := newTestBank(t)
	scorer := NewScorerService(bank)

	resp := pick(t, bank, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
	tally, err := scorer.Tally(resp)
	require.NoError(t, err)

	assert.Equal(t, model.ScoreTally{model.Freeze: 10, model.Emotion: 0, model.Burnout: 0, model.Family: 0}, tally)
	assert.True(t, scorer.IsComplete(resp))

	category, err := scorer.Classify(tally)
	require.NoError(t, err)
	assert.Equal(t, model.Freeze, category)
}

func TestTallyPartialResponse(t *testing.T) {
	bank := newTestBank(t)
	scorer := NewScorerService(bank)

	resp := pick(t, bank, 1, 1, 1, 2, 2, -1, -1, -1, -1, -1)
	tally, err := scorer.Tally(resp)
	require.NoError(t, err)

	assert.Equal(t, model.ScoreTally{model.Freeze: 0, model.Emotion: 3, model.Burnout: 2, model.Family: 0}, tally)
	assert.False(t, scorer.IsComplete(resp))
	assert.Equal(t, []int{6, 7, 8, 9, 10}, scorer.MissingPositions(resp))

	category, err := scorer.Classify(tally)
	require.NoError(t, err)
	assert.Equal(t, model.Emotion, category)
}

func TestTallySumsToAnsweredCount(t *testing.T) {
	bank := newTestBank(t)
	scorer := NewScorerService(bank)

	for k := 0; k <= bank.Size(); k++ {
		indexes := make([]int, bank.Size())
		for i := range indexes {
			if i < k {
				indexes[i] = (i + k) % repository.OptionsPerQuestion
			} else {
				indexes[i] = -1
			}
		}
		resp := pick(t, bank, indexes...)

		tally, err := scorer.Tally(resp)
		require.NoError(t, err)
		assert.Equal(t, k, tally.Total(), "k=%d", k)
		assert.Len(t, tally, model.NumCategories)
		assert.Equal(t, k == bank.Size(), scorer.IsComplete(resp), "k=%d", k)
	}
}

func TestTallyIgnoresEmptyLabels(t *testing.T) {
	bank := newTestBank(t)
	scorer := NewScorerService(bank)

	resp := pick(t, bank, 3, 3, 3, 3, 3, 3, 3, 3, 3, 3)
	resp[4] = ""

	tally, err := scorer.Tally(resp)
	require.NoError(t, err)
	assert.Equal(t, 9, tally[model.Family])
	assert.False(t, scorer.IsComplete(resp))
	assert.Equal(t, []int{4}, scorer.MissingPositions(resp))
}

func TestTallyInvalidSelection(t *testing.T) {
	bank := newTestBank(t)
	scorer := NewScorerService(bank)

	t.Run("label not offered by the question", func(t *testing.T) {
		q2, _ := bank.Question(2)
		resp := model.Response{1: q2.Options[0].Label}
		_, err := scorer.Tally(resp)
		assert.ErrorIs(t, err, ErrInvalidSelection)
	})

	t.Run("position outside the bank", func(t *testing.T) {
		q1, _ := bank.Question(1)
		resp := model.Response{11: q1.Options[0].Label}
		_, err := scorer.Tally(resp)
		assert.ErrorIs(t, err, ErrInvalidSelection)
	})

	t.Run("several invalid selections report the same one every time", func(t *testing.T) {
		q1, _ := bank.Question(1)
		resp := model.Response{
			3:  "not an option",
			7:  "also not an option",
			0:  q1.Options[0].Label,
			12: q1.Options[0].Label,
		}
		for i := 0; i < 20; i++ {
			_, err := scorer.Tally(resp)
			require.ErrorIs(t, err, ErrInvalidSelection)
			assert.Contains(t, err.Error(), "question 3")
		}

		resp = model.Response{15: "x", 11: "y", 40: "z"}
		for i := 0; i < 20; i++ {
			_, err := scorer.Tally(resp)
			require.ErrorIs(t, err, ErrInvalidSelection)
			assert.Contains(t, err.Error(), "position 11")
		}
	})
}

func TestClassify(t *testing.T) {
	scorer := NewScorerService(newTestBank(t))

	cases := []struct {
		name  string
		tally model.ScoreTally
		want  model.Category
	}{
		{"freeze and emotion tied", model.ScoreTally{model.Freeze: 3, model.Emotion: 3, model.Burnout: 2, model.Family: 2}, model.Freeze},
		{"burnout and family tied", model.ScoreTally{model.Freeze: 1, model.Emotion: 1, model.Burnout: 4, model.Family: 4}, model.Burnout},
		{"emotion and family tied", model.ScoreTally{model.Freeze: 2, model.Emotion: 3, model.Burnout: 2, model.Family: 3}, model.Emotion},
		{"clear family win", model.ScoreTally{model.Freeze: 2, model.Emotion: 2, model.Burnout: 1, model.Family: 5}, model.Family},
		{"single answer", model.ScoreTally{model.Burnout: 1}, model.Burnout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, err := scorer.Classify(tc.tally)
			require.NoError(t, err)
			second, err := scorer.Classify(tc.tally)
			require.NoError(t, err)

			assert.Equal(t, tc.want, first)
			assert.Equal(t, first, second)
		})
	}

	t.Run("empty tally", func(t *testing.T) {
		_, err := scorer.Classify(model.NewScoreTally())
		assert.ErrorIs(t, err, ErrEmptyTally)
	})
}

func TestResolveAdvice(t *testing.T) {
	scorer := NewScorerService(newTestBank(t))

	seen := map[string]model.Category{}
	for _, c := range model.Categories() {
		advice, err := scorer.ResolveAdvice(c)
		require.NoError(t, err)
		assert.Equal(t, c, advice.Category)
		assert.NotEmpty(t, advice.URL)
		_, dup := seen[advice.URL]
		assert.False(t, dup, "advice URL for %s reused", c)
		seen[advice.URL] = c
	}

	_, err := scorer.ResolveAdvice(model.Category(0))
	assert.ErrorIs(t, err, ErrUnknownCategory)
	_, err = scorer.ResolveAdvice(model.Category(9))
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
