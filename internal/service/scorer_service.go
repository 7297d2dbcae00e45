package service

import (
	"fmt"
	"slices"

	"github.com/lshigami/okataduke/internal/model"
	"github.com/lshigami/okataduke/internal/repository"
)

// ScorerService turns a response into per-category counts and picks the winning category.
// Every method is a pure function of its input and the static question bank.
type ScorerService interface {
	Tally(response model.Response) (model.ScoreTally, error)
	IsComplete(response model.Response) bool
	MissingPositions(response model.Response) []int
	Classify(tally model.ScoreTally) (model.Category, error)
	ResolveAdvice(category model.Category) (model.AdviceResource, error)
}

type scorerService struct {
	bankRepo repository.QuestionBankRepository
}

func NewScorerService(bankRepo repository.QuestionBankRepository) ScorerService {
	return &scorerService{bankRepo: bankRepo}
}

// Tally walks positions in bank order. Out-of-bank positions are reported lowest first.
func (s *scorerService) Tally(response model.Response) (model.ScoreTally, error) {
	tally := model.NewScoreTally()
	size := s.bankRepo.Size()
	for position := 1; position <= size; position++ {
		label := response[position]
		if label == "" {
			continue
		}
		question, ok := s.bankRepo.Question(position)
		if !ok {
			return nil, fmt.Errorf("%w: no question at position %d", ErrInvalidSelection, position)
		}
		option, ok := question.OptionByLabel(label)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not an option of question %d", ErrInvalidSelection, label, position)
		}
		tally[option.Category]++
	}

	var extra []int
	for position, label := range response {
		if label != "" && (position < 1 || position > size) {
			extra = append(extra, position)
		}
	}
	if len(extra) > 0 {
		return nil, fmt.Errorf("%w: no question at position %d", ErrInvalidSelection, slices.Min(extra))
	}
	return tally, nil
}

func (s *scorerService) IsComplete(response model.Response) bool {
	for position := 1; position <= s.bankRepo.Size(); position++ {
		if !response.Answered(position) {
			return false
		}
	}
	return true
}

func (s *scorerService) MissingPositions(response model.Response) []int {
	var missing []int
	for position := 1; position <= s.bankRepo.Size(); position++ {
		if !response.Answered(position) {
			missing = append(missing, position)
		}
	}
	return missing
}

// Classify returns the category with the highest count. Ties go to the category
// declared first (freeze, emotion, burnout, family).
func (s *scorerService) Classify(tally model.ScoreTally) (model.Category, error) {
	var (
		best      model.Category
		bestCount int
	)
	for _, c := range model.Categories() {
		if n := tally[c]; n > bestCount {
			best, bestCount = c, n
		}
	}
	if bestCount == 0 {
		return 0, ErrEmptyTally
	}
	return best, nil
}

func (s *scorerService) ResolveAdvice(category model.Category) (model.AdviceResource, error) {
	info, ok := s.bankRepo.Category(category)
	if !ok {
		return model.AdviceResource{}, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	return model.AdviceResource{Category: category, URL: info.AdviceURL}, nil
}
