package repository

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/lshigami/okataduke/config"
	"github.com/lshigami/okataduke/internal/model"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// OptionsPerQuestion is the number of choices every question must offer.
const OptionsPerQuestion = 4

//go:embed bank/okataduke.yaml
var embeddedBank []byte

type QuestionBankRepository interface {
	Bank() *model.Bank
	Size() int
	Question(position int) (*model.Question, bool)
	Category(c model.Category) (*model.CategoryInfo, bool)
}

type questionBankRepository struct {
	bank       *model.Bank
	byPosition map[int]*model.Question
	categories map[model.Category]*model.CategoryInfo
}

// NewQuestionBankRepository loads the bank named by cfg.Quiz.BankPath, or the embedded one.
func NewQuestionBankRepository(cfg *config.Config) (QuestionBankRepository, error) {
	data := embeddedBank
	source := "embedded"
	if cfg != nil && cfg.Quiz.BankPath != "" {
		raw, err := os.ReadFile(cfg.Quiz.BankPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read question bank %s: %w", cfg.Quiz.BankPath, err)
		}
		data = raw
		source = cfg.Quiz.BankPath
	}

	repo, err := ParseQuestionBank(data)
	if err != nil {
		log.Error().Err(err).Str("source", source).Msg("Question bank rejected")
		return nil, err
	}
	log.Info().Str("source", source).Int("questions", repo.Size()).Msg("Question bank loaded")
	return repo, nil
}

// ParseQuestionBank decodes and validates a bank document.
func ParseQuestionBank(data []byte) (QuestionBankRepository, error) {
	var bank model.Bank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, fmt.Errorf("failed to decode question bank: %w", err)
	}
	repo, err := newQuestionBankRepository(&bank)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

func newQuestionBankRepository(bank *model.Bank) (*questionBankRepository, error) {
	if err := validateBank(bank); err != nil {
		return nil, err
	}
	r := &questionBankRepository{
		bank:       bank,
		byPosition: make(map[int]*model.Question, len(bank.Questions)),
		categories: make(map[model.Category]*model.CategoryInfo, model.NumCategories),
	}
	for i := range bank.Questions {
		q := &bank.Questions[i]
		r.byPosition[q.Position] = q
	}
	for i := range bank.Categories {
		info := &bank.Categories[i]
		r.categories[info.Category] = info
	}
	return r, nil
}

func validateBank(bank *model.Bank) error {
	var errs []error

	seen := make(map[model.Category]bool, model.NumCategories)
	for _, info := range bank.Categories {
		if !info.Category.Valid() {
			errs = append(errs, fmt.Errorf("category table: invalid category %d", int(info.Category)))
			continue
		}
		if seen[info.Category] {
			errs = append(errs, fmt.Errorf("category table: duplicate entry for %s", info.Category))
		}
		seen[info.Category] = true
		if info.Label == "" {
			errs = append(errs, fmt.Errorf("category table: %s has no label", info.Category))
		}
		if info.AdviceURL == "" {
			errs = append(errs, fmt.Errorf("category table: %s has no advice_url", info.Category))
		}
	}
	for _, c := range model.Categories() {
		if !seen[c] {
			errs = append(errs, fmt.Errorf("category table: missing entry for %s", c))
		}
	}

	if len(bank.Questions) == 0 {
		errs = append(errs, errors.New("question bank has no questions"))
	}
	for i, q := range bank.Questions {
		if q.Position != i+1 {
			errs = append(errs, fmt.Errorf("question %d: position must be %d, got %d", i+1, i+1, q.Position))
		}
		if q.Prompt == "" {
			errs = append(errs, fmt.Errorf("question %d: empty prompt", q.Position))
		}
		if len(q.Options) != OptionsPerQuestion {
			errs = append(errs, fmt.Errorf("question %d: expected %d options, got %d", q.Position, OptionsPerQuestion, len(q.Options)))
		}
		labels := make(map[string]bool, len(q.Options))
		for _, opt := range q.Options {
			if opt.Label == "" {
				errs = append(errs, fmt.Errorf("question %d: option with empty label", q.Position))
			}
			if labels[opt.Label] {
				errs = append(errs, fmt.Errorf("question %d: duplicate option label %q", q.Position, opt.Label))
			}
			labels[opt.Label] = true
			if !opt.Category.Valid() {
				errs = append(errs, fmt.Errorf("question %d: option %q has invalid category", q.Position, opt.Label))
			}
		}
	}
	return errors.Join(errs...)
}

func (r *questionBankRepository) Bank() *model.Bank {
	return r.bank
}

func (r *questionBankRepository) Size() int {
	return len(r.bank.Questions)
}

func (r *questionBankRepository) Question(position int) (*model.Question, bool) {
	q, ok := r.byPosition[position]
	return q, ok
}

func (r *questionBankRepository) Category(c model.Category) (*model.CategoryInfo, bool) {
	info, ok := r.categories[c]
	return info, ok
}
