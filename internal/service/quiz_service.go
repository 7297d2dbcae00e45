package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/okataduke/internal/dto"
	"github.com/lshigami/okataduke/internal/model"
	"github.com/lshigami/okataduke/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuizService interface {
	GetQuiz() (*dto.QuizDTO, error)
	GetCategories() []dto.CategoryDTO
	GetBank() *dto.BankDTO
}

type quizService struct {
	bankRepo repository.QuestionBankRepository
}

func NewQuizService(bankRepo repository.QuestionBankRepository) QuizService {
	return &quizService{bankRepo: bankRepo}
}

// GetQuiz returns the respondent view; option category tags are not copied.
func (s *quizService) GetQuiz() (*dto.QuizDTO, error) {
	var resp dto.QuizDTO
	if err := copier.Copy(&resp, s.bankRepo.Bank()); err != nil {
		log.Error().Err(err).Msg("Failed to copy question bank to QuizDTO")
		return nil, err
	}
	return &resp, nil
}

// GetCategories lists the category table in declaration order, not file order.
func (s *quizService) GetCategories() []dto.CategoryDTO {
	out := make([]dto.CategoryDTO, 0, model.NumCategories)
	for _, c := range model.Categories() {
		info, ok := s.bankRepo.Category(c)
		if !ok {
			continue
		}
		out = append(out, dto.CategoryDTO{Tag: c.String(), Label: info.Label, AdviceURL: info.AdviceURL})
	}
	return out
}

func (s *quizService) GetBank() *dto.BankDTO {
	bank := s.bankRepo.Bank()
	resp := &dto.BankDTO{
		Title:      bank.Title,
		Intro:      bank.Intro,
		Categories: s.GetCategories(),
		Questions:  make([]dto.BankQuestionDTO, 0, len(bank.Questions)),
	}
	for _, q := range bank.Questions {
		bq := dto.BankQuestionDTO{Position: q.Position, Prompt: q.Prompt}
		for _, opt := range q.Options {
			bq.Options = append(bq.Options, dto.BankOptionDTO{Label: opt.Label, Category: opt.Category.String()})
		}
		resp.Questions = append(resp.Questions, bq)
	}
	return resp
}
