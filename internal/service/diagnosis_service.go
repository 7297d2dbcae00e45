package service

import (
	"fmt"

	"github.com/lshigami/okataduke/internal/dto"
	"github.com/lshigami/okataduke/internal/model"
	"github.com/lshigami/okataduke/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	IncompleteNotice = "すべての質問に回答してください"
	AdviceButtonText = "詳しいアドバイスはこちら"
)

// DiagnosisService runs one submission through collecting -> submitted -> scored -> presented.
type DiagnosisService interface {
	Diagnose(response model.Response) (*dto.DiagnosisResultDTO, error)
}

type diagnosisService struct {
	scorer   ScorerService
	bankRepo repository.QuestionBankRepository
}

func NewDiagnosisService(scorer ScorerService, bankRepo repository.QuestionBankRepository) DiagnosisService {
	return &diagnosisService{scorer: scorer, bankRepo: bankRepo}
}

func (s *diagnosisService) Diagnose(response model.Response) (*dto.DiagnosisResultDTO, error) {
	tally, err := s.scorer.Tally(response)
	if err != nil {
		log.Error().Err(err).Msg("Diagnose: tally failed")
		return nil, fmt.Errorf("tally response: %w", err)
	}

	result := &dto.DiagnosisResultDTO{
		State:    string(model.StateCollecting),
		Answered: tally.Total(),
		Tally:    tallyToMap(tally),
	}

	// Blocked transition: an incomplete submission goes back to collecting and is never classified.
	if !s.scorer.IsComplete(response) {
		result.Notice = IncompleteNotice
		result.MissingPositions = s.scorer.MissingPositions(response)
		log.Debug().Ints("missing", result.MissingPositions).Msg("Diagnose: submission incomplete")
		return result, nil
	}
	result.Complete = true
	result.State = string(model.StateSubmitted)

	category, err := s.scorer.Classify(tally)
	if err != nil {
		log.Error().Err(err).Interface("tally", result.Tally).Msg("Diagnose: classify failed")
		return nil, fmt.Errorf("classify tally: %w", err)
	}
	result.State = string(model.StateScored)

	advice, err := s.scorer.ResolveAdvice(category)
	if err != nil {
		log.Error().Err(err).Str("category", category.String()).Msg("Diagnose: advice lookup failed")
		return nil, fmt.Errorf("resolve advice: %w", err)
	}
	info, _ := s.bankRepo.Category(category)

	result.Category = &dto.CategoryDTO{
		Tag:       category.String(),
		Label:     info.Label,
		AdviceURL: advice.URL,
	}
	result.Message = fmt.Sprintf("あなたは「%s」のようです。", info.Label)
	result.AdviceButton = AdviceButtonText
	result.State = string(model.StatePresented)

	log.Info().Str("category", category.String()).Interface("tally", result.Tally).Msg("Diagnose: result presented")
	return result, nil
}

func tallyToMap(tally model.ScoreTally) map[string]int {
	m := make(map[string]int, model.NumCategories)
	for _, c := range model.Categories() {
		m[c.String()] = tally[c]
	}
	return m
}
