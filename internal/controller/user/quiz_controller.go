package user

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/okataduke/internal/dto"
	"github.com/lshigami/okataduke/internal/model"
	"github.com/lshigami/okataduke/internal/repository"
	"github.com/lshigami/okataduke/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizController struct {
	quizService      service.QuizService
	diagnosisService service.DiagnosisService
	bankRepo         repository.QuestionBankRepository
}

func NewQuizController(qs service.QuizService, ds service.DiagnosisService, bankRepo repository.QuestionBankRepository) *QuizController {
	return &QuizController{
		quizService:      qs,
		diagnosisService: ds,
		bankRepo:         bankRepo,
	}
}

// GetQuiz godoc
// @Summary Get the quiz
// @Description Title, intro and the ten questions with their option labels. Category tags are not exposed.
// @Tags Quiz
// @Produce json
// @Success 200 {object} dto.QuizDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quiz, err := c.quizService.GetQuiz()
	if err != nil {
		log.Error().Err(err).Msg("GetQuiz: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to load quiz", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// GetCategories godoc
// @Summary List result categories
// @Description The four tidying types with display labels and advice links, in tie-break order.
// @Tags Quiz
// @Produce json
// @Success 200 {array} dto.CategoryDTO
// @Router /categories [get]
func (c *QuizController) GetCategories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.quizService.GetCategories())
}

// SubmitDiagnosis godoc
// @Summary Submit answers and get the diagnosis
// @Description Scores a full set of answers. If any question is unanswered the result has state "collecting", a notice and the missing positions, and no category.
// @Tags Quiz
// @Accept json
// @Produce json
// @Param submission body dto.DiagnosisSubmitDTO true "Selected option label per question position"
// @Success 200 {object} dto.DiagnosisResultDTO
// @Failure 400 {object} dto.ErrorResponse "Malformed body or duplicate positions"
// @Failure 422 {object} dto.ErrorResponse "A label is not an option of its question"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /diagnoses [post]
func (c *QuizController) SubmitDiagnosis(ctx *gin.Context) {
	var req dto.DiagnosisSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("SubmitDiagnosis: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	response := make(model.Response, len(req.Answers))
	seen := make(map[int]bool, len(req.Answers))
	for _, a := range req.Answers {
		if seen[a.Position] {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: fmt.Sprintf("Duplicate answer for position %d", a.Position)})
			return
		}
		seen[a.Position] = true
		if a.Label != nil {
			response[a.Position] = *a.Label
		}
	}

	result, err := c.diagnosisService.Diagnose(response)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrInvalidSelection) {
			status = http.StatusUnprocessableEntity
		}
		log.Error().Err(err).Int("status", status).Msg("SubmitDiagnosis: Service error")
		ctx.JSON(status, dto.ErrorResponse{Message: "Failed to score submission", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// Health reports liveness and the loaded bank size. It is mounted outside /api/v1.
func (c *QuizController) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.HealthDTO{Status: "ok", Questions: c.bankRepo.Size()})
}
