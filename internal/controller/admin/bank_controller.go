package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/okataduke/internal/service"
)

type BankController struct {
	quizService service.QuizService
}

func NewBankController(quizService service.QuizService) *BankController {
	return &BankController{quizService: quizService}
}

// GetBank godoc
// @Summary (Admin) Inspect the loaded question bank
// @Description Full bank as loaded at startup, including the category tag behind every option.
// @Tags Admin - Bank
// @Produce json
// @Success 200 {object} dto.BankDTO
// @Router /admin/bank [get]
func (c *BankController) GetBank(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.quizService.GetBank())
}
