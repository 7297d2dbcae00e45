package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/okataduke/config"
	"github.com/lshigami/okataduke/internal/dto"
	"github.com/lshigami/okataduke/internal/model"
	"github.com/lshigami/okataduke/internal/service"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded page templates for gin's HTML renderer.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.tmpl")
}

type optionView struct {
	Label   string
	Checked bool
}

type questionView struct {
	Position int
	Prompt   string
	Missing  bool
	Options  []optionView
}

type pageView struct {
	Title       string
	Intro       string
	HomepageURL string
	Notice      string
	Questions   []questionView
	Result      *dto.DiagnosisResultDTO
}

// FormController serves the quiz as a plain HTML form: GET renders it, POST scores it.
type FormController struct {
	quizService      service.QuizService
	diagnosisService service.DiagnosisService
	homepageURL      string
}

func NewFormController(qs service.QuizService, ds service.DiagnosisService, cfg *config.Config) *FormController {
	return &FormController{quizService: qs, diagnosisService: ds, homepageURL: cfg.HomepageURL}
}

func (c *FormController) ShowForm(ctx *gin.Context) {
	page, err := c.buildPage(nil, nil)
	if err != nil {
		log.Error().Err(err).Msg("ShowForm: failed to build page")
		ctx.String(http.StatusInternalServerError, "failed to load quiz")
		return
	}
	ctx.HTML(http.StatusOK, "form.tmpl", page)
}

func (c *FormController) SubmitForm(ctx *gin.Context) {
	quiz, err := c.quizService.GetQuiz()
	if err != nil {
		log.Error().Err(err).Msg("SubmitForm: failed to load quiz")
		ctx.String(http.StatusInternalServerError, "failed to load quiz")
		return
	}

	response := make(model.Response, len(quiz.Questions))
	for _, q := range quiz.Questions {
		if label := ctx.PostForm("q" + strconv.Itoa(q.Position)); label != "" {
			response[q.Position] = label
		}
	}

	result, err := c.diagnosisService.Diagnose(response)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrInvalidSelection) {
			status = http.StatusUnprocessableEntity
		}
		log.Error().Err(err).Int("status", status).Msg("SubmitForm: Service error")
		ctx.String(status, "could not score the submitted answers")
		return
	}

	if result.State == string(model.StateCollecting) {
		page, err := c.buildPage(response, result)
		if err != nil {
			log.Error().Err(err).Msg("SubmitForm: failed to build page")
			ctx.String(http.StatusInternalServerError, "failed to load quiz")
			return
		}
		ctx.HTML(http.StatusOK, "form.tmpl", page)
		return
	}

	ctx.HTML(http.StatusOK, "result.tmpl", pageView{
		Title:       quiz.Title,
		HomepageURL: c.homepageURL,
		Result:      result,
	})
}

// buildPage renders the form view, keeping earlier selections and flagging missing answers.
func (c *FormController) buildPage(selected model.Response, result *dto.DiagnosisResultDTO) (*pageView, error) {
	quiz, err := c.quizService.GetQuiz()
	if err != nil {
		return nil, err
	}
	missing := map[int]bool{}
	page := &pageView{Title: quiz.Title, Intro: quiz.Intro, HomepageURL: c.homepageURL}
	if result != nil {
		page.Notice = result.Notice
		for _, p := range result.MissingPositions {
			missing[p] = true
		}
	}
	for _, q := range quiz.Questions {
		qv := questionView{Position: q.Position, Prompt: q.Prompt, Missing: missing[q.Position]}
		for _, opt := range q.Options {
			qv.Options = append(qv.Options, optionView{Label: opt.Label, Checked: selected[q.Position] == opt.Label})
		}
		page.Questions = append(page.Questions, qv)
	}
	return page, nil
}
