package main

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/okataduke/config"
	_ "github.com/lshigami/okataduke/docs" // Swagger docs - generated by swag init
	adminctrl "github.com/lshigami/okataduke/internal/controller/admin"
	userctrl "github.com/lshigami/okataduke/internal/controller/user"
	webctrl "github.com/lshigami/okataduke/internal/controller/web"
	"github.com/lshigami/okataduke/internal/logger"
	"github.com/lshigami/okataduke/internal/middleware"
	"github.com/lshigami/okataduke/internal/repository"
	"github.com/lshigami/okataduke/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title Okataduke Type Diagnosis API
// @version 1.0
// @description Ten-question tidying-type quiz. Submissions are tallied into four categories and the top category is returned with its advice link.
// @contact.name API Support
// @contact.url https://rakulife.jp/
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(appOptions())

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Application stop failed")
	}
}

func appOptions() fx.Option {
	return fx.Options(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewQuestionBankRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewScorerService,
			service.NewDiagnosisService,
			service.NewQuizService,
		),

		// Controllers Layer
		fx.Provide(
			userctrl.NewQuizController,
			adminctrl.NewBankController,
			webctrl.NewFormController,
		),

		fx.Invoke(ApplyLogLevel),
		fx.Invoke(RegisterRoutesAndStartServer),
	)
}

func ApplyLogLevel(cfg *config.Config) {
	logger.SetLevel(cfg.LogLevel)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	switch cfg.Server.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.GinMode)
	default:
		log.Warn().Str("mode", cfg.Server.GinMode).Msg("Unknown GIN_MODE, falling back to debug")
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return "" // zerolog already wrote the line
	}))
	r.Use(gin.Recovery())
	r.Use(middleware.SecureHeaders())
	r.Use(cors.New(corsConfig(cfg.Server.AllowOrigins)))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}

// RegisterRoutes mounts the JSON API, the admin group and the HTML form on router.
func RegisterRoutes(
	router *gin.Engine,
	quizCtrl *userctrl.QuizController,
	bankCtrl *adminctrl.BankController,
	formCtrl *webctrl.FormController,
) error {
	tmpl, err := webctrl.Templates()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(tmpl)

	router.GET("/healthz", quizCtrl.Health)

	// HTML form
	router.GET("/", formCtrl.ShowForm)
	router.POST("/", formCtrl.SubmitForm)

	// Admin Routes (prefixed with /api/v1/admin)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.GET("/bank", bankCtrl.GetBank)
	}

	// User Routes (prefixed with /api/v1)
	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/quiz", quizCtrl.GetQuiz)
		userAPIGroup.GET("/categories", quizCtrl.GetCategories)
		userAPIGroup.POST("/diagnoses", quizCtrl.SubmitDiagnosis)
	}
	return nil
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quizCtrl *userctrl.QuizController,
	bankCtrl *adminctrl.BankController,
	formCtrl *webctrl.FormController,
) error {
	if err := RegisterRoutes(router, quizCtrl, bankCtrl, formCtrl); err != nil {
		log.Error().Err(err).Msg("Failed to register routes")
		return err
	}

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			log.Info().Msgf("Okataduke diagnosis server starting on %s", ln.Addr())
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server Serve failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
	return nil
}
