package main

import (
	"context"
	"net/http"
	"time"

	"github.com/Sujal20805/Riddler/config"
	"github.com/Sujal20805/Riddler/database"
	authctrl "github.com/Sujal20805/Riddler/internal/controller/auth"
	quizctrl "github.com/Sujal20805/Riddler/internal/controller/quiz"
	userctrl "github.com/Sujal20805/Riddler/internal/controller/user"
	"github.com/Sujal20805/Riddler/internal/logger"
	"github.com/Sujal20805/Riddler/internal/middleware"
	"github.com/Sujal20805/Riddler/internal/model"
	"github.com/Sujal20805/Riddler/internal/repository"
	"github.com/Sujal20805/Riddler/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Riddler Quiz API
// @version 1.0
// @description Create multiple-choice quizzes, share them by code, play them for points.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewQuizRepository,
			repository.NewUserRepository,
		),

		fx.Provide(
			service.NewTokenService,
			service.NewQuizCodeAllocator,
			service.NewQuizService,
			service.NewSubmissionService,
			service.NewAuthService,
			service.NewUserService,
		),

		fx.Provide(
			authctrl.NewAuthController,
			quizctrl.NewQuizController,
			userctrl.NewUserController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server lifecycle through fx hooks.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens service.TokenService,
	userRepo repository.UserRepository,
	authCtrl *authctrl.AuthController,
	quizCtrl *quizctrl.QuizController,
	userCtrl *userctrl.UserController,
) {
	requireAuth := middleware.RequireAuth(tokens, userRepo)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		authGroup.POST("/register", authCtrl.Register)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/logout", authCtrl.Logout)

		quizGroup := api.Group("/quizzes")
		quizGroup.POST("", requireAuth, quizCtrl.CreateQuiz)
		quizGroup.GET("", quizCtrl.GetAllQuizzes)
		quizGroup.GET("/:quizCode", quizCtrl.GetQuizByCode)
		quizGroup.POST("/:quizCode/submit", requireAuth, quizCtrl.SubmitQuiz)

		userGroup := api.Group("/users")
		userGroup.GET("/leaderboard", userCtrl.GetLeaderboard)
		userGroup.GET("/profile", requireAuth, userCtrl.GetProfile)
		userGroup.PUT("/profile", requireAuth, userCtrl.UpdateProfile)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Riddler API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Quiz{},
		&model.Question{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
