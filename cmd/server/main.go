package main

import (
	"log"
	"time"

	"lingua-exam-backend/internal/config"
	"lingua-exam-backend/internal/database"
	"lingua-exam-backend/internal/evaluator"
	"lingua-exam-backend/internal/handlers"
	"lingua-exam-backend/internal/middleware"
	"lingua-exam-backend/internal/services"
	"lingua-exam-backend/internal/webhooklog"
	"lingua-exam-backend/internal/ws"

	_ "lingua-exam-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Lingua Exam Scoring API
// @version         1.0
// @description     Answer scoring and exam session tracking for a language-learning platform
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()
	webhookLog := webhooklog.New(cfg.WebhookLogSize)

	var eval evaluator.Evaluator
	chatEval := evaluator.NewChatEvaluator(
		cfg.EvaluatorAPIURL, cfg.EvaluatorAPIKey, cfg.EvaluatorModel,
		time.Duration(cfg.EvaluatorTimeout)*time.Second,
	)
	if chatEval.IsAvailable() {
		eval = chatEval
	} else {
		log.Println("EVALUATOR_API_URL not set, semantic answer judging disabled")
	}

	authService := services.NewAuthService(db, cfg.JWTSecret)
	examService := services.NewExamService(db)
	scoringService := services.NewScoringService(db, eval)
	sessionService := services.NewSessionService(db)

	authHandler := handlers.NewAuthHandler(authService)
	examHandler := handlers.NewExamHandler(examService)
	scoringHandler := handlers.NewScoringHandler(scoringService, examService)
	sessionHandler := handlers.NewSessionHandler(sessionService, hub)
	webhookHandler := handlers.NewWebhookHandler(webhookLog)
	wsHandler := handlers.NewWSHandler(hub, sessionService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/sessions/:id", wsHandler.HandleSessionWebSocket)
	r.POST("/webhook/inbound/:source", webhookHandler.ReceiveWebhook)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		exams := api.Group("/exams")
		exams.Use(middleware.JWTAuth(authService))
		{
			exams.GET("", examHandler.ListExams)
			exams.POST("", examHandler.CreateExam)
			exams.GET("/:id", examHandler.GetExam)
			exams.DELETE("/:id", examHandler.DeleteExam)
		}

		api.POST("/score", scoringHandler.ScoreQuestion)
		api.POST("/score-section", scoringHandler.ScoreSection)
		api.POST("/sections/:id/score", scoringHandler.ScoreStoredSection)

		api.POST("/responses", sessionHandler.RecordResponses)

		sessions := api.Group("/sessions")
		{
			sessions.GET("", sessionHandler.ListSessions)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.GET("/:id/responses", sessionHandler.GetSessionResponses)
			sessions.POST("/:id/complete", sessionHandler.CompleteSession)
		}

		api.GET("/webhook-log", middleware.JWTAuth(authService), webhookHandler.GetWebhookLog)
	}

	addr := ":" + cfg.ServerPort
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
