package main

import (
	"log"
	"time"

	"quizhub/internal/config"
	"quizhub/internal/db"
	"quizhub/internal/event"
	"quizhub/internal/handlers"
	"quizhub/internal/mailer"
	"quizhub/internal/middleware"
	"quizhub/internal/repository"
	"quizhub/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.New()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" || cfg.RefreshSecret == "" {
		log.Fatal("JWT_SECRET and REFRESH_TOKEN_SECRET are required")
	}
	db.InitMongo(cfg.MongoURI)
	defer db.Disconnect()

	// RabbitMQ event publisher, optional
	var publisher *event.EventPublisher
	if cfg.RabbitURI != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	var mail service.Notifier
	if cfg.SMTP.Host != "" {
		mail = mailer.New(cfg.SMTP)
	} else {
		log.Println("SMTP not configured, score emails will not be sent")
	}

	database := db.Client.Database(cfg.MongoDatabase)

	userRepo := repository.NewUserRepository(database)
	quizRepo := repository.NewQuizRepository(database)
	questionRepo := repository.NewQuestionRepository(database)
	attemptRepo := repository.NewAttemptRepository(database)
	resultRepo := repository.NewResultRepository(database)
	notificationRepo := repository.NewNotificationRepository(database)

	userService := service.NewUserService(userRepo,
		cfg.JWTSecret, cfg.RefreshSecret,
		time.Duration(cfg.AccessExpiryHours)*time.Hour,
		time.Duration(cfg.RefreshExpiryHours)*time.Hour)
	quizService := service.NewQuizService(quizRepo, questionRepo, userRepo)
	questionService := service.NewQuestionService(questionRepo, quizRepo)
	resultService := service.NewResultService(resultRepo, userRepo, quizRepo)
	notificationService := service.NewNotificationService(notificationRepo, mail, eventSink(publisher))
	attemptService := service.NewAttemptService(attemptRepo, quizRepo, questionRepo, userRepo, resultService, notificationService)

	authHandler := handlers.NewAuthHandler(userService)
	quizHandler := handlers.NewQuizHandler(quizService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	attemptHandler := handlers.NewAttemptHandler(attemptService)
	resultHandler := handlers.NewResultHandler(resultService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	public := r.Group("/public/quiz")
	{
		public.POST("/auth/register", authHandler.Register)
		public.POST("/auth/login", authHandler.Login)
		public.POST("/auth/refresh", authHandler.Refresh)

		public.GET("/quizzes", quizHandler.ListQuizzes)
		public.GET("/quizzes/:id", quizHandler.GetQuiz)

		public.GET("/results/leaderboard/:quizId", resultHandler.GetLeaderboard)
	}

	protected := r.Group("/protected/quiz")
	protected.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		protected.GET("/me", authHandler.Me)
		protected.PUT("/me", authHandler.UpdateProfile)

		protected.POST("/attempts", attemptHandler.StartAttempt)
		protected.POST("/attempts/:id/submit", attemptHandler.SubmitAttempt)

		protected.GET("/results/me", resultHandler.GetMyResults)

		protected.GET("/notifications", notificationHandler.ListMine)
		protected.POST("/notifications/:id/read", notificationHandler.MarkRead)
	}

	admin := r.Group("/protected/quiz/admin")
	admin.Use(middleware.RequireAuth(cfg.JWTSecret), middleware.RequireAdmin())
	{
		admin.POST("/quizzes", quizHandler.CreateQuiz)
		admin.PUT("/quizzes/:id", quizHandler.UpdateQuiz)
		admin.DELETE("/quizzes/:id", quizHandler.DeleteQuiz)

		admin.POST("/questions", questionHandler.CreateQuestion)
		admin.GET("/questions/:id", questionHandler.GetQuestion)
		admin.GET("/quizzes/:quizId/questions", questionHandler.ListByQuiz)
		admin.PUT("/questions/:id", questionHandler.UpdateQuestion)
		admin.DELETE("/questions/:id", questionHandler.DeleteQuestion)

		admin.GET("/users", authHandler.ListUsers)
		admin.DELETE("/users/:id", authHandler.DeactivateUser)
		admin.GET("/users/:id/results", resultHandler.GetResultsByUser)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

// eventSink keeps the typed-nil publisher from sneaking into the non-nil
// interface check inside the notification service.
func eventSink(p *event.EventPublisher) service.EventPublisher {
	if p == nil {
		return nil
	}
	return p
}
