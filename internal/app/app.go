package app

import (
	"database/sql"
	"fmt"
	"log"

	"taskboard/internal/config"
	"taskboard/internal/handlers"
	"taskboard/internal/middleware"
	"taskboard/internal/pdf"
	"taskboard/internal/repositories"
	"taskboard/internal/routes"
	"taskboard/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	_ "taskboard/docs"
)

func Run() {
	cfg := config.LoadConfig()
	middleware.SetJWTKey(cfg.Auth.JWTSecret)

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	commentRepo := repositories.NewCommentRepository(db)
	imageRepo := repositories.NewImageRepository(db)
	auditRepo := repositories.NewAuditLogRepository(db)

	// === Services ===
	authService := services.NewAuthService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)

	// Telegram is optional: without a token the nil service skips sends
	var tgService *services.TelegramService
	if cfg.Telegram.BotToken != "" {
		tgService, err = services.NewTelegramService(cfg.Telegram.BotToken)
		if err != nil {
			log.Printf("[tg][warn] disabled: %v", err)
			tgService = nil
		}
	}

	auditService := services.NewAuditService(auditRepo)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, userRepo, emailService, tgService, auditService)
	imageService := services.NewImageService(imageRepo, auditService, cfg.Files.RootDir)
	commentService := services.NewCommentService(commentRepo, imageService, auditService)
	dashboardService := services.NewDashboardService(projectRepo, taskRepo, commentRepo)

	summaryPDF := pdf.NewSummaryGenerator()

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userRepo, authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService, projectRepo, imageService, cfg.Files.RootDir)
	commentHandler := handlers.NewCommentHandler(commentService, taskService, projectRepo, imageService, cfg.Files.RootDir)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, summaryPDF)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		authHandler,
		projectHandler,
		taskHandler,
		commentHandler,
		dashboardHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
