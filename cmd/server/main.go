package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"callcenter-gin/internal/auth"
	"callcenter-gin/internal/channel"
	"callcenter-gin/internal/config"
	"callcenter-gin/internal/database"
	"callcenter-gin/internal/handlers"
	"callcenter-gin/internal/middleware"
	"callcenter-gin/internal/repositories"
	"callcenter-gin/internal/services"
	"callcenter-gin/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// =========================================================================
	// Load configuration
	// =========================================================================
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Khởi tạo Logger
	// =========================================================================
	log, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	// =========================================================================
	// Kết nối Database
	// =========================================================================
	db, err := database.NewConnection(&cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	// Auto migrate trong development mode
	if cfg.App.IsDevelopment() {
		if err := database.AutoMigrate(db); err != nil {
			log.Warn("auto migrate failed", zap.Error(err))
		} else {
			log.Info("database auto migration completed")
		}
	}

	// =========================================================================
	// Khởi tạo Repositories
	// =========================================================================
	projectRepo := repositories.NewProjectRepository(db)
	teamRepo := repositories.NewTeamRepository(db)
	employeeRepo := repositories.NewEmployeeRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	assignmentRepo := repositories.NewAssignmentRepository(db)
	interactionRepo := repositories.NewInteractionLogRepository(db)

	log.Info("repositories initialized")

	// =========================================================================
	// Khởi tạo Channel Registry với các kênh liên hệ tĩnh
	// =========================================================================
	channelRegistry := channel.NewDefaultRegistry()
	log.Info("contact channels registered", zap.Strings("types", channelRegistry.GetAll()))

	// =========================================================================
	// Khởi tạo Services
	// =========================================================================
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := services.NewAuthService(employeeRepo, jwtService, log)
	assignmentService := services.NewAssignmentService(assignmentRepo, customerRepo, employeeRepo, projectRepo, log)
	interactionService := services.NewInteractionService(assignmentRepo, interactionRepo, employeeRepo, channelRegistry, log)
	directoryService := services.NewDirectoryService(projectRepo, teamRepo, employeeRepo, customerRepo, log)

	log.Info("services initialized")

	// =========================================================================
	// Khởi tạo Handlers và Middleware
	// =========================================================================
	authHandler := handlers.NewAuthHandler(authService, log)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService, interactionService, log)
	projectHandler := handlers.NewProjectHandler(directoryService, log)
	teamHandler := handlers.NewTeamHandler(directoryService, log)
	employeeHandler := handlers.NewEmployeeHandler(directoryService, log)
	customerHandler := handlers.NewCustomerHandler(directoryService, log)

	authMiddleware := middleware.AuthMiddleware(jwtService)
	requireManager := middleware.RequireManager()
	requireAdmin := middleware.RequireAdmin()

	log.Info("handlers initialized")

	// =========================================================================
	// Thiết lập Gin Router
	// =========================================================================
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logging(log))
	router.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))
	// CSRF protection - exempt auth routes (login/refresh chưa có token)
	router.Use(middleware.CSRFMiddleware([]string{
		"/api/v1/auth/",
		"/health",
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"service":  cfg.App.Name,
			"version":  "1.0.0",
			"channels": channelRegistry.GetAll(),
		})
	})

	// =========================================================================
	// API Routes
	// =========================================================================
	api := router.Group("/api/v1")
	{
		// Ping endpoint (public)
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		// Auth routes (login, refresh: public | me, logout: protected)
		authHandler.RegisterRoutes(api, authMiddleware)

		// =====================================================================
		// Protected routes - Require authentication
		// =====================================================================
		protected := api.Group("")
		protected.Use(authMiddleware)
		{
			// Workflow: gán khách hàng, my customers, ghi nhận liên hệ
			assignmentHandler.RegisterRoutes(protected, requireManager)

			// Danh mục
			projectHandler.RegisterRoutes(protected, requireManager)
			teamHandler.RegisterRoutes(protected, requireManager)
			employeeHandler.RegisterRoutes(protected, requireManager, requireAdmin)
			customerHandler.RegisterRoutes(protected, requireManager)
		}
	}

	log.Info("routes registered",
		zap.Strings("endpoints", []string{
			"/api/v1/assignments/project-data",
			"/api/v1/assignments",
			"/api/v1/assignments/mine",
			"/api/v1/assignments/:id/interaction",
			"/api/v1/assignments/:id/interactions",
		}),
	)

	// =========================================================================
	// Khởi động HTTP Server
	// =========================================================================
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.Int("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// =========================================================================
	// Graceful Shutdown
	// =========================================================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

// corsConfig dựng cấu hình CORS từ danh sách origins
// "*" thì mở cho tất cả nhưng không cho gửi credentials
func corsConfig(allowedOrigins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}

	for _, origin := range allowedOrigins {
		if origin == "*" {
			c.AllowAllOrigins = true
			c.AllowCredentials = false
			return c
		}
	}
	c.AllowOrigins = allowedOrigins
	return c
}
