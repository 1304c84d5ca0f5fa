package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/profileranker/backend/agent"
	"github.com/profileranker/backend/auth"
	"github.com/profileranker/backend/config"
	_ "github.com/profileranker/backend/docs"
	"github.com/profileranker/backend/handlers"
	"github.com/profileranker/backend/mcp"
	"github.com/profileranker/backend/models"
	"github.com/profileranker/backend/reconcile"
	"github.com/profileranker/backend/storage"
	"github.com/profileranker/backend/tools"
	"github.com/profileranker/backend/utils"
)

// @title Profile Ranker API
// @version 1.0
// @description Job description and consultant profile store with agent-backed ranking, AR status and match detail views.

// @contact.name API Support

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token. Browsers use the httpOnly "token" cookie instead.

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	log.Println("Connecting to MongoDB...")
	mongoClient, err := storage.NewMongoClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize MongoDB client: %v", err)
	}
	log.Println("MongoDB client initialized successfully")

	if err := mongoClient.EnsureIndexes(ctx); err != nil {
		log.Printf("Warning: failed to ensure indexes: %v", err)
	}

	// PDFs are always stored inline; the bucket only mirrors them
	var archive handlers.PDFArchive
	if cfg.PDFBucketName != "" {
		log.Println("Initializing Cloud Storage client...")
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Cloud Storage client: %v", err)
		}
		defer storageClient.Close()
		archive = storageClient
		log.Printf("Mirroring PDFs to bucket %s", cfg.PDFBucketName)
	}

	jwtService := auth.NewJWTService(cfg)
	agentClient := agent.NewClient(cfg)
	statusService := reconcile.NewStatusService(mongoClient, cfg.StatusPageSize)

	authHandler := handlers.NewAuthHandler(mongoClient, jwtService, cfg.CookieSecure)
	documentHandler := handlers.NewDocumentHandler(mongoClient, mongoClient, utils.NewDocumentExtractor(), agentClient, archive, cfg.MaxUploadBytes)
	pdfHandler := handlers.NewPDFHandler(mongoClient, archive)
	compareHandler := handlers.NewCompareHandler(mongoClient, agentClient, cfg.MaxUploadBytes)
	statusHandler := handlers.NewStatusHandler(statusService)
	reportHandler := handlers.NewReportHandler(mongoClient, agentClient)
	healthHandler := handlers.NewHealthHandler(mongoClient, agentClient)

	toolRegistry := tools.NewToolRegistry(
		tools.NewARStatusTool(statusService),
		tools.NewJDMatchesTool(statusService),
		tools.NewListJobDescriptionsTool(mongoClient),
		tools.NewListConsultantProfilesTool(mongoClient),
	)
	mcpServer := mcp.NewServer(toolRegistry, "profile-ranker", handlers.Version)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Cookies carry the session, so origins must be explicit
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", healthHandler.Health)

	api := router.Group("/api")
	{
		api.POST("/signup", authHandler.Signup)
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
		api.POST("/check-email", authHandler.CheckEmail)

		protected := api.Group("")
		protected.Use(auth.AuthMiddleware(jwtService))
		{
			protected.GET("/me", authHandler.Me)

			protected.GET("/upload/job-description", documentHandler.ListJobDescriptions)
			protected.POST("/upload/job-description", documentHandler.UploadJobDescription)
			protected.GET("/upload/consultant-profile", documentHandler.ListConsultantProfiles)
			protected.POST("/upload/consultant-profile", documentHandler.UploadConsultantProfile)

			protected.GET("/profile-pdf/:id", pdfHandler.ProfilePDF)
			protected.GET("/jd-pdf/:id", pdfHandler.JobDescriptionPDF)
			protected.POST("/process-upload", compareHandler.ProcessUpload)

			// MCP endpoints for external AI agents
			mcpServer.RegisterRoutes(protected)
		}

		admin := protected.Group("")
		admin.Use(auth.RequireRole(models.RoleRecruiterAdmin))
		{
			admin.DELETE("/upload/job-description", documentHandler.DeleteJobDescription)
			admin.DELETE("/upload/consultant-profile", documentHandler.DeleteConsultantProfile)
			admin.POST("/reports/job-description/:id", reportHandler.JobDescriptionReport)
			admin.POST("/reports/consultant-profile/:id", reportHandler.ConsultantProfileReport)
		}

		requestor := protected.Group("")
		requestor.Use(auth.RequireRole(models.RoleARRequestor))
		{
			requestor.GET("/ar-status", statusHandler.ARStatus)
			requestor.GET("/matches/:id", statusHandler.Matches)
			requestor.POST("/compare", compareHandler.Compare)
		}
	}

	if cfg.StaticDir != "" {
		log.Printf("Serving front-end from %s", cfg.StaticDir)
		router.NoRoute(auth.PageGate(jwtService), handlers.NewStaticHandler(cfg.StaticDir).Serve)
	}

	// Comparison requests wait on the agent, so writes get its timeout on top
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.AgentTimeoutSeconds+cfg.HTTPTimeoutSeconds) * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := mongoClient.Close(shutdownCtx); err != nil {
		log.Printf("Failed to disconnect MongoDB: %v", err)
	}

	log.Println("Server exited gracefully")
}
