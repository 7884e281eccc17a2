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

	"github.com/shellasitanaya/backend-cv-analyzer/audit"
	"github.com/shellasitanaya/backend-cv-analyzer/auth"
	"github.com/shellasitanaya/backend-cv-analyzer/config"
	_ "github.com/shellasitanaya/backend-cv-analyzer/docs"
	"github.com/shellasitanaya/backend-cv-analyzer/extractor"
	"github.com/shellasitanaya/backend-cv-analyzer/gate"
	"github.com/shellasitanaya/backend-cv-analyzer/gemini"
	"github.com/shellasitanaya/backend-cv-analyzer/handlers"
	"github.com/shellasitanaya/backend-cv-analyzer/mcp"
	"github.com/shellasitanaya/backend-cv-analyzer/models"
	"github.com/shellasitanaya/backend-cv-analyzer/pipeline"
	"github.com/shellasitanaya/backend-cv-analyzer/scorer"
	"github.com/shellasitanaya/backend-cv-analyzer/search"
	"github.com/shellasitanaya/backend-cv-analyzer/skills"
	"github.com/shellasitanaya/backend-cv-analyzer/storage"
	"github.com/shellasitanaya/backend-cv-analyzer/tools"
	"github.com/shellasitanaya/backend-cv-analyzer/utils"
)

// @title CV Analyzer API
// @version 1.0
// @description AI-powered CV screening backend with profile extraction, eligibility gating, rubric scoring, keyword auditing and talent search.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@cv-analyzer.dev

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create context for initialization
	ctx := context.Background()

	// Initialize Firestore client
	log.Println("Initializing Firestore client...")
	firestoreClient, err := storage.NewFirestoreClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer firestoreClient.Close()
	log.Println("Firestore client initialized successfully")

	// Initialize Cloud Storage client
	log.Println("Initializing Cloud Storage client...")
	storageClient, err := storage.NewCloudStorageClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage client: %v", err)
	}
	defer storageClient.Close()
	log.Println("Cloud Storage client initialized successfully")

	// Initialize auth services
	jwtService := auth.NewJWTService(cfg)
	googleAuthService := auth.NewGoogleAuthService(cfg)

	// Initialize the Gemini client used for extraction and scoring
	log.Println("Initializing Gemini client...")
	geminiClient, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer geminiClient.Close()
	log.Println("Gemini client initialized successfully")

	// Build the evaluation components
	vocab := skills.DefaultVocabulary()
	roles := skills.DefaultRoleMap()

	profileExtractor := extractor.New(geminiClient, extractor.NewHeuristicTagger(), vocab)
	eligibilityGate := gate.New()
	rubricScorer := scorer.NewRubricScorer(geminiClient, scorer.WithPassThreshold(cfg.PassThreshold))
	lexicalScorer := scorer.NewLexicalScorer()
	auditor := audit.New(vocab)
	talentIndex := search.New(roles)
	docExtractor := utils.NewDocumentExtractor()

	evalPipeline := pipeline.New(
		docExtractor,
		profileExtractor,
		eligibilityGate,
		rubricScorer,
		auditor,
		firestoreClient,
		pipeline.WithMaxConcurrent(cfg.MaxConcurrentCVs),
		pipeline.WithOracleTimeout(time.Duration(cfg.OracleTimeoutSeconds)*time.Second),
	)

	evalTool := tools.NewEvaluateCandidateTool(profileExtractor, eligibilityGate, rubricScorer)

	// Create handlers
	authHandler := handlers.NewAuthHandler(firestoreClient, jwtService, googleAuthService)
	hrHandler := handlers.NewHRHandler(firestoreClient, storageClient, evalPipeline, talentIndex, evalTool, cfg.MaxUploadSizeMB)
	analyzeHandler := handlers.NewAnalyzeHandler(lexicalScorer, auditor, tools.NewParseCVTool(profileExtractor), docExtractor, vocab, geminiClient)

	// Create MCP server with tool registry
	toolRegistry := tools.NewToolRegistry()
	toolRegistry.Register(tools.NewParseCVTool(profileExtractor))
	toolRegistry.Register(evalTool)
	toolRegistry.Register(tools.NewAuditCVTool(auditor))
	toolRegistry.Register(tools.NewSearchTalentTool(talentIndex, firestoreClient))

	mcpServer := mcp.NewServer(toolRegistry)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Configure CORS for the frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes
	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Auth endpoints (public)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/google", authHandler.GoogleLogin)
		}

		// Protected auth endpoints (require authentication)
		authProtected := api.Group("/auth")
		authProtected.Use(auth.AuthMiddleware(jwtService))
		{
			authProtected.GET("/profile", authHandler.GetProfile)
			authProtected.PUT("/profile", authHandler.UpdateProfile)
			authProtected.DELETE("/profile", authHandler.DeleteAccount)
		}

		// HR endpoints (require the HR role)
		hrGroup := api.Group("/hr")
		hrGroup.Use(auth.AuthMiddleware(jwtService), auth.RequireRole(models.RoleHR))
		{
			hrGroup.POST("/jobs", hrHandler.CreateJob)
			hrGroup.GET("/jobs", hrHandler.ListJobs)
			hrGroup.GET("/jobs/:id", hrHandler.GetJob)
			hrGroup.POST("/jobs/:id/upload", hrHandler.UploadCVs)
			hrGroup.GET("/jobs/:id/candidates", hrHandler.ListCandidates)
			hrGroup.POST("/evaluate", hrHandler.EvaluateCandidate)
			hrGroup.GET("/candidates/:id/cv", hrHandler.GetCandidateCV)
			hrGroup.GET("/candidates/:id/cv-url", hrHandler.GetCandidateCVLink)
			hrGroup.DELETE("/candidates/:id", hrHandler.DeleteCandidate)
			hrGroup.GET("/talent-search", hrHandler.SearchTalent)
		}

		// Job seeker endpoints (public, with optional identity for logging)
		api.POST("/js/analyze", auth.OptionalAuthMiddleware(jwtService), analyzeHandler.Analyze)
		api.POST("/parse-cv", auth.OptionalAuthMiddleware(jwtService), analyzeHandler.ParseCV)
		api.GET("/skills", analyzeHandler.AutocompleteSkills)

		// Tools introspection endpoint
		api.GET("/tools", handlers.GetTools(toolRegistry))

		// MCP endpoints for external AI agents
		mcpServer.RegisterRoutes(api)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
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

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
