package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"interviewprep/api/internal/config"
	"interviewprep/api/internal/handlers"
	"interviewprep/api/internal/repositories"
	"interviewprep/api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	interviewRepo := repositories.NewInterviewRepository(db)
	answerRepo := repositories.NewUserAnswerRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize storage
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	// Initialize the question bank
	questionBank, err := services.NewQuestionBankService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := questionBank.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Question bank initialized successfully")

	// Initialize services
	interviewService := services.NewInterviewService(interviewRepo)
	feedbackService := services.NewFeedbackService(answerRepo)
	dashboardService := services.NewDashboardService(answerRepo)
	resumeService := services.NewResumeService(resumeRepo)
	generatorService := services.NewGeneratorService(geminiService, questionBank, 3)
	importService := services.NewResumeImportService(storageService, pdfParser, geminiService)
	log.Println("✅ Services initialized successfully")

	// Start the orphan sweep
	janitor := services.NewJanitor(answerRepo, cfg.Janitor.SweepInterval, cfg.Janitor.BatchSize)
	janitor.Start()

	// Initialize handlers
	interviewHandler := handlers.NewInterviewHandler(interviewService, generatorService)
	answerHandler := handlers.NewAnswerHandler(feedbackService, dashboardService)
	resumeHandler := handlers.NewResumeHandler(resumeService, importService, cfg.Storage.MaxFileSize)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Interview Prep API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Interview routes. Fixed segments go first so they win over the
	// :mockId parameter routes.
	interview := app.Group("/interview")
	interview.Post("/saveInterview", interviewHandler.HandleSaveInterview)
	interview.Post("/saveUserAnswer", answerHandler.HandleSaveUserAnswer)
	interview.Post("/generate", interviewHandler.HandleGenerateQuestions)
	interview.Post("/gradeAnswer", interviewHandler.HandleGradeAnswer)
	interview.Get("/userInterviews", answerHandler.HandleUserInterviews)
	interview.Get("/feedback/:mockId", answerHandler.HandleGetFeedback)
	interview.Delete("/delete/:interviewId", interviewHandler.HandleDeleteInterview)
	interview.Get("/:mockId", interviewHandler.HandleGetInterview)
	interview.Get("/:mockId/questions", interviewHandler.HandleGetQuestions)
	interview.Put("/:mockId/answers", interviewHandler.HandleSaveDraftAnswers)

	// Resume routes
	resume := app.Group("/resume")
	resume.Post("/create", resumeHandler.HandleCreateResume)
	resume.Post("/import", resumeHandler.HandleImportResume)
	resume.Get("/user/:userEmail", resumeHandler.HandleGetUserResumes)
	resume.Put("/updateResume/:resumeId", resumeHandler.HandleUpdateResume)
	resume.Delete("/deleteResume/:resumeId", resumeHandler.HandleDeleteResume)
	resume.Get("/:resumeId", resumeHandler.HandleGetResume)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		janitor.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
