// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"log"
	"time"

	"huddle/internal/config"
	"huddle/internal/gemini"
	"huddle/internal/middleware"
	"huddle/internal/models"
	"huddle/internal/repository"
	"huddle/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	userRepo       repository.UserRepository
	communityRepo  repository.CommunityRepository
	membershipRepo repository.MembershipRepository
	postRepo       repository.PostRepository
	commentRepo    repository.CommentRepository

	userService      *service.UserService
	communityService *service.CommunityService
	postService      *service.PostService
	commentService   *service.CommentService
	summaryService   *service.SummaryService
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and
// optionally performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	middleware.InitMiddleware(cfg)

	userRepo := repository.NewUserRepository(db)
	communityRepo := repository.NewCommunityRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	postRepo := repository.NewPostRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	prom := middleware.InitMetrics("huddle-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		userRepo:       userRepo,
		communityRepo:  communityRepo,
		membershipRepo: membershipRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
	}

	geminiClient := gemini.NewClient(
		cfg.GeminiEndpoint,
		cfg.GeminiAPIKey,
		time.Duration(cfg.GeminiTimeoutSec)*time.Second,
	)

	server.userService = service.NewUserService(userRepo, cfg)
	server.communityService = service.NewCommunityService(communityRepo, membershipRepo, userRepo)
	server.postService = service.NewPostService(postRepo, userRepo, communityRepo)
	server.commentService = service.NewCommentService(commentRepo, postRepo, userRepo)
	server.summaryService = service.NewSummaryService(postRepo, geminiClient)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context middleware to propagate request ID and user ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// CORS runs before middlewares that can short-circuit (e.g. limiter) so
	// browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400,
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; CORS handles them.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Public routes
	api.Post("/create-account", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "create_account"), s.CreateAccount)
	api.Get("/test_login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.TestLogin)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired)

	// Users
	protected.Post("/update-profile", s.UpdateProfile)
	protected.Post("/delete-account", s.DeleteAccount)

	// Communities
	protected.Post("/create-community", s.CreateCommunity)
	protected.Post("/join-community", s.JoinCommunity)
	protected.Post("/delete-community", s.DeleteCommunity)
	protected.Get("/community-details", s.CommunityDetails)
	protected.Get("/get-communities", s.GetCommunities)

	// Posts
	protected.Post("/create-post", middleware.RateLimit(
		s.redis, 5, time.Minute, "create_post"), s.CreatePost)
	protected.Get("/get-post", s.GetPost)
	protected.Get("/get-community-posts", s.GetCommunityPosts)
	protected.Get("/get-user-posts", s.GetUserPosts)
	protected.Get("/get-all-posts", s.GetAllPosts)
	protected.Post("/delete-post", s.DeletePost)

	// Comments
	protected.Post("/add-comment", middleware.RateLimit(
		s.redis, 10, time.Minute, "add_comment"), s.AddComment)
	protected.Post("/update-comment", s.UpdateComment)
	protected.Get("/get-post-comments", s.GetPostComments)
	protected.Post("/up-vote", s.UpVote)
	protected.Post("/down-vote", s.DownVote)

	// Summarization proxy
	protected.Post("/summarize", middleware.RateLimit(
		s.redis, 5, time.Minute, "summarize"), s.SummarizePost)
	protected.Post("/summarize-all-posts", middleware.RateLimit(
		s.redis, 2, time.Minute, "summarize_all"), s.SummarizeAllPosts)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// Redis is optional: the service runs degraded without it.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start builds the fiber app, wires middleware and routes, and listens on
// the configured port. It blocks until the listener stops.
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName:   "Huddle API",
		BodyLimit: 10 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
