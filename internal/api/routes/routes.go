package routes

import (
	"fmt"

	"hackathon-registration-backend/internal/api/handlers"
	"hackathon-registration-backend/internal/api/middleware"
	"hackathon-registration-backend/internal/auth"
	"hackathon-registration-backend/internal/config"
	"hackathon-registration-backend/internal/events"
	"hackathon-registration-backend/internal/repository"
	"hackathon-registration-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies holds the infrastructure the router is built on
type Dependencies struct {
	DB        *gorm.DB
	Config    *config.Config
	Publisher events.Publisher
	// Broker is reported by /health; nil when events are disabled
	Broker handlers.ConnectionChecker
	// Clock overrides the registration clock, nil means wall clock UTC
	Clock service.Clock
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps *Dependencies) (*gin.Engine, error) {
	cfg := deps.Config

	tokenService, err := auth.NewTokenService(cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("init token service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(tokenService)

	publisher := deps.Publisher
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}

	// Initialize repositories
	repos := repository.NewRepositories(deps.DB)
	transactor := repository.NewTransactor(deps.DB)

	// Initialize services
	validator := service.NewValidator()
	checker := service.NewEligibilityChecker(deps.Clock)
	capacity := service.NewCapacityGuard()

	hackathonService := service.NewHackathonService(transactor, repos, checker, publisher, validator, cfg.DefaultTeamSize)
	registrationService := service.NewRegistrationService(transactor, repos, checker, capacity, publisher, validator)
	teamFormationService := service.NewTeamFormationService(transactor, checker, publisher, validator)
	reviewService := service.NewApplicantReviewService(transactor, capacity, checker, publisher, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Broker)
	hackathonHandler := handlers.NewHackathonHandler(hackathonService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	teamFormationHandler := handlers.NewTeamFormationHandler(teamFormationService)
	applicantHandler := handlers.NewApplicantHandler(reviewService)

	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Health check routes
	registerHealthRoutes(router, healthHandler)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		hackathons := v1.Group("/hackathons")
		{
			hackathons.GET("", hackathonHandler.ListHackathons)
			hackathons.GET("/registered/me", hackathonHandler.ListMyHackathons)
			hackathons.GET("/:id", hackathonHandler.GetHackathon)
			hackathons.POST("/:id/registrations", registrationHandler.Register)
			hackathons.GET("/:id/registrations/me", registrationHandler.GetMyRegistration)
		}

		admin := v1.Group("/admin")
		admin.Use(authMiddleware.RequireRole(auth.RoleAdmin))
		{
			adminHackathons := admin.Group("/hackathons")
			{
				adminHackathons.POST("", hackathonHandler.CreateHackathon)
				adminHackathons.PATCH("/:id/capacity", hackathonHandler.UpdateCapacity)
				adminHackathons.GET("/:id/roster", hackathonHandler.GetRoster)
				adminHackathons.GET("/:id/registrations/:studentId", registrationHandler.GetStudentRegistration)

				adminHackathons.POST("/:id/temporary-teams", teamFormationHandler.FormTemporaryTeam)
				adminHackathons.DELETE("/:id/temporary-teams/:teamId", teamFormationHandler.DissolveTemporaryTeam)
				adminHackathons.POST("/:id/temporary-teams/:teamId/convert", teamFormationHandler.ConvertTemporaryTeam)

				adminHackathons.PUT("/:id/team-applicants/:applicantId/status", applicantHandler.SetTeamApplicantStatus)
				adminHackathons.PUT("/:id/individual-applicants/:applicantId/status", applicantHandler.SetIndividualApplicantStatus)
			}
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(middleware.RequestIDKey),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, broker handlers.ConnectionChecker) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	registerHealthRoutes(router, handlers.NewHealthHandler(db, broker))

	return router
}

func registerHealthRoutes(router *gin.Engine, healthHandler *handlers.HealthHandler) {
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
}
