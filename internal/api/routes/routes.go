package routes

import (
	"agenthub-backend/internal/api/handlers"
	"agenthub-backend/internal/api/middleware"
	"agenthub-backend/internal/auth"
	"agenthub-backend/internal/config"
	"agenthub-backend/internal/email"
	"agenthub-backend/internal/repository"
	"agenthub-backend/internal/service"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(client *dynamodb.Client, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize the document store
	store := repository.NewRepository(client, cfg.DynamoDBTable)

	// Initialize collaborators
	mailer := email.NewSMTPSender(cfg.SMTPHostPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, cfg.SMTPTLS)
	aiClient := service.NewHTTPAIClient(service.AIClientConfig{
		APIURL:       cfg.AIAPIURL,
		OAuthURL:     cfg.AIOAuthURL,
		ClientID:     cfg.AIClientID,
		ClientSecret: cfg.AIClientSecret,
		Model:        cfg.AIModel,
	})
	marketClient := service.NewHTTPMarketDataClient(cfg.MarketDataURL, cfg.MarketDataAPIKey)

	// Initialize auth services
	authService := auth.NewService(cfg.JWTSecret, store)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize services
	organizationService := service.NewOrganizationService(store, authService, validator)
	invitationService := service.NewInvitationService(store, authService, mailer, validator, cfg.BaseURL, cfg.InviteTTL())
	memberService := service.NewMemberService(store, authService, validator)
	profileService := service.NewProfileService(store, validator)
	lessonPlanService := service.NewLessonPlanService(store, aiClient, validator)
	openHouseService := service.NewOpenHouseService(store, validator)
	marketStatsService := service.NewMarketStatsService(store, marketClient, cfg.MarketStatsTTL())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(client, cfg.DynamoDBTable)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	memberHandler := handlers.NewMemberHandler(memberService)
	profileHandler := handlers.NewProfileHandler(profileService)
	lessonPlanHandler := handlers.NewLessonPlanHandler(lessonPlanService)
	openHouseHandler := handlers.NewOpenHouseHandler(openHouseService)
	marketStatsHandler := handlers.NewMarketStatsHandler(marketStatsService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Organization routes
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/current", organizationHandler.GetOrganization)
			organizations.PUT("/current", organizationHandler.UpdateOrganizationSettings)
		}

		// Invitation routes
		invitations := v1.Group("/invitations")
		{
			invitations.GET("", invitationHandler.ListPendingInvitations)
			invitations.POST("", invitationHandler.InviteTeamMember)
			invitations.POST("/accept", invitationHandler.AcceptInvitation)
			invitations.DELETE("/:id", invitationHandler.CancelInvitation)
		}

		// Member routes
		members := v1.Group("/members")
		{
			members.GET("", memberHandler.ListMembers)
			members.PUT("/:userId/role", memberHandler.UpdateMemberRole)
			members.DELETE("/:userId", memberHandler.RemoveMember)
		}

		// Profile routes
		profile := v1.Group("/profile")
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
		}

		// Lesson plan routes
		lessonPlans := v1.Group("/lesson-plans")
		{
			lessonPlans.GET("", lessonPlanHandler.ListLessonPlans)
			lessonPlans.POST("", lessonPlanHandler.GenerateLessonPlan)
			lessonPlans.GET("/:id", lessonPlanHandler.GetLessonPlan)
			lessonPlans.DELETE("/:id", lessonPlanHandler.DeleteLessonPlan)
		}

		// Open house routes
		openHouses := v1.Group("/open-houses")
		{
			openHouses.GET("", openHouseHandler.ListOpenHouses)
			openHouses.POST("", openHouseHandler.StartOpenHouse)
			openHouses.PATCH("/:id", openHouseHandler.UpdateOpenHouse)
			openHouses.POST("/:id/end", openHouseHandler.EndOpenHouse)
		}

		// Market stats routes
		v1.GET("/market-stats/:areaCode", marketStatsHandler.GetMarketStats)
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"message": "Not found.",
			"errors":  gin.H{"resource": []string{"The requested endpoint does not exist"}},
		})
	})

	return router
}
