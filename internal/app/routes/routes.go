package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/alumniconnect/internal/app/controllers"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/middleware"
	"github.com/yigit/alumniconnect/internal/pkg/websocket"
)

// Controllers groups every HTTP handler the router mounts
type Controllers struct {
	Health       *controllers.HealthController
	Auth         *controllers.AuthController
	Alumni       *controllers.AlumniController
	Event        *controllers.EventController
	Mentorship   *controllers.MentorshipController
	Donation     *controllers.DonationController
	Dashboard    *controllers.DashboardController
	Catalog      *controllers.CatalogController
	Conversation *controllers.ConversationController
	WebSocket    *websocket.Handler
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", c.Health.Health)

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", c.Auth.Logout)

		authenticated.GET("/profile", c.Alumni.Profile)
		authenticated.PATCH("/profile", c.Alumni.UpdateProfile)

		alumni := authenticated.Group("/alumni")
		{
			alumni.GET("", c.Alumni.List)
			alumni.GET("/facets", c.Alumni.Facets)
			alumni.GET("/:id", c.Alumni.Get)
		}

		events := authenticated.Group("/events")
		{
			events.GET("", c.Event.List)
			events.POST("/:id/register", c.Event.Register)
		}

		authenticated.GET("/dashboard", c.Dashboard.Get)

		authenticated.GET("/jobs", c.Catalog.Jobs)
		authenticated.GET("/stories", c.Catalog.Stories)
		authenticated.GET("/badges", c.Catalog.Badges)

		conversations := authenticated.Group("/conversations")
		{
			conversations.GET("", c.Conversation.List)
			conversations.GET("/:id/messages", c.Conversation.Messages)
			conversations.POST("/:id/messages", c.Conversation.Send)
			conversations.GET("/:id/ws", c.WebSocket.HandleConnection)
		}

		authenticated.GET("/chatbot", c.Conversation.ChatbotWelcome)
		authenticated.POST("/chatbot", c.Conversation.Chatbot)
	}

	// Mentorship is between students and alumni
	mentorship := authenticated.Group("/mentorship")
	mentorship.Use(authMiddleware.RolesAllowed(models.RoleStudent, models.RoleAlumni))
	{
		mentorship.GET("", c.Mentorship.List)
		mentorship.POST("", c.Mentorship.Create)
		mentorship.PATCH("/:id", c.Mentorship.Update)
	}

	// Donations are made by alumni and overseen by admins
	donations := authenticated.Group("/donations")
	donations.Use(authMiddleware.RolesAllowed(models.RoleAlumni, models.RoleAdmin))
	{
		donations.GET("", c.Donation.List)
		donations.POST("", c.Donation.Create)
		donations.GET("/summary", c.Donation.Summary)
	}
}
