package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/app/services"
	"github.com/yigit/alumniconnect/internal/middleware"
	"github.com/yigit/alumniconnect/internal/pkg/activity"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService *services.AuthService
	notifier
	logger zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, events activity.Publisher, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		notifier:    newNotifier(events, logger),
		logger:      logger,
	}
}

// Register handles POST /auth/register
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if !middleware.BindJSON(ctx, &req) {
		c.logger.Debug().Msg("Invalid registration request payload")
		return
	}

	payload, err := c.authService.Register(ctx.Request.Context(), req.Draft(), req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.publish(ctx.Request.Context(), activity.UserRegistered, payload.User.ID, payload.User.ID, map[string]string{"role": string(payload.User.Role)})
	respond(ctx, http.StatusCreated, payload, "Registration successful")
}

// Login handles POST /auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	payload, err := c.authService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.logger.Debug().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.publish(ctx.Request.Context(), activity.UserLoggedIn, payload.User.ID, payload.User.ID, nil)
	respond(ctx, http.StatusOK, payload, "Login successful")
}

// Logout handles POST /auth/logout. The presented token is revoked.
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.authService.Logout(ctx.Request.Context(), middleware.CurrentToken(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	userID := middleware.CurrentUserID(ctx)
	c.publish(ctx.Request.Context(), activity.UserLoggedOut, userID, userID, nil)
	respond(ctx, http.StatusOK, struct{}{}, "Logged out")
}
