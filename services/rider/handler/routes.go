package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/services/rider/handler/http"
)

// Handler coordinates the rider service HTTP handlers
type Handler struct {
	authHandler *http.AuthHandler
	cfg         *models.Config
}

// NewHandler creates and initializes the rider handlers
func NewHandler(authHandler *http.AuthHandler, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the rider authentication routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	authGroup.POST("/signup", h.authHandler.SignUp)
	authGroup.POST("/signin", h.authHandler.SignIn)
	authGroup.POST("/signout", h.authHandler.SignOut)
	authGroup.GET("/session", h.authHandler.Session)
}
