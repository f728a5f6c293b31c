package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/services/driver"
	httphandler "github.com/mkale/transitmate/services/driver/handler/http"
)

// Handler wires the driver HTTP handlers to routes
type Handler struct {
	authHandler *httphandler.AuthHandler
	cfg         *models.Config
}

// NewHandler creates a new driver handler
func NewHandler(driverUC driver.DriverUC, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: httphandler.NewAuthHandler(driverUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers the public driver authentication routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := e.Group("/driver/auth")
	auth.POST("/signin", h.authHandler.SignIn)
	auth.POST("/signout", h.authHandler.SignOut)
	auth.GET("/session", h.authHandler.Session)
}

// RegisterAdminRoutes registers driver provisioning under an API-key guarded
// group
func (h *Handler) RegisterAdminRoutes(admin *echo.Group) {
	admin.POST("/drivers", h.authHandler.Register)
}
