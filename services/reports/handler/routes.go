package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/services/reports"
	httphandler "github.com/mkale/transitmate/services/reports/handler/http"
)

// Handler wires the reports HTTP handlers to routes
type Handler struct {
	reportsHandler *httphandler.ReportsHandler
	cfg            *models.Config
}

// NewHandler creates a new reports handler
func NewHandler(reportsUC reports.ReportsUC, cfg *models.Config) *Handler {
	return &Handler{
		reportsHandler: httphandler.NewReportsHandler(reportsUC),
		cfg:            cfg,
	}
}

// RegisterRoutes registers the public report routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/reports", h.reportsHandler.Submit)
	e.GET("/reports", h.reportsHandler.List)
	e.GET("/reports/route/:routeId", h.reportsHandler.ByRoute)
	e.GET("/reports/route/:routeId/latest", h.reportsHandler.LatestByRoute)
}

// RegisterDriverRoutes registers the status update route on a JWT guarded
// group
func (h *Handler) RegisterDriverRoutes(g *echo.Group) {
	g.POST("/status", h.reportsHandler.SubmitStatusUpdate)
}

// RegisterAdminRoutes registers report maintenance under an API-key guarded
// group
func (h *Handler) RegisterAdminRoutes(admin *echo.Group) {
	admin.GET("/reports", h.reportsHandler.List)
	admin.DELETE("/reports", h.reportsHandler.Clear)
}
