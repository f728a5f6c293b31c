package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/services/catalog"
	httphandler "github.com/mkale/transitmate/services/catalog/handler/http"
)

// Handler wires the catalog HTTP handlers to routes
type Handler struct {
	catalogHandler *httphandler.CatalogHandler
	cfg            *models.Config
}

// NewHandler creates a new catalog handler
func NewHandler(catalogUC catalog.CatalogUC, cfg *models.Config) *Handler {
	return &Handler{
		catalogHandler: httphandler.NewCatalogHandler(catalogUC),
		cfg:            cfg,
	}
}

// RegisterRoutes registers the public catalog routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/catalog/modes", h.catalogHandler.Modes)
	e.GET("/catalog/options", h.catalogHandler.Options)
	e.GET("/routes/:routeId/status", h.catalogHandler.RouteStatus)
}

// RegisterRiderRoutes registers ticketing on a JWT guarded group
func (h *Handler) RegisterRiderRoutes(g *echo.Group) {
	g.POST("", h.catalogHandler.Checkout)
	g.GET("", h.catalogHandler.Tickets)
}
