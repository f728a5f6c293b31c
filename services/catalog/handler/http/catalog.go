package http

import (
	"net/http"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/mkale/transitmate/internal/pkg/apperrors"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/internal/utils"
	"github.com/mkale/transitmate/services/catalog"
)

// CatalogHandler handles route catalog and ticketing endpoints
type CatalogHandler struct {
	catalogUC catalog.CatalogUC
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUC catalog.CatalogUC) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// subjectFromToken extracts the authenticated subject set by the JWT
// middleware
func subjectFromToken(c echo.Context) string {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	subject, _ := claims["sub"].(string)
	return subject
}

// Modes handles GET /catalog/modes
func (h *CatalogHandler) Modes(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Transport modes retrieved",
		h.catalogUC.ListModes(c.Request().Context()))
}

// Options handles GET /catalog/options
func (h *CatalogHandler) Options(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Route options retrieved",
		h.catalogUC.ListRouteOptions(c.Request().Context()))
}

// RouteStatus handles GET /routes/:routeId/status
func (h *CatalogHandler) RouteStatus(c echo.Context) error {
	status, err := h.catalogUC.RouteStatus(c.Request().Context(), c.Param("routeId"))
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), apperrors.Message(err))
	}
	return utils.SuccessResponse(c, http.StatusOK, "Route status retrieved", status)
}

// Checkout handles POST /tickets
func (h *CatalogHandler) Checkout(c echo.Context) error {
	email := subjectFromToken(c)
	if email == "" {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	ticket, err := h.catalogUC.Checkout(c.Request().Context(), email, &req)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), apperrors.Message(err))
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ticket confirmed", ticket)
}

// Tickets handles GET /tickets
func (h *CatalogHandler) Tickets(c echo.Context) error {
	email := subjectFromToken(c)
	if email == "" {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	tickets, err := h.catalogUC.TicketsFor(c.Request().Context(), email)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), apperrors.Message(err))
	}

	return utils.SuccessResponse(c, http.StatusOK, "Tickets retrieved", tickets)
}
