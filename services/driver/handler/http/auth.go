package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mkale/transitmate/internal/pkg/apperrors"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/internal/utils"
	"github.com/mkale/transitmate/services/driver"
)

// AuthHandler handles driver authentication endpoints
type AuthHandler struct {
	driverUC driver.DriverUC
}

// NewAuthHandler creates a new driver auth handler
func NewAuthHandler(driverUC driver.DriverUC) *AuthHandler {
	return &AuthHandler{driverUC: driverUC}
}

// SignIn handles POST /driver/auth/signin
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.DriverSignInRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	session, err := h.driverUC.SignIn(c.Request().Context(), req.DriverID, req.Password)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), apperrors.Message(err))
	}

	return utils.SuccessResponse(c, http.StatusOK, "Signed in successfully", session)
}

// SignOut handles POST /driver/auth/signout
func (h *AuthHandler) SignOut(c echo.Context) error {
	if err := h.driverUC.SignOut(c.Request().Context()); err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), apperrors.Message(err))
	}
	return utils.SuccessResponse(c, http.StatusOK, "Signed out", nil)
}

// Session handles GET /driver/auth/session
func (h *AuthHandler) Session(c echo.Context) error {
	session, err := h.driverUC.CurrentSession(c.Request().Context())
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), apperrors.Message(err))
	}
	if session == nil {
		return utils.SuccessResponse(c, http.StatusOK, "No active session", nil)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Active session", session)
}

// Register handles POST /admin/drivers
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterDriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	profile, err := h.driverUC.RegisterDriver(c.Request().Context(), &req)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), apperrors.Message(err))
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Driver registered successfully", profile)
}
