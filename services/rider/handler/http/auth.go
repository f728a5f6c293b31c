package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mkale/transitmate/internal/pkg/apperrors"
	"github.com/mkale/transitmate/internal/pkg/logger"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/internal/utils"
	"github.com/mkale/transitmate/services/rider"
)

// AuthHandler handles HTTP requests for rider authentication
type AuthHandler struct {
	riderUC rider.RiderUC
}

// NewAuthHandler creates a new rider auth handler
func NewAuthHandler(riderUC rider.RiderUC) *AuthHandler {
	return &AuthHandler{riderUC: riderUC}
}

// SignUp handles rider registration requests
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req models.SignUpRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for sign up", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	session, err := h.riderUC.SignUp(c.Request().Context(), req.Username, req.Email, req.Password)
	if err != nil {
		logger.Warn("Sign up failed",
			logger.String("email", req.Email),
			logger.Err(err))
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), apperrors.Message(err))
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created successfully", session)
}

// SignIn handles rider sign-in requests
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SignInRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	session, err := h.riderUC.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), apperrors.Message(err))
	}

	return utils.SuccessResponse(c, http.StatusOK, "Signed in successfully", session)
}

// SignOut handles rider sign-out requests. Always succeeds.
func (h *AuthHandler) SignOut(c echo.Context) error {
	if err := h.riderUC.SignOut(c.Request().Context()); err != nil {
		logger.Warn("Sign out reported an error", logger.Err(err))
	}
	return utils.SuccessResponse(c, http.StatusOK, "Signed out", nil)
}

// Session returns the current rider session, or null data when none exists
func (h *AuthHandler) Session(c echo.Context) error {
	session, err := h.riderUC.CurrentSession(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to read session")
	}
	if session == nil {
		return utils.SuccessResponse(c, http.StatusOK, "No active session", nil)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Session active", session)
}
