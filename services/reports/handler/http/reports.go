package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mkale/transitmate/internal/pkg/apperrors"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/internal/utils"
	"github.com/mkale/transitmate/services/reports"
)

// ReportsHandler handles field report endpoints
type ReportsHandler struct {
	reportsUC reports.ReportsUC
}

// NewReportsHandler creates a new reports handler
func NewReportsHandler(reportsUC reports.ReportsUC) *ReportsHandler {
	return &ReportsHandler{reportsUC: reportsUC}
}

// Submit handles POST /reports
func (h *ReportsHandler) Submit(c echo.Context) error {
	var req models.LegacyReportRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	report, err := h.reportsUC.SubmitLegacyReport(c.Request().Context(), &req)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), apperrors.Message(err))
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Report submitted", report)
}

// SubmitStatusUpdate handles POST /reports/status
func (h *ReportsHandler) SubmitStatusUpdate(c echo.Context) error {
	var req models.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}

	report, err := h.reportsUC.SubmitStatusUpdate(c.Request().Context(), &req)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), apperrors.Message(err))
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Status update submitted", report)
}

// List handles GET /reports
func (h *ReportsHandler) List(c echo.Context) error {
	log, err := h.reportsUC.ListAll(c.Request().Context())
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), apperrors.Message(err))
	}
	return utils.SuccessResponse(c, http.StatusOK, "Reports retrieved", log)
}

// ByRoute handles GET /reports/route/:routeId
func (h *ReportsHandler) ByRoute(c echo.Context) error {
	routeID := c.Param("routeId")
	matched, err := h.reportsUC.ByRoute(c.Request().Context(), routeID)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), apperrors.Message(err))
	}
	return utils.SuccessResponse(c, http.StatusOK, "Reports retrieved", matched)
}

// LatestByRoute handles GET /reports/route/:routeId/latest
func (h *ReportsHandler) LatestByRoute(c echo.Context) error {
	routeID := c.Param("routeId")
	latest, err := h.reportsUC.LatestForRoute(c.Request().Context(), routeID)
	if err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), apperrors.Message(err))
	}
	if latest == nil {
		return utils.NotFoundResponse(c, "No reports for route")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Latest report retrieved", latest)
}

// Clear handles DELETE /admin/reports
func (h *ReportsHandler) Clear(c echo.Context) error {
	if err := h.reportsUC.ClearAll(c.Request().Context()); err != nil {
		return utils.ErrorResponseHandler(c, apperrors.StatusCode(err), apperrors.Message(err))
	}
	return utils.SuccessResponse(c, http.StatusOK, "Report log cleared", nil)
}
