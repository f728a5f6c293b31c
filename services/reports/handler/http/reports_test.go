package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/mkale/transitmate/internal/pkg/apperrors"
	"github.com/mkale/transitmate/internal/pkg/models"
	"github.com/mkale/transitmate/services/reports/mocks"
	"github.com/stretchr/testify/assert"
)

func newReportContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSubmit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportsUC := mocks.NewMockReportsUC(ctrl)
	reportsHandler := NewReportsHandler(mockReportsUC)

	c, rec := newReportContext(http.MethodPost, "/reports",
		`{"routeId": "42B", "routeName": "Airport Express", "delayStatus": "delayed", "crowdLevel": "high"}`)

	mockReportsUC.EXPECT().
		SubmitLegacyReport(gomock.Any(), gomock.Any()).
		Return(&models.FieldReport{
			ID:          "report_1_abcdefghi",
			RouteID:     "42B",
			DelayStatus: models.DelayDelayed,
			CrowdLevel:  models.CrowdHigh,
		}, nil)

	err := reportsHandler.Submit(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Report submitted", response["message"])
}

func TestSubmit_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportsUC := mocks.NewMockReportsUC(ctrl)
	reportsHandler := NewReportsHandler(mockReportsUC)

	c, rec := newReportContext(http.MethodPost, "/reports",
		`{"routeId": "42B", "delayStatus": "sideways", "crowdLevel": "high"}`)

	mockReportsUC.EXPECT().
		SubmitLegacyReport(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("unknown delay status: %w", apperrors.ErrValidation))

	err := reportsHandler.Submit(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitStatusUpdate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportsUC := mocks.NewMockReportsUC(ctrl)
	reportsHandler := NewReportsHandler(mockReportsUC)

	c, rec := newReportContext(http.MethodPost, "/reports/status",
		`{"routeId": "42B", "vehicleStatus": "breakdown", "crowdLevel": "medium", "driverId": "DRV001"}`)

	mockReportsUC.EXPECT().
		SubmitStatusUpdate(gomock.Any(), gomock.Any()).
		Return(&models.FieldReport{
			ID:            "report_1_abcdefghi",
			RouteID:       "42B",
			DelayStatus:   models.DelayHeavilyDelayed,
			VehicleStatus: models.VehicleBreakdown,
		}, nil)

	err := reportsHandler.SubmitStatusUpdate(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "heavily-delayed", data["delayStatus"])
}

func TestList_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportsUC := mocks.NewMockReportsUC(ctrl)
	reportsHandler := NewReportsHandler(mockReportsUC)

	c, rec := newReportContext(http.MethodGet, "/reports", ``)

	mockReportsUC.EXPECT().
		ListAll(gomock.Any()).
		Return([]models.FieldReport{{ID: "a"}, {ID: "b"}}, nil)

	err := reportsHandler.List(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	data, ok := response["data"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, data, 2)
}

func TestByRoute_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportsUC := mocks.NewMockReportsUC(ctrl)
	reportsHandler := NewReportsHandler(mockReportsUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/reports/route/42B", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/reports/route/:routeId")
	c.SetParamNames("routeId")
	c.SetParamValues("42B")

	mockReportsUC.EXPECT().
		ByRoute(gomock.Any(), "42B").
		Return([]models.FieldReport{{ID: "a", RouteID: "42B"}}, nil)

	err := reportsHandler.ByRoute(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLatestByRoute_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportsUC := mocks.NewMockReportsUC(ctrl)
	reportsHandler := NewReportsHandler(mockReportsUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/reports/route/999/latest", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/reports/route/:routeId/latest")
	c.SetParamNames("routeId")
	c.SetParamValues("999")

	mockReportsUC.EXPECT().
		LatestForRoute(gomock.Any(), "999").
		Return(nil, nil)

	err := reportsHandler.LatestByRoute(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClear_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReportsUC := mocks.NewMockReportsUC(ctrl)
	reportsHandler := NewReportsHandler(mockReportsUC)

	c, rec := newReportContext(http.MethodDelete, "/admin/reports", ``)

	mockReportsUC.EXPECT().ClearAll(gomock.Any()).Return(nil)

	err := reportsHandler.Clear(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
