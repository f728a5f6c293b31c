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
	"github.com/mkale/transitmate/services/driver/mocks"
	"github.com/stretchr/testify/assert"
)

func newAuthContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSignIn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverUC := mocks.NewMockDriverUC(ctrl)
	authHandler := NewAuthHandler(mockDriverUC)

	c, rec := newAuthContext(http.MethodPost, "/driver/auth/signin",
		`{"driverId": "DRV001", "password": "driver123"}`)

	mockDriverUC.EXPECT().
		SignIn(gomock.Any(), "DRV001", "driver123").
		Return(&models.DriverSession{
			SessionID: "s-1",
			DriverID:  "DRV001",
			Name:      "John Driver",
			RouteID:   "42B",
		}, nil)

	err := authHandler.SignIn(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	data, ok := response["data"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "DRV001", data["driverId"])
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverUC := mocks.NewMockDriverUC(ctrl)
	authHandler := NewAuthHandler(mockDriverUC)

	c, rec := newAuthContext(http.MethodPost, "/driver/auth/signin",
		`{"driverId": "DRV001", "password": "wrong"}`)

	mockDriverUC.EXPECT().
		SignIn(gomock.Any(), "DRV001", "wrong").
		Return(nil, fmt.Errorf("sign in: %w", apperrors.ErrInvalidCredentials))

	err := authHandler.SignIn(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignIn_InvalidPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverUC := mocks.NewMockDriverUC(ctrl)
	authHandler := NewAuthHandler(mockDriverUC)

	c, rec := newAuthContext(http.MethodPost, "/driver/auth/signin", `{invalid_json}`)

	err := authHandler.SignIn(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSession_NoActiveSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverUC := mocks.NewMockDriverUC(ctrl)
	authHandler := NewAuthHandler(mockDriverUC)

	c, rec := newAuthContext(http.MethodGet, "/driver/auth/session", ``)

	mockDriverUC.EXPECT().CurrentSession(gomock.Any()).Return(nil, nil)

	err := authHandler.Session(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "No active session", response["message"])
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverUC := mocks.NewMockDriverUC(ctrl)
	authHandler := NewAuthHandler(mockDriverUC)

	c, rec := newAuthContext(http.MethodPost, "/admin/drivers",
		`{"driverId": "drv010", "password": "newpass", "name": "Sam Driver", "routeId": "7A"}`)

	mockDriverUC.EXPECT().
		RegisterDriver(gomock.Any(), gomock.Any()).
		Return(&models.DriverProfile{DriverID: "DRV010", Name: "Sam Driver", RouteID: "7A"}, nil)

	err := authHandler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegister_DuplicateDriverID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDriverUC := mocks.NewMockDriverUC(ctrl)
	authHandler := NewAuthHandler(mockDriverUC)

	c, rec := newAuthContext(http.MethodPost, "/admin/drivers",
		`{"driverId": "DRV001", "password": "whatever"}`)

	mockDriverUC.EXPECT().
		RegisterDriver(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("register: %w", apperrors.ErrDuplicateDriverID))

	err := authHandler.Register(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
