package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/trucklink/fleetcall/internal/pkg/apperrors"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusOK, "Call initiated", map[string]string{"callId": "abc-123"})
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Call initiated", resp.Message)
	assert.NotNil(t, resp.Data)
}

func TestErrorResponseHandler(t *testing.T) {
	c, rec := newTestContext()

	err := ErrorResponseHandler(c, http.StatusBadRequest, "driverId is required")
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "driverId is required", resp.Error)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestAppErrorResponse(t *testing.T) {
	t.Run("Tagged application error", func(t *testing.T) {
		c, rec := newTestContext()

		err := AppErrorResponse(c, apperrors.DriverNotFound("driver-42"))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, apperrors.StatusDriverNotFound, resp.Status)
		assert.Contains(t, resp.Error, "driver-42")
	})

	t.Run("Untagged error falls back to internal_error", func(t *testing.T) {
		c, rec := newTestContext()

		err := AppErrorResponse(c, assert.AnError)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, apperrors.StatusInternalError, resp.Status)
	})
}

func TestConvenienceResponses(t *testing.T) {
	t.Run("Default messages", func(t *testing.T) {
		c, rec := newTestContext()
		assert.NoError(t, NotFoundResponse(c, ""))
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Resource not found", resp.Error)
	})

	t.Run("Explicit message", func(t *testing.T) {
		c, rec := newTestContext()
		assert.NoError(t, InternalServerErrorResponse(c, "database unavailable"))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "database unavailable", resp.Error)
	})
}
