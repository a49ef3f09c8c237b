package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trucklink/fleetcall/internal/pkg/apperrors"
	"github.com/trucklink/fleetcall/internal/pkg/models"
	"github.com/trucklink/fleetcall/services/dispatch/mocks"
)

func setupHandlerTest(t *testing.T) (*DispatchHandler, *mocks.MockDispatchUC, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockDispatchUC(ctrl)
	return NewDispatchHandler(mockUC), mockUC, ctrl
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestMakeCall_Success(t *testing.T) {
	handler, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().InitiateCall(gomock.Any(), "driver-001").
		Return(&models.CallResult{
			CallID:     "call-1",
			CallStatus: models.CallStatusSuccess,
			Attempts:   2,
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/make-call", `{"driverId":"driver-001"}`)

	err := handler.MakeCall(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, true, response["success"])

	data, ok := response["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "call-1", data["callId"])
	assert.Equal(t, "Success", data["callStatus"])
}

func TestMakeCall_MissingDriverID(t *testing.T) {
	handler, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	c, rec := newJSONContext(http.MethodPost, "/api/make-call", `{}`)

	err := handler.MakeCall(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMakeCall_DriverNotFound(t *testing.T) {
	handler, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().InitiateCall(gomock.Any(), "driver-404").
		Return(nil, apperrors.DriverNotFound("driver-404"))

	c, rec := newJSONContext(http.MethodPost, "/api/make-call", `{"driverId":"driver-404"}`)

	err := handler.MakeCall(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "driver_not_found", response["status"])
}

func TestCheckInAllDrivers_DefaultsToToday(t *testing.T) {
	handler, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	today := models.TodayReportDate()
	mockUC.EXPECT().CheckInAllDrivers(gomock.Any(), today).
		Return(&models.BatchCallResult{TotalCallsAttempted: 0, CallResults: []models.DriverCallResult{}}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/drivers-call", "")

	err := handler.CheckInAllDrivers(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCheckInAllDrivers_ExplicitDate(t *testing.T) {
	handler, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().CheckInAllDrivers(gomock.Any(), "2025-06-01").
		Return(&models.BatchCallResult{
			TotalCallsAttempted: 1,
			CallResults: []models.DriverCallResult{
				{DriverID: "driver-001", Status: "Call initiated", CallID: "call-1"},
			},
		}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/drivers-call?date=2025-06-01", "")

	err := handler.CheckInAllDrivers(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["totalCallsAttempted"])
}

func TestVapiCall(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUC, ctrl := setupHandlerTest(t)
		defer ctrl.Finish()

		mockUC.EXPECT().InitiateAICall(gomock.Any(), "driver-001").
			Return(&models.AICallResult{CampaignID: "camp-1", DriverID: "driver-001", Status: "scheduled"}, nil)

		c, rec := newJSONContext(http.MethodPost, "/api/vapi-call/driver-001", "")
		c.SetParamNames("driverId")
		c.SetParamValues("driver-001")

		err := handler.VapiCall(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Missing phone yields tagged error", func(t *testing.T) {
		handler, mockUC, ctrl := setupHandlerTest(t)
		defer ctrl.Finish()

		mockUC.EXPECT().InitiateAICall(gomock.Any(), "driver-002").
			Return(nil, apperrors.MissingPhoneNumber("driver-002"))

		c, rec := newJSONContext(http.MethodPost, "/api/vapi-call/driver-002", "")
		c.SetParamNames("driverId")
		c.SetParamValues("driver-002")

		err := handler.VapiCall(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "missing_phone_number", response["status"])
	})
}

func TestVapiBatch(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUC, ctrl := setupHandlerTest(t)
		defer ctrl.Finish()

		mockUC.EXPECT().InitiateAICampaign(gomock.Any(), []string{"driver-001", "driver-404"}).
			Return(&models.AICampaignResult{
				CampaignID:       "camp-2",
				TotalDrivers:     2,
				ValidDrivers:     1,
				InvalidDrivers:   1,
				InvalidDriverIDs: []string{"driver-404"},
				Status:           "scheduled",
			}, nil)

		c, rec := newJSONContext(http.MethodPost, "/api/vapi-calls/batch", `{"driverIds":["driver-001","driver-404"]}`)

		err := handler.VapiBatch(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		data := response["data"].(map[string]interface{})
		assert.Equal(t, "camp-2", data["campaignId"])
	})

	t.Run("No valid drivers", func(t *testing.T) {
		handler, mockUC, ctrl := setupHandlerTest(t)
		defer ctrl.Finish()

		mockUC.EXPECT().InitiateAICampaign(gomock.Any(), []string{"driver-404"}).
			Return(nil, apperrors.NoValidDrivers())

		c, rec := newJSONContext(http.MethodPost, "/api/vapi-calls/batch", `{"driverIds":["driver-404"]}`)

		err := handler.VapiBatch(c)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "no_valid_drivers", response["status"])
	})
}

func TestCallInsights(t *testing.T) {
	handler, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().ReconcileCheckIn(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.CheckInRequest) (*models.CheckInResult, error) {
			assert.Equal(t, "trip-100", req.TripID)
			assert.Contains(t, req.Transcript, "40 miles")
			return &models.CheckInResult{TripID: "trip-100", DriverID: "driver-001", RowsAffected: 1}, nil
		})

	body := `{"tripId":"trip-100","driverId":"driver-001","transcript":"I'm about 40 miles out"}`
	c, rec := newJSONContext(http.MethodPost, "/api/call-insights", body)

	err := handler.CallInsights(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTransferCall_Handler(t *testing.T) {
	handler, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().TransferCall(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.TransferRequest) error {
			assert.Equal(t, "s-1", req.SessionID)
			assert.Equal(t, "p-2", req.PartyID)
			assert.Equal(t, "+14155559999", req.PhoneNumber)
			return nil
		})

	body := `{"sessionId":"s-1","partyId":"p-2","phoneNumber":"+14155559999"}`
	c, rec := newJSONContext(http.MethodPost, "/api/transfer-call", body)

	err := handler.TransferCall(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListDriversAndReports(t *testing.T) {
	t.Run("Drivers", func(t *testing.T) {
		handler, mockUC, ctrl := setupHandlerTest(t)
		defer ctrl.Finish()

		mockUC.EXPECT().ListDrivers(gomock.Any()).
			Return([]*models.Driver{{DriverID: "driver-001", FirstName: "Maria"}}, nil)

		c, rec := newJSONContext(http.MethodGet, "/api/drivers", "")

		assert.NoError(t, handler.ListDrivers(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Reports pass the date through", func(t *testing.T) {
		handler, mockUC, ctrl := setupHandlerTest(t)
		defer ctrl.Finish()

		mockUC.EXPECT().ListReports(gomock.Any(), "2025-06-01").
			Return([]*models.MorningReport{}, nil)

		c, rec := newJSONContext(http.MethodGet, "/api/reports?date=2025-06-01", "")

		assert.NoError(t, handler.ListReports(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCreateDriver_Handler(t *testing.T) {
	handler, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().CreateDriver(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, driver *models.Driver) error {
			assert.Equal(t, "driver-003", driver.DriverID)
			assert.Equal(t, "Ade", driver.FirstName)
			return nil
		})

	body := `{"driverId":"driver-003","firstName":"Ade","phoneNumber":"+14155559012"}`
	c, rec := newJSONContext(http.MethodPost, "/api/drivers", body)

	err := handler.CreateDriver(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
