package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/trucklink/fleetcall/internal/pkg/logger"
	"github.com/trucklink/fleetcall/internal/pkg/models"
	"github.com/trucklink/fleetcall/internal/utils"
	"github.com/trucklink/fleetcall/services/dispatch"
)

// DispatchHandler handles HTTP requests for call orchestration
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{
		dispatchUC: dispatchUC,
	}
}

type makeCallRequest struct {
	DriverID string `json:"driverId"`
}

// MakeCall places a single human-channel call to a driver and waits for
// its terminal status.
func (h *DispatchHandler) MakeCall(c echo.Context) error {
	var req makeCallRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid request payload for call initiation", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.DriverID == "" {
		return utils.BadRequestResponse(c, "driverId is required")
	}

	result, err := h.dispatchUC.InitiateCall(c.Request().Context(), req.DriverID)
	if err != nil {
		logger.Error("Failed to initiate call",
			logger.String("driver_id", req.DriverID),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Call completed", result)
}

// CheckInAllDrivers sweeps the day's trip reports and calls every
// eligible driver.
func (h *DispatchHandler) CheckInAllDrivers(c echo.Context) error {
	reportDate := c.QueryParam("date")
	if reportDate == "" {
		reportDate = models.TodayReportDate()
	}

	result, err := h.dispatchUC.CheckInAllDrivers(c.Request().Context(), reportDate)
	if err != nil {
		logger.Error("Batch check-in sweep failed",
			logger.String("report_date", reportDate),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Batch check-in finished", result)
}

// ActiveCalls lists the in-flight calls on the telephony account
func (h *DispatchHandler) ActiveCalls(c echo.Context) error {
	calls, err := h.dispatchUC.ListActiveCalls(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list active calls", logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Active calls retrieved", calls)
}

// RecentCalls lists the most recent provider call log entries
func (h *DispatchHandler) RecentCalls(c echo.Context) error {
	records, err := h.dispatchUC.ListRecentCalls(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list recent calls", logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Recent calls retrieved", records)
}

// TransferCall moves an answered call leg to another number
func (h *DispatchHandler) TransferCall(c echo.Context) error {
	var req models.TransferRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.dispatchUC.TransferCall(c.Request().Context(), &req); err != nil {
		logger.Error("Failed to transfer call",
			logger.String("session_id", req.SessionID),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Call transferred", nil)
}

// GetRecording fetches call recording metadata
func (h *DispatchHandler) GetRecording(c echo.Context) error {
	recording, err := h.dispatchUC.GetRecording(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Recording retrieved", recording)
}

// VapiCall submits a single-driver AI check-in call
func (h *DispatchHandler) VapiCall(c echo.Context) error {
	driverID := c.Param("driverId")
	if driverID == "" {
		return utils.BadRequestResponse(c, "driverId is required")
	}

	result, err := h.dispatchUC.InitiateAICall(c.Request().Context(), driverID)
	if err != nil {
		logger.Error("Failed to initiate AI call",
			logger.String("driver_id", driverID),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "AI call initiated", result)
}

type vapiBatchRequest struct {
	DriverIDs []string `json:"driverIds"`
}

// VapiBatch submits one AI campaign covering a list of drivers
func (h *DispatchHandler) VapiBatch(c echo.Context) error {
	var req vapiBatchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.dispatchUC.InitiateAICampaign(c.Request().Context(), req.DriverIDs)
	if err != nil {
		logger.Error("Failed to initiate AI campaign",
			logger.Int("drivers", len(req.DriverIDs)),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "AI campaign initiated", result)
}
