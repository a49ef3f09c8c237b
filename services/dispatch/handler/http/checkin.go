package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/trucklink/fleetcall/internal/pkg/logger"
	"github.com/trucklink/fleetcall/internal/pkg/models"
	"github.com/trucklink/fleetcall/internal/utils"
)

// CallInsights receives the AI provider's end-of-call callback and
// reconciles its findings into the driver's morning report. A transcript
// without explicit fields still works: the extractor mines it.
func (h *DispatchHandler) CallInsights(c echo.Context) error {
	var req models.CheckInRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid check-in callback payload", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.dispatchUC.ReconcileCheckIn(c.Request().Context(), &req)
	if err != nil {
		logger.Error("Failed to reconcile check-in",
			logger.String("trip_id", req.TripID),
			logger.String("driver_id", req.DriverID),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Check-in reconciled", result)
}
