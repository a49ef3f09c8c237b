package http

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/trucklink/fleetcall/internal/pkg/logger"
	"github.com/trucklink/fleetcall/internal/pkg/models"
	"github.com/trucklink/fleetcall/internal/utils"
)

// ListDrivers returns the driver directory
func (h *DispatchHandler) ListDrivers(c echo.Context) error {
	drivers, err := h.dispatchUC.ListDrivers(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list drivers", logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Drivers retrieved", drivers)
}

// CreateDriver adds a driver to the directory
func (h *DispatchHandler) CreateDriver(c echo.Context) error {
	var driver models.Driver
	if err := c.Bind(&driver); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.dispatchUC.CreateDriver(c.Request().Context(), &driver); err != nil {
		logger.Error("Failed to create driver",
			logger.String("driver_id", driver.DriverID),
			logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Driver created", driver)
}

// ListReports returns the morning reports for a date (today by default)
func (h *DispatchHandler) ListReports(c echo.Context) error {
	reports, err := h.dispatchUC.ListReports(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		logger.Error("Failed to list reports", logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Reports retrieved", reports)
}
