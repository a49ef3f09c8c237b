package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/trucklink/fleetcall/internal/pkg/models"
	"github.com/trucklink/fleetcall/services/dispatch/handler/http"
)

// Handler coordinates the HTTP handlers for the dispatch service
type Handler struct {
	dispatchHandler *http.DispatchHandler
	cfg             *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(dispatchHandler *http.DispatchHandler, cfg *models.Config) *Handler {
	return &Handler{
		dispatchHandler: dispatchHandler,
		cfg:             cfg,
	}
}

// RegisterRoutes sets up all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// human-channel calls
	api.POST("/make-call", h.dispatchHandler.MakeCall)
	api.GET("/drivers-call", h.dispatchHandler.CheckInAllDrivers)
	api.GET("/active-calls", h.dispatchHandler.ActiveCalls)
	api.GET("/recent-calls", h.dispatchHandler.RecentCalls)
	api.POST("/transfer-call", h.dispatchHandler.TransferCall)
	api.GET("/recordings/:id", h.dispatchHandler.GetRecording)

	// AI voice calls
	api.POST("/vapi-call/:driverId", h.dispatchHandler.VapiCall)
	api.POST("/vapi-calls/batch", h.dispatchHandler.VapiBatch)
	api.POST("/call-insights", h.dispatchHandler.CallInsights)

	// directory and reports
	api.GET("/drivers", h.dispatchHandler.ListDrivers)
	api.POST("/drivers", h.dispatchHandler.CreateDriver)
	api.GET("/reports", h.dispatchHandler.ListReports)
}
