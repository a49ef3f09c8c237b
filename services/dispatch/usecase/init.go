package usecase

import (
	"github.com/trucklink/fleetcall/internal/pkg/models"
	"github.com/trucklink/fleetcall/services/dispatch"
)

type DispatchUC struct {
	cfg        *models.Config
	driverRepo dispatch.DriverRepo
	reportRepo dispatch.ReportRepo
	telephony  dispatch.TelephonyGW
	voiceAI    dispatch.VoiceAIGW
	events     dispatch.EventsGW
}

// NewDispatchUC creates a new dispatch usecase instance
func NewDispatchUC(
	cfg *models.Config,
	driverRepo dispatch.DriverRepo,
	reportRepo dispatch.ReportRepo,
	telephony dispatch.TelephonyGW,
	voiceAI dispatch.VoiceAIGW,
	events dispatch.EventsGW,
) *DispatchUC {
	return &DispatchUC{
		cfg:        cfg,
		driverRepo: driverRepo,
		reportRepo: reportRepo,
		telephony:  telephony,
		voiceAI:    voiceAI,
		events:     events,
	}
}
