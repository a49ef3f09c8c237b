package dispatch

import (
	"context"

	"github.com/trucklink/fleetcall/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/trucklink/fleetcall/services/dispatch TelephonyGW,VoiceAIGW,EventsGW

// TelephonyGW defines the telephony provider gateway interface
type TelephonyGW interface {
	PlaceCall(ctx context.Context, fromNumber, toNumber string) (string, error)
	GetCallStatus(ctx context.Context, callID string) (*models.RingOutStatus, error)
	ListActiveCalls(ctx context.Context) ([]models.ActiveCall, error)
	ListRecentCalls(ctx context.Context) ([]models.CallLogRecord, error)
	TransferCall(ctx context.Context, sessionID, partyID, toNumber string) error
	GetRecording(ctx context.Context, recordingID string) (*models.RecordingInfo, error)
}

// VoiceAIGW defines the conversational AI provider gateway interface
type VoiceAIGW interface {
	SubmitCampaign(ctx context.Context, name string, customers []models.CampaignCustomer) (*models.Campaign, error)
}

// EventsGW defines the message broker gateway interface
type EventsGW interface {
	PublishCheckInCompleted(ctx context.Context, event *models.CheckInCompletedEvent) error
	PublishCampaignStarted(ctx context.Context, event *models.CampaignStartedEvent) error
}
