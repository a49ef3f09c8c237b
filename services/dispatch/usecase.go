package dispatch

import (
	"context"

	"github.com/trucklink/fleetcall/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/trucklink/fleetcall/services/dispatch DispatchUC

// DispatchUC represents the dispatch usecase interface
type DispatchUC interface {
	// human-channel calls
	InitiateCall(ctx context.Context, driverID string) (*models.CallResult, error)
	CheckInAllDrivers(ctx context.Context, reportDate string) (*models.BatchCallResult, error)

	// AI voice calls
	InitiateAICall(ctx context.Context, driverID string) (*models.AICallResult, error)
	InitiateAICampaign(ctx context.Context, driverIDs []string) (*models.AICampaignResult, error)

	// transcript insights and report reconciliation
	ExtractInsights(transcript string) *models.CallInsights
	ReconcileCheckIn(ctx context.Context, req *models.CheckInRequest) (*models.CheckInResult, error)

	// telephony account views
	ListActiveCalls(ctx context.Context) ([]models.ActiveCall, error)
	ListRecentCalls(ctx context.Context) ([]models.CallLogRecord, error)
	TransferCall(ctx context.Context, req *models.TransferRequest) error
	GetRecording(ctx context.Context, recordingID string) (*models.RecordingInfo, error)

	// driver directory and reports
	ListDrivers(ctx context.Context) ([]*models.Driver, error)
	CreateDriver(ctx context.Context, driver *models.Driver) error
	ListReports(ctx context.Context, reportDate string) ([]*models.MorningReport, error)
}
