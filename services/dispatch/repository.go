package dispatch

import (
	"context"

	"github.com/trucklink/fleetcall/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/trucklink/fleetcall/services/dispatch DriverRepo,ReportRepo

// DriverRepo defines the driver directory repository interface
type DriverRepo interface {
	GetDriverByID(ctx context.Context, driverID string) (*models.Driver, error)
	GetDriversByIDs(ctx context.Context, driverIDs []string) ([]*models.Driver, error)
	ListDrivers(ctx context.Context) ([]*models.Driver, error)
	CreateDriver(ctx context.Context, driver *models.Driver) error
}

// ReportRepo defines the trip report repository interface
type ReportRepo interface {
	// lightweight telemetry rows, used by the batch eligibility sweep
	GetTripReportsForDate(ctx context.Context, reportDate string) ([]*models.TripReport, error)

	// morning reports, reconciled after completed check-in calls
	GetReportsForDate(ctx context.Context, reportDate string) ([]*models.MorningReport, error)
	GetReportByTripID(ctx context.Context, tripID string) (*models.MorningReport, error)
	GetReportByDriverID(ctx context.Context, driverID string) (*models.MorningReport, error)
	UpdateCheckInFields(ctx context.Context, reportID int64, fields *models.CheckInUpdate) (int64, error)
}
