package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/trucklink/fleetcall/internal/pkg/apperrors"
	"github.com/trucklink/fleetcall/internal/pkg/logger"
	"github.com/trucklink/fleetcall/internal/pkg/models"
	"github.com/trucklink/fleetcall/internal/utils"
)

// Trip sub-statuses eligible for a morning check-in call: en route to
// pickup, loaded and rolling, en route to delivery.
const (
	subStatusToPickup   = 1
	subStatusRolling    = 3
	subStatusToDelivery = 5
)

// CheckInAllDrivers sweeps the trip reports for a date and places a
// human-channel call to every eligible driver. Calls are fire-and-forget:
// the batch records initiation outcomes and never polls. One driver's
// failure does not stop the sweep.
func (uc *DispatchUC) CheckInAllDrivers(ctx context.Context, reportDate string) (*models.BatchCallResult, error) {
	reports, err := uc.reportRepo.GetTripReportsForDate(ctx, reportDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load trip reports: %w", err)
	}

	minSpeed := uc.cfg.CallPolicy.GPSSpeedMin
	result := &models.BatchCallResult{CallResults: []models.DriverCallResult{}}

	for _, report := range reports {
		if !eligibleForCheckIn(report, minSpeed) {
			continue
		}

		result.TotalCallsAttempted++
		result.CallResults = append(result.CallResults, uc.callDriverForReport(ctx, report))
	}

	logger.Info("Batch check-in sweep finished",
		logger.String("report_date", reportDate),
		logger.Int("reports", len(reports)),
		logger.Int("calls_attempted", result.TotalCallsAttempted))

	return result, nil
}

func (uc *DispatchUC) callDriverForReport(ctx context.Context, report *models.TripReport) models.DriverCallResult {
	callResult := models.DriverCallResult{DriverID: report.DriverIDPrimary}

	driver, err := uc.driverRepo.GetDriverByID(ctx, report.DriverIDPrimary)
	if err != nil {
		callResult.Status = "Call failed"
		callResult.Error = err.Error()
		return callResult
	}
	if driver.PhoneNumber == "" {
		callResult.Status = "Call failed"
		callResult.Error = "driver has no phone number"
		return callResult
	}

	callResult.PhoneNumber = driver.PhoneNumber
	callID, err := uc.telephony.PlaceCall(ctx, uc.cfg.Telephony.FromNumber, driver.PhoneNumber)
	if err != nil {
		logger.Warn("Batch check-in call failed",
			logger.String("driver_id", report.DriverIDPrimary),
			logger.Err(err))
		callResult.Status = "Call failed"
		callResult.Error = err.Error()
		return callResult
	}

	callResult.CallID = callID
	callResult.Status = "Call initiated"
	return callResult
}

// eligibleForCheckIn decides whether a trip report warrants a check-in
// call: the trip must be in an active sub-status and the truck moving
// strictly faster than the configured floor. Telemetry columns are
// free-typed strings; anything unparseable disqualifies the row.
func eligibleForCheckIn(report *models.TripReport, minSpeed float64) bool {
	subStatus, err := strconv.ParseFloat(report.SubStatus, 64)
	if err != nil {
		return false
	}

	switch subStatus {
	case subStatusToPickup, subStatusRolling, subStatusToDelivery:
	default:
		return false
	}

	speed, err := strconv.ParseFloat(report.GPSSpeed, 64)
	if err != nil {
		return false
	}

	return speed > minSpeed
}

// ListDrivers returns the driver directory
func (uc *DispatchUC) ListDrivers(ctx context.Context) ([]*models.Driver, error) {
	return uc.driverRepo.ListDrivers(ctx)
}

// CreateDriver adds a driver to the directory. A missing driverId gets
// a generated DRV_-prefixed one.
func (uc *DispatchUC) CreateDriver(ctx context.Context, driver *models.Driver) error {
	if driver.DriverID == "" {
		driver.DriverID = "DRV_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	}
	if driver.FirstName == "" {
		return apperrors.ValidationError("firstName is required")
	}
	if driver.PhoneNumber != "" && !utils.IsValidPhoneNumber(driver.PhoneNumber) {
		return apperrors.ValidationError("phoneNumber is not a dialable number")
	}
	driver.PhoneNumber = utils.NormalizePhoneNumber(driver.PhoneNumber)
	if driver.Status == "" {
		driver.Status = "active"
	}

	return uc.driverRepo.CreateDriver(ctx, driver)
}

// ListReports returns the morning reports for a date, defaulting to today
func (uc *DispatchUC) ListReports(ctx context.Context, reportDate string) ([]*models.MorningReport, error) {
	if reportDate == "" {
		reportDate = models.TodayReportDate()
	}

	return uc.reportRepo.GetReportsForDate(ctx, reportDate)
}
