package usecase

import (
	"context"

	"github.com/trucklink/fleetcall/internal/pkg/apperrors"
	"github.com/trucklink/fleetcall/internal/pkg/logger"
	"github.com/trucklink/fleetcall/internal/pkg/models"
)

// ReconcileCheckIn merges a completed check-in call outcome into the
// driver's morning report. The trip ID is the preferred lookup key;
// the driver ID covers callbacks that only know who was called. Fields
// the caller did not send are recovered from the transcript where the
// extractor can find them.
func (uc *DispatchUC) ReconcileCheckIn(ctx context.Context, req *models.CheckInRequest) (*models.CheckInResult, error) {
	if req.TripID == "" && req.DriverID == "" {
		return nil, apperrors.ValidationError("tripId or driverId is required")
	}

	fields := req.Fields
	if req.Transcript != "" {
		mergeInsights(&fields, ExtractInsights(req.Transcript))
	}
	if fields.IsEmpty() {
		return nil, apperrors.ValidationError("no check-in fields to reconcile")
	}

	report, err := uc.lookupReport(ctx, req)
	if err != nil {
		return nil, err
	}

	rows, err := uc.reportRepo.UpdateCheckInFields(ctx, report.ID, &fields)
	if err != nil {
		return nil, err
	}
	if rows < 1 {
		return nil, apperrors.ReportNotFound("report row vanished during reconciliation")
	}

	logger.Info("Check-in reconciled",
		logger.String("trip_id", report.TripID),
		logger.String("driver_id", report.DriverIDPrimary),
		logger.Int64("rows_affected", rows))

	event := &models.CheckInCompletedEvent{
		DriverID:     report.DriverIDPrimary,
		TripID:       report.TripID,
		Fields:       fields,
		ReconciledAt: models.FormatTime(models.Now()),
	}
	if err := uc.events.PublishCheckInCompleted(ctx, event); err != nil {
		logger.Warn("Check-in completed event not published",
			logger.String("trip_id", report.TripID),
			logger.Err(err))
	}

	return &models.CheckInResult{
		DriverID:     report.DriverIDPrimary,
		TripID:       report.TripID,
		Fields:       fields,
		RowsAffected: rows,
	}, nil
}

// lookupReport resolves the morning report for a check-in request,
// falling back from trip ID to driver ID when the trip key misses.
func (uc *DispatchUC) lookupReport(ctx context.Context, req *models.CheckInRequest) (*models.MorningReport, error) {
	if req.TripID != "" {
		report, err := uc.reportRepo.GetReportByTripID(ctx, req.TripID)
		if err == nil {
			return report, nil
		}
		if apperrors.StatusOf(err) != apperrors.StatusReportNotFound || req.DriverID == "" {
			return nil, err
		}
	}

	return uc.reportRepo.GetReportByDriverID(ctx, req.DriverID)
}

// mergeInsights fills the unset update fields from extracted transcript
// insights. Explicit caller-sent fields always win.
func mergeInsights(fields *models.CheckInUpdate, insights *models.CallInsights) {
	if fields.CurrentLocation == nil && insights.CurrentLocation != nil {
		fields.CurrentLocation = insights.CurrentLocation
	}
	if fields.MilesRemaining == nil && insights.MilesRemaining != nil {
		fields.MilesRemaining = insights.MilesRemaining
	}
	if fields.ETA == nil && insights.ETA != nil {
		fields.ETA = insights.ETA
	}
	if fields.OnTimeStatus == nil && insights.OnTimeStatus != "" && insights.OnTimeStatus != "Unknown" {
		status := insights.OnTimeStatus
		fields.OnTimeStatus = &status
	}
	if fields.DelayReason == nil && insights.DelayReason != nil {
		fields.DelayReason = insights.DelayReason
	}
	if fields.DriverMood == nil && insights.DriverMood != nil {
		fields.DriverMood = insights.DriverMood
	}
	if fields.PreferredCallbackTime == nil && insights.PreferredCallbackTime != nil {
		fields.PreferredCallbackTime = insights.PreferredCallbackTime
	}
	if fields.WantsTextInstead == nil && insights.WantsTextInstead {
		wants := true
		fields.WantsTextInstead = &wants
	}
}
