package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/trucklink/fleetcall/internal/pkg/apperrors"
	"github.com/trucklink/fleetcall/internal/pkg/models"
)

// GetTripReportsForDate returns the telemetry rows for a reporting date
func (r *DispatchRepo) GetTripReportsForDate(ctx context.Context, reportDate string) ([]*models.TripReport, error) {
	query := `SELECT * FROM trip_reports WHERE report_date = $1`

	var reports []*models.TripReport
	if err := r.db.SelectContext(ctx, &reports, query, reportDate); err != nil {
		return nil, fmt.Errorf("failed to get trip reports: %w", err)
	}

	return reports, nil
}

// GetReportsForDate returns the morning reports for a reporting date
func (r *DispatchRepo) GetReportsForDate(ctx context.Context, reportDate string) ([]*models.MorningReport, error) {
	query := `SELECT * FROM morning_reports WHERE report_date = $1 ORDER BY created_at DESC`

	var reports []*models.MorningReport
	if err := r.db.SelectContext(ctx, &reports, query, reportDate); err != nil {
		return nil, fmt.Errorf("failed to get morning reports: %w", err)
	}

	return reports, nil
}

// GetReportByTripID returns the latest morning report for a trip
func (r *DispatchRepo) GetReportByTripID(ctx context.Context, tripID string) (*models.MorningReport, error) {
	query := `
		SELECT * FROM morning_reports
		WHERE trip_id = $1
		ORDER BY report_date DESC, created_at DESC
		LIMIT 1
	`

	var report models.MorningReport
	err := r.db.GetContext(ctx, &report, query, tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ReportNotFound(fmt.Sprintf("no report found for trip %s", tripID))
		}
		return nil, fmt.Errorf("failed to get report by trip: %w", err)
	}

	return &report, nil
}

// GetReportByDriverID returns the latest morning report keyed to a driver
func (r *DispatchRepo) GetReportByDriverID(ctx context.Context, driverID string) (*models.MorningReport, error) {
	query := `
		SELECT * FROM morning_reports
		WHERE driver_id_primary = $1
		ORDER BY report_date DESC, created_at DESC
		LIMIT 1
	`

	var report models.MorningReport
	err := r.db.GetContext(ctx, &report, query, driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ReportNotFound(fmt.Sprintf("no report found for driver %s", driverID))
		}
		return nil, fmt.Errorf("failed to get report by driver: %w", err)
	}

	return &report, nil
}

// UpdateCheckInFields merges the non-nil check-in fields into a morning
// report row. Columns absent from the update keep their stored values.
// Returns the number of rows written.
func (r *DispatchRepo) UpdateCheckInFields(ctx context.Context, reportID int64, fields *models.CheckInUpdate) (int64, error) {
	set := make([]string, 0, 11)
	args := make([]interface{}, 0, 11)

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if fields.CurrentLocation != nil {
		add("current_location", *fields.CurrentLocation)
	}
	if fields.MilesRemaining != nil {
		add("miles_left", *fields.MilesRemaining)
	}
	if fields.ETA != nil {
		add("ai_eta", *fields.ETA)
	}
	if fields.CallSummary != nil {
		add("summary", *fields.CallSummary)
	}
	if fields.OnTimeStatus != nil {
		add("on_time", *fields.OnTimeStatus)
	}
	if fields.DelayReason != nil {
		add("delay_reason", *fields.DelayReason)
	}
	if fields.DriverMood != nil {
		add("driver_feeling", *fields.DriverMood)
	}
	if fields.PreferredCallbackTime != nil {
		add("preferred_callback_time", *fields.PreferredCallbackTime)
	}
	if fields.WantsTextInstead != nil {
		add("wants_text_instead", *fields.WantsTextInstead)
	}
	if fields.RecordingURL != nil {
		add("recording_url", *fields.RecordingURL)
	}

	if len(set) == 0 {
		return 0, nil
	}

	set = append(set, "updated_at = NOW()")

	args = append(args, reportID)
	query := fmt.Sprintf("UPDATE morning_reports SET %s WHERE id = $%d",
		strings.Join(set, ", "), len(args))

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update morning report: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return rows, nil
}
