package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trucklink/fleetcall/internal/pkg/apperrors"
	"github.com/trucklink/fleetcall/internal/pkg/models"
)

func strPtr(s string) *string { return &s }

func testReport() *models.MorningReport {
	return &models.MorningReport{
		ID:              7,
		TripID:          "trip-100",
		DriverIDPrimary: "driver-001",
	}
}

func TestReconcileCheckIn_ByTripID(t *testing.T) {
	uc, m, ctrl := setupUsecaseTest(t)
	defer ctrl.Finish()

	m.reportRepo.EXPECT().GetReportByTripID(gomock.Any(), "trip-100").Return(testReport(), nil)
	m.reportRepo.EXPECT().UpdateCheckInFields(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, fields *models.CheckInUpdate) (int64, error) {
			require.NotNil(t, fields.CurrentLocation)
			assert.Equal(t, "Bakersfield, CA", *fields.CurrentLocation)
			assert.Nil(t, fields.DriverMood)
			return 1, nil
		})
	m.events.EXPECT().PublishCheckInCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *models.CheckInCompletedEvent) error {
			assert.Equal(t, "trip-100", event.TripID)
			assert.Equal(t, "driver-001", event.DriverID)
			return nil
		})

	result, err := uc.ReconcileCheckIn(context.Background(), &models.CheckInRequest{
		TripID: "trip-100",
		Fields: models.CheckInUpdate{CurrentLocation: strPtr("Bakersfield, CA")},
	})

	assert.NoError(t, err)
	assert.Equal(t, "trip-100", result.TripID)
	assert.Equal(t, "driver-001", result.DriverID)
	assert.Equal(t, int64(1), result.RowsAffected)
}

func TestReconcileCheckIn_FallsBackToDriverID(t *testing.T) {
	uc, m, ctrl := setupUsecaseTest(t)
	defer ctrl.Finish()

	m.reportRepo.EXPECT().GetReportByTripID(gomock.Any(), "trip-stale").
		Return(nil, apperrors.ReportNotFound("no report for trip"))
	m.reportRepo.EXPECT().GetReportByDriverID(gomock.Any(), "driver-001").Return(testReport(), nil)
	m.reportRepo.EXPECT().UpdateCheckInFields(gomock.Any(), int64(7), gomock.Any()).Return(int64(1), nil)
	m.events.EXPECT().PublishCheckInCompleted(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.ReconcileCheckIn(context.Background(), &models.CheckInRequest{
		TripID:   "trip-stale",
		DriverID: "driver-001",
		Fields:   models.CheckInUpdate{MilesRemaining: strPtr("55")},
	})

	assert.NoError(t, err)
	assert.Equal(t, "trip-100", result.TripID)
}

func TestReconcileCheckIn_TranscriptFillsMissingFields(t *testing.T) {
	uc, m, ctrl := setupUsecaseTest(t)
	defer ctrl.Finish()

	m.reportRepo.EXPECT().GetReportByTripID(gomock.Any(), "trip-100").Return(testReport(), nil)
	m.reportRepo.EXPECT().UpdateCheckInFields(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, fields *models.CheckInUpdate) (int64, error) {
			// The explicit field wins; the rest comes from the transcript.
			require.NotNil(t, fields.MilesRemaining)
			assert.Equal(t, "35", *fields.MilesRemaining)

			require.NotNil(t, fields.DriverMood)
			assert.Equal(t, "tired", *fields.DriverMood)

			require.NotNil(t, fields.DelayReason)
			assert.Equal(t, "heavy traffic", *fields.DelayReason)

			require.NotNil(t, fields.OnTimeStatus)
			assert.Equal(t, "Delayed", *fields.OnTimeStatus)

			require.NotNil(t, fields.WantsTextInstead)
			assert.True(t, *fields.WantsTextInstead)
			return 1, nil
		})
	m.events.EXPECT().PublishCheckInCompleted(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.ReconcileCheckIn(context.Background(), &models.CheckInRequest{
		TripID:     "trip-100",
		Transcript: "I'm about 40 miles out, feeling tired, delayed due to heavy traffic, can you text me instead",
		Fields:     models.CheckInUpdate{MilesRemaining: strPtr("35")},
	})

	assert.NoError(t, err)
}

func TestReconcileCheckIn_Validation(t *testing.T) {
	uc, _, ctrl := setupUsecaseTest(t)
	defer ctrl.Finish()

	t.Run("No lookup key", func(t *testing.T) {
		_, err := uc.ReconcileCheckIn(context.Background(), &models.CheckInRequest{
			Fields: models.CheckInUpdate{CurrentLocation: strPtr("Fresno, CA")},
		})
		assert.Equal(t, apperrors.StatusValidationError, apperrors.StatusOf(err))
	})

	t.Run("Nothing to reconcile", func(t *testing.T) {
		_, err := uc.ReconcileCheckIn(context.Background(), &models.CheckInRequest{
			TripID: "trip-100",
		})
		assert.Equal(t, apperrors.StatusValidationError, apperrors.StatusOf(err))
	})
}

func TestReconcileCheckIn_ReportNotFound(t *testing.T) {
	uc, m, ctrl := setupUsecaseTest(t)
	defer ctrl.Finish()

	m.reportRepo.EXPECT().GetReportByTripID(gomock.Any(), "trip-404").
		Return(nil, apperrors.ReportNotFound("no report for trip"))

	// No driver ID to fall back to.
	result, err := uc.ReconcileCheckIn(context.Background(), &models.CheckInRequest{
		TripID: "trip-404",
		Fields: models.CheckInUpdate{CurrentLocation: strPtr("Fresno, CA")},
	})

	assert.Nil(t, result)
	assert.Equal(t, apperrors.StatusReportNotFound, apperrors.StatusOf(err))
}

func TestReconcileCheckIn_NoRowsWritten(t *testing.T) {
	uc, m, ctrl := setupUsecaseTest(t)
	defer ctrl.Finish()

	m.reportRepo.EXPECT().GetReportByTripID(gomock.Any(), "trip-100").Return(testReport(), nil)
	m.reportRepo.EXPECT().UpdateCheckInFields(gomock.Any(), int64(7), gomock.Any()).Return(int64(0), nil)

	result, err := uc.ReconcileCheckIn(context.Background(), &models.CheckInRequest{
		TripID: "trip-100",
		Fields: models.CheckInUpdate{CurrentLocation: strPtr("Fresno, CA")},
	})

	assert.Nil(t, result)
	assert.Equal(t, apperrors.StatusReportNotFound, apperrors.StatusOf(err))
}

func TestReconcileCheckIn_EventFailureDoesNotFailReconcile(t *testing.T) {
	uc, m, ctrl := setupUsecaseTest(t)
	defer ctrl.Finish()

	m.reportRepo.EXPECT().GetReportByTripID(gomock.Any(), "trip-100").Return(testReport(), nil)
	m.reportRepo.EXPECT().UpdateCheckInFields(gomock.Any(), int64(7), gomock.Any()).Return(int64(1), nil)
	m.events.EXPECT().PublishCheckInCompleted(gomock.Any(), gomock.Any()).Return(assert.AnError)

	result, err := uc.ReconcileCheckIn(context.Background(), &models.CheckInRequest{
		TripID: "trip-100",
		Fields: models.CheckInUpdate{CurrentLocation: strPtr("Fresno, CA")},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), result.RowsAffected)
}
