package usecase

import (
	"context"
	"time"

	"github.com/trucklink/fleetcall/internal/pkg/apperrors"
	"github.com/trucklink/fleetcall/internal/pkg/logger"
	"github.com/trucklink/fleetcall/internal/pkg/models"
	"github.com/trucklink/fleetcall/internal/utils"
)

// InitiateCall places a single human-channel call to a driver and polls
// it to a terminal status.
func (uc *DispatchUC) InitiateCall(ctx context.Context, driverID string) (*models.CallResult, error) {
	driver, err := uc.driverRepo.GetDriverByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver.PhoneNumber == "" {
		return nil, apperrors.MissingPhoneNumber(driverID)
	}

	logger.Info("Initiating driver call",
		logger.String("driver_id", driverID),
		logger.String("phone_number", utils.MaskPhoneNumber(driver.PhoneNumber)))

	callID, err := uc.telephony.PlaceCall(ctx, uc.cfg.Telephony.FromNumber, driver.PhoneNumber)
	if err != nil {
		return nil, err
	}

	return uc.pollCallStatus(ctx, callID), nil
}

// pollCallStatus polls an in-flight call until the provider reports a
// terminal status or the attempt budget runs out. Transient poll errors
// consume an attempt and are otherwise ignored; exhausting the budget
// yields a locally synthesized Timeout.
func (uc *DispatchUC) pollCallStatus(ctx context.Context, callID string) *models.CallResult {
	maxAttempts := uc.cfg.CallPolicy.PollMaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	delay := time.Duration(uc.cfg.CallPolicy.PollDelayMs) * time.Millisecond
	if delay <= 0 {
		delay = 2 * time.Second
	}

	result := &models.CallResult{
		CallID:     callID,
		CallStatus: models.CallStatusTimeout,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result.Attempts = attempt

		status, err := uc.telephony.GetCallStatus(ctx, callID)
		if err != nil {
			logger.Warn("Call status poll failed",
				logger.String("call_id", callID),
				logger.Int("attempt", attempt),
				logger.Err(err))
		} else if status.CallStatus.IsTerminal() {
			result.CallStatus = status.CallStatus
			result.CallerStatus = status.CallerStatus
			result.CalleeStatus = status.CalleeStatus
			return result
		}

		if attempt == maxAttempts {
			break
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Warn("Call status polling cancelled",
				logger.String("call_id", callID),
				logger.Int("attempt", attempt))
			return result
		case <-timer.C:
		}
	}

	logger.Warn("Call did not reach a terminal status",
		logger.String("call_id", callID),
		logger.Int("attempts", result.Attempts))

	return result
}

// ListActiveCalls returns the in-flight calls on the telephony account
func (uc *DispatchUC) ListActiveCalls(ctx context.Context) ([]models.ActiveCall, error) {
	return uc.telephony.ListActiveCalls(ctx)
}

// ListRecentCalls returns the most recent provider call log entries
func (uc *DispatchUC) ListRecentCalls(ctx context.Context) ([]models.CallLogRecord, error) {
	return uc.telephony.ListRecentCalls(ctx)
}

// TransferCall moves an answered call leg to another number
func (uc *DispatchUC) TransferCall(ctx context.Context, req *models.TransferRequest) error {
	if req.SessionID == "" || req.PartyID == "" {
		return apperrors.ValidationError("sessionId and partyId are required")
	}
	if !utils.IsValidPhoneNumber(req.PhoneNumber) {
		return apperrors.ValidationError("phoneNumber is not a dialable number")
	}

	return uc.telephony.TransferCall(ctx, req.SessionID, req.PartyID, req.PhoneNumber)
}

// GetRecording fetches call recording metadata
func (uc *DispatchUC) GetRecording(ctx context.Context, recordingID string) (*models.RecordingInfo, error) {
	if recordingID == "" {
		return nil, apperrors.ValidationError("recordingId is required")
	}

	return uc.telephony.GetRecording(ctx, recordingID)
}
