package usecase

import (
	"context"
	"strconv"

	"github.com/trucklink/fleetcall/internal/pkg/apperrors"
	"github.com/trucklink/fleetcall/internal/pkg/logger"
	"github.com/trucklink/fleetcall/internal/pkg/models"
)

// InitiateAICall submits a single-driver campaign to the voice AI
// provider. The assistant handles the conversation; no polling happens
// on this side.
func (uc *DispatchUC) InitiateAICall(ctx context.Context, driverID string) (*models.AICallResult, error) {
	driver, err := uc.driverRepo.GetDriverByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver.PhoneNumber == "" {
		return nil, apperrors.MissingPhoneNumber(driverID)
	}

	customer := uc.buildCampaignCustomer(ctx, driver)
	campaign, err := uc.voiceAI.SubmitCampaign(ctx, uc.cfg.VoiceAI.CampaignName, []models.CampaignCustomer{customer})
	if err != nil {
		return nil, err
	}

	uc.publishCampaignStarted(ctx, campaign.CampaignID, []string{driverID})

	return &models.AICallResult{
		CampaignID:  campaign.CampaignID,
		DriverID:    driverID,
		PhoneNumber: driver.PhoneNumber,
		DriverName:  driver.FullName(),
		Status:      campaign.Status,
	}, nil
}

// InitiateAICampaign submits one multi-customer campaign covering every
// resolvable driver. Drivers that are unknown or missing a phone number
// are reported back as invalid rather than failing the batch.
func (uc *DispatchUC) InitiateAICampaign(ctx context.Context, driverIDs []string) (*models.AICampaignResult, error) {
	if len(driverIDs) == 0 {
		return nil, apperrors.ValidationError("driverIds is required")
	}

	drivers, err := uc.driverRepo.GetDriversByIDs(ctx, driverIDs)
	if err != nil {
		return nil, err
	}
	if len(drivers) == 0 {
		return nil, apperrors.NoValidDrivers()
	}

	found := make(map[string]bool, len(drivers))
	customers := make([]models.CampaignCustomer, 0, len(drivers))
	validIDs := make([]string, 0, len(drivers))
	invalidIDs := make([]string, 0)

	for _, driver := range drivers {
		found[driver.DriverID] = true
		if driver.PhoneNumber == "" {
			invalidIDs = append(invalidIDs, driver.DriverID)
			continue
		}
		customers = append(customers, uc.buildCampaignCustomer(ctx, driver))
		validIDs = append(validIDs, driver.DriverID)
	}
	for _, id := range driverIDs {
		if !found[id] {
			invalidIDs = append(invalidIDs, id)
		}
	}

	if len(customers) == 0 {
		return nil, apperrors.NoValidPhoneNumbers()
	}

	campaign, err := uc.voiceAI.SubmitCampaign(ctx, uc.cfg.VoiceAI.CampaignName, customers)
	if err != nil {
		return nil, err
	}

	uc.publishCampaignStarted(ctx, campaign.CampaignID, validIDs)

	return &models.AICampaignResult{
		CampaignID:       campaign.CampaignID,
		TotalDrivers:     len(driverIDs),
		ValidDrivers:     len(customers),
		InvalidDrivers:   len(invalidIDs),
		InvalidDriverIDs: invalidIDs,
		Status:           campaign.Status,
		Customers:        customers,
	}, nil
}

// buildCampaignCustomer hydrates assistant variables from the driver
// record and the latest morning report, falling back to configured
// defaults when no report exists yet.
func (uc *DispatchUC) buildCampaignCustomer(ctx context.Context, driver *models.Driver) models.CampaignCustomer {
	location := uc.cfg.CallPolicy.CampaignLocation
	miles := uc.cfg.CallPolicy.CampaignMiles
	delivery := uc.cfg.CallPolicy.CampaignDelivery

	report, err := uc.reportRepo.GetReportByDriverID(ctx, driver.DriverID)
	if err == nil {
		if report.CurrentLocation.Valid && report.CurrentLocation.String != "" {
			location = report.CurrentLocation.String
		}
		if report.MilesLeft.Valid {
			miles = strconv.FormatFloat(report.MilesLeft.Float64, 'f', -1, 64)
		}
	} else if apperrors.StatusOf(err) != apperrors.StatusReportNotFound {
		logger.Warn("Failed to hydrate campaign variables from report",
			logger.String("driver_id", driver.DriverID),
			logger.Err(err))
	}

	return models.CampaignCustomer{
		Number: driver.PhoneNumber,
		Name:   driver.FullName(),
		Variables: map[string]string{
			"driverFirstName": driver.FirstName,
			"driverId":        driver.DriverID,
			"currentLocation": location,
			"milesRemaining":  miles,
			"deliveryType":    delivery,
		},
	}
}

// publishCampaignStarted emits the campaign event; a broker hiccup must
// not fail a call that the provider already accepted.
func (uc *DispatchUC) publishCampaignStarted(ctx context.Context, campaignID string, driverIDs []string) {
	event := &models.CampaignStartedEvent{
		CampaignID: campaignID,
		DriverIDs:  driverIDs,
		StartedAt:  models.FormatTime(models.Now()),
	}
	if err := uc.events.PublishCampaignStarted(ctx, event); err != nil {
		logger.Warn("Campaign started event not published",
			logger.String("campaign_id", campaignID),
			logger.Err(err))
	}
}
