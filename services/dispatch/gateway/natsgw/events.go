package natsgw

import (
	"context"
	"fmt"

	"github.com/trucklink/fleetcall/internal/pkg/constants"
	"github.com/trucklink/fleetcall/internal/pkg/logger"
	"github.com/trucklink/fleetcall/internal/pkg/models"
	natspkg "github.com/trucklink/fleetcall/internal/pkg/nats"
)

// EventsGateway publishes dispatch lifecycle events to the message broker
type EventsGateway struct {
	client *natspkg.Client
}

// NewEventsGateway creates a new events gateway
func NewEventsGateway(client *natspkg.Client) *EventsGateway {
	return &EventsGateway{
		client: client,
	}
}

// PublishCheckInCompleted publishes a reconciled check-in event
func (g *EventsGateway) PublishCheckInCompleted(ctx context.Context, event *models.CheckInCompletedEvent) error {
	if err := g.client.PublishJSON(constants.SubjectCheckInCompleted, event); err != nil {
		logger.Error("Failed to publish check-in completed event",
			logger.String("driver_id", event.DriverID),
			logger.String("trip_id", event.TripID),
			logger.Err(err))
		return fmt.Errorf("failed to publish check-in completed event: %w", err)
	}

	logger.Info("Published check-in completed event",
		logger.String("driver_id", event.DriverID),
		logger.String("trip_id", event.TripID))

	return nil
}

// PublishCampaignStarted publishes an accepted AI campaign event
func (g *EventsGateway) PublishCampaignStarted(ctx context.Context, event *models.CampaignStartedEvent) error {
	if err := g.client.PublishJSON(constants.SubjectCampaignStarted, event); err != nil {
		logger.Error("Failed to publish campaign started event",
			logger.String("campaign_id", event.CampaignID),
			logger.Err(err))
		return fmt.Errorf("failed to publish campaign started event: %w", err)
	}

	logger.Info("Published campaign started event",
		logger.String("campaign_id", event.CampaignID),
		logger.Int("drivers", len(event.DriverIDs)))

	return nil
}
