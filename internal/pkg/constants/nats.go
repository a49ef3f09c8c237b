package constants

// NATS subjects for dispatch events
const (
	SubjectCheckInCompleted = "dispatch.checkin.completed"
	SubjectCampaignStarted  = "dispatch.campaign.started"
)
