package models

// CallStatus is a telephony provider call outcome
type CallStatus string

const (
	CallStatusSuccess    CallStatus = "Success"
	CallStatusNoAnswer   CallStatus = "NoAnswer"
	CallStatusRejected   CallStatus = "Rejected"
	CallStatusBusy       CallStatus = "Busy"
	CallStatusFailed     CallStatus = "Failed"
	CallStatusTimeout    CallStatus = "Timeout"
	CallStatusInProgress CallStatus = "InProgress"
)

// IsTerminal reports whether the status ends polling. Timeout is
// synthesized locally and never returned by the provider.
func (s CallStatus) IsTerminal() bool {
	switch s {
	case CallStatusSuccess, CallStatusNoAnswer, CallStatusRejected, CallStatusBusy, CallStatusFailed:
		return true
	}
	return false
}

// RingOutStatus is the provider's view of an in-flight RingOut call
type RingOutStatus struct {
	CallStatus   CallStatus `json:"callStatus"`
	CallerStatus string     `json:"callerStatus"`
	CalleeStatus string     `json:"calleeStatus"`
}

// CallResult is the terminal outcome of a single polled human-channel call
type CallResult struct {
	CallID       string     `json:"callId"`
	CallStatus   CallStatus `json:"callStatus"`
	CallerStatus string     `json:"callerStatus,omitempty"`
	CalleeStatus string     `json:"calleeStatus,omitempty"`
	Attempts     int        `json:"attempts"`
}

// DriverCallResult is one driver's outcome inside a batch sweep
type DriverCallResult struct {
	DriverID    string `json:"driverId"`
	PhoneNumber string `json:"phoneNumber"`
	CallID      string `json:"callId,omitempty"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
}

// BatchCallResult aggregates a human-channel batch sweep. Result order
// matches the order drivers were attempted in.
type BatchCallResult struct {
	TotalCallsAttempted int                `json:"totalCallsAttempted"`
	CallResults         []DriverCallResult `json:"callResults"`
}

// CampaignCustomer is one call destination inside an AI campaign.
// Variables are hydrated from the driver record and handed to the
// conversation assistant.
type CampaignCustomer struct {
	Number    string            `json:"number"`
	Name      string            `json:"name"`
	Variables map[string]string `json:"variables"`
}

// Campaign is the provider-side response to a submitted campaign
type Campaign struct {
	CampaignID string `json:"campaignId"`
	Status     string `json:"status"`
}

// AICallResult is the outcome of a single-driver AI call
type AICallResult struct {
	CampaignID  string `json:"campaignId"`
	DriverID    string `json:"driverId"`
	PhoneNumber string `json:"phoneNumber"`
	DriverName  string `json:"driverName"`
	Status      string `json:"status"`
}

// AICampaignResult aggregates a batch AI campaign submission
type AICampaignResult struct {
	CampaignID       string             `json:"campaignId"`
	TotalDrivers     int                `json:"totalDrivers"`
	ValidDrivers     int                `json:"validDrivers"`
	InvalidDrivers   int                `json:"invalidDrivers"`
	InvalidDriverIDs []string           `json:"invalidDriverIds"`
	Status           string             `json:"status"`
	Customers        []CampaignCustomer `json:"customers"`
}

// CallInsights is the structured output of the transcript extractor.
// Every field is independently optional: an unmatched rule yields nil
// (or false), never an error.
type CallInsights struct {
	CurrentLocation       *string `json:"currentLocation"`
	MilesRemaining        *string `json:"milesRemaining"`
	ETA                   *string `json:"eta"`
	OnTimeStatus          string  `json:"onTimeStatus"`
	DelayReason           *string `json:"delayReason"`
	DriverMood            *string `json:"driverMood"`
	PreferredCallbackTime *string `json:"preferredCallbackTime"`
	WantsTextInstead      bool    `json:"wantsTextInstead"`
	IssueReported         *string `json:"issueReported"`
	WeatherCondition      *string `json:"weatherCondition"`
	RoadCondition         *string `json:"roadCondition"`
}

// CheckInCompletedEvent is published after a check-in outcome has been
// reconciled into the trip report
type CheckInCompletedEvent struct {
	DriverID     string        `json:"driver_id"`
	TripID       string        `json:"trip_id"`
	Fields       CheckInUpdate `json:"fields"`
	ReconciledAt string        `json:"reconciled_at"`
}

// CampaignStartedEvent is published when an AI campaign has been accepted
// by the provider
type CampaignStartedEvent struct {
	CampaignID string   `json:"campaign_id"`
	DriverIDs  []string `json:"driver_ids"`
	StartedAt  string   `json:"started_at"`
}
