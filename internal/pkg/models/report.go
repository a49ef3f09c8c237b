package models

import (
	"database/sql"
	"time"
)

// TripReport is the lightweight per-trip telemetry row ingested by the
// upstream reporting pipeline. Telemetry columns arrive as free-typed
// strings; the eligibility predicate coerces them defensively.
type TripReport struct {
	ID              int64          `json:"id" db:"id"`
	TripID          string         `json:"tripId" db:"trip_id"`
	DispatcherName  string         `json:"dispatcherName" db:"dispatcher_name"`
	DriverIDPrimary string         `json:"driverIdPrimary" db:"driver_id_primary"`
	SubStatus       string         `json:"subStatus" db:"sub_status"`
	GPSSpeed        string         `json:"gpsSpeed" db:"gps_speed"`
	MilesRemaining  string         `json:"milesRemaining" db:"miles_remaining"`
	CurrentLocation string         `json:"currentLocation" db:"current_location"`
	ETA             string         `json:"eta" db:"eta"`
	PickupTime      string         `json:"pickupTime" db:"pickup_time"`
	DeliveryTime    string         `json:"deliveryTime" db:"delivery_time"`
	DestinationCity string         `json:"destinationCity" db:"destination_city"`
	OnTimeStatus    string         `json:"onTimeStatus" db:"on_time_status"`
	CallStatus      sql.NullString `json:"callStatus" db:"call_status"`
	ReportDate      string         `json:"reportDate" db:"report_date"`
}

// MorningReport is the richer report variant, keyed to the driver
// directory by driver_id_primary and reconciled after each completed
// check-in call. At most one live row exists per trip per reporting cycle.
type MorningReport struct {
	ID                    int64           `json:"id" db:"id"`
	TripID                string          `json:"tripId" db:"trip_id"`
	DispatcherName        string          `json:"dispatcherName" db:"dispatcher_name"`
	DriverIDPrimary       string          `json:"driverIdPrimary" db:"driver_id_primary"`
	DriverName            sql.NullString  `json:"driverName" db:"driver_name"`
	MPH                   sql.NullFloat64 `json:"mph" db:"mph"`
	MilesLeft             sql.NullFloat64 `json:"milesLeft" db:"miles_left"`
	CurrentLocation       sql.NullString  `json:"currentLocation" db:"current_location"`
	AIETA                 sql.NullString  `json:"aiEta" db:"ai_eta"`
	ProviderETA           sql.NullString  `json:"providerEta" db:"provider_eta"`
	PickupTime            sql.NullTime    `json:"pickupTime" db:"pickup_time"`
	DeliveryTime          sql.NullTime    `json:"deliveryTime" db:"delivery_time"`
	TripStatusText        sql.NullString  `json:"tripStatusText" db:"trip_status_text"`
	SubStatus             sql.NullString  `json:"subStatus" db:"sub_status"`
	OnTime                sql.NullString  `json:"onTime" db:"on_time"`
	DelayReason           sql.NullString  `json:"delayReason" db:"delay_reason"`
	DriverFeeling         sql.NullString  `json:"driverFeeling" db:"driver_feeling"`
	Summary               sql.NullString  `json:"summary" db:"summary"`
	PreferredCallbackTime sql.NullString  `json:"preferredCallbackTime" db:"preferred_callback_time"`
	WantsTextInstead      sql.NullBool    `json:"wantsTextInstead" db:"wants_text_instead"`
	RecordingURL          sql.NullString  `json:"recordingUrl" db:"recording_url"`
	CallStatus            sql.NullString  `json:"callStatus" db:"call_status"`
	ReportDate            time.Time       `json:"reportDate" db:"report_date"`
	CreatedAt             time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt             time.Time       `json:"updatedAt" db:"updated_at"`
}

// CheckInUpdate is a partial-field merge against a morning report.
// Only non-nil fields are written; absent fields leave the stored value
// untouched.
type CheckInUpdate struct {
	CurrentLocation       *string `json:"currentLocation,omitempty"`
	MilesRemaining        *string `json:"milesRemaining,omitempty"`
	ETA                   *string `json:"eta,omitempty"`
	CallSummary           *string `json:"callSummary,omitempty"`
	OnTimeStatus          *string `json:"onTimeStatus,omitempty"`
	DelayReason           *string `json:"delayReason,omitempty"`
	DriverMood            *string `json:"driverMood,omitempty"`
	PreferredCallbackTime *string `json:"preferredCallbackTime,omitempty"`
	WantsTextInstead      *bool   `json:"wantsTextInstead,omitempty"`
	RecordingURL          *string `json:"recordingUrl,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all
func (u *CheckInUpdate) IsEmpty() bool {
	return u.CurrentLocation == nil &&
		u.MilesRemaining == nil &&
		u.ETA == nil &&
		u.CallSummary == nil &&
		u.OnTimeStatus == nil &&
		u.DelayReason == nil &&
		u.DriverMood == nil &&
		u.PreferredCallbackTime == nil &&
		u.WantsTextInstead == nil &&
		u.RecordingURL == nil
}

// CheckInRequest is the inbound reconciliation payload from the AI
// provider callback. TripID is preferred for the lookup; DriverID is the
// fallback key for deployments still on the legacy report shape.
type CheckInRequest struct {
	DriverID   string        `json:"driverId"`
	TripID     string        `json:"tripId"`
	Transcript string        `json:"transcript,omitempty"`
	Fields     CheckInUpdate `json:"fields"`
}

// CheckInResult is the confirmation payload returned after a successful
// reconciliation.
type CheckInResult struct {
	DriverID     string        `json:"driverId"`
	TripID       string        `json:"tripId"`
	Fields       CheckInUpdate `json:"fields"`
	RowsAffected int64         `json:"rowsAffected"`
}
