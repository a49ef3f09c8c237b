package models

// ActiveCall is a normalized view of an in-flight call on the telephony
// provider account.
type ActiveCall struct {
	SessionID string `json:"sessionId"`
	Direction string `json:"direction"`
	From      string `json:"from"`
	To        string `json:"to"`
	Status    string `json:"status"`
	StartTime string `json:"startTime"`
}

// CallLogRecord is one entry from the provider call log.
type CallLogRecord struct {
	ID        string `json:"id"`
	SessionID string `json:"sessionId"`
	Direction string `json:"direction"`
	From      string `json:"from"`
	To        string `json:"to"`
	Result    string `json:"result"`
	StartTime string `json:"startTime"`
	Duration  int    `json:"duration"`
}

// RecordingInfo describes a stored call recording.
type RecordingInfo struct {
	ID         string `json:"id"`
	ContentURI string `json:"contentUri"`
	Duration   int    `json:"duration"`
	Type       string `json:"type"`
}

// TransferRequest moves an answered call leg to another number.
type TransferRequest struct {
	SessionID   string `json:"sessionId"`
	PartyID     string `json:"partyId"`
	PhoneNumber string `json:"phoneNumber"`
}
