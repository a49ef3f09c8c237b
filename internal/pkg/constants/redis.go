package constants

// Redis keys
const (
	// KeyTelephonyToken stores the telephony provider OAuth token payload
	KeyTelephonyToken = "fleetcall:telephony:token"
)
