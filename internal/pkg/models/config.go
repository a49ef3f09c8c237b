package models

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	NATS       NATSConfig
	Logger     LoggerConfig
	Telephony  TelephonyConfig
	VoiceAI    VoiceAIConfig
	CallPolicy CallPolicyConfig
	Scheduler  SchedulerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}

// TelephonyConfig contains the telephony provider (RingCentral) configuration.
// RefreshToken seeds the token store on first use; rotated tokens live in Redis.
type TelephonyConfig struct {
	ServerURL    string
	ClientID     string
	ClientSecret string
	RefreshToken string
	FromNumber   string
}

// VoiceAIConfig contains the conversational AI provider (Vapi) configuration
type VoiceAIConfig struct {
	BaseURL       string
	APIKey        string
	AssistantID   string
	PhoneNumberID string
	CampaignName  string
}

// CallPolicyConfig contains outbound call orchestration tuning
type CallPolicyConfig struct {
	PollMaxAttempts  int
	PollDelayMs      int
	GPSSpeedMin      float64
	CampaignLocation string // default currentLocation variable for AI calls
	CampaignMiles    string // default milesRemaining variable for AI calls
	CampaignDelivery string // default deliveryType variable for AI calls
}

// SchedulerConfig contains the daily check-in sweep configuration
type SchedulerConfig struct {
	Enabled bool
	Hour    int
	Minute  int
}
