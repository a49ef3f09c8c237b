package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/trucklink/fleetcall/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8000)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 0)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 0)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	// Telephony provider config
	configs.Telephony.ServerURL = GetEnv("RC_SERVER", "https://platform.ringcentral.com")
	configs.Telephony.ClientID = GetEnv("RC_CLIENT_ID", "")
	configs.Telephony.ClientSecret = GetEnv("RC_CLIENT_SECRET", "")
	configs.Telephony.RefreshToken = GetEnv("RC_REFRESH_TOKEN", "")
	configs.Telephony.FromNumber = GetEnv("RC_FROM_NUMBER", "")

	// Voice AI provider config
	configs.VoiceAI.BaseURL = GetEnv("VAPI_BASE_URL", "https://api.vapi.ai")
	configs.VoiceAI.APIKey = GetEnv("VAPI_API_KEY", "")
	configs.VoiceAI.AssistantID = GetEnv("VAPI_ASSISTANT_ID", "")
	configs.VoiceAI.PhoneNumberID = GetEnv("VAPI_PHONENUMBER_ID", "")
	configs.VoiceAI.CampaignName = GetEnv("VAPI_CAMPAIGN_NAME", "Daily Driver Check-in")

	// Call policy config
	configs.CallPolicy.PollMaxAttempts = GetEnvAsInt("CALL_POLL_MAX_ATTEMPTS", 10)
	configs.CallPolicy.PollDelayMs = GetEnvAsInt("CALL_POLL_DELAY_MS", 2000)
	configs.CallPolicy.GPSSpeedMin = GetEnvAsFloat("CALL_GPS_SPEED_MIN", 5.0)
	configs.CallPolicy.CampaignLocation = GetEnv("CALL_DEFAULT_LOCATION", "Los Angeles, CA")
	configs.CallPolicy.CampaignMiles = GetEnv("CALL_DEFAULT_MILES", "100")
	configs.CallPolicy.CampaignDelivery = GetEnv("CALL_DEFAULT_DELIVERY", "pickup")

	// Scheduler config
	configs.Scheduler.Enabled = GetEnvAsBool("SCHEDULER_ENABLED", true)
	configs.Scheduler.Hour = GetEnvAsInt("SCHEDULER_HOUR", 7)
	configs.Scheduler.Minute = GetEnvAsInt("SCHEDULER_MINUTE", 0)

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %f", key, defaultValue)
		return defaultValue
	}

	return value
}
