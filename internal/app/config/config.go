package config

import (
	"carelink-agent/internal/pkg/constvars"
	"carelink-agent/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8090"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
		},
		Platform: Platform{
			BaseUrl:                 utils.GetEnvString("PLATFORM_BASE_URL", "http://localhost:5002/api"),
			RealtimeUrl:             utils.GetEnvString("PLATFORM_REALTIME_URL", "ws://localhost:5002/socket"),
			RequestTimeoutInSeconds: utils.GetEnvInt("PLATFORM_REQUEST_TIMEOUT_IN_SECONDS", 15),
			OutboundRatePerSecond:   utils.GetEnvInt("PLATFORM_OUTBOUND_RATE_PER_SECOND", 20),
			OutboundBurst:           utils.GetEnvInt("PLATFORM_OUTBOUND_BURST", 40),
		},
		Session: Session{
			StoreBackend:          utils.GetEnvString("SESSION_STORE_BACKEND", "file"),
			CredentialFilePath:    utils.GetEnvString("SESSION_CREDENTIAL_FILE_PATH", "carelink_session.json"),
			RedisKey:              utils.GetEnvString("SESSION_REDIS_KEY", "carelink:session"),
			LogoutCooldownSeconds: utils.GetEnvInt("SESSION_LOGOUT_COOLDOWN_IN_SECONDS", constvars.LogoutCooldownInSec),
		},
		Reminder: Reminder{
			PollIntervalInSeconds:  utils.GetEnvInt("REMINDER_POLL_INTERVAL_IN_SECONDS", constvars.ReminderPollInterval),
			DueWindowInMinutes:     utils.GetEnvInt("REMINDER_DUE_WINDOW_IN_MINUTES", constvars.ReminderDueWindowInMin),
			NotificationQueueLimit: utils.GetEnvInt("REMINDER_NOTIFICATION_QUEUE_LIMIT", 128),
		},
	}
}
