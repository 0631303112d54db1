package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type (
	InternalConfig struct {
		App      App
		Platform Platform
		Session  Session
		Reminder Reminder
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env                      string
		Port                     string
		Version                  string
		EndpointPrefix           string
		MaxRequests              int
		ShutdownTimeoutInSeconds int
	}

	// Platform holds the upstream API the agent talks to.
	Platform struct {
		BaseUrl                 string
		RealtimeUrl             string
		RequestTimeoutInSeconds int
		OutboundRatePerSecond   int
		OutboundBurst           int
	}

	Session struct {
		StoreBackend          string
		CredentialFilePath    string
		RedisKey              string
		LogoutCooldownSeconds int
	}

	Reminder struct {
		PollIntervalInSeconds  int
		DueWindowInMinutes     int
		NotificationQueueLimit int
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type Bootstrap struct {
	Router         *chi.Mux
	Redis          *redis.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStop if set will be called during Shutdown to gracefully stop background workers
	WorkerStop func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		log.Println("Successfully stopped background workers")
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	return nil
}
