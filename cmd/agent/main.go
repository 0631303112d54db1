package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carelink-agent/internal/app/config"
	"carelink-agent/internal/app/delivery/http/middlewares"
	"carelink-agent/internal/app/delivery/http/routers"
	"carelink-agent/internal/app/drivers/database"
	"carelink-agent/internal/app/drivers/logger"
	"carelink-agent/internal/app/models"
	"carelink-agent/internal/app/services/auth"
	"carelink-agent/internal/app/services/healthdata"
	"carelink-agent/internal/app/services/messaging"
	"carelink-agent/internal/app/services/navigation"
	"carelink-agent/internal/app/services/realtime"
	"carelink-agent/internal/app/services/reminders"
	"carelink-agent/internal/app/services/session"
	"carelink-agent/internal/app/services/shared/apiclient"
	"carelink-agent/internal/app/services/shared/credstore"
	"carelink-agent/internal/app/services/shared/notify"

	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogrus(internalConfig)
	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	var redisClient *goredis.Client
	if internalConfig.Session.StoreBackend == "redis" {
		redisClient = database.NewRedisClient(driverConfig)
	}

	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(&bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("control surface listening", zap.String("addr", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown incomplete", zap.Error(err))
	}

	log.Info("agent exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Credential store
	var store credstore.Store
	if internalConfig.Session.StoreBackend == "redis" {
		store = credstore.NewRedisStore(bootstrap.Redis, internalConfig.Session.RedisKey)
	} else {
		fileStore := credstore.NewFileStore(internalConfig.Session.CredentialFilePath)
		log.Info("session record kept on disk", zap.String("path", fileStore.Path()))
		store = fileStore
	}

	// Session
	sessionStore := session.NewSessionStore(store, log)
	coordinator := session.NewLogoutCoordinator(
		sessionStore,
		time.Duration(internalConfig.Session.LogoutCooldownSeconds)*time.Second,
		log,
	)

	// Navigation
	guard := navigation.NewNavigationGuard(sessionStore, log)
	sessionStore.Subscribe(func(models.Session) {
		guard.Reset()
	})

	// Notifications
	dispatcher := notify.NewDispatcher(internalConfig.Reminder.NotificationQueueLimit, log)

	// Platform API client
	apiClient := apiclient.NewApiClient(
		internalConfig.Platform.BaseUrl,
		time.Duration(internalConfig.Platform.RequestTimeoutInSeconds)*time.Second,
		internalConfig.Platform.OutboundRatePerSecond,
		internalConfig.Platform.OutboundBurst,
		sessionStore,
		coordinator,
		log,
	)

	// Auth
	authUsecase := auth.NewAuthUsecase(apiClient, sessionStore, coordinator, log)
	authController := auth.NewAuthController(authUsecase, log)

	// Messaging + realtime
	messagingService := messaging.NewMessagingService(apiClient, sessionStore, log)
	channelManager := realtime.NewChannelManager(
		internalConfig.Platform.RealtimeUrl,
		sessionStore,
		messagingService,
		dispatcher,
		log,
	)
	coordinator.OnLogout(func(context.Context) {
		channelManager.Disconnect()
	})
	channelManager.OnResync(func() {
		dispatcher.Show(notify.NewResyncNotification())
	})

	// Reminders
	reminderUsecase := reminders.NewReminderUsecase(apiClient, log)
	poller := reminders.NewPoller(
		reminderUsecase,
		sessionStore,
		dispatcher,
		time.Duration(internalConfig.Reminder.PollIntervalInSeconds)*time.Second,
		time.Duration(internalConfig.Reminder.DueWindowInMinutes)*time.Minute,
		log,
	)
	pollerCtx, stopPoller := context.WithCancel(context.Background())
	go poller.Run(pollerCtx)
	bootstrap.WorkerStop = stopPoller

	// Health data
	healthDataUsecase := healthdata.NewHealthDataUsecase(apiClient, log)

	// Controllers
	sessionController := session.NewSessionController(sessionStore, log)
	navigationController := navigation.NewNavigationController(guard, log)
	notificationController := notify.NewNotificationController(dispatcher, log)
	messagingController := messaging.NewMessagingController(messagingService, channelManager, log)
	reminderController := reminders.NewReminderController(reminderUsecase, log)
	healthDataController := healthdata.NewHealthDataController(healthDataUsecase, log)

	mws := middlewares.NewMiddlewares(log)

	routers.SetupRoutes(
		bootstrap.Router,
		internalConfig,
		mws,
		authController,
		sessionController,
		navigationController,
		notificationController,
		messagingController,
		reminderController,
		healthDataController,
	)

	// Load whatever session survived the last run before traffic.
	if err := sessionStore.Rehydrate(context.Background()); err != nil {
		log.Warn("session rehydration failed at startup", zap.Error(err))
	}
}
