package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/parkwatch/parkwatch/internal/adapters/config"
	controllerHTTP "github.com/parkwatch/parkwatch/internal/adapters/controller/http"
	postgresStorage "github.com/parkwatch/parkwatch/internal/adapters/database/postgres"
	redisAdapter "github.com/parkwatch/parkwatch/internal/adapters/database/redis"
	"github.com/parkwatch/parkwatch/internal/domain/service"
	"github.com/parkwatch/parkwatch/pkg/logger"
	"github.com/parkwatch/parkwatch/pkg/mailqueue"
	"github.com/parkwatch/parkwatch/pkg/smtp"
)

type App struct {
	DB     *gorm.DB
	Redis  *redisAdapter.Client
	Queue  *mailqueue.Queue
	Logger *logger.Logger

	server *http.Server
}

func New(cfg *config.Config) (*App, error) {
	appLogger, err := logger.Named("app")
	if err != nil {
		return nil, err
	}
	notifyLogger, err := logger.Named("notify")
	if err != nil {
		return nil, err
	}
	mailLogger, err := logger.Named("mail")
	if err != nil {
		return nil, err
	}

	smtpClient := smtp.NewClient(
		cfg.SMTPDialer,
		viper.GetString("service.smtp.email"),
		viper.GetString("service.smtp.domain"),
	)
	queue := mailqueue.New(smtpClient, mailLogger, mailqueue.Options{
		BatchSize:     viper.GetInt("notify.queue.batch-size"),
		BatchInterval: viper.GetDuration("notify.queue.batch-interval"),
		SendTimeout:   viper.GetDuration("notify.queue.send-timeout"),
	})

	sessionStorage := postgresStorage.NewParkingSessionStorage(cfg.Database)
	bookmarkStorage := postgresStorage.NewBookmarkStorage(cfg.Database)
	userStorage := postgresStorage.NewUserStorage(cfg.Database)
	ticketStorage := postgresStorage.NewTicketStorage(cfg.Database)
	notificationStorage := postgresStorage.NewNotificationStorage(cfg.Database)

	userService := service.NewUserService(userStorage, cfg.Redis.Preferences, appLogger)
	proximityService := service.NewProximityService(sessionStorage, bookmarkStorage)
	notifyService := service.NewNotifyService(proximityService, userService, notificationStorage, queue, notifyLogger)
	ticketService := service.NewTicketService(ticketStorage, notifyService, appLogger)
	sessionService := service.NewParkingSessionService(sessionStorage)
	bookmarkService := service.NewBookmarkService(bookmarkStorage)

	handler := controllerHTTP.NewHandler(ticketService, sessionService, bookmarkService, userService, appLogger)

	server := &http.Server{
		Addr:         viper.GetString("server.address"),
		Handler:      controllerHTTP.NewRouter(handler),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return &App{
		DB:     cfg.Database,
		Redis:  cfg.Redis,
		Queue:  queue,
		Logger: appLogger,
		server: server,
	}, nil
}

// Start serves HTTP until SIGINT/SIGTERM, then shuts down gracefully.
func (a *App) Start() {
	go func() {
		a.Logger.Infof("Server listening on %s", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Logger.Panicf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.Logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil {
		a.Logger.Errorf("Shutdown failed: %v", err)
	}
}
