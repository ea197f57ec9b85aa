package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staybook/internal/app/handlers/bookings"
	"staybook/internal/app/handlers/hotels"
	"staybook/internal/app/handlers/rooms"
	"staybook/internal/app/handlers/stats"
	"staybook/internal/app/handlers/users"
	"staybook/internal/infra/analytics"
	statsmongo "staybook/internal/infra/analytics/mongo"
	"staybook/internal/infra/broker/kafka"
	"staybook/internal/infra/config"
	"staybook/internal/infra/db/postgres"
	ginserver "staybook/internal/infra/http/gin"
	"staybook/internal/infra/obs"
	"staybook/internal/infra/security"

	domainbooking "staybook/internal/domain/booking"
	domainuser "staybook/internal/domain/user"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration invalid", "error", err)
		os.Exit(1)
	}
	logger := obs.NewLogger(cfg.Env)

	db, err := postgres.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		logger.Error("postgres connect failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	mongoClient, err := statsmongo.New(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("mongo connect failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Close(closeCtx); err != nil {
			logger.Error("mongo disconnect failed", "error", err)
		}
	}()

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, nil)
	if err != nil {
		logger.Error("kafka producer failed", "error", err)
		os.Exit(1)
	}
	defer producer.Close()

	notifier := kafka.NewNotifier(producer, kafka.Topics{
		domainbooking.RoomBooked{}.EventName(): cfg.RoomBookedTopic,
		domainuser.Registered{}.EventName():    cfg.UserRegisteredTopic,
	}, cfg.NotifyTimeout, logger)

	eventStore := statsmongo.NewEventStore(mongoClient.DB)
	ingestor := analytics.NewIngestor(eventStore, cfg.RoomBookedTopic, cfg.UserRegisteredTopic, logger)
	consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.KafkaGroupID, nil, ingestor)
	if err != nil {
		logger.Error("kafka consumer failed", "error", err)
		os.Exit(1)
	}
	defer consumer.Close()
	go func() {
		if err := consumer.Run(ctx, ingestor.Topics()); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("analytics consumer stopped", "error", err)
		}
	}()

	uowFactory := postgres.Factory{DB: db}
	handlers := ginserver.Handlers{
		Hotel: ginserver.HotelHandler{
			Service: &hotels.Service{UoWFactory: uowFactory},
		},
		Room: ginserver.RoomHandler{
			Service: &rooms.Service{UoWFactory: uowFactory},
		},
		User: ginserver.UserHandler{
			Service: &users.Service{
				UoWFactory: uowFactory,
				Hasher:     security.BcryptHasher{},
				Notifier:   notifier,
				Logger:     logger,
			},
		},
		Booking: ginserver.BookingHandler{
			CreateHandler: &bookings.CreateBookingHandler{
				UoWFactory: uowFactory,
				Notifier:   notifier,
				Logger:     logger,
			},
			ListHandler: &bookings.ListBookingsHandler{UoWFactory: uowFactory},
		},
		Stats: ginserver.StatsHandler{
			Handler:   &stats.ExportHandler{Analytics: eventStore},
			ExportDir: cfg.ExportDir,
		},
	}

	server := ginserver.NewServer(cfg, obs.Middleware{Logger: logger}, obs.HealthHandlers{
		Ready: func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(pingCtx); err != nil {
				return err
			}
			return mongoClient.Ping(pingCtx)
		},
	}, handlers)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "addr", cfg.HTTPAddr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server failed", "error", err)
		os.Exit(1)
	}
	logger.Info("HTTP server stopped")
}
