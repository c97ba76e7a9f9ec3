package cmd

import (
	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-enrollment/app/events"
	"github.com/vibast-solutions/ms-go-enrollment/app/provider"
	"github.com/vibast-solutions/ms-go-enrollment/app/repository"
	"github.com/vibast-solutions/ms-go-enrollment/app/service"
	"github.com/vibast-solutions/ms-go-enrollment/config"
)

type services struct {
	statement *service.StatementService
	payment   *service.PaymentService
	review    *service.ReviewService
}

func mustCreateServices() (*config.Config, *services, func()) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}

	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		logrus.WithError(err).Fatal("Failed to ping database")
	}

	applicationRepo := repository.NewApplicationRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	eventRepo := repository.NewPaymentEventRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	publisher := events.NewPublisher(events.KafkaConfig{
		Brokers:      cfg.Kafka.Brokers,
		Topic:        cfg.Kafka.Topic,
		WriteTimeout: cfg.Kafka.WriteTimeout,
	})

	initiators := provider.NewRegistry(
		newHTTPInitiator(cfg.Initiation, provider.FlowRunKey),
		newHTTPInitiator(cfg.Initiation, provider.FlowBootcampRunID),
	)

	svc := &services{
		statement: service.NewStatementService(applicationRepo, orderRepo),
		payment: service.NewPaymentService(
			applicationRepo,
			orderRepo,
			eventRepo,
			publisher,
			initiators,
			cfg.Initiation,
			cfg.Checkout,
		),
		review: service.NewReviewService(submissionRepo),
	}

	cleanup := func() {
		if err := publisher.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close event publisher")
		}
		if err := db.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close database")
		}
	}

	return cfg, svc, cleanup
}

func newHTTPInitiator(cfg config.InitiationConfig, flow string) *provider.HTTPInitiator {
	return provider.NewHTTPInitiator(provider.HTTPInitiatorConfig{
		Flow:    flow,
		BaseURL: cfg.BaseURL,
		Path:    cfg.Path,
		APIKey:  cfg.APIKey,
		Timeout: cfg.HTTPTimeout,
	})
}
