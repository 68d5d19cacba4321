package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventcheckin/config"
	_ "eventcheckin/docs"
	"eventcheckin/internal/adapters/email"
	delivery "eventcheckin/internal/delivery/http"
	"eventcheckin/internal/delivery/http/controllers"
	"eventcheckin/internal/delivery/http/middleware"
	"eventcheckin/internal/domain"
	"eventcheckin/internal/repository/memory"
	"eventcheckin/internal/repository/postgres"
	"eventcheckin/internal/services"
)

// @title Event Check-In API
// @version 1.0
// @description Attendance tracking for a single event: zoned check-ins, bulk attendee import, and live occupancy.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	var repo domain.AttendeeRepository
	switch cfg.Store {
	case "postgres":
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			logger.Error("can't open database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("can't reach database", "err", err)
			os.Exit(1)
		}
		repo = postgres.NewAttendeeRepository(db)
	default:
		logger.Warn("using in-memory attendee store; data is lost on restart")
		repo = memory.NewAttendeeRepository()
	}

	var emailSvc domain.EmailService
	if cfg.ImportReportRecipient != "" {
		mailer, err := email.NewMailer(email.MailerConfig{
			Provider:    cfg.EmailProvider,
			FromAddress: cfg.EmailFromAddress,
			FromName:    cfg.EmailFromName,
			SES: email.SESConfig{
				Region:             cfg.AWSRegion,
				AccessKeyID:        cfg.AWSAccessKeyID,
				SecretAccessKey:    cfg.AWSSecretAccessKey,
				InsecureSkipVerify: cfg.SESInsecureSkipVerify,
			},
		})
		if err != nil {
			logger.Error("can't create mailer", "err", err)
			os.Exit(1)
		}
		emailSvc = services.NewEmailService(mailer, email.NewTemplateRenderer(), cfg.ImportReportRecipient)
	}

	checkInSvc := services.NewCheckInService(repo, cfg.DefaultZone)
	importSvc, err := services.NewImportService(repo, emailSvc, logger)
	if err != nil {
		logger.Error("can't create import service", "err", err)
		os.Exit(1)
	}
	aggregator := services.NewZoneAggregator(repo)

	attendeeController := controllers.NewAttendeeController(logger, checkInSvc, importSvc, aggregator)
	mux := delivery.NewRouter(attendeeController)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.Logging(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "addr", srv.Addr, "store", cfg.Store)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
