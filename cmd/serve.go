package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/kinetic-booking/internal/api"
	createBookingHandler "github.com/m04kA/kinetic-booking/internal/api/handlers/create_booking"
	getCalendarHandler "github.com/m04kA/kinetic-booking/internal/api/handlers/get_calendar"
	getSlotsHandler "github.com/m04kA/kinetic-booking/internal/api/handlers/get_slots"
	sendConfirmationHandler "github.com/m04kA/kinetic-booking/internal/api/handlers/send_confirmation"
	"github.com/m04kA/kinetic-booking/internal/api/middleware"
	"github.com/m04kA/kinetic-booking/internal/bookingform"
	"github.com/m04kA/kinetic-booking/internal/config"
	"github.com/m04kA/kinetic-booking/internal/domain"
	"github.com/m04kA/kinetic-booking/internal/infra/email"
	bookingRepo "github.com/m04kA/kinetic-booking/internal/infra/storage/booking"
	"github.com/m04kA/kinetic-booking/internal/infra/storage/migrations"
	"github.com/m04kA/kinetic-booking/internal/integrations/mailer"
	"github.com/m04kA/kinetic-booking/internal/service/calendar"
	sendConfirmationUC "github.com/m04kA/kinetic-booking/internal/usecase/send_confirmation"
	submitBookingUC "github.com/m04kA/kinetic-booking/internal/usecase/submit_booking"
	"github.com/m04kA/kinetic-booking/pkg/dbmetrics"
	"github.com/m04kA/kinetic-booking/pkg/logger"
	"github.com/m04kA/kinetic-booking/pkg/metrics"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}

			log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer log.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, log, migrateUp)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", false, "apply database migrations on startup")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, log *logger.Logger, migrateUp bool) error {
	log.Info("Starting %s %s...", serviceName, Version)

	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := openDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("Connected to database (driver=%s)", cfg.Database.Driver)

	// Статистика connection pool собирается до остановки
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	var executor dbmetrics.DBExecutor = db
	if metricsCollector != nil {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	}

	if migrateUp {
		applied, err := migrations.Up(ctx, executor, cfg.Database.Driver, log)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		log.Info("Migrations applied: %d", len(applied))
	}

	// Правила доступности
	rules, err := newAvailabilityRules(cfg.Booking)
	if err != nil {
		return err
	}
	period, err := cfg.Booking.Period(time.Now().In(rules.Location()))
	if err != nil {
		return err
	}
	log.Info("Booking period %s, closed on %s, timezone %s", period, cfg.Booking.ClosedWeekday, rules.Location())

	// Эндпоинт подтверждений
	renderer, err := email.NewRenderer()
	if err != nil {
		return err
	}
	sendConfirmation := sendConfirmationUC.NewUseCase(
		renderer,
		newEmailSender(cfg.Email, log),
		sendConfirmationUC.Options{
			From:         cfg.Email.From,
			Subject:      cfg.Email.Subject,
			AddressLines: cfg.Email.BusinessAddress,
		},
		log,
	)

	// Отправка бронирований
	store := bookingRepo.NewRepository(executor, cfg.Database.Driver)

	submitBooking := submitBookingUC.NewUseCase(
		store,
		newMailerClient(cfg.Mailer, sendConfirmation, log),
		metricsCollector,
		submitBookingUC.Options{
			StoreTimeout:  cfg.Booking.StoreTimeoutDuration(),
			MailerTimeout: cfg.Mailer.TimeoutDuration(),
		},
		log,
	)
	forms := bookingform.NewFactory(
		bookingform.Config{Period: period, Slots: domain.DefaultSlots},
		rules,
		submitBooking,
		log,
	)

	routerCfg := api.RouterConfig{
		Metrics:     metricsCollector,
		MetricsPath: cfg.Metrics.Path,
		Logger:      log,
	}
	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst, cfg.RateLimit.TrustedProxies)
		if err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
		go limiter.RunCleanup(ctx, time.Minute)
		routerCfg.RateLimiter = limiter
	}

	router := api.NewRouter(api.Handlers{
		GetCalendar:      getCalendarHandler.NewHandler(calendar.NewService(rules), period, log).Handle,
		GetSlots:         getSlotsHandler.NewHandler(domain.DefaultSlots).Handle,
		CreateBooking:    createBookingHandler.NewHandler(forms, log).Handle,
		SendConfirmation: sendConfirmationHandler.NewHandler(sendConfirmation, log).Handle,
	}, routerCfg)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Даем дослать уже запущенные письма с подтверждением;
	// доставка внутри процесса не зависит от закрытого listener
	submitBooking.Wait()

	log.Info("Server stopped gracefully")
	return nil
}

func newEmailSender(cfg config.EmailConfig, log *logger.Logger) sendConfirmationUC.Sender {
	if cfg.Provider == config.ProviderResend {
		log.Info("Email provider: resend")
		return email.NewResendSender(cfg.APIKey)
	}
	log.Info("Email provider: log (emails are not delivered)")
	return email.NewLogSender(log)
}

// newMailerClient доставляет письма внутри процесса, если отдельный mailer не настроен
func newMailerClient(cfg config.MailerConfig, useCase mailer.ConfirmationUseCase, log *logger.Logger) submitBookingUC.MailerClient {
	if cfg.InProcess() {
		log.Info("Mailer: in-process delivery")
		return mailer.NewLocalClient(useCase, log)
	}
	log.Info("Mailer: %s", cfg.BaseURL)
	return mailer.NewClient(cfg.BaseURL, cfg.TimeoutDuration(), log)
}
