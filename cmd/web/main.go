package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mvola/cmd/web/handlers"
	"mvola/cmd/web/subscribers"
	"mvola/cmd/web/validator"
	"mvola/internal/auth"
	"mvola/internal/config"
	"mvola/internal/events"
	"mvola/internal/health"
	"mvola/internal/notification"
	"mvola/internal/payment"
	"mvola/internal/webhook"
	"mvola/kit/broker"
	"mvola/kit/gateway"
	"mvola/kit/observability"
)

func main() {
	cfg := config.Load()
	logger := observability.NewLogger()
	defer logger.Sync()
	metricsKit := observability.NewMetrics()
	bus := broker.New(logger)
	defer bus.Close()

	// Zero timeout keeps the transport default; the breaker only guards
	// against a provider that is hard down.
	client := gateway.NewBreaker(gateway.NewClient(0), gateway.BreakerConfig{
		FailureThreshold: 5,
		SuccessThreshold: 1,
		OpenTimeout:      2 * time.Second,
	})

	authSvc := auth.NewService(cfg, client, bus, logger)
	paymentSvc := payment.NewService(cfg, client, bus, logger)
	webhookSvc := webhook.NewService(bus, logger)
	healthSvc := health.NewService(2*time.Second, health.ConfigChecks(cfg)...)
	notificationSvc := notification.NewService(logger)
	jsonV := validator.NewJSON()

	metricsHandler := subscribers.NewMetricsEvent(metricsKit)
	notificationHandler := subscribers.NewNotificationEvent(notificationSvc)

	bus.Subscribe((events.AuthSucceeded{}).Name(), metricsHandler.HandleAny)
	bus.Subscribe((events.AuthFailed{}).Name(), metricsHandler.HandleAny)
	bus.Subscribe((events.PaymentInitiated{}).Name(), metricsHandler.HandleAny)
	bus.Subscribe((events.PaymentFailed{}).Name(), metricsHandler.HandleAny)
	bus.Subscribe((events.WebhookReceived{}).Name(), metricsHandler.HandleAny)

	bus.Subscribe((events.PaymentInitiated{}).Name(), notificationHandler.HandlePaymentInitiated)
	bus.Subscribe((events.PaymentFailed{}).Name(), notificationHandler.HandlePaymentFailed)
	bus.Subscribe((events.WebhookReceived{}).Name(), notificationHandler.HandleWebhookReceived)

	go func() {
		t := time.NewTicker(60 * time.Second)
		defer t.Stop()
		for range t.C {
			logger.Info(
				"metrics snapshot",
				"auth_attempts", metricsKit.AuthAttempts.Load(),
				"auth_failures", metricsKit.AuthFailures.Load(),
				"payments_initiated", metricsKit.PaymentsInitiated.Load(),
				"payments_failed", metricsKit.PaymentsFailed.Load(),
				"webhooks_received", metricsKit.WebhooksReceived.Load(),
			)
		}
	}()

	handler := newRouter(logger, routerDeps{
		info:    handlers.NewInfo(),
		health:  handlers.NewHealth(cfg, healthSvc),
		auth:    handlers.NewAuth(authSvc, logger),
		payment: handlers.NewPayment(jsonV, cfg, authSvc, paymentSvc, logger),
		webhook: handlers.NewWebhook(jsonV, webhookSvc, logger),
	})

	srv := &http.Server{Addr: cfg.Addr, Handler: handler, ReadHeaderTimeout: 2 * time.Second}

	go func() {
		logger.Info("web server started", "addr", srv.Addr, "base_url", cfg.BaseURL, "has_credentials", cfg.HasCredentials())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("web server error", "error", err.Error())
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err.Error())
	}
	logger.Info("web server stopped")
}
