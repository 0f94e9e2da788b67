package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"maisonweb/config"
	"maisonweb/database"
	"maisonweb/handlers"
	"maisonweb/logger"
	"maisonweb/mailer"
	"maisonweb/metrics"
	"maisonweb/middleware"
	"maisonweb/submissions"
	"maisonweb/verification"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	connectTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
	corsMaxAge      = 12 * time.Hour
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// zap isn't configured yet
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.App.LogLevel, !cfg.IsProduction())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("Server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	db, err := database.Connect(connectCtx, cfg.Database.URL, log)
	cancel()
	if err != nil {
		return err
	}
	defer db.Close()

	m := metrics.New()
	verifier := verification.NewClient(cfg.Recaptcha.VerifyURL, cfg.Recaptcha.SecretKey, cfg.Recaptcha.Timeout, log)
	smtp := mailer.NewSMTPMailer(mailer.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.From,
		Password: cfg.Mail.Password,
		Timeout:  cfg.Mail.Timeout,
	}, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r, err := newEngine(cfg.Server.TrustedProxies)
	if err != nil {
		return err
	}
	r.Use(cors.New(corsConfig(cfg.Server.CORSAllowedOrigins)))
	r.Use(middleware.RequestLogger(log, m))
	r.Use(gin.Recovery())

	handlers.RegisterRoutes(r, handlers.Dependencies{
		Store:           db,
		Health:          db,
		Feedback:        submissions.NewFeedbackPipeline(db, verifier, m, log),
		ProjectRequests: submissions.NewProjectRequestPipeline(db, smtp, cfg.Mail.OperatorEmail, m, log),
		Metrics:         m.Handler(),
		Log:             log,
	}, middleware.SubmissionRateLimiter(cfg.Server.SubmissionRatePerMinute, cfg.Server.SubmissionBurst, 10*time.Minute, ctx.Done()))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newEngine builds the router. Forwarding headers are only believed from
// the listed proxies; with none, ClientIP is the socket peer.
func newEngine(trustedProxies []string) (*gin.Engine, error) {
	r := gin.New()
	if len(trustedProxies) == 0 {
		trustedProxies = nil
	}
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}
	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        corsMaxAge,
	}
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
