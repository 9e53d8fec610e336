package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StrokeRiskAssessment/internal/config"
	"StrokeRiskAssessment/internal/flash"
	"StrokeRiskAssessment/internal/handler"
	"StrokeRiskAssessment/internal/inference"
	"StrokeRiskAssessment/internal/logger"
	"StrokeRiskAssessment/internal/relay"
	"StrokeRiskAssessment/internal/routes"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stroke-risk",
		Short: "Stroke risk assessment web front for an external inference service",
	}
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var port, inferenceURL string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			if inferenceURL != "" {
				cfg.InferenceURL = inferenceURL
			}
			return runServer(cfg)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides PORT)")
	cmd.Flags().StringVar(&inferenceURL, "inference-url", "", "inference endpoint (overrides INFERENCE_URL)")
	return cmd
}

func runServer(cfg *config.Config) error {
	log := logger.New(cfg.LogLevel, cfg.IsDev())
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.FlashSecret == "" {
		log.Warn().Msg("runServer(): FLASH_SECRET_KEY is not set, using a random per-process key")
	}
	if cfg.CSRFKey == "" {
		log.Warn().Msg("runServer(): CSRF_AUTH_KEY is not set, form tokens will not survive a restart")
	}
	codec, err := flash.NewCodec(cfg.FlashSecret, cfg.FlashTTL)
	if err != nil {
		return err
	}

	client := inference.NewClient(cfg.InferenceURL, cfg.InferenceTimeout, inference.WithLogger(log))
	svc := relay.NewService(client, log)
	h := handler.NewPredictionHandler(svc, codec, log)

	router, err := routes.SetupRoutes(h, cfg, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("inference_url", client.Endpoint()).Msg("runServer(): listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info().Stringer("signal", sig).Msg("runServer(): shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
