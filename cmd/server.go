package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"txlens/internal/cardano"
	"txlens/internal/config"
	"txlens/internal/core"
	"txlens/internal/http/handler"
	"txlens/internal/http/handler/middleware"
	"txlens/internal/http/payload"
	"txlens/internal/http/server"
	"txlens/internal/risk"
	"txlens/pkg/jwt"
	"txlens/pkg/log"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const serviceName = "txlens"

func newServeCmd() *cobra.Command {
	var configFile string

	serveCmd := &cobra.Command{
		Use:          "serve",
		Short:        "Start the HTTP API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Start(configFile)
		},
	}
	serveCmd.Flags().StringVarP(&configFile, "config", "c", "", "optional config file (env vars take precedence)")

	return serveCmd
}

func Start(configFile string) error {
	appConfig, err := config.NewApp(configFile)
	if err != nil {
		log.NewZapLogger(serviceName, zap.InfoLevel).Errorw("failed to create config", "error", err)
		return err
	}

	level, err := log.ParseLevel(appConfig.LogLevel)
	if err != nil {
		return err
	}
	logger := log.NewZapLogger(serviceName, level)
	defer func() { _ = logger.Sync() }()

	// risk engine client, authenticated only when a secret is configured
	var tokens risk.TokenIssuer
	if appConfig.RiskEngineSecret != "" {
		tokens = jwt.NewJWTService([]byte(appConfig.RiskEngineSecret))
	}
	riskClient := risk.NewClient(
		logger,
		&http.Client{Timeout: appConfig.RiskEngineTimeout},
		appConfig.RiskEngineURL,
		serviceName,
		tokens)

	// lens
	lens := core.NewLens(
		logger,
		cardano.NewGenerator(),
		riskClient)

	// handler
	txHdlr := handler.NewTransactionHandler(
		logger,
		payload.Decoder{},
		lens)

	limiter := middleware.NewRateLimitMiddleware(
		logger,
		rate.Limit(appConfig.AnalyzeRateLimit),
		appConfig.AnalyzeRateBurst)

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+appConfig.APIPrefix+handler.GetTransaction, txHdlr.HandleGetTransaction)
	mux.Handle("POST "+appConfig.APIPrefix+handler.AnalyzeTransaction, limiter.Limit(http.HandlerFunc(txHdlr.HandleAnalyzeTransaction)))
	mux.HandleFunc("GET "+handler.Health, txHdlr.HandleHealth)

	// middleware
	hdlr := middleware.NewCORS(appConfig.CORSOrigins)(mux)
	hdlr = middleware.NewRecoveryMiddleware(logger).Recover(hdlr)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, appConfig.Port, appConfig.ShutdownTimeout)
	logger.Infow("starting server",
		"port", appConfig.Port,
		"api_prefix", appConfig.APIPrefix,
		"risk_engine_auth", tokens != nil)

	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
