package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/information-sharing-networks/custody-demo/internal/config"
	"github.com/information-sharing-networks/custody-demo/internal/logger"
	"github.com/information-sharing-networks/custody-demo/internal/server"
	"github.com/information-sharing-networks/custody-demo/internal/version"
)

//	@title			custody-server
//	@description	custody-server signs and verifies chain-of-custody transfer records.
//	@description
//	@description	## Common Error Responses
//	@description	All endpoints may return:
//	@description	- `413` Request body exceeds size limit
//	@description	- `429` Rate limit exceeded
//	@description	- `500` Internal server error
//	@description
//	@description	## Request Limits
//	@description	All endpoints are protected by:
//	@description	- **Rate limiting**: Configurable requests per second (see env vars) - default 100 rps (set to 0 to disable)
//	@description	- **Request size limits**: Configurable (see env vars) - default 1MB
//	@description
//	@description	## Keys
//	@description	The server is stateless. Private keys sent to the signing endpoints are used for that request only
//	@description	and are never stored or logged.
//	@license.name	MIT

//	@servers.url			http://localhost:8080
//	@servers.description	Development server

//	@accept		json
//	@produce	json

//	@tag.name			Transfers
//	@tag.description	Sign, verify and accept transfer records

//	@tag.name			Identities
//	@tag.description	Generate custodian keypairs and export public keys

//	@tag.name			Common
//	@tag.description	Server API endpoints (health, version)

func main() {
	cmd := &cobra.Command{
		Use:   "custody-server",
		Short: "Chain-of-custody transfer server",
		Long:  `custody-server exposes the custody transfer record operations over HTTP`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		log.Printf("failed to load configuration: %v", err.Error())
		os.Exit(1)
	}

	appLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	appLogger.Info("Configuration loaded",
		slog.String("ENVIRONMENT", cfg.Environment),
		slog.String("HOST", cfg.Host),
		slog.Int("PORT", cfg.Port),
		slog.String("LOG_LEVEL", cfg.LogLevel),
		slog.Duration("REQUEST_TIMEOUT", cfg.RequestTimeout),
		slog.Int("RATE_LIMIT_RPS", int(cfg.RateLimitRPS)),
		slog.Int64("MAX_REQUEST_SIZE", cfg.MaxRequestSize),
		slog.Int("MAX_DESCRIPTION_LENGTH", cfg.MaxDescriptionLength),
		slog.Int("MAX_KEY_LENGTH", cfg.MaxKeyLength),
		slog.Int("SIGN_BATCH_WORKERS", cfg.SignBatchWorkers),
		slog.Int("SIGN_BATCH_MAX_RECORDS", cfg.SignBatchMaxRecords),
	)

	appLogger.Info("Starting server", slog.String("version", version.Get().Version))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(cfg, appLogger)

	if err := srv.Start(ctx); err != nil {
		appLogger.Error("Server error", slog.String("error", err.Error()))
		return err
	}

	appLogger.Info("server shutdown complete")
	return nil
}
