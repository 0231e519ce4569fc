package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/changesci/changes-web/config"
	"github.com/changesci/changes-web/pkg/apiclient"
	"github.com/changesci/changes-web/pkg/auth"
	"github.com/changesci/changes-web/pkg/models"
	"github.com/changesci/changes-web/pkg/observability"
	"github.com/changesci/changes-web/pkg/server"
	"github.com/changesci/changes-web/pkg/telemetry"
)

const ShutdownTimeout = 10 * time.Second

// run is the entrypoint for the changes-web server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring changes-web: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting changes-web version %s", config.VersionString)

	config.SetLogFormat(cfg)
	config.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to set up telemetry: %s", err)
	}

	appState, err := NewAppState(cfg)
	if err != nil {
		log.Fatal(err)
	}

	srv := server.Create(appState)

	go func() {
		<-ctx.Done()
		log.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Errorf("Error shutting down server: %v", err)
		}
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Errorf("Error shutting down telemetry: %v", err)
		}
	}()

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV
func NewAppState(cfg *config.Config) (*models.AppState, error) {
	obs := observability.NewLogService(log)

	client, err := apiclient.NewClient(cfg, obs)
	if err != nil {
		return nil, err
	}

	log.Infof("Using Changes API at %s", cfg.API.BaseURL)

	return &models.AppState{
		API:           client,
		Observability: obs,
		Config:        cfg,
	}, nil
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		if err := writeConfig(os.Stdout, cfg); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}
	if generateKey {
		token, err := auth.GenerateJWT(cfg)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(token)
		os.Exit(0)
	}
}

// writeConfig writes the effective configuration as YAML. Secrets are omitted.
func writeConfig(w io.Writer, cfg *config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to dump config: %w", err)
	}
	return enc.Close()
}
