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

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"gopkg.in/yaml.v3"

	"github.com/finnews/finner/config"
	"github.com/finnews/finner/pkg/dataset"
	"github.com/finnews/finner/pkg/extractors"
	"github.com/finnews/finner/pkg/models"
	"github.com/finnews/finner/pkg/server"
)

const shutdownGracePeriod = 10 * time.Second

// run is the entrypoint for the finner server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring finner: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting finner server version %s", config.VersionString)

	config.SetLogLevel(cfg)

	// trace context flows from incoming requests through to the NLP server
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	appState := NewAppState(context.Background(), cfg)

	srv := server.Create(appState)
	setupSignalHandler(srv)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
	log.Info("Server stopped")
}

// NewAppState creates an AppState from the config file / ENV. The NLP backend
// and the dataset are initialized once here; either may come back as an
// unavailable stand-in, in which case the routes that need it report errors.
func NewAppState(ctx context.Context, cfg *config.Config) *models.AppState {
	appState := &models.AppState{
		Extractor: extractors.Initialize(ctx, cfg),
		Articles:  dataset.Open(cfg.Dataset.Path),
		Config:    cfg,
	}

	if err := models.StartupError(appState.Extractor); err != nil {
		log.Warnf("Entity extraction disabled: %s", err)
	}
	if err := models.StartupError(appState.Articles); err != nil {
		log.Warnf("Article routes disabled: %s", err)
	} else {
		log.Infof("Loaded %d articles from %s", appState.Articles.Len(), cfg.Dataset.Path)
	}

	return appState
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		if err := writeConfig(os.Stdout, cfg); err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		os.Exit(0)
	}
}

// writeConfig writes the resolved config as YAML
func writeConfig(w io.Writer, cfg *config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// setupSignalHandler shuts the server down gracefully on termination
func setupSignalHandler(srv *http.Server) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-signalCh
		log.Infof("Received %s, shutting down", sig)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("Error shutting down server: %v", err)
		}
	}()
}
