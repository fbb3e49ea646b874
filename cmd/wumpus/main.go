// Package main is the entry point for Wumpus.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/samdwyer/wumpus/internal/config"
	"github.com/samdwyer/wumpus/internal/game"
	"github.com/samdwyer/wumpus/internal/logging"
	"github.com/samdwyer/wumpus/internal/telemetry"
	"github.com/samdwyer/wumpus/internal/ui"
)

func main() {
	os.Exit(run())
}

// run plays one game and returns the process exit code. Deferred log and
// trace flushes run before main exits.
func run() int {
	// Not fatal - settings may come from the environment or flags
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		return 1
	}

	logger := logging.New("wumpus", cfg.Log)
	defer func() { _ = logger.Sync() }()

	setupOTelEnv(cfg.Telemetry)

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry.Enabled)
	if err != nil {
		logger.Warn("telemetry setup failed, running without traces", zap.Error(err))
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Warn("telemetry shutdown failed", zap.Error(err))
			}
		}()
	}

	term, closeTerm, err := openTerminal(cfg.UI)
	if err != nil {
		logger.Error("terminal unavailable", zap.Error(err))
		log.Printf("Failed to open terminal: %v", err)
		return 1
	}

	g, err := game.New(cfg.Game, term, game.WithLogger(logger))
	if err != nil {
		closeTerm(game.StateInitializing)
		logger.Error("game setup failed", zap.Error(err))
		log.Printf("Failed to initialize game: %v", err)
		return 1
	}

	state, err := g.Run(ctx)
	closeTerm(state)
	if err != nil {
		logger.Error("game aborted", zap.Error(err))
		log.Printf("Game error: %v", err)
		return 1
	}
	logger.Info("exiting", zap.Stringer("state", state))
	return 0
}

// openTerminal builds the configured frontend and its cleanup function.
func openTerminal(cfg config.UIConfig) (ui.Terminal, func(game.State), error) {
	switch cfg.Mode {
	case config.UITcell:
		screen, err := ui.NewScreen()
		if err != nil {
			return nil, nil, err
		}
		closeScreen := func(state game.State) {
			// Keep the final frame up until the player dismisses it
			if state.IsOver() && state != game.StateQuit {
				screen.Println("Press any key to exit.")
				_, _ = screen.ReadKey()
			}
			screen.Close()
		}
		return screen, closeScreen, nil
	default:
		stream := ui.NewStream(os.Stdin, os.Stdout)
		stream.ANSIClear = cfg.ANSIClear
		return stream, func(game.State) {}, nil
	}
}

// setupOTelEnv exports the OTEL_* variables the OTLP exporter reads.
func setupOTelEnv(cfg config.TelemetryConfig) {
	if !cfg.Enabled {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Endpoint)
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("HONEYCOMB_WUMPUS_API_KEY")
	}
	if apiKey != "" {
		os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
			fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, cfg.Dataset))
	}
}
