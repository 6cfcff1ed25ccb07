package app

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"yttranscript/internal/config"
	"yttranscript/internal/logger"
	"yttranscript/internal/transcript"
	"yttranscript/internal/videoid"
)

// Application wires configuration, logging, the transcript fetcher and the
// result output into a single one-shot extraction
type Application struct {
	config    *config.Configuration
	zapLogger *zap.Logger
	fetcher   *transcript.Fetcher
	output    *logger.ResultOutput
}

// NewApplication creates a new application instance with all components
// initialized. Configuration comes from the file named by CONFIG_PATH when
// set, otherwise from environment variables.
func NewApplication() (*Application, error) {
	var cfg *config.Configuration
	var err error

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		cfg, err = config.NewConfigurationFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.NewConfigurationFromEnv()
		if err != nil {
			return nil, fmt.Errorf("failed to load config from environment: %w", err)
		}
	}

	return NewApplicationWithConfig(cfg)
}

// NewApplicationWithConfig creates an application instance from an existing
// configuration
func NewApplicationWithConfig(cfg *config.Configuration) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	zapLogger := logger.NewLogger()

	output, err := logger.NewResultOutput(cfg, zapLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create result output: %w", err)
	}

	fetcher := transcript.NewFetcherWithLogger(cfg, zapLogger)

	return &Application{
		config:    cfg,
		zapLogger: zapLogger,
		fetcher:   fetcher,
		output:    output,
	}, nil
}

// Run extracts the transcript for a single video URL or ID and writes it to
// the configured output destination
func (app *Application) Run(ctx context.Context, input string) error {
	app.zapLogger.Info("starting transcript extraction",
		zap.String("input", input))

	text, err := app.fetcher.GetTranscript(ctx, input)
	if err != nil {
		app.zapLogger.Error("transcript extraction failed",
			zap.String("input", input),
			zap.Error(err))
		return err
	}

	// Best effort: the ID was already validated by the fetcher
	videoID, _ := videoid.Extract(input)

	if err := app.output.WriteTranscript(videoID, text); err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}

	app.zapLogger.Info("transcript extraction complete",
		zap.String("video_id", videoID),
		zap.Int("length", len(text)))

	return nil
}

// Shutdown flushes any buffered log entries
func (app *Application) Shutdown() error {
	// Sync can fail on stderr; that is not actionable here
	_ = app.zapLogger.Sync()
	return nil
}
