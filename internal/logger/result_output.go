package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"yttranscript/internal/config"
)

// ResultOutput writes extracted transcripts to their configured destination:
// a file path from configuration, or stdout when none is set.
type ResultOutput struct {
	filePath string
	stdout   io.Writer
	logger   *zap.Logger
}

// NewResultOutput creates a ResultOutput from the application configuration
func NewResultOutput(cfg *config.Configuration, logger *zap.Logger) (*ResultOutput, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &ResultOutput{
		filePath: cfg.GetOutputFilePath(),
		stdout:   os.Stdout,
		logger:   logger,
	}, nil
}

// GetFilePath returns the configured output file path, empty for stdout
func (ro *ResultOutput) GetFilePath() string {
	return ro.filePath
}

// WriteTranscript writes the final transcript text for a video, followed by
// a trailing newline
func (ro *ResultOutput) WriteTranscript(videoID, text string) error {
	if ro.filePath == "" {
		ro.logger.Debug("writing transcript to stdout",
			zap.String("video_id", videoID),
			zap.Int("length", len(text)))

		if _, err := fmt.Fprintln(ro.stdout, text); err != nil {
			return fmt.Errorf("failed to write transcript to stdout: %w", err)
		}
		return nil
	}

	if dir := filepath.Dir(ro.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(ro.filePath, []byte(text+"\n"), 0644); err != nil {
		ro.logger.Error("failed to write transcript file",
			zap.String("path", ro.filePath),
			zap.Error(err))
		return fmt.Errorf("failed to write transcript to %s: %w", ro.filePath, err)
	}

	ro.logger.Info("transcript written",
		zap.String("video_id", videoID),
		zap.String("path", ro.filePath),
		zap.Int("length", len(text)))

	return nil
}
