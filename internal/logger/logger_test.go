package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	t.Run("should create usable logger", func(t *testing.T) {
		// Act
		logger := NewLogger()

		// Assert
		assert.NotNil(t, logger)
		assert.NotPanics(t, func() {
			logger.Info("test message")
		})
	})
}

func TestNewDevelopmentLogger(t *testing.T) {
	t.Run("should create development logger without error", func(t *testing.T) {
		// Act
		logger, err := NewDevelopmentLogger()

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, logger)
	})
}
