package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tradecheck/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults to json at info level", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Debug("hidden")
		log.Info("visible")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "visible", record["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

		log.Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("static attrs on every record", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithAttr(slog.String("service", "tradecheck")))

		log.Info("hello")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "tradecheck", record["service"])
	})

	t.Run("development preset enables debug text logging", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("tradecheck"), logger.WithOutput(&buf))

		assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
		log.Debug("details")
		assert.Contains(t, buf.String(), "service=tradecheck")
	})

	t.Run("invalid format panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat(logger.Format("xml")))
		})
	})
}
