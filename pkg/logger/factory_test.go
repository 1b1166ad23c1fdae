package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripfolio/formkit/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("defaults to json at info level", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Debug("hidden")
		log.Info("shown", "field", "email")

		out := buf.String()
		assert.NotContains(t, out, "hidden")

		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &record))
		assert.Equal(t, "shown", record["msg"])
		assert.Equal(t, "email", record["field"])
	})

	t.Run("text format produces key=value output", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

		log.Info("validating")
		assert.True(t, strings.Contains(buf.String(), "msg=validating"))
	})

	t.Run("static attrs apply to every record", func(t *testing.T) {
		var buf bytes.Buffer
		log := logger.New(
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "formkit")),
		)

		log.Info("one")
		assert.Contains(t, buf.String(), `"service":"formkit"`)
	})

	t.Run("panics on invalid format", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat(logger.Format("xml")))
		})
	})
}

func TestNewFromEnv(t *testing.T) {
	t.Run("reads level and format from environment", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "text")

		var buf bytes.Buffer
		log, err := logger.NewFromEnv(logger.WithOutput(&buf))
		require.NoError(t, err)

		log.Debug("verbose")
		assert.Contains(t, buf.String(), "msg=verbose")
	})

	t.Run("falls back to defaults on unknown values", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "chatty")
		t.Setenv("LOG_FORMAT", "xml")

		var buf bytes.Buffer
		log, err := logger.NewFromEnv(logger.WithOutput(&buf))
		require.NoError(t, err)

		log.Debug("hidden")
		log.Info("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
	})
}
