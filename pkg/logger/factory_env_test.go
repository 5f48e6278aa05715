package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apistarter/pkg/environment"
	"github.com/dmitrymomot/apistarter/pkg/logger"
)

func TestWithEnvironment_Development(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithEnvironment(environment.Development, "svc"),
		logger.WithOutput(buf),
	)
	log.Debug("msg")
	output := buf.String()
	assert.Contains(t, output, "DEBUG")
	assert.Contains(t, output, "service=svc")
	assert.Contains(t, output, "env=development")
}

func TestWithEnvironment_Production(t *testing.T) {
	for _, env := range []environment.Environment{environment.Production, "prod", environment.Staging, "unknown"} {
		t.Run(string(env), func(t *testing.T) {
			buf := &bytes.Buffer{}
			log := logger.New(
				logger.WithEnvironment(env, "svc"),
				logger.WithOutput(buf),
			)
			log.Debug("hidden")
			log.Info("msg")

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "svc", entry["service"])
			assert.Equal(t, "msg", entry["msg"])
		})
	}
}

func TestWithEnvironment_ExplicitLevelWins(t *testing.T) {
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithLevelString("error"),
		logger.WithEnvironment(environment.Development, "svc"),
		logger.WithOutput(buf),
	)
	log.Info("hidden")
	assert.Empty(t, buf.String())

	log.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"", 0, true},
		{"verbose", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := logger.ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
