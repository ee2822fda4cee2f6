package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewJSONCarriesRunID(t *testing.T) {
	var buf bytes.Buffer
	runID := NewRunID()

	logger, err := New(&buf, Config{Level: "info", Format: FormatJSON}, runID)
	require.NoError(t, err)
	logger.Info("fixtures loaded", "count", 3)
	logger.Debug("hidden")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "fixtures loaded", line["msg"])
	assert.Equal(t, runID, line["run_id"])
	assert.EqualValues(t, 3, line["count"])
}

func TestNewTextDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, Config{}, "run-1")
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "run_id=run-1")
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Config{Format: "xml"}, "run-1")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestNewRunIDIsUUID(t *testing.T) {
	_, err := uuid.Parse(NewRunID())
	assert.NoError(t, err)
	assert.NotEqual(t, NewRunID(), NewRunID())
}
