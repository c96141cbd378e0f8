package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/tagabukid-property/pkg/log"
)

func TestLogger_WritesContextFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.LevelInfo, log.WithOutput(&buf))

	ctx := logger.WithContext(context.Background(), log.Fields{"requestID": "abc"})
	logger.WithError(errors.New("network error")).WithField("route", "account").Error(ctx, "profile not saved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "profile not saved", entry["msg"])
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "abc", entry["requestID"])
	assert.Equal(t, "network error", entry["error"])
	assert.Equal(t, "account", entry["route"])
}

func TestLogger_SkipsEntriesBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(log.LevelWarn, log.WithOutput(&buf))

	logger.Info(context.Background(), "hidden")
	assert.Zero(t, buf.Len())

	logger.Log(context.Background(), log.LevelDisabled, "hidden")
	assert.Zero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	lvl, ok := log.ParseLevel(" WARN ")
	assert.True(t, ok)
	assert.Equal(t, log.LevelWarn, lvl)

	_, ok = log.ParseLevel("verbose")
	assert.False(t, ok)
}
