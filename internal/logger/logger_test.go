package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DevelopmentText(t *testing.T) {
	var buf bytes.Buffer
	log, flush := New(&buf, true, "")
	defer flush()

	log.Debug("wizard step", "user_id", 7)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "user_id=7")
}

func TestNew_ProductionJSON(t *testing.T) {
	var buf bytes.Buffer
	log, flush := New(&buf, false, "")
	defer flush()

	log.Debug("hidden")
	log.Info("incoming message", "route", "log_water")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "incoming message", rec["msg"])
	assert.Equal(t, "log_water", rec["route"])
}

func TestNew_InvalidSentryDSNFallsBack(t *testing.T) {
	var buf bytes.Buffer
	log, flush := New(&buf, false, "not a dsn")
	defer flush()

	log.Error("boom")
	assert.Contains(t, buf.String(), "boom")
}
