package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext_AddsUser(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", "json", &buf)
	t.Cleanup(func() { Setup("info", "json", nil) })

	ctx := ContextWithUser(context.Background(), "abc123")
	WithContext(ctx).WithField("vanityUrl", "x").Info("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "abc123", line["user"])
	assert.Equal(t, "x", line["vanityUrl"])
	assert.Equal(t, "hello", line["msg"])
}

func TestWithContext_Anonymous(t *testing.T) {
	l := WithContext(context.Background())
	assert.Equal(t, "anonymous", l.Data["user"])
}

func TestSetup_UnknownLevelFallsBackToInfo(t *testing.T) {
	Setup("loud", "text", &bytes.Buffer{})
	t.Cleanup(func() { Setup("info", "json", nil) })

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
