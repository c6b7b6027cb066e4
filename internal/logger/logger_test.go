package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)

	ctx := WithRequestID(context.Background(), "req-42")
	FromContext(ctx).Info("проверка", "picture_id", 7)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "проверка", entry["msg"])
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, float64(7), entry["picture_id"])
}

func TestProductionSkipsDebug(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)

	Debug("не должно попасть в лог")
	assert.Empty(t, buf.String())

	InitWithWriter("development", &buf)
	Debug("а это попадёт")
	assert.Contains(t, buf.String(), "а это попадёт")
}

func TestGetRequestIDEmpty(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestWithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)

	With("picture_id", 3).Info("открыта фотография")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, float64(3), entry["picture_id"])
	assert.NotContains(t, entry, "request_id")
}

func TestFromContextWithoutRequestID(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("production", &buf)

	FromContext(context.Background()).Info("без запроса")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "request_id")
}
