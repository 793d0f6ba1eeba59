package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"hackathon-registration-backend/internal/auth"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(buf)
	logrus.SetLevel(logrus.DebugLevel)
	return buf
}

func TestWithContext(t *testing.T) {
	t.Run("actor and request id", func(t *testing.T) {
		buf := captureOutput(t)

		actorID := uuid.New()
		ctx := auth.WithActor(context.Background(), auth.Actor{ID: actorID, Role: auth.RoleAdmin})
		ctx = ContextWithRequestID(ctx, "req-42")

		WithContext(ctx).WithField("hackathon_id", "h1").Info("temporary team formed")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, actorID.String(), entry["actor"])
		assert.Equal(t, "admin", entry["role"])
		assert.Equal(t, "req-42", entry["request_id"])
		assert.Equal(t, "h1", entry["hackathon_id"])
		assert.Equal(t, "temporary team formed", entry["msg"])
	})

	t.Run("anonymous context", func(t *testing.T) {
		buf := captureOutput(t)

		WithContext(context.Background()).Warn("no actor")

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "unknown", entry["actor"])
		_, hasRequestID := entry["request_id"]
		assert.False(t, hasRequestID)
	})
}

func TestSetup(t *testing.T) {
	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("error")
	assert.Equal(t, logrus.ErrorLevel, logrus.GetLevel())

	Setup("bogus")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
