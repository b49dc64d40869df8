package chainerr

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func loggedError() *Error {
	root := New("connection refused", WithName("DialError"), WithInfoValue("addr", "db:5432"))
	return Wrap(root, "load user", WithInfoValue("user_id", 42))
}

func TestError_LogValue(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logger.Error("request failed", "error", loggedError())

	var entry struct {
		Msg   string `json:"msg"`
		Error struct {
			Name    string         `json:"name"`
			Message string         `json:"message"`
			Info    map[string]any `json:"info"`
			Cause   string         `json:"cause"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	require.Equal(t, "request failed", entry.Msg)
	require.Equal(t, "ChainError", entry.Error.Name)
	require.Equal(t, "load user: connection refused", entry.Error.Message)
	require.Equal(t, map[string]any{"addr": "db:5432", "user_id": float64(42)}, entry.Error.Info)
	require.Equal(t, "DialError: connection refused", entry.Error.Cause)
}

func TestError_LogValueWithoutInfoOrCause(t *testing.T) {
	v := New("alone").LogValue()
	require.Equal(t, slog.KindGroup, v.Kind())

	var keys []string
	for _, a := range v.Group() {
		keys = append(keys, a.Key)
	}
	require.Equal(t, []string{"name", "message"}, keys)
}

func TestError_MarshalZerologObject(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Error().Object("error", loggedError()).Msg("request failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	require.Equal(t, "error", entry["level"])
	require.Equal(t, "request failed", entry["message"])
	require.Equal(t, map[string]any{
		"name":    "ChainError",
		"message": "load user: connection refused",
		"info":    map[string]any{"addr": "db:5432", "user_id": float64(42)},
		"cause":   "DialError: connection refused",
	}, entry["error"])
}

func TestError_MarshalZerologObjectMinimal(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logger.Info().Object("error", Wrap(stderrors.New(""), "empty cause")).Send()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, map[string]any{
		"name":    "ChainError",
		"message": "empty cause: ",
		"cause":   "Error",
	}, entry["error"])
}
