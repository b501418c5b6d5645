package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedactEmail(t *testing.T) {
	assert.Equal(t, "jo***@example.com", RedactEmail("john.doe@example.com"))
	assert.Equal(t, "***@example.com", RedactEmail("ab@example.com"))
	assert.Equal(t, "***@***", RedactEmail("not-an-email"))
}

func TestLogger_JSON_RedactsEmailFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Debug, Format: FormatJSON, App: "pet-adoption", Output: &buf})

	l.With(map[string]any{"component": "applications"}).Info("application submitted", map[string]any{
		"email": "maria.lopez@example.com",
		"note":  "contact maria.lopez@example.com asap",
		"err":   errors.New("dup maria.lopez@example.com"),
		"":      "dropped",
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "application submitted", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "pet-adoption", entry["app"])
	assert.Equal(t, "applications", entry["component"])
	assert.Equal(t, "ma***@example.com", entry["email"])
	assert.Equal(t, "contact ma***@example.com asap", entry["note"])
	assert.Equal(t, "dup ma***@example.com", entry["err"])
	assert.NotContains(t, entry, "")
	assert.Contains(t, entry, "ts")
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Format: FormatText, Output: &buf})

	l.Info("hidden", nil)
	assert.Zero(t, buf.Len())

	l.Warn("shown", map[string]any{"k": "v"})
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=v")
}

func TestParseLevelAndFormat(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel(" DEBUG "))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel("nope"))
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatText, ParseFormat(""))
}
