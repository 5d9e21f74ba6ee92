package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	logger := NewLogger("Session").With(logrus.Fields{"peer": "127.0.0.1:1"})
	logger.Warn("received")
	require.Contains(t, buf.String(), "name=Session")
	require.Contains(t, buf.String(), "peer=\"127.0.0.1:1\"")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel("warning")

	require.NoError(t, SetLevel("error"))
	NewLogger("Level").Warn("hidden")
	require.Empty(t, buf.String())

	require.Error(t, SetLevel("loud"))
}

func TestAddTracer(t *testing.T) {
	SetOutput(&bytes.Buffer{})
	defer SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "bitguard")
	AddTracer(path)
	NewLogger("Tracer").Warn("traced")

	data, err := os.ReadFile(path + ".warn")
	require.NoError(t, err)
	require.Contains(t, string(data), "traced")
	require.Contains(t, string(data), "\"name\":\"Tracer\"")
}
