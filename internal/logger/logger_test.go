package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")
	w := Setup(file, "warn")
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
	})

	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	logrus.WithField("booking_id", "b1").Warn("Booking event dropped")
	_, err := w.Write([]byte("GET /healthz 200\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "booking_id=b1")
	assert.Contains(t, string(data), "GET /healthz 200")
}

func TestSetupFallsBackToDebug(t *testing.T) {
	Setup(filepath.Join(t.TempDir(), "app.log"), "loud")
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.InfoLevel)
	})
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.NotNil(t, GormLogger())
}
