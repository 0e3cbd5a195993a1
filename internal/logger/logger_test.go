package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/b3/b3t/internal/config/data"
)

func TestParseLevel(t *testing.T) {
	uu := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		" WARN ":  logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"bozo":    logrus.InfoLevel,
		"":        logrus.InfoLevel,
	}

	for k, e := range uu {
		assert.Equal(t, e, ParseLevel(k), k)
	}
}

func TestInitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "b3t.log")
	l, err := Init(data.Logger{Level: "debug", File: path, MaxSize: 1})
	require.NoError(t, err)
	defer func() { require.NoError(t, Close()) }()

	l.WithField("rows", 3).Debug("fetched list")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "fetched list")
	assert.Contains(t, string(raw), "rows=3")
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
}

func TestInitNoFile(t *testing.T) {
	l, err := Init(data.Logger{Level: "error"})
	require.NoError(t, err)

	assert.Equal(t, logrus.ErrorLevel, l.GetLevel())
	assert.NoError(t, Close())
}
