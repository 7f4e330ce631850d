package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew_QuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)

	logger.Debug("probing version")
	assert.Empty(t, buf.String())

	logger.Warn("catalog missing")
	assert.Contains(t, buf.String(), "catalog missing")
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)

	logger.WithField("command", "eat").Debug("dispatching")
	out := buf.String()
	assert.Contains(t, out, "level=debug")
	assert.Contains(t, out, "command=eat")
	assert.NotContains(t, out, "time=")
}

func TestSetVerbose(t *testing.T) {
	logger := New(&bytes.Buffer{}, false)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	SetVerbose(logger, true)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	SetVerbose(logger, false)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.NotPanics(t, func() { logger.Error("ignored") })
}
