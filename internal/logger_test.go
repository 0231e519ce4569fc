package internal

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetLogFormat(t *testing.T) {
	t.Cleanup(func() { SetLogFormat(LogFormatText) })

	SetLogFormat(LogFormatJSON)
	assert.IsType(t, &logrus.JSONFormatter{}, GetLogger().Formatter)

	SetLogFormat("unknown")
	assert.IsType(t, &logrus.TextFormatter{}, GetLogger().Formatter)
}

func TestLeveledLogrusFields(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.Out = &buf
	logger.SetFormatter(&logrus.JSONFormatter{})

	NewLeveledLogrus(logger).Warn("retrying", "url", "/api/0/projects/", "attempt", 2, "dangling")

	out := buf.String()
	assert.Contains(t, out, `"msg":"retrying"`)
	assert.Contains(t, out, `"url":"/api/0/projects/"`)
	assert.Contains(t, out, `"attempt":2`)
	assert.NotContains(t, out, "dangling")
}
