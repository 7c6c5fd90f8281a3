package internal

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLeveledLogrusFields(t *testing.T) {
	l := NewLeveledLogrus(logrus.New())

	fields := l.fields("method", "POST", "url", "http://nlp/entities", 42, "dropped", "dangling")

	assert.Equal(t, logrus.Fields{
		"method": "POST",
		"url":    "http://nlp/entities",
	}, fields)
}

func TestLeveledLogrusWarnIsDebug(t *testing.T) {
	base := logrus.New()
	var buf bytes.Buffer
	base.Out = &buf
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	base.SetLevel(logrus.InfoLevel)

	l := NewLeveledLogrus(base)
	l.Warn("retrying request", "attempt", 1)
	assert.Empty(t, buf.String())

	l.Info("request done", "status", 200)
	assert.Contains(t, buf.String(), "request done")
	assert.Contains(t, buf.String(), "status=200")
}

func TestGetLoggerSingleton(t *testing.T) {
	assert.Same(t, GetLogger(), GetLogger())

	SetLogLevel(logrus.DebugLevel)
	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())
	SetLogLevel(logrus.InfoLevel)
}
