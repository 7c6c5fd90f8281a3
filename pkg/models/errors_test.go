package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type brokenCollaborator struct{ err error }

func (b brokenCollaborator) StartupError() error { return b.err }

func TestUnavailableError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &UnavailableError{Sentinel: ErrBackendUnavailable, Cause: cause}

	assert.ErrorIs(t, err, ErrBackendUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrDatasetUnavailable)
	assert.Equal(t, "NLP backend not available: connection refused", err.Error())

	bare := &UnavailableError{Sentinel: ErrDatasetUnavailable}
	assert.ErrorIs(t, bare, ErrDatasetUnavailable)
	assert.Equal(t, "dataset not loaded", bare.Error())
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("article 42")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "article 42 not found", err.Error())
}

func TestStartupError(t *testing.T) {
	assert.NoError(t, StartupError(struct{}{}))
	assert.NoError(t, StartupError(nil))
	assert.NoError(t, StartupError(brokenCollaborator{}))

	err := errors.New("boom")
	assert.Equal(t, err, StartupError(brokenCollaborator{err: err}))
}
