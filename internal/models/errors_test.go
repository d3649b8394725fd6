package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolutionError(t *testing.T) {
	cause := errors.New("boom")
	err := NewResolutionError("java.sql.Blob", "not present on the typedef classpath", cause)

	assert.Equal(t, ResolutionErrorCode, err.Code())
	assert.Equal(t,
		"ResolutionError: cannot resolve java.sql.Blob: not present on the typedef classpath: boom",
		err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestSynthesisError(t *testing.T) {
	err := NewSynthesisError("pool.HikariConnection", "close()", "signature planned twice", nil)

	assert.Equal(t, SynthesisErrorCode, err.Code())
	assert.Equal(t, "SynthesisError: pool.HikariConnection.close(): signature planned twice", err.Error())
}

func TestPersistenceError(t *testing.T) {
	cause := errors.New("permission denied")
	err := NewPersistenceError("/out/target/classes", cause)

	assert.Equal(t, PersistenceErrorCode, err.Code())
	assert.Equal(t, "PersistenceError: cannot write /out/target/classes: permission denied", err.Error())
	require.ErrorIs(t, err, cause)
}
