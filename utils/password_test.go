package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAdminSecretPlain(t *testing.T) {
	assert.True(t, VerifyAdminSecret("hunter2", "hunter2"))
	assert.False(t, VerifyAdminSecret("hunter2", "wrong"))
}

func TestVerifyAdminSecretHashed(t *testing.T) {
	encoded, err := HashSecret("hunter2")
	require.NoError(t, err)

	assert.True(t, VerifyAdminSecret(encoded, "hunter2"))
	assert.False(t, VerifyAdminSecret(encoded, "wrong"))
}

func TestVerifyAdminSecretUnconfigured(t *testing.T) {
	assert.False(t, VerifyAdminSecret("", ""))
	assert.False(t, VerifyAdminSecret("", "anything"))
}
