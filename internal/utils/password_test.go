package utils_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmuju/bank_portal_app/internal/apperrors"
	"github.com/kmuju/bank_portal_app/internal/utils"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := utils.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse battery staple", hash)
	assert.True(t, utils.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, utils.CheckPasswordHash("wrong password", hash))
}

func TestHashPasswordRejectsOverlongInput(t *testing.T) {
	_, err := utils.HashPassword(strings.Repeat("x", 73))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
