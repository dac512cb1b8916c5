package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("umpire")
	require.NoError(t, err)

	assert.NotEqual(t, "umpire", hash)
	assert.True(t, CheckPassword(hash, "umpire"))
	assert.False(t, CheckPassword(hash, "Umpire"))
	assert.False(t, CheckPassword("not-a-hash", "umpire"))
}
