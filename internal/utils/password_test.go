package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("p1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "p1", hash)

	assert.True(t, CheckPasswordHash("p1", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
	assert.False(t, CheckPasswordHash("p1", "not-a-hash"))
}

func TestHashPasswordIsSalted(t *testing.T) {
	first, err := HashPassword("p1")
	require.NoError(t, err)
	second, err := HashPassword("p1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash("p1", first))
	assert.True(t, CheckPasswordHash("p1", second))
}
