package cart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateIsStable(t *testing.T) {
	storage := newMemStorage()
	identity := NewIdentity(storage)

	first, err := identity.GetOrCreate()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(first, "guest_"))
	assert.Len(t, first, len("guest_")+32)

	second, err := identity.GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// a new provider over the same storage sees the same id
	again, err := NewIdentity(storage).GetOrCreate()
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestGetOrCreateDistinctScopes(t *testing.T) {
	a, err := NewIdentity(newMemStorage()).GetOrCreate()
	require.NoError(t, err)
	b, err := NewIdentity(newMemStorage()).GetOrCreate()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
