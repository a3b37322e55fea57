package session_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/mess-service/internal/session"
)

func TestCreateAndResolve(t *testing.T) {
	registry := session.NewRegistry()

	token, err := registry.Create("PASS000001")
	require.NoError(t, err)
	assert.Len(t, token, 32) // 16 random bytes, hex encoded

	messPass, ok := registry.Resolve(token)
	assert.True(t, ok)
	assert.Equal(t, "PASS000001", messPass)
}

func TestUnknownTokenResolvesToNothing(t *testing.T) {
	registry := session.NewRegistry()

	_, ok := registry.Resolve("never-issued")
	assert.False(t, ok)

	_, ok = registry.Resolve("")
	assert.False(t, ok)
}

func TestDestroyedTokenResolvesToNothing(t *testing.T) {
	registry := session.NewRegistry()

	token, err := registry.Create("PASS000001")
	require.NoError(t, err)

	registry.Destroy(token)
	_, ok := registry.Resolve(token)
	assert.False(t, ok)

	// Destroying again, or destroying a token that never existed, is a no-op.
	registry.Destroy(token)
	registry.Destroy("never-issued")
	assert.Equal(t, 0, registry.Len())
}

func TestSameMessPassMayHoldMultipleSessions(t *testing.T) {
	registry := session.NewRegistry()

	first, err := registry.Create("PASS000001")
	require.NoError(t, err)
	second, err := registry.Create("PASS000001")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, registry.Len())
}

func TestConcurrentAccess(t *testing.T) {
	registry := session.NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, err := registry.Create("PASS000001")
			assert.NoError(t, err)
			_, ok := registry.Resolve(token)
			assert.True(t, ok)
			registry.Destroy(token)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, registry.Len())
}
