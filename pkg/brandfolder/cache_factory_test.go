package brandfolder_test

import (
	"context"
	"testing"
	"time"

	"github.com/orientier/brandfolder-go/pkg/brandfolder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCacheFromConfig_Defaults(t *testing.T) {
	t.Parallel()

	cache, err := brandfolder.NewCacheFromConfig(nil)
	require.NoError(t, err)
	assert.IsType(t, &brandfolder.MemoryCache{}, cache)
}

func TestNewCacheFromConfig_Memory(t *testing.T) {
	t.Parallel()

	cache, err := brandfolder.NewCacheFromConfig(&brandfolder.CacheConfig{
		Type:   brandfolder.CacheTypeMemory,
		Memory: &brandfolder.MemoryCacheConfig{MaxSize: 5},
	})
	require.NoError(t, err)
	assert.IsType(t, &brandfolder.MemoryCache{}, cache)
}

func TestNewCacheFromConfig_None(t *testing.T) {
	t.Parallel()

	cache, err := brandfolder.NewCacheFromConfig(&brandfolder.CacheConfig{
		Type: brandfolder.CacheTypeNone,
	})
	require.NoError(t, err)
	assert.IsType(t, &brandfolder.NoOpCache{}, cache)
}

func TestNewCacheFromConfig_NATSRequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := brandfolder.NewCacheFromConfig(&brandfolder.CacheConfig{
		Type: brandfolder.CacheTypeNATS,
	})
	require.ErrorIs(t, err, brandfolder.ErrNATSConfigRequired)
}

func TestNewCacheFromConfig_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := brandfolder.NewCacheFromConfig(&brandfolder.CacheConfig{
		Type: brandfolder.CacheType("redis"),
	})
	require.ErrorIs(t, err, brandfolder.ErrUnsupportedCacheType)
}

func TestNoOpCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := brandfolder.NewNoOpCache()

	require.NoError(t, cache.Set(ctx, "key", &brandfolder.CacheEntry{Data: []byte("value")}))

	_, err := cache.Get(ctx, "key")
	require.ErrorIs(t, err, brandfolder.ErrCacheDisabled)
	assert.False(t, cache.Has(ctx, "key"))
}

func TestCacheChain_BackfillsOnHit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l1 := brandfolder.NewMemoryCache(10)
	l2 := brandfolder.NewMemoryCache(10)
	chain := brandfolder.NewCacheChain(l1, l2)

	stored := &brandfolder.CacheEntry{
		Data:      []byte("shared"),
		ExpiresAt: time.Now().Add(time.Minute),
	}
	require.NoError(t, l2.Set(ctx, "lookup", stored))

	got, err := chain.Get(ctx, "lookup")
	require.NoError(t, err)
	assert.Equal(t, []byte("shared"), got.Data)

	// The hit in L2 back-filled L1
	assert.True(t, l1.Has(ctx, "lookup"))
}

func TestCacheChain_Miss(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	chain := brandfolder.NewCacheChain(brandfolder.NewMemoryCache(10))

	_, err := chain.Get(ctx, "absent")
	require.ErrorIs(t, err, brandfolder.ErrKeyNotFoundInAnyCache)
}

func TestCacheChain_SetAndDeleteFanOut(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	l1 := brandfolder.NewMemoryCache(10)
	l2 := brandfolder.NewMemoryCache(10)
	chain := brandfolder.NewCacheChain(l1, l2)

	stored := &brandfolder.CacheEntry{
		Data:      []byte("value"),
		ExpiresAt: time.Now().Add(time.Minute),
	}
	require.NoError(t, chain.Set(ctx, "key", stored))
	assert.True(t, l1.Has(ctx, "key"))
	assert.True(t, l2.Has(ctx, "key"))

	require.NoError(t, chain.Delete(ctx, "key"))
	assert.False(t, chain.Has(ctx, "key"))
}
