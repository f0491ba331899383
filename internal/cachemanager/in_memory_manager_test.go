package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewInMemoryCacheManager(t *testing.T) {
	require.NotPanics(t, func() {
		NewInMemoryCacheManager[string, string]("test", DefaultExpiration, DefaultCleanupInterval)
	})
}

type exampleArtifact struct {
	ID    string
	Title string
}

func TestInMemoryCacheManager_GetExistingValue_StructType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, exampleArtifact]("viewer-preload", DefaultExpiration, DefaultCleanupInterval)
	example := exampleArtifact{
		ID:    "a1",
		Title: "misty harbor",
	}
	cache.Set(context.Background(), "artifact:a1", example, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "artifact:a1")
	require.True(t, ok)
	require.Equal(t, example, got)
}

func TestInMemoryCacheManager_GetExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("viewer-preload", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "artifact:a1", "misty harbor", DefaultExpiration)

	got, ok := cache.Get(context.Background(), "artifact:a1")
	require.True(t, ok)
	require.Equal(t, "misty harbor", got)
}

func TestInMemoryCacheManager_GetWithNoExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("viewer-preload", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.Get(context.Background(), "artifact:a1")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetWithExistingInvalidValueType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("viewer-preload", DefaultExpiration, DefaultCleanupInterval)

	cache.cache.Set("artifact:a1", 123, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "artifact:a1")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_GetWithRefresh_WithNoExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("viewer-preload", DefaultExpiration, DefaultCleanupInterval)

	got, ok := cache.GetWithRefresh(context.Background(), "artifact:a1", time.Minute*60)
	require.False(t, ok)
	require.Equal(t, "", got)
}

func TestInMemoryCacheManager_GetWithRefresh_WithExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("viewer-preload", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "artifact:a1", "misty harbor", DefaultExpiration)

	got, ok := cache.GetWithRefresh(context.Background(), "artifact:a1", time.Minute*60)
	require.True(t, ok)
	require.Equal(t, "misty harbor", got)
}

func TestInMemoryCacheManager_DeleteWithNoKeysDoesNothing(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("viewer-preload", DefaultExpiration, DefaultCleanupInterval)

	err := cache.Delete(context.Background())
	require.NoError(t, err)
}

func TestInMemoryCacheManager_DeleteExistingValue(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("viewer-preload", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "artifact:a1", "misty harbor", DefaultExpiration)

	err := cache.Delete(context.Background(), "artifact:a1")
	require.NoError(t, err)

	got, ok := cache.Get(context.Background(), "artifact:a1")
	require.False(t, ok)
	require.Equal(t, "", got)
}

func TestInMemoryCacheManager_Flush(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("viewer-preload", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "artifact:a1", "misty harbor", DefaultExpiration)
	cache.Set(context.Background(), "artifact:a2", "sunlit ridge", DefaultExpiration)

	err := cache.Flush(context.Background())
	require.NoError(t, err)

	_, ok := cache.Get(context.Background(), "artifact:a1")
	require.False(t, ok)
	_, ok = cache.Get(context.Background(), "artifact:a2")
	require.False(t, ok)
}
