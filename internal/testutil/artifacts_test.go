package testutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewArtifact_Defaults(t *testing.T) {
	a := NewArtifact("art-1")
	require.Equal(t, "art-1", a.ID)
	require.Equal(t, "art-1", a.Title) // default title is ID
	require.Equal(t, "fal.ai", a.Provider)
	require.NotEmpty(t, a.FileURL)
	require.False(t, a.Favorite)
}

func TestNewArtifact_Options(t *testing.T) {
	ts := time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC)
	a := NewArtifact("art-2",
		Title("Neon Alley"),
		Provider("replicate"),
		ModelName("sdxl"),
		Size(512, 512),
		Favorite(),
		CreatedAt(ts),
		Param("steps", 30),
		OrderID("ord-7"),
	)
	require.Equal(t, "Neon Alley", a.Title)
	require.Equal(t, "replicate", a.Provider)
	require.Equal(t, "sdxl", a.Model)
	require.Equal(t, 512, a.Width)
	require.True(t, a.Favorite)
	require.Equal(t, ts, a.CreatedAt)
	require.Equal(t, 30, a.Params["steps"])
	require.Equal(t, "ord-7", a.OrderID)
}

func TestArtifacts_DistinctIDsAscendingTimes(t *testing.T) {
	items := Artifacts(5)
	require.Len(t, items, 5)
	seen := make(map[string]struct{})
	for i, a := range items {
		_, dup := seen[a.ID]
		require.False(t, dup, "duplicate ID %s", a.ID)
		seen[a.ID] = struct{}{}
		if i > 0 {
			require.True(t, a.CreatedAt.After(items[i-1].CreatedAt))
		}
	}
}
