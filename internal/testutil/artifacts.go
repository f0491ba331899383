// Package testutil provides artifact fixtures for component tests.
package testutil

import (
	"fmt"
	"time"

	"github.com/bendavieshe3/art-factory-sub001/internal/artifact"
)

var baseTime = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

// Option mutates an artifact under construction.
type Option func(*artifact.Artifact)

// Title sets the artifact title.
func Title(title string) Option {
	return func(a *artifact.Artifact) { a.Title = title }
}

// Prompt sets the generation prompt.
func Prompt(prompt string) Option {
	return func(a *artifact.Artifact) { a.Prompt = prompt }
}

// Provider sets the provider name.
func Provider(provider string) Option {
	return func(a *artifact.Artifact) { a.Provider = provider }
}

// ModelName sets the generation model.
func ModelName(model string) Option {
	return func(a *artifact.Artifact) { a.Model = model }
}

// Size sets the pixel dimensions.
func Size(w, h int) Option {
	return func(a *artifact.Artifact) { a.Width, a.Height = w, h }
}

// Favorite marks the artifact as a favorite.
func Favorite() Option {
	return func(a *artifact.Artifact) { a.Favorite = true }
}

// CreatedAt sets the creation instant.
func CreatedAt(ts time.Time) Option {
	return func(a *artifact.Artifact) { a.CreatedAt = ts }
}

// Param sets one generation parameter.
func Param(key string, value any) Option {
	return func(a *artifact.Artifact) {
		if a.Params == nil {
			a.Params = make(map[string]any)
		}
		a.Params[key] = value
	}
}

// OrderID sets the originating order.
func OrderID(id string) Option {
	return func(a *artifact.Artifact) { a.OrderID = id }
}

// NewArtifact builds a populated artifact with the given ID.
func NewArtifact(id string, opts ...Option) artifact.Artifact {
	a := artifact.Artifact{
		ID:        id,
		Title:     id,
		Prompt:    "a quiet mountain lake at dawn",
		Provider:  "fal.ai",
		Model:     "flux-dev",
		Width:     1024,
		Height:    768,
		FileURL:   "https://files.example.com/" + id + ".png",
		CreatedAt: baseTime,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Artifacts builds n artifacts with distinct IDs and ascending
// creation times.
func Artifacts(n int) []artifact.Artifact {
	items := make([]artifact.Artifact, n)
	for i := range items {
		items[i] = NewArtifact(
			fmt.Sprintf("art-%03d", i+1),
			Title(fmt.Sprintf("Artifact %03d", i+1)),
			CreatedAt(baseTime.Add(time.Duration(i)*time.Minute)),
		)
	}
	return items
}
