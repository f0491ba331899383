package history

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestStack_BackOnEmpty(t *testing.T) {
	var s Stack
	_, ok := s.Back()
	require.False(t, ok)
}

func TestStack_BackNeedsTwoEntries(t *testing.T) {
	var s Stack
	s.Push(Entry{Route: RouteGallery})

	_, ok := s.Back()
	require.False(t, ok)
	require.Equal(t, 1, s.Depth())
}

func TestStack_PushThenBack(t *testing.T) {
	var s Stack
	s.Push(Entry{Route: RouteGallery})
	s.Push(Entry{Route: RouteViewer, Param: "a1"})

	got, ok := s.Back()
	require.True(t, ok)
	require.Equal(t, Entry{Route: RouteGallery}, got)
	require.Equal(t, 1, s.Depth())
}

func TestStack_ReplaceKeepsDepth(t *testing.T) {
	var s Stack
	s.Push(Entry{Route: RouteGallery})
	s.Push(Entry{Route: RouteViewer, Param: "a1"})

	// Stepping through neighbors replaces the viewer entry in place.
	s.Replace(Entry{Route: RouteViewer, Param: "a2"})
	s.Replace(Entry{Route: RouteViewer, Param: "a3"})
	require.Equal(t, 2, s.Depth())

	got, ok := s.Back()
	require.True(t, ok)
	require.Equal(t, Entry{Route: RouteGallery}, got)
}

func TestStack_ReplaceOnEmptyPushes(t *testing.T) {
	var s Stack
	s.Replace(Entry{Route: RouteGallery})
	require.Equal(t, 1, s.Depth())

	cur, ok := s.Current()
	require.True(t, ok)
	require.Equal(t, RouteGallery, cur.Route)
}

func TestStack_CurrentTracksTop(t *testing.T) {
	var s Stack
	_, ok := s.Current()
	require.False(t, ok)

	s.Push(Entry{Route: RouteGallery})
	s.Push(Entry{Route: RouteViewer, Param: "a1"})

	cur, ok := s.Current()
	require.True(t, ok)
	require.Equal(t, "a1", cur.Param)
}

func TestStack_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		var s Stack
		model := []Entry{}

		ops := rapid.SliceOf(rapid.IntRange(0, 2)).Draw(t, "ops")
		for i, op := range ops {
			e := Entry{Route: RouteViewer, Param: rapid.StringMatching(`a[0-9]`).Draw(t, "param")}
			switch op {
			case 0:
				s.Push(e)
				model = append(model, e)
			case 1:
				s.Replace(e)
				if len(model) == 0 {
					model = append(model, e)
				} else {
					model[len(model)-1] = e
				}
			case 2:
				got, ok := s.Back()
				if len(model) < 2 {
					if ok {
						t.Fatalf("op %d: Back succeeded on depth %d", i, len(model))
					}
				} else {
					model = model[:len(model)-1]
					if !ok || got != model[len(model)-1] {
						t.Fatalf("op %d: Back returned %+v ok=%v, want %+v", i, got, ok, model[len(model)-1])
					}
				}
			}

			if s.Depth() != len(model) {
				t.Fatalf("op %d: depth %d, want %d", i, s.Depth(), len(model))
			}
		}
	})
}
