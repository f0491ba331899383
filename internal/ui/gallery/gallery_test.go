package gallery

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/bendavieshe3/art-factory-sub001/internal/artifact"
	"github.com/bendavieshe3/art-factory-sub001/internal/config"
	"github.com/bendavieshe3/art-factory-sub001/internal/pubsub"
)

// TestMain initializes the global zone manager for all tests in this package.
func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

func newTestModel() Model {
	return New(nil, nil, config.Defaults())
}

func testArtifacts(n int) []artifact.Artifact {
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	items := make([]artifact.Artifact, n)
	for i := range items {
		items[i] = artifact.Artifact{
			ID:        "art-" + string(rune('a'+i)),
			Title:     "Artifact " + string(rune('A'+i)),
			Provider:  "fal.ai",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
	}
	return items
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestLoadArtifacts_ReplacesAndResetsCursor(t *testing.T) {
	m := newTestModel().LoadArtifacts(testArtifacts(5))
	m = m.moveCursor(3)
	require.Equal(t, 3, m.cursor)

	m = m.LoadArtifacts(testArtifacts(2))
	require.Len(t, m.Artifacts(), 2)
	require.Equal(t, 0, m.cursor)
}

func TestAddArtifact_AppendsByDefault(t *testing.T) {
	m := newTestModel().LoadArtifacts(testArtifacts(2))
	m = m.AddArtifact(artifact.Artifact{ID: "fresh", CreatedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)}, false)
	require.Equal(t, "fresh", m.Artifacts()[2].ID)
	require.Len(t, m.Artifacts(), 3)
}

func TestAddArtifact_PrependLeadsCollection(t *testing.T) {
	m := newTestModel().LoadArtifacts(testArtifacts(2))
	m = m.AddArtifact(artifact.Artifact{ID: "fresh", CreatedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)}, true)
	require.Equal(t, "fresh", m.Artifacts()[0].ID)
	require.Len(t, m.Artifacts(), 3)
}

func TestRemoveArtifact_UnknownIDIsNoOp(t *testing.T) {
	m := newTestModel().LoadArtifacts(testArtifacts(3))
	m = m.RemoveArtifact("does-not-exist")
	require.Len(t, m.Artifacts(), 3)
}

func TestRemoveArtifact_EvictsSelection(t *testing.T) {
	m := newTestModel().LoadArtifacts(testArtifacts(3))
	m = m.toggleSelected("art-a")
	m = m.toggleSelected("art-b")
	require.Len(t, m.SelectedIDs(), 2)

	m = m.RemoveArtifact("art-a")
	require.Equal(t, []string{"art-b"}, m.SelectedIDs())
}

func TestSelectAll_FilteredSubsetOnly(t *testing.T) {
	items := testArtifacts(3)
	items[0].Provider = "replicate"
	m := newTestModel().LoadArtifacts(items)

	m.filters["provider"] = "fal"
	m = m.rebuild()
	require.Len(t, m.Visible(), 2)

	m = m.SelectAll()
	require.Len(t, m.SelectedIDs(), 2, "hidden artifacts must not be selected")

	// Clearing the filter reveals the third artifact, still unselected.
	delete(m.filters, "provider")
	m = m.rebuild()
	require.Len(t, m.Visible(), 3)
	require.Len(t, m.SelectedIDs(), 2)
}

func TestDeselectAll_FilteredSubsetOnly(t *testing.T) {
	items := testArtifacts(3)
	m := newTestModel().LoadArtifacts(items)
	m = m.SelectAll()
	require.Len(t, m.SelectedIDs(), 3)

	m.filters["title"] = "Artifact A"
	m = m.rebuild()
	m = m.DeselectAll()

	delete(m.filters, "title")
	m = m.rebuild()
	require.Len(t, m.SelectedIDs(), 2, "deselect must only touch the visible subset")
}

func TestCursorNavigation_GridMovement(t *testing.T) {
	m := newTestModel().LoadArtifacts(testArtifacts(6))
	require.Equal(t, 3, m.columns)

	m, _ = m.handleGridKey(keyMsg("l"))
	require.Equal(t, 1, m.cursor)
	m, _ = m.handleGridKey(keyMsg("j"))
	require.Equal(t, 4, m.cursor)
	m, _ = m.handleGridKey(keyMsg("k"))
	require.Equal(t, 1, m.cursor)
	m, _ = m.handleGridKey(keyMsg("h"))
	require.Equal(t, 0, m.cursor)
}

func TestCursorNavigation_ClampsAtBounds(t *testing.T) {
	m := newTestModel().LoadArtifacts(testArtifacts(2))
	m, _ = m.handleGridKey(keyMsg("h"))
	require.Equal(t, 0, m.cursor)
	m, _ = m.handleGridKey(keyMsg("j"))
	require.Equal(t, 0, m.cursor, "moving past the last row stays put")
}

func TestDeleteKey_EmitsRequestWithoutRemoving(t *testing.T) {
	m := newTestModel().LoadArtifacts(testArtifacts(3))
	m = m.toggleSelected("art-a")
	m = m.toggleSelected("art-c")

	m, cmd := m.handleGridKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'D'}})
	require.NotNil(t, cmd)
	msg := cmd()
	req, ok := msg.(DeleteRequestMsg)
	require.True(t, ok)
	require.ElementsMatch(t, []string{"art-a", "art-c"}, req.IDs)
	require.Len(t, m.Artifacts(), 3, "nothing removed before API confirmation")
}

func TestDeleteKey_FallsBackToCursor(t *testing.T) {
	m := newTestModel().LoadArtifacts(testArtifacts(2))
	_, cmd := m.handleGridKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'D'}})
	require.NotNil(t, cmd)
	req := cmd().(DeleteRequestMsg)
	require.Len(t, req.IDs, 1)
}

func TestDeletedMsg_FailureLeavesStateUntouched(t *testing.T) {
	m := newTestModel().LoadArtifacts(testArtifacts(3))
	m = m.toggleSelected("art-a")

	m, _ = m.Update(deletedMsg{ids: []string{"art-a"}, err: os.ErrDeadlineExceeded})
	require.Len(t, m.Artifacts(), 3)
	require.Equal(t, []string{"art-a"}, m.SelectedIDs())
}

func TestDeletedMsg_FailurePublishesSingleEvent(t *testing.T) {
	broker := pubsub.NewBroker[pubsub.Payload]()
	defer broker.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch := broker.Subscribe(ctx)

	m := New(nil, broker, config.Defaults()).LoadArtifacts(testArtifacts(3))
	m = m.toggleSelected("art-a")
	m, _ = m.Update(deletedMsg{ids: []string{"art-a", "art-b"}, err: errors.New("2 of 3 deletions failed")})
	require.Len(t, m.Artifacts(), 3)

	ev := <-ch
	require.Equal(t, pubsub.EventActionFailed, ev.Type)
	fail, ok := ev.Payload.(pubsub.ActionFailed)
	require.True(t, ok)
	require.Equal(t, "delete", fail.Action)
	require.Equal(t, "2 of 3 deletions failed", fail.Message, "the backend message passes through verbatim")

	select {
	case extra := <-ch:
		t.Fatalf("unexpected second event: %v", extra.Type)
	default:
	}
}

func TestDeletedMsg_SuccessRemovesAndEvicts(t *testing.T) {
	m := newTestModel().LoadArtifacts(testArtifacts(3))
	m = m.toggleSelected("art-a")

	m, _ = m.Update(deletedMsg{ids: []string{"art-a"}})
	require.Len(t, m.Artifacts(), 2)
	require.Empty(t, m.SelectedIDs())
}

func TestDownloadCmd_EmptySelectionIsNoOp(t *testing.T) {
	m := newTestModel()
	require.Nil(t, m.downloadCmd(nil))
}

func TestFavoriteMsg_UpdatesArtifact(t *testing.T) {
	m := newTestModel().LoadArtifacts(testArtifacts(2))
	m, _ = m.Update(favoriteMsg{id: "art-a", fav: true})
	for _, a := range m.Artifacts() {
		if a.ID == "art-a" {
			require.True(t, a.Favorite)
		}
	}
}

func TestOpenKey_EmitsOpenViewer(t *testing.T) {
	m := newTestModel().LoadArtifacts(testArtifacts(2))
	_, cmd := m.handleGridKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	open, ok := cmd().(OpenViewerMsg)
	require.True(t, ok)
	require.NotEmpty(t, open.ArtifactID)
}

func TestFilterEntry_AppliesAndClears(t *testing.T) {
	items := testArtifacts(3)
	items[0].Provider = "replicate"
	m := newTestModel().LoadArtifacts(items)

	m, _ = m.handleGridKey(keyMsg("/"))
	require.True(t, m.Filtering())

	m.filterInput.SetValue("provider=replicate")
	m, _ = m.handleFilterKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.Filtering())
	require.Len(t, m.Visible(), 1)

	m, _ = m.handleGridKey(keyMsg("/"))
	m.filterInput.SetValue("provider=")
	m, _ = m.handleFilterKey(tea.KeyMsg{Type: tea.KeyEnter})
	require.Len(t, m.Visible(), 3, "empty value clears the field filter")
}

func TestFilterEntry_EscCancels(t *testing.T) {
	m := newTestModel().LoadArtifacts(testArtifacts(2))
	m, _ = m.handleGridKey(keyMsg("/"))
	m.filterInput.SetValue("provider=nope")
	m, _ = m.handleFilterKey(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.Filtering())
	require.Len(t, m.Visible(), 2)
}

func TestCycleSort(t *testing.T) {
	m := newTestModel().LoadArtifacts(testArtifacts(2))
	require.Equal(t, "created_at", m.sortField)
	m = m.cycleSort()
	require.Equal(t, "title", m.sortField)
	for range sortFields {
		m = m.cycleSort()
	}
	require.Equal(t, "title", m.sortField, "cycling wraps around")
}

func TestView_EmptyState(t *testing.T) {
	m := newTestModel().LoadArtifacts(nil)
	require.Contains(t, m.View(), "No artifacts yet")

	m.filters["provider"] = "nope"
	m = m.rebuild()
	require.Contains(t, m.View(), "match the active filters")
}

func TestView_StatusLineCounts(t *testing.T) {
	items := testArtifacts(3)
	items[0].Provider = "replicate"
	m := newTestModel().LoadArtifacts(items)
	require.Contains(t, m.View(), "3 artifacts")

	m.filters["provider"] = "fal"
	m = m.rebuild()
	require.Contains(t, m.View(), "2 of 3 artifacts")
}

// Selection stays a subset of loaded IDs across arbitrary operation
// sequences.
func TestSelectionSubsetInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := newTestModel().LoadArtifacts(testArtifacts(5))
		ids := []string{"art-a", "art-b", "art-c", "art-d", "art-e", "ghost"}

		ops := rapid.SliceOfN(rapid.IntRange(0, 3), 0, 40).Draw(t, "ops")
		for _, op := range ops {
			switch op {
			case 0:
				m = m.toggleSelected(rapid.SampledFrom(ids[:5]).Draw(t, "sel"))
			case 1:
				m = m.RemoveArtifact(rapid.SampledFrom(ids).Draw(t, "rm"))
			case 2:
				m = m.SelectAll()
			case 3:
				m = m.DeselectAll()
			}

			loaded := make(map[string]struct{})
			for _, a := range m.Artifacts() {
				loaded[a.ID] = struct{}{}
			}
			for _, id := range m.SelectedIDs() {
				if _, ok := loaded[id]; !ok {
					t.Fatalf("selected %q not loaded", id)
				}
			}
		}
	})
}
