package toaster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	m := New()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow(t *testing.T) {
	m := New().Show("Hello", StyleSuccess)

	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "Hello")
}

func TestHide(t *testing.T) {
	m := New().Show("Hello", StyleSuccess).Hide()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShow_ReplacesExisting(t *testing.T) {
	m := New().
		Show("First", StyleSuccess).
		Show("Second", StyleError)

	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "Second")
	assert.NotContains(t, m.View(), "First")
}

func TestView_EmptyWhenNotVisible(t *testing.T) {
	m := New()

	assert.Empty(t, m.View())
}

func TestView_EmptyWhenMessageEmpty(t *testing.T) {
	m := Model{visible: true, message: ""}

	assert.Empty(t, m.View())
}

func TestView_StyleEmoji(t *testing.T) {
	tests := []struct {
		name  string
		style Style
		emoji string
	}{
		{"success", StyleSuccess, "✅"},
		{"error", StyleError, "❌"},
		{"info", StyleInfo, "ℹ️"},
		{"warn", StyleWarn, "⚠️"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := New().Show("msg", tt.style).View()
			assert.Contains(t, view, tt.emoji)
			assert.Contains(t, view, "msg")
		})
	}
}

func TestUpdate_DismissCurrentToast(t *testing.T) {
	m := New().Show("Hello", StyleSuccess)

	m = m.Update(DismissMsg{Seq: m.seq})

	assert.False(t, m.Visible())
}

func TestUpdate_StaleDismissIgnored(t *testing.T) {
	m := New().Show("First", StyleSuccess)
	staleSeq := m.seq

	// A newer toast arrives before the first one's dismiss fires.
	m = m.Show("Second", StyleInfo)
	m = m.Update(DismissMsg{Seq: staleSeq})

	assert.True(t, m.Visible())
	assert.Contains(t, m.View(), "Second")
}

func TestScheduleDismiss_ReturnsCmd(t *testing.T) {
	m := New().Show("Hello", StyleSuccess)

	cmd := m.ScheduleDismiss(0)
	assert.NotNil(t, cmd)
}

func TestOverlay_NotVisiblePassesThrough(t *testing.T) {
	bg := "background\ncontent"
	m := New()

	assert.Equal(t, bg, m.Overlay(bg, 20, 5))
}

func TestOverlay_PlacesToastNearBottom(t *testing.T) {
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 30)+"\n", 10), "\n")
	m := New().Show("Saved", StyleSuccess)

	out := m.Overlay(bg, 30, 10)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 10)
	// The toast is a 3-line bordered box padded one row from the bottom.
	assert.Contains(t, strings.Join(lines[6:9], "\n"), "Saved")
	assert.Equal(t, strings.Repeat(".", 30), lines[9])
}
