package help

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelp_New(t *testing.T) {
	m := New()
	assert.Equal(t, ModeGallery, m.mode, "expected gallery mode by default")

	v := NewViewer()
	assert.Equal(t, ModeViewer, v.mode, "expected viewer mode")
}

func TestHelp_SetSize(t *testing.T) {
	m := New().SetSize(120, 40)

	assert.Equal(t, 120, m.width, "expected width to be 120")
	assert.Equal(t, 40, m.height, "expected height to be 40")

	// Verify SetSize returns new model (immutability)
	m2 := m.SetSize(80, 24)
	assert.Equal(t, 80, m2.width, "expected new model width to be 80")
	assert.Equal(t, 120, m.width, "expected original model width unchanged")
}

func TestHelp_SetMode(t *testing.T) {
	m := New().SetMode(ModeViewer)
	assert.Equal(t, ModeViewer, m.mode, "expected mode to switch to viewer")
}

func TestHelp_GalleryView_ContainsSections(t *testing.T) {
	view := New().SetSize(100, 30).View()

	assert.Contains(t, view, "Gallery Keys", "expected gallery title")
	assert.Contains(t, view, "Navigation", "expected Navigation section")
	assert.Contains(t, view, "Selection", "expected Selection section")
	assert.Contains(t, view, "Actions", "expected Actions section")
	assert.Contains(t, view, "Organize", "expected Organize section")
	assert.Contains(t, view, "General", "expected General section")
}

func TestHelp_GalleryView_ContainsKeybindings(t *testing.T) {
	view := New().SetSize(100, 30).View()

	assert.Contains(t, view, "move up", "expected up binding description")
	assert.Contains(t, view, "open viewer", "expected open binding description")
	assert.Contains(t, view, "toggle select", "expected select binding description")
	assert.Contains(t, view, "new order", "expected new order binding description")
	assert.Contains(t, view, "cycle sort field", "expected sort binding description")
	assert.Contains(t, view, "quit", "expected quit binding description")
}

func TestHelp_ViewerView_ContainsKeybindings(t *testing.T) {
	view := NewViewer().SetSize(100, 30).View()

	assert.Contains(t, view, "Viewer Keys", "expected viewer title")
	assert.Contains(t, view, "Zoom & Pan", "expected zoom section")
	assert.Contains(t, view, "zoom in", "expected zoom in binding description")
	assert.Contains(t, view, "pan left", "expected pan binding description")
	assert.Contains(t, view, "toggle info", "expected sidebar binding description")
	assert.Contains(t, view, "close viewer", "expected close binding description")
}

func TestHelp_View_ContainsFooter(t *testing.T) {
	view := New().SetSize(100, 30).View()

	assert.Contains(t, view, "press ? or esc to close", "expected footer hint")
}

func TestHelp_Overlay_PreservesBackground(t *testing.T) {
	bg := strings.TrimRight(strings.Repeat(strings.Repeat("#", 100)+"\n", 30), "\n")
	out := New().SetSize(100, 30).Overlay(bg)

	assert.Contains(t, out, "Gallery Keys", "expected help box in overlay")
	assert.Contains(t, out, "#", "expected background to remain visible around box")
}

func TestHelp_Overlay_EmptyBackgroundCenters(t *testing.T) {
	out := New().SetSize(100, 30).Overlay("")

	lines := strings.Split(out, "\n")
	assert.Equal(t, 30, len(lines), "expected overlay to fill full height")
	assert.Contains(t, out, "Gallery Keys", "expected help box rendered")
}
