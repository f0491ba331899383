package modal

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func collectMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	return cmd()
}

func TestNew_InputMode(t *testing.T) {
	cfg := Config{
		Title: "New Order",
		Inputs: []InputConfig{
			{Key: "prompt", Label: "Prompt", Placeholder: "Describe the image...", Required: true},
		},
	}

	m := New(cfg)

	if !m.hasInputs {
		t.Error("expected hasInputs to be true when Inputs is set")
	}
	if len(m.inputs) != 1 {
		t.Errorf("expected 1 input, got %d", len(m.inputs))
	}
	if m.inputs[0].Placeholder != cfg.Inputs[0].Placeholder {
		t.Errorf("expected placeholder %q, got %q", cfg.Inputs[0].Placeholder, m.inputs[0].Placeholder)
	}
}

func TestNew_ConfirmMode(t *testing.T) {
	cfg := Config{
		Title:   "Delete Artifact",
		Message: "Delete this artifact? This cannot be undone.",
		// No Inputs = confirmation mode
	}

	m := New(cfg)

	if m.hasInputs {
		t.Error("expected hasInputs to be false when Inputs is empty")
	}
	if m.focusedInput != -1 {
		t.Errorf("expected focusedInput -1 for confirm mode, got %d", m.focusedInput)
	}
	if m.focusedField != FieldSave {
		t.Errorf("expected focusedField FieldSave for confirm mode, got %d", m.focusedField)
	}
}

func TestNew_WithInitialValue(t *testing.T) {
	cfg := Config{
		Title: "Edit Filter",
		Inputs: []InputConfig{
			{Key: "filter", Label: "Filter", Value: "provider=fal.ai"},
		},
	}

	m := New(cfg)

	if m.inputs[0].Value() != cfg.Inputs[0].Value {
		t.Errorf("expected initial value %q, got %q", cfg.Inputs[0].Value, m.inputs[0].Value())
	}
}

func TestConfirmMode_EnterSubmits(t *testing.T) {
	m := New(Config{Title: "Delete Artifact", Message: "Sure?"})

	_, cmd := m.Update(keyMsg("enter"))
	msg := collectMsg(t, cmd)

	if _, ok := msg.(SubmitMsg); !ok {
		t.Fatalf("expected SubmitMsg, got %T", msg)
	}
}

func TestConfirmMode_EscCancels(t *testing.T) {
	m := New(Config{Title: "Delete Artifact"})

	_, cmd := m.Update(keyMsg("esc"))
	msg := collectMsg(t, cmd)

	if _, ok := msg.(CancelMsg); !ok {
		t.Fatalf("expected CancelMsg, got %T", msg)
	}
}

func TestConfirmMode_CancelButtonCancels(t *testing.T) {
	m := New(Config{Title: "Delete Artifact"})

	m, _ = m.Update(keyMsg("right")) // move to Cancel
	if m.FocusedField() != FieldCancel {
		t.Fatalf("expected focus on Cancel, got %d", m.FocusedField())
	}

	_, cmd := m.Update(keyMsg("enter"))
	msg := collectMsg(t, cmd)
	if _, ok := msg.(CancelMsg); !ok {
		t.Fatalf("expected CancelMsg, got %T", msg)
	}
}

func TestInputMode_TabAdvancesThroughFieldsToButtons(t *testing.T) {
	m := New(Config{
		Title: "New Order",
		Inputs: []InputConfig{
			{Key: "prompt", Label: "Prompt", Required: true},
			{Key: "model", Label: "Model"},
		},
	})

	if m.FocusedInput() != 0 {
		t.Fatalf("expected first input focused, got %d", m.FocusedInput())
	}

	m, _ = m.Update(keyMsg("tab"))
	if m.FocusedInput() != 1 {
		t.Fatalf("expected second input focused, got %d", m.FocusedInput())
	}

	m, _ = m.Update(keyMsg("tab"))
	if m.FocusedInput() != -1 || m.FocusedField() != FieldSave {
		t.Fatalf("expected Save button focused, got input %d field %d", m.FocusedInput(), m.FocusedField())
	}
}

func TestInputMode_ShiftTabWrapsToCancel(t *testing.T) {
	m := New(Config{
		Title:  "New Order",
		Inputs: []InputConfig{{Key: "prompt", Label: "Prompt"}},
	})

	m, _ = m.Update(keyMsg("shift+tab"))
	if m.FocusedInput() != -1 || m.FocusedField() != FieldCancel {
		t.Fatalf("expected Cancel focused, got input %d field %d", m.FocusedInput(), m.FocusedField())
	}
}

func TestInputMode_RequiredEmptyBlocksSubmit(t *testing.T) {
	m := New(Config{
		Title: "New Order",
		Inputs: []InputConfig{
			{Key: "prompt", Label: "Prompt", Required: true},
		},
	})

	m, _ = m.Update(keyMsg("tab")) // to Save
	_, cmd := m.Update(keyMsg("enter"))
	if cmd != nil {
		t.Fatal("expected submit to be blocked while required input is empty")
	}
}

func TestInputMode_OptionalEmptyDoesNotBlockSubmit(t *testing.T) {
	m := New(Config{
		Title: "New Order",
		Inputs: []InputConfig{
			{Key: "prompt", Label: "Prompt", Required: true, Value: "a misty harbor"},
			{Key: "negative", Label: "Negative prompt"},
		},
	})

	m, _ = m.Update(keyMsg("tab"))
	m, _ = m.Update(keyMsg("tab")) // to Save
	_, cmd := m.Update(keyMsg("enter"))
	msg := collectMsg(t, cmd)

	submit, ok := msg.(SubmitMsg)
	if !ok {
		t.Fatalf("expected SubmitMsg, got %T", msg)
	}
	if submit.Values["prompt"] != "a misty harbor" {
		t.Errorf("unexpected prompt value %q", submit.Values["prompt"])
	}
	if submit.Values["negative"] != "" {
		t.Errorf("expected empty negative, got %q", submit.Values["negative"])
	}
}

func TestInputMode_TypingUpdatesFocusedInput(t *testing.T) {
	m := New(Config{
		Title:  "New Order",
		Inputs: []InputConfig{{Key: "prompt", Label: "Prompt", Required: true}},
	})

	m, _ = m.Update(keyMsg("cat"))
	if m.inputs[0].Value() != "cat" {
		t.Errorf("expected input value %q, got %q", "cat", m.inputs[0].Value())
	}
}

func TestView_ContainsTitleMessageAndButtons(t *testing.T) {
	m := New(Config{
		Title:          "Delete Artifact",
		Message:        "This cannot be undone.",
		ConfirmVariant: ButtonDanger,
		ConfirmLabel:   "Delete",
	})

	view := m.View()
	for _, want := range []string{"Delete Artifact", "This cannot be undone.", "Delete", "Cancel"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_InputSectionShowsOptionalHint(t *testing.T) {
	m := New(Config{
		Title: "New Order",
		Inputs: []InputConfig{
			{Key: "prompt", Label: "Prompt", Required: true},
			{Key: "model", Label: "Model"},
		},
	})

	view := m.View()
	if !strings.Contains(view, "(optional)") {
		t.Error("expected optional hint on non-required input")
	}
}

func TestOverlay_CentersOnBackground(t *testing.T) {
	m := New(Config{Title: "Delete Artifact"})
	m.SetSize(80, 24)

	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 80)+"\n", 24), "\n")
	out := m.Overlay(bg)

	if !strings.Contains(out, "Delete Artifact") {
		t.Error("expected modal content in overlay output")
	}
	if len(strings.Split(out, "\n")) != 24 {
		t.Errorf("expected 24 lines, got %d", len(strings.Split(out, "\n")))
	}
}
