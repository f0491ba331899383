// Package card renders a single artifact as a bordered tile with
// optional selection checkbox and action affordances.
package card

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/bendavieshe3/art-factory-sub001/internal/artifact"
	"github.com/bendavieshe3/art-factory-sub001/internal/ui/styles"
)

// Variant controls how much metadata a card shows.
type Variant int

const (
	// VariantCompact shows title and favorite marker only.
	VariantCompact Variant = iota
	// VariantStandard adds dimensions and provider.
	VariantStandard
	// VariantDetailed adds the model and a prompt excerpt.
	VariantDetailed
)

// ClickAction is what a click on the card body does.
type ClickAction int

const (
	// ClickSelect toggles selection.
	ClickSelect ClickAction = iota
	// ClickViewer opens the viewer overlay.
	ClickViewer
	// ClickNavigate follows the artifact's file URL.
	ClickNavigate
)

// Config controls card appearance and behavior. The same artifact can
// be rendered differently per surface (gallery grid vs. order tracker
// latest-result strip).
type Config struct {
	Variant      Variant
	ShowCheckbox bool
	ShowActions  bool // download affordance
	ShowDelete   bool
	ClickAction  ClickAction
	Width        int
	// ZoneNS namespaces the bubblezone IDs so the same artifact can be
	// rendered on two surfaces in one frame (grid and order strip).
	ZoneNS string
}

// Target identifies which part of a card a click landed on.
type Target int

const (
	TargetNone Target = iota
	TargetBody
	TargetCheckbox
	TargetDownload
	TargetDelete
)

// Model is one rendered card. Value semantics; the gallery owns a
// slice of these.
type Model struct {
	cfg      Config
	art      artifact.Artifact
	selected bool
	focused  bool
}

// New creates a card for the given artifact.
func New(art artifact.Artifact, cfg Config) Model {
	if cfg.Width <= 0 {
		cfg.Width = 28
	}
	return Model{cfg: cfg, art: art}
}

// Artifact returns the artifact this card renders.
func (m Model) Artifact() artifact.Artifact {
	return m.art
}

// ID returns the artifact ID.
func (m Model) ID() string {
	return m.art.ID
}

// Selected reports the selection state.
func (m Model) Selected() bool {
	return m.selected
}

// SetSelected sets the selection state. Setting the current state
// again is a no-op.
func (m Model) SetSelected(selected bool) Model {
	m.selected = selected
	return m
}

// ToggleSelected flips the selection state.
func (m Model) ToggleSelected() Model {
	m.selected = !m.selected
	return m
}

// SetFocused marks the card as the grid cursor position.
func (m Model) SetFocused(focused bool) Model {
	m.focused = focused
	return m
}

// SetArtifact replaces the rendered artifact, keeping view state.
func (m Model) SetArtifact(art artifact.Artifact) Model {
	m.art = art
	return m
}

// SetWidth changes the rendered width.
func (m Model) SetWidth(w int) Model {
	if w > 0 {
		m.cfg.Width = w
	}
	return m
}

// Zone ID layout. Nested affordances are checked before the body so a
// click on the checkbox never also counts as a card click.
func (m Model) zoneRoot() string {
	ns := m.cfg.ZoneNS
	if ns == "" {
		ns = "card"
	}
	return ns + "/" + m.art.ID
}

func (m Model) bodyZone() string     { return m.zoneRoot() }
func (m Model) checkboxZone() string { return m.zoneRoot() + "/check" }
func (m Model) downloadZone() string { return m.zoneRoot() + "/download" }
func (m Model) deleteZone() string   { return m.zoneRoot() + "/delete" }

// HitTest resolves a mouse event against this card's zones, innermost
// affordance first so a checkbox click never doubles as a body click.
func (m Model) HitTest(msg tea.MouseMsg) Target {
	if m.cfg.ShowCheckbox {
		if z := zone.Get(m.checkboxZone()); z != nil && z.InBounds(msg) {
			return TargetCheckbox
		}
	}
	if m.cfg.ShowActions {
		if z := zone.Get(m.downloadZone()); z != nil && z.InBounds(msg) {
			return TargetDownload
		}
	}
	if m.cfg.ShowDelete {
		if z := zone.Get(m.deleteZone()); z != nil && z.InBounds(msg) {
			return TargetDelete
		}
	}
	if z := zone.Get(m.bodyZone()); z != nil && z.InBounds(msg) {
		return TargetBody
	}
	return TargetNone
}

// ClickAction returns what a body click should do for this card.
func (m Model) ClickAction() ClickAction {
	return m.cfg.ClickAction
}

// View renders the card.
func (m Model) View() string {
	innerWidth := m.cfg.Width - 4 // border + padding
	if innerWidth < 8 {
		innerWidth = 8
	}

	var lines []string

	// Header: checkbox, title, favorite.
	header := ""
	titleWidth := innerWidth
	if m.cfg.ShowCheckbox {
		box := "[ ]"
		if m.selected {
			box = styles.SelectionIndicatorStyle.Render("[x]")
		}
		header = zone.Mark(m.checkboxZone(), box) + " "
		titleWidth -= 4
	}
	title := m.art.Title
	if title == "" {
		title = m.art.ID
	}
	if fav := styles.FormatFavorite(m.art.Favorite); fav != "" {
		titleWidth -= 2
		header += styles.TruncateString(title, titleWidth) + " " + fav
	} else {
		header += styles.TruncateString(title, titleWidth)
	}
	lines = append(lines, header)

	if m.cfg.Variant >= VariantStandard {
		meta := styles.FormatDimensions(m.art.Width, m.art.Height)
		if m.art.Provider != "" {
			if meta != "" {
				meta += " · "
			}
			meta += m.art.Provider
		}
		metaStyle := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor)
		lines = append(lines, metaStyle.Render(styles.TruncateString(meta, innerWidth)))
	}

	if m.cfg.Variant >= VariantDetailed {
		if m.art.Model != "" {
			modelStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
			lines = append(lines, modelStyle.Render(styles.TruncateString(m.art.Model, innerWidth)))
		}
		if m.art.Prompt != "" {
			promptStyle := lipgloss.NewStyle().Foreground(styles.TextDescriptionColor)
			lines = append(lines, promptStyle.Render(styles.TruncateString(m.art.Prompt, innerWidth)))
		}
	}

	// Action row.
	if m.cfg.ShowActions || m.cfg.ShowDelete {
		var actions []string
		if m.cfg.ShowActions {
			actions = append(actions, zone.Mark(m.downloadZone(), "[↓ save]"))
		}
		if m.cfg.ShowDelete {
			del := lipgloss.NewStyle().Foreground(styles.StatusErrorColor).Render("[✗ del]")
			actions = append(actions, zone.Mark(m.deleteZone(), del))
		}
		lines = append(lines, strings.Join(actions, " "))
	}

	borderColor := styles.BorderDefaultColor
	if m.selected {
		borderColor = styles.CardSelectedBorderColor
	} else if m.focused {
		borderColor = styles.BorderHighlightFocusColor
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(0, 1).
		Width(m.cfg.Width - 2).
		Render(strings.Join(lines, "\n"))

	return zone.Mark(m.bodyZone(), box)
}
