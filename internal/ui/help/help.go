// Package help contains the help overlay component.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/bendavieshe3/art-factory-sub001/internal/keys"
	"github.com/bendavieshe3/art-factory-sub001/internal/ui/overlay"
	"github.com/bendavieshe3/art-factory-sub001/internal/ui/styles"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			PaddingLeft(2)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.OverlayTitleColor).
			MarginTop(1)

	keyStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondaryColor).
			Width(14)

	descStyle = lipgloss.NewStyle().
			Foreground(styles.TextDescriptionColor)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(styles.OverlayBorderColor)

	contentStyle = lipgloss.NewStyle().
			Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			MarginTop(1)
)

// HelpMode indicates which surface's bindings to display.
type HelpMode int

const (
	ModeGallery HelpMode = iota
	ModeViewer
)

type section struct {
	title    string
	bindings []key.Binding
}

// Model holds the help view state.
type Model struct {
	mode   HelpMode
	width  int
	height int
}

// New creates a help view for the gallery surface.
func New() Model {
	return Model{mode: ModeGallery}
}

// NewViewer creates a help view for the viewer surface.
func NewViewer() Model {
	return Model{mode: ModeViewer}
}

// SetMode switches which surface's bindings are shown.
func (m Model) SetMode(mode HelpMode) Model {
	m.mode = mode
	return m
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help box centered in an empty frame.
func (m Model) View() string {
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		m.renderContent(),
	)
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	if background == "" {
		return m.View()
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.renderContent(), background)
}

func (m Model) sections() []section {
	if m.mode == ModeViewer {
		k := keys.DefaultViewerKeyMap()
		return []section{
			{"Navigation", []key.Binding{k.Prev, k.Next}},
			{"Zoom & Pan", []key.Binding{k.ZoomIn, k.ZoomOut, k.ZoomReset, k.PanUp, k.PanDown, k.PanLeft, k.PanRight}},
			{"Actions", []key.Binding{k.Download, k.Delete, k.Favorite, k.Sidebar}},
			{"General", []key.Binding{k.Help, k.Close, k.Quit}},
		}
	}
	k := keys.DefaultGalleryKeyMap()
	return []section{
		{"Navigation", []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Open}},
		{"Selection", []key.Binding{k.Select, k.SelectAll, k.DeselectAll}},
		{"Actions", []key.Binding{k.Download, k.Delete, k.Favorite, k.NewOrder, k.Refresh}},
		{"Organize", []key.Binding{k.Filter, k.CycleSort, k.SortDir}},
		{"General", []key.Binding{k.Help, k.Escape, k.Quit}},
	}
}

func (m Model) renderContent() string {
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	cols := make([]string, 0, 5)
	for _, sec := range m.sections() {
		var col strings.Builder
		col.WriteString(sectionStyle.Render(sec.title))
		col.WriteString("\n")
		for _, b := range sec.bindings {
			col.WriteString(renderBinding(b))
		}
		cols = append(cols, columnStyle.Render(col.String()))
	}

	title := "Gallery Keys"
	if m.mode == ModeViewer {
		title = "Viewer Keys"
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(title),
		lipgloss.JoinHorizontal(lipgloss.Top, cols...),
		footerStyle.Render("press ? or esc to close"),
	)

	return boxStyle.Render(contentStyle.Render(content))
}

func renderBinding(b key.Binding) string {
	h := b.Help()
	return keyStyle.Render(h.Key) + descStyle.Render(h.Desc) + "\n"
}
