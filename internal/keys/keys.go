// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// GalleryKeyMap defines the keybindings for the gallery screen.
type GalleryKeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Actions
	Open        key.Binding
	Select      key.Binding
	SelectAll   key.Binding
	DeselectAll key.Binding
	Download    key.Binding
	Delete      key.Binding
	Favorite    key.Binding
	NewOrder    key.Binding
	Refresh     key.Binding

	// Collection shaping
	Filter    key.Binding
	CycleSort key.Binding
	SortDir   key.Binding

	// General
	Help         key.Binding
	Escape       key.Binding
	Quit         key.Binding
	ToggleStatus key.Binding
}

// DefaultGalleryKeyMap returns the default gallery keybindings.
func DefaultGalleryKeyMap() GalleryKeyMap {
	return GalleryKeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "move right"),
		),

		// Actions
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open viewer"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle select"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select all"),
		),
		DeselectAll: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "deselect all"),
		),
		Download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "download"),
		),
		Delete: key.NewBinding(
			key.WithKeys("D", "delete"),
			key.WithHelp("D", "delete"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle favorite"),
		),
		NewOrder: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new order"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),

		// Collection shaping
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		CycleSort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle sort field"),
		),
		SortDir: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "flip sort direction"),
		),

		// General
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "go back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ToggleStatus: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "toggle status bar"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k GalleryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k GalleryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},                           // Navigation
		{k.Open, k.Select, k.SelectAll, k.DeselectAll},            // Selection
		{k.Download, k.Delete, k.Favorite, k.NewOrder, k.Refresh}, // Actions
		{k.Filter, k.CycleSort, k.SortDir},                        // Collection
		{k.Help, k.ToggleStatus, k.Escape, k.Quit},                // General
	}
}

// ViewerKeyMap defines the keybindings for the viewer overlay.
type ViewerKeyMap struct {
	// Navigation
	Prev key.Binding
	Next key.Binding

	// Zoom and pan
	ZoomIn    key.Binding
	ZoomOut   key.Binding
	ZoomReset key.Binding
	PanUp     key.Binding
	PanDown   key.Binding
	PanLeft   key.Binding
	PanRight  key.Binding

	// Actions
	Sidebar  key.Binding
	Download key.Binding
	Delete   key.Binding
	Favorite key.Binding

	// General
	Help  key.Binding
	Close key.Binding
	Quit  key.Binding
}

// DefaultViewerKeyMap returns the default viewer keybindings.
func DefaultViewerKeyMap() ViewerKeyMap {
	return ViewerKeyMap{
		// Navigation
		Prev: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next"),
		),

		// Zoom and pan
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "zoom out"),
		),
		ZoomReset: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "reset zoom"),
		),
		PanUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "pan up"),
		),
		PanDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "pan down"),
		),
		PanLeft: key.NewBinding(
			key.WithKeys("H", "shift+left"),
			key.WithHelp("H", "pan left"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("L", "shift+right"),
			key.WithHelp("L", "pan right"),
		),

		// Actions
		Sidebar: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "toggle info"),
		),
		Download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "download"),
		),
		Delete: key.NewBinding(
			key.WithKeys("D", "delete"),
			key.WithHelp("D", "delete"),
		),
		Favorite: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle favorite"),
		),

		// General
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "q"),
			key.WithHelp("esc", "close viewer"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k ViewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Close}
}

// FullHelp returns keybindings for the full help view.
func (k ViewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},                            // Navigation
		{k.ZoomIn, k.ZoomOut, k.ZoomReset},          // Zoom
		{k.PanUp, k.PanDown, k.PanLeft, k.PanRight}, // Pan
		{k.Sidebar, k.Download, k.Delete, k.Favorite}, // Actions
		{k.Help, k.Close, k.Quit},                     // General
	}
}
