// Package viewer implements the full-screen artifact viewer overlay:
// fetch-on-open, clamped prev/next with neighbor preload, zoom and pan,
// and a collapsible metadata sidebar.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/bendavieshe3/art-factory-sub001/internal/artifact"
	"github.com/bendavieshe3/art-factory-sub001/internal/cachemanager"
	"github.com/bendavieshe3/art-factory-sub001/internal/config"
	"github.com/bendavieshe3/art-factory-sub001/internal/history"
	"github.com/bendavieshe3/art-factory-sub001/internal/keys"
	"github.com/bendavieshe3/art-factory-sub001/internal/log"
	"github.com/bendavieshe3/art-factory-sub001/internal/pubsub"
	"github.com/bendavieshe3/art-factory-sub001/internal/ui/overlay"
	"github.com/bendavieshe3/art-factory-sub001/internal/ui/styles"
)

// State is the viewer lifecycle state.
type State int

const (
	StateClosed State = iota
	StateOpening
	StateReady
	StateLoading
	StateError
)

const (
	fetchTimeout   = 30 * time.Second
	cacheTTL       = 5 * time.Minute
	sidebarWidth   = 36
	clientTimeout  = 60 * time.Second
	chromeHeight   = 4 // title and status lines around the image area
	sidebarPadding = 1
)

// fetchedMsg carries a completed artifact fetch. Results from
// superseded navigations carry an older seq and are dropped.
type fetchedMsg struct {
	seq int
	art artifact.Artifact
	err error
}

// ClosedMsg tells the app the viewer has finished closing.
type ClosedMsg struct{}

// DeleteRequestMsg asks the app to confirm deletion of the displayed
// artifact.
type DeleteRequestMsg struct {
	ID string
}

// ArtifactDeletedMsg reports a server-confirmed deletion so the
// gallery can drop the artifact too.
type ArtifactDeletedMsg struct {
	ID string
}

type deletedMsg struct {
	id  string
	err error
}

type favoriteMsg struct {
	id  string
	fav bool
	err error
}

type downloadedMsg struct {
	path string
	err  error
}

// Model is the viewer overlay. The item list is a snapshot taken at
// open time; gallery changes during a session do not reorder it.
type Model struct {
	client *artifact.Client
	broker *pubsub.Broker[pubsub.Payload]
	cache  cachemanager.CacheManager[string, artifact.Artifact]
	fetch  *cachemanager.ReadThroughCache[string, artifact.Artifact, string]
	hist   *history.Stack
	keys   keys.ViewerKeyMap

	state   State
	items   []artifact.Artifact
	index   int
	current artifact.Artifact
	loadErr error

	seq     int // last issued fetch sequence
	pushed  bool
	zoom    zoomState
	sidebar viewport.Model
	sideOn  bool

	spinner spinner.Model

	downloadDir string
	width       int
	height      int
}

// New creates a closed viewer.
func New(client *artifact.Client, broker *pubsub.Broker[pubsub.Payload], cache cachemanager.CacheManager[string, artifact.Artifact], hist *history.Stack, cfg config.Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.SpinnerColor)

	vp := viewport.New(sidebarWidth-2, 10)

	var fetch *cachemanager.ReadThroughCache[string, artifact.Artifact, string]
	if client != nil && cache != nil {
		fetch = cachemanager.NewReadThroughCache(cache, func(ctx context.Context, id string) (artifact.Artifact, error) {
			return client.FetchArtifact(ctx, id)
		}, false)
	}

	return Model{
		client:      client,
		broker:      broker,
		cache:       cache,
		fetch:       fetch,
		hist:        hist,
		keys:        keys.DefaultViewerKeyMap(),
		zoom:        newZoomState(cfg.Viewer.ZoomMin, cfg.Viewer.ZoomMax, cfg.Viewer.ZoomStep),
		sidebar:     vp,
		sideOn:      true,
		spinner:     sp,
		downloadDir: cfg.UI.DownloadDir,
	}
}

// State returns the lifecycle state.
func (m Model) State() State {
	return m.state
}

// Open starts a viewer session on the given item snapshot. The full
// record is always refetched; list data may be stale or partial.
func (m Model) Open(items []artifact.Artifact, id string) (Model, tea.Cmd) {
	idx := -1
	for i, a := range items {
		if a.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		log.Error(log.CatViewer, "Open requested for unknown artifact", "id", id)
		return m, nil
	}

	m.items = append([]artifact.Artifact(nil), items...)
	m.index = idx
	m.current = m.items[idx]
	m.state = StateOpening
	m.loadErr = nil
	m.zoom = m.zoom.reset()
	m = m.warmStart()

	if !m.pushed {
		m.hist.Push(history.Entry{Route: history.RouteViewer, Param: id})
		m.pushed = true
	}

	log.Info(log.CatViewer, "Viewer opened", "id", id, "index", idx, "items", len(m.items))
	return m, tea.Batch(m.spinner.Tick, m.fetchCmd(id), m.preloadNeighborsCmd())
}

// Close ends the session via the UI close affordance. The viewer's
// history entry is replaced, not popped, so the user's back-stack
// depth is unchanged.
func (m Model) Close() (Model, tea.Cmd) {
	if m.pushed {
		m.hist.Replace(history.Entry{Route: history.RouteGallery})
		m.pushed = false
	}
	return m.closeSilently()
}

// CloseFromHistory ends the session in response to a platform back
// action. The history stack has already moved; it is not touched.
func (m Model) CloseFromHistory() (Model, tea.Cmd) {
	m.pushed = false
	return m.closeSilently()
}

func (m Model) closeSilently() (Model, tea.Cmd) {
	m.state = StateClosed
	m.items = nil
	m.loadErr = nil
	m.zoom = m.zoom.reset()
	log.Debug(log.CatViewer, "Viewer closed")
	return m, func() tea.Msg { return ClosedMsg{} }
}

// SetSize updates layout bounds and re-clamps the pan offset.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	m.sidebar.Width = sidebarWidth - 2
	m.sidebar.Height = max(height-chromeHeight-2, 3)
	m.zoom = m.zoom.clampPan(m.imageWidth(), m.imageHeight())
	return m
}

func (m Model) imageWidth() int {
	w := m.width
	if m.sideOn {
		w -= sidebarWidth
	}
	return max(w, 10)
}

func (m Model) imageHeight() int {
	return max(m.height-chromeHeight, 5)
}

// fetchCmd issues a sequenced fetch for the full artifact record. The
// record always comes from the backend, never from the cache, so
// mutable fields like favorite are current on every view. The fresh
// response refreshes the cache entry used for warm-start display.
func (m *Model) fetchCmd(id string) tea.Cmd {
	m.seq++
	seq := m.seq
	client := m.client
	cache := m.cache
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		art, err := client.FetchArtifact(ctx, id)
		if err == nil && cache != nil {
			cache.Set(ctx, id, art, cacheTTL)
		}
		return fetchedMsg{seq: seq, art: art, err: err}
	}
}

// warmStart swaps the partial list snapshot for a cached full record
// while the refetch is in flight. The fetched response still replaces
// it when it lands.
func (m Model) warmStart() Model {
	if m.cache == nil {
		return m
	}
	if art, ok := m.cache.Get(context.Background(), m.current.ID); ok {
		m.current = art
		m.sidebar.SetContent(m.renderMetadata())
	}
	return m
}

// preloadNeighborsCmd warms the cache with the adjacent artifacts.
// Fire and forget; failures only mean a cache miss later.
func (m Model) preloadNeighborsCmd() tea.Cmd {
	if m.fetch == nil {
		return nil
	}
	var ids []string
	if m.index > 0 {
		ids = append(ids, m.items[m.index-1].ID)
	}
	if m.index < len(m.items)-1 {
		ids = append(ids, m.items[m.index+1].ID)
	}
	if len(ids) == 0 {
		return nil
	}
	fetch := m.fetch
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		for _, id := range ids {
			if _, err := fetch.Get(ctx, id, id, cacheTTL); err != nil {
				log.Debug(log.CatViewer, "Neighbor preload miss", "id", id, "error", err)
			}
		}
		return nil
	}
}

// CanPrev reports whether a previous artifact exists.
func (m Model) CanPrev() bool {
	return m.index > 0
}

// CanNext reports whether a next artifact exists.
func (m Model) CanNext() bool {
	return m.index < len(m.items)-1
}

func (m Model) navigate(delta int) (Model, tea.Cmd) {
	next := m.index + delta
	if next < 0 || next >= len(m.items) {
		return m, nil
	}
	m.index = next
	m.current = m.items[next]
	m.state = StateLoading
	m.loadErr = nil
	m.zoom = m.zoom.reset()
	m = m.warmStart()
	m.hist.Replace(history.Entry{Route: history.RouteViewer, Param: m.current.ID})
	return m, tea.Batch(m.spinner.Tick, m.fetchCmd(m.current.ID), m.preloadNeighborsCmd())
}

// DeleteCmd deletes the displayed artifact after app-level
// confirmation.
func (m Model) DeleteCmd(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
		defer cancel()
		res, err := client.DeleteArtifact(ctx, id)
		if err == nil && !res.Success {
			err = errors.New(res.Message)
		}
		return deletedMsg{id: id, err: err}
	}
}

// Update handles messages while the viewer is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.state == StateClosed {
		return m, nil
	}

	switch msg := msg.(type) {
	case fetchedMsg:
		if msg.seq != m.seq {
			log.Debug(log.CatViewer, "Dropping stale fetch result", "seq", msg.seq, "latest", m.seq)
			return m, nil
		}
		if msg.err != nil {
			m.state = StateError
			m.loadErr = msg.err
			return m, nil
		}
		m.state = StateReady
		m.current = msg.art
		m.items[m.index] = msg.art
		m.sidebar.SetContent(m.renderMetadata())
		return m, nil

	case deletedMsg:
		return m.handleDeleted(msg)

	case favoriteMsg:
		if msg.err != nil {
			m.publishFailure("favorite", msg.err)
			return m, nil
		}
		if m.cache != nil {
			m.cache.Delete(context.Background(), msg.id)
		}
		if m.current.ID == msg.id {
			m.current.Favorite = msg.fav
			m.items[m.index].Favorite = msg.fav
			m.sidebar.SetContent(m.renderMetadata())
		}
		return m, nil

	case downloadedMsg:
		if msg.err != nil {
			m.publishFailure("download", msg.err)
		} else {
			log.Info(log.CatViewer, "Download finished", "path", msg.path)
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != StateOpening && m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleDeleted(msg deletedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		m.publishFailure("delete", msg.err)
		return m, nil
	}
	if m.cache != nil {
		m.cache.Delete(context.Background(), msg.id)
	}
	if m.broker != nil {
		m.broker.Publish(pubsub.EventArtifactDeleted, pubsub.Payload(pubsub.ArtifactDeleted{IDs: []string{msg.id}}))
	}
	notify := func() tea.Msg { return ArtifactDeletedMsg{ID: msg.id} }

	for i, a := range m.items {
		if a.ID == msg.id {
			m.items = append(m.items[:i:i], m.items[i+1:]...)
			break
		}
	}
	if len(m.items) == 0 {
		var closeCmd tea.Cmd
		m, closeCmd = m.Close()
		return m, tea.Batch(notify, closeCmd)
	}
	if m.index >= len(m.items) {
		m.index = len(m.items) - 1
	}
	m.current = m.items[m.index]
	m.state = StateLoading
	m.hist.Replace(history.Entry{Route: history.RouteViewer, Param: m.current.ID})
	return m, tea.Batch(notify, m.spinner.Tick, m.fetchCmd(m.current.ID))
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Prev):
		return m.navigate(-1)
	case key.Matches(msg, k.Next):
		return m.navigate(1)

	case key.Matches(msg, k.ZoomIn):
		m.zoom = m.zoom.zoomIn()
		return m, nil
	case key.Matches(msg, k.ZoomOut):
		m.zoom = m.zoom.zoomOut().clampPan(m.imageWidth(), m.imageHeight())
		return m, nil
	case key.Matches(msg, k.ZoomReset):
		m.zoom = m.zoom.reset()
		return m, nil

	case key.Matches(msg, k.PanUp):
		m.zoom = m.zoom.pan(0, -1, m.imageWidth(), m.imageHeight())
		return m, nil
	case key.Matches(msg, k.PanDown):
		m.zoom = m.zoom.pan(0, 1, m.imageWidth(), m.imageHeight())
		return m, nil
	case key.Matches(msg, k.PanLeft):
		m.zoom = m.zoom.pan(-2, 0, m.imageWidth(), m.imageHeight())
		return m, nil
	case key.Matches(msg, k.PanRight):
		m.zoom = m.zoom.pan(2, 0, m.imageWidth(), m.imageHeight())
		return m, nil

	case key.Matches(msg, k.Sidebar):
		m.sideOn = !m.sideOn
		m.zoom = m.zoom.clampPan(m.imageWidth(), m.imageHeight())
		return m, nil

	case key.Matches(msg, k.Download):
		return m, m.downloadCmd(m.current.ID)

	case key.Matches(msg, k.Delete):
		id := m.current.ID
		return m, func() tea.Msg { return DeleteRequestMsg{ID: id} }

	case key.Matches(msg, k.Favorite):
		return m, m.toggleFavoriteCmd(m.current.ID, !m.current.Favorite)

	case key.Matches(msg, k.Close):
		return m.Close()
	}

	if m.sideOn {
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleMouse routes the wheel through the same zoom path as the keys.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.zoom = m.zoom.zoomIn()
	case tea.MouseButtonWheelDown:
		m.zoom = m.zoom.zoomOut().clampPan(m.imageWidth(), m.imageHeight())
	}
	return m, nil
}

func (m Model) downloadCmd(id string) tea.Cmd {
	client := m.client
	dir := m.downloadDir
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
		defer cancel()
		path, err := client.DownloadArtifact(ctx, id, dir)
		return downloadedMsg{path: path, err: err}
	}
}

func (m Model) toggleFavoriteCmd(id string, fav bool) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
		defer cancel()
		res, err := client.SetFavorite(ctx, id, fav)
		if err == nil && !res.Success {
			err = errors.New(res.Message)
		}
		return favoriteMsg{id: id, fav: fav, err: err}
	}
}

func (m Model) publishFailure(action string, err error) {
	if m.broker == nil || err == nil {
		return
	}
	m.broker.Publish(pubsub.EventActionFailed, pubsub.Payload(pubsub.ActionFailed{Action: action, Message: err.Error()}))
}

// View renders the viewer surface.
func (m Model) View() string {
	if m.state == StateClosed {
		return ""
	}

	body := m.renderImageArea()
	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTitleLine(),
		body,
		m.renderStatusLine(),
	)

	if m.sideOn {
		side := styles.RenderWithTitleBorder(m.sidebar.View(), "metadata", sidebarWidth, m.sidebar.Height+2, false, styles.TextPrimaryColor, styles.BorderHighlightFocusColor)
		view = overlay.Place(overlay.Config{
			Width:    m.width,
			Height:   m.height,
			Position: overlay.Right,
			PadX:     sidebarPadding,
		}, side, view)
	}
	return view
}

func (m Model) renderTitleLine() string {
	title := m.current.Title
	if title == "" {
		title = m.current.ID
	}
	if fav := styles.FormatFavorite(m.current.Favorite); fav != "" {
		title += " " + fav
	}
	pos := fmt.Sprintf("%d/%d", m.index+1, len(m.items))
	return lipgloss.NewStyle().Bold(true).Render(styles.TruncateString(title, max(m.width-len(pos)-3, 10))) + "  " + pos
}

func (m Model) renderImageArea() string {
	w, h := m.imageWidth(), m.imageHeight()

	var inner string
	switch m.state {
	case StateOpening, StateLoading:
		inner = m.spinner.View() + " loading"
	case StateError:
		inner = styles.ErrorStyle.Render("load failed: " + m.loadErr.Error())
	default:
		inner = m.renderImagePlaceholder(w-4, h-2)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(styles.BorderDefaultColor).
		Width(w-2).
		Height(h-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(inner)
}

// renderImagePlaceholder stands in for the bitmap: the terminal cannot
// show the file, so the frame reports the source and the visible
// window implied by zoom and pan.
func (m Model) renderImagePlaceholder(w, h int) string {
	lines := []string{
		styles.FormatDimensions(m.current.Width, m.current.Height),
		styles.TruncateString(m.current.FileURL, max(w, 10)),
		"zoom " + strconv.FormatFloat(m.zoom.level, 'f', 2, 64) + "×",
	}
	if m.zoom.level > 1.0 {
		lines = append(lines, fmt.Sprintf("pan %+d,%+d", m.zoom.panX, m.zoom.panY))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderStatusLine() string {
	prev := "← prev"
	if !m.CanPrev() {
		prev = lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("← prev")
	}
	next := "next →"
	if !m.CanNext() {
		next = lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("next →")
	}
	return styles.StatusBarStyle.Render(prev + "  " + next + "  ·  i sidebar  d download  D delete  f favorite  esc close")
}

// renderMetadata builds the sidebar body from the full record.
func (m Model) renderMetadata() string {
	wrap := func(s string) string { return wordwrap.String(s, sidebarWidth-4) }
	label := lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Render

	var b strings.Builder
	b.WriteString(label("prompt") + "\n" + wrap(m.current.Prompt) + "\n\n")
	if m.current.NegativePrompt != "" {
		b.WriteString(label("negative") + "\n" + wrap(m.current.NegativePrompt) + "\n\n")
	}
	b.WriteString(label("provider") + " " + m.current.Provider + "\n")
	b.WriteString(label("model") + " " + m.current.Model + "\n")
	b.WriteString(label("size") + " " + styles.FormatDimensions(m.current.Width, m.current.Height) + "\n")
	b.WriteString(label("created") + " " + m.current.CreatedAt.Format("2006-01-02 15:04") + "\n")

	if len(m.current.Params) > 0 {
		b.WriteString("\n" + label("parameters") + "\n")
		for _, k := range sortedKeys(m.current.Params) {
			b.WriteString(wrap(k+": "+fmt.Sprint(m.current.Params[k])) + "\n")
		}
	}
	return b.String()
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
