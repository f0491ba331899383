// Package gallery implements the artifact collection surface: a
// filterable, sortable grid of artifact cards with multi-select and
// bulk actions.
package gallery

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bendavieshe3/art-factory-sub001/internal/artifact"
	"github.com/bendavieshe3/art-factory-sub001/internal/config"
	"github.com/bendavieshe3/art-factory-sub001/internal/keys"
	"github.com/bendavieshe3/art-factory-sub001/internal/log"
	"github.com/bendavieshe3/art-factory-sub001/internal/pubsub"
	"github.com/bendavieshe3/art-factory-sub001/internal/ui/card"
	"github.com/bendavieshe3/art-factory-sub001/internal/ui/styles"
)

const (
	defaultColumns = 3
	cardWidth      = 30
	clientTimeout  = 60 * time.Second
)

// LoadedMsg carries a fetched artifact page.
type LoadedMsg struct {
	Artifacts []artifact.Artifact
	Total     int
	Err       error
}

// OpenViewerMsg asks the app to open the viewer on an artifact.
type OpenViewerMsg struct {
	ArtifactID string
}

// NewOrderMsg asks the app to open the order form.
type NewOrderMsg struct{}

// DeleteRequestMsg asks the app to confirm deletion of the given IDs.
// Nothing is removed until the API confirms.
type DeleteRequestMsg struct {
	IDs []string
}

type deletedMsg struct {
	ids []string
	err error
}

type downloadedMsg struct {
	path string
	err  error
}

type favoriteMsg struct {
	id  string
	fav bool
	err error
}

// Model is the gallery grid. Selection is kept as an ID set; the
// visible slice is the filtered and sorted projection of the loaded
// artifacts, rebuilt whenever either changes.
type Model struct {
	client *artifact.Client
	broker *pubsub.Broker[pubsub.Payload]
	keys   keys.GalleryKeyMap

	artifacts []artifact.Artifact
	visible   []artifact.Artifact
	selected  map[string]struct{}

	filters   map[string]string
	sortField string
	sortAsc   bool

	cursor  int
	columns int

	filterInput textinput.Model
	filtering   bool

	spinner spinner.Model
	loading bool
	loadErr error

	downloadDir string
	total       int

	width  int
	height int
}

// New creates a gallery backed by the given client and event broker.
func New(client *artifact.Client, broker *pubsub.Broker[pubsub.Payload], cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "field=value (empty value clears)"
	ti.CharLimit = 120
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.SpinnerColor)

	columns := cfg.UI.GridColumns
	if columns <= 0 {
		columns = defaultColumns
	}

	filters := make(map[string]string, len(cfg.Filters))
	for k, v := range cfg.Filters {
		filters[k] = v
	}

	return Model{
		client:      client,
		broker:      broker,
		keys:        keys.DefaultGalleryKeyMap(),
		selected:    make(map[string]struct{}),
		filters:     filters,
		sortField:   "created_at",
		sortAsc:     false,
		columns:     columns,
		filterInput: ti,
		spinner:     sp,
		downloadDir: cfg.UI.DownloadDir,
	}
}

// Init starts the spinner and the initial page load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.LoadCmd())
}

// LoadCmd fetches the first artifact page with the current filters.
func (m Model) LoadCmd() tea.Cmd {
	client := m.client
	filters := m.filters
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
		defer cancel()
		page, err := client.FetchArtifactPage(ctx, 1, filters)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Artifacts: page.Artifacts, Total: page.Total}
	}
}

// LoadArtifacts replaces the collection. The cursor resets and any
// selection entries for IDs no longer present are evicted.
func (m Model) LoadArtifacts(items []artifact.Artifact) Model {
	m.artifacts = append([]artifact.Artifact(nil), items...)
	m.pruneSelection()
	m.cursor = 0
	return m.rebuild()
}

// AddArtifact inserts a newly generated artifact, appended by default
// or prepended when it should lead the collection.
func (m Model) AddArtifact(art artifact.Artifact, prepend bool) Model {
	if prepend {
		m.artifacts = append([]artifact.Artifact{art}, m.artifacts...)
	} else {
		m.artifacts = append(m.artifacts, art)
	}
	return m.rebuild()
}

// RemoveArtifact drops an artifact by ID. Unknown IDs are a no-op.
func (m Model) RemoveArtifact(id string) Model {
	for i, a := range m.artifacts {
		if a.ID == id {
			m.artifacts = append(m.artifacts[:i:i], m.artifacts[i+1:]...)
			break
		}
	}
	m.pruneSelection()
	return m.rebuild()
}

// Artifacts returns the loaded artifacts in load order.
func (m Model) Artifacts() []artifact.Artifact {
	return m.artifacts
}

// Visible returns the filtered, sorted projection.
func (m Model) Visible() []artifact.Artifact {
	return m.visible
}

// SelectedIDs returns the selected IDs in visible order.
func (m Model) SelectedIDs() []string {
	ids := make([]string, 0, len(m.selected))
	for _, a := range m.visible {
		if _, ok := m.selected[a.ID]; ok {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// CursorArtifact returns the artifact under the grid cursor.
func (m Model) CursorArtifact() (artifact.Artifact, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return artifact.Artifact{}, false
	}
	return m.visible[m.cursor], true
}

// Filtering reports whether the filter input has focus.
func (m Model) Filtering() bool {
	return m.filtering
}

// SetSize updates layout bounds.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// rebuild recomputes the visible projection and clamps the cursor.
func (m Model) rebuild() Model {
	m.visible = nil
	for _, a := range m.artifacts {
		if matchesFilters(a, m.filters) {
			m.visible = append(m.visible, a)
		}
	}
	sortArtifacts(m.visible, m.sortField, m.sortAsc)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return m
}

// pruneSelection keeps the selection a subset of loaded IDs.
func (m *Model) pruneSelection() {
	loaded := make(map[string]struct{}, len(m.artifacts))
	for _, a := range m.artifacts {
		loaded[a.ID] = struct{}{}
	}
	changed := false
	for id := range m.selected {
		if _, ok := loaded[id]; !ok {
			delete(m.selected, id)
			changed = true
		}
	}
	if changed {
		m.publishSelection()
	}
}

func (m Model) publishSelection() {
	if m.broker == nil {
		return
	}
	m.broker.Publish(pubsub.EventSelectionChanged, pubsub.Payload(pubsub.SelectionChanged{IDs: m.SelectedIDs()}))
}

func (m Model) publishFailure(action string, err error) {
	if m.broker == nil || err == nil {
		return
	}
	m.broker.Publish(pubsub.EventActionFailed, pubsub.Payload(pubsub.ActionFailed{Action: action, Message: err.Error()}))
}

// Update handles messages. Key handling is split between filter-entry
// mode and grid mode.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.loadErr = msg.Err
			log.ErrorErr(log.CatGallery, "Gallery load failed", msg.Err)
			return m, nil
		}
		m.loadErr = nil
		m.total = msg.Total
		return m.LoadArtifacts(msg.Artifacts), nil

	case deletedMsg:
		if msg.err != nil {
			m.publishFailure("delete", msg.err)
			return m, nil
		}
		for _, id := range msg.ids {
			m = m.RemoveArtifact(id)
		}
		if m.broker != nil {
			m.broker.Publish(pubsub.EventArtifactDeleted, pubsub.Payload(pubsub.ArtifactDeleted{IDs: msg.ids}))
		}
		return m, nil

	case downloadedMsg:
		if msg.err != nil {
			m.publishFailure("download", msg.err)
		} else {
			log.Info(log.CatGallery, "Download finished", "path", msg.path)
		}
		return m, nil

	case favoriteMsg:
		if msg.err != nil {
			m.publishFailure("favorite", msg.err)
			return m, nil
		}
		for i := range m.artifacts {
			if m.artifacts[i].ID == msg.id {
				m.artifacts[i].Favorite = msg.fav
			}
		}
		return m.rebuild(), nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleGridKey(msg)
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		expr := m.filterInput.Value()
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		if field, value, ok := parseFilter(expr); ok {
			if value == "" {
				delete(m.filters, field)
			} else {
				m.filters[field] = value
			}
			m = m.rebuild()
			filters := m.filters
			return m, func() tea.Msg {
				if err := config.SaveFilters(filters); err != nil {
					log.ErrorErr(log.CatConfig, "Persisting filters failed", err)
				}
				return nil
			}
		}
		return m, nil
	case tea.KeyEsc:
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

func (m Model) handleGridKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Up):
		return m.moveCursor(-m.columns), nil
	case key.Matches(msg, k.Down):
		return m.moveCursor(m.columns), nil
	case key.Matches(msg, k.Left):
		return m.moveCursor(-1), nil
	case key.Matches(msg, k.Right):
		return m.moveCursor(1), nil

	case key.Matches(msg, k.Open):
		if art, ok := m.CursorArtifact(); ok {
			return m, m.openViewerCmd(art.ID, "inventory_grid")
		}
		return m, nil

	case key.Matches(msg, k.Select):
		if art, ok := m.CursorArtifact(); ok {
			m = m.toggleSelected(art.ID)
		}
		return m, nil

	case key.Matches(msg, k.SelectAll):
		return m.SelectAll(), nil

	case key.Matches(msg, k.DeselectAll):
		return m.DeselectAll(), nil

	case key.Matches(msg, k.Download):
		return m, m.DownloadSelectedCmd()

	case key.Matches(msg, k.Delete):
		ids := m.deleteTargets()
		if len(ids) == 0 {
			return m, nil
		}
		return m, func() tea.Msg { return DeleteRequestMsg{IDs: ids} }

	case key.Matches(msg, k.Favorite):
		if art, ok := m.CursorArtifact(); ok {
			return m, m.toggleFavoriteCmd(art.ID, !art.Favorite)
		}
		return m, nil

	case key.Matches(msg, k.NewOrder):
		return m, func() tea.Msg { return NewOrderMsg{} }

	case key.Matches(msg, k.Refresh):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.LoadCmd())

	case key.Matches(msg, k.Filter):
		m.filtering = true
		m.filterInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, k.CycleSort):
		m = m.cycleSort()
		return m, nil

	case key.Matches(msg, k.SortDir):
		m.sortAsc = !m.sortAsc
		return m.rebuild(), nil
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for _, art := range m.visible {
		c := m.cardFor(art)
		switch c.HitTest(msg) {
		case card.TargetCheckbox:
			return m.toggleSelected(art.ID), nil
		case card.TargetDownload:
			return m, m.downloadCmd([]string{art.ID})
		case card.TargetDelete:
			id := art.ID
			return m, func() tea.Msg { return DeleteRequestMsg{IDs: []string{id}} }
		case card.TargetBody:
			return m.handleBodyClick(art)
		}
	}
	return m, nil
}

func (m Model) handleBodyClick(art artifact.Artifact) (Model, tea.Cmd) {
	for i, v := range m.visible {
		if v.ID == art.ID {
			m.cursor = i
			break
		}
	}
	return m, m.openViewerCmd(art.ID, "inventory_grid")
}

func (m Model) openViewerCmd(id, origin string) tea.Cmd {
	if m.broker != nil {
		m.broker.Publish(pubsub.EventViewerOpenRequested, pubsub.Payload(pubsub.ViewerOpenRequested{ArtifactID: id, Origin: origin}))
	}
	return func() tea.Msg { return OpenViewerMsg{ArtifactID: id} }
}

func (m Model) moveCursor(delta int) Model {
	next := m.cursor + delta
	if next < 0 || next >= len(m.visible) {
		return m
	}
	m.cursor = next
	return m
}

func (m Model) toggleSelected(id string) Model {
	if _, ok := m.selected[id]; ok {
		delete(m.selected, id)
	} else {
		m.selected[id] = struct{}{}
	}
	m.publishSelection()
	return m
}

// SelectAll selects every artifact in the filtered set. Hidden
// artifacts are untouched.
func (m Model) SelectAll() Model {
	for _, a := range m.visible {
		m.selected[a.ID] = struct{}{}
	}
	m.publishSelection()
	return m
}

// DeselectAll clears selection within the filtered set only.
func (m Model) DeselectAll() Model {
	for _, a := range m.visible {
		delete(m.selected, a.ID)
	}
	m.publishSelection()
	return m
}

// deleteTargets is the selection, or the cursor artifact when nothing
// is selected.
func (m Model) deleteTargets() []string {
	if ids := m.SelectedIDs(); len(ids) > 0 {
		return ids
	}
	if art, ok := m.CursorArtifact(); ok {
		return []string{art.ID}
	}
	return nil
}

// DownloadSelectedCmd downloads the selection: one artifact fetches
// the single file, several request an archive, none is a no-op.
func (m Model) DownloadSelectedCmd() tea.Cmd {
	ids := m.SelectedIDs()
	if len(ids) == 0 {
		if art, ok := m.CursorArtifact(); ok {
			ids = []string{art.ID}
		}
	}
	return m.downloadCmd(ids)
}

func (m Model) downloadCmd(ids []string) tea.Cmd {
	if len(ids) == 0 {
		return nil
	}
	client := m.client
	dir := m.downloadDir
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
		defer cancel()
		var path string
		var err error
		if len(ids) == 1 {
			path, err = client.DownloadArtifact(ctx, ids[0], dir)
		} else {
			path, err = client.DownloadArchive(ctx, ids, dir)
		}
		return downloadedMsg{path: path, err: err}
	}
}

// DeleteCmd deletes the given IDs after the app-level confirmation.
// Removal happens only on API success.
func (m Model) DeleteCmd(ids []string) tea.Cmd {
	if len(ids) == 0 {
		return nil
	}
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), clientTimeout)
		defer cancel()
		var (
			res artifact.MutationResult
			err error
		)
		if len(ids) == 1 {
			res, err = client.DeleteArtifact(ctx, ids[0])
		} else {
			res, err = client.BulkDelete(ctx, ids)
		}
		if err == nil && !res.Success {
			err = errors.New(res.Message)
		}
		return deletedMsg{ids: ids, err: err}
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

func (m Model) cycleSort() Model {
	for i, f := range sortFields {
		if f == m.sortField {
			m.sortField = sortFields[(i+1)%len(sortFields)]
			return m.rebuild()
		}
	}
	m.sortField = sortFields[0]
	return m.rebuild()
}

func (m Model) cardFor(art artifact.Artifact) card.Model {
	c := card.New(art, card.Config{
		Variant:      card.VariantStandard,
		ShowCheckbox: true,
		ShowActions:  true,
		ShowDelete:   true,
		ClickAction:  card.ClickViewer,
		Width:        cardWidth,
	})
	_, selected := m.selected[art.ID]
	c = c.SetSelected(selected)
	return c
}

// View renders the grid with a status line.
func (m Model) View() string {
	var sections []string

	if m.filtering {
		sections = append(sections, "filter: "+m.filterInput.View())
	}

	switch {
	case m.loading:
		sections = append(sections, m.spinner.View()+" loading artifacts")
	case m.loadErr != nil:
		sections = append(sections, styles.ErrorStyle.Render("load failed: "+m.loadErr.Error()))
	case len(m.visible) == 0:
		sections = append(sections, m.renderEmptyState())
	default:
		sections = append(sections, m.renderGrid())
	}

	sections = append(sections, m.renderStatusLine())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderGrid() string {
	var rows []string
	for start := 0; start < len(m.visible); start += m.columns {
		end := start + m.columns
		if end > len(m.visible) {
			end = len(m.visible)
		}
		cells := make([]string, 0, m.columns)
		for i := start; i < end; i++ {
			c := m.cardFor(m.visible[i]).SetFocused(i == m.cursor)
			cells = append(cells, c.View())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderEmptyState() string {
	msg := "No artifacts yet. Press n to place an order."
	if len(m.filters) > 0 {
		msg = "No artifacts match the active filters."
	}
	return lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		Padding(1, 2).
		Render(msg)
}

func (m Model) renderStatusLine() string {
	status := ""
	if len(m.visible) != len(m.artifacts) {
		status = strconv.Itoa(len(m.visible)) + " of " + strconv.Itoa(len(m.artifacts)) + " artifacts"
	} else {
		status = strconv.Itoa(len(m.artifacts)) + " artifacts"
	}
	if n := len(m.SelectedIDs()); n > 0 {
		status += " · " + strconv.Itoa(n) + " selected"
	}
	if desc := describeFilters(m.filters); desc != "" {
		status += " · " + desc
	}
	dir := "desc"
	if m.sortAsc {
		dir = "asc"
	}
	status += " · sort " + m.sortField + " " + dir
	return styles.StatusBarStyle.Render(status)
}
