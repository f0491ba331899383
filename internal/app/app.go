// Package app contains the root application model: it owns the
// gallery, viewer, order tracker, toaster, and modal surfaces and
// routes messages between them.
package app

import (
	"context"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/bendavieshe3/art-factory-sub001/internal/artifact"
	"github.com/bendavieshe3/art-factory-sub001/internal/cachemanager"
	"github.com/bendavieshe3/art-factory-sub001/internal/config"
	"github.com/bendavieshe3/art-factory-sub001/internal/history"
	"github.com/bendavieshe3/art-factory-sub001/internal/log"
	"github.com/bendavieshe3/art-factory-sub001/internal/pubsub"
	"github.com/bendavieshe3/art-factory-sub001/internal/ui/gallery"
	"github.com/bendavieshe3/art-factory-sub001/internal/ui/help"
	"github.com/bendavieshe3/art-factory-sub001/internal/ui/modal"
	"github.com/bendavieshe3/art-factory-sub001/internal/ui/orderprogress"
	"github.com/bendavieshe3/art-factory-sub001/internal/ui/toaster"
	"github.com/bendavieshe3/art-factory-sub001/internal/ui/viewer"
)

// Services holds the shared dependencies passed to every surface.
type Services struct {
	Client *artifact.Client
	Config *config.Config
}

type surface int

const (
	surfaceGallery surface = iota
	surfaceViewer
)

type modalKind int

const (
	modalNone modalKind = iota
	modalDeleteGallery
	modalDeleteViewer
	modalOrder
)

const (
	toastDuration  = 3 * time.Second
	cacheExpiry    = 10 * time.Minute
	cacheCleanup   = 30 * time.Minute
	viewerCacheUse = "viewer-preload"
)

// Model is the root application state.
type Model struct {
	services Services

	broker       *pubsub.Broker[pubsub.Payload]
	listener     *pubsub.ContinuousListener[pubsub.Payload]
	listenCancel context.CancelFunc

	hist  *history.Stack
	cache cachemanager.CacheManager[string, artifact.Artifact]

	surface surface
	gallery gallery.Model
	viewer  viewer.Model
	tracker orderprogress.Model
	toaster toaster.Model

	modal         modal.Model
	modalKind     modalKind
	pendingDelete []string

	helpView help.Model
	helpOn   bool

	width  int
	height int
}

// New creates the application model and its event plumbing.
func New(services Services) Model {
	broker := pubsub.NewBroker[pubsub.Payload]()
	ctx, cancel := context.WithCancel(context.Background())
	listener := pubsub.NewContinuousListener(ctx, broker)

	hist := &history.Stack{}
	hist.Push(history.Entry{Route: history.RouteGallery})

	cache := cachemanager.NewInMemoryCacheManager[string, artifact.Artifact](viewerCacheUse, cacheExpiry, cacheCleanup)

	cfg := *services.Config
	return Model{
		services:     services,
		broker:       broker,
		listener:     listener,
		listenCancel: cancel,
		hist:         hist,
		cache:        cache,
		gallery:      gallery.New(services.Client, broker, cfg),
		viewer:       viewer.New(services.Client, broker, cache, hist, cfg),
		tracker:      orderprogress.New(services.Client, broker, cfg),
		toaster:      toaster.New(),
		helpView:     help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.gallery.Init(), m.listener.Listen())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.gallery = m.gallery.SetSize(msg.Width, msg.Height)
		m.viewer = m.viewer.SetSize(msg.Width, msg.Height)
		m.tracker = m.tracker.SetWidth(msg.Width)
		m.toaster = m.toaster.SetSize(msg.Width, msg.Height)
		m.helpView = m.helpView.SetSize(msg.Width, msg.Height)
		if m.modalKind != modalNone {
			m.modal.SetSize(msg.Width, msg.Height)
		}
		return m, nil

	case pubsub.Event[pubsub.Payload]:
		return m.handleEvent(msg)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case gallery.OpenViewerMsg:
		return m.openViewer(m.gallery.Visible(), msg.ArtifactID)

	case orderprogress.OpenViewerMsg:
		// The strip artifact may not have reached the grid yet; give
		// the viewer a single-item session in that case.
		items := m.gallery.Visible()
		if !containsArtifact(items, msg.Artifact.ID) {
			items = []artifact.Artifact{msg.Artifact}
		}
		return m.openViewer(items, msg.Artifact.ID)

	case gallery.NewOrderMsg:
		return m.openOrderModal()

	case gallery.DeleteRequestMsg:
		return m.openDeleteModal(modalDeleteGallery, msg.IDs)

	case viewer.DeleteRequestMsg:
		return m.openDeleteModal(modalDeleteViewer, []string{msg.ID})

	case viewer.ClosedMsg:
		m.surface = surfaceGallery
		return m, nil

	case viewer.ArtifactDeletedMsg:
		m.gallery = m.gallery.RemoveArtifact(msg.ID)
		return m, nil

	case orderprogress.ReloadRequestMsg:
		return m, m.gallery.LoadCmd()

	case modal.SubmitMsg:
		return m.handleModalSubmit(msg)

	case modal.CancelMsg:
		m.modalKind = modalNone
		m.pendingDelete = nil
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.modalKind != modalNone {
			var cmd tea.Cmd
			m.modal, cmd = m.modal.Update(msg)
			return m, cmd
		}
		// The tracker strip shares the gallery surface; its card gets
		// first claim on the click.
		if m.surface == surfaceGallery {
			var cmd tea.Cmd
			m.tracker, cmd = m.tracker.HandleMouse(msg)
			if cmd != nil {
				return m, cmd
			}
		}
		return m.routeToSurface(msg)
	}

	// Component-internal messages (fetch results, poll ticks, spinner
	// frames) are routed everywhere; each surface ignores what it does
	// not recognize.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.gallery, cmd = m.gallery.Update(msg)
	cmds = append(cmds, cmd)
	m.viewer, cmd = m.viewer.Update(msg)
	cmds = append(cmds, cmd)
	m.tracker, cmd = m.tracker.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleEvent bridges broker events to toast notifications.
func (m Model) handleEvent(msg pubsub.Event[pubsub.Payload]) (tea.Model, tea.Cmd) {
	var (
		text  string
		style = toaster.StyleInfo
	)

	switch payload := msg.Payload.(type) {
	case pubsub.ActionFailed:
		text = payload.Action + " failed: " + payload.Message
		style = toaster.StyleError
	case pubsub.ArtifactDeleted:
		text = strconv.Itoa(len(payload.IDs)) + " artifact(s) deleted"
		style = toaster.StyleSuccess
	case pubsub.OrderUpdate:
		switch msg.Type {
		case pubsub.EventOrderSubmitted:
			text = "order " + payload.OrderID + " accepted"
		case pubsub.EventOrderCompleted:
			text = "order " + payload.OrderID + " completed"
			style = toaster.StyleSuccess
		case pubsub.EventOrderFailed:
			text = "order failed: " + payload.Message
			style = toaster.StyleError
		case pubsub.EventOrderTimedOut:
			text = "order " + payload.OrderID + " timed out"
			style = toaster.StyleError
		}
	}

	if text == "" {
		return m, m.listener.Listen()
	}
	m.toaster = m.toaster.Show(text, style)
	return m, tea.Batch(m.toaster.ScheduleDismiss(toastDuration), m.listener.Listen())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.modalKind != modalNone {
		var cmd tea.Cmd
		m.modal, cmd = m.modal.Update(msg)
		return m, cmd
	}

	if m.helpOn {
		switch msg.String() {
		case "?", "esc", "q":
			m.helpOn = false
		}
		return m, nil
	}
	if msg.String() == "?" && !(m.surface == surfaceGallery && m.gallery.Filtering()) {
		m.helpOn = true
		mode := help.ModeGallery
		if m.surface == surfaceViewer {
			mode = help.ModeViewer
		}
		m.helpView = m.helpView.SetMode(mode)
		return m, nil
	}

	// Platform back: pops history and closes the viewer without a
	// second history mutation.
	if msg.String() == "backspace" && m.surface == surfaceViewer {
		if _, ok := m.hist.Back(); ok {
			var cmd tea.Cmd
			m.viewer, cmd = m.viewer.CloseFromHistory()
			return m, cmd
		}
	}

	if msg.String() == "q" && m.surface == surfaceGallery && !m.gallery.Filtering() {
		return m, tea.Quit
	}

	return m.routeToSurface(msg)
}

func (m Model) openViewer(items []artifact.Artifact, id string) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewer, cmd = m.viewer.Open(items, id)
	if m.viewer.State() != viewer.StateClosed {
		m.surface = surfaceViewer
	}
	return m, cmd
}

func containsArtifact(items []artifact.Artifact, id string) bool {
	for _, a := range items {
		if a.ID == id {
			return true
		}
	}
	return false
}

func (m Model) routeToSurface(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.surface {
	case surfaceViewer:
		m.viewer, cmd = m.viewer.Update(msg)
	default:
		m.gallery, cmd = m.gallery.Update(msg)
	}
	return m, cmd
}

func (m Model) openDeleteModal(kind modalKind, ids []string) (tea.Model, tea.Cmd) {
	m.modalKind = kind
	m.pendingDelete = ids
	message := "Delete " + strconv.Itoa(len(ids)) + " artifact(s)? This cannot be undone."
	m.modal = modal.New(modal.Config{
		Title:          "Delete Artifacts",
		Message:        message,
		ConfirmVariant: modal.ButtonDanger,
		ConfirmLabel:   "Delete",
	})
	m.modal.SetSize(m.width, m.height)
	return m, m.modal.Init()
}

func (m Model) openOrderModal() (tea.Model, tea.Cmd) {
	m.modalKind = modalOrder
	m.modal = modal.New(modal.Config{
		Title: "New Order",
		Inputs: []modal.InputConfig{
			{Key: "prompt", Label: "Prompt", Placeholder: "what to generate", Required: true},
			{Key: "negative", Label: "Negative Prompt", Placeholder: "what to avoid"},
			{Key: "provider", Label: "Provider", Placeholder: "fal.ai", Required: true},
			{Key: "model", Label: "Model", Placeholder: "flux-dev", Required: true},
			{Key: "quantity", Label: "Quantity", Placeholder: "1", MaxLength: 3},
		},
		ConfirmLabel: "Submit",
		MinWidth:     60,
	})
	m.modal.SetSize(m.width, m.height)
	return m, m.modal.Init()
}

func (m Model) handleModalSubmit(msg modal.SubmitMsg) (tea.Model, tea.Cmd) {
	kind := m.modalKind
	m.modalKind = modalNone

	switch kind {
	case modalDeleteGallery:
		ids := m.pendingDelete
		m.pendingDelete = nil
		return m, m.gallery.DeleteCmd(ids)

	case modalDeleteViewer:
		ids := m.pendingDelete
		m.pendingDelete = nil
		if len(ids) == 1 {
			return m, m.viewer.DeleteCmd(ids[0])
		}
		return m, nil

	case modalOrder:
		quantity, err := strconv.Atoi(msg.Values["quantity"])
		if err != nil || quantity < 1 {
			quantity = 1
		}
		payload := artifact.OrderPayload{
			Prompt:   msg.Values["prompt"],
			Negative: msg.Values["negative"],
			Provider: msg.Values["provider"],
			Model:    msg.Values["model"],
			Quantity: quantity,
		}
		var cmd tea.Cmd
		m.tracker, cmd = m.tracker.Submit(payload)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model. zone.Scan runs once here over the final
// frame; components only mark.
func (m Model) View() string {
	var view string
	switch m.surface {
	case surfaceViewer:
		view = m.viewer.View()
	default:
		sections := []string{m.gallery.View()}
		if tracker := m.tracker.View(); tracker != "" {
			sections = append(sections, tracker)
		}
		view = lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	if m.helpOn {
		view = m.helpView.Overlay(view)
	}
	if m.toaster.Visible() {
		view = m.toaster.Overlay(view, m.width, m.height)
	}
	if m.modalKind != modalNone {
		view = m.modal.Overlay(view)
	}

	return zone.Scan(view)
}

// Close releases the event plumbing.
func (m *Model) Close() {
	m.listenCancel()
	m.broker.Close()
	if err := m.cache.Flush(context.Background()); err != nil {
		log.Warn(log.CatCache, "Cache flush on shutdown failed", "error", err)
	}
}
