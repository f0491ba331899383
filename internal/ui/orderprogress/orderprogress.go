// Package orderprogress tracks a generation order from submission to a
// terminal state, polling the backend on a fixed interval.
package orderprogress

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bendavieshe3/art-factory-sub001/internal/artifact"
	"github.com/bendavieshe3/art-factory-sub001/internal/config"
	"github.com/bendavieshe3/art-factory-sub001/internal/log"
	"github.com/bendavieshe3/art-factory-sub001/internal/pubsub"
	"github.com/bendavieshe3/art-factory-sub001/internal/ui/card"
	"github.com/bendavieshe3/art-factory-sub001/internal/ui/styles"
)

// State is the tracker lifecycle state.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateQueued
	StateProcessing
	StateCompleted
	StateFailed
	StateTimedOut
)

func (s State) terminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateTimedOut
}

const submitTimeout = 30 * time.Second

// ReloadRequestMsg asks the app to reload the gallery after an order
// completes and settles.
type ReloadRequestMsg struct{}

// OpenViewerMsg asks the app to open the viewer on the strip's latest
// artifact.
type OpenViewerMsg struct {
	Artifact artifact.Artifact
}

type submittedMsg struct {
	gen     int
	orderID string
	err     error
}

type pollTickMsg struct {
	gen int
}

type statusMsg struct {
	gen  int
	resp artifact.OrderStatusResponse
	err  error
}

type settledMsg struct {
	gen int
}

// Model is the order progress tracker. The generation counter
// guarantees a single live timer chain: starting a new order bumps it
// and every message stamped with an older generation is dropped.
type Model struct {
	client *artifact.Client
	broker *pubsub.Broker[pubsub.Payload]

	state   State
	orderID string
	percent float64
	counts  artifact.StatusCounts
	total   int
	latest  *artifact.Artifact
	failMsg string

	gen      int
	attempts int
	pending  State // terminal state awaiting the settle delay

	pollInterval time.Duration
	maxAttempts  int
	settleDelay  time.Duration

	spinner spinner.Model
	bar     progress.Model

	width int
}

// New creates an idle tracker.
func New(client *artifact.Client, broker *pubsub.Broker[pubsub.Payload], cfg config.Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.SpinnerColor)

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	return Model{
		client:       client,
		broker:       broker,
		spinner:      sp,
		bar:          bar,
		pollInterval: cfg.Order.PollInterval,
		maxAttempts:  cfg.Order.MaxPollAttempts,
		settleDelay:  cfg.Order.SettleDelay,
	}
}

// State returns the lifecycle state.
func (m Model) State() State {
	return m.state
}

// OrderID returns the tracked order, empty while idle or submitting.
func (m Model) OrderID() string {
	return m.orderID
}

// Active reports whether an order is in flight.
func (m Model) Active() bool {
	return m.state != StateIdle && !m.state.terminal()
}

// LatestArtifact returns the most recent artifact the order reported,
// nil before any item finishes.
func (m Model) LatestArtifact() *artifact.Artifact {
	return m.latest
}

// Dismiss clears a settled tracker back to idle. Bumping the
// generation kills any timer still in flight.
func (m Model) Dismiss() Model {
	m.gen++
	m.state = StateIdle
	m.orderID = ""
	m.latest = nil
	m.failMsg = ""
	return m
}

// SetWidth adjusts the progress bar to the layout.
func (m Model) SetWidth(w int) Model {
	m.width = w
	if w > 20 {
		m.bar.Width = w - 10
	}
	return m
}

// Submit starts tracking a new order. Any previous order's timers die
// with the generation bump.
func (m Model) Submit(payload artifact.OrderPayload) (Model, tea.Cmd) {
	m.gen++
	m.attempts = 0
	m.state = StateSubmitting
	m.orderID = ""
	m.percent = 0
	m.counts = artifact.StatusCounts{}
	m.latest = nil
	m.failMsg = ""

	gen := m.gen
	client := m.client
	log.Info(log.CatOrder, "Submitting order", "provider", payload.Provider, "model", payload.Model, "quantity", payload.Quantity)
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()
		orderID, err := client.PlaceOrder(ctx, payload)
		return submittedMsg{gen: gen, orderID: orderID, err: err}
	})
}

// Update handles tracker messages. Everything generation-stamped is
// checked against the live generation first.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil {
			m.state = StateFailed
			m.failMsg = msg.err.Error()
			m.publish(pubsub.EventOrderFailed, m.failMsg)
			log.ErrorErr(log.CatOrder, "Order submission failed", msg.err)
			return m, nil
		}
		m.orderID = msg.orderID
		m.state = StateQueued
		m.publish(pubsub.EventOrderSubmitted, "")
		log.Info(log.CatOrder, "Order accepted", "order_id", msg.orderID)
		return m, m.scheduleTick()

	case pollTickMsg:
		if msg.gen != m.gen || m.state.terminal() || m.state == StateIdle {
			return m, nil
		}
		return m, m.fetchStatusCmd()

	case statusMsg:
		if msg.gen != m.gen || m.state.terminal() {
			return m, nil
		}
		return m.handleStatus(msg)

	case settledMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		return m.handleSettled()

	case spinner.TickMsg:
		if !m.Active() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleStatus(msg statusMsg) (Model, tea.Cmd) {
	m.attempts++

	if msg.err != nil {
		log.Warn(log.CatOrder, "Status poll failed", "order_id", m.orderID, "attempt", m.attempts, "error", msg.err)
		if m.attempts >= m.maxAttempts {
			return m.timeOut()
		}
		if artifact.IsRetryable(msg.err) {
			return m, m.scheduleTick()
		}
		m.failMsg = msg.err.Error()
		m.pending = StateFailed
		return m, m.settleCmd()
	}

	resp := msg.resp
	m.percent = resp.Progress
	m.counts = resp.StatusCounts
	m.total = resp.TotalItems
	if resp.LatestArtifact != nil {
		m.latest = resp.LatestArtifact
	}

	switch resp.Status {
	case artifact.OrderCompleted:
		m.percent = 100
		log.Info(log.CatOrder, "Order completed", "order_id", m.orderID, "attempts", m.attempts)
		m.pending = StateCompleted
		return m, m.settleCmd()
	case artifact.OrderFailed:
		m.failMsg = resp.Error
		m.pending = StateFailed
		return m, m.settleCmd()
	case artifact.OrderProcessing:
		m.state = StateProcessing
	default:
		m.state = StateQueued
	}

	if m.attempts >= m.maxAttempts {
		return m.timeOut()
	}
	return m, m.scheduleTick()
}

// handleSettled applies the terminal state decided before the settle
// delay and, on completion, asks the app for one gallery reload.
func (m Model) handleSettled() (Model, tea.Cmd) {
	switch m.pending {
	case StateCompleted:
		m.state = StateCompleted
		m.publish(pubsub.EventOrderCompleted, "")
		return m, func() tea.Msg { return ReloadRequestMsg{} }
	case StateFailed:
		m.state = StateFailed
		m.publish(pubsub.EventOrderFailed, m.failMsg)
		return m, nil
	}
	return m, nil
}

func (m Model) timeOut() (Model, tea.Cmd) {
	m.state = StateTimedOut
	m.failMsg = "order status polling timed out"
	m.publish(pubsub.EventOrderTimedOut, m.failMsg)
	log.Error(log.CatOrder, "Order polling timed out", "order_id", m.orderID, "attempts", m.attempts)
	return m, nil
}

func (m Model) scheduleTick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.pollInterval, func(time.Time) tea.Msg {
		return pollTickMsg{gen: gen}
	})
}

func (m Model) settleCmd() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.settleDelay, func(time.Time) tea.Msg {
		return settledMsg{gen: gen}
	})
}

func (m Model) fetchStatusCmd() tea.Cmd {
	gen := m.gen
	client := m.client
	orderID := m.orderID
	timeout := m.pollInterval
	if timeout < time.Second {
		timeout = time.Second
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout*2)
		defer cancel()
		resp, err := client.FetchOrderStatus(ctx, orderID)
		return statusMsg{gen: gen, resp: resp, err: err}
	}
}

func (m Model) publish(eventType pubsub.EventType, message string) {
	if m.broker == nil {
		return
	}
	m.broker.Publish(eventType, pubsub.Payload(pubsub.OrderUpdate{OrderID: m.orderID, Message: message}))
}

// View renders the tracker strip, empty while idle.
func (m Model) View() string {
	switch m.state {
	case StateIdle:
		return ""
	case StateSubmitting:
		return m.spinner.View() + " submitting order"
	}

	var sections []string
	header := "order " + m.orderID
	switch m.state {
	case StateQueued:
		header += " · " + styles.OrderQueuedStyle.Render("queued")
	case StateProcessing:
		header += " · " + styles.OrderProcessingStyle.Render("processing")
	case StateCompleted:
		header += " · " + styles.OrderCompletedStyle.Render("completed")
	case StateFailed:
		header += " · " + styles.OrderFailedStyle.Render("failed")
	case StateTimedOut:
		header += " · " + styles.OrderTimedOutStyle.Render("timed out")
	}
	sections = append(sections, header)

	if m.state == StateQueued || m.state == StateProcessing || m.state == StateCompleted {
		counts := fmt.Sprintf("%d pending · %d processing · %d completed · %d failed of %d",
			m.counts.Pending, m.counts.Processing, m.counts.Completed, m.counts.Failed, m.total)
		sections = append(sections,
			m.bar.ViewAs(m.percent/100),
			lipgloss.NewStyle().Foreground(styles.TextSecondaryColor).Render(counts),
		)
	}

	if m.failMsg != "" && (m.state == StateFailed || m.state == StateTimedOut) {
		sections = append(sections, styles.ErrorStyle.Render(m.failMsg))
	}

	if m.latest != nil {
		sections = append(sections, m.latestCard().View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

const stripZoneNS = "orderstrip"

func (m Model) latestCard() card.Model {
	return card.New(*m.latest, card.Config{Variant: card.VariantCompact, ClickAction: card.ClickViewer, Width: 30, ZoneNS: stripZoneNS})
}

// HandleMouse hit-tests the latest-artifact card. The strip renders on
// the gallery surface, so the app routes clicks here before the grid.
func (m Model) HandleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft || m.latest == nil {
		return m, nil
	}
	if m.latestCard().HitTest(msg) != card.TargetBody {
		return m, nil
	}
	art := *m.latest
	if m.broker != nil {
		m.broker.Publish(pubsub.EventViewerOpenRequested, pubsub.Payload(pubsub.ViewerOpenRequested{ArtifactID: art.ID, Origin: "order_strip"}))
	}
	return m, func() tea.Msg { return OpenViewerMsg{Artifact: art} }
}
