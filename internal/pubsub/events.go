// Package pubsub provides a generic publish/subscribe event system and
// the closed set of events the client engine exposes to external
// listeners (notification surfaces, page controllers).
package pubsub

import (
	"context"
	"time"
)

// EventType tags an engine event. The set is closed: every type has
// exactly one payload shape, listed next to its constant.
type EventType string

const (
	// EventSelectionChanged carries SelectionChanged.
	EventSelectionChanged EventType = "selection_changed"
	// EventViewerOpenRequested carries ViewerOpenRequested.
	EventViewerOpenRequested EventType = "viewer_open_requested"
	// EventArtifactDeleted carries ArtifactDeleted.
	EventArtifactDeleted EventType = "artifact_deleted"
	// EventActionFailed carries ActionFailed.
	EventActionFailed EventType = "action_failed"
	// EventOrderSubmitted carries OrderUpdate.
	EventOrderSubmitted EventType = "order_submitted"
	// EventOrderCompleted carries OrderUpdate.
	EventOrderCompleted EventType = "order_completed"
	// EventOrderFailed carries OrderUpdate.
	EventOrderFailed EventType = "order_failed"
	// EventOrderTimedOut carries OrderUpdate.
	EventOrderTimedOut EventType = "order_timed_out"
)

// Payload is the closed union of engine event payloads.
type Payload interface {
	isPayload()
}

// SelectionChanged reports the full selected-ID set after any change.
type SelectionChanged struct {
	IDs []string
}

// ViewerOpenRequested reports a card click that asked for the viewer,
// with the origin surface ("order_strip" or "inventory_grid").
type ViewerOpenRequested struct {
	ArtifactID string
	Origin     string
}

// ArtifactDeleted reports server-confirmed deletions.
type ArtifactDeleted struct {
	IDs []string
}

// ActionFailed reports a failed mutating action with the server's
// message passed through verbatim.
type ActionFailed struct {
	Action  string
	Message string
}

// OrderUpdate reports order lifecycle transitions.
type OrderUpdate struct {
	OrderID string
	Message string
}

func (SelectionChanged) isPayload()    {}
func (ViewerOpenRequested) isPayload() {}
func (ArtifactDeleted) isPayload()     {}
func (ActionFailed) isPayload()        {}
func (OrderUpdate) isPayload()         {}

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// EngineEvent is the concrete event type flowing out of the engine.
type EngineEvent = Event[Payload]

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
