// Package artifact provides the artifact domain types and data access
// to the Art Factory backend.
package artifact

import "time"

// Artifact represents one generated image/media item with metadata.
// The engine treats artifacts as immutable except for Favorite and
// deletion; the backend owns the records.
type Artifact struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Prompt         string         `json:"prompt"`
	NegativePrompt string         `json:"negative_prompt"`
	Provider       string         `json:"provider"`
	Model          string         `json:"model"`
	Width          int            `json:"width"`
	Height         int            `json:"height"`
	FileURL        string         `json:"file_url"`
	CreatedAt      time.Time      `json:"created_at"`
	Favorite       bool           `json:"is_favorite"`
	Params         map[string]any `json:"generation_params"`
	OrderID        string         `json:"order_id"`
}

// OrderStatus is the backend job lifecycle state reported by the
// status endpoint.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderCompleted  OrderStatus = "completed"
	OrderFailed     OrderStatus = "failed"
)

// StatusCounts breaks an order's items down by state.
type StatusCounts struct {
	Pending    int `json:"pending"`
	Processing int `json:"processing"`
	Completed  int `json:"completed"`
	Failed     int `json:"failed"`
}

// OrderStatusResponse is the payload polled by the progress tracker.
type OrderStatusResponse struct {
	Status         OrderStatus  `json:"status"`
	Progress       float64      `json:"progress"`
	StatusCounts   StatusCounts `json:"status_counts"`
	TotalItems     int          `json:"total_items"`
	LatestArtifact *Artifact    `json:"latest_artifact,omitempty"`
	Error          string       `json:"error,omitempty"`
}

// OrderPayload describes a generation request.
type OrderPayload struct {
	// RequestID is a client-generated idempotency key.
	RequestID string         `json:"request_id"`
	Prompt    string         `json:"prompt"`
	Negative  string         `json:"negative_prompt,omitempty"`
	Provider  string         `json:"provider,omitempty"`
	Model     string         `json:"model,omitempty"`
	Quantity  int            `json:"quantity,omitempty"`
	Params    map[string]any `json:"params,omitempty"`
}

// MutationResult is the backend's answer to delete/bulk-delete calls.
// Message is user-facing and passed through verbatim on failure.
type MutationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
