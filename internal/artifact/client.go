package artifact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bendavieshe3/art-factory-sub001/internal/log"
)

const csrfHeader = "X-CSRFToken"

// ClientConfig configures a backend Client.
type ClientConfig struct {
	BaseURL   string
	CSRFToken string
	Timeout   time.Duration
}

// Client talks to the Art Factory backend over HTTP. All methods are
// safe for concurrent use; mutating methods require a CSRF token and
// fail fast with ErrMissingCSRF when none is configured.
type Client struct {
	base  *url.URL
	csrf  string
	httpc *http.Client
}

// NewClient validates the base URL and returns a ready client.
func NewClient(cfg ClientConfig) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("base URL must be http or https, got %q", cfg.BaseURL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		base: base,
		csrf: cfg.CSRFToken,
		httpc: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// FetchArtifact returns a single artifact by ID.
func (c *Client) FetchArtifact(ctx context.Context, id string) (Artifact, error) {
	var out Artifact
	err := c.doJSON(ctx, http.MethodGet, "/api/artifacts/"+url.PathEscape(id)+"/", nil, &out)
	return out, err
}

// Page is one page of the artifact collection.
type Page struct {
	Artifacts []Artifact `json:"results"`
	Total     int        `json:"count"`
	HasMore   bool       `json:"has_more"`
}

// FetchArtifactPage returns a page of artifacts matching the given
// filters. Filter keys map to backend query parameters; keys are sent
// in sorted order so identical filter sets produce identical URLs.
func (c *Client) FetchArtifactPage(ctx context.Context, page int, filters map[string]string) (Page, error) {
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q.Set(k, filters[k])
	}
	var out Page
	err := c.doJSON(ctx, http.MethodGet, "/api/artifacts/?"+q.Encode(), nil, &out)
	return out, err
}

// DeleteArtifact removes one artifact. The backend result message is
// returned even on logical failure so callers can surface it.
func (c *Client) DeleteArtifact(ctx context.Context, id string) (MutationResult, error) {
	var out MutationResult
	if c.csrf == "" {
		return out, ErrMissingCSRF
	}
	err := c.doJSON(ctx, http.MethodDelete, "/api/artifacts/"+url.PathEscape(id)+"/", nil, &out)
	return out, err
}

// BulkDelete removes a set of artifacts in one call. The operation is
// atomic on the backend: either every ID is deleted or none are.
func (c *Client) BulkDelete(ctx context.Context, ids []string) (MutationResult, error) {
	var out MutationResult
	if c.csrf == "" {
		return out, ErrMissingCSRF
	}
	body := map[string][]string{"ids": ids}
	err := c.doJSON(ctx, http.MethodPost, "/api/artifacts/bulk-delete/", body, &out)
	return out, err
}

// SetFavorite flips the favorite flag on an artifact.
func (c *Client) SetFavorite(ctx context.Context, id string, fav bool) (MutationResult, error) {
	var out MutationResult
	if c.csrf == "" {
		return out, ErrMissingCSRF
	}
	body := map[string]bool{"is_favorite": fav}
	err := c.doJSON(ctx, http.MethodPatch, "/api/artifacts/"+url.PathEscape(id)+"/favorite/", body, &out)
	return out, err
}

// DownloadArtifact streams one artifact's file into destDir and
// returns the written path. The filename comes from the backend's
// Content-Disposition when present, else the artifact ID.
func (c *Client) DownloadArtifact(ctx context.Context, id, destDir string) (string, error) {
	return c.download(ctx, "/api/artifacts/"+url.PathEscape(id)+"/download/", destDir, id+".png")
}

// DownloadArchive streams a zip of the given artifacts into destDir
// and returns the written path.
func (c *Client) DownloadArchive(ctx context.Context, ids []string, destDir string) (string, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	name := fmt.Sprintf("artifacts-%s.zip", time.Now().Format("20060102-150405"))
	return c.download(ctx, "/api/artifacts/archive/?"+q.Encode(), destDir, name)
}

// PlaceOrder submits a generation order and returns the backend order
// ID. A request ID is generated when the payload has none, so retries
// of the same payload value are not idempotent unless the caller sets
// one.
func (c *Client) PlaceOrder(ctx context.Context, payload OrderPayload) (string, error) {
	if c.csrf == "" {
		return "", ErrMissingCSRF
	}
	if payload.RequestID == "" {
		payload.RequestID = uuid.NewString()
	}
	var out struct {
		OrderID string `json:"order_id"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders/", payload, &out); err != nil {
		return "", err
	}
	if out.OrderID == "" {
		return "", &APIError{StatusCode: http.StatusOK, Message: "order accepted without an order ID"}
	}
	return out.OrderID, nil
}

// FetchOrderStatus polls an order's progress.
func (c *Client) FetchOrderStatus(ctx context.Context, orderID string) (OrderStatusResponse, error) {
	var out OrderStatusResponse
	err := c.doJSON(ctx, http.MethodGet, "/api/orders/"+url.PathEscape(orderID)+"/status/", nil, &out)
	return out, err
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		rdr = bytes.NewReader(buf)
	}
	resp, err := c.do(ctx, method, path, rdr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) download(ctx context.Context, path, destDir, fallbackName string) (string, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	name := fallbackName
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if i := strings.Index(cd, "filename="); i >= 0 {
			name = strings.Trim(cd[i+len("filename="):], `"`)
			name = filepath.Base(name)
		}
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("creating download dir: %w", err)
	}
	dest := filepath.Join(destDir, name)

	// Write to a temp file first so a failed transfer never leaves a
	// truncated file under the final name.
	tmp, err := os.CreateTemp(destDir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing download: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing download: %w", err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("finalizing download: %w", err)
	}
	log.Debug(log.CatAPI, "download complete", "path", dest)
	return dest, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet && method != http.MethodHead {
		req.Header.Set(csrfHeader, c.csrf)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		log.ErrorErr(log.CatAPI, "request failed", err, "method", method, "path", path)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	log.Debug(log.CatAPI, "request", "method", method, "path", path, "status", resp.StatusCode, "dur", time.Since(start))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
	var detail struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&detail); err == nil {
		switch {
		case detail.Message != "":
			apiErr.Message = detail.Message
		case detail.Detail != "":
			apiErr.Message = detail.Detail
		}
	}
	return nil, apiErr
}
