// Package config provides configuration types, defaults, and persistence
// for the Art Factory client.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/bendavieshe3/art-factory-sub001/internal/log"
)

// APIConfig holds backend connection settings.
type APIConfig struct {
	// BaseURL is the root URL of the Art Factory backend.
	BaseURL string `mapstructure:"base_url"`

	// CSRFToken is the anti-forgery token attached to every mutating
	// request. Normally injected by the hosting page context; for the
	// terminal client it comes from config or environment.
	CSRFToken string `mapstructure:"csrf_token"`

	// Timeout bounds each HTTP request.
	Timeout time.Duration `mapstructure:"timeout"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
	GridColumns   int    `mapstructure:"grid_columns"` // Cards per gallery row
	DownloadDir   string `mapstructure:"download_dir"` // Where downloads land
}

// ViewerConfig holds viewer overlay settings.
type ViewerConfig struct {
	// Zoom bounds; ZoomMin must be < 1 < ZoomMax.
	ZoomMin float64 `mapstructure:"zoom_min"`
	ZoomMax float64 `mapstructure:"zoom_max"`

	// ZoomStep is the multiplicative factor per zoom step.
	ZoomStep float64 `mapstructure:"zoom_step"`
}

// OrderConfig holds order progress polling settings.
type OrderConfig struct {
	// PollInterval is the fixed delay between status polls.
	PollInterval time.Duration `mapstructure:"poll_interval"`

	// MaxPollAttempts bounds the poll loop; reaching it forces the
	// timed-out terminal state.
	MaxPollAttempts int `mapstructure:"max_poll_attempts"`

	// SettleDelay is the short pause between a terminal status arriving
	// and the UI reacting (reload on success, error surface on failure).
	SettleDelay time.Duration `mapstructure:"settle_delay"`
}

// ThemeConfig holds color customization. Preset selects a built-in
// palette; Colors overrides individual tokens on top of it.
type ThemeConfig struct {
	Preset string            `mapstructure:"preset"`
	Colors map[string]string `mapstructure:"colors"`
}

// Config holds all configuration options for the client.
type Config struct {
	API    APIConfig    `mapstructure:"api"`
	UI     UIConfig     `mapstructure:"ui"`
	Viewer ViewerConfig `mapstructure:"viewer"`
	Order  OrderConfig  `mapstructure:"order"`
	Theme  ThemeConfig  `mapstructure:"theme"`

	// Filters is the sticky gallery filter set restored on startup.
	Filters map[string]string `mapstructure:"filters"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000",
			Timeout: 15 * time.Second,
		},
		UI: UIConfig{
			ShowStatusBar: true,
			GridColumns:   3,
			DownloadDir:   "downloads",
		},
		Viewer: ViewerConfig{
			ZoomMin:  0.5,
			ZoomMax:  5.0,
			ZoomStep: 1.2,
		},
		Order: OrderConfig{
			PollInterval:    2 * time.Second,
			MaxPollAttempts: 150,
			SettleDelay:     time.Second,
		},
	}
}

// Validate checks configuration invariants that the engine relies on.
func Validate(cfg Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}
	v := cfg.Viewer
	if v.ZoomMin <= 0 || v.ZoomMin >= 1 {
		return fmt.Errorf("viewer.zoom_min must be in (0, 1), got %v", v.ZoomMin)
	}
	if v.ZoomMax <= 1 {
		return fmt.Errorf("viewer.zoom_max must be > 1, got %v", v.ZoomMax)
	}
	if v.ZoomStep <= 1 {
		return fmt.Errorf("viewer.zoom_step must be > 1, got %v", v.ZoomStep)
	}
	o := cfg.Order
	if o.PollInterval <= 0 {
		return fmt.Errorf("order.poll_interval must be positive, got %v", o.PollInterval)
	}
	if o.MaxPollAttempts <= 0 {
		return fmt.Errorf("order.max_poll_attempts must be positive, got %v", o.MaxPollAttempts)
	}
	if cfg.UI.GridColumns < 1 {
		return fmt.Errorf("ui.grid_columns must be at least 1, got %d", cfg.UI.GridColumns)
	}
	return nil
}

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# Art Factory client configuration
api:
  # Base URL of the Art Factory backend.
  base_url: http://localhost:8000
  # Anti-forgery token for mutating requests. Can also be set via
  # the ARTFACTORY_CSRF_TOKEN environment variable.
  # csrf_token: ""
  timeout: 15s

ui:
  show_status_bar: true
  grid_columns: 3
  download_dir: downloads

viewer:
  zoom_min: 0.5
  zoom_max: 5.0
  zoom_step: 1.2

order:
  poll_interval: 2s
  max_poll_attempts: 150
  settle_delay: 1s

# theme:
#   # One of: default, catppuccin-mocha, dracula, high-contrast
#   preset: default
#   # Per-token overrides, e.g.
#   # colors:
#   #   status.error: "#FF5555"

# Sticky gallery filters, saved automatically when you filter.
# filters:
#   provider: fal.ai
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}

// SaveFilters persists the sticky gallery filters back to the config
// file. Without a config file the filters last for the session only.
func SaveFilters(filters map[string]string) error {
	viper.Set("filters", filters)
	path := viper.ConfigFileUsed()
	if path == "" {
		return nil
	}
	if err := saveFiltersTo(path, filters); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to save filters", err, "path", path)
		return err
	}
	log.Debug(log.CatConfig, "Saved filters", "count", len(filters))
	return nil
}
