package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bendavieshe3/art-factory-sub001/internal/app"
	"github.com/bendavieshe3/art-factory-sub001/internal/artifact"
	"github.com/bendavieshe3/art-factory-sub001/internal/config"
	"github.com/bendavieshe3/art-factory-sub001/internal/log"
	"github.com/bendavieshe3/art-factory-sub001/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugMode bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "artfactory",
	Short:   "A terminal ui for browsing AI-generated artifacts",
	Long:    `A terminal user interface for the Art Factory image generation service: browse and manage generated artifacts, view them full-screen, and track generation orders.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/artfactory/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false,
		"enable debug logging to artfactory.log")
	rootCmd.Flags().String("api-url", "",
		"base URL of the Art Factory backend")

	_ = viper.BindPFlag("api.base_url", rootCmd.Flags().Lookup("api-url"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("api.base_url", defaults.API.BaseURL)
	viper.SetDefault("api.timeout", defaults.API.Timeout)
	viper.SetDefault("ui.show_status_bar", defaults.UI.ShowStatusBar)
	viper.SetDefault("ui.grid_columns", defaults.UI.GridColumns)
	viper.SetDefault("ui.download_dir", defaults.UI.DownloadDir)
	viper.SetDefault("viewer.zoom_min", defaults.Viewer.ZoomMin)
	viper.SetDefault("viewer.zoom_max", defaults.Viewer.ZoomMax)
	viper.SetDefault("viewer.zoom_step", defaults.Viewer.ZoomStep)
	viper.SetDefault("order.poll_interval", defaults.Order.PollInterval)
	viper.SetDefault("order.max_poll_attempts", defaults.Order.MaxPollAttempts)
	viper.SetDefault("order.settle_delay", defaults.Order.SettleDelay)

	viper.SetEnvPrefix("ARTFACTORY")
	_ = viper.BindEnv("api.csrf_token", "ARTFACTORY_CSRF_TOKEN")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .artfactory/config.yaml (current directory)
		// 2. ~/.config/artfactory/config.yaml (user config)
		if _, err := os.Stat(".artfactory/config.yaml"); err == nil {
			viper.SetConfigFile(".artfactory/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "artfactory"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .artfactory/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".artfactory/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, args []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: cfg.Theme.Preset,
		Colors: cfg.Theme.Colors,
	}); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	if debugMode {
		cleanup, err := log.Init("artfactory.log")
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer cleanup()
	}

	client, err := artifact.NewClient(artifact.ClientConfig{
		BaseURL:   cfg.API.BaseURL,
		CSRFToken: cfg.API.CSRFToken,
		Timeout:   cfg.API.Timeout,
	})
	if err != nil {
		return fmt.Errorf("connecting to art factory: %w", err)
	}

	// Global zone manager for mouse hit-testing on cards.
	zone.NewGlobal()

	model := app.New(app.Services{
		Client: client,
		Config: &cfg,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	if m, ok := final.(app.Model); ok {
		m.Close()
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
