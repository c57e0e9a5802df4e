// Package config provides configuration types and defaults for labelctl.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/swalay/labelctl/internal/log"
)

// Config holds all configuration options for labelctl.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	UI      UIConfig      `mapstructure:"ui"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// APIConfig holds dashboard backend settings.
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"` // e.g. "http://localhost:3000"
	Token   string        `mapstructure:"token"`    // Sent as a bearer token when set
	Timeout time.Duration `mapstructure:"timeout"`  // 0 = no client-side timeout
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ToastDuration time.Duration `mapstructure:"toast_duration"` // How long non-loading toasts stay up
	Mouse         bool          `mapstructure:"mouse"`          // Enable mouse clicks on fields and buttons
}

// ThemeConfig holds color overrides. Empty values keep the built-in colors.
type ThemeConfig struct {
	Highlight string `mapstructure:"highlight"`
	Muted     string `mapstructure:"muted"`
	Error     string `mapstructure:"error"`
	Success   string `mapstructure:"success"`
}

// TracingConfig holds distributed tracing configuration.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	SampleRate float64 `mapstructure:"sample_rate"`
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:3000",
		},
		UI: UIConfig{
			ToastDuration: 3 * time.Second,
			Mouse:         true,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     DefaultTracesFilePath(),
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// DefaultTracesFilePath returns ~/.config/labelctl/traces/traces.jsonl,
// or an empty string if the home dir is unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "labelctl", "traces", "traces.jsonl")
}

// Validate checks the whole configuration.
func Validate(cfg Config) error {
	if err := ValidateAPI(cfg.API); err != nil {
		return err
	}
	if cfg.UI.ToastDuration < 0 {
		return fmt.Errorf("ui.toast_duration must not be negative, got %s", cfg.UI.ToastDuration)
	}
	if err := ValidateTheme(cfg.Theme); err != nil {
		return err
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateTheme checks that every set color is a #RGB or #RRGGBB hex value.
func ValidateTheme(theme ThemeConfig) error {
	colors := []struct{ key, value string }{
		{"theme.highlight", theme.Highlight},
		{"theme.muted", theme.Muted},
		{"theme.error", theme.Error},
		{"theme.success", theme.Success},
	}
	for _, c := range colors {
		if c.value != "" && !isValidHexColor(c.value) {
			return fmt.Errorf("invalid hex color for %s: %s", c.key, c.value)
		}
	}
	return nil
}

func isValidHexColor(s string) bool {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return false
	}
	for _, r := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// ValidateAPI checks backend settings.
func ValidateAPI(api APIConfig) error {
	if api.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	u, err := url.Parse(api.BaseURL)
	if err != nil {
		return fmt.Errorf("api.base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url must use http or https, got %q", api.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("api.base_url must include a host, got %q", api.BaseURL)
	}
	if api.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative, got %s", api.Timeout)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Path requirements only matter when tracing is on
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// ReloadedMsg is sent to the TUI when the config file changes on disk.
type ReloadedMsg struct {
	Config Config
}

// DefaultConfigTemplate returns the commented YAML written on first run.
func DefaultConfigTemplate() string {
	return `# labelctl configuration

api:
  # Dashboard backend the registration form posts to.
  base_url: "http://localhost:3000"
  # Optional bearer token sent with every request.
  # token: ""
  # Client-side timeout for backend calls. 0 waits on the transport.
  timeout: 0s

ui:
  # How long success and error toasts stay on screen.
  toast_duration: 3s
  # Allow clicking fields, radio options and the submit button.
  mouse: true

# theme:
#   highlight: "#54A0FF"
#   muted: "#696969"
#   error: "#FF8787"
#   success: "#73F59F"

tracing:
  enabled: false
  # none, file, stdout, otlp
  exporter: file
  # file_path: ~/.config/labelctl/traces/traces.jsonl
  otlp_endpoint: "localhost:4317"
  sample_rate: 1.0
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
