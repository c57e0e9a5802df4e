package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/trace"

	"github.com/swalay/labelctl/internal/api"
	"github.com/swalay/labelctl/internal/app"
	"github.com/swalay/labelctl/internal/config"
	"github.com/swalay/labelctl/internal/labels"
	"github.com/swalay/labelctl/internal/log"
	"github.com/swalay/labelctl/internal/tracing"
	"github.com/swalay/labelctl/internal/ui/styles"
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

// localConfigPath is checked before the user config directory.
const localConfigPath = ".labelctl/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
	cfgErr    error
)

var rootCmd = &cobra.Command{
	Use:     "labelctl",
	Short:   "Register record labels from the terminal",
	Long:    `A terminal user interface for registering record labels against the SwaLay dashboard backend.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/labelctl/config.yaml)")
	rootCmd.PersistentFlags().String("base-url", "",
		"dashboard backend URL (overrides api.base_url)")
	rootCmd.PersistentFlags().String("token", "",
		"bearer token sent with backend requests (overrides api.token)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write debug logs (also LABELCTL_DEBUG)")

	// Bind flags to viper
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("api.token", rootCmd.PersistentFlags().Lookup("token"))
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return localConfigPath
	}
	return filepath.Join(home, ".config", "labelctl", "config.yaml")
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .labelctl/config.yaml (current directory)
		// 2. ~/.config/labelctl/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			viper.AddConfigPath(filepath.Dir(userConfigPath()))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create the commented default
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			defaultPath := userConfigPath()
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	cfg, cfgErr = config.Load(viper.GetViper())
}

// setupLogging enables the debug log when --debug or LABELCTL_DEBUG is set.
// The returned cleanup is always safe to call.
func setupLogging(prefix string) (func(), error) {
	if !debugFlag && os.Getenv("LABELCTL_DEBUG") == "" {
		return func() {}, nil
	}

	logPath := os.Getenv("LABELCTL_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}

	cleanup, err := log.InitWithTeaLog(logPath, prefix)
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	log.Info(log.CatConfig, "labelctl starting", "version", version, "config", viper.ConfigFileUsed(), "logPath", logPath)
	return cleanup, nil
}

func newTracingProvider(c config.Config) (*tracing.Provider, error) {
	provider, err := tracing.NewProvider(tracing.Config{
		Enabled:      c.Tracing.Enabled,
		Exporter:     c.Tracing.Exporter,
		FilePath:     c.Tracing.FilePath,
		OTLPEndpoint: c.Tracing.OTLPEndpoint,
		SampleRate:   c.Tracing.SampleRate,
		ServiceName:  tracing.DefaultServiceName,
	})
	if err != nil {
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}
	return provider, nil
}

func shutdownTracing(p *tracing.Provider) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		log.ErrorErr(log.CatTrace, "Failed to flush traces", err)
	}
}

// registrarFactory builds API clients that share tracer.
func registrarFactory(tracer trace.Tracer) app.RegistrarFactory {
	return func(c config.Config) labels.Registrar {
		return api.NewClient(api.Config{
			BaseURL: c.API.BaseURL,
			Token:   c.API.Token,
			Timeout: c.API.Timeout,
			Tracer:  tracer,
		})
	}
}

func runApp(_ *cobra.Command, _ []string) error {
	if cfgErr != nil {
		return cfgErr
	}

	cleanup, err := setupLogging("labelctl")
	if err != nil {
		return err
	}
	defer cleanup()

	provider, err := newTracingProvider(cfg)
	if err != nil {
		return err
	}
	defer shutdownTracing(provider)

	styles.ApplyTheme(cfg.Theme.Highlight, cfg.Theme.Muted, cfg.Theme.Error, cfg.Theme.Success)
	zone.NewGlobal()

	model := app.New(cfg, registrarFactory(provider.Tracer()), labels.RouteRegister)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	if viper.ConfigFileUsed() != "" {
		config.Watch(viper.GetViper(), func(c config.Config) {
			p.Send(config.ReloadedMsg{Config: c})
		})
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
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
