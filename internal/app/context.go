package app

import (
	"fmt"

	"github.com/RyanBlaney/waveform-catalog/configs"
	"github.com/RyanBlaney/waveform-catalog/pkg/logging"
	"github.com/RyanBlaney/waveform-catalog/pkg/waveform/catalog"
)

// Context holds the application context and configuration
type Context struct {
	// CLI arguments
	ConfigFile   string
	OutputFile   string
	OutputFormat string
	Verbose      bool
	Quiet        bool

	// Runtime context
	Logger  logging.Logger
	Config  *configs.Config
	Catalog *catalog.Catalog
}

// App handles the catalog application lifecycle
type App struct {
	ctx     *Context
	config  *configs.Config
	catalog *catalog.Catalog
	logger  logging.Logger
}

// NewApp creates a new catalog application from parsed flags and loaded
// configuration
func NewApp(ctx *Context) (*App, error) {
	logger := setupLogging(ctx)
	ctx.Logger = logger

	config, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := configs.ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	ctx.Config = config

	// flags win over the configured log level
	if !ctx.Verbose && !ctx.Quiet && config.LogLevel != "" {
		logging.SetLevel(config.LogLevel)
	}

	if ctx.OutputFormat == "" {
		ctx.OutputFormat = config.OutputFormat
	}

	cat, err := catalog.Load(config.Catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to build waveform catalog: %w", err)
	}
	ctx.Catalog = cat

	logger.Debug("application initialized", logging.Fields{
		"catalog_entries": cat.Len(),
		"output_format":   ctx.OutputFormat,
	})

	return &App{
		ctx:     ctx,
		config:  config,
		catalog: cat,
		logger:  logger,
	}, nil
}

// Config returns the loaded configuration
func (a *App) Config() *configs.Config {
	return a.config
}

// Catalog returns the resolved waveform catalog
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// Logger returns the application logger
func (a *App) Logger() logging.Logger {
	return a.logger
}

func setupLogging(ctx *Context) logging.Logger {
	switch {
	case ctx.Quiet:
		logging.SetLevel("error")
	case ctx.Verbose:
		logging.SetLevel("debug")
	}
	return logging.WithFields(logging.Fields{
		"component": "waveform_catalog",
	})
}
