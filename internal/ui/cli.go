package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javiermolinar/nightshift/internal/config"
	"github.com/javiermolinar/nightshift/internal/db"
	"github.com/javiermolinar/nightshift/internal/llm"
	"github.com/javiermolinar/nightshift/internal/logging"
	"github.com/javiermolinar/nightshift/internal/schedule"
	"github.com/javiermolinar/nightshift/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo     schedule.Repository
	ownsRepo bool // repo was opened by the app and must be closed by it
	config   *config.Config
	root     *cobra.Command
	debug    bool // Enable debug logging
	logger   *zap.Logger

	newClient func(provider, model, baseURL string) (llm.Client, error)
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repo is opened lazily from the configured database path.
func NewApp(repo schedule.Repository, cfg *config.Config) *App {
	a := &App{
		repo:      repo,
		config:    cfg,
		logger:    zap.NewNop(),
		newClient: llm.NewClient,
	}

	a.root = &cobra.Command{
		Use:   "nightshift",
		Short: "Pick a nightly time window on a 24-hour dial",
		Long: `Nightshift keeps a recurring window, such as quiet hours or a night
shift, that may wrap past midnight.

Run without arguments to open the slider: drag the knobs with the mouse or
move them with the arrow keys. The two ends always stay at least an hour apart.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.initLogger()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			return tui.Run(a.repo, a.config, a.logger)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging to the configured log file")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.setCmd())
	a.root.AddCommand(a.stepCmd())
	a.root.AddCommand(a.historyCmd())
	a.root.AddCommand(a.suggestCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nightshift %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases the database if the app opened it and flushes the logger.
func (a *App) Close() error {
	_ = a.logger.Sync()
	if a.ownsRepo && a.repo != nil {
		err := a.repo.Close()
		a.repo = nil
		return err
	}
	return nil
}

func (a *App) initLogger() error {
	if !a.debug {
		return nil
	}
	logger, err := logging.New(true, a.config.Log.Level, a.config.Log.File)
	if err != nil {
		return err
	}
	a.logger = logger
	a.logger.Info("debug logging enabled", zap.String("version", Version))
	return nil
}

// ensureRepo opens the configured database on first use.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	dbPath := a.config.Storage.DBPath
	if dbPath == "" {
		return fmt.Errorf("db path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	a.repo = repo
	a.ownsRepo = true
	a.logger.Debug("opened database", zap.String("db_path", dbPath))
	return nil
}
