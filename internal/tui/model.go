package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/nightshift/internal/config"
	"github.com/javiermolinar/nightshift/internal/schedule"
	"github.com/javiermolinar/nightshift/internal/slider"
	"github.com/javiermolinar/nightshift/internal/tui/commands"
	"github.com/javiermolinar/nightshift/internal/tui/theme"
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   schedule.Repository
	config *config.Config
	logger *zap.Logger

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	slider  *slider.Slider
	saved   *schedule.Schedule // last loaded or saved value, nil before load
	loading bool
	rtl     bool
	use24h  bool

	// Drag state (the slider owns the session itself)
	dragID    string
	dragFromX int // pointer column when the drag began

	// Components
	keys      keyMap
	help      help.Model
	prompt    textinput.Model
	prompting bool

	quitArmed bool

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error

	copyToClipboard func(string) error
	now             func() time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithLogger sets the debug logger.
func WithLogger(logger *zap.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) ModelOption {
	return func(m *Model) {
		m.copyToClipboard = write
	}
}

// WithNow sets the clock used to stamp saved schedules.
func WithNow(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.now = now
	}
}

// New creates a new TUI model.
func New(repo schedule.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	ti := textinput.New()
	ti.CharLimit = 16
	ti.Width = 32
	ti.Prompt = "> "
	ti.TextStyle = styles.PromptStyle
	ti.PlaceholderStyle = styles.MutedStyle

	h := help.New()
	h.Styles = styles.Help()

	sl := fallbackSchedule(cfg).Slider()
	sl.Focus(slider.Start)

	m := &Model{
		repo:            repo,
		config:          cfg,
		logger:          zap.NewNop(),
		theme:           t,
		styles:          styles,
		slider:          sl,
		loading:         repo != nil,
		rtl:             cfg.Slider.RTL,
		use24h:          cfg.Slider.Use24Hour,
		keys:            defaultKeyMap(),
		help:            h,
		prompt:          ti,
		copyToClipboard: clipboard.WriteAll,
		now:             time.Now,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	return commands.LoadSchedule(m.repo, fallbackSchedule(m.config))
}

// Run starts the TUI. A nil repo opens the database named in the config.
func Run(repo schedule.Repository, cfg *config.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	if repo == nil {
		opened, err := openRepo(cfg.Storage.DBPath)
		if err != nil {
			return err
		}
		defer func() {
			if err := opened.Close(); err != nil {
				logger.Warn("closing database", zap.Error(err))
			}
		}()
		repo = opened
	}

	logger.Info("starting tui", zap.String("db_path", cfg.Storage.DBPath), zap.String("theme", cfg.UI.Theme))

	model := New(repo, cfg, WithLogger(logger))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	_, err := p.Run()
	return err
}

// Dirty reports whether the slider differs from the last loaded or saved schedule.
func (m Model) Dirty() bool {
	if m.saved == nil {
		return false
	}
	return m.saved.Start != m.slider.Start() || m.saved.End != m.slider.End()
}

// Slider returns the slider driven by the model.
func (m Model) Slider() *slider.Slider {
	return m.slider
}

func (m Model) activeKnob() slider.Knob {
	if k, ok := m.slider.Active(); ok {
		return k
	}
	return slider.Start
}

func (m Model) currentSchedule() *schedule.Schedule {
	return schedule.FromSlider(m.slider, m.now())
}
