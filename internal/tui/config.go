package tui

import (
	"time"

	"github.com/Veraticus/contractor-evaluation/internal/evaluation"
	"github.com/Veraticus/contractor-evaluation/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme            themes.Theme
	ProjectID        string
	DefaultProjectID string
	Width            int
	Height           int
	RequestTimeout   time.Duration
	ToastDuration    time.Duration
	ShowHelp         bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:          themes.Default,
		Width:          80,
		Height:         24,
		RequestTimeout: 30 * time.Second,
		ToastDuration:  evaluation.DefaultToastDuration,
		ShowHelp:       true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithProjectID sets the project to evaluate.
func WithProjectID(id string) Option {
	return func(c *Config) {
		c.ProjectID = id
	}
}

// WithDefaultProjectID sets the project used when none is given.
func WithDefaultProjectID(id string) Option {
	return func(c *Config) {
		c.DefaultProjectID = id
	}
}

// WithRequestTimeout bounds each backend call.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.RequestTimeout = d
		}
	}
}

// WithToastDuration sets how long notifications stay on screen.
func WithToastDuration(d time.Duration) Option {
	return func(c *Config) {
		c.ToastDuration = d
	}
}

// WithHelp toggles the key help footer.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
