// Package data provides configuration data types for the b3t application.
package data

// Flags represents CLI command-line flags for the b3t application.
type Flags struct {
	RefreshRate      *float32 // Refresh rate in seconds
	LogLevel         *string  // Log level (e.g., debug, info, warn, error)
	LogFile          *string  // Path to log file
	Headless         *bool    // Run in headless mode (no TUI)
	Command          *string  // Startup view
	PageSize         *int     // Rows per page
	Mobile           *bool    // Render lists as an infinite scroll card grid
	SelectOtherPages *bool    // Keep selections across pages
	Catalog          *string  // Catalogue file to browse
}

// UI represents user interface configuration settings.
type UI struct {
	EnableMouse bool `yaml:"enableMouse"`
	Headless    bool `yaml:"headless"`
	Crumbsless  bool `yaml:"crumbsless"`
	Mobile      bool `yaml:"mobile"`
}

// Logger represents logging configuration settings.
type Logger struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file,omitempty"`
	MaxSize    int    `yaml:"maxSize"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAge     int    `yaml:"maxAge"`
	Compress   bool   `yaml:"compress"`
}

// Logger configuration constants.
const (
	DefaultLoggerMaxSize    = 15
	DefaultLoggerMaxBackups = 3
	DefaultLoggerMaxAge     = 28
)

// NewLogger returns logger settings with rotation defaults.
func NewLogger() Logger {
	return Logger{
		Level:      "info",
		MaxSize:    DefaultLoggerMaxSize,
		MaxBackups: DefaultLoggerMaxBackups,
		MaxAge:     DefaultLoggerMaxAge,
		Compress:   true,
	}
}

// Validate fills missing rotation settings.
func (l *Logger) Validate() {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.MaxSize <= 0 {
		l.MaxSize = DefaultLoggerMaxSize
	}
	if l.MaxBackups <= 0 {
		l.MaxBackups = DefaultLoggerMaxBackups
	}
	if l.MaxAge <= 0 {
		l.MaxAge = DefaultLoggerMaxAge
	}
}

// NewFlags creates a new Flags instance with all pointer fields initialized.
// All pointers are allocated but their values are not set.
func NewFlags() *Flags {
	return &Flags{
		RefreshRate:      new(float32),
		LogLevel:         new(string),
		LogFile:          new(string),
		Headless:         new(bool),
		Command:          new(string),
		PageSize:         new(int),
		Mobile:           new(bool),
		SelectOtherPages: new(bool),
		Catalog:          new(string),
	}
}
