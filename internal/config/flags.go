package config

import (
	"github.com/b3/b3t/internal/config/data"
)

// DefaultRefreshRate is the default data refresh interval in seconds.
const DefaultRefreshRate = 5.0

// DefaultLogLevel is the default logging level.
const DefaultLogLevel = "info"

// NewFlags creates a new Flags instance with default values set.
func NewFlags() *data.Flags {
	refreshRate := float32(DefaultRefreshRate)
	logLevel := DefaultLogLevel
	logFile := AppLogFile
	headless := false
	command := ""
	pageSize := 0
	mobile := false
	selectOtherPages := false
	catalog := ""

	return &data.Flags{
		RefreshRate:      &refreshRate,
		LogLevel:         &logLevel,
		LogFile:          &logFile,
		Headless:         &headless,
		Command:          &command,
		PageSize:         &pageSize,
		Mobile:           &mobile,
		SelectOtherPages: &selectOtherPages,
		Catalog:          &catalog,
	}
}

// IsBoolSet returns true if a bool pointer is non-nil and true.
func IsBoolSet(b *bool) bool {
	return b != nil && *b
}

// IsStringSet returns true if a string pointer is non-nil and non-empty.
func IsStringSet(s *string) bool {
	return s != nil && *s != ""
}
