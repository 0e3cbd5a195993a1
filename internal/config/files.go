package config

import (
	"os"
	"path/filepath"

	"github.com/b3/b3t/internal/config/data"
)

const AppName = "b3t"

var (
	// AppConfigDir is ~/.config/b3t
	AppConfigDir string

	// AppDataDir is ~/.local/share/b3t
	AppDataDir string

	// AppStateDir is ~/.local/state/b3t
	AppStateDir string

	// AppConfigFile is ~/.config/b3t/b3t.yaml
	AppConfigFile string

	// AppHotkeysFile is ~/.config/b3t/hotkeys.yaml
	AppHotkeysFile string

	// AppAliasesFile is ~/.config/b3t/aliases.yaml
	AppAliasesFile string

	// AppCatalogFile is ~/.local/share/b3t/catalog.yaml
	AppCatalogFile string

	// AppViewsDir is ~/.local/share/b3t/views
	AppViewsDir string

	// AppLogFile is ~/.local/state/b3t/b3t.log
	AppLogFile string
)

// InitLocs initializes all application directory paths.
// It respects XDG environment variables if set.
func InitLocs() error {
	home := userHomeDir()

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = filepath.Join(home, ".local", "state")
	}

	AppConfigDir = filepath.Join(configHome, AppName)
	AppDataDir = filepath.Join(dataHome, AppName)
	AppStateDir = filepath.Join(stateHome, AppName)

	AppConfigFile = filepath.Join(AppConfigDir, AppName+".yaml")
	AppHotkeysFile = filepath.Join(AppConfigDir, "hotkeys.yaml")
	AppAliasesFile = filepath.Join(AppConfigDir, "aliases.yaml")

	AppCatalogFile = filepath.Join(AppDataDir, "catalog.yaml")
	AppViewsDir = filepath.Join(AppDataDir, "views")
	AppLogFile = filepath.Join(AppStateDir, AppName+".log")

	// Set default views directory in data package to avoid circular import
	data.SetDefaultViewsDir(AppViewsDir)

	return data.EnsureDirPath(AppConfigDir, AppDataDir, AppStateDir, AppViewsDir)
}

// InitLogLoc ensures the log directory exists
func InitLogLoc() error {
	return data.EnsureFullPath(AppLogFile)
}

// userHomeDir returns the user's home directory
func userHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return home
}
