package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/b3/b3t/internal/config/data"
)

// Config is the root configuration for the application.
type Config struct {
	B3t     *B3t     `yaml:"b3t"`
	aliases *Aliases
	hotKeys *HotKeys
	path    string
	mx      sync.RWMutex
}

// NewConfig creates a new Config with default settings.
func NewConfig() *Config {
	return &Config{
		B3t:     NewB3t(),
		aliases: NewAliases(),
		hotKeys: NewHotKeys(),
		path:    AppConfigFile,
	}
}

// Load loads the configuration from the given path.
// If the file doesn't exist, the current config is kept.
func (c *Config) Load(path string, force bool) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.path = path
	err := data.MustLoadYAML(path, c)
	if errors.Is(err, data.ErrMissingFile) && !force {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load config from %s: %w", path, err)
	}
	if c.B3t == nil {
		c.B3t = NewB3t()
	}
	c.B3t.Validate()

	return nil
}

// Save saves the configuration to its path.
// If force is false, only saves if the file already exists.
func (c *Config) Save(force bool) error {
	c.mx.RLock()
	defer c.mx.RUnlock()

	path := c.path
	if path == "" {
		return fmt.Errorf("no config file path configured")
	}

	_, err := os.Stat(path)
	fileExists := err == nil
	if !force && !fileExists {
		return nil
	}

	if err := data.SaveYAML(path, c); err != nil {
		return fmt.Errorf("failed to save config to %s: %w", path, err)
	}

	return nil
}

// Refine applies CLI flags on top of the loaded file and resolves aliases:
// - Startup view: CLI --command > config defaultView
// - Catalog: CLI --catalog > config catalog > data dir catalog.yaml if present
func (c *Config) Refine(flags *data.Flags) error {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.B3t == nil {
		return fmt.Errorf("config.B3t is nil")
	}

	c.B3t.Override(flags)
	c.B3t.Validate()

	c.B3t.mx.Lock()
	defer c.B3t.mx.Unlock()
	c.B3t.DefaultView = c.aliases.Get(c.B3t.DefaultView)
	if c.B3t.Catalog == "" && AppCatalogFile != "" {
		if _, err := os.Stat(AppCatalogFile); err == nil {
			c.B3t.Catalog = AppCatalogFile
		}
	}
	if c.B3t.Catalog != "" {
		if _, err := os.Stat(c.B3t.Catalog); err != nil {
			return fmt.Errorf("catalog %q: %w", c.B3t.Catalog, err)
		}
	}

	return nil
}

// Aliases returns the command aliases.
func (c *Config) Aliases() *Aliases {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.aliases
}

// HotKeys returns the custom hotkeys.
func (c *Config) HotKeys() *HotKeys {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.hotKeys
}

// LoadExtras loads the aliases and hotkeys files.
func (c *Config) LoadExtras() error {
	if err := c.Aliases().Load(); err != nil {
		return fmt.Errorf("failed to load aliases: %w", err)
	}
	if err := c.HotKeys().Load(); err != nil {
		return fmt.Errorf("failed to load hotkeys: %w", err)
	}

	return nil
}
