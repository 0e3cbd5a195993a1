package config

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/b3/b3t/internal/config/data"
)

// HotKey binds a shortcut to a view command, e.g. shift-1 -> :quote.
type HotKey struct {
	ShortCut    string `yaml:"shortCut"`
	Description string `yaml:"description"`
	Command     string `yaml:"command"`
}

// HotKeys represents the hotkeys configuration.
type HotKeys struct {
	HotKey map[string]HotKey `yaml:"hotKeys"`
	mx     sync.RWMutex      `yaml:"-"`
}

// NewHotKeys creates an empty HotKeys configuration.
func NewHotKeys() *HotKeys {
	return &HotKeys{
		HotKey: make(map[string]HotKey),
	}
}

// Load loads hotkeys from the default config file.
func (h *HotKeys) Load() error {
	return h.LoadFrom(AppHotkeysFile)
}

// LoadFrom loads hotkeys from a specific file path. Entries without a
// shortcut or a command are rejected.
func (h *HotKeys) LoadFrom(path string) error {
	h.mx.Lock()
	defer h.mx.Unlock()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		h.HotKey = make(map[string]HotKey)
		return nil
	}
	if err := data.LoadYAML(path, h); err != nil {
		return err
	}
	if h.HotKey == nil {
		h.HotKey = make(map[string]HotKey)
	}
	for name, hk := range h.HotKey {
		if strings.TrimSpace(hk.ShortCut) == "" || strings.TrimSpace(hk.Command) == "" {
			return fmt.Errorf("hotkey %q needs both a shortCut and a command", name)
		}
	}

	return nil
}

// Set sets a hotkey by name.
func (h *HotKeys) Set(name string, hk HotKey) {
	h.mx.Lock()
	defer h.mx.Unlock()

	h.HotKey[name] = hk
}

// Bindings returns the hotkeys ordered by shortcut.
func (h *HotKeys) Bindings() []HotKey {
	h.mx.RLock()
	defer h.mx.RUnlock()

	out := make([]HotKey, 0, len(h.HotKey))
	for _, hk := range h.HotKey {
		out = append(out, hk)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].ShortCut) < strings.ToLower(out[j].ShortCut)
	})

	return out
}
