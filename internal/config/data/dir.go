package data

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// defaultViewsDir is set by the config package during initialization.
// This avoids a circular import between data and config packages.
var defaultViewsDir string

// SetDefaultViewsDir sets the default views directory.
func SetDefaultViewsDir(dir string) {
	defaultViewsDir = dir
}

// Dir manages the per resource view settings files.
type Dir struct {
	root string
	mx   sync.RWMutex
}

// NewDir creates a new Dir using the default views directory.
// Note: SetDefaultViewsDir must be called before using NewDir.
func NewDir() *Dir {
	return &Dir{
		root: defaultViewsDir,
	}
}

// NewDirAt creates a new Dir at the specified root path.
func NewDirAt(root string) *Dir {
	return &Dir{
		root: root,
	}
}

// ConfigPath returns the path to a resource settings file.
// Returns: {root}/{resource}.yaml
func (d *Dir) ConfigPath(resource string) string {
	d.mx.RLock()
	defer d.mx.RUnlock()

	return filepath.Join(d.root, SanitizeFileName(resource)+".yaml")
}

// Load loads the settings for a resource.
// Returns default settings if the file doesn't exist.
func (d *Dir) Load(resource string) (*ResourceContext, error) {
	ctx := NewResourceContext(resource)
	if err := LoadYAML(d.ConfigPath(resource), ctx); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ctx, nil
		}
		return nil, fmt.Errorf("failed to load view config: %w", err)
	}
	ctx.Resource = resource
	ctx.Validate()

	return ctx, nil
}

// Save saves the settings for a resource.
func (d *Dir) Save(ctx *ResourceContext) error {
	if ctx == nil || ctx.Resource == "" {
		return fmt.Errorf("cannot save nil or unnamed view config")
	}

	ctx.mx.RLock()
	defer ctx.mx.RUnlock()
	if err := SaveYAML(d.ConfigPath(ctx.Resource), ctx); err != nil {
		return fmt.Errorf("failed to save view config: %w", err)
	}

	return nil
}

// List returns the file stems of all saved resource settings.
func (d *Dir) List() ([]string, error) {
	d.mx.RLock()
	root := d.root
	d.mx.RUnlock()

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read views directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)

	return names, nil
}
