package config

import (
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/b3/b3t/internal/config/data"
)

// Aliases represents the alias configuration.
type Aliases struct {
	Alias map[string]string `yaml:"aliases"`
	mx    sync.RWMutex      `yaml:"-"`
}

// DefaultAliases are the built-in aliases for storefront resources.
var DefaultAliases = map[string]string{
	"address":   "storefront/address",
	"addresses": "storefront/address",
	"addr":      "storefront/address",

	"user":  "storefront/user",
	"users": "storefront/user",
	"usr":   "storefront/user",

	"shoppinglist": "storefront/shoppinglist",
	"sl":           "storefront/shoppinglist",
	"cart":         "storefront/shoppinglist",

	"quote":  "storefront/quote",
	"quotes": "storefront/quote",
	"q":      "storefront/quote",
}

// NewAliases creates an Aliases with default aliases loaded.
func NewAliases() *Aliases {
	a := &Aliases{
		Alias: make(map[string]string),
	}
	// Copy default aliases
	for k, v := range DefaultAliases {
		a.Alias[k] = v
	}
	return a
}

// Load loads aliases from the default config file.
// Merges with default aliases, with file aliases taking precedence.
func (a *Aliases) Load() error {
	return a.LoadFrom(AppAliasesFile)
}

// LoadFrom loads aliases from a specific file path.
func (a *Aliases) LoadFrom(path string) error {
	a.mx.Lock()
	defer a.mx.Unlock()

	// If file doesn't exist, just use defaults
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	loaded := &Aliases{
		Alias: make(map[string]string),
	}
	if err := data.LoadYAML(path, loaded); err != nil {
		return err
	}

	// Merge loaded aliases into current (loaded takes precedence)
	for k, v := range loaded.Alias {
		a.Alias[k] = v
	}

	return nil
}

// Get returns the resource for an alias, or the original if not found.
// Lookups ignore a leading colon.
func (a *Aliases) Get(alias string) string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	alias = strings.TrimPrefix(strings.TrimSpace(alias), ":")
	if resource, ok := a.Alias[strings.ToLower(alias)]; ok {
		return resource
	}
	return alias
}

// Resources returns the distinct resources aliases point to.
func (a *Aliases) Resources() []string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	seen := make(map[string]struct{}, len(a.Alias))
	out := make([]string, 0, len(a.Alias))
	for _, r := range a.Alias {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	sort.Strings(out)

	return out
}

// ShortNames returns the aliases of a resource, shortest first.
func (a *Aliases) ShortNames(resource string) []string {
	a.mx.RLock()
	defer a.mx.RUnlock()

	var out []string
	for k, v := range a.Alias {
		if v == resource {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) == len(out[j]) {
			return out[i] < out[j]
		}
		return len(out[i]) < len(out[j])
	})

	return out
}
