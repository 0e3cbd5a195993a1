package data

import "sync"

// ResourceContext holds the list settings remembered for one resource:
// page size, sort order and feature gates.
type ResourceContext struct {
	Resource      string       `yaml:"resource"`
	PageSize      int          `yaml:"pageSize,omitempty"`
	OrderBy       string       `yaml:"orderBy,omitempty"`
	SortDirection string       `yaml:"sortDirection,omitempty"`
	Mobile        *bool        `yaml:"mobile,omitempty"`
	FeatureGates  FeatureGates `yaml:"featureGates,omitempty"`
	mx            sync.RWMutex `yaml:"-"`
}

// NewResourceContext creates a context with default settings.
func NewResourceContext(resource string) *ResourceContext {
	return &ResourceContext{
		Resource:     resource,
		FeatureGates: NewFeatureGates(),
	}
}

// Validate ensures the context has valid settings.
func (c *ResourceContext) Validate() {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.PageSize < 0 {
		c.PageSize = 0
	}
	switch c.SortDirection {
	case "asc", "desc":
	default:
		c.SortDirection = ""
	}
	if c.OrderBy == "" {
		c.SortDirection = ""
	}
}

// SetSort records the sort order.
func (c *ResourceContext) SetSort(orderBy, direction string) {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.OrderBy, c.SortDirection = orderBy, direction
}

// Sort returns the recorded sort order.
func (c *ResourceContext) Sort() (string, string) {
	c.mx.RLock()
	defer c.mx.RUnlock()

	return c.OrderBy, c.SortDirection
}

// SetPageSize records the page size.
func (c *ResourceContext) SetPageSize(n int) {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.PageSize = n
}

// IsMobile returns the layout override, falling back to def when unset.
func (c *ResourceContext) IsMobile(def bool) bool {
	c.mx.RLock()
	defer c.mx.RUnlock()

	if c.Mobile == nil {
		return def
	}
	return *c.Mobile
}

// ContextName returns the sanitized file name stem for the resource.
func (c *ResourceContext) ContextName() string {
	c.mx.RLock()
	defer c.mx.RUnlock()

	return SanitizeFileName(c.Resource)
}
