package config

import (
	"fmt"
	"sort"
	"sync"

	"github.com/b3/b3t/internal/config/data"
)

// Default values
const (
	DefaultView     = data.DefaultView
	DefaultPageSize = 10
)

// DefaultRowsPerPage lists the page sizes offered by the pagination footer.
var DefaultRowsPerPage = []int{5, 10, 25, 50}

// B3t represents the b3t global configuration.
type B3t struct {
	RefreshRate        float32     `yaml:"refreshRate"`
	PageSize           int         `yaml:"pageSize"`
	RowsPerPageOptions []int       `yaml:"rowsPerPageOptions"`
	SelectOtherPages   bool        `yaml:"selectOtherPages"`
	Catalog            string      `yaml:"catalog,omitempty"`
	DefaultView        string      `yaml:"defaultView"`
	UI                 data.UI     `yaml:"ui"`
	Logger             data.Logger `yaml:"logger"`

	views map[string]*data.ResourceContext
	dir   *data.Dir
	mx    sync.RWMutex
}

// NewB3t creates a B3t with default settings.
func NewB3t() *B3t {
	return &B3t{
		RefreshRate:        DefaultRefreshRate,
		PageSize:           DefaultPageSize,
		RowsPerPageOptions: append([]int(nil), DefaultRowsPerPage...),
		DefaultView:        DefaultView,
		Logger:             data.NewLogger(),
		views:              make(map[string]*data.ResourceContext),
		dir:                data.NewDir(),
	}
}

// Validate ensures B3t has valid settings.
func (b *B3t) Validate() {
	b.mx.Lock()
	defer b.mx.Unlock()

	if b.RefreshRate <= 0 {
		b.RefreshRate = DefaultRefreshRate
	}
	if b.PageSize <= 0 {
		b.PageSize = DefaultPageSize
	}
	b.RowsPerPageOptions = normalizeRowsPerPage(b.RowsPerPageOptions, b.PageSize)
	if b.DefaultView == "" {
		b.DefaultView = DefaultView
	}
	b.Logger.Validate()
	if b.dir == nil {
		b.dir = data.NewDir()
	}
	if b.views == nil {
		b.views = make(map[string]*data.ResourceContext)
	}
}

// normalizeRowsPerPage drops invalid sizes and makes sure the page size is offered.
func normalizeRowsPerPage(opts []int, pageSize int) []int {
	if len(opts) == 0 {
		opts = append([]int(nil), DefaultRowsPerPage...)
	}
	seen := make(map[int]struct{}, len(opts)+1)
	out := make([]int, 0, len(opts)+1)
	for _, o := range append(opts, pageSize) {
		if o <= 0 {
			continue
		}
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	sort.Ints(out)

	return out
}

// SetDir changes where per resource settings live.
func (b *B3t) SetDir(d *data.Dir) {
	b.mx.Lock()
	defer b.mx.Unlock()

	b.dir = d
	b.views = make(map[string]*data.ResourceContext)
}

// ActivateView returns the settings for a resource, loading them on first use.
func (b *B3t) ActivateView(resource string) (*data.ResourceContext, error) {
	if resource == "" {
		return nil, fmt.Errorf("resource cannot be empty")
	}

	b.mx.Lock()
	defer b.mx.Unlock()

	if ctx, ok := b.views[resource]; ok {
		return ctx, nil
	}
	ctx, err := b.dir.Load(resource)
	if err != nil {
		return nil, fmt.Errorf("failed to load view settings for %q: %w", resource, err)
	}
	if b.views == nil {
		b.views = make(map[string]*data.ResourceContext)
	}
	b.views[resource] = ctx

	return ctx, nil
}

// SaveView persists the settings of a resource.
func (b *B3t) SaveView(resource string) error {
	b.mx.RLock()
	ctx, ok := b.views[resource]
	dir := b.dir
	b.mx.RUnlock()
	if !ok {
		return nil
	}

	return dir.Save(ctx)
}

// PageSizeFor returns the page size of a resource, falling back to the global one.
func (b *B3t) PageSizeFor(ctx *data.ResourceContext) int {
	b.mx.RLock()
	defer b.mx.RUnlock()

	if ctx != nil && ctx.PageSize > 0 {
		return ctx.PageSize
	}
	return b.PageSize
}

// CrossPageFor returns true if a resource keeps selections across pages.
func (b *B3t) CrossPageFor(ctx *data.ResourceContext) bool {
	b.mx.RLock()
	defer b.mx.RUnlock()

	return b.SelectOtherPages || (ctx != nil && ctx.FeatureGates.CrossPageSelection)
}

// IsMobile returns true if a resource renders as a card grid.
func (b *B3t) IsMobile(ctx *data.ResourceContext) bool {
	b.mx.RLock()
	mobile := b.UI.Mobile
	b.mx.RUnlock()

	if ctx == nil {
		return mobile
	}
	return ctx.IsMobile(mobile)
}

// Override applies CLI flag overrides to the configuration.
func (b *B3t) Override(flags *data.Flags) {
	if flags == nil {
		return
	}

	b.mx.Lock()
	defer b.mx.Unlock()

	if flags.RefreshRate != nil && *flags.RefreshRate > 0 {
		b.RefreshRate = *flags.RefreshRate
	}
	if flags.PageSize != nil && *flags.PageSize > 0 {
		b.PageSize = *flags.PageSize
		b.RowsPerPageOptions = normalizeRowsPerPage(b.RowsPerPageOptions, b.PageSize)
	}
	if IsBoolSet(flags.Mobile) {
		b.UI.Mobile = true
	}
	if IsBoolSet(flags.SelectOtherPages) {
		b.SelectOtherPages = true
	}
	if IsBoolSet(flags.Headless) {
		b.UI.Headless = true
	}
	if IsStringSet(flags.Catalog) {
		b.Catalog = *flags.Catalog
	}
	if IsStringSet(flags.Command) {
		b.DefaultView = *flags.Command
	}
	if IsStringSet(flags.LogLevel) {
		b.Logger.Level = *flags.LogLevel
	}
	if IsStringSet(flags.LogFile) {
		b.Logger.File = *flags.LogFile
	}
}
