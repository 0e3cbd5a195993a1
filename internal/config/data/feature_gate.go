package data

// FeatureGates toggles optional list behaviors per resource.
type FeatureGates struct {
	// CrossPageSelection keeps checked rows while paging.
	CrossPageSelection bool `yaml:"crossPageSelection"`

	// AutoRefresh periodically reloads the visible page.
	AutoRefresh bool `yaml:"autoRefresh"`

	// Collapse allows expanding rows inline.
	Collapse bool `yaml:"collapse"`
}

// NewFeatureGates creates FeatureGates with default settings (all disabled)
func NewFeatureGates() FeatureGates {
	return FeatureGates{}
}

// Merge overlays another FeatureGates on top of this one
// Only enabled features in other will be applied
func (f *FeatureGates) Merge(other FeatureGates) {
	if other.CrossPageSelection {
		f.CrossPageSelection = true
	}
	if other.AutoRefresh {
		f.AutoRefresh = true
	}
	if other.Collapse {
		f.Collapse = true
	}
}
