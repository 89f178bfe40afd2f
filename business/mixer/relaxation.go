package mixer

import (
	"mixMaster/domain"
)

type relaxStep struct {
	name string
	// relax loosens f in place and reports whether anything changed
	relax func(f *domain.CatalogFilter) bool
}

// relaxOrder is the fixed order in which catalog constraints are dropped.
var relaxOrder = []relaxStep{
	{name: "menthol_level", relax: func(f *domain.CatalogFilter) bool {
		changed := f.Menthol != nil
		f.Menthol = nil
		return changed
	}},
	{name: "sweetness", relax: func(f *domain.CatalogFilter) bool {
		changed := f.Sweetness != nil
		f.Sweetness = nil
		return changed
	}},
	{name: "complexity", relax: func(f *domain.CatalogFilter) bool {
		changed := f.Complexity != nil
		f.Complexity = nil
		return changed
	}},
	{name: "fruit_types", relax: func(f *domain.CatalogFilter) bool {
		changed := len(f.FruitTypes) > 0
		f.FruitTypes = nil
		return changed
	}},
	{name: "cooling_type", relax: func(f *domain.CatalogFilter) bool {
		changed := f.CoolingType != ""
		f.CoolingType = ""
		return changed
	}},
	{name: "liquid_type", relax: func(f *domain.CatalogFilter) bool {
		changed := f.LiquidType != ""
		f.LiquidType = ""
		return changed
	}},
	{name: "flavor", relax: func(f *domain.CatalogFilter) bool {
		changed := f.Primary != ""
		f.Primary = ""
		return changed
	}},
}

func window(target, tolerance float64) *domain.Window {
	return &domain.Window{
		Min: clamp(target - tolerance),
		Max: clamp(target + tolerance),
	}
}

// InitialFilter is the strictest catalog query for a desired profile.
func (c Config) InitialFilter(desired domain.DesiredProfile) domain.CatalogFilter {
	f := domain.CatalogFilter{
		Menthol:     window(desired.MentholLevel, c.WindowTolerance),
		Sweetness:   window(desired.Sweetness, c.WindowTolerance),
		Complexity:  window(desired.Complexity, c.WindowTolerance),
		CoolingType: desired.CoolingType,
		LiquidType:  desired.LiquidType,
	}
	if len(desired.FruitTypes) > 0 {
		f.FruitTypes = append([]string(nil), desired.FruitTypes...)
	}
	if desired.Flavor != "" && desired.Flavor != domain.FlavorMixed {
		f.Primary = desired.Flavor
	}
	return f
}
