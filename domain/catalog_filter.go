package domain

import "strings"

// Window is an inclusive attribute range.
type Window struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (w Window) Contains(v float64) bool {
	return v >= w.Min && v <= w.Max
}

// CatalogFilter describes a candidate query. In-stock and mixable are always
// required; every other field is optional and nil/empty means "any".
type CatalogFilter struct {
	Menthol     *Window        `json:"menthol,omitempty"`
	Sweetness   *Window        `json:"sweetness,omitempty"`
	Complexity  *Window        `json:"complexity,omitempty"`
	FruitTypes  []string       `json:"fruit_types,omitempty"`
	CoolingType string         `json:"cooling_type,omitempty"`
	LiquidType  LiquidType     `json:"liquid_type,omitempty"`
	Primary     FlavorCategory `json:"primary,omitempty"`
}

// IsBroadest reports whether the filter only carries the mandatory
// in-stock and mixable constraints.
func (f CatalogFilter) IsBroadest() bool {
	return f.Menthol == nil && f.Sweetness == nil && f.Complexity == nil &&
		len(f.FruitTypes) == 0 && f.CoolingType == "" && f.LiquidType == "" && f.Primary == ""
}

// Matches evaluates the filter against the stored (curated) values of a
// liquid, the same columns the SQL translation reads. A window on a value
// that was never curated does not match.
func (f CatalogFilter) Matches(l Liquid) bool {
	if l.Stock <= 0 || !l.MixingInfo.IsMixable {
		return false
	}
	if !windowMatches(f.Menthol, l.FlavorProfile.MentholLevel) ||
		!windowMatches(f.Sweetness, l.FlavorProfile.Sweetness) ||
		!windowMatches(f.Complexity, l.FlavorProfile.Complexity) {
		return false
	}
	if len(f.FruitTypes) > 0 && !sharesAny(f.FruitTypes, l.FruitTypes) {
		return false
	}
	if f.CoolingType != "" && !strings.EqualFold(f.CoolingType, l.CoolingType) {
		return false
	}
	if f.LiquidType != "" && f.LiquidType != l.Type {
		return false
	}
	if f.Primary != "" && f.Primary != l.FlavorProfile.Primary {
		return false
	}
	return true
}

func windowMatches(w *Window, v *float64) bool {
	if w == nil {
		return true
	}
	if v == nil {
		return false
	}
	return w.Contains(*v)
}

func sharesAny(want, have []string) bool {
	for _, w := range want {
		for _, h := range have {
			if strings.EqualFold(w, h) {
				return true
			}
		}
	}
	return false
}
