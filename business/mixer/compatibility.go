package mixer

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"mixMaster/domain"
)

// CompatibilityResult summarises pairwise compatibility inside one mix.
type CompatibilityResult struct {
	Tier              domain.CompatibilityTier
	Ratio             float64
	Score             float64
	IncompatiblePairs []domain.IncompatiblePair
}

// IsCompatible is true when any pairing rule holds. An empty cooling type
// never counts as a shared cooling type.
func IsCompatible(a, b Profiled) bool {
	if slices.Contains(a.Liquid.MixingInfo.Compatibility, b.Primary) ||
		slices.Contains(b.Liquid.MixingInfo.Compatibility, a.Primary) {
		return true
	}
	if a.Primary == b.Primary {
		return true
	}
	for _, fa := range a.Liquid.FruitTypes {
		for _, fb := range b.Liquid.FruitTypes {
			if strings.EqualFold(fa, fb) {
				return true
			}
		}
	}
	if a.Liquid.Type != "" && a.Liquid.Type == b.Liquid.Type {
		return true
	}
	if a.Liquid.CoolingType != "" && strings.EqualFold(a.Liquid.CoolingType, b.Liquid.CoolingType) {
		return true
	}
	return false
}

func CheckCompatibility(liquids []Profiled) CompatibilityResult {
	pairs := make([]domain.IncompatiblePair, 0)
	total := 0
	for i := range liquids {
		for j := i + 1; j < len(liquids); j++ {
			total++
			if !IsCompatible(liquids[i], liquids[j]) {
				pairs = append(pairs, domain.IncompatiblePair{
					First:  liquids[i].Liquid.Name,
					Second: liquids[j].Liquid.Name,
				})
			}
		}
	}

	ratio := 1.0
	if total > 0 {
		ratio = float64(total-len(pairs)) / float64(total)
	}

	return CompatibilityResult{
		Tier:              TierForRatio(ratio),
		Ratio:             ratio,
		Score:             math.Round(ratio*1000) / 10,
		IncompatiblePairs: pairs,
	}
}

func TierForRatio(ratio float64) domain.CompatibilityTier {
	switch {
	case ratio >= 0.8:
		return domain.TierExcellent
	case ratio >= 0.6:
		return domain.TierGood
	case ratio >= 0.4:
		return domain.TierFair
	default:
		return domain.TierPoor
	}
}

func flavorsOf(p Profiled) []domain.FlavorCategory {
	out := make([]domain.FlavorCategory, 0, 1+len(p.Secondary))
	if p.Primary != domain.FlavorMixed {
		out = append(out, p.Primary)
	}
	for _, s := range p.Secondary {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// ConflictWarnings lists known-bad flavor pairings between liquids of a mix.
// The warnings are advisory and never change the tier.
func (l *Lexicon) ConflictWarnings(liquids []Profiled) []string {
	warnings := make([]string, 0)
	seen := make(map[string]struct{})

	for i := range liquids {
		for j := i + 1; j < len(liquids); j++ {
			for _, fa := range flavorsOf(liquids[i]) {
				for _, fb := range flavorsOf(liquids[j]) {
					reason, ok := l.Conflict(fa, fb)
					if !ok {
						continue
					}
					msg := fmt.Sprintf("%s (%s) and %s (%s): %s",
						liquids[i].Liquid.Name, fa, liquids[j].Liquid.Name, fb, reason)
					if _, dup := seen[msg]; dup {
						continue
					}
					seen[msg] = struct{}{}
					warnings = append(warnings, msg)
				}
			}
		}
	}
	return warnings
}
