package mixer

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"

	"mixMaster/domain"
	"mixMaster/pkg/logger"
)

const percentageTolerance = 0.1

// thresholds on the estimated profile that trigger a recommendation
const (
	highMenthol    = 7.0
	highSweetness  = 8.0
	lowSweetness   = 3.0
	lowComplexity  = 4.0
	highComplexity = 8.0
	highIntensity  = 8.0
	highAcidity    = 7.0
	highBitterness = 6.0
)

// AnalyzeCombination evaluates a caller supplied mix. Every id must resolve;
// a partially resolved mix is rejected as a whole.
func (s *MixerService) AnalyzeCombination(ctx context.Context, ids []string, percentages []float64) (*domain.AnalysisReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if err := validateAllocation(ids, percentages); err != nil {
		MixerAnalysesTotal.WithLabelValues("mix", "invalid").Inc()
		return nil, err
	}

	found, err := s.catalog.FindByIDs(ctx, ids)
	if err != nil {
		MixerAnalysesTotal.WithLabelValues("mix", "error").Inc()
		return nil, fmt.Errorf("failed to load liquids: %w", err)
	}

	byID := make(map[string]domain.Liquid, len(found))
	for _, l := range found {
		byID[l.ID] = l
	}

	liquids := make([]domain.Liquid, 0, len(ids))
	var missing []string
	for _, id := range ids {
		l, ok := byID[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		liquids = append(liquids, l)
	}
	if len(missing) > 0 {
		MixerAnalysesTotal.WithLabelValues("mix", "invalid").Inc()
		return nil, fmt.Errorf("%w: unknown liquids %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	profiles := s.extractor.ResolveAll(liquids)
	est := EstimateProfile(profiles, percentages)
	compat := CheckCompatibility(profiles)
	shares := toShares(profiles, percentages)

	report := &domain.AnalysisReport{
		Liquids:            shares,
		EstimatedProfile:   est,
		CompatibilityTier:  compat.Tier,
		CompatibilityScore: compat.Score,
		IncompatiblePairs:  compat.IncompatiblePairs,
		Warnings:           s.lexicon.ConflictWarnings(profiles),
		Recommendations:    profileRecommendations(est, compat.Tier),
		IdentityHash:       IdentityHash(shares),
	}

	logger.Debug("mixer_analyze_combination",
		"trace_id", TraceIDFromContext(ctx),
		"liquids", len(ids),
		"tier", compat.Tier,
		"warnings", len(report.Warnings),
	)
	MixerAnalysesTotal.WithLabelValues("mix", "ok").Inc()

	return report, nil
}

func validateAllocation(ids []string, percentages []float64) error {
	if len(ids) != len(percentages) {
		return fmt.Errorf("%w: %d liquids but %d percentages", ErrInvalidInput, len(ids), len(percentages))
	}
	if len(ids) < minLiquidsPerMix || len(ids) > maxLiquidsPerMix {
		return fmt.Errorf("%w: a mix needs %d to %d liquids", ErrInvalidInput, minLiquidsPerMix, maxLiquidsPerMix)
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return fmt.Errorf("%w: empty liquid id", ErrInvalidInput)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: liquid %s listed twice", ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
	}

	total := 0.0
	for _, p := range percentages {
		if p <= 0 || p > 100 || math.IsNaN(p) {
			return fmt.Errorf("%w: percentage %v out of range", ErrInvalidInput, p)
		}
		total += p
	}
	if math.Abs(total-100) > percentageTolerance {
		return fmt.Errorf("%w: percentages sum to %v, want 100", ErrInvalidInput, total)
	}
	return nil
}

func profileRecommendations(est domain.Attributes, tier domain.CompatibilityTier) []string {
	recs := make([]string, 0)

	if est.MentholLevel > highMenthol {
		recs = append(recs, "Menthol level high: lower the share of cooling liquids for a softer hit")
	}
	if est.Sweetness > highSweetness {
		recs = append(recs, "Very sweet mix: add a tart or fresh liquid to balance it")
	} else if est.Sweetness < lowSweetness {
		recs = append(recs, "Low sweetness: a dessert or candy liquid would round the mix out")
	}
	if est.Complexity < lowComplexity {
		recs = append(recs, "Low complexity: consider more diverse flavors")
	} else if est.Complexity > highComplexity {
		recs = append(recs, "High complexity: individual flavors may get lost, try fewer liquids")
	}
	if est.Intensity > highIntensity {
		recs = append(recs, "High intensity: consider a lower nicotine strength or a smoother base")
	}
	if est.Acidity > highAcidity {
		recs = append(recs, "High acidity: citrus heavy mixes can feel harsh")
	}
	if est.Bitterness > highBitterness {
		recs = append(recs, "Noticeable bitterness: a creamy liquid would soften it")
	}

	switch tier {
	case domain.TierFair:
		recs = append(recs, "Some liquids share little in common: check the incompatible pairs")
	case domain.TierPoor:
		recs = append(recs, "Most liquids do not pair well: consider replacing the incompatible ones")
	}

	if len(recs) == 0 {
		recs = append(recs, "Balanced profile: no adjustments needed")
	}
	return recs
}

// AnalyzeSingleLiquid describes one liquid: its resolved flavor profile,
// what it pairs with and how to use it in a mix.
func (s *MixerService) AnalyzeSingleLiquid(ctx context.Context, id string) (*domain.LiquidAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if id == "" {
		return nil, fmt.Errorf("%w: empty liquid id", ErrInvalidInput)
	}

	liquid, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		MixerAnalysesTotal.WithLabelValues("liquid", "error").Inc()
		return nil, fmt.Errorf("failed to load liquid: %w", err)
	}
	if liquid == nil {
		MixerAnalysesTotal.WithLabelValues("liquid", "not_found").Inc()
		return nil, fmt.Errorf("%w: %s", ErrLiquidNotFound, id)
	}

	p := s.extractor.Resolve(*liquid)

	analysis := &domain.LiquidAnalysis{
		LiquidID: liquid.ID,
		Name:     liquid.Name,
		FlavorProfile: domain.ResolvedFlavorProfile{
			Primary:         p.Primary,
			Secondary:       p.Secondary,
			DetectedFlavors: p.Detected,
			MentholLevel:    p.Attributes.MentholLevel,
			Sweetness:       p.Attributes.Sweetness,
			Intensity:       p.Attributes.Intensity,
			Complexity:      p.Attributes.Complexity,
		},
		Compatibility:         s.liquidCompatibility(p),
		ChemicalProfile:       p.Attributes,
		MixingRecommendations: mixingRecommendations(p),
	}

	MixerAnalysesTotal.WithLabelValues("liquid", "ok").Inc()
	return analysis, nil
}

func (s *MixerService) liquidCompatibility(p Profiled) domain.LiquidCompatibility {
	compatible := make([]domain.FlavorCategory, 0)
	add := func(c domain.FlavorCategory) {
		if c != "" && c != domain.FlavorMixed && !slices.Contains(compatible, c) {
			compatible = append(compatible, c)
		}
	}

	for _, c := range p.Liquid.MixingInfo.Compatibility {
		add(c)
	}
	if entry, ok := s.lexicon.Entry(p.Primary); ok {
		add(p.Primary)
		for _, c := range entry.Pairings {
			add(c)
		}
	}

	conflicting := make([]domain.FlavorCategory, 0)
	for _, own := range flavorsOf(p) {
		for _, e := range s.lexicon.Entries() {
			if _, bad := s.lexicon.Conflict(own, e.Name); bad && !slices.Contains(conflicting, e.Name) {
				conflicting = append(conflicting, e.Name)
			}
		}
	}

	// a curated compatibility entry beats a generic conflict
	compatible = slices.DeleteFunc(compatible, func(c domain.FlavorCategory) bool {
		return slices.Contains(conflicting, c) && !slices.Contains(p.Liquid.MixingInfo.Compatibility, c)
	})
	conflicting = slices.DeleteFunc(conflicting, func(c domain.FlavorCategory) bool {
		return slices.Contains(p.Liquid.MixingInfo.Compatibility, c)
	})

	return domain.LiquidCompatibility{
		CompatibleCategories:  compatible,
		ConflictingCategories: conflicting,
	}
}

func mixingRecommendations(p Profiled) []string {
	recs := make([]string, 0)
	info := p.Liquid.MixingInfo

	if !info.IsMixable {
		recs = append(recs, "Not intended for mixing: best used on its own")
		return recs
	}
	if info.RecommendedPercentage > 0 {
		recs = append(recs, fmt.Sprintf("Recommended share in a mix: %s%%", formatPercent(info.RecommendedPercentage)))
	}

	a := p.Attributes
	switch {
	case a.MentholLevel > highMenthol:
		recs = append(recs, "Strong cooling: keep it at 10-30% so it does not dominate")
	case a.Sweetness > highSweetness:
		recs = append(recs, "Very sweet: pair with a fresh or tart liquid")
	case a.Complexity > highComplexity:
		recs = append(recs, "Complex profile: works well as the base of a mix")
	case a.Complexity < lowComplexity:
		recs = append(recs, "Simple profile: good as an accent next to a richer base")
	}

	if info.Notes != "" {
		recs = append(recs, info.Notes)
	}
	if len(recs) == 0 {
		recs = append(recs, "Versatile: mixes well at an even split")
	}
	return recs
}

func formatPercent(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
