package mixer

import (
	"math"
	"strings"

	"mixMaster/domain"
)

// EstimateProfile is the percentage-weighted sum of every attribute.
func EstimateProfile(liquids []Profiled, percentages []float64) domain.Attributes {
	var est domain.Attributes
	for i, l := range liquids {
		if i >= len(percentages) {
			break
		}
		w := percentages[i] / 100
		a := l.Attributes
		est.MentholLevel += a.MentholLevel * w
		est.Sweetness += a.Sweetness * w
		est.Intensity += a.Intensity * w
		est.Complexity += a.Complexity * w
		est.Creaminess += a.Creaminess * w
		est.Fruitiness += a.Fruitiness * w
		est.Spiciness += a.Spiciness * w
		est.Bitterness += a.Bitterness * w
		est.Acidity += a.Acidity * w
	}
	return roundAttributes(est)
}

func roundAttributes(a domain.Attributes) domain.Attributes {
	r := func(v float64) float64 { return math.Round(v*100) / 100 }
	return domain.Attributes{
		MentholLevel: r(a.MentholLevel),
		Sweetness:    r(a.Sweetness),
		Intensity:    r(a.Intensity),
		Complexity:   r(a.Complexity),
		Creaminess:   r(a.Creaminess),
		Fruitiness:   r(a.Fruitiness),
		Spiciness:    r(a.Spiciness),
		Bitterness:   r(a.Bitterness),
		Acidity:      r(a.Acidity),
	}
}

// MatchBreakdown is a match score together with the parts it came from.
type MatchBreakdown struct {
	Distance     float64
	TypeBonus    float64
	CoolingBonus float64
	Score        float64
}

// MatchScore rates an estimated profile against the desired one, in [0, 100].
// The liquid type and cooling bonuses apply only when every liquid of the
// mix satisfies the requested constraint.
func (c Config) MatchScore(est domain.Attributes, liquids []Profiled, desired domain.DesiredProfile) MatchBreakdown {
	b := MatchBreakdown{Distance: targetDistance(est, desired)}

	if desired.LiquidType != "" && allLiquids(liquids, func(l domain.Liquid) bool {
		return l.Type == desired.LiquidType
	}) {
		b.TypeBonus = c.ConstraintBonus
	}
	if desired.CoolingType != "" && allLiquids(liquids, func(l domain.Liquid) bool {
		return strings.EqualFold(l.CoolingType, desired.CoolingType)
	}) {
		b.CoolingBonus = c.ConstraintBonus
	}

	score := 100 - c.DistancePenalty*b.Distance + b.TypeBonus + b.CoolingBonus
	b.Score = math.Round(math.Max(0, math.Min(100, score))*100) / 100
	return b
}

func (c Config) Accepts(score float64) bool {
	return score > c.AcceptScore
}

func allLiquids(liquids []Profiled, pred func(domain.Liquid) bool) bool {
	if len(liquids) == 0 {
		return false
	}
	for _, l := range liquids {
		if !pred(l.Liquid) {
			return false
		}
	}
	return true
}
