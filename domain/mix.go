package domain

// DesiredProfile is what the caller wants the mix to taste like.
type DesiredProfile struct {
	Flavor       FlavorCategory `json:"flavor" validate:"omitempty,oneof=fruity berry citrus tropical menthol dessert cream tobacco coffee candy spice beverage nutty mixed"`
	MentholLevel float64        `json:"menthol_level" validate:"gte=0,lte=10"`
	Sweetness    float64        `json:"sweetness" validate:"gte=0,lte=10"`
	Complexity   float64        `json:"complexity" validate:"gte=0,lte=10"`
	LiquidType   LiquidType     `json:"liquid_type,omitempty" validate:"omitempty,oneof=freebase nicsalt"`
	CoolingType  string         `json:"cooling_type,omitempty"`
	FruitTypes   []string       `json:"fruit_types,omitempty"`
	MaxLiquids   int            `json:"max_liquids" validate:"min=2,max=5"`
}

// Attributes is the numeric taste vector, each value in [0, 10].
type Attributes struct {
	MentholLevel float64 `json:"menthol_level"`
	Sweetness    float64 `json:"sweetness"`
	Intensity    float64 `json:"intensity"`
	Complexity   float64 `json:"complexity"`
	Creaminess   float64 `json:"creaminess"`
	Fruitiness   float64 `json:"fruitiness"`
	Spiciness    float64 `json:"spiciness"`
	Bitterness   float64 `json:"bitterness"`
	Acidity      float64 `json:"acidity"`
}

type CompatibilityTier string

const (
	TierExcellent CompatibilityTier = "excellent"
	TierGood      CompatibilityTier = "good"
	TierFair      CompatibilityTier = "fair"
	TierPoor      CompatibilityTier = "poor"
)

// MixShare is one liquid of a mix together with its percentage.
type MixShare struct {
	LiquidID   string  `json:"liquid_id"`
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

type Suggestion struct {
	Liquids            []MixShare        `json:"liquids"`
	EstimatedProfile   Attributes        `json:"estimated_profile"`
	MatchScore         float64           `json:"match_score"`
	CompatibilityTier  CompatibilityTier `json:"compatibility_tier"`
	CompatibilityScore float64           `json:"compatibility_score"`
	IdentityHash       string            `json:"identity_hash"`
}

// Recommendation is the result of one recommend call.
type Recommendation struct {
	Suggestions    []Suggestion `json:"suggestions"`
	CandidateCount int          `json:"candidate_count"`
	Relaxed        []string     `json:"relaxed,omitempty"`
}

// DebugSuggestion exposes every evaluated combination, accepted or not.
type DebugSuggestion struct {
	Suggestion
	GenerationIndex int     `json:"generation_index"`
	Distance        float64 `json:"distance"`
	TypeBonus       float64 `json:"type_bonus"`
	CoolingBonus    float64 `json:"cooling_bonus"`
	Accepted        bool    `json:"accepted"`
}

type IncompatiblePair struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

type AnalysisReport struct {
	Liquids            []MixShare         `json:"liquids"`
	EstimatedProfile   Attributes         `json:"estimated_profile"`
	CompatibilityTier  CompatibilityTier  `json:"compatibility_tier"`
	CompatibilityScore float64            `json:"compatibility_score"`
	IncompatiblePairs  []IncompatiblePair `json:"incompatible_pairs"`
	Warnings           []string           `json:"warnings"`
	Recommendations    []string           `json:"recommendations"`
	IdentityHash       string             `json:"identity_hash"`
}

type ResolvedFlavorProfile struct {
	Primary         FlavorCategory   `json:"primary"`
	Secondary       []FlavorCategory `json:"secondary"`
	DetectedFlavors []FlavorCategory `json:"detected_flavors"`
	MentholLevel    float64          `json:"menthol_level"`
	Sweetness       float64          `json:"sweetness"`
	Intensity       float64          `json:"intensity"`
	Complexity      float64          `json:"complexity"`
}

type LiquidCompatibility struct {
	CompatibleCategories  []FlavorCategory `json:"compatible_categories"`
	ConflictingCategories []FlavorCategory `json:"conflicting_categories"`
}

type LiquidAnalysis struct {
	LiquidID              string                `json:"liquid_id"`
	Name                  string                `json:"name"`
	FlavorProfile         ResolvedFlavorProfile `json:"flavor_profile"`
	Compatibility         LiquidCompatibility   `json:"compatibility"`
	ChemicalProfile       Attributes            `json:"chemical_profile"`
	MixingRecommendations []string              `json:"mixing_recommendations"`
}
