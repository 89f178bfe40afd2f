package mixer

type Config struct {
	// floor every liquid gets once a combination is allocated
	MinShare float64

	// combinations scored per size; keeps large pools bounded
	CombinationCap int

	// suggestions must score strictly above this
	AcceptScore    float64
	MaxSuggestions int

	// +/- window around each desired level for the first catalog query
	WindowTolerance float64

	DistancePenalty float64
	ConstraintBonus float64

	// used when a request leaves max_liquids empty
	DefaultMaxLiquids int
}

const (
	defaultMinShare          = 10.0
	defaultCombinationCap    = 50
	defaultAcceptScore       = 70.0
	defaultMaxSuggestions    = 10
	defaultWindowTolerance   = 2.0
	defaultDistancePenalty   = 5.0
	defaultConstraintBonus   = 5.0
	defaultDefaultMaxLiquids = 3

	minLiquidsPerMix = 2
	maxLiquidsPerMix = 5
)

func DefaultConfig() Config {
	return Config{
		MinShare:          defaultMinShare,
		CombinationCap:    defaultCombinationCap,
		AcceptScore:       defaultAcceptScore,
		MaxSuggestions:    defaultMaxSuggestions,
		WindowTolerance:   defaultWindowTolerance,
		DistancePenalty:   defaultDistancePenalty,
		ConstraintBonus:   defaultConstraintBonus,
		DefaultMaxLiquids: defaultDefaultMaxLiquids,
	}
}

// WithDefaults fills every zero field from DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.MinShare <= 0 {
		c.MinShare = d.MinShare
	}
	if c.CombinationCap <= 0 {
		c.CombinationCap = d.CombinationCap
	}
	if c.AcceptScore <= 0 {
		c.AcceptScore = d.AcceptScore
	}
	if c.MaxSuggestions <= 0 {
		c.MaxSuggestions = d.MaxSuggestions
	}
	if c.WindowTolerance <= 0 {
		c.WindowTolerance = d.WindowTolerance
	}
	if c.DistancePenalty <= 0 {
		c.DistancePenalty = d.DistancePenalty
	}
	if c.ConstraintBonus <= 0 {
		c.ConstraintBonus = d.ConstraintBonus
	}
	if c.DefaultMaxLiquids < minLiquidsPerMix || c.DefaultMaxLiquids > maxLiquidsPerMix {
		c.DefaultMaxLiquids = d.DefaultMaxLiquids
	}
	return c
}
