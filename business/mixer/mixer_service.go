package mixer

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"mixMaster/domain"
	"mixMaster/pkg/logger"
)

// ---- Repository interfaces ----

type CatalogRepository interface {
	FindCandidates(ctx context.Context, filter domain.CatalogFilter) ([]domain.Liquid, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Liquid, error)
	FindByID(ctx context.Context, id string) (*domain.Liquid, error)
}

// SuggestionCache is optional; a nil cache disables caching.
type SuggestionCache interface {
	Get(ctx context.Context, key string) (*domain.Recommendation, bool, error)
	Set(ctx context.Context, key string, rec domain.Recommendation) error
}

// ---- Service ----

type MixerService struct {
	catalog   CatalogRepository
	cache     SuggestionCache
	lexicon   *Lexicon
	extractor *Extractor
	validate  *validator.Validate
	cfg       Config
}

func NewMixerService(catalog CatalogRepository, cache SuggestionCache, cfg Config) *MixerService {
	lexicon := DefaultLexicon()
	return &MixerService{
		catalog:   catalog,
		cache:     cache,
		lexicon:   lexicon,
		extractor: NewExtractor(lexicon),
		validate:  validator.New(),
		cfg:       cfg.WithDefaults(),
	}
}

func (s *MixerService) normalizeDesired(desired domain.DesiredProfile) (domain.DesiredProfile, error) {
	if desired.MaxLiquids == 0 {
		desired.MaxLiquids = s.cfg.DefaultMaxLiquids
	}
	if err := s.validate.Struct(desired); err != nil {
		return desired, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return desired, nil
}

// Recommend suggests ranked mixes for the desired profile.
func (s *MixerService) Recommend(ctx context.Context, desired domain.DesiredProfile) (*domain.Recommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	desired, err := s.normalizeDesired(desired)
	if err != nil {
		MixerRecommendationsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}

	tid := TraceIDFromContext(ctx)
	key := CacheKey(desired)

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			logger.Warn("suggestion_cache_get_failed", "trace_id", tid, "key", key, "error", err)
		} else if ok {
			MixerRecommendationsTotal.WithLabelValues("cached").Inc()
			return cached, nil
		}
	}

	candidates, relaxed, err := s.findCandidates(ctx, desired)
	if err != nil {
		if errors.Is(err, ErrNoCandidates) {
			MixerRecommendationsTotal.WithLabelValues("no_candidates").Inc()
		} else {
			MixerRecommendationsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	evaluated := s.evaluate(s.extractor.ResolveAll(candidates), desired)
	suggestions := s.rank(evaluated)

	rec := domain.Recommendation{
		Suggestions:    suggestions,
		CandidateCount: len(candidates),
		Relaxed:        relaxed,
	}

	logger.Debug("mixer_recommend",
		"trace_id", tid,
		"flavor", desired.Flavor,
		"max_liquids", desired.MaxLiquids,
		"candidates", len(candidates),
		"relaxed", relaxed,
		"evaluated", len(evaluated),
		"suggestions", len(suggestions),
	)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, rec); err != nil {
			logger.Warn("suggestion_cache_set_failed", "trace_id", tid, "key", key, "error", err)
		}
	}

	outcome := "ok"
	if len(suggestions) == 0 {
		outcome = "empty"
	}
	MixerRecommendationsTotal.WithLabelValues(outcome).Inc()

	return &rec, nil
}

// DebugRecommend returns every evaluated combination in generation order,
// including the ones below the acceptance threshold.
func (s *MixerService) DebugRecommend(ctx context.Context, desired domain.DesiredProfile) ([]domain.DebugSuggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	desired, err := s.normalizeDesired(desired)
	if err != nil {
		return nil, err
	}

	candidates, relaxed, err := s.findCandidates(ctx, desired)
	if err != nil {
		return nil, err
	}

	logger.Debug("mixer_debug_recommend",
		"trace_id", TraceIDFromContext(ctx),
		"candidates", len(candidates),
		"relaxed", relaxed,
	)

	return s.evaluate(s.extractor.ResolveAll(candidates), desired), nil
}

// findCandidates queries the catalog, loosening the filter one constraint at
// a time until something comes back. Once every step ran the filter is the
// broadest one (mixable and in stock).
func (s *MixerService) findCandidates(ctx context.Context, desired domain.DesiredProfile) ([]domain.Liquid, []string, error) {
	filter := s.cfg.InitialFilter(desired)
	relaxed := make([]string, 0, len(relaxOrder))

	liquids, err := s.catalog.FindCandidates(ctx, filter)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load candidates: %w", err)
	}

	for _, step := range relaxOrder {
		if len(liquids) > 0 {
			break
		}
		if !step.relax(&filter) {
			continue
		}
		relaxed = append(relaxed, step.name)
		if liquids, err = s.catalog.FindCandidates(ctx, filter); err != nil {
			return nil, nil, fmt.Errorf("failed to load candidates: %w", err)
		}
	}

	MixerRelaxationSteps.Observe(float64(len(relaxed)))

	if len(liquids) == 0 {
		return nil, relaxed, ErrNoCandidates
	}
	return liquids, relaxed, nil
}

// evaluate allocates and scores every generated combination. Generation
// order is sizes ascending, then index-ascending within a size.
func (s *MixerService) evaluate(pool []Profiled, desired domain.DesiredProfile) []domain.DebugSuggestion {
	maxSize := min(desired.MaxLiquids, len(pool))
	out := make([]domain.DebugSuggestion, 0)

	index := 0
	for size := minLiquidsPerMix; size <= maxSize; size++ {
		for _, combo := range Combinations(pool, size, s.cfg.CombinationCap) {
			percentages := OptimizeShares(combo, desired, s.cfg.MinShare)
			est := EstimateProfile(combo, percentages)
			match := s.cfg.MatchScore(est, combo, desired)
			compat := CheckCompatibility(combo)
			shares := toShares(combo, percentages)

			out = append(out, domain.DebugSuggestion{
				Suggestion: domain.Suggestion{
					Liquids:            shares,
					EstimatedProfile:   est,
					MatchScore:         match.Score,
					CompatibilityTier:  compat.Tier,
					CompatibilityScore: compat.Score,
					IdentityHash:       IdentityHash(shares),
				},
				GenerationIndex: index,
				Distance:        match.Distance,
				TypeBonus:       match.TypeBonus,
				CoolingBonus:    match.CoolingBonus,
				Accepted:        s.cfg.Accepts(match.Score),
			})
			index++
		}
	}

	MixerCombinationsScored.Add(float64(index))
	return out
}

// rank keeps accepted suggestions, best first, generation order on ties.
func (s *MixerService) rank(evaluated []domain.DebugSuggestion) []domain.Suggestion {
	accepted := make([]domain.DebugSuggestion, 0, len(evaluated))
	for _, e := range evaluated {
		if e.Accepted {
			accepted = append(accepted, e)
		}
	}

	sort.SliceStable(accepted, func(i, j int) bool {
		if accepted[i].MatchScore != accepted[j].MatchScore {
			return accepted[i].MatchScore > accepted[j].MatchScore
		}
		return accepted[i].GenerationIndex < accepted[j].GenerationIndex
	})

	if len(accepted) > s.cfg.MaxSuggestions {
		accepted = accepted[:s.cfg.MaxSuggestions]
	}

	out := make([]domain.Suggestion, 0, len(accepted))
	for _, a := range accepted {
		out = append(out, a.Suggestion)
	}
	return out
}

func toShares(liquids []Profiled, percentages []float64) []domain.MixShare {
	shares := make([]domain.MixShare, 0, len(liquids))
	for i, l := range liquids {
		shares = append(shares, domain.MixShare{
			LiquidID:   l.Liquid.ID,
			Name:       l.Liquid.Name,
			Percentage: percentages[i],
		})
	}
	return shares
}
