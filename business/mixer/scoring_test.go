package mixer

import (
	"math/rand"
	"testing"

	"mixMaster/domain"
)

func TestMatchScoreRange(t *testing.T) {
	cfg := DefaultConfig()
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 1000; i++ {
		est := domain.Attributes{
			MentholLevel: rng.Float64() * 10,
			Sweetness:    rng.Float64() * 10,
			Complexity:   rng.Float64() * 10,
		}
		desired := domain.DesiredProfile{
			MentholLevel: rng.Float64() * 10,
			Sweetness:    rng.Float64() * 10,
			Complexity:   rng.Float64() * 10,
			LiquidType:   domain.LiquidTypeFreebase,
			CoolingType:  "koolada",
		}
		liquids := []Profiled{{Liquid: domain.Liquid{Type: domain.LiquidTypeFreebase, CoolingType: "Koolada"}}}

		got := cfg.MatchScore(est, liquids, desired).Score
		if got < 0 || got > 100 {
			t.Fatalf("score %v out of range", got)
		}
	}
}

func TestMatchScoreBonusesNeedEveryLiquid(t *testing.T) {
	cfg := DefaultConfig()
	est := domain.Attributes{MentholLevel: 2, Sweetness: 5, Complexity: 5}
	desired := domain.DesiredProfile{
		MentholLevel: 0,
		Sweetness:    5,
		Complexity:   5,
		LiquidType:   domain.LiquidTypeNicSalt,
		CoolingType:  "ws-23",
	}

	salt := Profiled{Liquid: domain.Liquid{Type: domain.LiquidTypeNicSalt, CoolingType: "WS-23"}}
	free := Profiled{Liquid: domain.Liquid{Type: domain.LiquidTypeFreebase}}

	all := cfg.MatchScore(est, []Profiled{salt, salt}, desired)
	if all.Score != 100 || all.TypeBonus != 5 || all.CoolingBonus != 5 {
		t.Fatalf("all matching: %+v, want 100 with both bonuses", all)
	}

	mixed := cfg.MatchScore(est, []Profiled{salt, free}, desired)
	if mixed.Score != 90 || mixed.TypeBonus != 0 || mixed.CoolingBonus != 0 {
		t.Fatalf("partial match: %+v, want 90 without bonuses", mixed)
	}
}

func TestAcceptsIsStrict(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Accepts(70) {
		t.Fatal("a score of exactly 70 must be rejected")
	}
	if !cfg.Accepts(70.01) {
		t.Fatal("a score above 70 must be accepted")
	}
}

func TestEstimateProfileIsWeighted(t *testing.T) {
	a := Profiled{Attributes: domain.Attributes{MentholLevel: 10, Sweetness: 2, Acidity: 4}}
	b := Profiled{Attributes: domain.Attributes{MentholLevel: 0, Sweetness: 8, Acidity: 0}}

	got := EstimateProfile([]Profiled{a, b}, []float64{25, 75})
	if got.MentholLevel != 2.5 || got.Sweetness != 6.5 || got.Acidity != 1 {
		t.Fatalf("estimate = %+v", got)
	}
}

func TestCloseLiquidsOutscoreDistantOne(t *testing.T) {
	pool := []domain.Liquid{
		curated("a", "Alpha", "", 0, 5, 5),
		curated("b", "Beta", "", 0, 5, 5),
		curated("c", "Gamma", "", 10, 0, 10),
	}
	s := NewMixerService(&fakeCatalog{}, nil, DefaultConfig())
	desired := domain.DesiredProfile{MentholLevel: 0, Sweetness: 5, Complexity: 5, MaxLiquids: 2}

	evaluated := s.evaluate(s.extractor.ResolveAll(pool), desired)
	if len(evaluated) != 3 {
		t.Fatalf("evaluated %d combinations, want 3", len(evaluated))
	}

	var pair float64
	for _, e := range evaluated {
		hasC := false
		for _, share := range e.Liquids {
			if share.LiquidID == "c" {
				hasC = true
			}
		}
		if !hasC {
			pair = e.MatchScore
		}
	}
	for _, e := range evaluated {
		for _, share := range e.Liquids {
			if share.LiquidID == "c" && e.MatchScore >= pair {
				t.Fatalf("combination with the distant liquid scored %v, pair scored %v", e.MatchScore, pair)
			}
		}
	}

	ranked := s.rank(evaluated)
	if len(ranked) == 0 || ranked[0].Liquids[0].LiquidID != "a" || ranked[0].Liquids[1].LiquidID != "b" {
		t.Fatalf("top suggestion = %+v, want alpha and beta", ranked)
	}
	if ranked[0].MatchScore != 100 {
		t.Fatalf("top score = %v, want 100", ranked[0].MatchScore)
	}
}

func TestRankOrdersAndTruncates(t *testing.T) {
	s := NewMixerService(&fakeCatalog{}, nil, Config{MaxSuggestions: 3})

	evaluated := []domain.DebugSuggestion{
		{Suggestion: domain.Suggestion{MatchScore: 80}, GenerationIndex: 0, Accepted: true},
		{Suggestion: domain.Suggestion{MatchScore: 95}, GenerationIndex: 1, Accepted: true},
		{Suggestion: domain.Suggestion{MatchScore: 60}, GenerationIndex: 2, Accepted: false},
		{Suggestion: domain.Suggestion{MatchScore: 95, IdentityHash: "later"}, GenerationIndex: 3, Accepted: true},
		{Suggestion: domain.Suggestion{MatchScore: 75}, GenerationIndex: 4, Accepted: true},
	}

	got := s.rank(evaluated)
	if len(got) != 3 {
		t.Fatalf("got %d suggestions, want 3", len(got))
	}
	if got[0].MatchScore != 95 || got[0].IdentityHash != "" {
		t.Fatalf("first = %+v, want the earlier 95", got[0])
	}
	if got[1].IdentityHash != "later" || got[2].MatchScore != 80 {
		t.Fatalf("unexpected order: %+v", got)
	}
}
