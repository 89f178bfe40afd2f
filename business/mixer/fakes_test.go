package mixer

import (
	"context"
	"slices"

	"mixMaster/domain"
)

type fakeCatalog struct {
	liquids []domain.Liquid
	filters []domain.CatalogFilter
	err     error
}

func (f *fakeCatalog) FindCandidates(ctx context.Context, filter domain.CatalogFilter) ([]domain.Liquid, error) {
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Liquid
	for _, l := range f.liquids {
		if filter.Matches(l) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeCatalog) FindByIDs(ctx context.Context, ids []string) ([]domain.Liquid, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []domain.Liquid
	for _, l := range f.liquids {
		if slices.Contains(ids, l.ID) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeCatalog) FindByID(ctx context.Context, id string) (*domain.Liquid, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, l := range f.liquids {
		if l.ID == id {
			l := l
			return &l, nil
		}
	}
	return nil, nil
}

type fakeCache struct {
	store map[string]domain.Recommendation
	gets  int
	sets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string]domain.Recommendation)}
}

func (c *fakeCache) Get(ctx context.Context, key string) (*domain.Recommendation, bool, error) {
	c.gets++
	rec, ok := c.store[key]
	if !ok {
		return nil, false, nil
	}
	return &rec, true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, rec domain.Recommendation) error {
	c.sets++
	c.store[key] = rec
	return nil
}

// curated builds an in-stock, mixable liquid with curated levels.
func curated(id, name string, primary domain.FlavorCategory, menthol, sweetness, complexity float64) domain.Liquid {
	return domain.Liquid{
		ID:   id,
		Name: name,
		FlavorProfile: domain.FlavorProfile{
			Primary:      primary,
			MentholLevel: domain.Level(menthol),
			Sweetness:    domain.Level(sweetness),
			Intensity:    domain.Level(5),
			Complexity:   domain.Level(complexity),
		},
		MixingInfo: domain.MixingInfo{IsMixable: true},
		Stock:      10,
	}
}
