package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"mixMaster/business/mixer"
	"mixMaster/domain"
)

type LiquidRepository struct {
	DB *gorm.DB
}

var _ mixer.CatalogRepository = (*LiquidRepository)(nil)

func NewLiquidRepository(db *gorm.DB) *LiquidRepository {
	return &LiquidRepository{
		DB: db,
	}
}

// windowColumns maps filter windows onto the curated json levels.
var windowColumns = []struct {
	expr   string
	window func(domain.CatalogFilter) *domain.Window
}{
	{"(flavor_profile->>'menthol_level')::numeric", func(f domain.CatalogFilter) *domain.Window { return f.Menthol }},
	{"(flavor_profile->>'sweetness')::numeric", func(f domain.CatalogFilter) *domain.Window { return f.Sweetness }},
	{"(flavor_profile->>'complexity')::numeric", func(f domain.CatalogFilter) *domain.Window { return f.Complexity }},
}

// FindCandidates runs the SQL form of CatalogFilter.Matches. Rows come back
// ordered by name so combination generation is reproducible.
func (r *LiquidRepository) FindCandidates(ctx context.Context, filter domain.CatalogFilter) ([]domain.Liquid, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	q := r.DB.WithContext(ctx).
		Model(&domain.Liquid{}).
		Where("stock > 0").
		Where("(mixing_info->>'is_mixable')::boolean IS TRUE")

	for _, wc := range windowColumns {
		if w := wc.window(filter); w != nil {
			q = q.Where(wc.expr+" BETWEEN ? AND ?", w.Min, w.Max)
		}
	}

	if len(filter.FruitTypes) > 0 {
		fruits := make([]string, 0, len(filter.FruitTypes))
		for _, f := range filter.FruitTypes {
			fruits = append(fruits, strings.ToLower(f))
		}
		q = q.Where("EXISTS (SELECT 1 FROM jsonb_array_elements_text(fruit_types) AS ft WHERE lower(ft) IN ?)", fruits)
	}
	if filter.CoolingType != "" {
		q = q.Where("lower(cooling_type) = ?", strings.ToLower(filter.CoolingType))
	}
	if filter.LiquidType != "" {
		q = q.Where("liquid_type = ?", string(filter.LiquidType))
	}
	if filter.Primary != "" {
		q = q.Where("flavor_profile->>'primary' = ?", string(filter.Primary))
	}

	var liquids []domain.Liquid
	if err := q.Order("name ASC").Order("id ASC").Find(&liquids).Error; err != nil {
		return nil, fmt.Errorf("failed to find candidate liquids: %w", err)
	}

	return liquids, nil
}

func (r *LiquidRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Liquid, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if len(ids) == 0 {
		return []domain.Liquid{}, nil
	}

	var liquids []domain.Liquid
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&liquids).Error; err != nil {
		return nil, fmt.Errorf("failed to find liquids: %w", err)
	}

	return liquids, nil
}

// FindByID returns nil without error when the liquid does not exist.
func (r *LiquidRepository) FindByID(ctx context.Context, id string) (*domain.Liquid, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var liquid domain.Liquid
	err := r.DB.WithContext(ctx).First(&liquid, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find liquid: %w", err)
	}

	return &liquid, nil
}
