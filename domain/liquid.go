package domain

import (
	"time"

	"gorm.io/datatypes"
)

// CREATE TABLE public.liquids (
//     id              UUID PRIMARY KEY,
//     name            TEXT NOT NULL,
//     description     TEXT,
//     tags            JSONB DEFAULT '[]',
//     flavor_profile  JSONB,
//     fruit_types     JSONB DEFAULT '[]',
//     cooling_type    TEXT DEFAULT '',
//     liquid_type     TEXT DEFAULT '',
//     mixing_info     JSONB,
//     stock           INTEGER DEFAULT 0,
//     created_at      TIMESTAMPTZ DEFAULT NOW(),
//     updated_at      TIMESTAMPTZ DEFAULT NOW()
// );

type FlavorCategory string

const (
	FlavorFruity   FlavorCategory = "fruity"
	FlavorBerry    FlavorCategory = "berry"
	FlavorCitrus   FlavorCategory = "citrus"
	FlavorTropical FlavorCategory = "tropical"
	FlavorMenthol  FlavorCategory = "menthol"
	FlavorDessert  FlavorCategory = "dessert"
	FlavorCream    FlavorCategory = "cream"
	FlavorTobacco  FlavorCategory = "tobacco"
	FlavorCoffee   FlavorCategory = "coffee"
	FlavorCandy    FlavorCategory = "candy"
	FlavorSpice    FlavorCategory = "spice"
	FlavorBeverage FlavorCategory = "beverage"
	FlavorNutty    FlavorCategory = "nutty"

	// FlavorMixed is used when no lexicon flavor was detected.
	FlavorMixed FlavorCategory = "mixed"
)

type LiquidType string

const (
	LiquidTypeFreebase LiquidType = "freebase"
	LiquidTypeNicSalt  LiquidType = "nicsalt"
)

// FlavorProfile holds the curator-maintained taste data of a liquid.
// Nil levels were never curated and are filled in by text extraction.
type FlavorProfile struct {
	Primary      FlavorCategory   `json:"primary,omitempty"`
	Secondary    []FlavorCategory `json:"secondary,omitempty"`
	MentholLevel *float64         `json:"menthol_level,omitempty"`
	Sweetness    *float64         `json:"sweetness,omitempty"`
	Intensity    *float64         `json:"intensity,omitempty"`
	Complexity   *float64         `json:"complexity,omitempty"`
}

type MixingInfo struct {
	IsMixable             bool             `json:"is_mixable"`
	Compatibility         []FlavorCategory `json:"compatibility,omitempty"`
	RecommendedPercentage float64          `json:"recommended_percentage,omitempty"`
	Notes                 string           `json:"notes,omitempty"`
}

type Liquid struct {
	ID            string                      `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name          string                      `gorm:"column:name;type:text;not null" json:"name"`
	Description   string                      `gorm:"column:description;type:text" json:"description"`
	Tags          datatypes.JSONSlice[string] `gorm:"column:tags;type:jsonb" json:"tags"`
	FlavorProfile FlavorProfile               `gorm:"column:flavor_profile;type:jsonb;serializer:json" json:"flavor_profile"`
	FruitTypes    datatypes.JSONSlice[string] `gorm:"column:fruit_types;type:jsonb" json:"fruit_types"`
	CoolingType   string                      `gorm:"column:cooling_type;type:text;default:''" json:"cooling_type"`
	Type          LiquidType                  `gorm:"column:liquid_type;type:text;default:''" json:"type"`
	MixingInfo    MixingInfo                  `gorm:"column:mixing_info;type:jsonb;serializer:json" json:"mixing_info"`
	Stock         int                         `gorm:"column:stock;default:0" json:"stock"`
	CreatedAt     time.Time                   `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time                   `gorm:"column:updated_at" json:"updated_at"`
}

func (Liquid) TableName() string {
	return "liquids"
}

// Level is a helper for filling optional curated values.
func Level(v float64) *float64 {
	return &v
}
