package mixer

import (
	"mixMaster/domain"
)

type attribute int

const (
	attrMenthol attribute = iota
	attrSweetness
	attrIntensity
	attrComplexity
	attrCreaminess
	attrFruitiness
	attrSpiciness
	attrBitterness
	attrAcidity
)

func (a attribute) add(attrs *domain.Attributes, v float64) {
	switch a {
	case attrMenthol:
		attrs.MentholLevel += v
	case attrSweetness:
		attrs.Sweetness += v
	case attrIntensity:
		attrs.Intensity += v
	case attrComplexity:
		attrs.Complexity += v
	case attrCreaminess:
		attrs.Creaminess += v
	case attrFruitiness:
		attrs.Fruitiness += v
	case attrSpiciness:
		attrs.Spiciness += v
	case attrBitterness:
		attrs.Bitterness += v
	case attrAcidity:
		attrs.Acidity += v
	}
}

// Traits is the characteristic vector of a flavor. Nil means the flavor says
// nothing about that characteristic.
type Traits struct {
	Menthol    *float64
	Sweetness  *float64
	Intensity  *float64
	Complexity *float64
	Creaminess *float64
	Fruitiness *float64
	Spiciness  *float64
	Bitterness *float64
	Acidity    *float64
}

func (t Traits) applyTo(attrs *domain.Attributes) {
	for _, f := range []struct {
		attr attribute
		v    *float64
	}{
		{attrMenthol, t.Menthol},
		{attrSweetness, t.Sweetness},
		{attrIntensity, t.Intensity},
		{attrComplexity, t.Complexity},
		{attrCreaminess, t.Creaminess},
		{attrFruitiness, t.Fruitiness},
		{attrSpiciness, t.Spiciness},
		{attrBitterness, t.Bitterness},
		{attrAcidity, t.Acidity},
	} {
		if f.v != nil {
			f.attr.add(attrs, *f.v)
		}
	}
}

type FlavorEntry struct {
	Name     domain.FlavorCategory
	Keywords []string
	// phrases removed from the text before this entry's keywords are counted
	Exclude  []string
	Traits   Traits
	Pairings []domain.FlavorCategory
}

type keywordBonus struct {
	keyword string
	attr    attribute
	delta   float64
}

type conflict struct {
	a, b   domain.FlavorCategory
	reason string
}

// Lexicon is the read-only flavor knowledge base. It is built once and never
// mutated, so a single instance is shared by every request.
type Lexicon struct {
	entries   []FlavorEntry
	bonuses   []keywordBonus
	conflicts []conflict
}

func DefaultLexicon() *Lexicon {
	return defaultLexicon
}

// Entries returns the flavors in lexicon order.
func (l *Lexicon) Entries() []FlavorEntry {
	out := make([]FlavorEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Lexicon) Entry(name domain.FlavorCategory) (FlavorEntry, bool) {
	for _, e := range l.entries {
		if e.Name == name {
			return e, true
		}
	}
	return FlavorEntry{}, false
}

// Conflict reports whether two flavor categories are a known bad pairing.
func (l *Lexicon) Conflict(a, b domain.FlavorCategory) (string, bool) {
	for _, c := range l.conflicts {
		if (c.a == a && c.b == b) || (c.a == b && c.b == a) {
			return c.reason, true
		}
	}
	return "", false
}

func lv(v float64) *float64 {
	return &v
}

var defaultLexicon = &Lexicon{
	entries: []FlavorEntry{
		{
			Name:     domain.FlavorFruity,
			Keywords: []string{"fruit", "apple", "pear", "peach", "apricot", "grape", "melon", "watermelon", "cherry", "plum"},
			Traits:   Traits{Fruitiness: lv(4), Sweetness: lv(1), Acidity: lv(1)},
			Pairings: []domain.FlavorCategory{domain.FlavorBerry, domain.FlavorTropical, domain.FlavorMenthol, domain.FlavorCandy},
		},
		{
			Name:     domain.FlavorBerry,
			Keywords: []string{"berry", "berries", "strawberr", "blueberr", "raspberr", "blackberr", "cranberr", "blackcurrant", "currant"},
			Traits:   Traits{Fruitiness: lv(4), Sweetness: lv(1), Acidity: lv(1), Intensity: lv(1)},
			Pairings: []domain.FlavorCategory{domain.FlavorFruity, domain.FlavorCream, domain.FlavorMenthol, domain.FlavorDessert},
		},
		{
			Name:     domain.FlavorCitrus,
			Keywords: []string{"citrus", "lemon", "lime", "orange", "grapefruit", "yuzu", "mandarin", "tangerine", "bergamot"},
			Traits:   Traits{Acidity: lv(4), Fruitiness: lv(2), Sweetness: lv(-1), Intensity: lv(1)},
			Pairings: []domain.FlavorCategory{domain.FlavorFruity, domain.FlavorTropical, domain.FlavorMenthol, domain.FlavorBeverage},
		},
		{
			Name:     domain.FlavorTropical,
			Keywords: []string{"tropical", "mango", "pineapple", "passion fruit", "passionfruit", "guava", "papaya", "lychee", "kiwi", "banana", "dragon fruit"},
			Traits:   Traits{Fruitiness: lv(4), Sweetness: lv(2), Complexity: lv(1)},
			Pairings: []domain.FlavorCategory{domain.FlavorCitrus, domain.FlavorFruity, domain.FlavorMenthol, domain.FlavorCream},
		},
		{
			Name:     domain.FlavorMenthol,
			Keywords: []string{"menthol", "mint", "peppermint", "spearmint", "ice", "cool", "frost", "arctic", "polar", "chill", "koolada"},
			Exclude:  []string{"ice cream"},
			Traits:   Traits{Menthol: lv(5), Intensity: lv(1)},
			Pairings: []domain.FlavorCategory{domain.FlavorFruity, domain.FlavorBerry, domain.FlavorCitrus, domain.FlavorTobacco},
		},
		{
			Name:     domain.FlavorDessert,
			Keywords: []string{"dessert", "custard", "cake", "cookie", "biscuit", "pastry", "pie", "donut", "cheesecake", "caramel", "vanilla", "ice cream", "pudding", "waffle", "brownie"},
			Traits:   Traits{Sweetness: lv(3), Creaminess: lv(2), Complexity: lv(2), Intensity: lv(1)},
			Pairings: []domain.FlavorCategory{domain.FlavorCream, domain.FlavorNutty, domain.FlavorCoffee, domain.FlavorBerry},
		},
		{
			Name:     domain.FlavorCream,
			Keywords: []string{"cream", "milk", "yogurt", "yoghurt", "butter", "dairy"},
			Exclude:  []string{"ice cream"},
			Traits:   Traits{Creaminess: lv(5), Sweetness: lv(1), Acidity: lv(-1)},
			Pairings: []domain.FlavorCategory{domain.FlavorDessert, domain.FlavorBerry, domain.FlavorCoffee, domain.FlavorNutty},
		},
		{
			Name:     domain.FlavorTobacco,
			Keywords: []string{"tobacco", "virginia", "burley", "cavendish", "cigar", "havana", "latakia"},
			Traits:   Traits{Bitterness: lv(3), Intensity: lv(2), Complexity: lv(2), Sweetness: lv(-2)},
			Pairings: []domain.FlavorCategory{domain.FlavorNutty, domain.FlavorCoffee, domain.FlavorDessert, domain.FlavorMenthol},
		},
		{
			Name:     domain.FlavorCoffee,
			Keywords: []string{"coffee", "espresso", "latte", "cappuccino", "mocha", "macchiato"},
			Traits:   Traits{Bitterness: lv(3), Intensity: lv(2), Creaminess: lv(1), Complexity: lv(1)},
			Pairings: []domain.FlavorCategory{domain.FlavorCream, domain.FlavorDessert, domain.FlavorNutty, domain.FlavorTobacco},
		},
		{
			Name:     domain.FlavorCandy,
			Keywords: []string{"candy", "gummy", "gummies", "bubblegum", "bubble gum", "sherbet", "lollipop", "marshmallow", "cotton candy", "sour belt"},
			Traits:   Traits{Sweetness: lv(4), Fruitiness: lv(1), Complexity: lv(-1)},
			Pairings: []domain.FlavorCategory{domain.FlavorFruity, domain.FlavorBerry, domain.FlavorBeverage},
		},
		{
			Name:     domain.FlavorSpice,
			Keywords: []string{"spice", "cinnamon", "clove", "nutmeg", "ginger", "anise", "chai", "cardamom"},
			Traits:   Traits{Spiciness: lv(5), Intensity: lv(1), Complexity: lv(2)},
			Pairings: []domain.FlavorCategory{domain.FlavorDessert, domain.FlavorTobacco, domain.FlavorCoffee},
		},
		{
			Name:     domain.FlavorBeverage,
			Keywords: []string{"cola", "soda", "lemonade", "tea", "energy drink", "juice", "cocktail", "mojito", "slush"},
			Traits:   Traits{Sweetness: lv(1), Acidity: lv(1), Fruitiness: lv(1)},
			Pairings: []domain.FlavorCategory{domain.FlavorCitrus, domain.FlavorFruity, domain.FlavorMenthol, domain.FlavorCandy},
		},
		{
			Name:     domain.FlavorNutty,
			Keywords: []string{"nut", "hazelnut", "almond", "peanut", "pistachio", "praline", "walnut", "pecan"},
			Exclude:  []string{"nutmeg"},
			Traits:   Traits{Creaminess: lv(1), Sweetness: lv(1), Bitterness: lv(1), Complexity: lv(1)},
			Pairings: []domain.FlavorCategory{domain.FlavorDessert, domain.FlavorCoffee, domain.FlavorTobacco, domain.FlavorCream},
		},
	},
	bonuses: []keywordBonus{
		{keyword: "sweet", attr: attrSweetness, delta: 2},
		{keyword: "sugar", attr: attrSweetness, delta: 1},
		{keyword: "menthol", attr: attrMenthol, delta: 4},
		{keyword: "icy", attr: attrMenthol, delta: 2},
		{keyword: "creamy", attr: attrCreaminess, delta: 2},
		{keyword: "juicy", attr: attrFruitiness, delta: 2},
		{keyword: "tart", attr: attrAcidity, delta: 2},
		{keyword: "sour", attr: attrAcidity, delta: 2},
		{keyword: "bitter", attr: attrBitterness, delta: 2},
		{keyword: "spicy", attr: attrSpiciness, delta: 2},
		{keyword: "bold", attr: attrIntensity, delta: 2},
		{keyword: "intense", attr: attrIntensity, delta: 2},
		{keyword: "strong", attr: attrIntensity, delta: 1},
		{keyword: "smooth", attr: attrIntensity, delta: -1},
		{keyword: "subtle", attr: attrIntensity, delta: -1},
		{keyword: "complex", attr: attrComplexity, delta: 2},
		{keyword: "layered", attr: attrComplexity, delta: 2},
		{keyword: "blend", attr: attrComplexity, delta: 1},
	},
	conflicts: []conflict{
		{a: domain.FlavorCitrus, b: domain.FlavorCream, reason: "acidic citrus notes tend to curdle creamy bases"},
		{a: domain.FlavorCitrus, b: domain.FlavorDessert, reason: "citrus sharpness cuts across bakery and custard notes"},
		{a: domain.FlavorCitrus, b: domain.FlavorCoffee, reason: "citrus acidity clashes with roasted coffee bitterness"},
		{a: domain.FlavorTobacco, b: domain.FlavorCandy, reason: "candy sweetness masks tobacco depth"},
		{a: domain.FlavorMenthol, b: domain.FlavorDessert, reason: "strong cooling mutes warm dessert notes"},
		{a: domain.FlavorSpice, b: domain.FlavorTropical, reason: "warm spice tends to flatten bright tropical fruit"},
	},
}
