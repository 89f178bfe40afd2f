package mixer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"mixMaster/domain"
)

const (
	maxDetectedFlavors = 5
	maxSecondary       = 3
	neutralLevel       = 5.0
	minLevel           = 0.0
	maxLevel           = 10.0
)

// Extraction is what the lexicon can read out of a liquid's free text.
type Extraction struct {
	DetectedFlavors []domain.FlavorCategory
	Primary         domain.FlavorCategory
	Secondary       []domain.FlavorCategory
	Attributes      domain.Attributes
}

// Profiled is a liquid with its curated values merged over the extracted
// ones. All engine math runs on Profiled values.
type Profiled struct {
	Liquid     domain.Liquid
	Primary    domain.FlavorCategory
	Secondary  []domain.FlavorCategory
	Detected   []domain.FlavorCategory
	Attributes domain.Attributes
}

type Extractor struct {
	lexicon *Lexicon
}

func NewExtractor(lexicon *Lexicon) *Extractor {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	return &Extractor{lexicon: lexicon}
}

func liquidText(l domain.Liquid) string {
	parts := make([]string, 0, 2+len(l.Tags))
	parts = append(parts, l.Name, l.Description)
	parts = append(parts, l.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

func (e *Extractor) Extract(l domain.Liquid) Extraction {
	return e.ExtractText(liquidText(l))
}

// ExtractText runs the lexicon over already lower-cased text.
func (e *Extractor) ExtractText(text string) Extraction {
	type hit struct {
		name  domain.FlavorCategory
		count int
	}

	hits := make([]hit, 0, len(e.lexicon.entries))
	for _, entry := range e.lexicon.entries {
		scan := text
		for _, ex := range entry.Exclude {
			scan = strings.ReplaceAll(scan, ex, " ")
		}
		n := 0
		for _, kw := range entry.Keywords {
			n += countKeyword(scan, kw)
		}
		if n > 0 {
			hits = append(hits, hit{name: entry.Name, count: n})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].count != hits[j].count {
			return hits[i].count > hits[j].count
		}
		return hits[i].name < hits[j].name
	})
	if len(hits) > maxDetectedFlavors {
		hits = hits[:maxDetectedFlavors]
	}

	out := Extraction{
		DetectedFlavors: make([]domain.FlavorCategory, 0, len(hits)),
		Primary:         domain.FlavorMixed,
		Secondary:       []domain.FlavorCategory{},
	}
	for _, h := range hits {
		out.DetectedFlavors = append(out.DetectedFlavors, h.name)
	}
	if len(out.DetectedFlavors) > 0 {
		out.Primary = out.DetectedFlavors[0]
		rest := out.DetectedFlavors[1:]
		if len(rest) > maxSecondary {
			rest = rest[:maxSecondary]
		}
		out.Secondary = append(out.Secondary, rest...)
	}

	// unknown sweetness, intensity and complexity read as average
	attrs := domain.Attributes{
		Sweetness:  neutralLevel,
		Intensity:  neutralLevel,
		Complexity: neutralLevel,
	}
	for _, name := range out.DetectedFlavors {
		if entry, ok := e.lexicon.Entry(name); ok {
			entry.Traits.applyTo(&attrs)
		}
	}
	for _, b := range e.lexicon.bonuses {
		if countKeyword(text, b.keyword) > 0 {
			b.attr.add(&attrs, b.delta)
		}
	}
	out.Attributes = clampAttributes(attrs)

	return out
}

// Resolve merges curated values over the extraction. Curated values win.
func (e *Extractor) Resolve(l domain.Liquid) Profiled {
	x := e.Extract(l)

	p := Profiled{
		Liquid:     l,
		Primary:    x.Primary,
		Secondary:  x.Secondary,
		Detected:   x.DetectedFlavors,
		Attributes: x.Attributes,
	}

	fp := l.FlavorProfile
	if fp.Primary != "" {
		p.Primary = fp.Primary
	}
	if len(fp.Secondary) > 0 {
		p.Secondary = fp.Secondary
	}
	if fp.MentholLevel != nil {
		p.Attributes.MentholLevel = clamp(*fp.MentholLevel)
	}
	if fp.Sweetness != nil {
		p.Attributes.Sweetness = clamp(*fp.Sweetness)
	}
	if fp.Intensity != nil {
		p.Attributes.Intensity = clamp(*fp.Intensity)
	}
	if fp.Complexity != nil {
		p.Attributes.Complexity = clamp(*fp.Complexity)
	}

	return p
}

func (e *Extractor) ResolveAll(liquids []domain.Liquid) []Profiled {
	out := make([]Profiled, 0, len(liquids))
	for _, l := range liquids {
		out = append(out, e.Resolve(l))
	}
	return out
}

// countKeyword counts occurrences of kw that start on a word boundary, so
// "ice" is found in "iced" but not in "juice".
func countKeyword(text, kw string) int {
	if kw == "" {
		return 0
	}
	n := 0
	for start := 0; ; {
		i := strings.Index(text[start:], kw)
		if i < 0 {
			return n
		}
		pos := start + i
		if pos == 0 {
			n++
		} else if prev, _ := utf8.DecodeLastRuneInString(text[:pos]); !isWordRune(prev) {
			n++
		}
		start = pos + len(kw)
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func clamp(v float64) float64 {
	if v < minLevel {
		return minLevel
	}
	if v > maxLevel {
		return maxLevel
	}
	return v
}

func clampAttributes(a domain.Attributes) domain.Attributes {
	return domain.Attributes{
		MentholLevel: clamp(a.MentholLevel),
		Sweetness:    clamp(a.Sweetness),
		Intensity:    clamp(a.Intensity),
		Complexity:   clamp(a.Complexity),
		Creaminess:   clamp(a.Creaminess),
		Fruitiness:   clamp(a.Fruitiness),
		Spiciness:    clamp(a.Spiciness),
		Bitterness:   clamp(a.Bitterness),
		Acidity:      clamp(a.Acidity),
	}
}
