package mixer

import (
	"encoding/hex"
	"slices"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"mixMaster/domain"
)

// IdentityHash fingerprints a mix by its liquids and their percentages.
// Reordering the shares gives the same hash; changing any percentage does
// not.
func IdentityHash(shares []domain.MixShare) string {
	parts := make([]string, 0, len(shares))
	sorted := slices.Clone(shares)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].LiquidID != sorted[j].LiquidID {
			return sorted[i].LiquidID < sorted[j].LiquidID
		}
		return sorted[i].Percentage < sorted[j].Percentage
	})
	for _, s := range sorted {
		parts = append(parts, s.LiquidID+":"+strconv.FormatFloat(s.Percentage, 'f', -1, 64))
	}

	sum := blake2b.Sum256([]byte(strings.Join(parts, "|")))
	return hex.EncodeToString(sum[:])
}

// CacheKey derives the suggestion cache key of a desired profile. Fruit
// types are compared as a case-insensitive set.
func CacheKey(desired domain.DesiredProfile) string {
	fruits := make([]string, 0, len(desired.FruitTypes))
	for _, f := range desired.FruitTypes {
		fruits = append(fruits, strings.ToLower(f))
	}
	sort.Strings(fruits)
	fruits = slices.Compact(fruits)

	quoted := make([]string, 0, len(fruits))
	for _, f := range fruits {
		quoted = append(quoted, strconv.Quote(f))
	}

	fields := []string{
		strconv.Quote(string(desired.Flavor)),
		strconv.FormatFloat(desired.MentholLevel, 'f', -1, 64),
		strconv.FormatFloat(desired.Sweetness, 'f', -1, 64),
		strconv.FormatFloat(desired.Complexity, 'f', -1, 64),
		strconv.Quote(string(desired.LiquidType)),
		strconv.Quote(strings.ToLower(desired.CoolingType)),
		strings.Join(quoted, ","),
		strconv.Itoa(desired.MaxLiquids),
	}

	sum := blake2b.Sum256([]byte(strings.Join(fields, "|")))
	return "mixer:suggestions:" + hex.EncodeToString(sum[:16])
}
