package mixer

import (
	"math"

	"mixMaster/domain"
)

// targetDistance is the L1 distance on the three axes a caller can target.
func targetDistance(a domain.Attributes, desired domain.DesiredProfile) float64 {
	return math.Abs(a.MentholLevel-desired.MentholLevel) +
		math.Abs(a.Sweetness-desired.Sweetness) +
		math.Abs(a.Complexity-desired.Complexity)
}

// OptimizeShares splits 100% across liquids, weighting each by how close it
// already is to the desired profile. The result is aligned with liquids,
// holds integers summing to exactly 100 and keeps every share at or above
// floor whenever len(liquids)*floor <= 100.
func OptimizeShares(liquids []Profiled, desired domain.DesiredProfile, floor float64) []float64 {
	n := len(liquids)
	if n == 0 {
		return nil
	}

	raw := make([]float64, n)
	sum := 0.0
	for i, l := range liquids {
		raw[i] = 1 / (1 + targetDistance(l.Attributes, desired))
		sum += raw[i]
	}

	shares := make([]float64, n)
	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		for i := range shares {
			shares[i] = 100 / float64(n)
		}
		return roundShares(shares)
	}

	for i := range shares {
		shares[i] = raw[i] / sum * 100
	}

	if floor > 0 && float64(n)*floor <= 100 {
		applyFloor(shares, floor)
	}

	return roundShares(shares)
}

// applyFloor lifts every share below floor and takes the difference from
// shares above it, in order, without pushing any of them under the floor.
func applyFloor(shares []float64, floor float64) {
	deficit := 0.0
	for i, s := range shares {
		if s < floor {
			deficit += floor - s
			shares[i] = floor
		}
	}

	for i, s := range shares {
		if deficit <= 0 {
			break
		}
		if s <= floor {
			continue
		}
		take := math.Min(s-floor, deficit)
		shares[i] -= take
		deficit -= take
	}
}

// roundShares rounds to integers and moves any residual onto the largest
// share so the total is exactly 100.
func roundShares(shares []float64) []float64 {
	total := 0.0
	largest := 0
	for i := range shares {
		shares[i] = math.Round(shares[i])
		total += shares[i]
		if shares[i] > shares[largest] {
			largest = i
		}
	}
	if residual := 100 - total; residual != 0 {
		shares[largest] += residual
	}
	return shares
}
