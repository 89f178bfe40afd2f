package mixer

// Combinations returns k-element subsets of pool in index-ascending
// lexicographic order, stopping after limit subsets. A negative limit means
// no cap. The subsets share no backing arrays with each other.
func Combinations[T any](pool []T, k, limit int) [][]T {
	n := len(pool)
	if k <= 0 || k > n || limit == 0 {
		return nil
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	var out [][]T
	for {
		combo := make([]T, k)
		for i, p := range idx {
			combo[i] = pool[p]
		}
		out = append(out, combo)
		if limit > 0 && len(out) >= limit {
			return out
		}

		// advance the rightmost index that still has room
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
