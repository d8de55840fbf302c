package suggest

import "sort"

// CanonicalSort orders scored items by the deterministic ranking rules:
// 1. Score: higher first
// 2. Created at: newest first
// 3. Catalog order (stable)
func CanonicalSort(scored []ScoredContent) {
	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]

		if a.Score != b.Score {
			return a.Score > b.Score
		}

		if !a.Item.CreatedAt.Equal(b.Item.CreatedAt) {
			return a.Item.CreatedAt.After(b.Item.CreatedAt)
		}

		return false
	})
}

// sortReasons orders reasons by contribution, largest first.
func sortReasons(reasons []Reason) {
	sort.SliceStable(reasons, func(i, j int) bool {
		return reasons[i].Weight > reasons[j].Weight
	})
}
