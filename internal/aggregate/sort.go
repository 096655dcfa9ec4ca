package aggregate

import (
	"sort"

	"curveScope/internal/model"
)

// SortByTotalApy orders summaries by descending total APY, in place.
// Ties keep their relative order. This is presentation-side post-processing;
// Aggregate itself emits summaries in input pool order.
func SortByTotalApy(summaries []model.QualifiedPoolSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalApy > summaries[j].TotalApy
	})
}

// Top returns at most n leading summaries without copying. n <= 0 means all.
func Top(summaries []model.QualifiedPoolSummary, n int) []model.QualifiedPoolSummary {
	if n <= 0 || n >= len(summaries) {
		return summaries
	}
	return summaries[:n]
}
