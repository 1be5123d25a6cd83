package tabular

import (
	"math"
	"sort"
)

// EmptyLabel is the placeholder bucket for rows whose chart dimension
// resolves to nothing.
const EmptyLabel = "(Vacío)"

// ChartDatum is one bar of the categorical distribution: a label, how
// many filtered rows carry it, and its share of the filtered total.
type ChartDatum struct {
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// Aggregate builds the frequency distribution of label(item) over the
// given items, ordered by descending count and truncated to topN
// (topN <= 0 keeps everything). Percentages are computed against the
// full item count before truncation, so they need not sum to 100 after
// the cut. Must be fed the post-filter, pre-pagination set.
func Aggregate[T any](items []T, label func(T) string, topN int) []ChartDatum {
	if len(items) == 0 {
		return nil
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, it := range items {
		l := label(it)
		if l == "" {
			l = EmptyLabel
		}
		if _, seen := counts[l]; !seen {
			order = append(order, l)
		}
		counts[l]++
	}

	total := len(items)
	data := make([]ChartDatum, 0, len(order))
	for _, l := range order {
		c := counts[l]
		data = append(data, ChartDatum{
			Label:   l,
			Count:   c,
			Percent: int(math.Round(float64(c) / float64(total) * 100)),
		})
	}

	sort.SliceStable(data, func(i, j int) bool { return data[i].Count > data[j].Count })

	if topN > 0 && len(data) > topN {
		data = data[:topN]
	}
	return data
}

// ColumnSelector adapts a raw-table column to an Aggregate label
// function.
func ColumnSelector(idx int) func(Row) string {
	return func(r Row) string {
		if idx < 0 || idx >= len(r) {
			return ""
		}
		return r[idx].String()
	}
}
