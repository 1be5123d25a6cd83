package tabular

import "sort"

// maxFilterCardinality caps how many distinct values a non-date column
// may have before it stops being offered as a filter. Date columns are
// exempt: they filter by year, which collapses the cardinality.
const maxFilterCardinality = 100

// FilterOption describes one filterable column: its header, type and
// the sorted distinct values (years for date columns) a user may pick.
type FilterOption struct {
	Name   string
	Type   ColumnType
	Values []string
}

// CategoricalColumn is a column with few enough distinct values to be a
// useful chart dimension.
type CategoricalColumn struct {
	Name        string
	Index       int
	UniqueCount int
}

// FilterOptions computes, per column, the candidate filter values over
// the full (unfiltered) data set. Columns whose cardinality makes the
// filter useless are omitted.
func FilterOptions(t Table) map[int]FilterOption {
	opts := make(map[int]FilterOption)
	for idx, header := range t.Headers {
		colType := t.Types[idx]
		seen := make(map[string]struct{})
		for _, row := range t.Rows {
			if idx >= len(row) {
				continue
			}
			cell := row[idx]
			if colType.IsDate() {
				if year := YearOf(cell, colType); year != "" {
					seen[year] = struct{}{}
				}
			} else if !cell.IsEmpty() {
				seen[cell.String()] = struct{}{}
			}
		}
		if len(seen) == 0 {
			continue
		}
		if len(seen) >= maxFilterCardinality && !colType.IsDate() {
			continue
		}
		values := make([]string, 0, len(seen))
		for v := range seen {
			values = append(values, v)
		}
		sort.Strings(values)
		opts[idx] = FilterOption{Name: header, Type: colType, Values: values}
	}
	return opts
}

// CategoricalColumns lists the columns usable as chart dimensions:
// more than one distinct value but at most a hundred.
func CategoricalColumns(t Table) []CategoricalColumn {
	var cols []CategoricalColumn
	for idx, header := range t.Headers {
		seen := make(map[string]struct{})
		for _, row := range t.Rows {
			var cell Cell
			if idx < len(row) {
				cell = row[idx]
			}
			seen[cell.String()] = struct{}{}
		}
		n := len(seen)
		if n > 1 && n <= maxFilterCardinality {
			cols = append(cols, CategoricalColumn{Name: header, Index: idx, UniqueCount: n})
		}
	}
	return cols
}

// DefaultChartColumn picks the chart dimension when none is selected:
// the first categorical column whose header matches the role table,
// else the first categorical column, else -1.
func DefaultChartColumn(cols []CategoricalColumn, roles RoleMap) int {
	for _, c := range cols {
		if roles.Matches(c.Name) {
			return c.Index
		}
	}
	if len(cols) > 0 {
		return cols[0].Index
	}
	return -1
}
