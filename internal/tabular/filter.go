package tabular

import "strings"

// FilterSet maps a column index to the single value selected for it.
// A missing key means no constraint on that column.
type FilterSet map[int]string

// IsEmpty reports whether no column filter is active.
func (f FilterSet) IsEmpty() bool {
	for _, v := range f {
		if v != "" {
			return false
		}
	}
	return true
}

// clone returns an independent copy. ViewState transitions never mutate
// a shared map.
func (f FilterSet) clone() FilterSet {
	next := make(FilterSet, len(f))
	for k, v := range f {
		next[k] = v
	}
	return next
}

// Search keeps rows where any cell's string form contains term,
// case-insensitive and unanchored. An empty term is the identity.
func Search(rows []Row, term string) []Row {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return rows
	}
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell.String()), term) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// ApplyFilters keeps rows matching every (column, value) constraint.
// Date columns match on the extracted year; all others on the exact
// stringified cell. Constraints combine with AND.
func ApplyFilters(rows []Row, filters FilterSet, types []ColumnType) []Row {
	if filters.IsEmpty() {
		return rows
	}
	out := rows
	for idx, want := range filters {
		if want == "" {
			continue
		}
		colType := TypeString
		if idx >= 0 && idx < len(types) {
			colType = types[idx]
		}
		kept := make([]Row, 0, len(out))
		for _, row := range out {
			var cell Cell
			if idx >= 0 && idx < len(row) {
				cell = row[idx]
			}
			if colType.IsDate() {
				if YearOf(cell, colType) == want {
					kept = append(kept, row)
				}
			} else if cell.String() == want {
				kept = append(kept, row)
			}
		}
		out = kept
	}
	return out
}

// Filter runs the two filtering stages in their fixed order:
// free-text search first, then the per-column constraints.
func Filter(rows []Row, term string, filters FilterSet, types []ColumnType) []Row {
	return ApplyFilters(Search(rows, term), filters, types)
}
