package tabular

import "sort"

// SortDirection orders a sorted column ascending or descending.
type SortDirection int8

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) String() string {
	if d == Descending {
		return "desc"
	}
	return "asc"
}

// SortSpec names the active sort column and direction. Column -1 means
// no sort. At most one column is sorted at a time.
type SortSpec struct {
	Column    int
	Direction SortDirection
}

// NoSort is the inactive sort spec.
func NoSort() SortSpec { return SortSpec{Column: -1} }

// Toggle returns the spec after clicking column col: the same column
// flips direction, a new column starts ascending.
func (s SortSpec) Toggle(col int) SortSpec {
	if s.Column == col && s.Direction == Ascending {
		return SortSpec{Column: col, Direction: Descending}
	}
	return SortSpec{Column: col, Direction: Ascending}
}

// SortRows returns a new slice ordered by the spec's column using
// type-aware comparison. The sort is stable: equal keys keep their
// relative order. Absent keys (unparseable values) always rank last,
// in both directions. The input slice is never mutated.
func SortRows(rows []Row, spec SortSpec, types []ColumnType) []Row {
	if spec.Column < 0 || len(rows) < 2 {
		out := make([]Row, len(rows))
		copy(out, rows)
		return out
	}

	colType := TypeString
	if spec.Column < len(types) {
		colType = types[spec.Column]
	}

	keys := make([]Key, len(rows))
	for i, row := range rows {
		var cell Cell
		if spec.Column < len(row) {
			cell = row[spec.Column]
		}
		keys[i] = ParseValue(cell, colType)
	}

	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keyLess(keys[order[a]], keys[order[b]], spec.Direction)
	})

	out := make([]Row, len(rows))
	for i, idx := range order {
		out[i] = rows[idx]
	}
	return out
}

// keyLess applies the direction to valid keys and pins absent keys to
// the end regardless of direction.
func keyLess(a, b Key, dir SortDirection) bool {
	if a.Absent() != b.Absent() {
		return !a.Absent()
	}
	cmp := a.Compare(b)
	if dir == Descending {
		return cmp > 0
	}
	return cmp < 0
}

// SortByKey orders an arbitrary record slice by a key selector with the
// same stability and absent-last rules as SortRows. The structured
// solicitud views use it with nested-field selectors (person name,
// location name) where a missing reference yields an absent key.
func SortByKey[T any](items []T, key func(T) Key, dir SortDirection) []T {
	keys := make([]Key, len(items))
	for i, it := range items {
		keys[i] = key(it)
	}
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keyLess(keys[order[a]], keys[order[b]], dir)
	})
	out := make([]T, len(items))
	for i, idx := range order {
		out[i] = items[idx]
	}
	return out
}
