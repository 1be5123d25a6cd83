package tabular

// DefaultPageSize matches the snapshot viewer's default rows-per-page.
const DefaultPageSize = 50

// DefaultChartTopN is the bar cap for raw-table charts.
const DefaultChartTopN = 20

// ViewState is the complete input state of the exploration view. It is
// an immutable value: Apply returns the next state, never mutates the
// receiver. Keeping every transition in one reducer guarantees the
// page-reset rule is enforced in exactly one place.
type ViewState struct {
	Search      string
	Filters     FilterSet
	Sort        SortSpec
	ChartColumn int // -1 = pick automatically
	Page        int
	PageSize    int
	ChartTopN   int
}

// NewViewState returns the initial state.
func NewViewState() ViewState {
	return ViewState{
		Filters:     FilterSet{},
		Sort:        NoSort(),
		ChartColumn: -1,
		Page:        1,
		PageSize:    DefaultPageSize,
		ChartTopN:   DefaultChartTopN,
	}
}

// Event is a user input applied to a ViewState.
type Event interface{ isEvent() }

// SetSearch replaces the free-text search term. Resets the page.
type SetSearch struct{ Term string }

// SetFilter sets or clears (empty value) one column filter. Resets the
// page.
type SetFilter struct {
	Column int
	Value  string
}

// ClearFilters drops the search term and every column filter. Resets
// the page.
type ClearFilters struct{}

// ToggleSort applies the click-a-header rule: same column flips
// direction, new column starts ascending. Does not reset the page.
type ToggleSort struct{ Column int }

// SetChartColumn picks the aggregation dimension (-1 for automatic).
// Does not reset the page.
type SetChartColumn struct{ Column int }

// SetPage navigates to an absolute page number.
type SetPage struct{ Page int }

// SetPageSize changes the rows-per-page and resets to page 1.
type SetPageSize struct{ Size int }

func (SetSearch) isEvent()      {}
func (SetFilter) isEvent()      {}
func (ClearFilters) isEvent()   {}
func (ToggleSort) isEvent()     {}
func (SetChartColumn) isEvent() {}
func (SetPage) isEvent()        {}
func (SetPageSize) isEvent()    {}

// Apply is the single transition function from (state, event) to the
// next state.
func (s ViewState) Apply(ev Event) ViewState {
	next := s
	next.Filters = s.Filters.clone()

	switch e := ev.(type) {
	case SetSearch:
		next.Search = e.Term
		next.Page = 1
	case SetFilter:
		if e.Value == "" {
			delete(next.Filters, e.Column)
		} else {
			next.Filters[e.Column] = e.Value
		}
		next.Page = 1
	case ClearFilters:
		next.Search = ""
		next.Filters = FilterSet{}
		next.Page = 1
	case ToggleSort:
		next.Sort = s.Sort.Toggle(e.Column)
	case SetChartColumn:
		next.ChartColumn = e.Column
	case SetPage:
		if e.Page >= 1 {
			next.Page = e.Page
		}
	case SetPageSize:
		if e.Size >= 1 {
			next.PageSize = e.Size
			next.Page = 1
		}
	}
	return next
}

// View is the derived output of one recomputation pass: everything a
// renderer needs, computed atomically from (Table, ViewState).
type View struct {
	Headers       []string
	Types         []ColumnType
	PageRows      []Row
	FilteredCount int
	TotalCount    int
	Page          int
	TotalPages    int
	Chart         []ChartDatum
	ChartColumn   int
	FilterOptions map[int]FilterOption
	Categoricals  []CategoricalColumn
	Empty         bool // true when the table held no data at all
}

// BuildView recomputes the full pipeline: filter → sort → {aggregate,
// paginate}. It never fails; an empty table yields the empty view. The
// chart always reflects the post-filter, pre-pagination row set.
func BuildView(t Table, s ViewState) View {
	return BuildViewWithRoles(t, s, DefaultRoles())
}

// BuildViewWithRoles is BuildView with a caller-supplied role table for
// the automatic chart dimension.
func BuildViewWithRoles(t Table, s ViewState, roles RoleMap) View {
	if t.Empty() {
		return View{Empty: true, Page: 1, TotalPages: 1, FilterOptions: map[int]FilterOption{}}
	}

	filtered := Filter(t.Rows, s.Search, s.Filters, t.Types)
	sorted := SortRows(filtered, s.Sort, t.Types)

	cats := CategoricalColumns(t)
	chartCol := s.ChartColumn
	if chartCol < 0 || chartCol >= len(t.Headers) {
		chartCol = DefaultChartColumn(cats, roles)
	}

	topN := s.ChartTopN
	if topN <= 0 {
		topN = DefaultChartTopN
	}
	var chart []ChartDatum
	if chartCol >= 0 {
		chart = Aggregate(sorted, ColumnSelector(chartCol), topN)
	}

	pageRows, totalPages := Paginate(sorted, s.PageSize, s.Page)
	page := s.Page
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	return View{
		Headers:       t.Headers,
		Types:         t.Types,
		PageRows:      pageRows,
		FilteredCount: len(filtered),
		TotalCount:    len(t.Rows),
		Page:          page,
		TotalPages:    totalPages,
		Chart:         chart,
		ChartColumn:   chartCol,
		FilterOptions: FilterOptions(t),
		Categoricals:  cats,
	}
}
