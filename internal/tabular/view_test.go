package tabular

import "testing"

func demoTable() Table {
	raw := []Row{
		{TextCell("Nombre"), TextCell("Zona"), TextCell("Fecha Ingreso"), TextCell("Monto")},
		{TextCell("Ana"), TextCell("Norte"), TextCell("30/01/2023"), NumberCell(1200)},
		{TextCell("Beto"), TextCell("Sur"), TextCell("15/02/2022"), NumberCell(800)},
		{TextCell("Carla"), TextCell("Norte"), TextCell("01/06/2023"), NumberCell(950)},
		{TextCell("Diego"), TextCell("Este"), EmptyCell(), EmptyCell()},
		{TextCell("Elena"), TextCell("Norte"), TextCell("20/03/2022"), NumberCell(400)},
	}
	return NewTable(raw)
}

func TestApplyPageReset(t *testing.T) {
	s := NewViewState()
	s = s.Apply(SetPage{Page: 3})
	if s.Page != 3 {
		t.Fatalf("page = %d, want 3", s.Page)
	}

	// search and filter changes reset the page
	if got := s.Apply(SetSearch{Term: "ana"}); got.Page != 1 {
		t.Errorf("SetSearch kept page %d, want 1", got.Page)
	}
	if got := s.Apply(SetFilter{Column: 1, Value: "Norte"}); got.Page != 1 {
		t.Errorf("SetFilter kept page %d, want 1", got.Page)
	}
	if got := s.Apply(ClearFilters{}); got.Page != 1 {
		t.Errorf("ClearFilters kept page %d, want 1", got.Page)
	}

	// sort and chart changes keep the page
	if got := s.Apply(ToggleSort{Column: 0}); got.Page != 3 {
		t.Errorf("ToggleSort moved page to %d, want 3", got.Page)
	}
	if got := s.Apply(SetChartColumn{Column: 2}); got.Page != 3 {
		t.Errorf("SetChartColumn moved page to %d, want 3", got.Page)
	}
}

func TestApplyFilterLifecycle(t *testing.T) {
	s := NewViewState()
	s = s.Apply(SetFilter{Column: 1, Value: "Norte"})
	s = s.Apply(SetFilter{Column: 2, Value: "2023"})
	if len(s.Filters) != 2 {
		t.Fatalf("filters = %v, want two entries", s.Filters)
	}

	// empty value clears a single column
	s2 := s.Apply(SetFilter{Column: 1, Value: ""})
	if _, ok := s2.Filters[1]; ok {
		t.Errorf("column 1 filter should be cleared")
	}
	if s2.Filters[2] != "2023" {
		t.Errorf("column 2 filter lost: %v", s2.Filters)
	}

	// the original state is untouched
	if s.Filters[1] != "Norte" {
		t.Errorf("Apply mutated the prior state: %v", s.Filters)
	}

	s3 := s.Apply(ClearFilters{}).Apply(SetSearch{Term: "x"}).Apply(ClearFilters{})
	if s3.Search != "" || len(s3.Filters) != 0 {
		t.Errorf("ClearFilters left %q / %v", s3.Search, s3.Filters)
	}
}

func TestBuildViewPipeline(t *testing.T) {
	tbl := demoTable()
	s := NewViewState()
	s = s.Apply(SetFilter{Column: 1, Value: "Norte"})
	s = s.Apply(ToggleSort{Column: 2}) // Fecha Ingreso ascending

	v := BuildView(tbl, s)
	if v.FilteredCount != 3 {
		t.Fatalf("FilteredCount = %d, want 3", v.FilteredCount)
	}
	if v.TotalCount != 5 {
		t.Errorf("TotalCount = %d, want 5", v.TotalCount)
	}
	got := firstColumn(v.PageRows)
	if !equalStrings(got, []string{"Elena", "Ana", "Carla"}) {
		t.Errorf("page rows = %v, want [Elena Ana Carla]", got)
	}

	// the chart reflects the filtered set, not the full table
	if len(v.Chart) != 1 || v.Chart[0].Label != "Norte" || v.Chart[0].Count != 3 {
		t.Errorf("chart = %+v, want single Norte/3 bar", v.Chart)
	}
}

func TestBuildViewChartColumnDefaultsToRole(t *testing.T) {
	v := BuildView(demoTable(), NewViewState())
	// "Zona" matches the role table and wins over the other categoricals
	if v.ChartColumn != 1 {
		t.Fatalf("ChartColumn = %d, want 1 (Zona)", v.ChartColumn)
	}
	if len(v.Chart) != 3 {
		t.Fatalf("chart buckets = %d, want 3", len(v.Chart))
	}
	if v.Chart[0].Label != "Norte" || v.Chart[0].Count != 3 {
		t.Errorf("top bucket = %+v, want Norte/3", v.Chart[0])
	}
	if v.Chart[0].Percent != 60 {
		t.Errorf("Norte percent = %d, want 60", v.Chart[0].Percent)
	}
}

func TestBuildViewExplicitChartColumn(t *testing.T) {
	s := NewViewState().Apply(SetChartColumn{Column: 0})
	v := BuildView(demoTable(), s)
	if v.ChartColumn != 0 {
		t.Fatalf("ChartColumn = %d, want 0", v.ChartColumn)
	}
	if len(v.Chart) != 5 {
		t.Errorf("chart buckets = %d, want 5 distinct names", len(v.Chart))
	}
}

func TestBuildViewEmptyDimensionBucket(t *testing.T) {
	s := NewViewState().Apply(SetChartColumn{Column: 2})
	v := BuildView(demoTable(), s)
	var found bool
	for _, d := range v.Chart {
		if d.Label == EmptyLabel && d.Count == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("chart %+v missing the %q bucket", v.Chart, EmptyLabel)
	}
}

func TestBuildViewPageClamp(t *testing.T) {
	tbl := demoTable()
	s := NewViewState()
	s.PageSize = 2
	s.Page = 3 // valid for 5 rows

	v := BuildView(tbl, s)
	if v.TotalPages != 3 || v.Page != 3 || len(v.PageRows) != 1 {
		t.Fatalf("page 3: pages=%d page=%d rows=%d", v.TotalPages, v.Page, len(v.PageRows))
	}

	// narrowing the data clamps the out-of-range page instead of erroring
	s = s.Apply(SetPage{Page: 3})
	s.Filters = FilterSet{1: "Sur"}
	v = BuildView(tbl, s)
	if v.TotalPages != 1 || v.Page != 1 || len(v.PageRows) != 1 {
		t.Errorf("clamped: pages=%d page=%d rows=%d", v.TotalPages, v.Page, len(v.PageRows))
	}
}

func TestBuildViewFilterOptions(t *testing.T) {
	v := BuildView(demoTable(), NewViewState())

	zona, ok := v.FilterOptions[1]
	if !ok {
		t.Fatalf("Zona should be filterable")
	}
	if !equalStrings(zona.Values, []string{"Este", "Norte", "Sur"}) {
		t.Errorf("Zona values = %v", zona.Values)
	}

	fecha, ok := v.FilterOptions[2]
	if !ok {
		t.Fatalf("date column should be filterable")
	}
	if fecha.Type != TypeDateDMY {
		t.Errorf("date option type = %v", fecha.Type)
	}
	if !equalStrings(fecha.Values, []string{"2022", "2023"}) {
		t.Errorf("date values = %v, want years", fecha.Values)
	}
}

func TestBuildViewEmptySnapshot(t *testing.T) {
	tbl, ok := DecodeSnapshot("")
	if ok {
		t.Fatalf("empty payload should not decode")
	}
	v := BuildView(tbl, NewViewState())
	if !v.Empty {
		t.Fatalf("view should be empty")
	}
	if len(v.Headers) != 0 || len(v.PageRows) != 0 || len(v.Chart) != 0 {
		t.Errorf("empty view leaked data: %+v", v)
	}
	if v.Page != 1 || v.TotalPages != 1 {
		t.Errorf("empty view paging = %d/%d, want 1/1", v.Page, v.TotalPages)
	}
}

func TestBuildViewSearchThenSort(t *testing.T) {
	s := NewViewState().
		Apply(SetSearch{Term: "norte"}).
		Apply(ToggleSort{Column: 3}).
		Apply(ToggleSort{Column: 3}) // Monto descending

	v := BuildView(demoTable(), s)
	got := firstColumn(v.PageRows)
	if !equalStrings(got, []string{"Ana", "Carla", "Elena"}) {
		t.Errorf("rows = %v, want [Ana Carla Elena]", got)
	}
}
