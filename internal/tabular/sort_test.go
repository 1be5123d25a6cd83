package tabular

import "testing"

func firstColumn(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r[0].String()
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSortRowsByDate(t *testing.T) {
	rows := []Row{
		{TextCell("Ana"), TextCell("30/01/2023")},
		{TextCell("Beto"), TextCell("15/02/2022")},
	}
	types := []ColumnType{TypeString, TypeDateDMY}

	asc := SortRows(rows, SortSpec{Column: 1, Direction: Ascending}, types)
	if got := firstColumn(asc); !equalStrings(got, []string{"Beto", "Ana"}) {
		t.Errorf("ascending by date = %v, want [Beto Ana]", got)
	}

	desc := SortRows(rows, SortSpec{Column: 1, Direction: Descending}, types)
	if got := firstColumn(desc); !equalStrings(got, []string{"Ana", "Beto"}) {
		t.Errorf("descending by date = %v, want [Ana Beto]", got)
	}
}

func TestSortRowsNumericNotLexicographic(t *testing.T) {
	rows := []Row{
		{TextCell("a"), TextCell("10")},
		{TextCell("b"), TextCell("9")},
		{TextCell("c"), TextCell("100")},
	}
	types := []ColumnType{TypeString, TypeNumber}

	got := firstColumn(SortRows(rows, SortSpec{Column: 1, Direction: Ascending}, types))
	if !equalStrings(got, []string{"b", "a", "c"}) {
		t.Errorf("numeric ascending = %v, want [b a c]", got)
	}
}

func TestSortRowsAbsentAlwaysLast(t *testing.T) {
	rows := []Row{
		{TextCell("malo"), TextCell("sin fecha")},
		{TextCell("b2023"), TextCell("30/01/2023")},
		{TextCell("b2022"), TextCell("15/02/2022")},
	}
	types := []ColumnType{TypeString, TypeDateDMY}

	asc := firstColumn(SortRows(rows, SortSpec{Column: 1, Direction: Ascending}, types))
	if !equalStrings(asc, []string{"b2022", "b2023", "malo"}) {
		t.Errorf("ascending = %v, want unparseable last", asc)
	}
	desc := firstColumn(SortRows(rows, SortSpec{Column: 1, Direction: Descending}, types))
	if !equalStrings(desc, []string{"b2023", "b2022", "malo"}) {
		t.Errorf("descending = %v, want unparseable still last", desc)
	}
}

func TestSortRowsEmptyFirstAscending(t *testing.T) {
	rows := []Row{
		{TextCell("lleno"), NumberCell(3)},
		{TextCell("vacio"), EmptyCell()},
		{TextCell("uno"), NumberCell(1)},
	}
	types := []ColumnType{TypeString, TypeNumber}

	asc := firstColumn(SortRows(rows, SortSpec{Column: 1, Direction: Ascending}, types))
	if !equalStrings(asc, []string{"vacio", "uno", "lleno"}) {
		t.Errorf("ascending = %v, want empty first", asc)
	}
	desc := firstColumn(SortRows(rows, SortSpec{Column: 1, Direction: Descending}, types))
	if !equalStrings(desc, []string{"lleno", "uno", "vacio"}) {
		t.Errorf("descending = %v, want empty last", desc)
	}
}

func TestSortRowsStable(t *testing.T) {
	rows := []Row{
		{TextCell("x1"), TextCell("same")},
		{TextCell("x2"), TextCell("same")},
		{TextCell("x3"), TextCell("same")},
	}
	types := []ColumnType{TypeString, TypeString}

	got := firstColumn(SortRows(rows, SortSpec{Column: 1, Direction: Ascending}, types))
	if !equalStrings(got, []string{"x1", "x2", "x3"}) {
		t.Errorf("equal keys reordered: %v", got)
	}
}

func TestSortRowsNoSortCopies(t *testing.T) {
	rows := []Row{{TextCell("b")}, {TextCell("a")}}
	out := SortRows(rows, NoSort(), []ColumnType{TypeString})
	if !equalStrings(firstColumn(out), []string{"b", "a"}) {
		t.Errorf("no-sort changed order: %v", firstColumn(out))
	}
	out[0] = Row{TextCell("z")}
	if rows[0][0].String() != "b" {
		t.Errorf("no-sort result aliases the input slice")
	}
}

func TestSortRowsDoesNotMutateInput(t *testing.T) {
	rows := []Row{{TextCell("b")}, {TextCell("a")}}
	_ = SortRows(rows, SortSpec{Column: 0, Direction: Ascending}, []ColumnType{TypeString})
	if !equalStrings(firstColumn(rows), []string{"b", "a"}) {
		t.Errorf("input mutated: %v", firstColumn(rows))
	}
}

func TestSortSpecToggle(t *testing.T) {
	s := NoSort()
	s = s.Toggle(2)
	if s.Column != 2 || s.Direction != Ascending {
		t.Fatalf("first click = %+v, want col 2 asc", s)
	}
	s = s.Toggle(2)
	if s.Direction != Descending {
		t.Fatalf("second click = %+v, want desc", s)
	}
	s = s.Toggle(2)
	if s.Direction != Ascending {
		t.Fatalf("third click = %+v, want asc again", s)
	}
	s = s.Toggle(0)
	if s.Column != 0 || s.Direction != Ascending {
		t.Fatalf("new column = %+v, want col 0 asc", s)
	}
}

func TestSortByKey(t *testing.T) {
	type rec struct {
		name string
		key  Key
	}
	items := []rec{
		{"huérfano", AbsentKey()},
		{"beto", TextKey("beto")},
		{"ana", TextKey("ana")},
	}

	asc := SortByKey(items, func(r rec) Key { return r.key }, Ascending)
	if asc[0].name != "ana" || asc[1].name != "beto" || asc[2].name != "huérfano" {
		t.Errorf("ascending = %v", asc)
	}
	desc := SortByKey(items, func(r rec) Key { return r.key }, Descending)
	if desc[0].name != "beto" || desc[1].name != "ana" || desc[2].name != "huérfano" {
		t.Errorf("descending = %v", desc)
	}
}
