package tabular

import "testing"

func TestDetectType(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want ColumnType
	}{
		{"empty cell", EmptyCell(), TypeEmpty},
		{"blank text", TextCell("   "), TypeEmpty},
		{"number cell", NumberCell(42), TypeNumber},
		{"numeric text", TextCell("3.14"), TypeNumber},
		{"negative numeric text", TextCell("-7"), TypeNumber},
		{"dmy date", TextCell("30/01/2023"), TypeDateDMY},
		{"dmy single digits", TextCell("1/2/2023"), TypeDateDMY},
		{"iso date", TextCell("2023-01-30"), TypeDateISO},
		{"iso unpadded", TextCell("2023-1-3"), TypeDateISO},
		{"two digit year is not a date", TextCell("30/01/23"), TypeString},
		{"plain text", TextCell("hola"), TypeString},
		{"mixed text", TextCell("12 unidades"), TypeString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectType(tt.cell); got != tt.want {
				t.Errorf("DetectType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInferColumnType(t *testing.T) {
	tests := []struct {
		name string
		rows []Row
		idx  int
		want ColumnType
	}{
		{
			name: "first non-empty non-string wins",
			rows: []Row{
				{EmptyCell()},
				{TextCell("15/02/2022")},
				{TextCell("texto")},
			},
			idx:  0,
			want: TypeDateDMY,
		},
		{
			name: "all strings",
			rows: []Row{{TextCell("a")}, {TextCell("b")}},
			idx:  0,
			want: TypeString,
		},
		{
			name: "all empty defaults to string",
			rows: []Row{{EmptyCell()}, {EmptyCell()}},
			idx:  0,
			want: TypeString,
		},
		{
			name: "no rows",
			rows: nil,
			idx:  0,
			want: TypeString,
		},
		{
			name: "numeric beyond sample window is missed",
			rows: []Row{
				{TextCell("a")}, {TextCell("b")}, {TextCell("c")}, {TextCell("d")},
				{TextCell("e")}, {TextCell("f")}, {TextCell("g")}, {TextCell("h")},
				{TextCell("i")}, {TextCell("j")}, {NumberCell(5)},
			},
			idx:  0,
			want: TypeString,
		},
		{
			name: "numeric inside sample window",
			rows: []Row{
				{EmptyCell()}, {EmptyCell()}, {NumberCell(5)},
			},
			idx:  0,
			want: TypeNumber,
		},
		{
			name: "short rows are skipped",
			rows: []Row{{TextCell("only one")}, {TextCell("x"), TextCell("2023-05-01")}},
			idx:  1,
			want: TypeDateISO,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferColumnType(tt.rows, tt.idx); got != tt.want {
				t.Errorf("InferColumnType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestYearOf(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		typ  ColumnType
		want string
	}{
		{"dmy", TextCell("30/01/2023"), TypeDateDMY, "2023"},
		{"iso", TextCell("2022-02-15"), TypeDateISO, "2022"},
		{"iso unpadded", TextCell("2022-2-5"), TypeDateISO, "2022"},
		{"empty", EmptyCell(), TypeDateDMY, ""},
		{"not a date type", TextCell("30/01/2023"), TypeString, ""},
		{"malformed dmy", TextCell("enero"), TypeDateDMY, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := YearOf(tt.cell, tt.typ); got != tt.want {
				t.Errorf("YearOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewTable(t *testing.T) {
	tbl := NewTable([]Row{
		{TextCell("Nombre"), EmptyCell(), TextCell("Fecha")},
		{TextCell("Ana"), NumberCell(1), TextCell("30/01/2023")},
		{TextCell("Beto")},
	})

	wantHeaders := []string{"Nombre", "Campo 2", "Fecha"}
	for i, h := range wantHeaders {
		if tbl.Headers[i] != h {
			t.Errorf("Headers[%d] = %q, want %q", i, tbl.Headers[i], h)
		}
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("len(Rows) = %d, want 2", len(tbl.Rows))
	}
	// short rows are padded to the header width
	if len(tbl.Rows[1]) != 3 {
		t.Errorf("padded row width = %d, want 3", len(tbl.Rows[1]))
	}
	if !tbl.Rows[1][2].IsEmpty() {
		t.Errorf("padded cell should be empty")
	}
	if tbl.Types[2] != TypeDateDMY {
		t.Errorf("Types[2] = %v, want %v", tbl.Types[2], TypeDateDMY)
	}
}

func TestDecodeSnapshot(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		ok      bool
		rows    int
	}{
		{"valid", `[["Nombre","Edad"],["Ana",30],["Beto",25]]`, true, 2},
		{"header only", `[["Nombre"]]`, true, 0},
		{"empty array", `[]`, false, 0},
		{"empty string", "", false, 0},
		{"whitespace", "   ", false, 0},
		{"malformed json", `[["Nombre"`, false, 0},
		{"not an array", `{"a":1}`, false, 0},
		{"null cells", `[["A"],[null]]`, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, ok := DecodeSnapshot(tt.payload)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if len(tbl.Rows) != tt.rows {
				t.Errorf("len(Rows) = %d, want %d", len(tbl.Rows), tt.rows)
			}
			if !ok && !tbl.Empty() {
				t.Errorf("failed decode should yield an empty table")
			}
		})
	}
}
