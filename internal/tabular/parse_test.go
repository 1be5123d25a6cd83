package tabular

import (
	"math"
	"testing"
	"time"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		typ  ColumnType
		want Key
	}{
		{"number from float cell", NumberCell(12.5), TypeNumber, NumberKey(12.5)},
		{"number from text", TextCell("12.5"), TypeNumber, NumberKey(12.5)},
		{"number parse failure", TextCell("doce"), TypeNumber, AbsentKey()},
		{"empty in numeric column", EmptyCell(), TypeNumber, NumberKey(math.Inf(-1))},
		{"empty in date column", EmptyCell(), TypeDateDMY, NumberKey(math.Inf(-1))},
		{"empty in string column", EmptyCell(), TypeString, TextKey("")},
		{"string folds case and space", TextCell("  Ana "), TypeString, TextKey("ana")},
		{"malformed dmy", TextCell("sin fecha"), TypeDateDMY, AbsentKey()},
		{"malformed iso", TextCell("2023/01/30"), TypeDateISO, AbsentKey()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseValue(tt.cell, tt.typ); got != tt.want {
				t.Errorf("ParseValue() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseValueDates(t *testing.T) {
	dmy := ParseValue(TextCell("30/01/2023"), TypeDateDMY)
	iso := ParseValue(TextCell("2023-01-30"), TypeDateISO)
	if dmy != iso {
		t.Errorf("same instant across formats: dmy=%+v iso=%+v", dmy, iso)
	}

	want := float64(time.Date(2023, time.January, 30, 0, 0, 0, 0, time.UTC).UnixMilli())
	if dmy != NumberKey(want) {
		t.Errorf("dmy key = %+v, want %v", dmy, want)
	}

	// D/M/YYYY, never M/D/YYYY: 02/03 is March 2nd.
	march := ParseValue(TextCell("02/03/2023"), TypeDateDMY)
	wantMarch := float64(time.Date(2023, time.March, 2, 0, 0, 0, 0, time.UTC).UnixMilli())
	if march != NumberKey(wantMarch) {
		t.Errorf("02/03/2023 key = %+v, want March 2", march)
	}

	// out-of-range day rolls over instead of failing
	rolled := ParseValue(TextCell("32/01/2023"), TypeDateDMY)
	wantRolled := float64(time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC).UnixMilli())
	if rolled != NumberKey(wantRolled) {
		t.Errorf("32/01/2023 key = %+v, want Feb 1 rollover", rolled)
	}
}

func TestKeyCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Key
		want int
	}{
		{"numbers ascending", NumberKey(1), NumberKey(2), -1},
		{"numbers equal", NumberKey(2), NumberKey(2), 0},
		{"numbers descending", NumberKey(3), NumberKey(2), 1},
		{"neg inf before any number", NumberKey(math.Inf(-1)), NumberKey(-1e18), -1},
		{"text lexicographic", TextKey("ana"), TextKey("beto"), -1},
		{"text case folded at construction", TextKey("ANA"), TextKey("ana"), 0},
		{"absent vs number", AbsentKey(), NumberKey(5), 0},
		{"absent vs absent", AbsentKey(), AbsentKey(), 0},
		{"number before text", NumberKey(5), TextKey("a"), -1},
		{"text after number", TextKey("a"), NumberKey(5), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare() = %d, want %d", got, tt.want)
			}
		})
	}
}
