package tabular

import "testing"

func TestAggregate(t *testing.T) {
	labels := []string{"a", "b", "a", "c", "a", "b"}
	data := Aggregate(labels, func(s string) string { return s }, 0)

	if len(data) != 3 {
		t.Fatalf("got %d buckets, want 3", len(data))
	}
	if data[0].Label != "a" || data[0].Count != 3 {
		t.Errorf("top bucket = %+v, want a/3", data[0])
	}
	if data[1].Label != "b" || data[1].Count != 2 {
		t.Errorf("second bucket = %+v, want b/2", data[1])
	}
	if data[0].Percent != 50 {
		t.Errorf("a percent = %d, want 50", data[0].Percent)
	}
	if data[2].Percent != 17 { // round(1/6*100)
		t.Errorf("c percent = %d, want 17", data[2].Percent)
	}
}

func TestAggregateEmptyLabelBucket(t *testing.T) {
	labels := []string{"x", "", "", "x", ""}
	data := Aggregate(labels, func(s string) string { return s }, 0)

	if data[0].Label != EmptyLabel || data[0].Count != 3 {
		t.Errorf("top bucket = %+v, want %q/3", data[0], EmptyLabel)
	}
}

func TestAggregateTopN(t *testing.T) {
	labels := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		labels = append(labels, string(rune('a'+i)))
	}
	data := Aggregate(labels, func(s string) string { return s }, DefaultChartTopN)
	if len(data) != DefaultChartTopN {
		t.Fatalf("got %d buckets, want %d", len(data), DefaultChartTopN)
	}
	// percentages stay relative to the full set, not the truncated one
	if data[0].Percent != 4 {
		t.Errorf("percent = %d, want 4", data[0].Percent)
	}
}

func TestAggregateTiesKeepFirstSeenOrder(t *testing.T) {
	labels := []string{"beta", "alfa", "beta", "alfa"}
	data := Aggregate(labels, func(s string) string { return s }, 0)
	if data[0].Label != "beta" || data[1].Label != "alfa" {
		t.Errorf("tie order = [%s %s], want first-seen [beta alfa]", data[0].Label, data[1].Label)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	if data := Aggregate(nil, func(s string) string { return s }, 5); data != nil {
		t.Errorf("empty input should yield nil, got %v", data)
	}
}

func TestColumnSelector(t *testing.T) {
	row := Row{TextCell("Ana"), NumberCell(3)}
	if got := ColumnSelector(1)(row); got != "3" {
		t.Errorf("selector(1) = %q, want \"3\"", got)
	}
	if got := ColumnSelector(5)(row); got != "" {
		t.Errorf("out-of-range selector = %q, want \"\"", got)
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name      string
		pageSize  int
		page      int
		wantFirst int
		wantLen   int
		wantPages int
	}{
		{"first page", 3, 1, 1, 3, 3},
		{"middle page", 3, 2, 4, 3, 3},
		{"last partial page", 3, 3, 7, 1, 3},
		{"page clamped high", 3, 99, 7, 1, 3},
		{"page clamped low", 3, 0, 1, 3, 3},
		{"exact division", 7, 1, 1, 7, 1},
		{"page size larger than set", 50, 1, 1, 7, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, pages := Paginate(items, tt.pageSize, tt.page)
			if pages != tt.wantPages {
				t.Errorf("pages = %d, want %d", pages, tt.wantPages)
			}
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if got[0] != tt.wantFirst {
				t.Errorf("first = %d, want %d", got[0], tt.wantFirst)
			}
		})
	}
}

func TestPaginateEmpty(t *testing.T) {
	got, pages := Paginate([]int{}, 10, 1)
	if pages != 1 {
		t.Errorf("pages = %d, want 1", pages)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
