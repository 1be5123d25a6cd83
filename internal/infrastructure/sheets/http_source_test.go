package sheets

import "testing"

func TestParseCSV(t *testing.T) {
	body := []byte("Nombre,Pedido,Fecha\n\"García, Ana\",Chapas,30/01/2023\nBeto,,15/02/2022\n")

	rows, err := parseCSV(body)
	if err != nil {
		t.Fatalf("parseCSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[1][0] != "García, Ana" {
		t.Errorf("quoted field = %q", rows[1][0])
	}
	if rows[2][1] != "" {
		t.Errorf("empty field = %q", rows[2][1])
	}
}

func TestParseCSVRaggedRows(t *testing.T) {
	// export rows may differ in width; the parser must not reject them
	body := []byte("A,B,C\nonly-one\nx,y\n")

	rows, err := parseCSV(body)
	if err != nil {
		t.Fatalf("parseCSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if len(rows[1]) != 1 || len(rows[2]) != 2 {
		t.Errorf("row widths = %d/%d, want 1/2", len(rows[1]), len(rows[2]))
	}
}

func TestParseCSVEmpty(t *testing.T) {
	rows, err := parseCSV(nil)
	if err != nil {
		t.Fatalf("parseCSV: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("rows = %d, want 0", len(rows))
	}
}
