package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resource.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		wantKind    string
		wantErr     bool
		errContains string
	}{
		{
			name: "planilla resource",
			yaml: `kind: Planilla
spec:
  spreadsheetId: 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms
  sheetName: Pedidos 2025`,
			wantKind: "Planilla",
		},
		{
			name: "solicitud resource",
			yaml: `kind: Solicitud
spec:
  description: Solicitud de materiales
  personId: 12
  origin: WHATSAPP
  entryDate: "2025-03-14"`,
			wantKind: "Solicitud",
		},
		{
			name: "missing kind",
			yaml: `spec:
  sheetName: Pedidos 2025`,
			wantErr:     true,
			errContains: "'kind' field is required",
		},
		{
			name: "unknown kind",
			yaml: `kind: Persona
spec:
  description: whatever`,
			wantErr:     true,
			errContains: "invalid kind",
		},
		{
			name:        "malformed yaml",
			yaml:        "kind: [unclosed",
			wantErr:     true,
			errContains: "failed to parse yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempYAML(t, tt.yaml)
			resource, err := LoadFromFile(path)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error = %v, want it to contain %q", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resource.Kind != tt.wantKind {
				t.Errorf("kind = %q, want %q", resource.Kind, tt.wantKind)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
		if err == nil || !strings.Contains(err.Error(), "failed to read file") {
			t.Errorf("error = %v, want a read failure", err)
		}
	})
}

func TestToCreateConfigRequest(t *testing.T) {
	t.Run("valid planilla", func(t *testing.T) {
		r := &ResourceFile{
			Kind: "Planilla",
			Spec: ResourceSpec{
				SpreadsheetID: "sheet-id",
				SheetName:     "Pedidos 2025",
			},
		}
		req, err := r.ToCreateConfigRequest()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.SpreadsheetID != "sheet-id" || req.SheetName != "Pedidos 2025" {
			t.Errorf("request = %+v, want the spec fields copied over", req)
		}
	})

	t.Run("kind mismatch", func(t *testing.T) {
		r := &ResourceFile{Kind: "Solicitud"}
		if _, err := r.ToCreateConfigRequest(); err == nil || !strings.Contains(err.Error(), "expected 'Planilla'") {
			t.Errorf("error = %v, want a kind mismatch", err)
		}
	})

	t.Run("missing spreadsheet id", func(t *testing.T) {
		r := &ResourceFile{Kind: "Planilla", Spec: ResourceSpec{SheetName: "Pedidos 2025"}}
		if _, err := r.ToCreateConfigRequest(); err == nil || !strings.Contains(err.Error(), "spreadsheetId is required") {
			t.Errorf("error = %v, want a missing spreadsheetId", err)
		}
	})

	t.Run("missing sheet name", func(t *testing.T) {
		r := &ResourceFile{Kind: "Planilla", Spec: ResourceSpec{SpreadsheetID: "sheet-id"}}
		if _, err := r.ToCreateConfigRequest(); err == nil || !strings.Contains(err.Error(), "sheetName is required") {
			t.Errorf("error = %v, want a missing sheetName", err)
		}
	})
}

func TestToCreateSolicitudRequest(t *testing.T) {
	t.Run("valid solicitud", func(t *testing.T) {
		entry := "2025-03-14"
		amount := 1500.50
		r := &ResourceFile{
			Kind: "Solicitud",
			Spec: ResourceSpec{
				Description: "Solicitud de materiales",
				PersonID:    12,
				Origin:      "WHATSAPP",
				EntryDate:   &entry,
				Amount:      &amount,
			},
		}
		req, err := r.ToCreateSolicitudRequest()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.Description != "Solicitud de materiales" || req.PersonID != 12 {
			t.Errorf("request = %+v, want the spec fields copied over", req)
		}
		if req.EntryDate == nil || *req.EntryDate != entry {
			t.Errorf("entryDate = %v, want %q", req.EntryDate, entry)
		}
		if req.Amount == nil || *req.Amount != amount {
			t.Errorf("amount = %v, want %v", req.Amount, amount)
		}
	})

	t.Run("kind mismatch", func(t *testing.T) {
		r := &ResourceFile{Kind: "Planilla"}
		if _, err := r.ToCreateSolicitudRequest(); err == nil || !strings.Contains(err.Error(), "expected 'Solicitud'") {
			t.Errorf("error = %v, want a kind mismatch", err)
		}
	})

	t.Run("missing description", func(t *testing.T) {
		r := &ResourceFile{Kind: "Solicitud", Spec: ResourceSpec{PersonID: 12}}
		if _, err := r.ToCreateSolicitudRequest(); err == nil || !strings.Contains(err.Error(), "description is required") {
			t.Errorf("error = %v, want a missing description", err)
		}
	})

	t.Run("missing person id", func(t *testing.T) {
		r := &ResourceFile{Kind: "Solicitud", Spec: ResourceSpec{Description: "Chapas"}}
		if _, err := r.ToCreateSolicitudRequest(); err == nil || !strings.Contains(err.Error(), "personId is required") {
			t.Errorf("error = %v, want a missing personId", err)
		}
	})
}
