package commands

import (
	"testing"

	"github.com/fdieguez/sgp/internal/cli/types"
	"github.com/fdieguez/sgp/internal/tabular"
)

func descriptions(items []types.Solicitud) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = s.Description
	}
	return out
}

func TestSolicitudSortKeyMissingReferencesSortLast(t *testing.T) {
	records := []types.Solicitud{
		{Description: "sin barrio"},
		{Description: "centro", LocationName: "Centro", PersonName: "Ana Lopez", ResponsableName: "Diego"},
		{Description: "norte", LocationName: "Norte", PersonName: "Juan Perez", ResponsableName: "Carla"},
	}

	tests := []struct {
		name  string
		field string
		dir   tabular.SortDirection
		want  []string
	}{
		{
			name:  "location ascending, missing last",
			field: "location",
			dir:   tabular.Ascending,
			want:  []string{"centro", "norte", "sin barrio"},
		},
		{
			name:  "location descending, missing still last",
			field: "location",
			dir:   tabular.Descending,
			want:  []string{"norte", "centro", "sin barrio"},
		},
		{
			name:  "person ascending, missing last",
			field: "person",
			dir:   tabular.Ascending,
			want:  []string{"centro", "norte", "sin barrio"},
		},
		{
			name:  "responsable descending, missing still last",
			field: "responsable",
			dir:   tabular.Descending,
			want:  []string{"centro", "norte", "sin barrio"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := solicitudSortKey(tt.field)
			if err != nil {
				t.Fatalf("solicitudSortKey(%q): %v", tt.field, err)
			}
			got := descriptions(tabular.SortByKey(records, key, tt.dir))
			if len(got) != len(tt.want) {
				t.Fatalf("got %d records, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("order = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestSolicitudSortKeyUnknownField(t *testing.T) {
	if _, err := solicitudSortKey("zona"); err == nil {
		t.Error("expected an error for an unknown sort field")
	}
}
