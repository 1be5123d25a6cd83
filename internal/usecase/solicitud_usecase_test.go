package usecase

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/fdieguez/sgp/internal/domain"
	"github.com/fdieguez/sgp/internal/domain/entity"
)

func floatPtr(f float64) *float64 { return &f }

// newSolicitudFixture wires the usecase against the in-memory fakes and
// seeds one person so valid records have someone to reference.
func newSolicitudFixture(t *testing.T) (domain.SolicitudUsecase, *testSolicitudRepository, *entity.Person) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	solicitudRepo := &testSolicitudRepository{}
	personRepo := newTestPersonRepository()

	person, err := personRepo.Create(context.Background(), &entity.Person{Name: "Ana Lopez"})
	if err != nil {
		t.Fatalf("seed person: %v", err)
	}

	uc := NewSolicitudUsecase(solicitudRepo, personRepo, logger)
	return uc, solicitudRepo, person
}

func TestSolicitudCreate(t *testing.T) {
	tests := []struct {
		name        string
		solicitud   func(personID int64) entity.Solicitud
		wantErr     bool
		errContains string
		wantStatus  string
		wantOrigin  string
	}{
		{
			name: "valid record with defaults",
			solicitud: func(personID int64) entity.Solicitud {
				return entity.Solicitud{Description: "Solicitud de materiales", PersonID: personID}
			},
			wantStatus: entity.StatusPending,
			wantOrigin: entity.OriginNote,
		},
		{
			name: "explicit status and origin preserved",
			solicitud: func(personID int64) entity.Solicitud {
				return entity.Solicitud{
					Description: "Chapas para techo",
					Status:      entity.StatusInProgress,
					Origin:      entity.OriginWhatsapp,
					PersonID:    personID,
				}
			},
			wantStatus: entity.StatusInProgress,
			wantOrigin: entity.OriginWhatsapp,
		},
		{
			name: "blank description",
			solicitud: func(personID int64) entity.Solicitud {
				return entity.Solicitud{Description: "   ", PersonID: personID}
			},
			wantErr:     true,
			errContains: "description is required",
		},
		{
			name: "unknown status",
			solicitud: func(personID int64) entity.Solicitud {
				return entity.Solicitud{Description: "Colchones", Status: "RESUELTO", PersonID: personID}
			},
			wantErr:     true,
			errContains: "invalid status",
		},
		{
			name: "unknown origin",
			solicitud: func(personID int64) entity.Solicitud {
				return entity.Solicitud{Description: "Colchones", Origin: "TELEGRAMA", PersonID: personID}
			},
			wantErr:     true,
			errContains: "invalid origin",
		},
		{
			name: "negative amount",
			solicitud: func(personID int64) entity.Solicitud {
				return entity.Solicitud{Description: "Subsidio", Amount: floatPtr(-100), PersonID: personID}
			},
			wantErr:     true,
			errContains: "amount must not be negative",
		},
		{
			name: "missing person id",
			solicitud: func(personID int64) entity.Solicitud {
				return entity.Solicitud{Description: "Sin solicitante"}
			},
			wantErr:     true,
			errContains: "personId is required",
		},
		{
			name: "person does not exist",
			solicitud: func(personID int64) entity.Solicitud {
				return entity.Solicitud{Description: "Solicitante fantasma", PersonID: personID + 100}
			},
			wantErr:     true,
			errContains: "referenced person does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, person := newSolicitudFixture(t)

			s := tt.solicitud(person.ID)
			created, err := uc.Create(context.Background(), &s)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got none")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error = %v, want it to contain %q", err, tt.errContains)
				}
				if !domain.IsInvalidInput(err) {
					t.Errorf("expected an invalid-input error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created.ID == 0 {
				t.Errorf("created record has no id")
			}
			if created.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", created.Status, tt.wantStatus)
			}
			if created.Origin != tt.wantOrigin {
				t.Errorf("origin = %q, want %q", created.Origin, tt.wantOrigin)
			}
		})
	}
}

func TestSolicitudUpdate(t *testing.T) {
	t.Run("updates an existing record", func(t *testing.T) {
		uc, _, person := newSolicitudFixture(t)

		created, err := uc.Create(context.Background(), &entity.Solicitud{
			Description: "Chapas",
			PersonID:    person.ID,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		created.Status = entity.StatusCompleted
		updated, err := uc.Update(context.Background(), created)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Status != entity.StatusCompleted {
			t.Errorf("status = %q, want %q", updated.Status, entity.StatusCompleted)
		}
	})

	t.Run("missing record", func(t *testing.T) {
		uc, _, person := newSolicitudFixture(t)

		_, err := uc.Update(context.Background(), &entity.Solicitud{
			ID:          42,
			Description: "No existe",
			PersonID:    person.ID,
		})
		if !domain.IsNotFound(err) {
			t.Errorf("expected a not-found error, got %v", err)
		}
	})

	t.Run("update is validated", func(t *testing.T) {
		uc, _, person := newSolicitudFixture(t)

		created, err := uc.Create(context.Background(), &entity.Solicitud{
			Description: "Chapas",
			PersonID:    person.ID,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		created.Description = ""
		if _, err := uc.Update(context.Background(), created); !domain.IsInvalidInput(err) {
			t.Errorf("expected an invalid-input error, got %v", err)
		}
	})
}

func TestSolicitudDelete(t *testing.T) {
	uc, _, person := newSolicitudFixture(t)

	created, err := uc.Create(context.Background(), &entity.Solicitud{
		Description: "Chapas",
		PersonID:    person.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := uc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := uc.Get(context.Background(), created.ID); !domain.IsNotFound(err) {
		t.Errorf("expected a not-found error after delete, got %v", err)
	}

	if err := uc.Delete(context.Background(), 42); !domain.IsNotFound(err) {
		t.Errorf("expected a not-found error for a missing id, got %v", err)
	}
}

func TestSolicitudListSplit(t *testing.T) {
	uc, _, person := newSolicitudFixture(t)

	if _, err := uc.Create(context.Background(), &entity.Solicitud{
		Description: "Pedido sin monto",
		PersonID:    person.ID,
	}); err != nil {
		t.Fatalf("create order: %v", err)
	}
	if _, err := uc.Create(context.Background(), &entity.Solicitud{
		Description: "Subsidio con monto",
		Amount:      floatPtr(1500.50),
		PersonID:    person.ID,
	}); err != nil {
		t.Fatalf("create subsidy: %v", err)
	}

	orders, err := uc.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 || orders[0].Description != "Pedido sin monto" {
		t.Errorf("orders = %+v, want the single record without an amount", orders)
	}

	subsidies, err := uc.ListSubsidies(context.Background())
	if err != nil {
		t.Fatalf("list subsidies: %v", err)
	}
	if len(subsidies) != 1 || subsidies[0].Description != "Subsidio con monto" {
		t.Errorf("subsidies = %+v, want the single record with an amount", subsidies)
	}
}
