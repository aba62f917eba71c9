package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"sistema_cvt/internal/adapter/persistence/sheetstore"
	"sistema_cvt/internal/domain/entities"
)

// fakeRemote records appends and serves canned rows per worksheet.
type fakeRemote struct {
	rows       map[string][]map[string]string
	appends    map[string][][]string
	failAppend bool
	failRead   bool
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{
		rows:    map[string][]map[string]string{},
		appends: map[string][][]string{},
	}
}

func (f *fakeRemote) AppendRow(_ context.Context, worksheet string, values []string) error {
	if f.failAppend {
		return errors.New("remote unavailable")
	}
	f.appends[worksheet] = append(f.appends[worksheet], values)
	return nil
}

func (f *fakeRemote) GetAllRecords(_ context.Context, worksheet string) ([]map[string]string, error) {
	if f.failRead {
		return nil, errors.New("remote unavailable")
	}
	return f.rows[worksheet], nil
}

func newTestStore(t *testing.T, remote sheetstore.RemoteTabular) *sheetstore.Store {
	t.Helper()
	return sheetstore.New(remote, t.TempDir(), time.Millisecond)
}

func TestVisitReportSheetRepository_AppendAndList(t *testing.T) {
	remote := newFakeRemote()
	repo := NewVisitReportSheetRepository(newTestStore(t, remote))

	report := entities.VisitReport{
		Number:           "CVT-20240315-144209",
		CreatedAt:        time.Date(2024, 3, 15, 14, 42, 9, 0, time.UTC),
		Technician:       "João Silva",
		Client:           "Condomínio Central",
		Address:          "Av. Paulista, 1000",
		Elevator:         "Social 1",
		ServicePerformed: "Troca de cabo",
		RequestedParts:   "P001(2)",
		Status:           entities.ReportStatusSalvo,
	}
	if err := repo.Append(context.Background(), report); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := remote.appends["CVT"]
	if len(rows) != 1 {
		t.Fatalf("expected one appended row, got %d", len(rows))
	}
	// Canonical order puts the identifier first.
	if rows[0][0] != "CVT-20240315-144209" {
		t.Fatalf("unexpected row: %v", rows[0])
	}
}

func TestVisitReportSheetRepository_AppendFailure(t *testing.T) {
	remote := newFakeRemote()
	remote.failAppend = true
	repo := NewVisitReportSheetRepository(newTestStore(t, remote))

	// Local fallback still absorbs the append, so no error surfaces.
	if err := repo.Append(context.Background(), entities.VisitReport{Number: "CVT-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 1 || all[0].Number != "CVT-1" {
		t.Fatalf("expected the locally persisted report, got %+v", all)
	}
}

func TestVisitReportSheetRepository_GetByNumber(t *testing.T) {
	remote := newFakeRemote()
	remote.rows["CVT"] = []map[string]string{
		{"numero_cvt": "CVT-1", "tecnico": "Maria", "created_at": "2024-03-15T10:00:00Z", "status_cvt": "SALVO", "legado": "x"},
		{"numero_cvt": "CVT-2", "tecnico": "João Silva", "created_at": "2024-03-15T11:00:00Z", "status_cvt": "SALVO"},
	}
	repo := NewVisitReportSheetRepository(newTestStore(t, remote))

	rep, err := repo.GetByNumber(context.Background(), " CVT-1 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Technician != "Maria" {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if rep.Extra["legado"] != "x" {
		t.Fatalf("extra columns should be preserved: %+v", rep.Extra)
	}

	missing, err := repo.GetByNumber(context.Background(), "CVT-9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing.Number != "" {
		t.Fatalf("expected zero value for unknown number, got %+v", missing)
	}
}

func TestVisitReportSheetRepository_ListByTechnician(t *testing.T) {
	remote := newFakeRemote()
	remote.rows["CVT"] = []map[string]string{
		{"numero_cvt": "CVT-1", "tecnico": "Maria"},
		{"numero_cvt": "CVT-2", "tecnico": "João Silva"},
		{"numero_cvt": "CVT-3", "tecnico": "Maria"},
	}
	repo := NewVisitReportSheetRepository(newTestStore(t, remote))

	mine, err := repo.ListByTechnician(context.Background(), "Maria")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("expected 2 reports, got %+v", mine)
	}
}

func TestPartRequestSheetRepository_RoundTrip(t *testing.T) {
	remote := newFakeRemote()
	repo := NewPartRequestSheetRepository(newTestStore(t, remote))

	req := entities.PartRequest{
		CreatedAt:       time.Date(2024, 3, 15, 14, 42, 9, 0, time.UTC),
		Technician:      "João Silva",
		ReportNumber:    "CVT-20240315-144209",
		OrderID:         "CVT-20240315-144209-P001",
		PartCode:        "P001",
		PartDescription: "Cabo de tração",
		Quantity:        2,
		Status:          entities.RequestStatusPendente,
		Priority:        entities.PriorityUrgente,
	}
	if err := repo.Append(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(remote.appends["REQUISICOES"]) != 1 {
		t.Fatalf("expected one appended row, got %+v", remote.appends)
	}
}

func TestClientSheetRepository_ListActive(t *testing.T) {
	remote := newFakeRemote()
	remote.rows["CLIENTES"] = []map[string]string{
		{"nome": "Condomínio Central", "ativo": "SIM"},
		{"nome": "Edifício Sul", "ativo": "NAO"},
		{"nome": "Hospital Norte", "ativo": "true"},
	}
	repo := NewClientSheetRepository(newTestStore(t, remote))

	active, err := repo.ListActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active clients, got %+v", active)
	}
}

func TestUserSheetRepository_List(t *testing.T) {
	remote := newFakeRemote()
	remote.rows["USERS"] = []map[string]string{
		{"username": "tecnico1", "password": "123", "role": "TECNICO", "nome": "João Silva"},
		{"username": "", "password": "x"},
		{"username": "ana", "password": "abc"},
	}
	repo := NewUserSheetRepository(newTestStore(t, remote))

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("rows without username must be skipped: %+v", users)
	}
	if users[1].Name != "ana" || users[1].Role != entities.RoleTecnico {
		t.Fatalf("defaults not applied: %+v", users[1])
	}
}
