package pdfrender

import (
	"bytes"
	"testing"
	"time"

	"sistema_cvt/internal/domain/entities"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer()

	report := entities.VisitReport{
		Number:           "CVT-20240315-144209",
		CreatedAt:        time.Date(2024, 3, 15, 14, 42, 9, 0, time.UTC),
		Technician:       "João Silva",
		Client:           "Condomínio Central",
		Address:          "Av. Paulista, 1000",
		Elevator:         "Elevador Social 1",
		ServicePerformed: "Troca de cabo de tração",
		Notes:            "Cliente acompanhou o serviço",
		Status:           entities.ReportStatusSalvo,
	}
	parts := []entities.PartRequest{
		{PartCode: "P001", PartDescription: "Cabo de tração 8mm", Quantity: 2, Priority: entities.PriorityUrgente},
		{PartCode: "P002", PartDescription: "Polia", Quantity: 1, Priority: entities.PriorityNormal},
	}

	data, err := r.Render(report, parts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("expected a PDF byte stream, got %q", data[:min(len(data), 8)])
	}
}

func TestRenderer_RenderWithoutParts(t *testing.T) {
	r := NewRenderer()

	data, err := r.Render(entities.VisitReport{
		Number:     "CVT-20240315-144209",
		CreatedAt:  time.Now(),
		Technician: "João Silva",
		Client:     "Condomínio Central",
		Status:     entities.ReportStatusSalvo,
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected PDF bytes")
	}
}
