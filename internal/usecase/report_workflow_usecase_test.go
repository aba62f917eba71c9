package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"sistema_cvt/internal/domain/entities"
	mock_interfaces "sistema_cvt/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedInstant = time.Date(2024, 3, 15, 14, 42, 9, 0, time.FixedZone("-03", -3*60*60))

func newWorkflowWithMocks(t *testing.T) (*ReportWorkflowUseCase, *mock_interfaces.MockIVisitReportRepository, *mock_interfaces.MockIPartRequestRepository, *mock_interfaces.MockIPartRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	reports := mock_interfaces.NewMockIVisitReportRepository(ctrl)
	requests := mock_interfaces.NewMockIPartRequestRepository(ctrl)
	catalog := mock_interfaces.NewMockIPartRepository(ctrl)
	uc := NewReportWorkflowUseCase(reports, requests, catalog)
	uc.now = func() time.Time { return fixedInstant }
	return uc, reports, requests, catalog
}

func validDraft() ReportDraft {
	return ReportDraft{
		Technician:       "João Silva",
		Client:           "Condomínio Azul",
		Address:          "Rua das Flores, 100",
		Elevator:         "Principal",
		ServicePerformed: "Troca de polia",
		Notes:            "sem intercorrências",
	}
}

func pendingContext(parts ...PartEntry) WorkflowContext {
	return WorkflowContext{State: StatePartsPending, Draft: validDraft(), Parts: parts}
}

func TestReportWorkflowUseCase_UpdateDraft(t *testing.T) {
	uc, _, _, _ := newWorkflowWithMocks(t)

	t.Run("editing replaces the draft", func(t *testing.T) {
		next, err := uc.UpdateDraft(uc.NewContext(), validDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.Draft.Client != "Condomínio Azul" || next.State != StateEditing {
			t.Fatalf("unexpected context: %+v", next)
		}
	})

	t.Run("saved state starts a fresh session", func(t *testing.T) {
		saved := WorkflowContext{State: StateSavedWithParts, SavedNumber: "CVT-20240315-144209"}
		next, err := uc.UpdateDraft(saved, validDraft())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.State != StateEditing || next.SavedNumber != "" || len(next.Parts) != 0 {
			t.Fatalf("expected fresh context, got %+v", next)
		}
	})

	t.Run("parts pending rejects draft updates", func(t *testing.T) {
		if _, err := uc.UpdateDraft(pendingContext(), validDraft()); !errors.Is(err, ErrNotEditing) {
			t.Fatalf("expected ErrNotEditing, got %v", err)
		}
	})
}

func TestReportWorkflowUseCase_RequestParts(t *testing.T) {
	uc, _, _, _ := newWorkflowWithMocks(t)

	t.Run("requires a client", func(t *testing.T) {
		wctx := uc.NewContext()
		wctx.Draft.Client = "   "
		if _, err := uc.RequestParts(wctx); !errors.Is(err, ErrMissingClient) {
			t.Fatalf("expected ErrMissingClient, got %v", err)
		}
	})

	t.Run("enters parts pending keeping the buffer", func(t *testing.T) {
		wctx := WorkflowContext{State: StateEditing, Draft: validDraft(), Parts: []PartEntry{{Code: "P001", Quantity: 1}}}
		next, err := uc.RequestParts(wctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.State != StatePartsPending || len(next.Parts) != 1 {
			t.Fatalf("unexpected context: %+v", next)
		}
	})

	t.Run("rejected outside editing", func(t *testing.T) {
		if _, err := uc.RequestParts(pendingContext()); !errors.Is(err, ErrNotEditing) {
			t.Fatalf("expected ErrNotEditing, got %v", err)
		}
	})
}

func TestReportWorkflowUseCase_AddPart(t *testing.T) {
	t.Run("wrong state", func(t *testing.T) {
		uc, _, _, _ := newWorkflowWithMocks(t)
		_, err := uc.AddPart(context.Background(), uc.NewContext(), PartEntry{Code: "P001", Quantity: 1})
		if !errors.Is(err, ErrNotPartsPending) {
			t.Fatalf("expected ErrNotPartsPending, got %v", err)
		}
	})

	t.Run("invalid entries", func(t *testing.T) {
		uc, _, _, _ := newWorkflowWithMocks(t)
		cases := []PartEntry{
			{Code: "  ", Quantity: 1},
			{Code: "P001", Quantity: 0},
			{Code: "P001", Quantity: 1, Priority: "DEPOIS"},
		}
		for _, entry := range cases {
			if _, err := uc.AddPart(context.Background(), pendingContext(), entry); !errors.Is(err, ErrInvalidPartEntry) {
				t.Fatalf("entry %+v: expected ErrInvalidPartEntry, got %v", entry, err)
			}
		}
	})

	t.Run("catalog part fills description and defaults priority", func(t *testing.T) {
		uc, _, _, catalog := newWorkflowWithMocks(t)
		catalog.EXPECT().GetByCode(gomock.Any(), "P001").Return(entities.Part{Code: "P001", Description: "Polia 300mm"}, nil)

		next, err := uc.AddPart(context.Background(), pendingContext(), PartEntry{Code: " P001 ", Quantity: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(next.Parts) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(next.Parts))
		}
		got := next.Parts[0]
		if got.Code != "P001" || got.Description != "Polia 300mm" || got.Priority != entities.PriorityNormal {
			t.Fatalf("unexpected entry: %+v", got)
		}
	})

	t.Run("extra fields must be declared for the part", func(t *testing.T) {
		uc, _, _, catalog := newWorkflowWithMocks(t)
		catalog.EXPECT().GetByCode(gomock.Any(), "P001").Return(entities.Part{Code: "P001", Description: "Polia", ExtraFields: "numero_serie"}, nil).Times(2)

		entry := PartEntry{Code: "P001", Quantity: 1, ExtraFields: []FieldValue{{Name: "numero_serie", Value: "X-9"}}}
		if _, err := uc.AddPart(context.Background(), pendingContext(), entry); err != nil {
			t.Fatalf("declared field rejected: %v", err)
		}

		entry.ExtraFields = []FieldValue{{Name: "cor", Value: "azul"}}
		if _, err := uc.AddPart(context.Background(), pendingContext(), entry); !errors.Is(err, ErrUnknownExtraField) {
			t.Fatalf("expected ErrUnknownExtraField, got %v", err)
		}
	})

	t.Run("manual code outside the catalog", func(t *testing.T) {
		uc, _, _, catalog := newWorkflowWithMocks(t)
		catalog.EXPECT().GetByCode(gomock.Any(), "AVULSA-1").Return(entities.Part{}, nil)

		next, err := uc.AddPart(context.Background(), pendingContext(), PartEntry{Code: "AVULSA-1", Quantity: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.Parts[0].Description != "AVULSA-1" {
			t.Fatalf("expected code as description, got %+v", next.Parts[0])
		}
	})
}

func TestReportWorkflowUseCase_BufferEdits(t *testing.T) {
	uc, _, _, _ := newWorkflowWithMocks(t)
	first := PartEntry{Code: "P001", Description: "Polia", Quantity: 2, Priority: entities.PriorityNormal}
	second := PartEntry{Code: "P002", Description: "Cabo", Quantity: 1, Priority: entities.PriorityUrgente}

	t.Run("remove deletes at index", func(t *testing.T) {
		next, err := uc.RemovePart(pendingContext(first, second), 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(next.Parts) != 1 || next.Parts[0].Code != "P002" {
			t.Fatalf("unexpected buffer: %+v", next.Parts)
		}
	})

	t.Run("edit removes and returns the entry", func(t *testing.T) {
		next, entry, err := uc.EditPart(pendingContext(first, second), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Code != "P002" || len(next.Parts) != 1 {
			t.Fatalf("unexpected result: entry=%+v buffer=%+v", entry, next.Parts)
		}
	})

	t.Run("invalid index", func(t *testing.T) {
		if _, err := uc.RemovePart(pendingContext(first), 1); !errors.Is(err, ErrInvalidPartIndex) {
			t.Fatalf("expected ErrInvalidPartIndex, got %v", err)
		}
		if _, _, err := uc.EditPart(pendingContext(first), -1); !errors.Is(err, ErrInvalidPartIndex) {
			t.Fatalf("expected ErrInvalidPartIndex, got %v", err)
		}
	})

	t.Run("back keeps the buffer", func(t *testing.T) {
		next, err := uc.Back(pendingContext(first))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.State != StateEditing || len(next.Parts) != 1 {
			t.Fatalf("unexpected context: %+v", next)
		}
	})

	t.Run("cancel discards the buffer", func(t *testing.T) {
		next, err := uc.Cancel(pendingContext(first, second))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.State != StateEditing || len(next.Parts) != 0 {
			t.Fatalf("unexpected context: %+v", next)
		}
	})
}

func TestReportWorkflowUseCase_CommitWithoutParts(t *testing.T) {
	t.Run("mandatory fields", func(t *testing.T) {
		uc, _, _, _ := newWorkflowWithMocks(t)
		for _, mutate := range []func(*ReportDraft){
			func(d *ReportDraft) { d.Client = "" },
			func(d *ReportDraft) { d.Address = " " },
			func(d *ReportDraft) { d.Elevator = "" },
			func(d *ReportDraft) { d.ServicePerformed = "" },
		} {
			wctx := uc.NewContext()
			wctx.Draft = validDraft()
			mutate(&wctx.Draft)
			if _, _, err := uc.CommitWithoutParts(context.Background(), wctx); !errors.Is(err, ErrMissingDraftFields) {
				t.Fatalf("expected ErrMissingDraftFields, got %v", err)
			}
		}
	})

	t.Run("wrong state", func(t *testing.T) {
		uc, _, _, _ := newWorkflowWithMocks(t)
		if _, _, err := uc.CommitWithoutParts(context.Background(), pendingContext()); !errors.Is(err, ErrNotEditing) {
			t.Fatalf("expected ErrNotEditing, got %v", err)
		}
	})

	t.Run("repository error keeps the context", func(t *testing.T) {
		uc, reports, _, _ := newWorkflowWithMocks(t)
		reports.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("remote and local failed"))

		wctx := uc.NewContext()
		wctx.Draft = validDraft()
		_, next, err := uc.CommitWithoutParts(context.Background(), wctx)
		if err == nil {
			t.Fatalf("expected error")
		}
		if next.State != StateEditing {
			t.Fatalf("expected context unchanged, got %+v", next)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, reports, _, _ := newWorkflowWithMocks(t)
		reports.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.VisitReport{})).DoAndReturn(
			func(_ context.Context, rep entities.VisitReport) error {
				if rep.Number != "CVT-20240315-144209" {
					t.Fatalf("unexpected number: %s", rep.Number)
				}
				if rep.RequestedParts != "" || rep.Status != entities.ReportStatusSalvo {
					t.Fatalf("unexpected report: %+v", rep)
				}
				if rep.Client != "Condomínio Azul" || rep.Technician != "João Silva" {
					t.Fatalf("unexpected report: %+v", rep)
				}
				return nil
			},
		)

		wctx := uc.NewContext()
		wctx.Draft = validDraft()
		report, next, err := uc.CommitWithoutParts(context.Background(), wctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.State != StateSavedNoParts || next.SavedNumber != report.Number {
			t.Fatalf("unexpected context: %+v", next)
		}
	})
}

func TestReportWorkflowUseCase_CommitWithParts(t *testing.T) {
	buffer := []PartEntry{
		{Code: "P001", Description: "Polia", Quantity: 2, Priority: entities.PriorityNormal},
		{Code: "P002", Description: "Cabo", Quantity: 1, Priority: entities.PriorityUrgente, Notes: "cabina travando"},
	}

	t.Run("empty buffer is rejected", func(t *testing.T) {
		uc, _, _, _ := newWorkflowWithMocks(t)
		if _, _, err := uc.CommitWithParts(context.Background(), pendingContext()); !errors.Is(err, ErrEmptyPartsBuffer) {
			t.Fatalf("expected ErrEmptyPartsBuffer, got %v", err)
		}
	})

	t.Run("wrong state", func(t *testing.T) {
		uc, _, _, _ := newWorkflowWithMocks(t)
		if _, _, err := uc.CommitWithParts(context.Background(), uc.NewContext()); !errors.Is(err, ErrNotPartsPending) {
			t.Fatalf("expected ErrNotPartsPending, got %v", err)
		}
	})

	t.Run("mandatory fields", func(t *testing.T) {
		uc, _, _, _ := newWorkflowWithMocks(t)
		wctx := pendingContext(buffer...)
		wctx.Draft.Address = ""
		if _, _, err := uc.CommitWithParts(context.Background(), wctx); !errors.Is(err, ErrMissingDraftFields) {
			t.Fatalf("expected ErrMissingDraftFields, got %v", err)
		}
	})

	t.Run("report append failure keeps the buffer", func(t *testing.T) {
		uc, reports, _, _ := newWorkflowWithMocks(t)
		reports.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("unreachable"))

		_, next, err := uc.CommitWithParts(context.Background(), pendingContext(buffer...))
		if err == nil {
			t.Fatalf("expected error")
		}
		if next.State != StatePartsPending || len(next.Parts) != 2 || next.SavedNumber != "" {
			t.Fatalf("unexpected context: %+v", next)
		}
	})

	t.Run("success writes summary and one row per entry", func(t *testing.T) {
		uc, reports, requests, _ := newWorkflowWithMocks(t)

		reports.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.VisitReport{})).DoAndReturn(
			func(_ context.Context, rep entities.VisitReport) error {
				if rep.RequestedParts != "P001(2), P002(1)" {
					t.Fatalf("unexpected summary: %q", rep.RequestedParts)
				}
				return nil
			},
		)

		var appended []entities.PartRequest
		requests.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.PartRequest{})).DoAndReturn(
			func(_ context.Context, req entities.PartRequest) error {
				appended = append(appended, req)
				return nil
			},
		).Times(2)

		result, next, err := uc.CommitWithParts(context.Background(), pendingContext(buffer...))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.State != StateSavedWithParts || len(next.Parts) != 0 {
			t.Fatalf("unexpected context: %+v", next)
		}
		if len(result.Saved) != 2 || len(result.Failed) != 0 {
			t.Fatalf("unexpected result: %+v", result)
		}
		if appended[0].PartCode != "P001" || appended[1].PartCode != "P002" {
			t.Fatalf("insertion order lost: %+v", appended)
		}
		for _, req := range appended {
			if req.ReportNumber != result.Report.Number {
				t.Fatalf("request not linked to report: %+v", req)
			}
			if req.Status != entities.RequestStatusPendente {
				t.Fatalf("unexpected status: %+v", req)
			}
		}
	})

	t.Run("partial failure keeps failed entries for retry", func(t *testing.T) {
		uc, reports, requests, _ := newWorkflowWithMocks(t)

		var persistedSummary string
		reports.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.VisitReport{})).DoAndReturn(
			func(_ context.Context, rep entities.VisitReport) error {
				persistedSummary = rep.RequestedParts
				return nil
			},
		)
		gomock.InOrder(
			requests.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil),
			requests.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("quota exceeded")),
		)

		result, next, err := uc.CommitWithParts(context.Background(), pendingContext(buffer...))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(result.Saved) != 1 || len(result.Failed) != 1 {
			t.Fatalf("unexpected result: %+v", result)
		}
		if result.Failed[0].Entry.Code != "P002" || result.Failed[0].Index != 1 {
			t.Fatalf("unexpected failure: %+v", result.Failed[0])
		}
		if next.State != StatePartsPending || len(next.Parts) != 1 || next.Parts[0].Code != "P002" {
			t.Fatalf("unexpected context: %+v", next)
		}
		if next.SavedNumber == "" {
			t.Fatalf("expected saved number recorded for retry")
		}

		if persistedSummary != "P001(2), P002(1)" {
			t.Fatalf("unexpected persisted summary: %q", persistedSummary)
		}

		// Retry appends only the missing row; the report is not re-appended
		// and the result echoes the summary the persisted row carries.
		requests.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.PartRequest{})).DoAndReturn(
			func(_ context.Context, req entities.PartRequest) error {
				if req.ReportNumber != next.SavedNumber {
					t.Fatalf("retry lost the report link: %+v", req)
				}
				return nil
			},
		)
		retryResult, final, err := uc.CommitWithParts(context.Background(), next)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if final.State != StateSavedWithParts || len(final.Parts) != 0 {
			t.Fatalf("unexpected final context: %+v", final)
		}
		if len(retryResult.Saved) != 1 {
			t.Fatalf("unexpected retry result: %+v", retryResult)
		}
		if retryResult.Report.RequestedParts != persistedSummary {
			t.Fatalf("retry summary diverged from the persisted row: %q vs %q",
				retryResult.Report.RequestedParts, persistedSummary)
		}
		if retryResult.Report.Number != next.SavedNumber {
			t.Fatalf("retry lost the saved number: %+v", retryResult.Report)
		}
	})

	t.Run("extra fields travel in the request notes", func(t *testing.T) {
		uc, reports, requests, _ := newWorkflowWithMocks(t)
		reports.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
		requests.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.PartRequest{})).DoAndReturn(
			func(_ context.Context, req entities.PartRequest) error {
				if req.Notes != "cabina travando | numero_serie: X-9" {
					t.Fatalf("unexpected notes: %q", req.Notes)
				}
				return nil
			},
		)

		entry := PartEntry{
			Code: "P002", Description: "Cabo", Quantity: 1, Priority: entities.PriorityNormal,
			Notes:       "cabina travando",
			ExtraFields: []FieldValue{{Name: "numero_serie", Value: "X-9"}},
		}
		if _, _, err := uc.CommitWithParts(context.Background(), pendingContext(entry)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
