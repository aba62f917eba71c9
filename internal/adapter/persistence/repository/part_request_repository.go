package repository

import (
	"context"
	"strings"

	"sistema_cvt/internal/adapter/persistence/sheetstore"
	"sistema_cvt/internal/domain/entities"
	"sistema_cvt/internal/usecase/interfaces"
)

// PartRequestEntity is the tabular descriptor for part requests.
var PartRequestEntity = sheetstore.Entity{
	Key:       "req",
	Worksheet: "REQUISICOES",
	LocalFile: "requisicoes_local.csv",
	Columns:   entities.PartRequestColumns,
}

type PartRequestSheetRepository struct {
	store *sheetstore.Store
}

var _ interfaces.IPartRequestRepository = (*PartRequestSheetRepository)(nil)

func NewPartRequestSheetRepository(store *sheetstore.Store) *PartRequestSheetRepository {
	return &PartRequestSheetRepository{store: store}
}

func (r *PartRequestSheetRepository) Append(ctx context.Context, req entities.PartRequest) error {
	if ok := r.store.Append(ctx, PartRequestEntity, toPartRequestRecord(req)); !ok {
		return ErrAppendFailed
	}
	return nil
}

func (r *PartRequestSheetRepository) ListAll(ctx context.Context) ([]entities.PartRequest, error) {
	records := r.store.ReadAll(ctx, PartRequestEntity)
	reqs := make([]entities.PartRequest, 0, len(records))
	for _, rec := range records {
		reqs = append(reqs, fromPartRequestRecord(rec))
	}
	return reqs, nil
}

func (r *PartRequestSheetRepository) ListByTechnician(ctx context.Context, technician string) ([]entities.PartRequest, error) {
	all, _ := r.ListAll(ctx)
	out := make([]entities.PartRequest, 0, len(all))
	for _, req := range all {
		if req.Technician == technician {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *PartRequestSheetRepository) ListByReportNumber(ctx context.Context, number string) ([]entities.PartRequest, error) {
	number = strings.TrimSpace(number)
	all, _ := r.ListAll(ctx)
	out := make([]entities.PartRequest, 0, len(all))
	for _, req := range all {
		if req.ReportNumber == number {
			out = append(out, req)
		}
	}
	return out, nil
}

func toPartRequestRecord(req entities.PartRequest) sheetstore.Record {
	return sheetstore.Record{
		"created_at":     formatTimestamp(req.CreatedAt),
		"tecnico":        req.Technician,
		"numero_cvt":     req.ReportNumber,
		"ordem_id":       req.OrderID,
		"peca_codigo":    req.PartCode,
		"peca_descricao": req.PartDescription,
		"quantidade":     formatQuantity(req.Quantity),
		"status":         string(req.Status),
		"prioridade":     string(req.Priority),
		"observacoes":    req.Notes,
	}
}

func fromPartRequestRecord(rec sheetstore.Record) entities.PartRequest {
	req := entities.PartRequest{
		CreatedAt:       parseTimestamp(rec["created_at"]),
		Technician:      rec["tecnico"],
		ReportNumber:    rec["numero_cvt"],
		OrderID:         rec["ordem_id"],
		PartCode:        rec["peca_codigo"],
		PartDescription: rec["peca_descricao"],
		Quantity:        parseQuantity(rec["quantidade"]),
		Status:          entities.RequestStatus(rec["status"]),
		Priority:        entities.Priority(rec["prioridade"]),
		Notes:           rec["observacoes"],
	}
	req.Extra = extraColumns(rec, entities.PartRequestColumns)
	return req
}
