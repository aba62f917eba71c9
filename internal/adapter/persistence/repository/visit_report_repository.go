package repository

import (
	"context"
	"strconv"
	"strings"

	"sistema_cvt/internal/adapter/persistence/sheetstore"
	"sistema_cvt/internal/domain/entities"
	"sistema_cvt/internal/usecase/interfaces"
)

// ReportEntity is the tabular descriptor for visit reports.
var ReportEntity = sheetstore.Entity{
	Key:       "cvt",
	Worksheet: "CVT",
	LocalFile: "cvt_local.csv",
	Columns:   entities.ReportColumns,
}

// VisitReportSheetRepository persists VisitReport rows through the dual
// backend store. Reports are append-only; there is no update or delete.

type VisitReportSheetRepository struct {
	store *sheetstore.Store
}

var _ interfaces.IVisitReportRepository = (*VisitReportSheetRepository)(nil)

func NewVisitReportSheetRepository(store *sheetstore.Store) *VisitReportSheetRepository {
	return &VisitReportSheetRepository{store: store}
}

func (r *VisitReportSheetRepository) Append(ctx context.Context, report entities.VisitReport) error {
	if ok := r.store.Append(ctx, ReportEntity, toReportRecord(report)); !ok {
		return ErrAppendFailed
	}
	return nil
}

func (r *VisitReportSheetRepository) ListAll(ctx context.Context) ([]entities.VisitReport, error) {
	records := r.store.ReadAll(ctx, ReportEntity)
	reports := make([]entities.VisitReport, 0, len(records))
	for _, rec := range records {
		reports = append(reports, fromReportRecord(rec))
	}
	return reports, nil
}

func (r *VisitReportSheetRepository) ListByTechnician(ctx context.Context, technician string) ([]entities.VisitReport, error) {
	all, _ := r.ListAll(ctx)
	out := make([]entities.VisitReport, 0, len(all))
	for _, rep := range all {
		if rep.Technician == technician {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *VisitReportSheetRepository) GetByNumber(ctx context.Context, number string) (entities.VisitReport, error) {
	number = strings.TrimSpace(number)
	all, _ := r.ListAll(ctx)
	for _, rep := range all {
		if rep.Number == number {
			return rep, nil
		}
	}
	return entities.VisitReport{}, nil
}

func toReportRecord(rep entities.VisitReport) sheetstore.Record {
	return sheetstore.Record{
		"numero_cvt":        rep.Number,
		"created_at":        formatTimestamp(rep.CreatedAt),
		"tecnico":           rep.Technician,
		"cliente":           rep.Client,
		"endereco":          rep.Address,
		"elevador":          rep.Elevator,
		"servico_realizado": rep.ServicePerformed,
		"obs":               rep.Notes,
		"pecas_requeridas":  rep.RequestedParts,
		"status_cvt":        string(rep.Status),
	}
}

func fromReportRecord(rec sheetstore.Record) entities.VisitReport {
	rep := entities.VisitReport{
		Number:           rec["numero_cvt"],
		CreatedAt:        parseTimestamp(rec["created_at"]),
		Technician:       rec["tecnico"],
		Client:           rec["cliente"],
		Address:          rec["endereco"],
		Elevator:         rec["elevador"],
		ServicePerformed: rec["servico_realizado"],
		Notes:            rec["obs"],
		RequestedParts:   rec["pecas_requeridas"],
		Status:           entities.ReportStatus(rec["status_cvt"]),
	}
	rep.Extra = extraColumns(rec, entities.ReportColumns)
	return rep
}

// extraColumns collects the columns outside the canonical schema so callers
// still see them.
func extraColumns(rec sheetstore.Record, columns []string) map[string]string {
	canonical := make(map[string]bool, len(columns))
	for _, c := range columns {
		canonical[c] = true
	}
	var extra map[string]string
	for k, v := range rec {
		if !canonical[k] {
			if extra == nil {
				extra = map[string]string{}
			}
			extra[k] = v
		}
	}
	return extra
}

func formatQuantity(n int) string {
	return strconv.Itoa(n)
}
