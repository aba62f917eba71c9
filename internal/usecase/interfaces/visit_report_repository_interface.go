package interfaces

import (
	"context"
	"sistema_cvt/internal/domain/entities"
)

// IVisitReportRepository abstracts dual-backend persistence for VisitReport.
//
// Reports are append-only: the storage layer offers no update or delete, and
// reads never fail to the caller (remote errors degrade to the local fallback
// or an empty result).

type IVisitReportRepository interface {
	Append(ctx context.Context, report entities.VisitReport) error
	ListAll(ctx context.Context) ([]entities.VisitReport, error)
	ListByTechnician(ctx context.Context, technician string) ([]entities.VisitReport, error)
	GetByNumber(ctx context.Context, number string) (entities.VisitReport, error)
}
