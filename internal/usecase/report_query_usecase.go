package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"sistema_cvt/internal/domain/entities"
	"sistema_cvt/internal/usecase/interfaces"
)

var (
	ErrReportNotFound      = errors.New("visit report not found")
	ErrInvalidReportNumber = errors.New("invalid report number")
)

// RequestStats are the supervisor-panel counters over all part requests.
type RequestStats struct {
	Total       int `json:"total"`
	Technicians int `json:"tecnicos"`
	Urgent      int `json:"urgentes"`
}

// IReportQueryUseCase exposes the read views over saved reports and part
// requests: a technician's own records, the supervisor's full listings with
// filters, and the report+parts pair consumed by the PDF renderer.
type IReportQueryUseCase interface {
	ListReports(ctx context.Context, technician, status string) ([]entities.VisitReport, error)
	GetReportWithParts(ctx context.Context, number string) (entities.VisitReport, []entities.PartRequest, error)
	ListRequests(ctx context.Context, technician string) ([]entities.PartRequest, error)
	Stats(ctx context.Context) (RequestStats, error)
}

type ReportQueryUseCase struct {
	reports  interfaces.IVisitReportRepository
	requests interfaces.IPartRequestRepository
}

var _ IReportQueryUseCase = (*ReportQueryUseCase)(nil)

func NewReportQueryUseCase(reports interfaces.IVisitReportRepository, requests interfaces.IPartRequestRepository) *ReportQueryUseCase {
	return &ReportQueryUseCase{reports: reports, requests: requests}
}

// ListReports returns reports newest first. Empty technician or status means
// no filter on that field.
func (u *ReportQueryUseCase) ListReports(ctx context.Context, technician, status string) ([]entities.VisitReport, error) {
	var (
		reports []entities.VisitReport
		err     error
	)
	if technician = strings.TrimSpace(technician); technician != "" {
		reports, err = u.reports.ListByTechnician(ctx, technician)
	} else {
		reports, err = u.reports.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	if status = strings.TrimSpace(status); status != "" {
		filtered := reports[:0]
		for _, rep := range reports {
			if string(rep.Status) == status {
				filtered = append(filtered, rep)
			}
		}
		reports = filtered
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports, nil
}

func (u *ReportQueryUseCase) GetReportWithParts(ctx context.Context, number string) (entities.VisitReport, []entities.PartRequest, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return entities.VisitReport{}, nil, ErrInvalidReportNumber
	}

	report, err := u.reports.GetByNumber(ctx, number)
	if err != nil {
		return entities.VisitReport{}, nil, err
	}
	if report.Number == "" {
		return entities.VisitReport{}, nil, ErrReportNotFound
	}

	parts, err := u.requests.ListByReportNumber(ctx, number)
	if err != nil {
		return entities.VisitReport{}, nil, err
	}
	return report, parts, nil
}

// ListRequests returns part requests newest first, optionally filtered by
// technician.
func (u *ReportQueryUseCase) ListRequests(ctx context.Context, technician string) ([]entities.PartRequest, error) {
	var (
		reqs []entities.PartRequest
		err  error
	)
	if technician = strings.TrimSpace(technician); technician != "" {
		reqs, err = u.requests.ListByTechnician(ctx, technician)
	} else {
		reqs, err = u.requests.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	sort.SliceStable(reqs, func(i, j int) bool {
		return reqs[i].CreatedAt.After(reqs[j].CreatedAt)
	})
	return reqs, nil
}

func (u *ReportQueryUseCase) Stats(ctx context.Context) (RequestStats, error) {
	reqs, err := u.requests.ListAll(ctx)
	if err != nil {
		return RequestStats{}, err
	}

	stats := RequestStats{Total: len(reqs)}
	technicians := map[string]bool{}
	for _, req := range reqs {
		if req.Technician != "" {
			technicians[req.Technician] = true
		}
		if req.Priority == entities.PriorityUrgente {
			stats.Urgent++
		}
	}
	stats.Technicians = len(technicians)
	return stats, nil
}
