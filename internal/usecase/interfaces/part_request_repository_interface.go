package interfaces

import (
	"context"
	"sistema_cvt/internal/domain/entities"
)

// IPartRequestRepository abstracts dual-backend persistence for PartRequest.

type IPartRequestRepository interface {
	Append(ctx context.Context, req entities.PartRequest) error
	ListAll(ctx context.Context) ([]entities.PartRequest, error)
	ListByTechnician(ctx context.Context, technician string) ([]entities.PartRequest, error)
	ListByReportNumber(ctx context.Context, number string) ([]entities.PartRequest, error)
}
