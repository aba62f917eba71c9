package interfaces

import (
	"context"
	"sistema_cvt/internal/domain/entities"
)

// Reference data (clients and the part catalog) is maintained outside this
// service; repositories expose only the active rows.

type IClientRepository interface {
	ListActive(ctx context.Context) ([]entities.Client, error)
	GetByName(ctx context.Context, name string) (entities.Client, error)
}

type IPartRepository interface {
	ListActive(ctx context.Context) ([]entities.Part, error)
	GetByCode(ctx context.Context, code string) (entities.Part, error)
}
