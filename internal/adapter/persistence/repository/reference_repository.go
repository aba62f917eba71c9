package repository

import (
	"context"
	"strings"

	"sistema_cvt/internal/adapter/persistence/sheetstore"
	"sistema_cvt/internal/domain/entities"
	"sistema_cvt/internal/usecase/interfaces"
)

// Reference tables are externally maintained and read-only here, so these
// repositories only expose reads.

var ClientEntity = sheetstore.Entity{
	Key:       "clientes",
	Worksheet: "CLIENTES",
	LocalFile: "clientes_local.csv",
	Columns:   entities.ClientColumns,
}

var PartEntity = sheetstore.Entity{
	Key:       "pecas",
	Worksheet: "PECAS",
	LocalFile: "pecas_local.csv",
	Columns:   entities.PartColumns,
}

type ClientSheetRepository struct {
	store *sheetstore.Store
}

var _ interfaces.IClientRepository = (*ClientSheetRepository)(nil)

func NewClientSheetRepository(store *sheetstore.Store) *ClientSheetRepository {
	return &ClientSheetRepository{store: store}
}

func (r *ClientSheetRepository) ListActive(ctx context.Context) ([]entities.Client, error) {
	records := r.store.ReadAll(ctx, ClientEntity)
	clients := make([]entities.Client, 0, len(records))
	for _, rec := range records {
		if !entities.IsActiveToken(rec["ativo"]) {
			continue
		}
		clients = append(clients, entities.Client{
			Code:        rec["codigo"],
			Name:        rec["nome"],
			Address:     rec["endereco"],
			Phone:       rec["telefone"],
			Email:       rec["email"],
			Responsible: rec["responsavel"],
			Active:      rec["ativo"],
		})
	}
	return clients, nil
}

func (r *ClientSheetRepository) GetByName(ctx context.Context, name string) (entities.Client, error) {
	name = strings.TrimSpace(name)
	active, _ := r.ListActive(ctx)
	for _, c := range active {
		if c.Name == name {
			return c, nil
		}
	}
	return entities.Client{}, nil
}

type PartSheetRepository struct {
	store *sheetstore.Store
}

var _ interfaces.IPartRepository = (*PartSheetRepository)(nil)

func NewPartSheetRepository(store *sheetstore.Store) *PartSheetRepository {
	return &PartSheetRepository{store: store}
}

func (r *PartSheetRepository) ListActive(ctx context.Context) ([]entities.Part, error) {
	records := r.store.ReadAll(ctx, PartEntity)
	parts := make([]entities.Part, 0, len(records))
	for _, rec := range records {
		if !entities.IsActiveToken(rec["ativo"]) {
			continue
		}
		parts = append(parts, entities.Part{
			Code:        rec["codigo"],
			Description: rec["descricao"],
			Category:    rec["categoria"],
			ExtraFields: rec["campos_extras"],
			Active:      rec["ativo"],
		})
	}
	return parts, nil
}

func (r *PartSheetRepository) GetByCode(ctx context.Context, code string) (entities.Part, error) {
	code = strings.TrimSpace(code)
	active, _ := r.ListActive(ctx)
	for _, p := range active {
		if p.Code == code {
			return p, nil
		}
	}
	return entities.Part{}, nil
}
