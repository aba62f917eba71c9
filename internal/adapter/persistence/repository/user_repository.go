package repository

import (
	"context"
	"strings"

	"sistema_cvt/internal/adapter/persistence/sheetstore"
	"sistema_cvt/internal/domain/entities"
	"sistema_cvt/internal/usecase/interfaces"
)

var UserEntity = sheetstore.Entity{
	Key:       "users",
	Worksheet: "USERS",
	LocalFile: "users_local.csv",
	Columns:   entities.UserColumns,
}

type UserSheetRepository struct {
	store *sheetstore.Store
}

var _ interfaces.IUserRepository = (*UserSheetRepository)(nil)

func NewUserSheetRepository(store *sheetstore.Store) *UserSheetRepository {
	return &UserSheetRepository{store: store}
}

func (r *UserSheetRepository) List(ctx context.Context) ([]entities.User, error) {
	records := r.store.ReadAll(ctx, UserEntity)
	users := make([]entities.User, 0, len(records))
	for _, rec := range records {
		username := strings.TrimSpace(rec["username"])
		if username == "" {
			continue
		}
		name := strings.TrimSpace(rec["nome"])
		if name == "" {
			name = username
		}
		role := entities.Role(strings.TrimSpace(rec["role"]))
		if role == "" {
			role = entities.RoleTecnico
		}
		users = append(users, entities.User{
			Username: username,
			Password: strings.TrimSpace(rec["password"]),
			Role:     role,
			Name:     name,
		})
	}
	return users, nil
}
