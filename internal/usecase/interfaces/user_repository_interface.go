package interfaces

import (
	"context"
	"sistema_cvt/internal/domain/entities"
)

// IUserRepository lists login entries from the USERS table.

type IUserRepository interface {
	List(ctx context.Context) ([]entities.User, error)
}
