package usecase

import (
	"context"
	"errors"
	"strings"

	"sistema_cvt/internal/domain/entities"
	"sistema_cvt/internal/usecase/interfaces"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// IAuthUseCase checks credentials against the USERS table. The check is a
// pure lookup: credentials in, profile or rejection out. Password hashing is
// out of scope; the table is maintained upstream in plaintext.

type IAuthUseCase interface {
	Authenticate(ctx context.Context, username, password string) (entities.User, error)
}

type AuthUseCase struct {
	users interfaces.IUserRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository) *AuthUseCase {
	return &AuthUseCase{users: users}
}

// seedUsers keeps a first deployment usable before the USERS worksheet is
// populated.
var seedUsers = []entities.User{
	{Username: "tecnico1", Password: "123", Role: entities.RoleTecnico, Name: "João Silva"},
	{Username: "supervisor", Password: "admin", Role: entities.RoleSupervisor, Name: "Carlos Oliveira"},
}

func (u *AuthUseCase) Authenticate(ctx context.Context, username, password string) (entities.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return entities.User{}, ErrInvalidCredentials
	}

	users, err := u.users.List(ctx)
	if err != nil {
		return entities.User{}, err
	}
	if len(users) == 0 {
		users = seedUsers
	}

	for _, candidate := range users {
		if candidate.Username == username && candidate.Password == password {
			return candidate, nil
		}
	}
	return entities.User{}, ErrInvalidCredentials
}
