package usecase

import (
	"context"
	"errors"
	"testing"

	"sistema_cvt/internal/domain/entities"
	mock_interfaces "sistema_cvt/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestAuthUseCase_Authenticate(t *testing.T) {
	users := []entities.User{
		{Username: "maria", Password: "s3nha", Role: entities.RoleTecnico, Name: "Maria Souza"},
		{Username: "chefe", Password: "forte", Role: entities.RoleSupervisor, Name: "Chefe Oliveira"},
	}

	t.Run("empty username", func(t *testing.T) {
		uc := NewAuthUseCase(nil)
		if _, err := uc.Authenticate(context.Background(), "  ", "x"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.Authenticate(context.Background(), "maria", "s3nha"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(users, nil)

		if _, err := uc.Authenticate(context.Background(), "maria", "errada"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(users, nil)

		got, err := uc.Authenticate(context.Background(), " chefe ", "forte")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Role != entities.RoleSupervisor || got.Name != "Chefe Oliveira" {
			t.Fatalf("unexpected user: %+v", got)
		}
	})

	t.Run("empty table falls back to seed users", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, nil)

		got, err := uc.Authenticate(context.Background(), "tecnico1", "123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Role != entities.RoleTecnico {
			t.Fatalf("unexpected user: %+v", got)
		}
	})
}
