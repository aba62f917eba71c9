package usecase

import (
	"context"
	"errors"
	"strings"

	"sistema_cvt/internal/domain/entities"
	"sistema_cvt/internal/usecase/interfaces"
)

var (
	ErrClientNotFound    = errors.New("client not found")
	ErrPartNotFound      = errors.New("part not found")
	ErrInvalidClientName = errors.New("invalid client name")
	ErrInvalidPartCode   = errors.New("invalid part code")
)

// IReferenceUseCase exposes the active-only views of the reference tables
// used to populate the report form and the part selector.

type IReferenceUseCase interface {
	ActiveClients(ctx context.Context) ([]entities.Client, error)
	ActiveParts(ctx context.Context) ([]entities.Part, error)
	ClientByName(ctx context.Context, name string) (entities.Client, error)
	PartByCode(ctx context.Context, code string) (entities.Part, error)
}

type ReferenceUseCase struct {
	clients interfaces.IClientRepository
	parts   interfaces.IPartRepository
}

var _ IReferenceUseCase = (*ReferenceUseCase)(nil)

func NewReferenceUseCase(clients interfaces.IClientRepository, parts interfaces.IPartRepository) *ReferenceUseCase {
	return &ReferenceUseCase{clients: clients, parts: parts}
}

func (u *ReferenceUseCase) ActiveClients(ctx context.Context) ([]entities.Client, error) {
	return u.clients.ListActive(ctx)
}

func (u *ReferenceUseCase) ActiveParts(ctx context.Context) ([]entities.Part, error) {
	return u.parts.ListActive(ctx)
}

func (u *ReferenceUseCase) ClientByName(ctx context.Context, name string) (entities.Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Client{}, ErrInvalidClientName
	}
	c, err := u.clients.GetByName(ctx, name)
	if err != nil {
		return entities.Client{}, err
	}
	if c.Name == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ReferenceUseCase) PartByCode(ctx context.Context, code string) (entities.Part, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Part{}, ErrInvalidPartCode
	}
	p, err := u.parts.GetByCode(ctx, code)
	if err != nil {
		return entities.Part{}, err
	}
	if p.Code == "" {
		return entities.Part{}, ErrPartNotFound
	}
	return p, nil
}
