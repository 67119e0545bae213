package pets

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type RegisterInput struct {
	Name      string
	Species   string
	Microchip *string
}

// Register da de alta una mascota. Solo lo usa el path de seeding;
// el directorio no expone escritura por HTTP.
func (s *Service) Register(ctx context.Context, in RegisterInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Species) == "" {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		Name:      strings.TrimSpace(in.Name),
		Species:   strings.TrimSpace(in.Species),
		Microchip: in.Microchip,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return s.repo.Create(ctx, p)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

// ListBySpecies devuelve las mascotas con species igual (match exacto,
// case-sensitive). El orden es el que devuelva el storage.
func (s *Service) ListBySpecies(ctx context.Context, species string) ([]Pet, error) {
	return s.repo.ListBySpecies(ctx, species)
}
