package pets

import "context"

type Repository interface {
	// Create persiste la mascota y devuelve la copia con ID asignado.
	Create(ctx context.Context, p Pet) (Pet, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	ListBySpecies(ctx context.Context, species string) ([]Pet, error)
}
