package pets

import (
	"time"

	"pet-directory/internal/platform/serialize"
)

// Pet representa una mascota registrada en el directorio.
//
// El ID lo asigna el storage al crear; después es inmutable.
type Pet struct {
	ID int64

	Name    string
	Species string

	// Microchip es opcional; nil => sin chip registrado.
	Microchip *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Fields declara la lista estática de campos serializables, en orden.
// Es la única fuente de verdad de lo que sale por la API: si un campo
// no está acá, no se serializa (CreatedAt/UpdatedAt quedan afuera a
// propósito, son bookkeeping del storage).
func (p Pet) Fields() []serialize.Field {
	return []serialize.Field{
		{Name: "id", Value: p.ID},
		{Name: "name", Value: p.Name},
		{Name: "species", Value: p.Species},
		{Name: "microchip", Value: p.Microchip},
	}
}
