// Package seed genera mascotas aleatorias para poblar el directorio.
package seed

import (
	"math/rand"

	"pet-directory/internal/domain/pets"

	"github.com/google/uuid"
)

var names = []string{
	"Jodi", "Milo", "Luna", "Rex", "Coco",
	"Nala", "Simba", "Toby", "Kira", "Rocky",
	"Maya", "Bruno", "Olivia", "Max", "Canela",
}

var species = []string{
	"Dog", "Cat", "Chicken", "Parrot", "Turtle", "Hamster",
}

// Generate produce n inputs de registro aleatorios. Aproximadamente
// dos de cada tres llevan microchip (UUID); el resto queda en nil.
func Generate(rng *rand.Rand, n int) []pets.RegisterInput {
	out := make([]pets.RegisterInput, 0, n)
	for i := 0; i < n; i++ {
		in := pets.RegisterInput{
			Name:    names[rng.Intn(len(names))],
			Species: species[rng.Intn(len(species))],
		}
		if rng.Intn(3) != 0 {
			chip := uuid.NewString()
			in.Microchip = &chip
		}
		out = append(out, in)
	}
	return out
}
