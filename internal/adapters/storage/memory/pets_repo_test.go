package memory

import (
	"context"
	"errors"
	"testing"

	"pet-directory/internal/domain/pets"
)

func TestPetRepo_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewPetRepo()

	for i, name := range []string{"Milo", "Luna", "Rex"} {
		p, err := repo.Create(context.Background(), pets.Pet{Name: name, Species: "Dog"})
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if want := int64(i + 1); p.ID != want {
			t.Fatalf("expected id %d for %s, got %d", want, name, p.ID)
		}
	}
}

func TestPetRepo_GetByID(t *testing.T) {
	repo := NewPetRepo()

	created, err := repo.Create(context.Background(), pets.Pet{Name: "Jodi", Species: "Chicken"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Jodi" || got.Species != "Chicken" {
		t.Fatalf("unexpected pet: %+v", got)
	}

	if _, err := repo.GetByID(context.Background(), 1000); !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestPetRepo_ListBySpecies_OrderedByID(t *testing.T) {
	repo := NewPetRepo()

	for _, p := range []pets.Pet{
		{Name: "Rex", Species: "Dog"},
		{Name: "Luna", Species: "Cat"},
		{Name: "Milo", Species: "Dog"},
	} {
		if _, err := repo.Create(context.Background(), p); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	dogs, err := repo.ListBySpecies(context.Background(), "Dog")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(dogs) != 2 {
		t.Fatalf("expected 2 dogs, got %d", len(dogs))
	}
	if dogs[0].ID >= dogs[1].ID {
		t.Fatalf("expected ascending ids, got %d then %d", dogs[0].ID, dogs[1].ID)
	}

	none, err := repo.ListBySpecies(context.Background(), "Whale")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected empty list, got %d", len(none))
	}
}
