package pets

import (
	"context"
	"errors"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]Pet
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) (Pet, error) {
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListBySpecies(ctx context.Context, species string) ([]Pet, error) {
	out := make([]Pet, 0)
	for id := int64(1); id <= r.nextID; id++ {
		if p, ok := r.byID[id]; ok && p.Species == species {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestService_Register_AssignsIdentityAndTrims(t *testing.T) {
	svc := NewService(newTestRepo())

	p, err := svc.Register(context.Background(), RegisterInput{
		Name:    "  Jodi ",
		Species: "Chicken",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != 1 {
		t.Fatalf("expected id assigned by storage, got %d", p.ID)
	}
	if p.Name != "Jodi" {
		t.Fatalf("expected trimmed name, got %q", p.Name)
	}
	if p.Microchip != nil {
		t.Fatalf("expected nil microchip, got %v", *p.Microchip)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps set")
	}
}

func TestService_Register_RejectsEmptyFields(t *testing.T) {
	svc := NewService(newTestRepo())

	cases := []RegisterInput{
		{Name: "", Species: "Dog"},
		{Name: "   ", Species: "Dog"},
		{Name: "Rex", Species: ""},
		{Name: "Rex", Species: "  "},
	}
	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", in, err)
		}
	}
}

func TestService_GetByID_Miss(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.GetByID(context.Background(), 1000); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_ListBySpecies(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	for _, in := range []RegisterInput{
		{Name: "Milo", Species: "Dog"},
		{Name: "Luna", Species: "Cat"},
		{Name: "Rex", Species: "Dog"},
	} {
		if _, err := svc.Register(context.Background(), in); err != nil {
			t.Fatalf("register: %v", err)
		}
	}

	dogs, err := svc.ListBySpecies(context.Background(), "Dog")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dogs) != 2 {
		t.Fatalf("expected 2 dogs, got %d", len(dogs))
	}

	whales, err := svc.ListBySpecies(context.Background(), "Whale")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(whales) != 0 {
		t.Fatalf("expected 0 whales, got %d", len(whales))
	}
}
