package pets

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID  map[string]Pet
	calls int
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p Pet) error {
	r.calls++
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Pet, error) {
	r.calls++
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) List(ctx context.Context, f ListFilter) ([]Pet, error) {
	r.calls++
	out := make([]Pet, 0)
	for _, p := range r.byID {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, id string, patch Patch, at time.Time) (Pet, error) {
	r.calls++
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	p = patch.Apply(p)
	p.UpdatedAt = at
	r.byID[id] = p
	return p, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) (Pet, error) {
	r.calls++
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	delete(r.byID, id)
	return p, nil
}

func validInput(name string) CreateInput {
	return CreateInput{
		Name:     name,
		Type:     "Dog",
		Breed:    "Labrador",
		Age:      "2 years",
		Location: "Lima",
		Bio:      "Friendly",
		Image:    "https://img.example/rex.jpg",
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_AppliesDefaults(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 1, 10, 9, 0, 0, 123456789, time.FixedZone("x", -5*3600))
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), validInput("  Rex "))
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("expected generated id")
	}
	if p.Name != "Rex" {
		t.Fatalf("expected trimmed name, got %q", p.Name)
	}
	if p.Gender != GenderUnknown || p.Size != SizeMedium || p.AdoptionStatus != StatusAvailable {
		t.Fatalf("unexpected defaults: %s/%s/%s", p.Gender, p.Size, p.AdoptionStatus)
	}
	want := now.UTC().Truncate(time.Microsecond)
	if !p.CreatedAt.Equal(want) || p.CreatedAt.Location() != time.UTC || p.UpdatedAt != p.CreatedAt {
		t.Fatalf("expected UTC microsecond timestamps, got %v", p.CreatedAt)
	}
	if _, ok := repo.byID[p.ID]; !ok {
		t.Fatalf("expected pet stored")
	}
}

func TestService_Create_InvalidNeverReachesRepo(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	in := validInput("Rex")
	in.Bio = "   "
	in.Size = "Huge"

	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || len(verr.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("repo must not be called on invalid input")
	}
}

func TestService_MalformedID_NeverReachesRepo(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	name := "x"
	if _, err := svc.GetByID(ctx, "abc"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("GetByID: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Update(ctx, "abc", UpdateInput{Name: &name}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Update: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Delete(ctx, "abc"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Delete: expected ErrInvalidInput, got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("repo must not be called with malformed id")
	}
}

func TestService_ListAvailable_HidesOtherStatuses(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	rex, _ := svc.Create(ctx, validInput("Rex"))
	luna, _ := svc.Create(ctx, validInput("Luna"))

	adopted := string(StatusAdopted)
	if _, err := svc.Update(ctx, luna.ID, UpdateInput{AdoptionStatus: &adopted}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	items, err := svc.ListAvailable(ctx, "", "")
	if err != nil {
		t.Fatalf("ListAvailable: %v", err)
	}
	if len(items) != 1 || items[0].ID != rex.ID {
		t.Fatalf("expected only Rex, got %#v", items)
	}

	all, err := svc.ListAll(ctx, nil)
	if err != nil || len(all) != 2 {
		t.Fatalf("expected 2 pets for admin listing, got %d (%v)", len(all), err)
	}
}

func TestService_ListAvailable_TypeAndQuery(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, _ = svc.Create(ctx, validInput("Rex"))
	cat := validInput("Michi")
	cat.Type = "Cat"
	cat.Breed = "Siamese"
	_, _ = svc.Create(ctx, cat)

	items, _ := svc.ListAvailable(ctx, "Cat", "")
	if len(items) != 1 || items[0].Name != "Michi" {
		t.Fatalf("expected Michi by type, got %#v", items)
	}
	items, _ = svc.ListAvailable(ctx, "cat", "")
	if len(items) != 0 {
		t.Fatalf("type filter must be exact, got %#v", items)
	}
	items, _ = svc.ListAvailable(ctx, "", "LABRA")
	if len(items) != 1 || items[0].Name != "Rex" {
		t.Fatalf("expected Rex by breed query, got %#v", items)
	}
}

func TestService_Update_PartialAndNotFound(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	t0 := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return t0 }
	p, _ := svc.Create(ctx, validInput("Rex"))

	svc.now = func() time.Time { return t0.Add(time.Minute) }
	loc := "Cusco"
	got, err := svc.Update(ctx, p.ID, UpdateInput{Location: &loc})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Location != "Cusco" || got.Name != "Rex" || got.Breed != "Labrador" {
		t.Fatalf("expected only location changed, got %#v", got)
	}
	if !got.UpdatedAt.Equal(t0.Add(time.Minute)) || !got.CreatedAt.Equal(t0) {
		t.Fatalf("unexpected timestamps: %v / %v", got.CreatedAt, got.UpdatedAt)
	}

	if _, err := svc.Update(ctx, "7b0e2f7e-9b84-4f0c-8a4e-000000000000", UpdateInput{Location: &loc}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Delete_ReturnsRecord(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	p, _ := svc.Create(ctx, validInput("Rex"))

	deleted, err := svc.Delete(ctx, p.ID)
	if err != nil || deleted.ID != p.ID {
		t.Fatalf("Delete: %v %#v", err, deleted)
	}
	if _, err := svc.Delete(ctx, p.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
