package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/recipebox/recipe-service/internal/core/domain"
	"github.com/recipebox/recipe-service/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubRecipeRepo struct {
	byID    map[string]*domain.Recipe
	order   []string
	nextID  int
	listErr error
}

func newStubRecipeRepo() *stubRecipeRepo {
	return &stubRecipeRepo{byID: make(map[string]*domain.Recipe)}
}

func (r *stubRecipeRepo) Create(_ context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	r.nextID++
	clone := *rec
	clone.ID = fmt.Sprintf("recipe_%d", r.nextID)
	r.byID[clone.ID] = &clone
	r.order = append(r.order, clone.ID)
	out := clone
	return &out, nil
}

func (r *stubRecipeRepo) FindByID(_ context.Context, id string) (*domain.Recipe, error) {
	rec, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRecipeNotFound
	}
	clone := *rec
	return &clone, nil
}

func (r *stubRecipeRepo) List(_ context.Context) ([]*domain.Recipe, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.Recipe, 0, len(r.order))
	for _, id := range r.order {
		if rec, ok := r.byID[id]; ok {
			clone := *rec
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubRecipeRepo) ListByAuthor(ctx context.Context, authorID string) ([]*domain.Recipe, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Recipe, 0, len(all))
	for _, rec := range all {
		if rec.AuthorID == authorID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *stubRecipeRepo) Update(_ context.Context, rec *domain.Recipe) error {
	if _, ok := r.byID[rec.ID]; !ok {
		return domain.ErrRecipeNotFound
	}
	clone := *rec
	r.byID[rec.ID] = &clone
	return nil
}

func (r *stubRecipeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrRecipeNotFound
	}
	delete(r.byID, id)
	return nil
}

func pancakes() ports.RecipeInput {
	return ports.RecipeInput{
		Title:        "  Pancakes ",
		Description:  "Fluffy",
		Ingredients:  []string{"flour", "  ", " milk ", "eggs"},
		Instructions: "Mix and fry.",
	}
}

// ---------------------------------------------------------------------------
// RecipeService tests
// ---------------------------------------------------------------------------

func TestRecipeService_Create_Success(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := NewRecipeService(repo, discardLogger)

	rec, err := svc.Create(context.Background(), "user_1", pancakes())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID == "" || rec.AuthorID != "user_1" {
		t.Fatalf("unexpected recipe: %+v", rec)
	}
	if rec.Title != "Pancakes" {
		t.Errorf("expected trimmed title, got %q", rec.Title)
	}
	if len(rec.Ingredients) != 3 || rec.Ingredients[1] != "milk" {
		t.Errorf("expected cleaned ingredients, got %q", rec.Ingredients)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("CreatedAt must not be zero")
	}
}

func TestRecipeService_Create_RequiresAuthor(t *testing.T) {
	svc := NewRecipeService(newStubRecipeRepo(), discardLogger)

	if _, err := svc.Create(context.Background(), "", pancakes()); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestRecipeService_Update_OnlyAuthor(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := NewRecipeService(repo, discardLogger)
	rec, _ := svc.Create(context.Background(), "user_1", pancakes())

	in := pancakes()
	in.Title = "Crepes"

	if _, err := svc.Update(context.Background(), rec.ID, "user_2", in); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.byID[rec.ID].Title != "Pancakes" {
		t.Fatalf("non-author update must not persist")
	}

	updated, err := svc.Update(context.Background(), rec.ID, "user_1", in)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Crepes" || repo.byID[rec.ID].Title != "Crepes" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestRecipeService_Update_NotFound(t *testing.T) {
	svc := NewRecipeService(newStubRecipeRepo(), discardLogger)

	if _, err := svc.Update(context.Background(), "missing", "user_1", pancakes()); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected ErrRecipeNotFound, got %v", err)
	}
}

func TestRecipeService_Delete(t *testing.T) {
	repo := newStubRecipeRepo()
	svc := NewRecipeService(repo, discardLogger)
	rec, _ := svc.Create(context.Background(), "user_1", pancakes())

	if err := svc.Delete(context.Background(), rec.ID, "user_2"); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), rec.ID, "user_1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), rec.ID); !errors.Is(err, domain.ErrRecipeNotFound) {
		t.Fatalf("expected recipe to be gone, got %v", err)
	}
}

func TestRecipeService_List_WrapsStoreError(t *testing.T) {
	repo := newStubRecipeRepo()
	boom := errors.New("boom")
	repo.listErr = boom
	svc := NewRecipeService(repo, discardLogger)

	if _, err := svc.List(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// UserService tests
// ---------------------------------------------------------------------------

func TestUserService_GetProfile(t *testing.T) {
	users := newStubUserRepo()
	recipes := newStubRecipeRepo()
	auth := newTestAuthService(users)
	owner := register(t, auth, "a@x.com", "hunter2")
	other := register(t, auth, "b@x.com", "hunter2")

	recipeSvc := NewRecipeService(recipes, discardLogger)
	_, _ = recipeSvc.Create(context.Background(), owner.ID, pancakes())
	_, _ = recipeSvc.Create(context.Background(), other.ID, pancakes())
	_, _ = recipeSvc.Create(context.Background(), owner.ID, pancakes())

	svc := NewUserService(users, recipes, discardLogger)
	profile, err := svc.GetProfile(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("get profile failed: %v", err)
	}
	if profile.User.ID != owner.ID {
		t.Fatalf("unexpected user: %+v", profile.User)
	}
	if len(profile.Recipes) != 2 {
		t.Fatalf("expected 2 recipes, got %d", len(profile.Recipes))
	}
	for _, r := range profile.Recipes {
		if r.AuthorID != owner.ID {
			t.Fatalf("profile leaked a recipe by %s", r.AuthorID)
		}
	}
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), newStubRecipeRepo(), discardLogger)

	if _, err := svc.GetProfile(context.Background(), "nope"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ListUsers(t *testing.T) {
	users := newStubUserRepo()
	auth := newTestAuthService(users)
	register(t, auth, "a@x.com", "p")
	register(t, auth, "b@x.com", "p")

	svc := NewUserService(users, newStubRecipeRepo(), discardLogger)
	list, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 users, got %d", len(list))
	}
}
