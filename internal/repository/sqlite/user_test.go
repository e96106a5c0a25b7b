package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NattanSilva/curd-user-and-admin/internal/domain"
	"github.com/NattanSilva/curd-user-and-admin/internal/repository/sqlite"
)

func createTestUser(t *testing.T, repo *sqlite.UserRepository, email string) *domain.User {
	t.Helper()
	user := &domain.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "hashedpw",
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return user
}

func TestUserRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()

	user := createTestUser(t, repo, "test@example.com")

	if user.ID == "" {
		t.Fatal("expected user ID to be set after create")
	}
	if user.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
	if !user.UpdatedAt.Equal(user.CreatedAt) {
		t.Fatal("expected UpdatedAt to equal CreatedAt at creation")
	}
}

func TestUserRepository_Create_AssignsUniqueIDs(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()

	u1 := createTestUser(t, repo, "a@example.com")
	u2 := createTestUser(t, repo, "b@example.com")

	if u1.ID == u2.ID {
		t.Fatalf("expected distinct ids, both were %q", u1.ID)
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	createTestUser(t, repo, "dup@example.com")

	err := repo.Create(ctx, &domain.User{
		Name:         "User 2",
		Email:        "dup@example.com",
		PasswordHash: "hash2",
	})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user := createTestUser(t, repo, "byid@example.com")

	found, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Email != user.Email {
		t.Fatalf("expected email %q, got %q", user.Email, found.Email)
	}

	_, err = repo.GetByID(ctx, "no-such-id")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user := createTestUser(t, repo, "byemail@example.com")

	found, err := repo.GetByEmail(ctx, "byemail@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if found.ID != user.ID {
		t.Fatalf("expected id %q, got %q", user.ID, found.ID)
	}

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	createTestUser(t, repo, "first@example.com")
	createTestUser(t, repo, "second@example.com")

	users, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUserRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user := createTestUser(t, repo, "update@example.com")

	user.Name = "Renamed"
	user.UpdatedAt = time.Now().UTC().Add(time.Second)
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("Update: %v", err)
	}

	found, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Name != "Renamed" {
		t.Fatalf("expected name Renamed, got %q", found.Name)
	}
	if !found.UpdatedAt.After(found.CreatedAt) {
		t.Fatal("expected UpdatedAt to advance past CreatedAt")
	}
}

func TestUserRepository_Update_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	createTestUser(t, repo, "taken@example.com")
	user := createTestUser(t, repo, "mine@example.com")

	user.Email = "taken@example.com"
	err := repo.Update(ctx, user)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()

	err := repo.Update(context.Background(), &domain.User{ID: "no-such-id", Email: "x@example.com"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()
	ctx := context.Background()

	user := createTestUser(t, repo, "delete@example.com")

	if err := repo.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	_, err := repo.GetByID(ctx, user.ID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := db.Users()

	err := repo.Delete(context.Background(), "no-such-id")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
