package service

import (
	"context"
	"sync"
	"time"

	"github.com/NattanSilva/curd-user-and-admin/internal/domain"
)

// UserPatch is a partial update payload. Nil fields were absent from the
// request and leave the stored value untouched.
type UserPatch struct {
	Name     *string
	Email    *string
	Password *string
	IsAdm    *bool
}

// UserService reads and mutates user records. Updates merge a partial
// payload into the stored record under a field-level admission policy.
type UserService struct {
	users  domain.UserRepository
	hasher *PasswordHasher

	// mu serializes the read-modify-write sequences in Update and Delete so
	// overlapping requests against the same record cannot lose writes.
	mu sync.Mutex
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository, hasher *PasswordHasher) *UserService {
	return &UserService{
		users:  users,
		hasher: hasher,
	}
}

// List returns every user record.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Get retrieves a single user by id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// Update merges the patch into the stored record:
//   - a present password is re-hashed, never stored raw;
//   - the isAdm flag is skipped no matter who the caller is, role changes
//     are not possible through this operation;
//   - other fields overwrite the stored value only when they differ.
//
// updated_at is stamped only when something actually changed.
func (s *UserService) Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false

	if patch.Name != nil && *patch.Name != user.Name {
		user.Name = *patch.Name
		changed = true
	}
	if patch.Email != nil && *patch.Email != user.Email {
		user.Email = *patch.Email
		changed = true
	}
	if patch.Password != nil {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
		changed = true
	}

	if !changed {
		return user, nil
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Delete removes a user record. An unknown id reports domain.ErrNotFound.
func (s *UserService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.users.Delete(ctx, id)
}
