package memory

import (
	"context"

	"go-jobboard-backend/internal/domain"
)

type userRepo struct {
	store *Store
}

func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepo{store: store}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	email := normalizeEmail(user.Email)
	for _, u := range s.users {
		if normalizeEmail(u.Email) == email {
			return domain.ErrEmailInUse
		}
	}

	if user.ID == "" {
		user.ID = nextID("user", idSet(s.users, func(u domain.User) string { return u.ID }))
	}
	s.users = append(s.users, *user)
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			out := u
			return &out, nil
		}
	}
	return nil, notFound("user", id)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = normalizeEmail(email)
	for _, u := range s.users {
		if normalizeEmail(u.Email) == email {
			out := u
			return &out, nil
		}
	}
	return nil, notFound("user", email)
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = *user
			return nil
		}
	}
	return notFound("user", user.ID)
}
