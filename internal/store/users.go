package store

import (
	"context"

	"github.com/jonathan/placement-portal/internal/types"
)

// GetUser returns the user with the given email, if any.
func (s *Store) GetUser(email string) (types.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return types.User{}, false
}

// GetUserByID returns the user with the given id, if any.
func (s *Store) GetUserByID(id string) (types.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return types.User{}, false
}

// CreateUser appends the user unconditionally and persists the collection.
// Email uniqueness is the caller's responsibility; the store does not check.
func (s *Store) CreateUser(ctx context.Context, user types.User) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, user)
	if err := s.persist(ctx, keyUsers, s.users); err != nil {
		return types.User{}, err
	}
	return user, nil
}

// UpdateUser replaces the record sharing the user's id and persists. A user
// with an unknown id is left unstored without error, matching the replace-
// by-map semantics of the original service.
func (s *Store) UpdateUser(ctx context.Context, user types.User) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, u := range s.users {
		if u.ID == user.ID {
			s.users[i] = user
			break
		}
	}
	if err := s.persist(ctx, keyUsers, s.users); err != nil {
		return types.User{}, err
	}
	return user, nil
}
