package memory

import (
	"context"

	"github.com/serenus-health/wellness-admin-go/internal/domain/user"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/validator"
)

type UserRepositoryImpl struct {
	store *Store
}

func NewUserRepository(store *Store) user.UserRepository {
	return &UserRepositoryImpl{store: store}
}

// GetByEmail implements user.UserRepository. The lookup is case-insensitive.
func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	s := r.store
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	u, ok := s.usersByEmail[validator.NormalizeEmail(email)]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return *u, nil
}

// GetByID implements user.UserRepository.
func (r *UserRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	s := r.store
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	key, ok := s.userEmailByID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return *s.usersByEmail[key], nil
}

// GetAll implements user.UserRepository. Order is insertion order.
func (r *UserRepositoryImpl) GetAll(ctx context.Context) ([]user.User, error) {
	s := r.store
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	return s.snapshotUsers(), nil
}

// ExistsByEmail implements user.UserRepository.
func (r *UserRepositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	s := r.store
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	_, ok := s.usersByEmail[validator.NormalizeEmail(email)]
	return ok, nil
}

// Create implements user.UserRepository.
func (r *UserRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	s := r.store
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	key := validator.NormalizeEmail(newUser.Email)
	if _, exists := s.usersByEmail[key]; exists {
		return user.User{}, user.ErrUserEmailExists
	}

	s.indexUser(newUser)
	s.persistUsers()
	return newUser, nil
}

// Update implements user.UserRepository. When the email changed the email
// index is re-keyed in place, keeping the user's position in iteration order.
func (r *UserRepositoryImpl) Update(ctx context.Context, updated user.User) (user.User, error) {
	s := r.store
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	oldKey, ok := s.userEmailByID[updated.ID]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}

	newKey := validator.NormalizeEmail(updated.Email)
	if newKey != oldKey {
		if _, taken := s.usersByEmail[newKey]; taken {
			return user.User{}, user.ErrUserEmailExists
		}
		delete(s.usersByEmail, oldKey)
		for i, k := range s.userOrder {
			if k == oldKey {
				s.userOrder[i] = newKey
				break
			}
		}
	}

	copied := updated
	s.usersByEmail[newKey] = &copied
	s.userEmailByID[updated.ID] = newKey
	s.persistUsers()
	return updated, nil
}

// Delete implements user.UserRepository.
func (r *UserRepositoryImpl) Delete(ctx context.Context, id string) error {
	s := r.store
	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	if _, ok := s.userEmailByID[id]; !ok {
		return user.ErrUserNotFound
	}

	s.dropUserIndex(id)
	s.persistUsers()
	return nil
}

// CountByCompany implements user.UserRepository.
func (r *UserRepositoryImpl) CountByCompany(ctx context.Context, companyID string) (int, error) {
	s := r.store
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	count := 0
	for _, u := range s.usersByEmail {
		if u.CompanyID != nil && *u.CompanyID == companyID {
			count++
		}
	}
	return count, nil
}
