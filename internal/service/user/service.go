package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/serenus-health/wellness-admin-go/internal/domain/company"
	"github.com/serenus-health/wellness-admin-go/internal/domain/user"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/validator"
)

// UserService is the single user-management surface: self registration and
// admin-side CRUD go through the same code path.
type UserService interface {
	Register(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	GetAll(ctx context.Context) ([]user.UserResponse, error)
	GetByID(ctx context.Context, id string) (user.UserResponse, error)
	Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error)
	// ToggleStatus and Delete refuse to act on the caller's own account.
	ToggleStatus(ctx context.Context, actorID, id string) (user.UserResponse, error)
	Delete(ctx context.Context, actorID, id string) error
}

type UserServiceImpl struct {
	users     user.UserRepository
	companies company.CompanyRepository
	logger    *slog.Logger
}

func NewUserService(users user.UserRepository, companies company.CompanyRepository, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		users:     users,
		companies: companies,
		logger:    logger,
	}
}

// Register implements UserService. Self registration and admin creation share
// the same semantics.
func (s *UserServiceImpl) Register(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	return s.Create(ctx, req)
}

// Create implements UserService. The target company is verified before any
// state changes, and its user counter moves together with the insert.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	email := validator.NormalizeEmail(req.Email)

	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.UserResponse{}, err
	}
	if exists {
		return user.UserResponse{}, user.ErrUserEmailExists
	}

	if req.CompanyID != nil {
		if _, err := s.companies.GetByID(ctx, *req.CompanyID); err != nil {
			return user.UserResponse{}, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, err
	}
	passwordHash := string(hash)

	avatar := req.Avatar
	if avatar == "" {
		avatar = "https://ui-avatars.com/api/?name=" + req.Name
	}

	newUser := user.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: &passwordHash,
		Role:         req.Role,
		CompanyID:    req.CompanyID,
		Department:   req.Department,
		Avatar:       avatar,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}

	created, err := s.users.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, err
	}

	if created.CompanyID != nil {
		if err := s.companies.AdjustUserCount(ctx, *created.CompanyID, 1); err != nil {
			s.logger.Warn("user: company counter not incremented", "company_id", *created.CompanyID, "error", err)
		}
	}

	return user.ToResponse(created), nil
}

// GetAll implements UserService. Insertion order.
func (s *UserServiceImpl) GetAll(ctx context.Context) ([]user.UserResponse, error) {
	all, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(all))
	for _, u := range all {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// GetByID implements UserService.
func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	found, err := s.users.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(found), nil
}

// Update implements UserService. Moving a user between companies reconciles
// both counters; changing the email re-keys the email index.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	current, err := s.users.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Email != nil {
		email := validator.NormalizeEmail(*req.Email)
		if email != validator.NormalizeEmail(current.Email) {
			exists, err := s.users.ExistsByEmail(ctx, email)
			if err != nil {
				return user.UserResponse{}, err
			}
			if exists {
				return user.UserResponse{}, user.ErrUserEmailExists
			}
		}
		current.Email = email
	}

	previousCompanyID := current.CompanyID
	if req.CompanyID != nil {
		if _, err := s.companies.GetByID(ctx, *req.CompanyID); err != nil {
			return user.UserResponse{}, err
		}
		current.CompanyID = req.CompanyID
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Role != nil {
		current.Role = *req.Role
	}
	if req.Department != nil {
		current.Department = req.Department
	}
	if req.Avatar != nil {
		current.Avatar = *req.Avatar
	}
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}
	now := time.Now()
	current.UpdatedAt = &now

	updated, err := s.users.Update(ctx, current)
	if err != nil {
		return user.UserResponse{}, err
	}

	s.reconcileCompanyCounters(ctx, previousCompanyID, updated.CompanyID)

	return user.ToResponse(updated), nil
}

// ToggleStatus implements UserService.
func (s *UserServiceImpl) ToggleStatus(ctx context.Context, actorID, id string) (user.UserResponse, error) {
	if actorID == id {
		return user.UserResponse{}, user.ErrSelfModification
	}

	current, err := s.users.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}

	current.IsActive = !current.IsActive
	now := time.Now()
	current.UpdatedAt = &now

	updated, err := s.users.Update(ctx, current)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(updated), nil
}

// Delete implements UserService. The former company's counter is
// decremented, clamped at zero.
func (s *UserServiceImpl) Delete(ctx context.Context, actorID, id string) error {
	if actorID == id {
		return user.ErrSelfModification
	}

	current, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	if current.CompanyID != nil {
		if err := s.companies.AdjustUserCount(ctx, *current.CompanyID, -1); err != nil {
			s.logger.Warn("user: company counter not decremented", "company_id", *current.CompanyID, "error", err)
		}
	}
	return nil
}

// reconcileCompanyCounters moves CurrentUsers when a user changed company.
func (s *UserServiceImpl) reconcileCompanyCounters(ctx context.Context, previous, next *string) {
	prevID := ""
	if previous != nil {
		prevID = *previous
	}
	nextID := ""
	if next != nil {
		nextID = *next
	}
	if prevID == nextID {
		return
	}

	if prevID != "" {
		if err := s.companies.AdjustUserCount(ctx, prevID, -1); err != nil {
			s.logger.Warn("user: company counter not decremented", "company_id", prevID, "error", err)
		}
	}
	if nextID != "" {
		if err := s.companies.AdjustUserCount(ctx, nextID, 1); err != nil {
			s.logger.Warn("user: company counter not incremented", "company_id", nextID, "error", err)
		}
	}
}
