package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/serenus-health/wellness-admin-go/internal/domain/auth"
	"github.com/serenus-health/wellness-admin-go/internal/domain/checkup"
	"github.com/serenus-health/wellness-admin-go/internal/domain/company"
	"github.com/serenus-health/wellness-admin-go/internal/domain/user"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/jwt"
	"github.com/serenus-health/wellness-admin-go/internal/repository/kv"
)

type AuthServiceImpl struct {
	users     user.UserRepository
	companies company.CompanyRepository
	verifier  auth.CredentialVerifier
	adapter   *kv.Adapter
	jwt       jwt.Service
	logger    *slog.Logger

	// sessionMu serializes login/logout/profile flows so a login can never
	// interleave with another mutation of the session user.
	sessionMu sync.RWMutex
	current   *user.User
}

func NewAuthService(
	users user.UserRepository,
	companies company.CompanyRepository,
	verifier auth.CredentialVerifier,
	adapter *kv.Adapter,
	jwtService jwt.Service,
	logger *slog.Logger,
) auth.AuthService {
	if logger == nil {
		logger = slog.Default()
	}

	s := &AuthServiceImpl{
		users:     users,
		companies: companies,
		verifier:  verifier,
		adapter:   adapter,
		jwt:       jwtService,
		logger:    logger,
	}
	s.restoreSession()
	return s
}

// restoreSession rehydrates the persisted session record, if any. A record
// that fails to parse or points at a user that no longer exists is discarded.
func (s *AuthServiceImpl) restoreSession() {
	stored, ok := s.adapter.LoadSession()
	if !ok {
		return
	}

	current, err := s.users.GetByID(context.Background(), stored.ID)
	if err != nil {
		s.logger.Warn("auth: discarding stale session record", "user_id", stored.ID)
		s.adapter.ClearSession()
		return
	}

	s.current = &current
	s.logger.Info("auth: session restored", "user_id", current.ID)
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	userData, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if !s.verifier.Verify(userData, req.Password) {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	// First login of a seeded account: backfill a single synthetic checkup
	// so the dashboard has a history to render.
	if len(userData.CheckupHistory) == 0 {
		userData = s.backfillCheckupHistory(ctx, userData)
		if userData, err = s.users.Update(ctx, userData); err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to persist checkup backfill: %w", err)
		}
	}

	var tokenResponse auth.TokenResponse
	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = s.jwt.GenerateAccessToken(userData.ID, userData.Email, userData.CompanyID, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = s.jwt.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}
	tokenResponse.User = user.ToResponse(userData)

	s.current = &userData
	s.adapter.SaveSession(userData)

	return tokenResponse, nil
}

// Logout implements auth.AuthService. Unconditional: no active session is
// not an error.
func (s *AuthServiceImpl) Logout(ctx context.Context, accessToken string) {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	if accessToken != "" {
		s.jwt.RevokeToken(accessToken)
	}
	s.current = nil
	s.adapter.ClearSession()
}

// IsAuthenticated implements auth.AuthService.
func (s *AuthServiceImpl) IsAuthenticated() bool {
	s.sessionMu.RLock()
	defer s.sessionMu.RUnlock()
	return s.current != nil
}

// CurrentUser implements auth.AuthService.
func (s *AuthServiceImpl) CurrentUser() (user.User, error) {
	s.sessionMu.RLock()
	defer s.sessionMu.RUnlock()

	if s.current == nil {
		return user.User{}, auth.ErrUnauthenticated
	}
	return *s.current, nil
}

// UpdateProfile implements auth.AuthService.
func (s *AuthServiceImpl) UpdateProfile(ctx context.Context, req auth.UpdateProfileRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	if s.current == nil {
		return user.UserResponse{}, auth.ErrUnauthenticated
	}

	userData := *s.current

	if req.CurrentPassword != nil {
		if !s.verifier.Verify(userData, *req.CurrentPassword) {
			return user.UserResponse{}, auth.ErrInvalidCredentials
		}
	}

	if req.Name != nil {
		userData.Name = *req.Name
	}
	if req.Email != nil {
		userData.Email = *req.Email
	}
	if req.Department != nil {
		userData.Department = req.Department
	}
	if req.Avatar != nil {
		userData.Avatar = *req.Avatar
	}
	now := time.Now()
	userData.UpdatedAt = &now

	updated, err := s.users.Update(ctx, userData)
	if err != nil {
		return user.UserResponse{}, err
	}

	s.current = &updated
	s.adapter.SaveSession(updated)

	return user.ToResponse(updated), nil
}

// SaveCheckupResult implements auth.AuthService. The result is appended to
// the session user's history; history entries are never modified afterwards.
func (s *AuthServiceImpl) SaveCheckupResult(ctx context.Context, result checkup.Result) error {
	s.sessionMu.Lock()
	defer s.sessionMu.Unlock()

	if s.current == nil {
		return auth.ErrUnauthenticated
	}

	userData := *s.current

	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	result.UserID = userData.ID
	if userData.CompanyID != nil {
		result.CompanyID = *userData.CompanyID
	}
	if result.Date.IsZero() {
		result.Date = time.Now()
	}
	if result.NextCheckupDate.IsZero() {
		result.NextCheckupDate = result.Date.AddDate(0, 0, s.intervalDaysFor(ctx, userData, result.SeverityLevel))
	}

	userData.CheckupHistory = append(userData.CheckupHistory, result)
	last := result.Date
	next := result.NextCheckupDate
	userData.LastCheckup = &last
	userData.NextCheckup = &next

	updated, err := s.users.Update(ctx, userData)
	if err != nil {
		return err
	}

	s.current = &updated
	s.adapter.SaveSession(updated)
	return nil
}

// HasPermission implements auth.AuthService. No session means no permission.
func (s *AuthServiceImpl) HasPermission(permission user.Permission) bool {
	s.sessionMu.RLock()
	defer s.sessionMu.RUnlock()

	if s.current == nil {
		return false
	}
	return user.HasPermission(s.current.Role, permission)
}

// intervalDaysFor picks the follow-up interval from the user's company
// settings, falling back to the portal defaults.
func (s *AuthServiceImpl) intervalDaysFor(ctx context.Context, u user.User, severity checkup.SeverityLevel) int {
	normal := company.DefaultNormalIntervalDays
	severe := company.DefaultSevereIntervalDays

	if u.CompanyID != nil {
		if settings, err := s.companies.GetSettings(ctx, *u.CompanyID); err == nil {
			normal = settings.NormalIntervalDays
			severe = settings.SevereIntervalDays
		}
	}

	if severity == checkup.SeveritySevere {
		return severe
	}
	return normal
}

// backfillCheckupHistory fabricates the single historical entry for a user
// that has never taken a checkup.
func (s *AuthServiceImpl) backfillCheckupHistory(ctx context.Context, u user.User) user.User {
	date := time.Now().AddDate(0, 0, -30)
	next := date.AddDate(0, 0, s.intervalDaysFor(ctx, u, checkup.SeverityNormal))

	companyID := ""
	if u.CompanyID != nil {
		companyID = *u.CompanyID
	}

	entry := checkup.Result{
		ID:            uuid.NewString(),
		UserID:        u.ID,
		CompanyID:     companyID,
		Date:          date,
		Scores:        map[string]float64{"geral": 7.5},
		Classifications: map[string]checkup.SeverityLevel{
			"geral": checkup.SeverityNormal,
		},
		OverallScore:    7.5,
		SeverityLevel:   checkup.SeverityNormal,
		NextCheckupDate: next,
	}

	u.CheckupHistory = []checkup.Result{entry}
	u.LastCheckup = &date
	u.NextCheckup = &next
	return u
}
