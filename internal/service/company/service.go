package company

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/serenus-health/wellness-admin-go/internal/domain/company"
	"github.com/serenus-health/wellness-admin-go/internal/domain/user"
	"github.com/serenus-health/wellness-admin-go/internal/fixtures"
)

type CompanyService interface {
	Register(ctx context.Context, req company.RegisterCompanyRequest) (company.Company, error)
	GetAll(ctx context.Context) ([]company.Company, error)
	GetByID(ctx context.Context, id string) (company.Company, error)
	Update(ctx context.Context, req company.UpdateCompanyRequest) (company.Company, error)
	Delete(ctx context.Context, id string) error

	// GetOrCreateCheckupSettings returns nil (and no error) for an unknown
	// company; otherwise it returns the stored settings, lazily creating
	// the defaults on first access. Not a pure read.
	GetOrCreateCheckupSettings(ctx context.Context, companyID string) (*company.CheckupSettings, error)
	SaveCheckupSettings(ctx context.Context, req company.SaveCheckupSettingsRequest) (company.CheckupSettings, error)

	// GetOrCreateRecommendations returns an empty list for an unknown
	// company; otherwise it returns the stored entries, lazily seeding the
	// two defaults on first access. Not a pure read.
	GetOrCreateRecommendations(ctx context.Context, companyID string) ([]company.Recommendation, error)
	SaveRecommendation(ctx context.Context, req company.SaveRecommendationRequest) (company.Recommendation, error)
	DeleteRecommendation(ctx context.Context, companyID, id string) error
}

type CompanyServiceImpl struct {
	companies company.CompanyRepository
	users     user.UserRepository
	logger    *slog.Logger
}

func NewCompanyService(companies company.CompanyRepository, users user.UserRepository, logger *slog.Logger) CompanyService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CompanyServiceImpl{
		companies: companies,
		users:     users,
		logger:    logger,
	}
}

// Register implements CompanyService. A new company always gets a default
// checkup-settings row alongside it.
func (s *CompanyServiceImpl) Register(ctx context.Context, req company.RegisterCompanyRequest) (company.Company, error) {
	if err := req.Validate(); err != nil {
		return company.Company{}, err
	}

	exists, err := s.companies.ExistsByDomain(ctx, req.Domain)
	if err != nil {
		return company.Company{}, err
	}
	if exists {
		return company.Company{}, company.ErrCompanyDomainExists
	}

	now := time.Now()
	newCompany := company.Company{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Domain:         req.Domain,
		ContactPerson:  req.ContactPerson,
		CorporateEmail: req.CorporateEmail,
		LandlinePhone:  req.LandlinePhone,
		MobilePhone:    req.MobilePhone,
		Logo:           req.Logo,
		CreatedAt:      now,
		IsActive:       true,
		Plan:           req.Plan,
		MaxUsers:       req.MaxUsers,
		CurrentUsers:   0,
	}

	created, err := s.companies.Create(ctx, newCompany)
	if err != nil {
		return company.Company{}, err
	}

	if _, err := s.companies.UpsertSettings(ctx, s.defaultSettings(created.ID, now)); err != nil {
		s.logger.Warn("company: default settings not created", "company_id", created.ID, "error", err)
	}

	return created, nil
}

// GetAll implements CompanyService.
func (s *CompanyServiceImpl) GetAll(ctx context.Context) ([]company.Company, error) {
	return s.companies.GetAll(ctx)
}

// GetByID implements CompanyService.
func (s *CompanyServiceImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	return s.companies.GetByID(ctx, id)
}

// Update implements CompanyService.
func (s *CompanyServiceImpl) Update(ctx context.Context, req company.UpdateCompanyRequest) (company.Company, error) {
	if err := req.Validate(); err != nil {
		return company.Company{}, err
	}

	current, err := s.companies.GetByID(ctx, req.ID)
	if err != nil {
		return company.Company{}, err
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.ContactPerson != nil {
		current.ContactPerson = *req.ContactPerson
	}
	if req.LandlinePhone != nil {
		current.LandlinePhone = req.LandlinePhone
	}
	if req.MobilePhone != nil {
		current.MobilePhone = *req.MobilePhone
	}
	if req.Logo != nil {
		current.Logo = *req.Logo
	}
	if req.Plan != nil {
		current.Plan = *req.Plan
	}
	if req.MaxUsers != nil {
		current.MaxUsers = *req.MaxUsers
	}
	if req.IsActive != nil {
		current.IsActive = *req.IsActive
	}

	return s.companies.Update(ctx, current)
}

// Delete implements CompanyService. Deleting a company also removes its
// checkup settings and recommendations, but a company that still has users
// assigned cannot be deleted: the users would be left pointing at a tenant
// that no longer exists.
func (s *CompanyServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.companies.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.users.CountByCompany(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return company.ErrCompanyHasUsers
	}

	return s.companies.Delete(ctx, id)
}

// GetOrCreateCheckupSettings implements CompanyService.
func (s *CompanyServiceImpl) GetOrCreateCheckupSettings(ctx context.Context, companyID string) (*company.CheckupSettings, error) {
	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	settings, err := s.companies.GetSettings(ctx, companyID)
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, company.ErrSettingsNotFound) {
		return nil, err
	}

	created, err := s.companies.UpsertSettings(ctx, s.defaultSettings(companyID, time.Now()))
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// SaveCheckupSettings implements CompanyService. Upsert: an existing row
// keeps its ID and CreatedAt.
func (s *CompanyServiceImpl) SaveCheckupSettings(ctx context.Context, req company.SaveCheckupSettingsRequest) (company.CheckupSettings, error) {
	if _, err := s.companies.GetByID(ctx, req.CompanyID); err != nil {
		return company.CheckupSettings{}, err
	}

	if err := req.Validate(); err != nil {
		return company.CheckupSettings{}, err
	}

	now := time.Now()
	settings := company.CheckupSettings{
		ID:                   uuid.NewString(),
		CompanyID:            req.CompanyID,
		NormalIntervalDays:   req.NormalIntervalDays,
		SevereIntervalDays:   req.SevereIntervalDays,
		AutoRemindersEnabled: req.AutoRemindersEnabled,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if existing, err := s.companies.GetSettings(ctx, req.CompanyID); err == nil {
		settings.ID = existing.ID
		settings.CreatedAt = existing.CreatedAt
	}

	return s.companies.UpsertSettings(ctx, settings)
}

// GetOrCreateRecommendations implements CompanyService.
func (s *CompanyServiceImpl) GetOrCreateRecommendations(ctx context.Context, companyID string) ([]company.Recommendation, error) {
	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		if errors.Is(err, company.ErrCompanyNotFound) {
			return []company.Recommendation{}, nil
		}
		return nil, err
	}

	recs, err := s.companies.GetRecommendations(ctx, companyID)
	if err == nil {
		return recs, nil
	}
	if !errors.Is(err, company.ErrRecommendationNotFound) {
		return nil, err
	}

	seeded := fixtures.GetDefaultRecommendations(companyID, time.Now())
	for _, rec := range seeded {
		if _, err := s.companies.UpsertRecommendation(ctx, rec); err != nil {
			return nil, err
		}
	}
	return seeded, nil
}

// SaveRecommendation implements CompanyService. Create when the request has
// no ID, update otherwise; updating an ID the company does not have fails.
func (s *CompanyServiceImpl) SaveRecommendation(ctx context.Context, req company.SaveRecommendationRequest) (company.Recommendation, error) {
	if _, err := s.companies.GetByID(ctx, req.CompanyID); err != nil {
		return company.Recommendation{}, err
	}

	if err := req.Validate(); err != nil {
		return company.Recommendation{}, err
	}

	now := time.Now()
	rec := company.Recommendation{
		ID:         req.ID,
		CompanyID:  req.CompanyID,
		Title:      strings.TrimSpace(req.Title),
		Content:    strings.TrimSpace(req.Content),
		Type:       req.Type,
		OrderIndex: req.OrderIndex,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if rec.Type == "" {
		rec.Type = company.RecommendationGeneral
	}

	if req.ID == "" {
		rec.ID = uuid.NewString()
		return s.companies.UpsertRecommendation(ctx, rec)
	}

	existing, err := s.companies.GetRecommendations(ctx, req.CompanyID)
	if err != nil {
		return company.Recommendation{}, company.ErrRecommendationNotFound
	}
	found := false
	for _, e := range existing {
		if e.ID == req.ID {
			rec.CreatedAt = e.CreatedAt
			found = true
			break
		}
	}
	if !found {
		return company.Recommendation{}, company.ErrRecommendationNotFound
	}

	return s.companies.UpsertRecommendation(ctx, rec)
}

// DeleteRecommendation implements CompanyService.
func (s *CompanyServiceImpl) DeleteRecommendation(ctx context.Context, companyID, id string) error {
	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		return err
	}
	return s.companies.DeleteRecommendation(ctx, companyID, id)
}

func (s *CompanyServiceImpl) defaultSettings(companyID string, now time.Time) company.CheckupSettings {
	return company.CheckupSettings{
		ID:                   uuid.NewString(),
		CompanyID:            companyID,
		NormalIntervalDays:   company.DefaultNormalIntervalDays,
		SevereIntervalDays:   company.DefaultSevereIntervalDays,
		AutoRemindersEnabled: true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}
