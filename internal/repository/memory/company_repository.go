package memory

import (
	"context"

	"github.com/serenus-health/wellness-admin-go/internal/domain/company"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/validator"
)

type CompanyRepositoryImpl struct {
	store *Store
}

func NewCompanyRepository(store *Store) company.CompanyRepository {
	return &CompanyRepositoryImpl{store: store}
}

// GetByID implements company.CompanyRepository.
func (r *CompanyRepositoryImpl) GetByID(ctx context.Context, id string) (company.Company, error) {
	s := r.store
	s.companiesMu.RLock()
	defer s.companiesMu.RUnlock()

	for _, c := range s.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return company.Company{}, company.ErrCompanyNotFound
}

// GetAll implements company.CompanyRepository. Order is insertion order.
func (r *CompanyRepositoryImpl) GetAll(ctx context.Context) ([]company.Company, error) {
	s := r.store
	s.companiesMu.RLock()
	defer s.companiesMu.RUnlock()

	out := make([]company.Company, len(s.companies))
	copy(out, s.companies)
	return out, nil
}

// ExistsByDomain implements company.CompanyRepository. Case-insensitive.
func (r *CompanyRepositoryImpl) ExistsByDomain(ctx context.Context, domain string) (bool, error) {
	s := r.store
	s.companiesMu.RLock()
	defer s.companiesMu.RUnlock()

	key := validator.NormalizeDomain(domain)
	for _, c := range s.companies {
		if validator.NormalizeDomain(c.Domain) == key {
			return true, nil
		}
	}
	return false, nil
}

// Create implements company.CompanyRepository.
func (r *CompanyRepositoryImpl) Create(ctx context.Context, newCompany company.Company) (company.Company, error) {
	s := r.store
	s.companiesMu.Lock()
	defer s.companiesMu.Unlock()

	key := validator.NormalizeDomain(newCompany.Domain)
	for _, c := range s.companies {
		if validator.NormalizeDomain(c.Domain) == key {
			return company.Company{}, company.ErrCompanyDomainExists
		}
	}

	s.companies = append(s.companies, newCompany)
	s.persistCompanies()
	return newCompany, nil
}

// Update implements company.CompanyRepository.
func (r *CompanyRepositoryImpl) Update(ctx context.Context, updated company.Company) (company.Company, error) {
	s := r.store
	s.companiesMu.Lock()
	defer s.companiesMu.Unlock()

	for i, c := range s.companies {
		if c.ID == updated.ID {
			s.companies[i] = updated
			s.persistCompanies()
			return updated, nil
		}
	}
	return company.Company{}, company.ErrCompanyNotFound
}

// Delete implements company.CompanyRepository. Settings and recommendations
// for the company go with it.
func (r *CompanyRepositoryImpl) Delete(ctx context.Context, id string) error {
	s := r.store
	s.companiesMu.Lock()
	defer s.companiesMu.Unlock()

	for i, c := range s.companies {
		if c.ID == id {
			s.companies = append(s.companies[:i], s.companies[i+1:]...)
			delete(s.settings, id)
			delete(s.recommendations, id)
			s.persistCompanies()
			return nil
		}
	}
	return company.ErrCompanyNotFound
}

// AdjustUserCount implements company.CompanyRepository. The counter is
// clamped at zero.
func (r *CompanyRepositoryImpl) AdjustUserCount(ctx context.Context, id string, delta int) error {
	s := r.store
	s.companiesMu.Lock()
	defer s.companiesMu.Unlock()

	for i := range s.companies {
		if s.companies[i].ID == id {
			next := s.companies[i].CurrentUsers + delta
			if next < 0 {
				next = 0
			}
			s.companies[i].CurrentUsers = next
			s.persistCompanies()
			return nil
		}
	}
	return company.ErrCompanyNotFound
}

// GetSettings implements company.CompanyRepository.
func (r *CompanyRepositoryImpl) GetSettings(ctx context.Context, companyID string) (company.CheckupSettings, error) {
	s := r.store
	s.companiesMu.RLock()
	defer s.companiesMu.RUnlock()

	settings, ok := s.settings[companyID]
	if !ok {
		return company.CheckupSettings{}, company.ErrSettingsNotFound
	}
	return settings, nil
}

// UpsertSettings implements company.CompanyRepository.
func (r *CompanyRepositoryImpl) UpsertSettings(ctx context.Context, settings company.CheckupSettings) (company.CheckupSettings, error) {
	s := r.store
	s.companiesMu.Lock()
	defer s.companiesMu.Unlock()

	s.settings[settings.CompanyID] = settings
	return settings, nil
}

// DeleteSettings implements company.CompanyRepository.
func (r *CompanyRepositoryImpl) DeleteSettings(ctx context.Context, companyID string) error {
	s := r.store
	s.companiesMu.Lock()
	defer s.companiesMu.Unlock()

	delete(s.settings, companyID)
	return nil
}

// GetRecommendations implements company.CompanyRepository. Order is append
// order; OrderIndex is caller-assigned and never applied as a sort key here.
func (r *CompanyRepositoryImpl) GetRecommendations(ctx context.Context, companyID string) ([]company.Recommendation, error) {
	s := r.store
	s.companiesMu.RLock()
	defer s.companiesMu.RUnlock()

	recs, ok := s.recommendations[companyID]
	if !ok {
		return nil, company.ErrRecommendationNotFound
	}
	out := make([]company.Recommendation, len(recs))
	copy(out, recs)
	return out, nil
}

// UpsertRecommendation implements company.CompanyRepository.
func (r *CompanyRepositoryImpl) UpsertRecommendation(ctx context.Context, rec company.Recommendation) (company.Recommendation, error) {
	s := r.store
	s.companiesMu.Lock()
	defer s.companiesMu.Unlock()

	recs := s.recommendations[rec.CompanyID]
	for i := range recs {
		if recs[i].ID == rec.ID {
			recs[i] = rec
			s.recommendations[rec.CompanyID] = recs
			return rec, nil
		}
	}
	s.recommendations[rec.CompanyID] = append(recs, rec)
	return rec, nil
}

// DeleteRecommendation implements company.CompanyRepository.
func (r *CompanyRepositoryImpl) DeleteRecommendation(ctx context.Context, companyID, id string) error {
	s := r.store
	s.companiesMu.Lock()
	defer s.companiesMu.Unlock()

	recs, ok := s.recommendations[companyID]
	if !ok || len(recs) == 0 {
		return company.ErrRecommendationNotFound
	}
	for i := range recs {
		if recs[i].ID == id {
			s.recommendations[companyID] = append(recs[:i], recs[i+1:]...)
			return nil
		}
	}
	return company.ErrRecommendationNotFound
}

// DeleteRecommendations implements company.CompanyRepository.
func (r *CompanyRepositoryImpl) DeleteRecommendations(ctx context.Context, companyID string) error {
	s := r.store
	s.companiesMu.Lock()
	defer s.companiesMu.Unlock()

	delete(s.recommendations, companyID)
	return nil
}
