package company

import (
	"context"
)

// CompanyRepository owns companies plus their checkup settings and
// recommendations. Domain lookups are case-insensitive.
type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (Company, error)
	GetAll(ctx context.Context) ([]Company, error)
	ExistsByDomain(ctx context.Context, domain string) (bool, error)
	Create(ctx context.Context, newCompany Company) (Company, error)
	Update(ctx context.Context, updated Company) (Company, error)
	Delete(ctx context.Context, id string) error
	// AdjustUserCount moves CurrentUsers by delta, clamped at zero.
	AdjustUserCount(ctx context.Context, id string, delta int) error

	GetSettings(ctx context.Context, companyID string) (CheckupSettings, error)
	// UpsertSettings inserts or replaces the company's settings row.
	UpsertSettings(ctx context.Context, settings CheckupSettings) (CheckupSettings, error)
	DeleteSettings(ctx context.Context, companyID string) error

	GetRecommendations(ctx context.Context, companyID string) ([]Recommendation, error)
	// UpsertRecommendation appends when the ID is new to the company's list
	// and replaces in place otherwise. Order of the list is append order.
	UpsertRecommendation(ctx context.Context, rec Recommendation) (Recommendation, error)
	DeleteRecommendation(ctx context.Context, companyID, id string) error
	DeleteRecommendations(ctx context.Context, companyID string) error
}
