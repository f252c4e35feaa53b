package plan

import (
	"time"

	"github.com/shopspring/decimal"
)

// Periodicity is the billing cadence of a plan.
type Periodicity string

const (
	PeriodicityMonthly Periodicity = "mensal"
	PeriodicityYearly  Periodicity = "anual"
)

// SubscriptionPlan is a billable tier offered to companies, independent of
// any single company.
type SubscriptionPlan struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Value       decimal.Decimal `json:"value"` // > 0
	Periodicity Periodicity     `json:"periodicity"`
	Features    []string        `json:"features"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
	Description *string         `json:"description,omitempty"`
}
