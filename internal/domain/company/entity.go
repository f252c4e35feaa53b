package company

import "time"

type Company struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Domain         string    `json:"domain"` // unique, compared case-insensitively
	ContactPerson  string    `json:"contact_person"`
	CorporateEmail string    `json:"corporate_email"`
	LandlinePhone  *string   `json:"landline_phone,omitempty"`
	MobilePhone    string    `json:"mobile_phone"`
	Logo           string    `json:"logo,omitempty"` // URL or embedded image data
	CreatedAt      time.Time `json:"created_at"`
	IsActive       bool      `json:"is_active"`
	Plan           string    `json:"plan"`
	MaxUsers       int       `json:"max_users"`
	// CurrentUsers is maintained incrementally and must always equal the
	// number of users whose CompanyID points here. Never negative.
	CurrentUsers int `json:"current_users"`
}

// Default checkup cadence applied when a company has no stored settings.
const (
	DefaultNormalIntervalDays = 90
	DefaultSevereIntervalDays = 30
)

// Checkup interval bounds.
const (
	MinIntervalDays       = 1
	MaxNormalIntervalDays = 365
	MaxSevereIntervalDays = 90
)

// CheckupSettings is the per-company checkup cadence. One row per company,
// created lazily on first access.
type CheckupSettings struct {
	ID                   string    `json:"id"`
	CompanyID            string    `json:"company_id"`
	NormalIntervalDays   int       `json:"normal_interval_days"`  // [1,365]
	SevereIntervalDays   int       `json:"severe_interval_days"`  // [1,90], strictly below normal
	AutoRemindersEnabled bool      `json:"auto_reminders_enabled"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// RecommendationType categorizes a wellness recommendation.
type RecommendationType string

const (
	RecommendationGeneral   RecommendationType = "general"
	RecommendationNutrition RecommendationType = "nutrition"
	RecommendationExercise  RecommendationType = "exercise"
	RecommendationMental    RecommendationType = "mental_health"
)

// Recommendation is a per-company wellness guidance entry. OrderIndex is
// caller-assigned and never renumbered; gaps and duplicates are allowed.
type Recommendation struct {
	ID         string             `json:"id"`
	CompanyID  string             `json:"company_id"`
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	Type       RecommendationType `json:"type"`
	OrderIndex int                `json:"order_index"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}
