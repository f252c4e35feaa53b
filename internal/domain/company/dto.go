package company

import (
	"github.com/serenus-health/wellness-admin-go/internal/pkg/validator"
)

type RegisterCompanyRequest struct {
	Name           string  `json:"name"`
	Domain         string  `json:"domain"`
	ContactPerson  string  `json:"contact_person"`
	CorporateEmail string  `json:"corporate_email"`
	LandlinePhone  *string `json:"landline_phone,omitempty"`
	MobilePhone    string  `json:"mobile_phone"`
	Logo           string  `json:"logo,omitempty"`
	Plan           string  `json:"plan"`
	MaxUsers       int     `json:"max_users"`
}

func (r *RegisterCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Domain) {
		errs = append(errs, validator.ValidationError{
			Field:   "domain",
			Message: "domain is required",
		})
	}
	if validator.IsEmpty(r.ContactPerson) {
		errs = append(errs, validator.ValidationError{
			Field:   "contact_person",
			Message: "contact_person is required",
		})
	}
	if validator.IsEmpty(r.CorporateEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "corporate_email",
			Message: "corporate_email is required",
		})
	} else if !validator.IsValidEmail(r.CorporateEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "corporate_email",
			Message: "invalid email format",
		})
	}
	if validator.IsEmpty(r.MobilePhone) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile_phone",
			Message: "mobile_phone is required",
		})
	}
	if validator.IsEmpty(r.Plan) {
		errs = append(errs, validator.ValidationError{
			Field:   "plan",
			Message: "plan is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateCompanyRequest struct {
	ID            string  `json:"id"`
	Name          *string `json:"name,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	LandlinePhone *string `json:"landline_phone,omitempty"`
	MobilePhone   *string `json:"mobile_phone,omitempty"`
	Logo          *string `json:"logo,omitempty"`
	Plan          *string `json:"plan,omitempty"`
	MaxUsers      *int    `json:"max_users,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

func (r *UpdateCompanyRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name cannot be blank",
		})
	}
	if r.MaxUsers != nil && *r.MaxUsers < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_users",
			Message: "max_users cannot be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SaveCheckupSettingsRequest struct {
	CompanyID            string `json:"company_id"`
	NormalIntervalDays   int    `json:"normal_interval_days"`
	SevereIntervalDays   int    `json:"severe_interval_days"`
	AutoRemindersEnabled bool   `json:"auto_reminders_enabled"`
}

func (r *SaveCheckupSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.NormalIntervalDays < MinIntervalDays || r.NormalIntervalDays > MaxNormalIntervalDays {
		errs = append(errs, validator.ValidationError{
			Field:   "normal_interval_days",
			Message: "normal_interval_days must be between 1 and 365",
		})
	}
	if r.SevereIntervalDays < MinIntervalDays || r.SevereIntervalDays > MaxSevereIntervalDays {
		errs = append(errs, validator.ValidationError{
			Field:   "severe_interval_days",
			Message: "severe_interval_days must be between 1 and 90",
		})
	}
	if len(errs) == 0 && r.SevereIntervalDays >= r.NormalIntervalDays {
		errs = append(errs, validator.ValidationError{
			Field:   "severe_interval_days",
			Message: "severe_interval_days must be below normal_interval_days",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SaveRecommendationRequest struct {
	ID         string             `json:"id,omitempty"` // empty = create, set = update
	CompanyID  string             `json:"company_id"`
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	Type       RecommendationType `json:"type"`
	OrderIndex int                `json:"order_index"`
}

func (r *SaveRecommendationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Content) {
		errs = append(errs, validator.ValidationError{
			Field:   "content",
			Message: "content is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
