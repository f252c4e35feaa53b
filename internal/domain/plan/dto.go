package plan

import (
	"github.com/shopspring/decimal"

	"github.com/serenus-health/wellness-admin-go/internal/pkg/validator"
)

type SavePlanRequest struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Value       decimal.Decimal `json:"value"`
	Periodicity Periodicity     `json:"periodicity"`
	Features    []string        `json:"features"`
	IsActive    *bool           `json:"is_active,omitempty"`
	Description *string         `json:"description,omitempty"`
}

func (r *SavePlanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !r.Value.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "value",
			Message: "value must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
