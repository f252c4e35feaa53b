package response

import (
	"errors"
	"net/http"

	"github.com/serenus-health/wellness-admin-go/internal/domain/auth"
	"github.com/serenus-health/wellness-admin-go/internal/domain/company"
	"github.com/serenus-health/wellness-admin-go/internal/domain/plan"
	"github.com/serenus-health/wellness-admin-go/internal/domain/user"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrUnauthenticated):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrSelfModification):
		Forbidden(w, "Cannot modify your own account")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrCompanyIDRequired):
		BadRequest(w, "Company ID is required", nil)

	// Company domain errors
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrCompanyDomainExists):
		Conflict(w, "Company domain already registered")
	case errors.Is(err, company.ErrCompanyHasUsers):
		Conflict(w, "Company still has users assigned")
	case errors.Is(err, company.ErrSettingsNotFound):
		NotFound(w, "Checkup settings not found")
	case errors.Is(err, company.ErrRecommendationNotFound):
		NotFound(w, "Recommendation not found")

	// Plan domain errors
	case errors.Is(err, plan.ErrPlanNotFound):
		NotFound(w, "Subscription plan not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
