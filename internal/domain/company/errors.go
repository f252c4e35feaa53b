package company

import "errors"

var (
	ErrCompanyNotFound        = errors.New("company not found")
	ErrCompanyDomainExists    = errors.New("company domain already registered")
	ErrInvalidDomainFormat    = errors.New("invalid company domain format")
	ErrCompanyHasUsers        = errors.New("company still has users assigned")
	ErrSettingsNotFound       = errors.New("checkup settings not found")
	ErrRecommendationNotFound = errors.New("recommendation not found")
)
