package user

import (
	"time"

	"github.com/serenus-health/wellness-admin-go/internal/domain/checkup"
)

type Role string

const (
	RoleSuperAdmin  Role = "super_admin" // Portal operator - full access
	RoleGerente     Role = "gerente"     // Company manager
	RoleColaborador Role = "colaborador" // Regular employee
)

// RoleDisplayName returns the human-readable label for a role.
func RoleDisplayName(role Role) string {
	switch role {
	case RoleSuperAdmin:
		return "Super Administrador"
	case RoleGerente:
		return "Gerente"
	case RoleColaborador:
		return "Colaborador"
	default:
		return string(role)
	}
}

type User struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	PasswordHash   *string          `json:"password_hash,omitempty"`
	Role           Role             `json:"role"`
	CompanyID      *string          `json:"company_id,omitempty"` // nil for super_admin
	Department     *string          `json:"department,omitempty"`
	Avatar         string           `json:"avatar,omitempty"`
	IsActive       bool             `json:"is_active"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      *time.Time       `json:"updated_at,omitempty"`
	LastCheckup    *time.Time       `json:"last_checkup,omitempty"`
	NextCheckup    *time.Time       `json:"next_checkup,omitempty"`
	CheckupHistory []checkup.Result `json:"checkup_history,omitempty"`
}

// IsSuperAdmin checks if user operates the portal itself
func (u *User) IsSuperAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// IsGerente checks if user manages a company
func (u *User) IsGerente() bool {
	return u.Role == RoleGerente
}

// BelongsTo checks if user is assigned to the given company
func (u *User) BelongsTo(companyID string) bool {
	return u.CompanyID != nil && *u.CompanyID == companyID
}

// CanManageRole checks whether a user with role r may manage users holding target.
func CanManageRole(r, target Role) bool {
	switch r {
	case RoleSuperAdmin:
		return true
	case RoleGerente:
		return target == RoleColaborador
	default:
		return false
	}
}

// CanCreateSuperAdmin checks whether a role may create super_admin accounts.
func CanCreateSuperAdmin(r Role) bool {
	return r == RoleSuperAdmin
}

// CanManageCompanyUsers checks whether a user may manage the given company's users.
func CanManageCompanyUsers(u *User, companyID string) bool {
	if u == nil {
		return false
	}
	if u.IsSuperAdmin() {
		return true
	}
	return u.IsGerente() && u.BelongsTo(companyID)
}
