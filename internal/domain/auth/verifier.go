package auth

import (
	"github.com/serenus-health/wellness-admin-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks a supplied secret against the credential stored
// for a principal. The store's control flow never depends on which
// implementation is wired in.
type CredentialVerifier interface {
	Verify(principal user.User, secret string) bool
}

// Demo credentials for the mock environment. The super admin account has its
// own password; every other account shares the default one.
const (
	DemoAdminPassword   = "admin123456"
	DemoDefaultPassword = "serenus123"
)

// FixedVerifier is the stand-in credential scheme used while the portal runs
// against mock data. Not a real per-user credential check.
type FixedVerifier struct {
	AdminPassword   string
	DefaultPassword string
}

func NewFixedVerifier() *FixedVerifier {
	return &FixedVerifier{
		AdminPassword:   DemoAdminPassword,
		DefaultPassword: DemoDefaultPassword,
	}
}

func (v *FixedVerifier) Verify(principal user.User, secret string) bool {
	if principal.Role == user.RoleSuperAdmin {
		return secret == v.AdminPassword
	}
	return secret == v.DefaultPassword
}

// BcryptVerifier is the real implementation: it compares the secret against
// the user's stored bcrypt hash. Users without a hash never verify.
type BcryptVerifier struct{}

func NewBcryptVerifier() *BcryptVerifier {
	return &BcryptVerifier{}
}

func (v *BcryptVerifier) Verify(principal user.User, secret string) bool {
	if principal.PasswordHash == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*principal.PasswordHash), []byte(secret)) == nil
}
