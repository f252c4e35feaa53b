package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Checkup Management
	PermissionCheckupTakeOwn     Permission = "checkup.take_own"
	PermissionCheckupViewOwn     Permission = "checkup.view_own"
	PermissionCheckupViewCompany Permission = "checkup.view_company"
	PermissionCheckupViewAll     Permission = "checkup.view_all"

	// User Management
	PermissionUserViewCompany Permission = "user.view_company"
	PermissionUserManage      Permission = "user.manage"

	// Company Management
	PermissionCompanyView   Permission = "company.view"
	PermissionCompanyManage Permission = "company.manage"

	// Subscription Plan Management
	PermissionPlanView   Permission = "plan.view"
	PermissionPlanManage Permission = "plan.manage"

	// Company Settings (checkup intervals, recommendations)
	PermissionSettingsView   Permission = "settings.view"
	PermissionSettingsManage Permission = "settings.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleSuperAdmin: {
		// Super admin has all permissions
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionCheckupTakeOwn,
		PermissionCheckupViewOwn,
		PermissionCheckupViewCompany,
		PermissionCheckupViewAll,
		PermissionUserViewCompany,
		PermissionUserManage,
		PermissionCompanyView,
		PermissionCompanyManage,
		PermissionPlanView,
		PermissionPlanManage,
		PermissionSettingsView,
		PermissionSettingsManage,
	},
	RoleGerente: {
		// Gerente manages their own company's people and settings
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionCheckupTakeOwn,
		PermissionCheckupViewOwn,
		PermissionCheckupViewCompany,
		PermissionUserViewCompany,
		PermissionUserManage,
		PermissionCompanyView,
		PermissionSettingsView,
		PermissionSettingsManage,
	},
	RoleColaborador: {
		// Colaborador has basic access
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionCheckupTakeOwn,
		PermissionCheckupViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
