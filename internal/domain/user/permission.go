package user

type Permission string

const (
	// Resource management
	PermissionManageUsers      Permission = "user.manage"
	PermissionManageProjects   Permission = "project.manage"
	PermissionManageMaterials  Permission = "material.manage"
	PermissionManagePayroll    Permission = "payroll.manage"
	PermissionManageAttendance Permission = "attendance.manage"

	// Payroll lifecycle
	PermissionProcessPayroll Permission = "payroll.process"
	PermissionCancelPayroll  Permission = "payroll.cancel"

	// Reports
	PermissionViewReports Permission = "report.view"
)

// RolePermissions maps roles to their permissions. The table is process-wide
// configuration: defined once here, never mutated at runtime.
var RolePermissions = map[Role][]Permission{
	RoleArchitect: {
		// Architect has all permissions
		PermissionManageUsers,
		PermissionManageProjects,
		PermissionManageMaterials,
		PermissionManagePayroll,
		PermissionManageAttendance,
		PermissionProcessPayroll,
		PermissionCancelPayroll,
		PermissionViewReports,
	},
	RoleSupervisor: {
		// Supervisor runs the day-to-day of the sites
		PermissionManageProjects,
		PermissionManageMaterials,
		PermissionManagePayroll,
		PermissionManageAttendance,
		PermissionProcessPayroll,
		PermissionViewReports,
	},
	RoleWorker: {
		// Worker has read access to reports only
		PermissionViewReports,
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

// Allowed reports whether the actor may perform an action requiring permission,
// either through their role's static set or an individual grant.
func Allowed(actor User, permission Permission) bool {
	if HasPermission(actor.Role, permission) {
		return true
	}
	for _, p := range actor.ExtraPermissions {
		if p == permission {
			return true
		}
	}
	return false
}

// AllowedOnRecord reports whether the actor may touch a record owned by ownerID.
// Supervisors and architects are allowed on any record; everyone else only on
// records they own.
func AllowedOnRecord(actor User, ownerID string) bool {
	if actor.Role == RoleSupervisor || actor.Role == RoleArchitect {
		return true
	}
	return actor.ID == ownerID
}

// CheckRoleAssignment validates that an actor with actorRole may grant newRole.
// An actor can never grant a role outranking their own, and supervisors can
// never create architects. The latter is already implied by rank but kept as an
// explicit guard.
func CheckRoleAssignment(actorRole Role, newRole Role) error {
	if !newRole.Valid() {
		return ErrInvalidRole
	}
	if actorRole == RoleSupervisor && newRole == RoleArchitect {
		return ErrInsufficientRank
	}
	if newRole.Rank() > actorRole.Rank() {
		return ErrInsufficientRank
	}
	return nil
}
