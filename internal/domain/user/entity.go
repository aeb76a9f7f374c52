package user

import "time"

type Role string

const (
	RoleArchitect  Role = "architect"  // Full access, can assign any role
	RoleSupervisor Role = "supervisor" // Manages projects, materials, attendance and payroll
	RoleWorker     Role = "worker"     // Regular field worker
)

// roleRanks orders the roles for role-assignment checks only.
// General authorization goes through permission membership, never rank.
var roleRanks = map[Role]int{
	RoleArchitect:  3,
	RoleSupervisor: 2,
	RoleWorker:     1,
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleRanks[r]
	return ok
}

// Rank returns the role's position in the assignment hierarchy. Unknown roles rank 0.
func (r Role) Rank() int {
	return roleRanks[r]
}

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash *string
	FirstName    string
	LastName     string
	Role         Role
	Phone        string
	Address      *string
	HireDate     *time.Time
	Active       bool

	// ExtraPermissions are individual grants on top of the role's static set.
	// AssignRole clears them so no permission survives a role change.
	ExtraPermissions []Permission

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Username
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsArchitect checks if user is an architect
func (u *User) IsArchitect() bool {
	return u.Role == RoleArchitect
}

// IsSupervisor checks if user is a supervisor
func (u *User) IsSupervisor() bool {
	return u.Role == RoleSupervisor
}

// IsWorker checks if user is a worker
func (u *User) IsWorker() bool {
	return u.Role == RoleWorker
}
