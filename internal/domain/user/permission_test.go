package user

import (
	"testing"
)

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleArchitect, PermissionManageUsers, true},
		{RoleArchitect, PermissionCancelPayroll, true},
		{RoleSupervisor, PermissionManageProjects, true},
		{RoleSupervisor, PermissionManageMaterials, true},
		{RoleSupervisor, PermissionProcessPayroll, true},
		{RoleSupervisor, PermissionManageUsers, false},
		{RoleSupervisor, PermissionCancelPayroll, false},
		{RoleWorker, PermissionViewReports, true},
		{RoleWorker, PermissionManagePayroll, false},
		{RoleWorker, PermissionManageAttendance, false},
		{Role("foreman"), PermissionViewReports, false},
	}
	for _, c := range cases {
		got := HasPermission(c.role, c.permission)
		if got != c.want {
			t.Errorf("HasPermission(%q, %q) = %v, want %v", c.role, c.permission, got, c.want)
		}
	}
}

func TestAllowed_IndividualGrant(t *testing.T) {
	worker := User{ID: "u1", Role: RoleWorker}
	if Allowed(worker, PermissionManageMaterials) {
		t.Fatal("worker without grant should not manage materials")
	}

	worker.ExtraPermissions = []Permission{PermissionManageMaterials}
	if !Allowed(worker, PermissionManageMaterials) {
		t.Fatal("individual grant should allow the permission")
	}
	if Allowed(worker, PermissionManagePayroll) {
		t.Fatal("grant must not leak to other permissions")
	}
}

func TestAllowedOnRecord(t *testing.T) {
	cases := []struct {
		name    string
		actor   User
		ownerID string
		want    bool
	}{
		{"architect on anyone's record", User{ID: "a", Role: RoleArchitect}, "w", true},
		{"supervisor on anyone's record", User{ID: "s", Role: RoleSupervisor}, "w", true},
		{"worker on own record", User{ID: "w", Role: RoleWorker}, "w", true},
		{"worker on another's record", User{ID: "w", Role: RoleWorker}, "other", false},
	}
	for _, c := range cases {
		if got := AllowedOnRecord(c.actor, c.ownerID); got != c.want {
			t.Errorf("%s: AllowedOnRecord = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestCheckRoleAssignment(t *testing.T) {
	cases := []struct {
		name      string
		actorRole Role
		newRole   Role
		wantErr   error
	}{
		{"architect assigns architect", RoleArchitect, RoleArchitect, nil},
		{"architect assigns supervisor", RoleArchitect, RoleSupervisor, nil},
		{"architect assigns worker", RoleArchitect, RoleWorker, nil},
		{"supervisor assigns worker", RoleSupervisor, RoleWorker, nil},
		{"supervisor assigns supervisor", RoleSupervisor, RoleSupervisor, nil},
		{"supervisor assigns architect", RoleSupervisor, RoleArchitect, ErrInsufficientRank},
		{"worker assigns supervisor", RoleWorker, RoleSupervisor, ErrInsufficientRank},
		{"worker assigns worker", RoleWorker, RoleWorker, nil},
		{"unknown role", RoleArchitect, Role("foreman"), ErrInvalidRole},
	}
	for _, c := range cases {
		err := CheckRoleAssignment(c.actorRole, c.newRole)
		if err != c.wantErr {
			t.Errorf("%s: CheckRoleAssignment(%q, %q) = %v, want %v", c.name, c.actorRole, c.newRole, err, c.wantErr)
		}
	}
}
