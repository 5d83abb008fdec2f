package policy

import (
	"testing"

	"github.com/sos-cl/incident-map/internal/core/domain"
)

func TestAllowedTable(t *testing.T) {
	cases := []struct {
		op        Operation
		user      bool
		moderator bool
		admin     bool
	}{
		{OpSubmitReport, true, true, true},
		{OpViewReports, true, true, true},
		{OpViewContactInfo, false, true, true},
		{OpCloseReport, false, true, true},
		{OpListUsers, false, false, true},
		{OpManageRoles, false, false, true},
	}

	for _, tc := range cases {
		if got := Allowed(domain.RoleUser, tc.op); got != tc.user {
			t.Errorf("%s: USER allowed=%v, want %v", tc.op, got, tc.user)
		}
		if got := Allowed(domain.RoleModerator, tc.op); got != tc.moderator {
			t.Errorf("%s: MODERATOR allowed=%v, want %v", tc.op, got, tc.moderator)
		}
		if got := Allowed(domain.RoleAdmin, tc.op); got != tc.admin {
			t.Errorf("%s: ADMIN allowed=%v, want %v", tc.op, got, tc.admin)
		}
	}
}

func TestAllowedUnknown(t *testing.T) {
	if Allowed(domain.Role("GUEST"), OpSubmitReport) {
		t.Fatalf("unknown role must be denied")
	}
	if Allowed(domain.RoleAdmin, Operation("drop_tables")) {
		t.Fatalf("unknown operation must be denied")
	}
}

func TestAllowedUserAnonymous(t *testing.T) {
	if !AllowedUser(nil, OpViewReports) {
		t.Fatalf("anonymous viewers may see the public map")
	}
	for _, op := range []Operation{OpSubmitReport, OpViewContactInfo, OpCloseReport, OpListUsers, OpManageRoles} {
		if AllowedUser(nil, op) {
			t.Fatalf("anonymous caller must be denied %s", op)
		}
	}
	mod := &domain.User{ID: "u1", Role: domain.RoleModerator}
	if !AllowedUser(mod, OpCloseReport) {
		t.Fatalf("moderator must be allowed to close reports")
	}
}
