// Package policy is the single source of truth for role-based access
// control. Every service operation that is role-gated asks this table;
// role comparisons must not be re-encoded anywhere else.
package policy

import "github.com/sos-cl/incident-map/internal/core/domain"

// Operation identifies a gated action in the system.
type Operation string

const (
	OpSubmitReport    Operation = "submit_report"
	OpViewReports     Operation = "view_reports"
	OpViewContactInfo Operation = "view_contact_info"
	OpCloseReport     Operation = "close_report"
	OpListUsers       Operation = "list_users"
	OpManageRoles     Operation = "manage_roles"
)

// grants maps each operation to the set of roles allowed to perform it.
var grants = map[Operation]map[domain.Role]struct{}{
	OpSubmitReport: {
		domain.RoleUser:      {},
		domain.RoleModerator: {},
		domain.RoleAdmin:     {},
	},
	OpViewReports: {
		domain.RoleUser:      {},
		domain.RoleModerator: {},
		domain.RoleAdmin:     {},
	},
	OpViewContactInfo: {
		domain.RoleModerator: {},
		domain.RoleAdmin:     {},
	},
	OpCloseReport: {
		domain.RoleModerator: {},
		domain.RoleAdmin:     {},
	},
	OpListUsers: {
		domain.RoleAdmin: {},
	},
	OpManageRoles: {
		domain.RoleAdmin: {},
	},
}

// Allowed reports whether role may perform op. Unknown roles and unknown
// operations are denied.
func Allowed(role domain.Role, op Operation) bool {
	roles, ok := grants[op]
	if !ok {
		return false
	}
	_, ok = roles[role]
	return ok
}

// AllowedUser reports whether u may perform op. An anonymous caller (nil
// user) may only view reports: the active-report map is public.
func AllowedUser(u *domain.User, op Operation) bool {
	if u == nil {
		return op == OpViewReports
	}
	return Allowed(u.Role, op)
}
