// Package policy defines the capability check consulted by every use case that gates
// an operation on the caller's role.
package policy

import (
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
)

type Resource string

type Action string

const (
	ResourceTicket   Resource = "ticket"
	ResourceAsset    Resource = "asset"
	ResourceCategory Resource = "category"
	ResourceUser     Resource = "user"
	ResourceEmployee Resource = "employee"
	ResourcePrint    Resource = "print"
)

const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionManage Action = "manage"
	ActionDelete Action = "delete"
	ActionStats  Action = "stats"
	ActionExport Action = "export"
)

// Principal is the authenticated actor of a request.
type Principal struct {
	UserID uint
	Role   authorization.UserRole
}

func NewPrincipal(userID uint, role string) Principal {
	return Principal{UserID: userID, Role: authorization.ParseUserRole(role)}
}

// Checker answers whether a principal may perform action on resource.
type Checker interface {
	Can(p Principal, action Action, resource Resource) bool
}

// Rule grants action on resource to role.
type Rule struct {
	Role     authorization.UserRole
	Resource Resource
	Action   Action
}

// CanManageTickets reports whether p acts with management authority over tickets
// (full transitions, assignment, other people's tickets).
func CanManageTickets(c Checker, p Principal) bool {
	return c.Can(p, ActionManage, ResourceTicket)
}
