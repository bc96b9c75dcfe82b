// Package policy is the single source of truth for role-based access.
// Each administrative action is a row in one table; handlers never carry
// their own role allow-lists, they ask this package.
package policy

type Action string

const (
	ActionAccountCreate  Action = "account:create"
	ActionAccountList    Action = "account:list"
	ActionAccountGet     Action = "account:get"
	ActionAccountUpdate  Action = "account:update"
	ActionAccountApprove Action = "account:approve"
	ActionAccountDelete  Action = "account:delete"
)

// adminRoles is the full administrative tier: the super-admin plus the
// two ordinary admin tiers.
var adminRoles = roleSet(0, 1, 2)

var table = map[Action]map[int]struct{}{
	ActionAccountCreate:  adminRoles,
	ActionAccountList:    adminRoles,
	ActionAccountGet:     adminRoles,
	ActionAccountUpdate:  adminRoles,
	ActionAccountApprove: adminRoles,
	ActionAccountDelete:  adminRoles,
}

// Permit reports whether a caller with the given role may perform the
// action. Unknown actions are denied.
func Permit(role int, action Action) bool {
	allowed, ok := table[action]
	if !ok {
		return false
	}
	_, ok = allowed[role]
	return ok
}

// Can curries Permit for wiring into middleware at the router.
func Can(action Action) func(role int) bool {
	return func(role int) bool { return Permit(role, action) }
}

func roleSet(roles ...int) map[int]struct{} {
	set := make(map[int]struct{}, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}
