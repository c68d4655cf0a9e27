package authz

// Role is the declared role of the acting principal. Guest is the absent or
// unauthenticated principal on read-only endpoints.
type Role string

const (
	RoleGuest Role = "guest"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

// Action enumerates every gated operation in the system.
type Action string

const (
	ProductList     Action = "product:list"
	ProductGet      Action = "product:get"
	ProductCreate   Action = "product:create"
	ProductUpdate   Action = "product:update"
	ProductDelete   Action = "product:delete"
	ProductSetStock Action = "product:set_stock"

	RequestList    Action = "request:list"
	RequestCreate  Action = "request:create"
	RequestRead    Action = "request:read"
	RequestUpdate  Action = "request:update"
	RequestDelete  Action = "request:delete"
	RequestCancel  Action = "request:cancel"
	RequestApprove Action = "request:approve"
	RequestReject  Action = "request:reject"
)

// Allowed is the single allow/deny decision consulted by every operation.
// owns reports whether the target resource belongs to the acting principal;
// it is ignored for actions that are not ownership scoped.
func Allowed(role Role, action Action, owns bool) bool {
	switch action {
	case ProductList, ProductGet:
		// Open to everyone; visibility filtering is a separate concern.
		return true

	case ProductCreate, ProductUpdate, ProductDelete, ProductSetStock:
		return role == RoleAdmin

	case RequestList:
		// Staff are scoped to their own requests by the query layer.
		return role == RoleStaff || role == RoleAdmin

	case RequestCreate:
		// Deliberate asymmetry: admins adjust stock directly and never file
		// requests of their own.
		return role == RoleStaff

	case RequestRead, RequestUpdate, RequestDelete, RequestCancel:
		if role == RoleAdmin {
			return true
		}
		return role == RoleStaff && owns

	case RequestApprove, RequestReject:
		return role == RoleAdmin
	}

	return false
}

// SeesInactiveProducts reports whether the role may see hidden catalog
// entries in listings.
func SeesInactiveProducts(role Role) bool {
	return role == RoleAdmin
}
