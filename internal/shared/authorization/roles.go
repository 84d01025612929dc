package authorization

type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleClient UserRole = "client"
)

// Role-default landing routes. Guards fall back to the opposite role's
// landing route when a session reaches a section it cannot enter.
const (
	AdminHomeRoute  = "/admin/dashboard"
	ClientHomeRoute = "/cliente/chamados"
	LoginRoute      = "/login"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsClient() bool {
	return r == RoleClient
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleClient
}

// HomeRoute returns the landing route for the role.
func (r UserRole) HomeRoute() string {
	if r.IsAdmin() {
		return AdminHomeRoute
	}
	return ClientHomeRoute
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleClient
}
