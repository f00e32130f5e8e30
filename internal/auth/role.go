package auth

// Role is one of the closed set of blog roles. Roles carry no hierarchy:
// authorization checks are plain set membership.
type Role string

const (
	RoleAdministrador Role = "administrador"
	RoleAutor         Role = "autor"
	RoleLeitor        Role = "leitor"
)

var Roles = []Role{RoleAdministrador, RoleAutor, RoleLeitor}

func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

func (r Role) Valid() bool {
	switch r {
	case RoleAdministrador, RoleAutor, RoleLeitor:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

// Allowed reports whether role is a member of allowed.
func Allowed(role Role, allowed []Role) bool {
	for _, a := range allowed {
		if a == role {
			return true
		}
	}
	return false
}

// Identity is the verified subject of a request.
type Identity struct {
	SubjectID string
	Role      Role
}
