package user

type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleOwner:
		return true
	default:
		return false
	}
}

// NewRole parses a role; an empty string means a regular renter.
func NewRole(s string) (Role, error) {
	if s == "" {
		return RoleUser, nil
	}
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
