package domain

type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Roles        []Role `json:"roles"`
	CreatedOn    string `json:"created_on"`
}

// HasRole reports whether the user may act in role. Admins may act as users.
func (u *User) HasRole(role Role) bool {
	return HasRole(RoleNames(u.Roles), role)
}

// HasRole checks a role against role names taken from a token.
func HasRole(roles []string, role Role) bool {
	for _, r := range roles {
		if Role(r) == role || Role(r) == RoleAdmin {
			return true
		}
	}
	return false
}

func RoleNames(roles []Role) []string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = string(r)
	}
	return names
}
