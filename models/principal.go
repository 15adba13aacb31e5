package models

// EnvAdminID is the sentinel id of the fallback admin authenticated by the
// shared secret instead of a session row.
const EnvAdminID = "env-admin"

// Principal is the authenticated actor for a single request. It is built
// from the bearer credential on every call and never persisted or cached.
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// PublicUser returns the user's public attributes as a Principal.
func PublicUser(u User) Principal {
	return Principal{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
