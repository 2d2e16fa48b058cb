package domain

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User models the account record the directory API returns on login and
// register. The gateway never sees a password or hash; authentication is
// owned by the remote API.
type User struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DisplayName string `json:"name"`
	Role        string `json:"role"`
}

// IsAdmin reports whether the user carries the ADMIN role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Valid reports whether the record is complete enough to trust. A restored
// record missing its identity fields counts as corrupted storage.
func (u *User) Valid() bool {
	return u != nil && u.ID != 0 && u.Email != ""
}

// Credentials is the pair the session holds and the credential store
// persists. The token is opaque to the gateway.
type Credentials struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Complete reports whether both halves of the pair are present. A pair with
// exactly one half is never valid anywhere in the system.
func (c *Credentials) Complete() bool {
	return c != nil && c.Token != "" && c.User.Valid()
}
