package identity

// RequestUser is the per-request resolved caller identity. It lives for a
// single request: created by the Resolver, attached to the request context,
// and discarded at request end.
//
// The anonymous form has an empty ID and no roles but still carries IP and
// Token for audit logging. A nil *RequestUser means no credential was
// presented at all, which downstream code can tell apart from a failed
// attempt.
type RequestUser struct {
	ID       string   `json:"id,omitempty"`
	Username string   `json:"username,omitempty"`
	Email    string   `json:"email,omitempty"`
	Roles    []string `json:"roles"`
	IP       string   `json:"ip,omitempty"`
	Token    string   `json:"-"`
}

// Authenticated reports whether the identity belongs to a known user.
func (u *RequestUser) Authenticated() bool {
	return u != nil && u.ID != ""
}

// HasRole checks if the identity carries a specific role.
func (u *RequestUser) HasRole(role string) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
