package identity

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the structured identity payload embedded in a signed token. It
// round-trips exactly through Sign and Validate.
type Claims struct {
	jwt.RegisteredClaims
	UID      string   `json:"uid,omitempty"`
	Username string   `json:"username,omitempty"`
	Email    string   `json:"email,omitempty"`
	Roles    []string `json:"roles,omitempty"`
}

// UserID returns the user identifier, falling back to the subject claim.
func (c *Claims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.RegisteredClaims.Subject
}

// HasRole checks if the claims carry a specific role.
func (c *Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}
