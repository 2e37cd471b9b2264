package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the persisted credential record. PasswordHash is always derived via
// HashPassword with the stored Salt, never the plaintext.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Username      string     `bun:"username,notnull" json:"username,omitempty"`
	Email         string     `bun:"email,notnull,unique" json:"email,omitempty"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	Salt          string     `bun:"salt,notnull" json:"-"`
	Roles         []string   `bun:"roles,type:jsonb" json:"roles,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// Profile projects the record into its public shape, stripping the secret
// fields. Roles is never nil on the projection.
func (u *User) Profile() *UserProfile {
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}

	return &UserProfile{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
		Roles:    roles,
	}
}

// UserProfile is the transient public projection of a credential record.
type UserProfile struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}
