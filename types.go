package identity

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// TokenCodec signs claims into bearer tokens and validates them back.
type TokenCodec interface {
	Mint(profile *UserProfile) (string, error)
	Sign(claims *Claims) (string, error)
	Validate(token string) (*Claims, error)
}

// UserStore is the persistence collaborator. The core only ever holds copies
// of the records it returns. A miss is ErrUserNotFound; Create fails with
// ErrEmailTaken when the email unique constraint trips.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
	Delete(ctx context.Context, id string) error
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] IDENTITY "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] IDENTITY "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] IDENTITY "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
