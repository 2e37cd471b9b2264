package identity

import (
	"context"
	"database/sql"
	"strings"

	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunUserStore implements UserStore using Bun.
type BunUserStore struct {
	db *bun.DB
}

var _ UserStore = (*BunUserStore)(nil)

// NewBunUserStore creates a new store.
func NewBunUserStore(db *bun.DB) *BunUserStore {
	return &BunUserStore{db: db}
}

// FindByEmail implements UserStore.
func (s *BunUserStore) FindByEmail(ctx context.Context, email string) (*User, error) {
	user := new(User)
	err := s.db.NewSelect().
		Model(user).
		Where("email = ?", email).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "user lookup by email failed")
	}
	return user, nil
}

// FindByID implements UserStore.
func (s *BunUserStore) FindByID(ctx context.Context, id string) (*User, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	user := new(User)
	err = s.db.NewSelect().
		Model(user).
		Where("id = ?", uid).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "user lookup by id failed")
	}
	return user, nil
}

// Create implements UserStore. The email unique index is the authoritative
// duplicate guard; violations map to ErrEmailTaken.
func (s *BunUserStore) Create(ctx context.Context, user *User) (*User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	_, err := s.db.NewInsert().
		Model(user).
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "user insert failed")
	}

	return user, nil
}

// Delete implements UserStore. Deleting a missing record is a no-op.
func (s *BunUserStore) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return ErrUserNotFound
	}

	_, err = s.db.NewDelete().
		Model((*User)(nil)).
		Where("id = ?", uid).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "user delete failed")
	}
	return nil
}

func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "constraint failed: users.email")
}
