package identity

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// RegisterPayload is the account creation input.
type RegisterPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p RegisterPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Username, validation.Required, validation.Length(1, 200)),
		validation.Field(&p.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&p.Password, validation.Required, validation.Length(6, 100)),
	)
}

// LoginPayload is the credential login input.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p LoginPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, validation.Required, is.Email),
		validation.Field(&p.Password, validation.Required),
	)
}

// LoginResult is what register and login hand back: the public profile plus a
// freshly minted bearer token.
type LoginResult struct {
	User  *UserProfile `json:"user"`
	Token string       `json:"token"`
}

// Accounts composes the hasher, the token codec, and the user store into the
// account lifecycle operations.
type Accounts struct {
	store  UserStore
	tokens TokenCodec
	logger Logger
}

// NewAccounts returns a new Accounts service.
func NewAccounts(store UserStore, tokens TokenCodec) *Accounts {
	return &Accounts{
		store:  store,
		tokens: tokens,
		logger: defLogger{},
	}
}

func (a *Accounts) WithLogger(logger Logger) *Accounts {
	a.logger = logger
	return a
}

// Register creates a credential record and signs a first session token. The
// email lookup is only a user-friendly fast path; the store's unique
// constraint is the authoritative guard, so a racing duplicate still comes
// back as ErrEmailTaken.
func (a *Accounts) Register(ctx context.Context, payload RegisterPayload) (*LoginResult, error) {
	if err := payload.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.CategoryValidation, "invalid registration payload")
	}

	if _, err := a.store.FindByEmail(ctx, payload.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	digest, err := HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           newUserID(payload.Email),
		Username:     payload.Username,
		Email:        payload.Email,
		PasswordHash: digest.Hash,
		Salt:         digest.Salt,
		Roles:        []string{},
	}

	created, err := a.store.Create(ctx, user)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		a.logger.Error("create user failed: %v", err)
		return nil, errors.Wrap(err, errors.CategoryInternal, "could not create user")
	}

	return a.loginResult(created)
}

// Login verifies credentials and mints a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (a *Accounts) Login(ctx context.Context, payload LoginPayload) (*LoginResult, error) {
	if err := payload.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.CategoryValidation, "invalid login payload")
	}

	user, err := a.store.FindByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			a.logger.Info("login attempt for unknown email")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := ComparePasswordAndHash(payload.Password, user.Salt, user.PasswordHash); err != nil {
		a.logger.Info("login password mismatch for user %s", user.ID)
		return nil, ErrInvalidCredentials
	}

	return a.loginResult(user)
}

// Profile fetches the public projection for an account.
func (a *Accounts) Profile(ctx context.Context, id string) (*UserProfile, error) {
	user, err := a.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	return user.Profile(), nil
}

// DeleteAccount removes the credential record. The store contract makes this
// idempotent: deleting a missing record is not an error.
func (a *Accounts) DeleteAccount(ctx context.Context, id string) error {
	return a.store.Delete(ctx, id)
}

func (a *Accounts) loginResult(user *User) (*LoginResult, error) {
	profile := user.Profile()

	token, err := a.tokens.Mint(profile)
	if err != nil {
		a.logger.Error("token mint failed: %v", err)
		return nil, err
	}

	return &LoginResult{
		User:  profile,
		Token: token,
	}, nil
}

// newUserID derives a deterministic UUID from the email so re-registrations
// of the same address land on the same identifier.
func newUserID(email string) uuid.UUID {
	if id, err := hashid.NewUUID(email); err == nil {
		return id
	}
	return uuid.New()
}
