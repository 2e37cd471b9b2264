package identity

import "github.com/goliatone/go-errors"

const (
	TextCodeCredentialInvalid = "credential_invalid"
	TextCodeTokenMalformed    = "token_malformed"
	TextCodeTokenSignature    = "token_signature_invalid"
	TextCodeTokenExpired      = "token_expired"
	TextCodeEmailTaken        = "email_taken"
	TextCodeBadCredentials    = "invalid_credentials"
	TextCodeUserNotFound      = "user_not_found"
	TextCodeUnauthenticated   = "unauthenticated"
	TextCodePermissionDenied  = "permission_denied"
)

// ErrCredentialInvalid is returned when stored credential material (salt or
// digest) is malformed and cannot be verified.
var ErrCredentialInvalid = errors.New("malformed credential material", errors.CategoryBadInput).
	WithTextCode(TextCodeCredentialInvalid).
	WithCode(errors.CodeBadRequest)

// ErrTokenMalformed is returned when a bearer token is not a parseable JWT.
var ErrTokenMalformed = errors.New("invalid or expired session", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrTokenSignatureInvalid is returned when a token was signed with a
// different secret.
var ErrTokenSignatureInvalid = errors.New("invalid or expired session", errors.CategoryAuth).
	WithTextCode(TextCodeTokenSignature).
	WithCode(errors.CodeUnauthorized)

// ErrTokenExpired is returned when a token's expiry has elapsed.
var ErrTokenExpired = errors.New("invalid or expired session", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrEmailTaken is returned when registering an email that already exists.
// Safe to surface to clients.
var ErrEmailTaken = errors.New("email already registered", errors.CategoryConflict).
	WithTextCode(TextCodeEmailTaken).
	WithCode(errors.CodeConflict)

// ErrInvalidCredentials is the uniform login failure: unknown email and wrong
// password both map here so callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials", errors.CategoryAuth).
	WithTextCode(TextCodeBadCredentials).
	WithCode(errors.CodeUnauthorized)

// ErrUserNotFound is the store-level miss. The facade maps it to
// ErrInvalidCredentials before it reaches a client.
var ErrUserNotFound = errors.New("user not found", errors.CategoryNotFound).
	WithTextCode(TextCodeUserNotFound).
	WithCode(errors.CodeNotFound)

// ErrUnauthenticated is returned by the guard when no authenticated identity
// is present on the request.
var ErrUnauthenticated = errors.New("authentication required", errors.CategoryAuth).
	WithTextCode(TextCodeUnauthenticated).
	WithCode(errors.CodeUnauthorized)

// ErrPermissionDenied is returned by the guard when the identity is
// authenticated but holds none of the required roles.
var ErrPermissionDenied = errors.New("insufficient role", errors.CategoryAuth).
	WithTextCode(TextCodePermissionDenied).
	WithCode(errors.CodeForbidden)
