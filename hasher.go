package identity

import (
	"crypto/subtle"

	"github.com/goliatone/go-errors"
	"golang.org/x/crypto/bcrypt"
)

const hashCost = 10

// saltLen is the length of the bcrypt digest prefix that encodes the version,
// cost, and salt: "$2a$10$" plus 22 base64 characters.
const saltLen = 29

// PasswordDigest is the stored credential material for a user record. Hash is
// the full bcrypt digest; Salt is its prefix, persisted separately so the
// record schema keeps an explicit salt column.
type PasswordDigest struct {
	Salt string
	Hash string
}

// HashPassword derives a salted digest for a plaintext password. Each call
// draws a fresh salt from the bcrypt random source, so it is safe to call
// concurrently.
func HashPassword(password string) (PasswordDigest, error) {
	if password == "" {
		return PasswordDigest{}, ErrCredentialInvalid
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return PasswordDigest{}, errors.Wrap(err, errors.CategoryInternal, "failed to hash password")
	}

	return PasswordDigest{
		Salt: string(h[:saltLen]),
		Hash: string(h),
	}, nil
}

// ComparePasswordAndHash validates the given cleartext password against the
// stored salt and digest. All comparisons run in constant time regardless of
// where a mismatch occurs. Returns ErrInvalidCredentials on mismatch and
// ErrCredentialInvalid when the stored material is malformed.
func ComparePasswordAndHash(password, salt, hash string) error {
	if len(hash) < saltLen || len(salt) != saltLen {
		return ErrCredentialInvalid
	}

	// The digest embeds the salt in its prefix; a stored salt that disagrees
	// means the record is corrupt, not that the password is wrong.
	if subtle.ConstantTimeCompare([]byte(salt), []byte(hash[:saltLen])) != 1 {
		return ErrCredentialInvalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrInvalidCredentials
		}
		return errors.Wrap(err, ErrCredentialInvalid.Category, ErrCredentialInvalid.Message).
			WithTextCode(ErrCredentialInvalid.TextCode)
	}

	return nil
}
