package identity_test

import (
	"errors"
	"testing"

	identity "github.com/goliatone/go-identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "Valid password",
			password: "securePassword123!",
			wantErr:  false,
		},
		{
			name:     "Empty password",
			password: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := identity.HashPassword(tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, digest.Hash)
			assert.NotEmpty(t, digest.Salt)
			assert.NotEqual(t, tt.password, digest.Hash)

			// the stored salt is the digest prefix
			assert.Equal(t, digest.Salt, digest.Hash[:len(digest.Salt)])

			err = identity.ComparePasswordAndHash(tt.password, digest.Salt, digest.Hash)
			assert.NoError(t, err)
		})
	}
}

func TestHashPasswordFreshSalt(t *testing.T) {
	first, err := identity.HashPassword("same-password")
	require.NoError(t, err)

	second, err := identity.HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first.Salt, second.Salt)
	assert.NotEqual(t, first.Hash, second.Hash)
}

func TestComparePasswordAndHash(t *testing.T) {
	password := "testPassword123!"
	digest, err := identity.HashPassword(password)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		salt     string
		hash     string
		wantErr  error
	}{
		{
			name:     "Matching password",
			password: password,
			salt:     digest.Salt,
			hash:     digest.Hash,
		},
		{
			name:     "Wrong password",
			password: "wrongPassword",
			salt:     digest.Salt,
			hash:     digest.Hash,
			wantErr:  identity.ErrInvalidCredentials,
		},
		{
			name:     "Malformed salt",
			password: password,
			salt:     "notasalt",
			hash:     digest.Hash,
			wantErr:  identity.ErrCredentialInvalid,
		},
		{
			name:     "Salt does not match digest",
			password: password,
			salt:     "$2a$10$aaaaaaaaaaaaaaaaaaaaaa",
			hash:     digest.Hash,
			wantErr:  identity.ErrCredentialInvalid,
		},
		{
			name:     "Malformed hash",
			password: password,
			salt:     digest.Salt,
			hash:     "invalidhash",
			wantErr:  identity.ErrCredentialInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := identity.ComparePasswordAndHash(tt.password, tt.salt, tt.hash)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "expected %v, got %v", tt.wantErr, err)
		})
	}
}
