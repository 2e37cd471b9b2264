package identity_test

import (
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	identity "github.com/goliatone/go-identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSigningKey = []byte("test-signing-key")

func newTestTokenService(ttl time.Duration) identity.TokenCodec {
	return identity.NewTokenService(testSigningKey, ttl, "test-issuer", nil)
}

func TestTokenRoundTrip(t *testing.T) {
	ts := newTestTokenService(time.Hour)

	profile := &identity.UserProfile{
		ID:       "usr-100",
		Username: "alice",
		Email:    "alice@example.com",
		Roles:    []string{"admin", "editor"},
	}

	token, err := ts.Mint(profile)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, "usr-100", claims.UserID())
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, []string{"admin", "editor"}, claims.Roles)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.True(t, claims.HasRole("admin"))
	assert.False(t, claims.HasRole("owner"))
}

func TestTokenSignatureChangesWithClaims(t *testing.T) {
	ts := newTestTokenService(time.Hour)

	first, err := ts.Mint(&identity.UserProfile{ID: "usr-1", Username: "a"})
	require.NoError(t, err)

	second, err := ts.Mint(&identity.UserProfile{ID: "usr-2", Username: "a"})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidateExpiredToken(t *testing.T) {
	ts := newTestTokenService(-time.Hour)

	token, err := ts.Mint(&identity.UserProfile{ID: "usr-1"})
	require.NoError(t, err)

	_, err = ts.Validate(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, identity.ErrTokenExpired)
}

func TestValidateWrongSecret(t *testing.T) {
	ts := newTestTokenService(time.Hour)

	token, err := ts.Mint(&identity.UserProfile{ID: "usr-1"})
	require.NoError(t, err)

	other := identity.NewTokenService([]byte("a-different-secret"), time.Hour, "test-issuer", nil)

	_, err = other.Validate(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, identity.ErrTokenSignatureInvalid)
}

func TestValidateMalformedToken(t *testing.T) {
	ts := newTestTokenService(time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "Garbage string", token: "not-a-token"},
		{name: "Empty string", token: ""},
		{name: "Wrong segment count", token: "aaaa.bbbb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.Validate(tt.token)
			require.Error(t, err)

			var rich *goerrors.Error
			require.ErrorAs(t, err, &rich)
			assert.Equal(t, identity.TextCodeTokenMalformed, rich.TextCode)
		})
	}
}

func TestSignStampsExpiry(t *testing.T) {
	ts := newTestTokenService(time.Hour)

	claims := &identity.Claims{UID: "usr-9", Username: "bob"}
	token, err := ts.Sign(claims)
	require.NoError(t, err)

	decoded, err := ts.Validate(token)
	require.NoError(t, err)

	require.NotNil(t, decoded.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), decoded.ExpiresAt.Time, time.Minute)
}
