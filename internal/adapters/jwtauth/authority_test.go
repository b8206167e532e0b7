package jwtauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medidea/medidea-api/internal/domain/auth"
)

func testIdentity() auth.Identity {
	return auth.Identity{UserID: 42, Email: "tech@medidea.example", Role: auth.RoleTechnician}
}

func TestNewAuthority_EmptySecret(t *testing.T) {
	_, err := NewAuthority(Config{Secret: ""})
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestIssueVerify_RoundTrip(t *testing.T) {
	authority, err := NewAuthority(Config{Secret: "test-secret", Lifetime: time.Hour})
	require.NoError(t, err)

	token, err := authority.Issue(testIdentity())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, ok := authority.Verify(token)
	require.True(t, ok)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "tech@medidea.example", claims.Email)
	assert.Equal(t, auth.RoleTechnician, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestVerify_Idempotent(t *testing.T) {
	authority, err := NewAuthority(Config{Secret: "test-secret"})
	require.NoError(t, err)

	token, err := authority.Issue(testIdentity())
	require.NoError(t, err)

	first, ok := authority.Verify(token)
	require.True(t, ok)
	second, ok := authority.Verify(token)
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer, err := NewAuthority(Config{Secret: "secret-a"})
	require.NoError(t, err)
	verifier, err := NewAuthority(Config{Secret: "secret-b"})
	require.NoError(t, err)

	token, err := issuer.Issue(testIdentity())
	require.NoError(t, err)

	claims, ok := verifier.Verify(token)
	assert.False(t, ok)
	assert.Nil(t, claims)
}

func TestVerify_Expired(t *testing.T) {
	current := time.Now()
	authority, err := NewAuthority(Config{
		Secret:   "test-secret",
		Lifetime: time.Minute,
		Now:      func() time.Time { return current },
	})
	require.NoError(t, err)

	token, err := authority.Issue(testIdentity())
	require.NoError(t, err)

	// Still valid just before expiry.
	current = current.Add(59 * time.Second)
	_, ok := authority.Verify(token)
	assert.True(t, ok)

	// Expired with the correct secret: absent result, not an error.
	current = current.Add(2 * time.Minute)
	claims, ok := authority.Verify(token)
	assert.False(t, ok)
	assert.Nil(t, claims)
}

func TestVerify_Malformed(t *testing.T) {
	authority, err := NewAuthority(Config{Secret: "test-secret"})
	require.NoError(t, err)

	for _, token := range []string{"", "not-a-token", "a.b.c", "eyJhbGciOiJub25lIn0.e30."} {
		claims, ok := authority.Verify(token)
		assert.False(t, ok, token)
		assert.Nil(t, claims)
	}
}

func TestIssue_InvalidRole(t *testing.T) {
	authority, err := NewAuthority(Config{Secret: "test-secret"})
	require.NoError(t, err)

	_, err = authority.Issue(auth.Identity{UserID: 1, Role: "root"})
	assert.Error(t, err)
}

