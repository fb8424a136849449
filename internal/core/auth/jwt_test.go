package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-console/internal/domain"
)

func newTestJWTer(ttl time.Duration) *JWTer {
	return &JWTer{Secret: []byte("unit-test-secret"), Issuer: "test", TTL: ttl}
}

func TestIssueAndParse(t *testing.T) {
	j := newTestJWTer(24 * time.Hour)
	u := &domain.User{ID: 7, Name: "Adm", Email: "adm@x.com", UserType: domain.RoleAdmin}

	token, err := j.Issue(u)
	require.NoError(t, err)

	c, err := j.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), c.ID)
	assert.Equal(t, "adm@x.com", c.Email)
	assert.Equal(t, domain.RoleAdmin, c.UserType)
	// is_admin follows user_type even if the column was stale
	assert.True(t, c.IsAdmin)
}

func TestParseExpiredToken(t *testing.T) {
	j := newTestJWTer(-2 * time.Minute)
	token, err := j.Issue(&domain.User{ID: 1, Email: "a@x.com"})
	require.NoError(t, err)

	_, err = j.Parse(token)
	assert.Error(t, err)
}

func TestParseWrongSecret(t *testing.T) {
	j := newTestJWTer(time.Hour)
	token, err := j.Issue(&domain.User{ID: 1, Email: "a@x.com"})
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("different"), Issuer: "test", TTL: time.Hour}
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseWrongIssuer(t *testing.T) {
	j := newTestJWTer(time.Hour)
	token, err := j.Issue(&domain.User{ID: 1, Email: "a@x.com"})
	require.NoError(t, err)

	other := &JWTer{Secret: j.Secret, Issuer: "someone-else", TTL: time.Hour}
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	j := newTestJWTer(time.Hour)
	_, err := j.Parse("not.a.token")
	assert.Error(t, err)
}
