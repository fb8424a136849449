package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-console/internal/domain"
)

func TestLoginRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.mustCreateUser(t, "Reg", "reg@x.com", domain.RoleRegular)

	token, u, err := f.auth.Login("reg@x.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "reg@x.com", u.Email)

	claims, err := testJWTer().Parse(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.ID)
	assert.Equal(t, u.Email, claims.Email)

	events, err := f.eventSvc.Query(Actor{UserType: domain.RoleAdmin}, EventQuery{Email: "reg@x.com", Event: "login"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "login", events[0].Event)
}

func TestLoginFailureIsUniform(t *testing.T) {
	f := newFixture(t)
	f.mustCreateUser(t, "Reg", "reg@x.com", domain.RoleRegular)

	// wrong password and unknown account yield the same error
	_, _, err := f.auth.Login("reg@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = f.auth.Login("ghost@x.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestFailedLoginsAreAudited(t *testing.T) {
	f := newFixture(t)
	f.mustCreateUser(t, "Reg", "reg@x.com", domain.RoleRegular)

	_, _, err := f.auth.Login("reg@x.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = f.auth.Login("reg@x.com", "wrong-again")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	events, err := f.eventSvc.Query(Actor{UserType: domain.RoleAdmin},
		EventQuery{Email: "reg@x.com", Event: "failed_login"})
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestRegisterAlwaysRegular(t *testing.T) {
	f := newFixture(t)

	u, err := f.auth.Register("New", "new@x.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleRegular, u.UserType)
	assert.False(t, u.IsAdmin)

	_, err = f.auth.Register("Again", "new@x.com", "secret123")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestMe(t *testing.T) {
	f := newFixture(t)
	u := f.mustCreateUser(t, "Reg", "reg@x.com", domain.RoleRegular)

	got, err := f.auth.Me(u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	_, err = f.auth.Me(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
