package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/user/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
)

func mustEmail(t *testing.T, s string) *vo.Email {
	t.Helper()
	e, err := vo.NewEmail(s)
	require.NoError(t, err)
	return e
}

func TestNewUser(t *testing.T) {
	u, err := NewUser(3, mustEmail(t, "eng@acme.io"), " Ada ", "hash", authorization.RoleEndEngineer)
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.Name())
	assert.Equal(t, vo.StatusActive, u.Status())
	assert.True(t, u.CanLogin())

	_, err = NewUser(0, mustEmail(t, "eng@acme.io"), "Ada", "hash", authorization.RoleEndEngineer)
	assert.Error(t, err)

	_, err = NewUser(3, mustEmail(t, "eng@acme.io"), "Ada", "hash", authorization.Role("root"))
	assert.Error(t, err)
}

func TestUser_DisableBlocksLogin(t *testing.T) {
	u, err := NewUser(3, mustEmail(t, "eng@acme.io"), "Ada", "hash", authorization.RoleEndAdmin)
	require.NoError(t, err)
	u.Disable()
	assert.False(t, u.CanLogin())
}

func TestNewSession(t *testing.T) {
	s, err := NewSession(1, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, s.Token)
	assert.False(t, s.IsExpired())

	s.ExpiresAt = time.Now().Add(-time.Second)
	assert.True(t, s.IsExpired())

	_, err = NewSession(1, 0)
	assert.Error(t, err)
}
