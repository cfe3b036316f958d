package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	apperrors "github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type mockLinkSource struct {
	calls int
	ids   []uint
	err   error
}

func (m *mockLinkSource) ActivePartnerIDs(ctx context.Context, orgID uint) ([]uint, error) {
	m.calls++
	return m.ids, m.err
}

func TestAuthorizer_AuthorizeTicket(t *testing.T) {
	tk := testTicket(t, orgCustomer, orgProvider, nil)

	t.Run("matrix denial precedes guard", func(t *testing.T) {
		links := &mockLinkSource{}
		a := NewAuthorizer(permission.StaticChecker{}, links, logger.NewNopLogger())
		err := a.AuthorizeTicket(context.Background(), principal(authorization.RoleEndAdmin, orgCustomer, 1), tk, permission.ResourceTicketStage, permission.ActionComplete)
		require.Error(t, err)
		assert.True(t, apperrors.IsForbiddenError(err))
		assert.Zero(t, links.calls)
	})

	t.Run("service admin consults contracts", func(t *testing.T) {
		links := &mockLinkSource{ids: []uint{orgCustomer}}
		a := NewAuthorizer(permission.StaticChecker{}, links, logger.NewNopLogger())
		err := a.AuthorizeTicket(context.Background(), principal(authorization.RoleServiceAdmin, orgProvider, 1), tk, permission.ResourceTicket, permission.ActionRead)
		require.NoError(t, err)
		assert.Equal(t, 1, links.calls)
	})

	t.Run("service admin without contract is forbidden", func(t *testing.T) {
		a := NewAuthorizer(permission.StaticChecker{}, &mockLinkSource{}, logger.NewNopLogger())
		err := a.AuthorizeTicket(context.Background(), principal(authorization.RoleServiceAdmin, orgProvider2, 1), tk, permission.ResourceTicket, permission.ActionRead)
		assert.True(t, apperrors.IsForbiddenError(err))
	})

	t.Run("end admin skips contract lookup", func(t *testing.T) {
		links := &mockLinkSource{}
		a := NewAuthorizer(permission.StaticChecker{}, links, logger.NewNopLogger())
		require.NoError(t, a.AuthorizeTicket(context.Background(), principal(authorization.RoleEndAdmin, orgCustomer, 1), tk, permission.ResourceTicket, permission.ActionRead))
		assert.Zero(t, links.calls)
	})

	t.Run("lookup failure is not a denial", func(t *testing.T) {
		a := NewAuthorizer(permission.StaticChecker{}, &mockLinkSource{err: errors.New("db down")}, logger.NewNopLogger())
		err := a.AuthorizeTicket(context.Background(), principal(authorization.RoleServiceAdmin, orgProvider, 1), tk, permission.ResourceTicket, permission.ActionRead)
		require.Error(t, err)
		assert.False(t, apperrors.IsForbiddenError(err))
	})
}

func TestAuthorizer_RequireWithoutPrincipal(t *testing.T) {
	a := NewAuthorizer(permission.StaticChecker{}, &mockLinkSource{}, logger.NewNopLogger())
	err := a.Require(nil, permission.ResourceTicket, permission.ActionRead)
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
}
