package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automationyuli-li/RobotCare-sub001/internal/application/identity/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/application/identity/usecases"
	orgdto "github.com/automationyuli-li/RobotCare-sub001/internal/application/organization/dto"
	"github.com/automationyuli-li/RobotCare-sub001/internal/interfaces/http/handlers/testutil"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

type mockRegisterUC struct {
	got    usecases.RegisterCommand
	result *usecases.RegisterResult
	err    error
}

func (m *mockRegisterUC) Execute(_ context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockLoginUC struct {
	result *dto.LoginDTO
	err    error
}

func (m *mockLoginUC) Execute(_ context.Context, _ usecases.LoginCommand) (*dto.LoginDTO, error) {
	return m.result, m.err
}

type mockLogoutUC struct {
	token string
	err   error
}

func (m *mockLogoutUC) Execute(_ context.Context, token string) error {
	m.token = token
	return m.err
}

type mockGetCurrentUserUC struct {
	result *dto.UserDTO
	err    error
}

func (m *mockGetCurrentUserUC) Execute(_ context.Context, _ *authorization.Principal) (*dto.UserDTO, error) {
	return m.result, m.err
}

type mockCreateUserUC struct {
	got    usecases.CreateUserCommand
	result *dto.UserDTO
	err    error
}

func (m *mockCreateUserUC) Execute(_ context.Context, cmd usecases.CreateUserCommand) (*dto.UserDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockListUsersUC struct {
	got    usecases.ListUsersQuery
	result *usecases.ListUsersResult
	err    error
}

func (m *mockListUsersUC) Execute(_ context.Context, q usecases.ListUsersQuery) (*usecases.ListUsersResult, error) {
	m.got = q
	return m.result, m.err
}

type testDeps struct {
	register   *mockRegisterUC
	login      *mockLoginUC
	logout     *mockLogoutUC
	current    *mockGetCurrentUserUC
	createUser *mockCreateUserUC
	listUsers  *mockListUsersUC
}

func newTestHandler() (*Handler, *testDeps) {
	d := &testDeps{
		register:   &mockRegisterUC{},
		login:      &mockLoginUC{},
		logout:     &mockLogoutUC{},
		current:    &mockGetCurrentUserUC{},
		createUser: &mockCreateUserUC{},
		listUsers:  &mockListUsersUC{},
	}
	h := NewHandler(d.register, d.login, d.logout, d.current, d.createUser, d.listUsers, testutil.NewMockLogger())
	return h, d
}

func TestHandler_Register_Success(t *testing.T) {
	h, d := newTestHandler()
	d.register.result = &usecases.RegisterResult{
		User:                &dto.UserDTO{ID: 1, Email: "admin@acme.io"},
		Organization:        &orgdto.OrganizationDTO{ID: 2, Name: "Acme"},
		ReconciledContracts: 1,
	}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/auth/register", RegisterRequest{
		OrgName: "Acme", OrgType: "end_customer", Email: "admin@acme.io", Name: "Ann", Password: "Secret123",
	})
	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "end_customer", d.register.got.OrgType)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), `"reconciled_contracts":1`)
}

func TestHandler_Register_InvalidOrgType(t *testing.T) {
	h, _ := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/auth/register", RegisterRequest{
		OrgName: "Acme", OrgType: "reseller", Email: "admin@acme.io", Name: "Ann", Password: "Secret123",
	})
	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "validation_error", resp.Error.Type)
	assert.Contains(t, resp.Error.Details, "org_type")
}

func TestHandler_Login(t *testing.T) {
	tests := []struct {
		name     string
		body     interface{}
		result   *dto.LoginDTO
		err      error
		wantCode int
	}{
		{
			name:     "success",
			body:     LoginRequest{Email: "a@b.io", Password: "x"},
			result:   &dto.LoginDTO{AccessToken: "tok", TokenType: "Bearer", ExpiresAt: time.Now().Add(time.Hour)},
			wantCode: http.StatusOK,
		},
		{
			name:     "bad credentials",
			body:     LoginRequest{Email: "a@b.io", Password: "x"},
			err:      errors.NewUnauthorizedError("invalid email or password"),
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "missing password",
			body:     map[string]string{"email": "a@b.io"},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, d := newTestHandler()
			d.login.result, d.login.err = tt.result, tt.err

			c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/auth/login", tt.body)
			h.Login(c)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestHandler_Logout_PassesBearerToken(t *testing.T) {
	h, d := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/auth/logout", nil)
	c.Request.Header.Set("Authorization", "Bearer abc.def")
	h.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc.def", d.logout.token)
}

func TestHandler_Me_RequiresPrincipal(t *testing.T) {
	h, _ := newTestHandler()

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/auth/me", nil)
	h.Me(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateUser_UsesPrincipal(t *testing.T) {
	h, d := newTestHandler()
	d.createUser.result = &dto.UserDTO{ID: 9}

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/users", CreateUserRequest{
		Email: "eng@acme.io", Name: "Eng", Password: "Secret123",
	})
	p := testutil.SetPrincipal(c, 1, 2, authorization.RoleEndAdmin)
	h.CreateUser(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Same(t, p, d.createUser.got.Principal)
	assert.Empty(t, d.createUser.got.Role)
}

func TestHandler_CreateUser_Forbidden(t *testing.T) {
	h, d := newTestHandler()
	d.createUser.err = errors.NewForbiddenError("permission denied")

	c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/users", CreateUserRequest{
		Email: "eng@acme.io", Name: "Eng", Password: "Secret123",
	})
	testutil.SetPrincipal(c, 1, 2, authorization.RoleEndEngineer)
	h.CreateUser(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ListUsers_Pagination(t *testing.T) {
	h, d := newTestHandler()
	d.listUsers.result = &usecases.ListUsersResult{Users: []*dto.UserDTO{{ID: 1}}, Total: 41}

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/users", nil)
	testutil.SetQueryParams(c, map[string]string{"page": "2", "page_size": "20", "role": "end_engineer"})
	testutil.SetPrincipal(c, 1, 2, authorization.RoleEndAdmin)
	h.ListUsers(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "end_engineer", d.listUsers.got.Role)
	assert.Equal(t, 2, d.listUsers.got.Page)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var list testutil.ListData
	require.NoError(t, json.Unmarshal(resp.Data, &list))
	assert.Equal(t, int64(41), list.Total)
	assert.Equal(t, 3, list.TotalPages)
}
