package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	orgvo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/permission"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

type memUserRepository struct {
	users  map[uint]*user.User
	nextID uint
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{users: map[uint]*user.User{}, nextID: 1}
}

func (m *memUserRepository) Create(ctx context.Context, u *user.User) error {
	if err := u.SetID(m.nextID); err != nil {
		return err
	}
	m.users[m.nextID] = u
	m.nextID++
	return nil
}

func (m *memUserRepository) Update(ctx context.Context, u *user.User) error {
	m.users[u.ID()] = u
	return nil
}

func (m *memUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, errors.NewNotFoundError("user not found")
	}
	return u, nil
}

func (m *memUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email().String() == email {
			return u, nil
		}
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *memUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

func (m *memUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	var out []*user.User
	for _, u := range m.users {
		if u.OrgID() == filter.OrgID && (filter.Role == nil || u.Role() == *filter.Role) {
			out = append(out, u)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memUserRepository) ListByOrgAndRoles(ctx context.Context, orgID uint, roles []authorization.Role) ([]*user.User, error) {
	return nil, nil
}

func (m *memUserRepository) CountByOrgAndRoles(ctx context.Context, orgID uint, roles []authorization.Role) (int64, error) {
	var n int64
	for _, u := range m.users {
		for _, r := range roles {
			if u.OrgID() == orgID && u.Role() == r {
				n++
			}
		}
	}
	return n, nil
}

type memSessionRepository struct {
	sessions map[string]*user.Session
	lookups  int
}

func newMemSessionRepository() *memSessionRepository {
	return &memSessionRepository{sessions: map[string]*user.Session{}}
}

func (m *memSessionRepository) Create(ctx context.Context, s *user.Session) error {
	s.ID = uint(len(m.sessions) + 1)
	m.sessions[s.Token] = s
	return nil
}

func (m *memSessionRepository) GetByToken(ctx context.Context, token string) (*user.Session, error) {
	m.lookups++
	s, ok := m.sessions[token]
	if !ok {
		return nil, errors.NewNotFoundError("session not found")
	}
	return s, nil
}

func (m *memSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

func (m *memSessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	for token, s := range m.sessions {
		if !s.ExpiresAt.After(now) {
			delete(m.sessions, token)
			n++
		}
	}
	return n, nil
}

type memOrgRepository struct {
	orgs map[uint]*organization.Organization
}

func (m *memOrgRepository) Create(ctx context.Context, org *organization.Organization) error {
	if err := org.SetID(uint(len(m.orgs) + 1)); err != nil {
		return err
	}
	m.orgs[org.ID()] = org
	return nil
}

func (m *memOrgRepository) Update(ctx context.Context, org *organization.Organization) error {
	return nil
}

func (m *memOrgRepository) GetByID(ctx context.Context, id uint) (*organization.Organization, error) {
	o, ok := m.orgs[id]
	if !ok {
		return nil, errors.NewNotFoundError("organization not found")
	}
	return o, nil
}

func (m *memOrgRepository) GetByContactEmail(ctx context.Context, email string) (*organization.Organization, error) {
	return nil, errors.NewNotFoundError("organization not found")
}

// memContractRepository only serves the invitation lookups registration needs.
type memContractRepository struct {
	organization.ContractRepository
	pending []*organization.ServiceContract
	updated int
}

func (m *memContractRepository) ListPendingByInviteEmail(ctx context.Context, email string) ([]*organization.ServiceContract, error) {
	var out []*organization.ServiceContract
	for _, c := range m.pending {
		if c.InviteEmail() == email && c.Status() == orgvo.ContractPending {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memContractRepository) Update(ctx context.Context, c *organization.ServiceContract) error {
	m.updated++
	return nil
}

// prefixHasher "hashes" by prefixing, enough to tell a hash from a password.
type prefixHasher struct{}

func (prefixHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (prefixHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

// plainTokens issues "at:<session token>" access tokens.
type plainTokens struct{}

func (plainTokens) Issue(sessionToken string, userID uint, expiresAt time.Time) (string, error) {
	return "at:" + sessionToken, nil
}

func (plainTokens) Parse(accessToken string) (string, error) {
	token, ok := strings.CutPrefix(accessToken, "at:")
	if !ok {
		return "", fmt.Errorf("malformed token")
	}
	return token, nil
}

type memSessionCache struct {
	entries map[string]*CachedSession
	hits    int
}

func newMemSessionCache() *memSessionCache {
	return &memSessionCache{entries: map[string]*CachedSession{}}
}

func (m *memSessionCache) Get(ctx context.Context, token string) (*CachedSession, bool) {
	s, ok := m.entries[token]
	if ok {
		m.hits++
	}
	return s, ok
}

func (m *memSessionCache) Set(ctx context.Context, token string, s *CachedSession) {
	m.entries[token] = s
}

func (m *memSessionCache) Delete(ctx context.Context, token string) {
	delete(m.entries, token)
}

type mockTransactor struct{}

func (mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type allowAll struct{}

func (allowAll) Require(p *authorization.Principal, resource permission.Resource, action permission.Action) error {
	if p == nil {
		return errors.NewUnauthorizedError("authentication required")
	}
	return nil
}
