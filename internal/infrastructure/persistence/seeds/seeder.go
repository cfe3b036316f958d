package seeds

import (
	"context"
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	orgvo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	uservo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/user/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/logger"
)

type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Result counts the rows a run created. Existing rows are left untouched, so
// a second run over the same fixture reports zeros.
type Result struct {
	Organizations int
	Users         int
	Contracts     int
}

type Seeder struct {
	orgRepo      organization.Repository
	contractRepo organization.ContractRepository
	userRepo     user.Repository
	hasher       PasswordHasher
	txManager    db.Transactor
	logger       logger.Interface
}

func NewSeeder(
	orgRepo organization.Repository,
	contractRepo organization.ContractRepository,
	userRepo user.Repository,
	hasher PasswordHasher,
	txManager db.Transactor,
	logger logger.Interface,
) *Seeder {
	return &Seeder{
		orgRepo:      orgRepo,
		contractRepo: contractRepo,
		userRepo:     userRepo,
		hasher:       hasher,
		txManager:    txManager,
		logger:       logger,
	}
}

// Apply writes the fixture in one transaction.
func (s *Seeder) Apply(ctx context.Context, f *Fixture) (*Result, error) {
	result := &Result{}
	err := s.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		orgIDs := make(map[string]uint, len(f.Organizations))
		for _, of := range f.Organizations {
			org, created, err := s.ensureOrganization(txCtx, of)
			if err != nil {
				return err
			}
			if created {
				result.Organizations++
			}
			orgIDs[of.ContactEmail] = org.ID()

			for _, uf := range of.Users {
				created, err := s.ensureUser(txCtx, org, uf)
				if err != nil {
					return err
				}
				if created {
					result.Users++
				}
			}
		}

		for _, cf := range f.Contracts {
			created, err := s.ensureContract(txCtx, orgIDs[cf.Provider], orgIDs[cf.Customer], cf)
			if err != nil {
				return err
			}
			if created {
				result.Contracts++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("fixture applied",
		"organizations", result.Organizations,
		"users", result.Users,
		"contracts", result.Contracts,
	)
	return result, nil
}

func (s *Seeder) ensureOrganization(ctx context.Context, of OrganizationFixture) (*organization.Organization, bool, error) {
	existing, err := s.orgRepo.GetByContactEmail(ctx, of.ContactEmail)
	if err == nil {
		return existing, false, nil
	}
	if !errors.IsNotFoundError(err) {
		return nil, false, err
	}

	orgType, err := orgvo.NewOrgType(of.Type)
	if err != nil {
		return nil, false, fmt.Errorf("organization %s: %w", of.ContactEmail, err)
	}
	org, err := organization.NewOrganization(of.Name, orgType, of.ContactEmail)
	if err != nil {
		return nil, false, fmt.Errorf("organization %s: %w", of.ContactEmail, err)
	}
	if of.Quotas != nil {
		if err := org.SetQuotas(orgvo.Quotas{
			MaxRobots:    of.Quotas.MaxRobots,
			MaxCustomers: of.Quotas.MaxCustomers,
			MaxEngineers: of.Quotas.MaxEngineers,
		}); err != nil {
			return nil, false, fmt.Errorf("organization %s: %w", of.ContactEmail, err)
		}
	}
	if err := s.orgRepo.Create(ctx, org); err != nil {
		return nil, false, err
	}
	return org, true, nil
}

func (s *Seeder) ensureUser(ctx context.Context, org *organization.Organization, uf UserFixture) (bool, error) {
	email, err := uservo.NewEmail(uf.Email)
	if err != nil {
		return false, fmt.Errorf("user %s: %w", uf.Email, err)
	}
	exists, err := s.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	role := authorization.AdminRoleFor(string(org.Type()))
	if uf.Role != "" {
		parsed, ok := authorization.ParseRole(uf.Role)
		if !ok {
			return false, fmt.Errorf("user %s: unknown role %q", uf.Email, uf.Role)
		}
		role = parsed
	}
	if err := uservo.ValidatePassword(uf.Password); err != nil {
		return false, fmt.Errorf("user %s: %w", uf.Email, err)
	}
	hash, err := s.hasher.Hash(uf.Password)
	if err != nil {
		return false, err
	}

	u, err := user.NewUser(org.ID(), email, uf.Name, hash, role)
	if err != nil {
		return false, fmt.Errorf("user %s: %w", uf.Email, err)
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Seeder) ensureContract(ctx context.Context, providerID, customerID uint, cf ContractFixture) (bool, error) {
	exists, err := s.contractRepo.ExistsActive(ctx, providerID, customerID)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if cf.Status != "active" {
		pendingStatus := orgvo.ContractPending
		pending, err := s.contractRepo.ListByOrg(ctx, providerID, &pendingStatus)
		if err != nil {
			return false, err
		}
		for _, c := range pending {
			if c.EndCustomerID() != nil && *c.EndCustomerID() == customerID {
				return false, nil
			}
		}
	}

	start, _ := parseDate(cf.StartDate)
	end, _ := parseDate(cf.EndDate)
	contract, err := organization.NewInvitation(providerID, cf.Customer, &customerID, start, end)
	if err != nil {
		return false, fmt.Errorf("contract %s -> %s: %w", cf.Provider, cf.Customer, err)
	}
	if cf.Status == "active" {
		if err := contract.Accept(customerID); err != nil {
			return false, err
		}
	}
	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return false, err
	}
	return true, nil
}
