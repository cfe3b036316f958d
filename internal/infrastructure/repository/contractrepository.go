package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization"
	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/organization/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/mappers"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/db"
	apperrors "github.com/automationyuli-li/RobotCare-sub001/internal/shared/errors"
)

type ContractRepository struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{
		db:     db,
		mapper: mappers.NewOrganizationMapper(),
	}
}

func (r *ContractRepository) Create(ctx context.Context, c *organization.ServiceContract) error {
	model := r.mapper.ContractToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create contract: %w", err)
	}
	return c.SetID(model.ID)
}

func (r *ContractRepository) Update(ctx context.Context, c *organization.ServiceContract) error {
	model := r.mapper.ContractToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := updateAll(tx, &models.ServiceContractModel{}, model.ID, model).Error; err != nil {
		return fmt.Errorf("failed to update contract: %w", err)
	}
	return nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id uint) (*organization.ServiceContract, error) {
	var model models.ServiceContractModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("contract not found", fmt.Sprintf("%d", id))
		}
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	return r.mapper.ContractToDomain(&model)
}

func (r *ContractRepository) ListByOrg(ctx context.Context, orgID uint, status *vo.ContractStatus) ([]*organization.ServiceContract, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	q := tx.Model(&models.ServiceContractModel{}).
		Where("service_provider_id = ? OR end_customer_id = ?", orgID, orgID)
	if status != nil {
		q = q.Where("status = ?", status.String())
	}

	var list []*models.ServiceContractModel
	if err := q.Order("created_at DESC, id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	return r.toDomainList(list)
}

func (r *ContractRepository) ActivePartnerIDs(ctx context.Context, orgID uint) ([]uint, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.ServiceContractModel
	err := tx.Where("status = ?", vo.ContractActive.String()).
		Where("end_customer_id IS NOT NULL").
		Where("service_provider_id = ? OR end_customer_id = ?", orgID, orgID).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contract partners: %w", err)
	}

	seen := make(map[uint]struct{}, len(list))
	ids := make([]uint, 0, len(list))
	for _, m := range list {
		partner := m.ServiceProviderID
		if partner == orgID {
			partner = *m.EndCustomerID
		}
		if _, ok := seen[partner]; ok {
			continue
		}
		seen[partner] = struct{}{}
		ids = append(ids, partner)
	}
	return ids, nil
}

func (r *ContractRepository) ExistsActive(ctx context.Context, providerID, customerID uint) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.ServiceContractModel{}).
		Where("service_provider_id = ? AND end_customer_id = ? AND status = ?", providerID, customerID, vo.ContractActive.String()).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check active contract: %w", err)
	}
	return count > 0, nil
}

// CountOpenByProvider counts pending and active contracts held by providerID.
func (r *ContractRepository) CountOpenByProvider(ctx context.Context, providerID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.Model(&models.ServiceContractModel{}).
		Where("service_provider_id = ?", providerID).
		Where("status IN ?", []string{vo.ContractPending.String(), vo.ContractActive.String()}).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count contracts: %w", err)
	}
	return count, nil
}

// ListPendingByInviteEmail returns unbound pending invitations sent to email.
func (r *ContractRepository) ListPendingByInviteEmail(ctx context.Context, email string) ([]*organization.ServiceContract, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.ServiceContractModel
	err := tx.Where("invite_email = ? AND status = ? AND end_customer_id IS NULL", email, vo.ContractPending.String()).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pending invitations: %w", err)
	}
	return r.toDomainList(list)
}

func (r *ContractRepository) ListActiveEndingBefore(ctx context.Context, cutoff time.Time) ([]*organization.ServiceContract, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var list []*models.ServiceContractModel
	err := tx.Where("status = ? AND end_date IS NOT NULL AND end_date <= ?", vo.ContractActive.String(), cutoff).
		Order("id ASC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring contracts: %w", err)
	}
	return r.toDomainList(list)
}

func (r *ContractRepository) toDomainList(list []*models.ServiceContractModel) ([]*organization.ServiceContract, error) {
	contracts := make([]*organization.ServiceContract, 0, len(list))
	for _, m := range list {
		c, err := r.mapper.ContractToDomain(m)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, nil
}
