package mappers

import (
	"fmt"

	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	vo "github.com/automationyuli-li/RobotCare-sub001/internal/domain/user/valueobjects"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
	"github.com/automationyuli-li/RobotCare-sub001/internal/shared/authorization"
)

// UserMapper handles the conversion between domain entities and persistence models.
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper.
type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper.
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}

	entity, err := user.ReconstructUser(
		model.ID,
		model.OrgID,
		email,
		model.Name,
		model.PasswordHash,
		authorization.Role(model.Role),
		vo.Status(model.Status),
		model.LastLoginAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}
	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:           entity.ID(),
		OrgID:        entity.OrgID(),
		Email:        entity.Email().String(),
		Name:         entity.Name(),
		PasswordHash: entity.PasswordHash(),
		Role:         entity.Role().String(),
		Status:       entity.Status().String(),
		LastLoginAt:  entity.LastLoginAt(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities.
func (m *UserMapperImpl) ToEntities(list []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(list))
	for _, model := range list {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map user ID %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
