package mappers

import (
	"github.com/automationyuli-li/RobotCare-sub001/internal/domain/user"
	"github.com/automationyuli-li/RobotCare-sub001/internal/infrastructure/persistence/models"
)

func SessionToModel(s *user.Session) *models.SessionModel {
	return &models.SessionModel{
		ID:        s.ID,
		Token:     s.Token,
		UserID:    s.UserID,
		ExpiresAt: s.ExpiresAt,
		CreatedAt: s.CreatedAt,
	}
}

func SessionToDomain(model *models.SessionModel) *user.Session {
	return &user.Session{
		ID:        model.ID,
		Token:     model.Token,
		UserID:    model.UserID,
		ExpiresAt: model.ExpiresAt,
		CreatedAt: model.CreatedAt,
	}
}
