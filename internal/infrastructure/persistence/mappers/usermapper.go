package mappers

import (
	"github.com/opsdesk-inc/opsdesk/internal/domain/user"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
)

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Username:     u.Username(),
		FullName:     u.FullName(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    u.CreatedAt(),
	}
}

func UserToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Username,
		model.FullName,
		model.PasswordHash,
		authorization.UserRole(model.Role),
		model.IsActive,
		model.CreatedAt.UTC(),
	)
}
