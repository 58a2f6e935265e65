package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/opsdesk-inc/opsdesk/internal/application/user/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/domain/user"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
	"github.com/opsdesk-inc/opsdesk/internal/shared/biztime"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type CreateUserCommand struct {
	// Principal is zero for the bootstrap command, which bypasses the policy check.
	Principal policy.Principal
	Username  string
	FullName  string
	Password  string
	Role      string
}

// UserAdminUseCases covers account administration and the current user's profile.
type UserAdminUseCases struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	checker  policy.Checker
	logger   logger.Interface
}

func NewUserAdminUseCases(userRepo user.Repository, hasher user.PasswordHasher, checker policy.Checker, logger logger.Interface) *UserAdminUseCases {
	return &UserAdminUseCases{
		userRepo: userRepo,
		hasher:   hasher,
		checker:  checker,
		logger:   logger,
	}
}

func (uc *UserAdminUseCases) authorize(p policy.Principal) error {
	if uc.checker.Can(p, policy.ActionManage, policy.ResourceUser) {
		return nil
	}
	uc.logger.Warnw("user administration denied", "user_id", p.UserID, "role", p.Role)
	return errors.NewForbiddenError("Permission denied")
}

func (uc *UserAdminUseCases) List(ctx context.Context, principal policy.Principal) ([]*dto.UserDTO, error) {
	if err := uc.authorize(principal); err != nil {
		return nil, err
	}
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, errors.NewInternalError("Failed to list users")
	}
	return dto.ToUserDTOs(users), nil
}

func (uc *UserAdminUseCases) Create(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	uc.logger.Infow("executing create user use case", "username", cmd.Username, "role", cmd.Role)

	if err := uc.authorize(cmd.Principal); err != nil {
		return nil, err
	}
	return uc.create(ctx, cmd)
}

// CreateAdmin provisions an Admin account from the command line.
func (uc *UserAdminUseCases) CreateAdmin(ctx context.Context, username, fullName, password string) (*dto.UserDTO, error) {
	uc.logger.Infow("bootstrapping admin account", "username", username)
	return uc.create(ctx, CreateUserCommand{
		Username: username,
		FullName: fullName,
		Password: password,
		Role:     authorization.RoleAdmin.String(),
	})
}

func (uc *UserAdminUseCases) create(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	role := authorization.UserRole(strings.TrimSpace(cmd.Role))
	if role == "" {
		role = authorization.RoleStaff
	}

	u, err := user.NewUser(cmd.Username, cmd.FullName, cmd.Password, role, uc.hasher, biztime.NowUTC())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, u.Username())
	if err != nil {
		uc.logger.Errorw("failed to check username", "username", u.Username(), "error", err)
		return nil, errors.NewInternalError("Failed to create user")
	}
	if exists {
		return nil, errors.NewConflictError(fmt.Sprintf("Username %s already exists", u.Username()))
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(fmt.Sprintf("Username %s already exists", u.Username()))
		}
		uc.logger.Errorw("failed to create user", "username", u.Username(), "error", err)
		return nil, errors.NewInternalError("Failed to create user")
	}

	uc.logger.Infow("user created successfully", "user_id", u.ID(), "role", u.Role())
	return dto.ToUserDTO(u), nil
}

func (uc *UserAdminUseCases) Delete(ctx context.Context, principal policy.Principal, id uint) error {
	uc.logger.Infow("executing delete user use case", "target_user_id", id, "user_id", principal.UserID)

	if err := uc.authorize(principal); err != nil {
		return err
	}
	if id == principal.UserID {
		return errors.NewValidationError("You cannot delete your own account")
	}
	if _, err := uc.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := uc.userRepo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete user", "target_user_id", id, "error", err)
		return errors.NewInternalError("Failed to delete user")
	}
	return nil
}

// Me returns the profile of the authenticated caller.
func (uc *UserAdminUseCases) Me(ctx context.Context, principal policy.Principal) (*dto.UserDTO, error) {
	u, err := uc.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	return dto.ToUserDTO(u), nil
}
