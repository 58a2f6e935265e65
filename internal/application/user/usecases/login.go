package usecases

import (
	"context"
	"strings"

	"github.com/opsdesk-inc/opsdesk/internal/application/user/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/user"
	"github.com/opsdesk-inc/opsdesk/internal/shared/authorization"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

// TokenIssuer signs access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uint, username string, role authorization.UserRole) (token string, expiresIn int64, err error)
}

type LoginCommand struct {
	Username string
	Password string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(userRepo user.Repository, hasher user.PasswordHasher, tokens TokenIssuer, logger logger.Interface) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(cmd.Username)
	uc.logger.Infow("executing login use case", "username", username)

	u, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to load user for login", "username", username, "error", err)
		return nil, errors.NewInternalError("Login failed")
	}

	if !u.VerifyPassword(cmd.Password, uc.hasher) {
		uc.logger.Warnw("login rejected: bad password", "username", username)
		return nil, errors.NewInvalidCredentialsError()
	}
	if !u.IsActive() {
		uc.logger.Warnw("login rejected: inactive account", "user_id", u.ID())
		return nil, errors.NewAccountInactiveError()
	}

	token, expiresIn, err := uc.tokens.Issue(u.ID(), u.Username(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("Login failed")
	}

	uc.logger.Infow("user logged in successfully", "user_id", u.ID(), "role", u.Role())
	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
		User:        dto.ToUserDTO(u),
	}, nil
}
