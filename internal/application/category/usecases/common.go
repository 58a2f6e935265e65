package usecases

import (
	"context"
	"fmt"

	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type uniquenessChecker interface {
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
	ExistsByCode(ctx context.Context, code string, excludeID uint) (bool, error)
}

func authorizeWrite(checker policy.Checker, log logger.Interface, p policy.Principal) error {
	if checker.Can(p, policy.ActionWrite, policy.ResourceCategory) {
		return nil
	}
	log.Warnw("category write denied", "user_id", p.UserID, "role", p.Role)
	return errors.NewForbiddenError("Permission denied")
}

// ensureUnique returns a Conflict naming the first of name or code already used by a
// row other than excludeID.
func ensureUnique(ctx context.Context, repo uniquenessChecker, name, code string, excludeID uint) error {
	exists, err := repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return errors.NewConflictError(fmt.Sprintf("Category name %s already exists", name))
	}
	exists, err = repo.ExistsByCode(ctx, code, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return errors.NewConflictError(fmt.Sprintf("Category code %s already exists", code))
	}
	return nil
}

func mapWriteError(log logger.Interface, err error, msg string, keysAndValues ...any) error {
	if errors.IsAppError(err) {
		return err
	}
	if errors.IsDuplicateError(err) {
		return errors.NewConflictError("Category name or code already exists")
	}
	log.Errorw(msg, append(keysAndValues, "error", err)...)
	return errors.NewInternalError(msg)
}
