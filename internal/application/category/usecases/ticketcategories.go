package usecases

import (
	"context"

	"github.com/opsdesk-inc/opsdesk/internal/application/category/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/category"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/shared/biztime"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

type CreateTicketCategoryCommand struct {
	Principal   policy.Principal
	Name        string
	Code        string
	Description string
	SLAHours    *int
	IsActive    *bool
}

type UpdateTicketCategoryCommand struct {
	Principal   policy.Principal
	ID          uint
	Name        *string
	Code        *string
	Description *string
	SLAHours    *int
	IsActive    *bool
}

// TicketCategoryUseCases groups the ticket category registry operations.
type TicketCategoryUseCases struct {
	repo    category.TicketCategoryRepository
	checker policy.Checker
	txMgr   db.Transactor
	logger  logger.Interface
}

func NewTicketCategoryUseCases(
	repo category.TicketCategoryRepository,
	checker policy.Checker,
	txMgr db.Transactor,
	logger logger.Interface,
) *TicketCategoryUseCases {
	return &TicketCategoryUseCases{
		repo:    repo,
		checker: checker,
		txMgr:   txMgr,
		logger:  logger,
	}
}

func (uc *TicketCategoryUseCases) List(ctx context.Context, activeOnly bool) ([]*dto.TicketCategoryDTO, error) {
	cats, err := uc.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, mapWriteError(uc.logger, err, "Failed to list ticket categories")
	}
	return dto.ToTicketCategoryDTOs(cats), nil
}

func (uc *TicketCategoryUseCases) Create(ctx context.Context, cmd CreateTicketCategoryCommand) (*dto.TicketCategoryDTO, error) {
	uc.logger.Infow("executing create ticket category use case", "name", cmd.Name, "code", cmd.Code)

	if err := authorizeWrite(uc.checker, uc.logger, cmd.Principal); err != nil {
		return nil, err
	}

	c, err := category.NewTicketCategory(cmd.Name, cmd.Code, cmd.Description, cmd.SLAHours, cmd.IsActive, biztime.NowUTC())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := ensureUnique(ctx, uc.repo, c.Name(), c.Code(), 0); err != nil {
		return nil, mapWriteError(uc.logger, err, "Failed to create ticket category")
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, mapWriteError(uc.logger, err, "Failed to create ticket category", "code", c.Code())
	}

	uc.logger.Infow("ticket category created successfully", "category_id", c.ID())
	return dto.ToTicketCategoryDTO(c), nil
}

func (uc *TicketCategoryUseCases) Update(ctx context.Context, cmd UpdateTicketCategoryCommand) (*dto.TicketCategoryDTO, error) {
	uc.logger.Infow("executing update ticket category use case", "category_id", cmd.ID)

	if err := authorizeWrite(uc.checker, uc.logger, cmd.Principal); err != nil {
		return nil, err
	}

	c, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if err := c.Apply(category.TicketCategoryPatch{
		Name:        cmd.Name,
		Code:        cmd.Code,
		Description: cmd.Description,
		SLAHours:    cmd.SLAHours,
		IsActive:    cmd.IsActive,
	}); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := ensureUnique(ctx, uc.repo, c.Name(), c.Code(), c.ID()); err != nil {
		return nil, mapWriteError(uc.logger, err, "Failed to update ticket category")
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, mapWriteError(uc.logger, err, "Failed to update ticket category", "category_id", c.ID())
	}
	return dto.ToTicketCategoryDTO(c), nil
}

// Delete archives a category that tickets still reference and removes it otherwise.
func (uc *TicketCategoryUseCases) Delete(ctx context.Context, principal policy.Principal, id uint) (*dto.DeleteResult, error) {
	uc.logger.Infow("executing delete ticket category use case", "category_id", id)

	if err := authorizeWrite(uc.checker, uc.logger, principal); err != nil {
		return nil, err
	}

	result := &dto.DeleteResult{}
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		c, err := uc.repo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		used, err := uc.repo.CountTickets(txCtx, id)
		if err != nil {
			return err
		}
		if used > 0 {
			c.Archive()
			result.Status = dto.DeleteStatusArchived
			return uc.repo.Update(txCtx, c)
		}

		result.Status = dto.DeleteStatusDeleted
		return uc.repo.Delete(txCtx, id)
	})
	if err != nil {
		return nil, mapWriteError(uc.logger, err, "Failed to delete ticket category", "category_id", id)
	}

	uc.logger.Infow("ticket category removed", "category_id", id, "status", result.Status)
	return result, nil
}
