package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/opsdesk-inc/opsdesk/internal/application/printlog/dto"
	"github.com/opsdesk-inc/opsdesk/internal/domain/policy"
	"github.com/opsdesk-inc/opsdesk/internal/domain/printlog"
	"github.com/opsdesk-inc/opsdesk/internal/shared/biztime"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
)

// CardItem is one employee in a print run. An empty Reason inherits the run's reason.
type CardItem struct {
	EmployeeID   string
	EmployeeName string
	Department   string
	JobTitle     string
	Reason       string
}

type LogCardPrintsCommand struct {
	Principal policy.Principal
	PrintedBy string
	Reason    string
	Employees []CardItem
}

type LogToolPrintCommand struct {
	Principal    policy.Principal
	PrintedBy    string
	CardType     string
	SerialNumber string
	Orientation  string
	Quantity     int
}

// PrintLogUseCases records ID card printing and reports monthly totals.
type PrintLogUseCases struct {
	repo    printlog.Repository
	checker policy.Checker
	txMgr   db.Transactor
	logger  logger.Interface
}

func NewPrintLogUseCases(
	repo printlog.Repository,
	checker policy.Checker,
	txMgr db.Transactor,
	logger logger.Interface,
) *PrintLogUseCases {
	return &PrintLogUseCases{
		repo:    repo,
		checker: checker,
		txMgr:   txMgr,
		logger:  logger,
	}
}

func (uc *PrintLogUseCases) authorize(p policy.Principal, action policy.Action) error {
	if uc.checker.Can(p, action, policy.ResourcePrint) {
		return nil
	}
	uc.logger.Warnw("print log access denied", "user_id", p.UserID, "role", p.Role, "action", action)
	return errors.NewForbiddenError("Permission denied")
}

// LogCardPrints stores a whole print run or nothing.
func (uc *PrintLogUseCases) LogCardPrints(ctx context.Context, cmd LogCardPrintsCommand) (*dto.LogResult, error) {
	uc.logger.Infow("executing log card prints use case", "user_id", cmd.Principal.UserID, "count", len(cmd.Employees))

	if err := uc.authorize(cmd.Principal, policy.ActionWrite); err != nil {
		return nil, err
	}
	if len(cmd.Employees) == 0 {
		return nil, errors.NewValidationError("no employees to log")
	}

	now := biztime.NowUTC()
	prints := make([]*printlog.CardPrint, 0, len(cmd.Employees))
	for i, item := range cmd.Employees {
		reason := item.Reason
		if reason == "" {
			reason = cmd.Reason
		}
		p, err := printlog.NewCardPrint(item.EmployeeID, item.EmployeeName, item.Department, item.JobTitle, reason, cmd.PrintedBy, now)
		if err != nil {
			return nil, errors.NewValidationError(fmt.Sprintf("employees[%d]: %s", i, err.Error()))
		}
		prints = append(prints, p)
	}

	err := uc.txMgr.RunInTransaction(ctx, func(ctx context.Context) error {
		return uc.repo.CreateCardPrints(ctx, prints)
	})
	if err != nil {
		uc.logger.Errorw("failed to save print logs", "count", len(prints), "error", err)
		return nil, errors.NewInternalError("Failed to save print logs")
	}

	uc.logger.Infow("card prints logged", "count", len(prints), "printed_by", cmd.PrintedBy)
	return &dto.LogResult{Count: len(prints)}, nil
}

func (uc *PrintLogUseCases) LogToolPrint(ctx context.Context, cmd LogToolPrintCommand) (*dto.ToolPrintDTO, error) {
	uc.logger.Infow("executing log tool print use case", "user_id", cmd.Principal.UserID, "card_type", cmd.CardType)

	if err := uc.authorize(cmd.Principal, policy.ActionWrite); err != nil {
		return nil, err
	}

	p, err := printlog.NewToolPrint(cmd.CardType, cmd.SerialNumber, cmd.Orientation, cmd.Quantity, cmd.PrintedBy, biztime.NowUTC())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.repo.CreateToolPrint(ctx, p); err != nil {
		uc.logger.Errorw("failed to save tool print log", "card_type", p.CardType(), "error", err)
		return nil, errors.NewInternalError("Failed to save tool print log")
	}

	uc.logger.Infow("tool print logged", "id", p.ID(), "quantity", p.Quantity())
	return &dto.ToolPrintDTO{ID: p.ID()}, nil
}

// Stats returns per-month card and tool totals, with months cut in the business timezone.
func (uc *PrintLogUseCases) Stats(ctx context.Context, principal policy.Principal) ([]dto.MonthlyStatsDTO, error) {
	uc.logger.Debugw("executing print stats use case", "user_id", principal.UserID)

	if err := uc.authorize(principal, policy.ActionStats); err != nil {
		return nil, err
	}

	offset := businessOffset(biztime.NowUTC())
	cards, err := uc.repo.CardCountsByMonth(ctx, offset)
	if err != nil {
		uc.logger.Errorw("failed to count card prints", "error", err)
		return nil, errors.NewInternalError("Failed to load print stats")
	}
	tools, err := uc.repo.ToolTotalsByMonth(ctx, offset)
	if err != nil {
		uc.logger.Errorw("failed to total tool prints", "error", err)
		return nil, errors.NewInternalError("Failed to load print stats")
	}

	return dto.ToMonthlyStatsDTOs(printlog.MergeMonths(cards, tools)), nil
}

func businessOffset(now time.Time) time.Duration {
	_, seconds := now.In(biztime.Location()).Zone()
	return time.Duration(seconds) * time.Second
}
