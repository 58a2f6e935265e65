package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/domain/printlog"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/mappers"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
)

const printLogBatchSize = 100

var _ printlog.Repository = (*PrintLogRepository)(nil)

// PrintLogRepository stores ID card and tool card print runs.
type PrintLogRepository struct {
	db *gorm.DB
}

func NewPrintLogRepository(db *gorm.DB) *PrintLogRepository {
	return &PrintLogRepository{db: db}
}

func (r *PrintLogRepository) CreateCardPrints(ctx context.Context, prints []*printlog.CardPrint) error {
	if len(prints) == 0 {
		return nil
	}
	rows := make([]*models.PrintLogModel, 0, len(prints))
	for _, p := range prints {
		rows = append(rows, mappers.CardPrintToModel(p))
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.CreateInBatches(rows, printLogBatchSize).Error; err != nil {
		return fmt.Errorf("failed to create print logs: %w", err)
	}
	for i, row := range rows {
		if err := prints[i].SetID(row.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r *PrintLogRepository) CreateToolPrint(ctx context.Context, p *printlog.ToolPrint) error {
	model := mappers.ToolPrintToModel(p)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create tool print log: %w", err)
	}
	return p.SetID(model.ID)
}

type cardMonthRow struct {
	Month     string
	Pregnancy int64
	HasBaby   int64
	Normal    int64
}

// CardCountsByMonth puts each print in exactly one bucket: pregnancy wins over baby,
// and everything else is normal.
func (r *PrintLogRepository) CardCountsByMonth(ctx context.Context, offset time.Duration) ([]printlog.CardMonth, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	month, monthArg := monthExpr(tx.Dialector.Name(), "printed_at", offset)
	pregnancy := "%" + printlog.KeywordPregnancy + "%"
	baby := "%" + printlog.KeywordBaby + "%"

	var rows []cardMonthRow
	err := tx.Model(&models.PrintLogModel{}).
		Select(
			month+" AS month, "+
				"COALESCE(SUM(CASE WHEN LOWER(reason) LIKE ? THEN 1 ELSE 0 END), 0) AS pregnancy, "+
				"COALESCE(SUM(CASE WHEN LOWER(reason) NOT LIKE ? AND LOWER(reason) LIKE ? THEN 1 ELSE 0 END), 0) AS has_baby, "+
				"COALESCE(SUM(CASE WHEN LOWER(reason) NOT LIKE ? AND LOWER(reason) NOT LIKE ? THEN 1 ELSE 0 END), 0) AS normal",
			monthArg,
			pregnancy,
			pregnancy, baby,
			pregnancy, baby,
		).
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count card prints: %w", err)
	}

	out := make([]printlog.CardMonth, 0, len(rows))
	for _, row := range rows {
		out = append(out, printlog.CardMonth{
			Month:     row.Month,
			Pregnancy: row.Pregnancy,
			HasBaby:   row.HasBaby,
			Normal:    row.Normal,
		})
	}
	return out, nil
}

type toolMonthRow struct {
	Month string
	Tools int64
}

func (r *PrintLogRepository) ToolTotalsByMonth(ctx context.Context, offset time.Duration) ([]printlog.ToolMonth, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	month, monthArg := monthExpr(tx.Dialector.Name(), "printed_at", offset)

	var rows []toolMonthRow
	err := tx.Model(&models.ToolPrintLogModel{}).
		Select(month+" AS month, COALESCE(SUM(quantity), 0) AS tools", monthArg).
		Group("month").
		Order("month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to total tool prints: %w", err)
	}

	out := make([]printlog.ToolMonth, 0, len(rows))
	for _, row := range rows {
		out = append(out, printlog.ToolMonth{Month: row.Month, Tools: row.Tools})
	}
	return out, nil
}

// monthExpr renders column as YYYY-MM after shifting it by offset. The returned
// argument binds the single placeholder in the expression.
func monthExpr(dialect, column string, offset time.Duration) (string, any) {
	seconds := int64(offset / time.Second)
	switch dialect {
	case "mysql":
		return "DATE_FORMAT(DATE_ADD(" + column + ", INTERVAL ? SECOND), '%Y-%m')", seconds
	case "postgres":
		return "to_char((" + column + " AT TIME ZONE 'UTC') + make_interval(secs => ?), 'YYYY-MM')", seconds
	default:
		return "strftime('%Y-%m', " + column + ", ?)", fmt.Sprintf("%+d seconds", seconds)
	}
}
