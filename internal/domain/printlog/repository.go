package printlog

import (
	"context"
	"time"
)

type Repository interface {
	// CreateCardPrints inserts every print of one run; callers wrap it in a transaction.
	CreateCardPrints(ctx context.Context, prints []*CardPrint) error
	CreateToolPrint(ctx context.Context, p *ToolPrint) error
	// CardCountsByMonth buckets card prints by reason per month. Months are taken in
	// UTC shifted by offset.
	CardCountsByMonth(ctx context.Context, offset time.Duration) ([]CardMonth, error)
	ToolTotalsByMonth(ctx context.Context, offset time.Duration) ([]ToolMonth, error)
}
