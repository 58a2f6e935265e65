package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/opsdesk-inc/opsdesk/internal/domain/ticket"
	vo "github.com/opsdesk-inc/opsdesk/internal/domain/ticket/valueobjects"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/mappers"
	"github.com/opsdesk-inc/opsdesk/internal/infrastructure/persistence/models"
	"github.com/opsdesk-inc/opsdesk/internal/shared/db"
	"github.com/opsdesk-inc/opsdesk/internal/shared/errors"
)

const msgTicketNotFound = "Ticket not found"

var _ ticket.TicketRepository = (*TicketRepository)(nil)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(msgTicketNotFound)
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	columns, err := r.updateColumns(t)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TicketModel{}).Where("id = ?", t.ID()).Updates(columns)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	return nil
}

func (r *TicketRepository) UpdateIfAssignee(ctx context.Context, t *ticket.Ticket, expected *uint) error {
	columns, err := r.updateColumns(t)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.TicketModel{}).Where("id = ?", t.ID())
	if expected == nil {
		query = query.Where("assignee_id IS NULL")
	} else {
		query = query.Where("assignee_id = ?", *expected)
	}

	result := query.Updates(columns)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var current models.TicketModel
	if err := tx.Select("id", "assignee_id").First(&current, t.ID()).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.NewNotFoundError(msgTicketNotFound)
		}
		return fmt.Errorf("failed to reload ticket assignee: %w", err)
	}

	// mysql reports changed rows only, so a no-op write also lands here
	if sameAssignee(current.AssigneeID, expected) {
		return nil
	}

	holder := uint(0)
	if current.AssigneeID != nil {
		holder = *current.AssigneeID
	}
	return &ticket.AssigneeConflictError{HolderID: holder}
}

func sameAssignee(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// updateColumns lists every mutable column so that cleared values are written as NULL.
func (r *TicketRepository) updateColumns(t *ticket.Ticket) (map[string]any, error) {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"title":           model.Title,
		"description":     model.Description,
		"category_id":     model.CategoryID,
		"asset_id":        model.AssetID,
		"priority":        model.Priority,
		"status":          model.Status,
		"attachments":     model.Attachments,
		"assignee_id":     model.AssigneeID,
		"resolution_note": model.ResolutionNote,
		"updated_at":      model.UpdatedAt,
		"resolved_at":     model.ResolvedAt,
	}, nil
}

// Delete removes the ticket and its comments.
func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket comments: %w", err)
		}
		result := tx.Delete(&models.TicketModel{}, ticketID)
		if result.Error != nil {
			return fmt.Errorf("failed to delete ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError(msgTicketNotFound)
		}
		return nil
	})
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.RequesterID != nil {
		query = query.Where("requester_id = ?", *filter.RequesterID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.Int())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var rows []models.TicketModel
	if err := query.
		Order("created_at DESC").
		Order("id DESC").
		Scopes(db.Paginate(filter.PageFilter)).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.toDomainList(rows)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

type ticketStatsRow struct {
	TotalCount      int64
	OpenCount       int64
	InProgressCount int64
	ResolvedCount   int64
	CriticalCount   int64
}

func (r *TicketRepository) CountStats(ctx context.Context, filter ticket.DateRange) (*ticket.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var row ticketStatsRow
	err := tx.Model(&models.TicketModel{}).
		Scopes(db.CreatedBetween("created_at", filter.From, filter.To)).
		Select(
			"COUNT(*) AS total_count, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS open_count, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS in_progress_count, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS resolved_count, "+
				"COALESCE(SUM(CASE WHEN priority = ? AND status <> ? THEN 1 ELSE 0 END), 0) AS critical_count",
			vo.StatusOpen.String(),
			vo.StatusInProgress.String(),
			vo.StatusResolved.String(),
			vo.PriorityCritical.Int(),
			vo.StatusResolved.String(),
		).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count ticket stats: %w", err)
	}

	return &ticket.Stats{
		Total:      row.TotalCount,
		Open:       row.OpenCount,
		InProgress: row.InProgressCount,
		Resolved:   row.ResolvedCount,
		Critical:   row.CriticalCount,
	}, nil
}

// FindInBatches walks tickets newest first using id as the cursor, so memory stays
// bounded by batchSize.
func (r *TicketRepository) FindInBatches(ctx context.Context, filter ticket.DateRange, batchSize int, fn func(batch []*ticket.Ticket) error) error {
	if batchSize <= 0 {
		batchSize = 1000
	}
	tx := db.GetTxFromContext(ctx, r.db)

	var cursor uint
	for {
		query := tx.Model(&models.TicketModel{}).
			Scopes(db.CreatedBetween("created_at", filter.From, filter.To))
		if cursor > 0 {
			query = query.Where("id < ?", cursor)
		}

		var rows []models.TicketModel
		if err := query.Order("id DESC").Limit(batchSize).Find(&rows).Error; err != nil {
			return fmt.Errorf("failed to load ticket batch: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}

		batch, err := r.toDomainList(rows)
		if err != nil {
			return err
		}
		if err := fn(batch); err != nil {
			return err
		}
		if len(rows) < batchSize {
			return nil
		}
		cursor = rows[len(rows)-1].ID
	}
}

func (r *TicketRepository) toDomainList(rows []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

var _ ticket.CommentRepository = (*CommentRepository)(nil)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return c.SetID(model.ID)
}

// ListByTicketID returns the timeline oldest first.
func (r *CommentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.CommentModel
	if err := tx.Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(rows))
	for i := range rows {
		c, err := r.mapper.CommentToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}
